package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/multiball/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"a moves left", runeKey("a"), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d moves right", runeKey("d"), core.ActionRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"space launches", runeKey(" "), core.ActionLaunch},
		{"p pauses", runeKey("p"), core.ActionPause},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"n advances", runeKey("n"), core.ActionNext},
		{"enter advances", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNext},
		{"r restarts", runeKey("r"), core.ActionRestart},
		{"q quits", runeKey("q"), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("z"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestHoldLatch(t *testing.T) {
	l := NewHoldLatch(3)
	l.Press(core.ActionLeft)

	for i := range 3 {
		f := core.NewInputFrame()
		l.Apply(&f)
		if !f.Has(core.ActionLeft) {
			t.Fatalf("tick %d: left should be held", i)
		}
	}

	f := core.NewInputFrame()
	l.Apply(&f)
	if f.Has(core.ActionLeft) {
		t.Error("left should be released after hold ticks")
	}
}

func TestHoldLatchOppositeReleases(t *testing.T) {
	l := NewHoldLatch(5)
	l.Press(core.ActionLeft)
	l.Press(core.ActionRight)

	f := core.NewInputFrame()
	l.Apply(&f)
	if f.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !f.Has(core.ActionRight) {
		t.Error("right should be held")
	}

	l.Release()
	f.Clear()
	l.Apply(&f)
	if f.Has(core.ActionRight) {
		t.Error("Release should drop held directions")
	}
}

func TestHoldLatchIgnoresOtherActions(t *testing.T) {
	l := NewHoldLatch(0)
	l.Press(core.ActionLaunch)

	f := core.NewInputFrame()
	l.Apply(&f)
	if f.Has(core.ActionLaunch) || f.Has(core.ActionLeft) || f.Has(core.ActionRight) {
		t.Error("latch should only hold directions")
	}
}

func TestMenuKeyMapAction(t *testing.T) {
	keys := DefaultMenuKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{"k", runeKey("k"), MenuActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{"j", runeKey("j"), MenuActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{"q", runeKey("q"), MenuActionQuit},
		{"unbound", runeKey("x"), MenuActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MenuAction(tc.msg); got != tc.want {
				t.Errorf("MenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}
