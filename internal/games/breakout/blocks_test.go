package breakout

import (
	"testing"

	"github.com/vovakirdan/multiball/internal/config"
	"github.com/vovakirdan/multiball/internal/core"
)

func TestBlockGridGenerate(t *testing.T) {
	area := core.NewRect(0, 0, 800, 460)
	g := NewBlockGrid(config.DefaultBreakoutConfig().Blocks)
	g.Generate(area)

	if g.Total() != 24 || g.Remaining() != 24 {
		t.Fatalf("Total/Remaining = %d/%d, expected 24/24", g.Total(), g.Remaining())
	}

	live := g.Live(area)
	if len(live) != 24 {
		t.Fatalf("Live = %d blocks, expected 24", len(live))
	}

	first := live[0]
	if first.ID != 0 || first.Row != 0 || first.Col != 0 {
		t.Errorf("first block = %+v", first)
	}
	want := core.NewRect(20, 40, 86.25, 20)
	if first.Rect != want {
		t.Errorf("first block rect = %+v, expected %+v", first.Rect, want)
	}

	last := live[23]
	if last.Row != 2 || last.Col != 7 {
		t.Errorf("last block at row %d col %d, expected 2/7", last.Row, last.Col)
	}
	if last.Rect.Right() != 780 {
		t.Errorf("last block right edge = %v, expected 780", last.Rect.Right())
	}
}

func TestBlockGridRowHues(t *testing.T) {
	area := core.NewRect(0, 0, 800, 460)
	g := NewBlockGrid(config.DefaultBreakoutConfig().Blocks)
	g.Generate(area)

	wantHue := []int{220, 205, 190}
	wantColor := []core.Color{core.ColorBlue, core.ColorAzure, core.ColorSky}

	for _, blk := range g.Live(area) {
		if blk.Hue != wantHue[blk.Row] {
			t.Errorf("block %d hue = %d, expected %d", blk.ID, blk.Hue, wantHue[blk.Row])
		}
		if blk.Color != wantColor[blk.Row] {
			t.Errorf("block %d color = %d, expected %d", blk.ID, blk.Color, wantColor[blk.Row])
		}
	}
}

func TestBlockGridDestroy(t *testing.T) {
	area := core.NewRect(0, 0, 800, 460)
	g := NewBlockGrid(config.DefaultBreakoutConfig().Blocks)
	g.Generate(area)

	if !g.Destroy(0) {
		t.Fatal("Destroy(0) should succeed")
	}
	if g.Destroy(0) {
		t.Error("second Destroy(0) should fail")
	}
	if g.Destroy(-1) || g.Destroy(24) {
		t.Error("Destroy of unknown IDs should fail")
	}
	if g.Remaining() != 23 {
		t.Errorf("Remaining = %d, expected 23", g.Remaining())
	}
	if !g.Destroyed(0) || g.Destroyed(1) {
		t.Error("Destroyed reports wrong state")
	}

	for _, blk := range g.Live(area) {
		if blk.ID == 0 {
			t.Error("destroyed block still live")
		}
	}

	g.Generate(area)
	if g.Remaining() != 24 || g.Destroyed(0) {
		t.Error("Generate should restore every block")
	}
}

func TestBlockGridRelayout(t *testing.T) {
	g := NewBlockGrid(config.DefaultBreakoutConfig().Blocks)
	g.Generate(core.NewRect(0, 0, 800, 460))

	wide := g.Live(core.NewRect(0, 0, 1200, 460))
	if got := wide[0].Rect.W; got != g.BlockWidth(core.NewRect(0, 0, 1200, 460)) {
		t.Errorf("block width = %v after resize", got)
	}
	if wide[7].Rect.Right() != 1180 {
		t.Errorf("row end = %v, expected 1180", wide[7].Rect.Right())
	}
}

func TestHueColor(t *testing.T) {
	tests := []struct {
		hue  int
		want core.Color
	}{
		{0, core.ColorRed},
		{360, core.ColorRed},
		{-10, core.ColorRed},
		{30, core.ColorOrange},
		{60, core.ColorYellow},
		{120, core.ColorGreen},
		{180, core.ColorCyan},
		{190, core.ColorSky},
		{205, core.ColorAzure},
		{220, core.ColorBlue},
		{280, core.ColorMagenta},
		{320, core.ColorBrightMagenta},
	}

	for _, tc := range tests {
		if got := HueColor(tc.hue); got != tc.want {
			t.Errorf("HueColor(%d) = %d, expected %d", tc.hue, got, tc.want)
		}
	}
}
