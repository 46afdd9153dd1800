package hud

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-remote/device"
)

// gridCanvas records runes like a simulation screen
type gridCanvas struct {
	w, h  int
	cells []rune
}

func newGridCanvas(w, h int) *gridCanvas {
	c := &gridCanvas{w: w, h: h, cells: make([]rune, w*h)}
	for i := range c.cells {
		c.cells[i] = ' '
	}
	return c
}

func (c *gridCanvas) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = r
}

func (c *gridCanvas) Size() (int, int) { return c.w, c.h }

func (c *gridCanvas) row(y int) string {
	return string(c.cells[y*c.w : (y+1)*c.w])
}

func TestRendererStatusLine(t *testing.T) {
	canvas := newGridCanvas(100, 5)
	r := NewRenderer(canvas)
	r.ErrorNames = map[int]string{3: "remote disconnected"}
	r.TargetName = func(Snapshot) string { return "crate" }

	r.DrawRemote(Snapshot{
		State:           "enabled",
		Enabled:         true,
		Frozen:          true,
		FreezeRemaining: 800 * time.Millisecond,
		Locked:          true,
		Rumbling:        true,
		RumbleRemaining: 150 * time.Millisecond,
		HasError:        true,
		TopError:        3,
		ErrorLevels:     []int{1, 3},
	})

	line := canvas.row(4)
	for _, want := range []string{"REMOTE ON", "enabled", "FROZEN 0.8s", "LOCK crate", "RUMBLE 0.15s", "! 3 remote disconnected"} {
		if !strings.Contains(line, want) {
			t.Errorf("status line %q missing %q", line, want)
		}
	}
}

func TestRendererDisabledHidesPointer(t *testing.T) {
	canvas := newGridCanvas(40, 5)
	r := NewRenderer(canvas)
	r.DrawRemote(Snapshot{State: "disabled", Tracking: true, Pointer: device.Pointer{}})

	if !strings.Contains(canvas.row(4), "REMOTE OFF") {
		t.Errorf("Expected off indicator, got %q", canvas.row(4))
	}
	for y := 0; y < 4; y++ {
		if strings.ContainsRune(canvas.row(y), '+') {
			t.Errorf("Pointer drawn while disabled on row %d", y)
		}
	}
}

func TestRendererPointerAndUnknownError(t *testing.T) {
	canvas := newGridCanvas(41, 6)
	r := NewRenderer(canvas)
	r.DrawRemote(Snapshot{Enabled: true, Tracking: true, Pointer: device.Pointer{X: 0, Y: 0}, HasError: true, TopError: 42})

	x, y := PointerCell(0, 0, 41, 5)
	if canvas.cells[y*41+x] != '+' {
		t.Errorf("Expected pointer at (%d,%d)", x, y)
	}
	if !strings.Contains(canvas.row(5), "error 42") {
		t.Errorf("Expected numeric error label, got %q", canvas.row(5))
	}
}

func TestPointerCellCorners(t *testing.T) {
	tests := []struct {
		px, py float64
		x, y   int
	}{
		{-1, 1, 0, 0},
		{1, -1, 79, 23},
		{5, -5, 79, 23},
	}
	for _, tt := range tests {
		x, y := PointerCell(tt.px, tt.py, 80, 24)
		if x != tt.x || y != tt.y {
			t.Errorf("PointerCell(%v,%v) = (%d,%d), want (%d,%d)", tt.px, tt.py, x, y, tt.x, tt.y)
		}
	}
}
