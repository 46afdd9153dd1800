package hud

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Canvas is the drawing surface the renderer needs; tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

var (
	styleBar     = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 20, 30)).Foreground(tcell.NewRGBColor(180, 180, 190))
	styleOn      = styleBar.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(80, 200, 120))
	styleOff     = styleBar.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(200, 70, 70))
	styleFrozen  = styleBar.Foreground(tcell.NewRGBColor(120, 200, 255)).Bold(true)
	styleLock    = styleBar.Foreground(tcell.NewRGBColor(255, 220, 90)).Bold(true)
	styleRumble  = styleBar.Foreground(tcell.NewRGBColor(255, 140, 60))
	styleError   = styleBar.Foreground(tcell.NewRGBColor(255, 90, 90)).Bold(true)
	stylePointer = tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 255, 100)).Bold(true)
)

// Renderer draws the snapshot as a status line on the bottom row plus a pointer glyph
type Renderer struct {
	canvas Canvas

	// ErrorNames labels known error levels, unknown levels print as numbers
	ErrorNames map[int]string

	// TargetName resolves a lock target to a label; nil prints the entity id
	TargetName func(snap Snapshot) string
}

// NewRenderer creates a renderer drawing on canvas
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// DrawRemote implements HUD
func (r *Renderer) DrawRemote(snap Snapshot) {
	w, h := r.canvas.Size()
	if w <= 0 || h <= 0 {
		return
	}
	y := h - 1

	for x := 0; x < w; x++ {
		r.canvas.SetContent(x, y, ' ', nil, styleBar)
	}

	x := 0
	if snap.Enabled {
		x = r.text(x, y, " REMOTE ON ", styleOn)
	} else {
		x = r.text(x, y, " REMOTE OFF ", styleOff)
	}
	x = r.text(x, y, " "+snap.State, styleBar)

	if snap.Frozen {
		x = r.text(x, y, fmt.Sprintf(" FROZEN %.1fs", snap.FreezeRemaining.Seconds()), styleFrozen)
	}
	if snap.Locked {
		x = r.text(x, y, " LOCK "+r.targetLabel(snap), styleLock)
	}
	if snap.Rumbling {
		x = r.text(x, y, fmt.Sprintf(" RUMBLE %.2fs", snap.RumbleRemaining.Seconds()), styleRumble)
	}
	if snap.HasError {
		r.text(x, y, " ! "+r.errorLabel(snap.TopError), styleError)
	}

	if snap.Enabled && snap.Tracking && h > 1 {
		px, py := PointerCell(snap.Pointer.X, snap.Pointer.Y, w, h-1)
		r.canvas.SetContent(px, py, '+', nil, stylePointer)
	}
}

// PointerCell maps a normalized pointer onto a w*h cell grid
func PointerCell(px, py float64, w, h int) (int, int) {
	x := int((px + 1) / 2 * float64(w-1))
	y := int((1 - py) / 2 * float64(h-1))
	return clamp(x, 0, w-1), clamp(y, 0, h-1)
}

func (r *Renderer) targetLabel(snap Snapshot) string {
	if r.TargetName != nil {
		if name := r.TargetName(snap); name != "" {
			return name
		}
	}
	return fmt.Sprintf("#%d", snap.LockTarget.ID())
}

func (r *Renderer) errorLabel(level int) string {
	if name, ok := r.ErrorNames[level]; ok {
		return fmt.Sprintf("%d %s", level, name)
	}
	return fmt.Sprintf("error %d", level)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	w, _ := r.canvas.Size()
	for _, ch := range s {
		if x >= w {
			break
		}
		r.canvas.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
