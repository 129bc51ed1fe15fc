package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler collects mouse clicks, screen taps and key presses once per frame.
type InputHandler struct {
	mouseX, mouseY int // Logical coordinates (unscaled)
	tapped         bool
	tapX, tapY     int
	touchIDs       []ebiten.TouchID
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update updates the input state. Call this once per frame.
func (ih *InputHandler) Update() {
	rawX, rawY := ebiten.CursorPosition()
	ih.mouseX, ih.mouseY = unscale(rawX), unscale(rawY)

	ih.tapped = false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ih.tapped = true
		ih.tapX, ih.tapY = ih.mouseX, ih.mouseY
		return
	}

	// Only the first new touch of a frame counts as a tap
	ih.touchIDs = inpututil.AppendJustPressedTouchIDs(ih.touchIDs[:0])
	if len(ih.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(ih.touchIDs[0])
		ih.tapped = true
		ih.tapX, ih.tapY = unscale(x), unscale(y)
	}
}

// Tap returns the logical position of a click or touch that started this
// frame, if any.
func (ih *InputHandler) Tap() (x, y int, ok bool) {
	return ih.tapX, ih.tapY, ih.tapped
}

// MousePosition returns the current mouse position in logical coordinates.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// IsKeyJustPressed returns true if the specified key was just pressed.
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// unscale converts a device coordinate to logical coordinates.
func unscale(v int) int {
	scale := UIScale
	if scale < 1.0 {
		scale = 1.0
	}
	return int(float64(v) / scale)
}
