package ui

import (
	"image/color"
	"time"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastSuccess
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{
		toasts:   make([]*Toast, 0),
		maxStack: 3,
	}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	toast := &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	}
	tm.toasts = append(tm.toasts, toast)
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Draw renders all active toasts near the top of a board of the given
// device-pixel width.
func (tm *ToastManager) Draw(screen *ebiten.Image, width, scale float64) {
	face := scaledFace(labelFace, scale)
	if face == nil {
		return
	}

	y := 24.0 * scale
	for _, t := range tm.toasts {
		elapsed := time.Since(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		// Fade in/out
		alpha := 1.0
		fadeTime := 0.2
		if elapsed < fadeTime {
			alpha = elapsed / fadeTime
		} else if elapsed > duration-fadeTime {
			alpha = (duration - elapsed) / fadeTime
		}

		var bgColor color.RGBA
		switch t.Type {
		case ToastWarning:
			bgColor = color.RGBA{180, 140, 20, uint8(220 * alpha)}
		case ToastSuccess:
			bgColor = color.RGBA{50, 150, 50, uint8(220 * alpha)}
		default: // ToastInfo
			bgColor = color.RGBA{50, 100, 150, uint8(220 * alpha)}
		}
		textColor := color.RGBA{255, 255, 255, uint8(255 * alpha)}

		w, h := MeasureText(t.Message, face)
		padding := 10.0 * scale
		boxW := w + padding*2
		boxH := h + padding*2
		x := width/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bgColor, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, t.Message, face, op)

		y += boxH + 8*scale
	}
}

// FlashAnimation represents a square flash effect.
type FlashAnimation struct {
	Square    board.Square
	StartTime time.Time
	Duration  time.Duration
	Color     color.RGBA
}

// AnimationManager manages square flashes.
type AnimationManager struct {
	flashes []*FlashAnimation
}

// NewAnimationManager creates a new animation manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{
		flashes: make([]*FlashAnimation, 0),
	}
}

// StartFlash begins a flash animation on a square.
func (am *AnimationManager) StartFlash(sq board.Square, c color.RGBA) {
	am.flashes = append(am.flashes, &FlashAnimation{
		Square:    sq,
		StartTime: time.Now(),
		Duration:  400 * time.Millisecond,
		Color:     c,
	})
}

// Update removes expired animations.
func (am *AnimationManager) Update() {
	now := time.Now()
	active := am.flashes[:0]
	for _, f := range am.flashes {
		if now.Sub(f.StartTime) < f.Duration {
			active = append(active, f)
		}
	}
	am.flashes = active
}

// DrawFlashes renders all active flash overlays.
func (am *AnimationManager) DrawFlashes(screen *ebiten.Image, renderer *Renderer, v board.View) {
	for _, f := range am.flashes {
		elapsed := time.Since(f.StartTime).Seconds()
		progress := elapsed / f.Duration.Seconds()
		if progress >= 1.0 {
			continue
		}

		// Fade out
		alpha := 1.0 - progress
		c := color.RGBA{f.Color.R, f.Color.G, f.Color.B, uint8(float64(f.Color.A) * alpha)}
		renderer.fillSquare(screen, v, f.Square, c)
	}
}

// FeedbackManager coordinates sound, toasts and flashes.
type FeedbackManager struct {
	toasts     *ToastManager
	animations *AnimationManager
	audio      *AudioManager
}

// NewFeedbackManager creates a new feedback manager.
func NewFeedbackManager() *FeedbackManager {
	return &FeedbackManager{
		toasts:     NewToastManager(),
		animations: NewAnimationManager(),
		audio:      NewAudioManager(),
	}
}

// Update updates all feedback systems.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	fm.animations.Update()
}

// Draw renders all feedback overlays.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, renderer *Renderer, v board.View) {
	fm.animations.DrawFlashes(screen, renderer, v)
	fm.toasts.Draw(screen, renderer.Size()*renderer.scale, renderer.scale)
}

// OnSelect handles a piece being picked up.
func (fm *FeedbackManager) OnSelect() {
	fm.audio.Play(SoundSelect)
}

// OnRefused handles a touch on a piece that cannot move this turn.
func (fm *FeedbackManager) OnRefused(sq board.Square) {
	fm.animations.StartFlash(sq, color.RGBA{255, 80, 80, 150})
}

// OnMoveMade handles a successful move.
func (fm *FeedbackManager) OnMoveMade(to board.Square, isCapture, isCheck bool) {
	fm.animations.StartFlash(to, color.RGBA{247, 247, 105, 140})
	switch {
	case isCheck:
		fm.toasts.Show("Check!", ToastWarning, 2*time.Second)
		fm.audio.Play(SoundCheck)
	case isCapture:
		fm.audio.Play(SoundCapture)
	default:
		fm.audio.Play(SoundMove)
	}
}

// OnGameOver handles the end of a game.
func (fm *FeedbackManager) OnGameOver() {
	fm.audio.Play(SoundGameEnd)
}

// OnNewGame handles the board resetting after a finished game.
func (fm *FeedbackManager) OnNewGame() {
	fm.toasts.Show("New game", ToastInfo, 2*time.Second)
}

// Audio returns the audio manager for settings access.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}
