package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/reversi/internal/board"
	"github.com/hailam/reversi/internal/game"
)

// flipDuration is how long a captured disc takes to turn over.
const flipDuration = 350 * time.Millisecond

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
	return &ToastManager{maxStack: 3}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
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

// Draw renders all active toasts centred over the board.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	face := scaledFace(regularFace)
	if face == nil {
		return
	}

	y := 40.0 * UIScale
	for _, t := range tm.toasts {
		elapsed := time.Since(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		alpha := 1.0
		fadeTime := 0.2
		if elapsed < fadeTime {
			alpha = elapsed / fadeTime
		} else if elapsed > duration-fadeTime {
			alpha = (duration - elapsed) / fadeTime
		}
		alpha = math.Max(0, math.Min(1, alpha))

		var bgColor color.RGBA
		switch t.Type {
		case ToastWarning:
			bgColor = color.RGBA{180, 140, 20, uint8(220 * alpha)}
		case ToastSuccess:
			bgColor = color.RGBA{50, 150, 50, uint8(220 * alpha)}
		default:
			bgColor = color.RGBA{50, 100, 150, uint8(220 * alpha)}
		}
		textColor := color.RGBA{255, 255, 255, uint8(255 * alpha)}

		w, h := text.Measure(t.Message, face, 0)
		padding := 12.0 * UIScale
		boxW := w + padding*2
		boxH := h + padding*2
		x := float64(BoardSize)*UIScale/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bgColor, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, t.Message, face, op)

		y += boxH + 8*UIScale
	}
}

// FlipAnimation turns one captured disc over.
type FlipAnimation struct {
	Square    board.Square
	StartTime time.Time
	Duration  time.Duration
}

// AnimationManager manages disc animations.
type AnimationManager struct {
	flips []*FlipAnimation
	now   func() time.Time
}

// NewAnimationManager creates a new animation manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{now: time.Now}
}

// StartFlips begins a flip animation on every square, staggered outwards in
// the order the capture reported them.
func (am *AnimationManager) StartFlips(squares []board.Square) {
	start := am.now()
	for i, sq := range squares {
		am.flips = append(am.flips, &FlipAnimation{
			Square:    sq,
			StartTime: start.Add(time.Duration(i) * 40 * time.Millisecond),
			Duration:  flipDuration,
		})
	}
}

// Update removes finished animations.
func (am *AnimationManager) Update() {
	now := am.now()
	active := am.flips[:0]
	for _, f := range am.flips {
		if now.Sub(f.StartTime) < f.Duration {
			active = append(active, f)
		}
	}
	am.flips = active
}

// FlipScale returns the horizontal scale of the disc on sq: 1 when at rest,
// shrinking to 0 halfway through a flip and growing back to 1.
func (am *AnimationManager) FlipScale(sq board.Square) float64 {
	for _, f := range am.flips {
		if f.Square != sq {
			continue
		}
		progress := am.now().Sub(f.StartTime).Seconds() / f.Duration.Seconds()
		if progress < 0 || progress >= 1 {
			return 1
		}
		return math.Abs(math.Cos(progress * math.Pi))
	}
	return 1
}

// Active reports whether any animation is still running.
func (am *AnimationManager) Active() bool {
	return len(am.flips) > 0
}

// FeedbackManager coordinates all feedback systems.
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
func (fm *FeedbackManager) Draw(screen *ebiten.Image) {
	fm.toasts.Draw(screen)
}

// Animations returns the animation manager for renderer integration.
func (fm *FeedbackManager) Animations() *AnimationManager {
	return fm.animations
}

// Audio returns the audio manager.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}

// OnMove animates the captured discs and plays the move sounds.
func (fm *FeedbackManager) OnMove(ev game.MoveEvent) {
	fm.animations.StartFlips(ev.Flips)
	fm.audio.Play(SoundPlace)
	if len(ev.Flips) > 0 {
		fm.audio.Play(SoundFlip)
	}
}

// OnPass announces a skipped turn.
func (fm *FeedbackManager) OnPass(side board.Cell) {
	fm.toasts.Show(side.String()+" has no move and passes", ToastWarning, 2*time.Second)
	fm.audio.Play(SoundPass)
}

// OnGameOver plays the end-of-game sound from the human's point of view.
func (fm *FeedbackManager) OnGameOver(r game.Result) {
	toastType := ToastInfo
	if r.Winner() == board.Black {
		toastType = ToastSuccess
	}
	fm.toasts.Show(r.String(), toastType, 3*time.Second)
	fm.audio.Play(gameOverSound(r))
}

// gameOverSound picks the cue for a finished game. A tie gets the neutral
// pass sound.
func gameOverSound(r game.Result) SoundType {
	switch r.Winner() {
	case board.Black:
		return SoundWin
	case board.White:
		return SoundLoss
	default:
		return SoundPass
	}
}
