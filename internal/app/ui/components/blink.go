package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	blinkEmpty = "◯"
	blinkFull  = "◉"

	blinkFPS              = UITicksPerSecond
	blinkAngularFrequency = 8.0
	blinkDampingRatio     = 0.7

	// ticks spent on each half of a beat
	blinkOnTicks  = 2
	blinkOffTicks = 2

	// DefaultBlinkBeats is how many times the indicator flashes after an update
	DefaultBlinkBeats = 3

	blinkFrameThreshold = 0.3
	blinkPositionFull   = 1.0
	blinkPositionEmpty  = 0.0
)

// Blink flashes an indicator a fixed number of times using spring physics,
// then goes quiet until triggered again
type Blink struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	beatsLeft int
	tickCount int
}

// NewBlink creates an idle blink animator
func NewBlink() *Blink {
	return &Blink{
		spring: harmonica.NewSpring(harmonica.FPS(blinkFPS), blinkAngularFrequency, blinkDampingRatio),
	}
}

// Trigger starts flashing for the given number of beats
func (b *Blink) Trigger(beats int) {
	if beats <= 0 {
		return
	}

	b.beatsLeft = beats
	b.tickCount = 0
	b.target = blinkPositionFull
}

// Stop ends the animation immediately
func (b *Blink) Stop() {
	b.beatsLeft = 0
	b.tickCount = 0
	b.target = blinkPositionEmpty
	b.position = blinkPositionEmpty
	b.velocity = blinkPositionEmpty
}

// Update advances the animation by one UI tick and reports whether it is still running
func (b *Blink) Update() bool {
	if b.beatsLeft == 0 {
		return false
	}

	b.tickCount++
	b.position, b.velocity = b.spring.Update(b.position, b.velocity, b.target)

	switch b.target {
	case blinkPositionFull:
		if b.tickCount >= blinkOnTicks {
			b.target = blinkPositionEmpty
			b.tickCount = 0
		}
	default:
		if b.tickCount >= blinkOffTicks {
			b.beatsLeft--
			b.tickCount = 0

			if b.beatsLeft > 0 {
				b.target = blinkPositionFull
			}
		}
	}

	if b.beatsLeft == 0 {
		b.Stop()
	}

	return b.beatsLeft > 0
}

// Frame returns the current indicator glyph
func (b *Blink) Frame() string {
	if b.beatsLeft == 0 || b.position < blinkFrameThreshold {
		return blinkEmpty
	}

	return blinkFull
}

// Render returns the styled frame
func (b *Blink) Render(style lipgloss.Style) string {
	return style.Render(b.Frame())
}

// IsActive returns whether the animation is running
func (b *Blink) IsActive() bool {
	return b.beatsLeft > 0
}
