package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func Test_NewBlink(t *testing.T) {
	b := NewBlink()

	assert.False(t, b.IsActive())
	assert.Equal(t, blinkEmpty, b.Frame())
	assert.False(t, b.Update())
}

func Test_Blink_Trigger(t *testing.T) {
	b := NewBlink()
	b.Trigger(2)

	assert.True(t, b.IsActive())
}

func Test_Blink_Trigger_ZeroBeats(t *testing.T) {
	b := NewBlink()
	b.Trigger(0)

	assert.False(t, b.IsActive())
}

func Test_Blink_Stop(t *testing.T) {
	b := NewBlink()
	b.Trigger(DefaultBlinkBeats)
	b.Update()
	b.Stop()

	assert.False(t, b.IsActive())
	assert.Equal(t, blinkEmpty, b.Frame())
}

func Test_Blink_FinishesAfterBeats(t *testing.T) {
	b := NewBlink()
	b.Trigger(DefaultBlinkBeats)

	ticks := 0
	for b.Update() {
		ticks++
		if ticks > 1000 {
			t.Fatal("animation never finished")
		}
	}

	assert.Equal(t, DefaultBlinkBeats*(blinkOnTicks+blinkOffTicks)-1, ticks)
	assert.False(t, b.IsActive())
	assert.Equal(t, blinkEmpty, b.Frame())
}

func Test_Blink_ShowsFullFrame(t *testing.T) {
	b := NewBlink()
	b.Trigger(5)

	frames := make(map[string]bool)
	for b.Update() {
		frames[b.Frame()] = true
	}

	assert.True(t, frames[blinkFull], "indicator lights up while pulsing")
	assert.True(t, frames[blinkEmpty], "indicator dims between beats")
}

func Test_Blink_Render(t *testing.T) {
	b := NewBlink()

	assert.NotEmpty(t, b.Render(lipgloss.NewStyle()))
}
