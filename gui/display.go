package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/guslan/buzzin"
)

// SetSlots implements buzzin.SlotAware.
func (app *App) SetSlots(slots []buzzin.SlotView) {
	app.slots = slots
	app.highlights = make([]buzzin.Highlight, len(slots))
}

// Boot implements buzzin.Display and buzzin.Buzzer.
func (app *App) Boot() error {
	return nil
}

// Highlight implements buzzin.Display.
func (app *App) Highlight(slot int, h buzzin.Highlight) error {
	if slot < 0 || slot >= len(app.highlights) {
		return buzzin.ErrInvalidSlot{Slot: slot, Len: len(app.highlights)}
	}

	app.highlights[slot] = h

	return nil
}

// Render implements buzzin.Display. Drawing happens on the next frame.
func (app *App) Render(label string) error {
	app.label = label

	return nil
}

// RecenterPointer implements buzzin.Display.
func (app *App) RecenterPointer() {
	if !rl.IsWindowReady() {
		return
	}

	rl.SetMousePosition(app.config.PointerX, app.config.PointerY)
}

// Play implements buzzin.Buzzer.
func (app *App) Play() {
	if app.hasSound {
		rl.PlaySound(app.sound)
	}
}

// Stop implements buzzin.Buzzer.
func (app *App) Stop() {
	if app.hasSound && rl.IsSoundPlaying(app.sound) {
		rl.StopSound(app.sound)
	}
}
