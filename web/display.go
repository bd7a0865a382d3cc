package web

import (
	"encoding/json"
	"log/slog"

	"github.com/guslan/buzzin"
)

// SlotFrame is one participant square as sent to browsers
type SlotFrame struct {
	Slot      int              `json:"slot"`
	Name      string           `json:"name"`
	Color     string           `json:"color"`
	Highlight buzzin.Highlight `json:"highlight"`
}

// Frame is what browsers draw
type Frame struct {
	Label string `json:"label"`

	// Control tells the page whether to show the Skip and Reconfigure buttons
	Control bool        `json:"control"`
	Slots   []SlotFrame `json:"slots"`
}

// SetSlots implements buzzin.SlotAware.
func (s *Server) SetSlots(slots []buzzin.SlotView) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frame.Slots = make([]SlotFrame, len(slots))
	for i, slot := range slots {
		s.frame.Slots[i] = SlotFrame{
			Slot:      slot.Slot,
			Name:      slot.Name,
			Color:     buzzin.ColorHex(slot.Color),
			Highlight: slot.Highlight,
		}
	}
}

// Boot implements buzzin.Display.
func (s *Server) Boot() error {
	return nil
}

// Highlight implements buzzin.Display.
func (s *Server) Highlight(slot int, h buzzin.Highlight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slot < 0 || slot >= len(s.frame.Slots) {
		return buzzin.ErrInvalidSlot{Slot: slot, Len: len(s.frame.Slots)}
	}
	s.frame.Slots[slot].Highlight = h

	return nil
}

// Render implements buzzin.Display. It ends the frame and pushes it to every client.
func (s *Server) Render(label string) error {
	s.mu.Lock()
	s.frame.Label = label
	s.mu.Unlock()

	s.broadcast(s.encodedFrame())

	return nil
}

// RecenterPointer implements buzzin.Display. Browsers keep their own pointer.
func (s *Server) RecenterPointer() {
}

func (s *Server) Frame() Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f := Frame{
		Label:   s.frame.Label,
		Control: s.frame.Control,
		Slots:   make([]SlotFrame, len(s.frame.Slots)),
	}
	copy(f.Slots, s.frame.Slots)

	return f
}

func (s *Server) encodedFrame() []byte {
	payload, err := json.Marshal(s.Frame())
	if err != nil {
		slog.Error("Error encoding frame", slog.Any("error", err))
		return []byte("{}")
	}

	return payload
}
