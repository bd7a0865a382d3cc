package buzzin

import "fmt"

// SlotView is the presentation of one participant
type SlotView struct {
	Slot      int       `json:"slot"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Device    DeviceID  `json:"device,omitempty"`
	Status    Status    `json:"status"`
	Highlight Highlight `json:"highlight"`
}

// View is a snapshot of everything a display needs to draw the game.
// It is computed from the arbiter and never mutated by displays.
type View struct {
	Label     string     `json:"label"`
	State     string     `json:"state"`
	Round     string     `json:"round,omitempty"`
	Answering int        `json:"answering"`
	Slots     []SlotView `json:"slots"`
	Moderator SlotView   `json:"moderator"`
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*s = StatusNone
	case "configuring":
		*s = StatusConfiguring
	case "answering":
		*s = StatusAnswering
	default:
		return fmt.Errorf("unknown status %q", text)
	}

	return nil
}

func (h Highlight) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Highlight) UnmarshalText(text []byte) error {
	switch string(text) {
	case "neutral":
		*h = HighlightNeutral
	case "config":
		*h = HighlightConfig
	case "answer":
		*h = HighlightAnswer
	default:
		return fmt.Errorf("unknown highlight %q", text)
	}

	return nil
}

// NewView builds the snapshot for the arbiter's current state.
// colors is indexed by slot, missing entries fall back to DefaultColor.
func NewView(a *Arbiter, labels *Labels, colors []string) View {
	r := a.Registry()
	v := View{
		Label:     labels.Describe(a.State(), r),
		State:     a.State().String(),
		Round:     a.Round(),
		Answering: -1,
		Slots:     make([]SlotView, 0, r.Len()),
	}

	if st, ok := a.State().(Answering); ok {
		v.Answering = st.Slot
	}

	for _, p := range r.Participants() {
		color := DefaultColor
		if p.Slot < len(colors) && colors[p.Slot] != "" {
			color = colors[p.Slot]
		}
		v.Slots = append(v.Slots, SlotView{
			Slot:      p.Slot,
			Name:      p.Name,
			Color:     color,
			Device:    p.Device,
			Status:    p.Status,
			Highlight: HighlightFor(p.Status),
		})
	}

	m := r.Moderator()
	v.Moderator = SlotView{
		Slot:   ModeratorSlot,
		Name:   m.Name,
		Device: m.Device,
		Status: m.Status,
	}

	return v
}
