package buzzin

//go:generate mockgen -package=mocks -destination=mocks/mock_display.go github.com/guslan/buzzin Display

import "errors"

// Highlight is how a participant's square is emphasised
type Highlight byte

const (
	HighlightNeutral Highlight = iota
	HighlightConfig
	HighlightAnswer
)

func (h Highlight) String() string {
	switch h {
	case HighlightConfig:
		return "config"
	case HighlightAnswer:
		return "answer"
	default:
		return "neutral"
	}
}

// HighlightFor maps a participant status to its highlight
func HighlightFor(s Status) Highlight {
	switch s {
	case StatusConfiguring:
		return HighlightConfig
	case StatusAnswering:
		return HighlightAnswer
	default:
		return HighlightNeutral
	}
}

// Display abstraction for the presentation of the game
type Display interface {
	// Boot initializes the component
	Boot() error
	// Highlight sets the highlight of the square at slot
	Highlight(slot int, h Highlight) error
	// Render shows label. It is called last when presenting a View.
	Render(label string) error
	// RecenterPointer moves the pointer back to its resting position
	RecenterPointer()
}

// SlotAware displays learn the names and colours of the slots before Boot
type SlotAware interface {
	SetSlots(slots []SlotView)
}

// Present maps v onto display calls
func Present(d Display, v View) error {
	var errs []error
	for _, slot := range v.Slots {
		if err := d.Highlight(slot.Slot, slot.Highlight); err != nil {
			errs = append(errs, err)
		}
	}

	if err := d.Render(v.Label); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// DummyDisplay is a display that only remembers what it was asked to show
type DummyDisplay struct {
	Label      string
	Highlights map[int]Highlight
	Renders    int
	Recenters  int
}

func NewDummyDisplay() *DummyDisplay {
	return &DummyDisplay{
		Highlights: map[int]Highlight{},
	}
}

func (d *DummyDisplay) Boot() error {
	return nil
}

func (d *DummyDisplay) Highlight(slot int, h Highlight) error {
	d.Highlights[slot] = h
	return nil
}

func (d *DummyDisplay) Render(label string) error {
	d.Label = label
	d.Renders++
	return nil
}

func (d *DummyDisplay) RecenterPointer() {
	d.Recenters++
}

// MultiDisplay forwards every call to all of its displays
type MultiDisplay []Display

func (m MultiDisplay) Boot() error {
	for _, d := range m {
		if err := d.Boot(); err != nil {
			return err
		}
	}

	return nil
}

func (m MultiDisplay) SetSlots(slots []SlotView) {
	for _, d := range m {
		if sa, ok := d.(SlotAware); ok {
			sa.SetSlots(slots)
		}
	}
}

func (m MultiDisplay) Highlight(slot int, h Highlight) error {
	var errs []error
	for _, d := range m {
		if err := d.Highlight(slot, h); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (m MultiDisplay) Render(label string) error {
	var errs []error
	for _, d := range m {
		if err := d.Render(label); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (m MultiDisplay) RecenterPointer() {
	for _, d := range m {
		d.RecenterPointer()
	}
}
