package buzzin

// DeviceID identifies a physical input device.
// The empty DeviceID means "no device".
type DeviceID string

// Status is what the display shows for a single participant
type Status byte

const (
	StatusNone Status = iota
	StatusConfiguring
	StatusAnswering
)

func (s Status) String() string {
	switch s {
	case StatusConfiguring:
		return "configuring"
	case StatusAnswering:
		return "answering"
	default:
		return "none"
	}
}

// Participant is a contestant slot or the moderator
type Participant struct {
	Name   string
	Slot   int
	Device DeviceID
	Status Status
}

// HasDevice reports whether a device was bound during setup
func (p Participant) HasDevice() bool {
	return p.Device != ""
}

// ModeratorSlot is the slot reported for the moderator
const ModeratorSlot = -1

// Registry holds the ordered contestant slots plus the moderator.
// A device is bound to at most one of them at any time.
type Registry struct {
	participants []Participant
	moderator    Participant
}

// NewRegistry creates one slot per name, in order, plus the moderator.
// Every slot starts without a device and with StatusNone.
func NewRegistry(names []string, moderator string) (*Registry, error) {
	if len(names) == 0 {
		return nil, ErrNoParticipants
	}

	r := &Registry{
		participants: make([]Participant, len(names)),
		moderator: Participant{
			Name: moderator,
			Slot: ModeratorSlot,
		},
	}
	for i, name := range names {
		r.participants[i] = Participant{
			Name: name,
			Slot: i,
		}
	}

	return r, nil
}

// Len is the number of contestant slots, the moderator excluded
func (r Registry) Len() int {
	return len(r.participants)
}

// Participant returns a copy of the participant at slot
func (r Registry) Participant(slot int) (Participant, error) {
	if err := r.checkSlot(slot); err != nil {
		return Participant{}, err
	}

	return r.participants[slot], nil
}

// Participants returns a copy of all contestant slots in order
func (r Registry) Participants() []Participant {
	out := make([]Participant, len(r.participants))
	copy(out, r.participants)

	return out
}

func (r Registry) Moderator() Participant {
	return r.moderator
}

func (r Registry) IsDeviceAssigned(dev DeviceID) bool {
	if dev == "" {
		return false
	}

	if r.moderator.Device == dev {
		return true
	}
	for _, p := range r.participants {
		if p.Device == dev {
			return true
		}
	}

	return false
}

// Assign binds dev to slot until the next Reset
func (r *Registry) Assign(slot int, dev DeviceID) error {
	if err := r.checkSlot(slot); err != nil {
		return err
	}
	if dev == "" {
		return ErrUnknownDevice
	}
	if r.IsDeviceAssigned(dev) {
		return ErrAlreadyAssigned
	}

	r.participants[slot].Device = dev

	return nil
}

// AssignModerator binds dev to the moderator until the next Reset
func (r *Registry) AssignModerator(dev DeviceID) error {
	if dev == "" {
		return ErrUnknownDevice
	}
	if r.IsDeviceAssigned(dev) {
		return ErrAlreadyAssigned
	}

	r.moderator.Device = dev

	return nil
}

// ParticipantForDevice maps a buzz to a contestant slot.
// The moderator's device never matches.
func (r Registry) ParticipantForDevice(dev DeviceID) (int, bool) {
	if dev == "" {
		return 0, false
	}

	for _, p := range r.participants {
		if p.Device == dev {
			return p.Slot, true
		}
	}

	return 0, false
}

func (r Registry) IsModerator(dev DeviceID) bool {
	return dev != "" && r.moderator.Device == dev
}

func (r *Registry) SetStatus(slot int, status Status) error {
	if err := r.checkSlot(slot); err != nil {
		return err
	}

	r.participants[slot].Status = status

	return nil
}

// UpdateStatuses sets the status of every slot to status(slot).
// The moderator never has a status.
func (r *Registry) UpdateStatuses(status func(slot int) Status) {
	for i := range r.participants {
		r.participants[i].Status = status(i)
	}
	r.moderator.Status = StatusNone
}

func (r *Registry) ClearAllStatuses() {
	for i := range r.participants {
		r.participants[i].Status = StatusNone
	}
	r.moderator.Status = StatusNone
}

// Reset drops every device binding and status
func (r *Registry) Reset() {
	for i := range r.participants {
		r.participants[i].Device = ""
	}
	r.moderator.Device = ""
	r.ClearAllStatuses()
}

func (r Registry) checkSlot(slot int) error {
	if slot < 0 || slot >= len(r.participants) {
		return ErrInvalidSlot{
			Slot: slot,
			Len:  len(r.participants),
		}
	}

	return nil
}
