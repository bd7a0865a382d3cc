package buzzin

import "fmt"

// State is the arbitration state. It is one of
// ConfiguringParticipant, ConfiguringModerator, InPlay or Answering.
type State interface {
	fmt.Stringer
	isState()
}

// ConfiguringParticipant waits for the device of the participant at Slot
type ConfiguringParticipant struct {
	Slot int
}

// ConfiguringModerator waits for the moderator's device
type ConfiguringModerator struct{}

// InPlay waits for the first buzz
type InPlay struct{}

// Answering holds the participant at Slot until the moderator clears it
type Answering struct {
	Slot int
}

func (ConfiguringParticipant) isState() {}
func (ConfiguringModerator) isState()   {}
func (InPlay) isState()                 {}
func (Answering) isState()              {}

func (s ConfiguringParticipant) String() string {
	return fmt.Sprintf("configuring_participant(%d)", s.Slot)
}

func (ConfiguringModerator) String() string {
	return "configuring_moderator"
}

func (InPlay) String() string {
	return "in_play"
}

func (s Answering) String() string {
	return fmt.Sprintf("answering(%d)", s.Slot)
}

// IsConfiguring reports whether s belongs to the setup phase
func IsConfiguring(s State) bool {
	switch s.(type) {
	case ConfiguringParticipant, ConfiguringModerator:
		return true
	}

	return false
}

// statusOf derives the status displayed for slot while in state s
func statusOf(s State, slot int) Status {
	switch st := s.(type) {
	case ConfiguringParticipant:
		if st.Slot == slot {
			return StatusConfiguring
		}
	case Answering:
		if st.Slot == slot {
			return StatusAnswering
		}
	}

	return StatusNone
}
