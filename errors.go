package buzzin

import (
	"errors"
	"fmt"
)

var ErrAlreadyAssigned = errors.New("the device is already assigned")
var ErrUnknownDevice = errors.New("the device is not assigned to any participant")
var ErrNoParticipants = errors.New("at least one participant is required")
var ErrBusClosed = errors.New("the event bus is closed")
var ErrGameIsNotBooted = errors.New("the game has not been booted properly")

type ErrInvalidSlot struct {
	Slot int
	Len  int
}

func (err ErrInvalidSlot) Error() string {
	return fmt.Sprintf("slot=%d is out of range [0, %d)", err.Slot, err.Len)
}
