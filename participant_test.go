package buzzin_test

import (
	"errors"
	"testing"

	"github.com/guslan/buzzin"
)

func newRegistry(t *testing.T, n int) *buzzin.Registry {
	t.Helper()

	names := make([]string, n)
	for i := range names {
		names[i] = string(rune('A' + i))
	}

	r, err := buzzin.NewRegistry(names, "Host")
	if err != nil {
		t.Fatalf(`NewRegistry() returned an error %v`, err)
	}

	return r
}

func assertDevice(t *testing.T, r *buzzin.Registry, slot int, expected buzzin.DeviceID) {
	t.Helper()

	p, err := r.Participant(slot)
	if err != nil {
		t.Fatalf(`Participant(%d) returned an error %v`, slot, err)
	}
	if p.Device != expected {
		t.Fatalf(`Participant(%d).Device = %q, expected %q`, slot, p.Device, expected)
	}
}

func TestNewRegistryRequiresParticipants(t *testing.T) {
	_, err := buzzin.NewRegistry(nil, "Host")
	if !errors.Is(err, buzzin.ErrNoParticipants) {
		t.Fatalf(`NewRegistry(nil) = %v, expected ErrNoParticipants`, err)
	}
}

func TestNewRegistryStartsUnbound(t *testing.T) {
	r := newRegistry(t, 3)

	if r.Len() != 3 {
		t.Fatalf(`Len() = %d, expected 3`, r.Len())
	}
	for i, p := range r.Participants() {
		if p.Slot != i {
			t.Fatalf(`participant %d has slot %d`, i, p.Slot)
		}
		if p.HasDevice() || p.Status != buzzin.StatusNone {
			t.Fatalf(`participant %d = %+v, expected no device and no status`, i, p)
		}
	}
	if m := r.Moderator(); m.Slot != buzzin.ModeratorSlot || m.Name != "Host" || m.HasDevice() {
		t.Fatalf(`Moderator() = %+v`, m)
	}
}

func TestAssign(t *testing.T) {
	r := newRegistry(t, 2)

	if err := r.Assign(0, "dev-a"); err != nil {
		t.Fatalf(`Assign(0, dev-a) returned an error %v`, err)
	}
	assertDevice(t, r, 0, "dev-a")

	slot, ok := r.ParticipantForDevice("dev-a")
	if !ok || slot != 0 {
		t.Fatalf(`ParticipantForDevice(dev-a) = %d, %v, expected 0, true`, slot, ok)
	}
	if !r.IsDeviceAssigned("dev-a") {
		t.Fatalf(`IsDeviceAssigned(dev-a) = false`)
	}
}

func TestAssignRejectsDuplicates(t *testing.T) {
	r := newRegistry(t, 2)
	r.Assign(0, "dev-a")

	if err := r.Assign(1, "dev-a"); !errors.Is(err, buzzin.ErrAlreadyAssigned) {
		t.Fatalf(`Assign(1, dev-a) = %v, expected ErrAlreadyAssigned`, err)
	}
	if err := r.AssignModerator("dev-a"); !errors.Is(err, buzzin.ErrAlreadyAssigned) {
		t.Fatalf(`AssignModerator(dev-a) = %v, expected ErrAlreadyAssigned`, err)
	}
	assertDevice(t, r, 1, "")
}

func TestAssignRejectsInvalidInput(t *testing.T) {
	r := newRegistry(t, 2)

	var invalid buzzin.ErrInvalidSlot
	if err := r.Assign(2, "dev-a"); !errors.As(err, &invalid) || invalid.Slot != 2 || invalid.Len != 2 {
		t.Fatalf(`Assign(2, dev-a) = %v, expected ErrInvalidSlot{2, 2}`, err)
	}
	if err := r.Assign(-1, "dev-a"); !errors.As(err, &invalid) {
		t.Fatalf(`Assign(-1, dev-a) = %v, expected ErrInvalidSlot`, err)
	}
	if err := r.Assign(0, ""); !errors.Is(err, buzzin.ErrUnknownDevice) {
		t.Fatalf(`Assign(0, "") = %v, expected ErrUnknownDevice`, err)
	}
}

func TestModeratorNeverMapsToASlot(t *testing.T) {
	r := newRegistry(t, 1)
	if err := r.AssignModerator("mod"); err != nil {
		t.Fatalf(`AssignModerator(mod) returned an error %v`, err)
	}

	if _, ok := r.ParticipantForDevice("mod"); ok {
		t.Fatalf(`ParticipantForDevice(mod) found a slot`)
	}
	if !r.IsModerator("mod") {
		t.Fatalf(`IsModerator(mod) = false`)
	}
	if r.IsModerator("") {
		t.Fatalf(`IsModerator("") = true`)
	}
}

func TestReset(t *testing.T) {
	r := newRegistry(t, 2)
	r.Assign(0, "dev-a")
	r.Assign(1, "dev-b")
	r.AssignModerator("mod")
	r.SetStatus(1, buzzin.StatusAnswering)

	r.Reset()

	for i := 0; i < r.Len(); i++ {
		assertDevice(t, r, i, "")
		if p, _ := r.Participant(i); p.Status != buzzin.StatusNone {
			t.Fatalf(`participant %d kept status %v`, i, p.Status)
		}
	}
	if r.Moderator().HasDevice() {
		t.Fatalf(`the moderator kept its device`)
	}

	// devices are free to be bound again
	if err := r.Assign(1, "dev-a"); err != nil {
		t.Fatalf(`Assign(1, dev-a) after Reset returned an error %v`, err)
	}
}

func TestParticipantsIsACopy(t *testing.T) {
	r := newRegistry(t, 1)

	ps := r.Participants()
	ps[0].Device = "dev-x"

	assertDevice(t, r, 0, "")
}

func TestUpdateStatuses(t *testing.T) {
	r := newRegistry(t, 3)
	r.SetStatus(0, buzzin.StatusConfiguring)

	r.UpdateStatuses(func(slot int) buzzin.Status {
		if slot == 2 {
			return buzzin.StatusAnswering
		}
		return buzzin.StatusNone
	})

	expected := []buzzin.Status{buzzin.StatusNone, buzzin.StatusNone, buzzin.StatusAnswering}
	for i, p := range r.Participants() {
		if p.Status != expected[i] {
			t.Fatalf(`participant %d has status %v, expected %v`, i, p.Status, expected[i])
		}
	}
	if r.Moderator().Status != buzzin.StatusNone {
		t.Fatalf(`the moderator has status %v`, r.Moderator().Status)
	}
}
