package buzzin_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/guslan/buzzin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{}

func (failingSource) Devices() ([]buzzin.Device, error) {
	return nil, errors.New("no access")
}

func collect(bus *buzzin.Bus) map[buzzin.DeviceID][]buzzin.Signal {
	got := map[buzzin.DeviceID][]buzzin.Signal{}
	bus.Subscribe(func(e buzzin.Event) {
		got[e.Device] = append(got[e.Device], e.Signal)
	})
	bus.Pump()

	return got
}

func TestSignalMapLookup(t *testing.T) {
	m := buzzin.DefaultSignalMap

	s, ok := m.Lookup(buzzin.InputEvent{Type: buzzin.EvKey, Code: buzzin.BtnLeft, Value: 1})
	assert.True(t, ok)
	assert.Equal(t, buzzin.SignalPrimary, s)

	// releases, autorepeats and pointer motion carry no signal
	for _, e := range []buzzin.InputEvent{
		{Type: buzzin.EvKey, Code: buzzin.BtnLeft, Value: 0},
		{Type: buzzin.EvKey, Code: buzzin.BtnLeft, Value: 2},
		{Type: buzzin.EvRel, Code: 0, Value: 1},
		{Type: buzzin.EvKey, Code: buzzin.BtnRight, Value: 1},
		// contestants' keyboards cannot reset the game
		{Type: buzzin.EvKey, Code: buzzin.KeyR, Value: 1},
	} {
		_, ok := m.Lookup(e)
		assert.False(t, ok, "%+v", e)
	}

	_, ok = buzzin.ButtonSignalMap.Lookup(buzzin.InputEvent{Type: buzzin.EvKey, Code: buzzin.KeyEsc, Value: 1})
	assert.False(t, ok)

	s, ok = buzzin.TerminalSignalMap.Lookup(buzzin.InputEvent{Type: buzzin.EvKey, Code: buzzin.KeyR, Value: 1})
	assert.True(t, ok)
	assert.Equal(t, buzzin.SignalReconfigure, s)
}

func TestMonitorPublishesMappedPresses(t *testing.T) {
	bus := buzzin.NewBus(16)
	a := buzzin.NewInMemoryDevice("a")
	b := buzzin.NewInMemoryDevice("b")

	a.Press(buzzin.BtnLeft)
	a.Send(buzzin.InputEvent{Type: buzzin.EvRel, Code: 0, Value: 1})
	a.Press(buzzin.KeyR)
	b.Press(buzzin.KeyEsc)
	b.Press(buzzin.KeySpace)
	a.Close()
	b.Close()

	wg := buzzin.Monitor(context.Background(), bus, []buzzin.Device{a, b}, nil)
	wg.Wait()

	got := collect(bus)
	assert.Equal(t, []buzzin.Signal{buzzin.SignalPrimary}, got["a"])
	assert.Equal(t, []buzzin.Signal{buzzin.SignalSkip}, got["b"])
}

func TestMonitorWithCustomSignals(t *testing.T) {
	bus := buzzin.NewBus(4)
	dev := buzzin.NewInMemoryDevice("kbd")
	dev.Press(buzzin.KeySpace)
	dev.Press(buzzin.BtnLeft)
	dev.Close()

	buzzin.Monitor(context.Background(), bus, []buzzin.Device{dev}, buzzin.SignalMap{
		buzzin.KeySpace: buzzin.SignalPrimary,
	}).Wait()

	assert.Equal(t, []buzzin.Signal{buzzin.SignalPrimary}, collect(bus)["kbd"])
}

func TestMonitorStopsWithTheContext(t *testing.T) {
	bus := buzzin.NewBus(1)
	dev := buzzin.NewInMemoryDevice("a")
	defer dev.Close()

	ctx, cancel := context.WithCancel(context.Background())
	wg := buzzin.Monitor(ctx, bus, []buzzin.Device{dev}, nil)

	// the first press fills the queue, the second blocks until ctx is done
	dev.Press(buzzin.BtnLeft)
	require.Eventually(t, func() bool { return bus.Pending() == 1 }, time.Second, time.Millisecond)
	dev.Press(buzzin.BtnLeft)
	cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("the device reader did not stop")
	}
	assert.Equal(t, 1, bus.Pending())
}

func TestJoinSources(t *testing.T) {
	a := buzzin.NewInMemoryDevice("a")
	b := buzzin.NewInMemoryDevice("b")

	devices, err := buzzin.JoinSources(
		buzzin.InMemorySource{a},
		failingSource{},
		buzzin.InMemorySource{b},
	).Devices()
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, buzzin.DeviceID("a"), devices[0].ID())
	assert.Equal(t, buzzin.DeviceID("b"), devices[1].ID())

	_, err = buzzin.JoinSources(failingSource{}, failingSource{}).Devices()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no access"))
}

func TestMonitoredGame(t *testing.T) {
	game, err := buzzin.NewGame(buzzin.NewDummyDisplay(), buzzin.NewDummyBuzzer(), buzzin.WithParticipants("Ann", "Bob"))
	require.NoError(t, err)
	require.NoError(t, game.Boot())

	devices := []*buzzin.InMemoryDevice{
		buzzin.NewInMemoryDevice("ann"),
		buzzin.NewInMemoryDevice("bob"),
		buzzin.NewInMemoryDevice("host"),
	}
	source := buzzin.InMemorySource{}
	for _, dev := range devices {
		source = append(source, dev)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watched, err := game.Watch(ctx, source)
	require.NoError(t, err)
	assert.Len(t, watched, 3)

	// one press at a time: the order between devices is only defined by arrival
	step := func(dev *buzzin.InMemoryDevice, expected buzzin.State) {
		t.Helper()
		dev.Press(buzzin.BtnLeft)
		require.Eventually(t, func() bool {
			game.Pump()
			return game.Arbiter.State() == expected
		}, time.Second, time.Millisecond)
	}

	step(devices[0], buzzin.ConfiguringParticipant{Slot: 1})
	step(devices[1], buzzin.ConfiguringModerator{})
	step(devices[2], buzzin.InPlay{})
	step(devices[1], buzzin.Answering{Slot: 1})
	step(devices[2], buzzin.InPlay{})

	for _, dev := range devices {
		dev.Close()
	}
}

// TestWatchSignals checks that a source watched for buzzes only cannot skip
func TestWatchSignals(t *testing.T) {
	game, err := buzzin.NewGame(buzzin.NewDummyDisplay(), buzzin.NewDummyBuzzer(), buzzin.WithParticipants("Ann", "Bob"))
	require.NoError(t, err)
	require.NoError(t, game.Boot())

	keyboard := buzzin.NewInMemoryDevice("kbd")
	keyboard.Press(buzzin.KeyEsc)
	keyboard.Press(buzzin.KeyR)
	keyboard.Press(buzzin.BtnLeft)
	keyboard.Close()

	watched, err := game.WatchSignals(context.Background(), buzzin.InMemorySource{keyboard}, buzzin.ButtonSignalMap)
	require.NoError(t, err)
	require.Len(t, watched, 1)

	require.Eventually(t, func() bool {
		game.Pump()
		return game.Arbiter.State() == buzzin.ConfiguringParticipant{Slot: 1}
	}, time.Second, time.Millisecond)

	slot, ok := game.Registry.ParticipantForDevice("kbd")
	assert.True(t, ok)
	assert.Equal(t, 0, slot)
}
