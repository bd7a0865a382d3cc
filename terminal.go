package buzzin

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/pkg/term"
)

const DefaultTerminalPath = "/dev/tty"

const ctrlC = 0x03

type escState byte

const (
	escNone escState = iota
	// ESC was read
	escStart
	// ESC [
	escCSI
	// ESC O
	escSS3
)

// TerminalKeyboard turns a raw terminal into a set of virtual devices, so a
// game can be run without dedicated hardware:
//
//	1-9          one buzzer each (tty:1 ... tty:9)
//	space/enter  tty:space
//	esc          skip (tty:control)
//	r            reconfigure (tty:control)
type TerminalKeyboard struct {
	path string
	in   io.Reader
	// restores the terminal mode
	restore func() error

	// OnInterrupt is called when Ctrl-C is read, the raw mode swallows SIGINT
	OnInterrupt func()

	devices []*keyDevice
	routes  map[byte]route
	// only touched by the reading goroutine
	seq escState

	boot      sync.Once
	bootErr   error
	closeOnce sync.Once
}

// TerminalSignalMap is the signal map of the TerminalKeyboard devices.
// The terminal belongs to the operator, so its controls may reconfigure.
var TerminalSignalMap = SignalMap{
	BtnLeft: SignalPrimary,
	KeyEsc:  SignalSkip,
	KeyR:    SignalReconfigure,
}

type route struct {
	dev  *keyDevice
	code uint16
}

// NewTerminalKeyboard reads from the terminal at path, /dev/tty when empty
func NewTerminalKeyboard(path string) *TerminalKeyboard {
	if path == "" {
		path = DefaultTerminalPath
	}

	return newKeyboard(path, nil)
}

// NewKeyboardReader reads keys from r instead of a terminal
func NewKeyboardReader(r io.Reader) *TerminalKeyboard {
	return newKeyboard("", r)
}

func newKeyboard(path string, in io.Reader) *TerminalKeyboard {
	kb := &TerminalKeyboard{
		path:    path,
		in:      in,
		restore: func() error { return nil },
		routes:  map[byte]route{},
	}

	for k := byte('1'); k <= '9'; k++ {
		dev := kb.addDevice(DeviceID(fmt.Sprintf("tty:%c", k)), fmt.Sprintf("Terminal key %c", k))
		kb.routes[k] = route{dev: dev, code: BtnLeft}
	}

	space := kb.addDevice("tty:space", "Terminal space bar")
	kb.routes[' '] = route{dev: space, code: BtnLeft}
	kb.routes['\r'] = route{dev: space, code: BtnLeft}

	control := kb.addDevice("tty:control", "Terminal controls")
	kb.routes[ESC] = route{dev: control, code: KeyEsc}
	kb.routes['r'] = route{dev: control, code: KeyR}

	return kb
}

func (kb *TerminalKeyboard) addDevice(id DeviceID, name string) *keyDevice {
	dev := &keyDevice{
		kb:     kb,
		id:     id,
		name:   name,
		events: make(chan InputEvent, 8),
	}
	kb.devices = append(kb.devices, dev)

	return dev
}

// Boot puts the terminal in raw mode and starts reading keys.
// Calling it more than once is a noop.
func (kb *TerminalKeyboard) Boot() error {
	kb.boot.Do(func() {
		if kb.in == nil {
			t, err := term.Open(kb.path, term.RawMode)
			if err != nil {
				kb.bootErr = fmt.Errorf("opening terminal %s: %w", kb.path, err)
				return
			}
			kb.in = t
			kb.restore = func() error {
				if err := t.Restore(); err != nil {
					return err
				}
				return t.Close()
			}
		}

		go kb.read()
	})

	return kb.bootErr
}

// Devices implements DeviceSource
func (kb *TerminalKeyboard) Devices() ([]Device, error) {
	if err := kb.Boot(); err != nil {
		return nil, err
	}

	out := make([]Device, len(kb.devices))
	for i, dev := range kb.devices {
		out[i] = dev
	}

	return out, nil
}

// Close restores the terminal
func (kb *TerminalKeyboard) Close() error {
	var err error
	kb.closeOnce.Do(func() {
		err = kb.restore()
	})

	return err
}

func (kb *TerminalKeyboard) read() {
	defer func() {
		for _, dev := range kb.devices {
			close(dev.events)
		}
	}()

	buf := make([]byte, 64)
	for {
		n, err := kb.in.Read(buf)
		if n > 0 {
			kb.feed(buf[:n])
		}
		if err != nil {
			if err != io.EOF {
				slog.Error("Error reading terminal", slog.Any("error", err))
			}
			return
		}
	}
}

// feed handles one read from the terminal. Arrow, function and Alt keys arrive
// as escape sequences in a single read and are dropped; a lone ESC is the skip key.
func (kb *TerminalKeyboard) feed(chunk []byte) {
	for _, b := range chunk {
		switch kb.seq {
		case escStart:
			switch b {
			case '[':
				kb.seq = escCSI
			case 'O':
				kb.seq = escSS3
			case ESC:
				kb.key(ESC)
			default:
				kb.seq = escNone
			}
			continue

		case escCSI:
			// parameters until the final byte
			if b >= 0x40 && b <= 0x7E {
				kb.seq = escNone
			}
			continue

		case escSS3:
			kb.seq = escNone
			continue
		}

		if b == ESC {
			kb.seq = escStart
			continue
		}
		kb.key(b)
	}

	if kb.seq == escStart {
		kb.seq = escNone
		kb.key(ESC)
	}
}

func (kb *TerminalKeyboard) key(b byte) {
	if b == ctrlC {
		if kb.OnInterrupt != nil {
			kb.OnInterrupt()
		}
		return
	}

	r, ok := kb.routes[b]
	if !ok {
		return
	}

	select {
	case r.dev.events <- InputEvent{Type: EvKey, Code: r.code, Value: 1}:
	default:
		slog.Warn("Dropping key press", slog.String("device", string(r.dev.id)))
	}
}

type keyDevice struct {
	kb     *TerminalKeyboard
	id     DeviceID
	name   string
	events chan InputEvent
}

func (d *keyDevice) ID() DeviceID {
	return d.id
}

func (d *keyDevice) Name() string {
	return d.name
}

func (d *keyDevice) ReadEvent() (InputEvent, error) {
	e, ok := <-d.events
	if !ok {
		return InputEvent{}, io.EOF
	}

	return e, nil
}

// Close implements Device. Closing any key closes the whole keyboard.
func (d *keyDevice) Close() error {
	return d.kb.Close()
}
