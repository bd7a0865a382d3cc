package buzzin

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ESC = 0x1B

// TerminalDisplay draws the squares and the label in a terminal, redrawing in place
type TerminalDisplay struct {
	terminal   io.Writer
	slots      []SlotView
	highlights []Highlight

	SquareWidth, SquareHeight int
}

func NewTerminalDisplay() *TerminalDisplay {
	return NewTerminalDisplayWithOutput(os.Stdout)
}

func NewTerminalDisplayWithOutput(out io.Writer) *TerminalDisplay {
	return &TerminalDisplay{
		terminal:     out,
		SquareWidth:  14,
		SquareHeight: 3,
	}
}

// SetSlots implements SlotAware.
func (disp *TerminalDisplay) SetSlots(slots []SlotView) {
	disp.slots = slots
	disp.highlights = make([]Highlight, len(slots))
}

// Boot implements Display.
func (disp *TerminalDisplay) Boot() error {
	_, err := disp.terminal.Write([]byte{
		// Move cursor do start
		ESC, '[', '1', 'H',
		// clear the terminal
		ESC, '[', '0', 'J',
	})

	return err
}

// Highlight implements Display.
func (disp *TerminalDisplay) Highlight(slot int, h Highlight) error {
	if slot < 0 {
		return ErrInvalidSlot{Slot: slot, Len: len(disp.highlights)}
	}
	for slot >= len(disp.highlights) {
		disp.highlights = append(disp.highlights, HighlightNeutral)
	}

	disp.highlights[slot] = h

	return nil
}

// Render implements Display.
func (disp *TerminalDisplay) Render(label string) error {
	squares := make([]string, len(disp.highlights))
	for i, h := range disp.highlights {
		squares[i] = disp.square(i, h)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, squares...)
	text := lipgloss.NewStyle().Bold(true).Padding(1, 1).Render(label)

	buff := make([]byte, 0, len(row)+len(text)+16)
	buff = append(buff, ESC, '[', '1', 'H', ESC, '[', '0', 'J')
	// the terminal may be in raw mode, where \n does not return the carriage
	buff = append(buff, strings.ReplaceAll(row+"\n"+text+"\n", "\n", "\r\n")...)

	_, err := disp.terminal.Write(buff)
	return err
}

// RecenterPointer implements Display. Terminals have no pointer to move.
func (disp *TerminalDisplay) RecenterPointer() {
}

func (disp *TerminalDisplay) square(slot int, h Highlight) string {
	name := ""
	color := DefaultColor
	if slot < len(disp.slots) {
		name = disp.slots[slot].Name
		color = disp.slots[slot].Color
	}

	border := color
	switch h {
	case HighlightConfig:
		border = ConfigColor
	case HighlightAnswer:
		border = AnswerColor
	}

	return lipgloss.NewStyle().
		Width(disp.SquareWidth).
		Height(disp.SquareHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color(ColorHex(color))).
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorHex(border))).
		MarginRight(1).
		Render(name)
}

// TerminalBell is a Buzzer that rings the terminal bell
type TerminalBell struct {
	terminal io.Writer
}

func NewTerminalBell(out io.Writer) *TerminalBell {
	return &TerminalBell{terminal: out}
}

// Boot implements Buzzer.
func (b *TerminalBell) Boot() error {
	return nil
}

// Play implements Buzzer.
func (b *TerminalBell) Play() {
	b.terminal.Write([]byte{'\a'})
}

// Stop implements Buzzer. The bell cannot be stopped.
func (b *TerminalBell) Stop() {
}
