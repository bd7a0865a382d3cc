package buzzin

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	msgConfigureParticipant = "Choose a device for %s"
	msgConfigureModerator   = "Choose a device for the host, %s"
	msgInPlay               = "Game in progress"
	msgAnswering            = "%s is answering"
	msgPlayerName           = "Player %d"
	msgModeratorName        = "Host"
)

func init() {
	for _, m := range []struct{ key, ru string }{
		{msgConfigureParticipant, "Выберите устройство для: %s"},
		{msgConfigureModerator, "Выберите устройство для ведущего: %s"},
		{msgInPlay, "Игра идет"},
		{msgAnswering, "Отвечает %s"},
		{msgPlayerName, "Игрок %d"},
		{msgModeratorName, "Ведущий"},
	} {
		message.SetString(language.English, m.key, m.key)
		message.SetString(language.Russian, m.key, m.ru)
	}
}

// Labels renders the prompt shown for each state
type Labels struct {
	printer *message.Printer
}

// NewLabels returns labels in lang. Unknown languages fall back to English.
func NewLabels(lang string) *Labels {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}

	return &Labels{
		printer: message.NewPrinter(tag),
	}
}

// Describe is the label text for state s
func (l *Labels) Describe(s State, r *Registry) string {
	switch st := s.(type) {
	case ConfiguringParticipant:
		p, err := r.Participant(st.Slot)
		if err != nil {
			return ""
		}
		return l.printer.Sprintf(msgConfigureParticipant, p.Name)

	case ConfiguringModerator:
		return l.printer.Sprintf(msgConfigureModerator, r.Moderator().Name)

	case InPlay:
		return l.printer.Sprintf(msgInPlay)

	case Answering:
		p, err := r.Participant(st.Slot)
		if err != nil {
			return ""
		}
		return l.printer.Sprintf(msgAnswering, p.Name)
	}

	return ""
}

// PlayerName is the default name of the participant at slot
func (l *Labels) PlayerName(slot int) string {
	return l.printer.Sprintf(msgPlayerName, slot+1)
}

func (l *Labels) ModeratorName() string {
	return l.printer.Sprintf(msgModeratorName)
}
