package buzzin

//go:generate mockgen -package=mocks -destination=mocks/mock_buzzer.go github.com/guslan/buzzin Buzzer

// Buzzer plays the audio cue of a buzz
type Buzzer interface {
	// Boot initializes the component
	Boot() error
	Play()
	Stop()
}

type DummyBuzzer struct {
	IsPlaying bool
	Plays     int
}

// Boot implements Buzzer.
func (b *DummyBuzzer) Boot() error {
	return nil
}

func NewDummyBuzzer() *DummyBuzzer {
	return &DummyBuzzer{
		IsPlaying: false,
	}
}

// Play implements Buzzer.
func (b *DummyBuzzer) Play() {
	b.IsPlaying = true
	b.Plays++
}

// Stop implements Buzzer
func (b *DummyBuzzer) Stop() {
	b.IsPlaying = false
}
