package buzzin_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guslan/buzzin"
	"github.com/guslan/buzzin/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockDisplay *mocks.MockDisplay
	mockBuzzer  *mocks.MockBuzzer
	game        *buzzin.Game
}

func (s *GameTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDisplay = mocks.NewMockDisplay(s.mockCtrl)
	s.mockBuzzer = mocks.NewMockBuzzer(s.mockCtrl)

	var err error
	s.game, err = buzzin.NewGame(s.mockDisplay, s.mockBuzzer, buzzin.WithParticipants("Ann", "Bob"))
	s.Require().NoError(err)
}

func TestGameTestSuite(t *testing.T) {
	suite.Run(t, new(GameTestSuite))
}

func (s *GameTestSuite) expectBoot() {
	s.mockDisplay.EXPECT().Boot().Return(nil)
	s.mockBuzzer.EXPECT().Boot().Return(nil)
	s.mockDisplay.EXPECT().Highlight(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.mockDisplay.EXPECT().Render("Choose a device for Ann").Return(nil)
}

// expectFrame expects one full presentation ending with label
func (s *GameTestSuite) expectFrame(label string, highlights ...buzzin.Highlight) *gomock.Call {
	for slot, h := range highlights {
		s.mockDisplay.EXPECT().Highlight(slot, h).Return(nil)
	}

	return s.mockDisplay.EXPECT().Render(label).Return(nil)
}

func (s *GameTestSuite) press(dev buzzin.DeviceID, signal buzzin.Signal) {
	s.Require().NoError(s.game.Bus.Publish(context.Background(), buzzin.Event{Device: dev, Signal: signal}))
	s.Equal(1, s.game.Pump())
}

func (s *GameTestSuite) TestBootPresentsTheFirstSlot() {
	s.expectBoot()

	s.Require().NoError(s.game.Boot())
	// booting twice does nothing
	s.Require().NoError(s.game.Boot())
}

func (s *GameTestSuite) TestBootFailure() {
	s.mockDisplay.EXPECT().Boot().Return(errors.New("no window"))

	s.Error(s.game.Boot())
	s.Zero(s.game.Pump())
	s.ErrorIs(s.game.Loop(context.Background()), buzzin.ErrGameIsNotBooted)
}

func (s *GameTestSuite) TestBuzzPlaysTheCue() {
	s.expectBoot()
	s.Require().NoError(s.game.Boot())

	s.expectFrame("Choose a device for Bob", buzzin.HighlightNeutral, buzzin.HighlightConfig)
	s.press("a", buzzin.SignalPrimary)

	s.expectFrame("Choose a device for the host, Host", buzzin.HighlightNeutral, buzzin.HighlightNeutral)
	s.press("b", buzzin.SignalPrimary)

	s.expectFrame("Game in progress", buzzin.HighlightNeutral, buzzin.HighlightNeutral)
	s.press("m", buzzin.SignalPrimary)

	render := s.expectFrame("Bob is answering", buzzin.HighlightNeutral, buzzin.HighlightAnswer)
	s.mockBuzzer.EXPECT().Play().After(render)
	s.press("b", buzzin.SignalPrimary)

	// locked out: nothing is presented
	s.press("a", buzzin.SignalPrimary)

	stop := s.mockBuzzer.EXPECT().Stop()
	s.expectFrame("Game in progress", buzzin.HighlightNeutral, buzzin.HighlightNeutral).After(stop)
	s.press("m", buzzin.SignalPrimary)
}

func (s *GameTestSuite) TestDispatchReconfigures() {
	s.expectBoot()
	s.Require().NoError(s.game.Boot())

	s.expectFrame("Choose a device for Bob", buzzin.HighlightNeutral, buzzin.HighlightConfig)
	s.press("a", buzzin.SignalPrimary)

	s.expectFrame("Choose a device for Ann", buzzin.HighlightConfig, buzzin.HighlightNeutral)
	s.game.Dispatch(buzzin.SignalReconfigure)

	s.False(s.game.Registry.IsDeviceAssigned("a"))
}

func TestGameDefaults(t *testing.T) {
	game, err := buzzin.NewGame(buzzin.NewDummyDisplay(), buzzin.NewDummyBuzzer(), func(config *buzzin.Config) {
		config.Participants = []buzzin.ParticipantConfig{{}, {Name: "Bob", Color: "#102030"}, {}}
		config.Language = "ru"
	})
	if err != nil {
		t.Fatalf(`NewGame() returned an error %v`, err)
	}

	names := []string{}
	for _, p := range game.Registry.Participants() {
		names = append(names, p.Name)
	}
	if names[0] != "Игрок 1" || names[1] != "Bob" || names[2] != "Игрок 3" {
		t.Fatalf(`participant names = %v`, names)
	}
	if game.Registry.Moderator().Name != "Ведущий" {
		t.Fatalf(`moderator name = %q`, game.Registry.Moderator().Name)
	}

	colors := game.Colors()
	if colors[0] != "red" || colors[1] != "#102030" || colors[2] != "violet" {
		t.Fatalf(`colors = %v`, colors)
	}
}

func TestNewGameValidatesTheConfig(t *testing.T) {
	_, err := buzzin.NewGame(buzzin.NewDummyDisplay(), buzzin.NewDummyBuzzer(), buzzin.WithParticipantCount(0))
	if !errors.Is(err, buzzin.ErrNoParticipants) {
		t.Fatalf(`NewGame() with no participants = %v, expected ErrNoParticipants`, err)
	}

	_, err = buzzin.NewGame(buzzin.NewDummyDisplay(), buzzin.NewDummyBuzzer(), func(config *buzzin.Config) {
		config.Participants[0].Color = "not-a-color"
	})
	if err == nil {
		t.Fatalf(`NewGame() accepted an unknown color`)
	}
}

// TestGameLoop runs the bus on its own goroutine, the way the terminal front-end does
func TestGameLoop(t *testing.T) {
	display := buzzin.NewDummyDisplay()
	buzzer := buzzin.NewDummyBuzzer()
	game, err := buzzin.NewGame(display, buzzer, buzzin.WithParticipants("Ann"))
	if err != nil {
		t.Fatalf(`NewGame() returned an error %v`, err)
	}
	if err := game.Boot(); err != nil {
		t.Fatalf(`Boot() returned an error %v`, err)
	}

	states := make(chan buzzin.State, 8)
	game.Arbiter.AddTransitionHook(func(tr buzzin.Transition) { states <- tr.To })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- game.Loop(ctx) }()

	for _, dev := range []buzzin.DeviceID{"ann", "host", "ann"} {
		game.Bus.Publish(ctx, buzzin.Event{Device: dev, Signal: buzzin.SignalPrimary})
	}

	expected := []buzzin.State{buzzin.ConfiguringModerator{}, buzzin.InPlay{}, buzzin.Answering{Slot: 0}}
	for _, e := range expected {
		select {
		case got := <-states:
			if got != e {
				t.Fatalf(`transitioned to %v, expected %v`, got, e)
			}
		case <-time.After(time.Second):
			t.Fatalf(`no transition to %v`, e)
		}
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf(`Loop() = %v, expected context.Canceled`, err)
	}

	if display.Label != "Ann is answering" {
		t.Fatalf(`display.Label = %q`, display.Label)
	}
	if !buzzer.IsPlaying || buzzer.Plays != 1 {
		t.Fatalf(`buzzer = %+v, expected one play`, buzzer)
	}
}
