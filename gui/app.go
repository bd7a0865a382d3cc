package gui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/guslan/buzzin"
)

const (
	SquareGap       = 5
	SquareTextSize  = 16
	LabelHeight     = 40
	LabelTextSize   = 20
	ToolbarGap      = 5
	ToolbarBtnWidth = 120
	ToolbarHeight   = 50
	ToolbarBtnHeigh = 40

	MessageBarGap   = 5
	MessageBarHeigh = 30
)

var BackgroundColor = rl.RayWhite
var LabelColor = rl.DarkGray
var MessageBarBgColor = rl.DarkGray
var MessageBarInfoColor = rl.SkyBlue
var MessageBarSuccessColor = rl.Lime
var MessageBarWarningColor = rl.Gold
var MessageBarErrorColor = rl.Red

type MessageType byte

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

var ErrNoGame = errors.New("the app is not attached to a game")

type AppConfig struct {
	Title string
	// Side of a participant square in pixels
	SquareSize  int32
	BorderWidth float32
	// Sound played on every buzz, no sound when empty
	SoundPath string
	// Where the pointer is warped to
	PointerX, PointerY int
	// How often the pointer is warped back, 0 disables it
	RecenterInterval time.Duration
	FPS              int32
}

type AppConfigCb func(config *AppConfig)

// App is the desktop front-end: one coloured square per participant, the
// label below them, and Skip/Reconfigure buttons.
// It implements both buzzin.Display and buzzin.Buzzer.
type App struct {
	game   *buzzin.Game
	config *AppConfig

	slots      []buzzin.SlotView
	highlights []buzzin.Highlight
	label      string

	sound    rl.Sound
	hasSound bool

	// Window width and height
	winW, winH int32

	lastRecenter time.Time

	// Toolbar
	skipBtn, reconfigureBtn bool

	lastMessage      string
	lastMessageColor rl.Color
}

func NewApp(configs ...AppConfigCb) *App {
	config := &AppConfig{
		Title:            "Quiz buzzer",
		SquareSize:       100,
		BorderWidth:      4,
		SoundPath:        "",
		PointerX:         230,
		PointerY:         20,
		RecenterInterval: 50 * time.Millisecond,
		FPS:              60,
	}
	for _, cb := range configs {
		cb(config)
	}

	return &App{
		config:           config,
		lastMessageColor: MessageBarInfoColor,
	}
}

// Attach binds the app to the game it presents
func (app *App) Attach(game *buzzin.Game) {
	app.game = game
	app.SetSlots(game.View().Slots)
}

// Run opens the window and runs the UI loop until the window is closed or ctx is done.
// Raylib must be driven from the main thread, so this is where the bus is pumped too.
func (app *App) Run(ctx context.Context) error {
	if app.game == nil {
		return ErrNoGame
	}

	app.updateWindowSize()
	rl.InitWindow(app.winW, app.winH, app.config.Title)
	defer rl.CloseWindow()

	// ESC is a skip signal, not a way out
	rl.SetExitKey(0)

	rl.InitAudioDevice()
	defer rl.CloseAudioDevice()
	app.loadSound()
	defer app.unloadSound()

	if err := app.game.Boot(); err != nil {
		return err
	}

	rl.SetTargetFPS(app.config.FPS)
	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		app.game.Pump()
		app.handleActions()
		app.recenterOnSchedule()

		rl.BeginDrawing()
		rl.ClearBackground(BackgroundColor)

		app.drawSquares()
		app.drawLabel()
		app.drawToolbar()
		app.drawMessageBar()

		rl.EndDrawing()
	}

	return nil
}

// ShowMessage shows msg in the message bar
func (app *App) ShowMessage(msg string, mType MessageType) {
	app.lastMessage = msg
	switch mType {
	case MessageInfo:
		app.lastMessageColor = MessageBarInfoColor

	case MessageSuccess:
		app.lastMessageColor = MessageBarSuccessColor

	case MessageWarning:
		app.lastMessageColor = MessageBarWarningColor

	case MessageError:
		app.lastMessageColor = MessageBarErrorColor
	}
}

func (app *App) updateWindowSize() {
	n := int32(len(app.slots))
	app.winW = max(n*(app.config.SquareSize+SquareGap)+SquareGap, 2*(ToolbarBtnWidth+ToolbarGap)+ToolbarGap)
	app.winH = SquareGap + app.config.SquareSize + LabelHeight + ToolbarHeight + MessageBarHeigh
	slog.Info("Updating window size", slog.Int("width", int(app.winW)), slog.Int("height", int(app.winH)))
}

func (app *App) loadSound() {
	if app.config.SoundPath == "" {
		return
	}

	if !rl.IsAudioDeviceReady() {
		slog.Warn("Audio device is not ready, buzzes will be silent")
		app.ShowMessage("No audio device, buzzes will be silent", MessageWarning)
		return
	}

	app.sound = rl.LoadSound(app.config.SoundPath)
	app.hasSound = app.sound.FrameCount > 0
	if !app.hasSound {
		slog.Error("Error loading sound", slog.String("path", app.config.SoundPath))
		app.ShowMessage("Could not load "+app.config.SoundPath, MessageError)
		return
	}

	slog.Info("Sound loaded", slog.String("path", app.config.SoundPath))
}

func (app *App) unloadSound() {
	if app.hasSound {
		rl.UnloadSound(app.sound)
		app.hasSound = false
	}
}

func (app *App) handleActions() {
	if app.skipBtn {
		slog.Info("Skip pressed")
		app.game.Dispatch(buzzin.SignalSkip)
	}
	if app.reconfigureBtn {
		slog.Info("Reconfigure pressed")
		app.game.Dispatch(buzzin.SignalReconfigure)
	}
}

func (app *App) recenterOnSchedule() {
	if app.config.RecenterInterval <= 0 {
		return
	}

	if time.Since(app.lastRecenter) >= app.config.RecenterInterval {
		app.RecenterPointer()
		app.lastRecenter = time.Now()
	}
}

func (app *App) drawSquares() {
	size := app.config.SquareSize
	for i, slot := range app.slots {
		x := SquareGap + int32(i)*(size+SquareGap)
		y := int32(SquareGap)

		fill := toColor(slot.Color)
		border := fill
		if i < len(app.highlights) {
			switch app.highlights[i] {
			case buzzin.HighlightConfig:
				border = toColor(buzzin.ConfigColor)
			case buzzin.HighlightAnswer:
				border = toColor(buzzin.AnswerColor)
			}
		}

		rl.DrawRectangle(x, y, size, size, fill)
		rl.DrawRectangleLinesEx(
			rl.NewRectangle(float32(x), float32(y), float32(size), float32(size)),
			app.config.BorderWidth,
			border,
		)
		rl.DrawText(slot.Name, x+int32(app.config.BorderWidth)+4, y+int32(app.config.BorderWidth)+4, SquareTextSize, rl.Black)
	}
}

func (app *App) drawLabel() {
	y := SquareGap + app.config.SquareSize + (LabelHeight-LabelTextSize)/2
	w := rl.MeasureText(app.label, LabelTextSize)
	rl.DrawText(app.label, max((app.winW-w)/2, SquareGap), y, LabelTextSize, LabelColor)
}

func (app *App) drawToolbar() {
	y := float32(SquareGap + app.config.SquareSize + LabelHeight)
	rl.DrawRectangle(0, int32(y), app.winW, ToolbarHeight, rl.LightGray)

	app.skipBtn = gui.Button(
		rl.NewRectangle(ToolbarGap, y+ToolbarGap, ToolbarBtnWidth, ToolbarBtnHeigh),
		gui.IconText(gui.ICON_PLAYER_NEXT, "Skip"),
	)
	app.reconfigureBtn = gui.Button(
		rl.NewRectangle(ToolbarGap*2+ToolbarBtnWidth, y+ToolbarGap, ToolbarBtnWidth, ToolbarBtnHeigh),
		gui.IconText(gui.ICON_ROTATE, "Reconfigure"),
	)
}

func (app *App) drawMessageBar() {
	rl.DrawRectangle(
		0,
		app.winH-MessageBarHeigh,
		app.winW,
		MessageBarHeigh,
		MessageBarBgColor,
	)

	rl.DrawText(
		app.lastMessage,
		MessageBarGap,
		app.winH-MessageBarHeigh+MessageBarGap,
		16,
		app.lastMessageColor,
	)
}

func toColor(color string) rl.Color {
	rgb, err := buzzin.ParseColor(color)
	if err != nil {
		rgb, _ = buzzin.ParseColor(buzzin.DefaultColor)
	}

	return rl.NewColor(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb), 255)
}
