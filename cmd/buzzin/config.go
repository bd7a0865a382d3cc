package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/guslan/buzzin"
	"github.com/guslan/buzzin/evdev"
	"github.com/guslan/buzzin/web"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	configFile string

	count     int
	players   []string
	colors    []string
	moderator string
	language  string

	sound      string
	squareSize int
	pointerX   int
	pointerY   int
	recenter   time.Duration
	fps        int

	webBind    string
	webPort    int
	webControl bool
	publicURL  string

	tty     string
	noEvdev bool
	grab    bool
	exclude []string

	verbose bool

	// from the "participants" list of the config file
	participants []buzzin.ParticipantConfig
}

func (c *Config) validate() error {
	if len(c.participants) == 0 && len(c.players) == 0 && c.count < 1 {
		return errors.New("at least one participant is required (--count or --players)")
	}
	if len(c.players) > 0 && len(c.colors) > len(c.players) {
		return fmt.Errorf("%d colors given for %d players", len(c.colors), len(c.players))
	}
	if c.webPort < 0 || c.webPort > 65535 {
		return fmt.Errorf("invalid web port (must be between 0-65535 inclusive): %d", c.webPort)
	}
	if c.fps < 1 {
		return fmt.Errorf("invalid fps: %d", c.fps)
	}
	return nil
}

// participantConfigs resolves the participants from the config file, or else from the flags
func (c *Config) participantConfigs() []buzzin.ParticipantConfig {
	if len(c.participants) > 0 {
		return c.participants
	}

	n := c.count
	if len(c.players) > 0 {
		n = len(c.players)
	}

	out := make([]buzzin.ParticipantConfig, n)
	for i := range out {
		if i < len(c.players) {
			out[i].Name = strings.TrimSpace(c.players[i])
		}
		if i < len(c.colors) {
			out[i].Color = strings.TrimSpace(c.colors[i])
		}
	}

	return out
}

func (c *Config) gameConfig(config *buzzin.Config) {
	config.Participants = c.participantConfigs()
	config.Moderator = c.moderator
	config.Language = c.language
}

func (c *Config) source(extra ...buzzin.DeviceSource) buzzin.DeviceSource {
	sources := append([]buzzin.DeviceSource{}, extra...)
	if !c.noEvdev {
		sources = append(sources, c.evdevSource())
	}

	return buzzin.JoinSources(sources...)
}

func (c *Config) evdevSource() *evdev.Source {
	return evdev.NewSource(func(config *evdev.SourceConfig) {
		config.Grab = c.grab
		config.Exclude = c.exclude
	})
}

// watch is a device source and the signals its keys carry
type watch struct {
	source  buzzin.DeviceSource
	signals buzzin.SignalMap
	// the game cannot run without it
	required bool
}

// termWatches lists what the term command monitors. The keyboard behind the
// terminal is also an input device, so input devices only contribute buzzes;
// otherwise every control key would arrive twice.
func (c *Config) termWatches(keyboard buzzin.DeviceSource) []watch {
	watches := []watch{{source: keyboard, signals: buzzin.TerminalSignalMap, required: true}}
	if !c.noEvdev {
		watches = append(watches, watch{source: c.evdevSource(), signals: buzzin.ButtonSignalMap})
	}

	return watches
}

func (c *Config) mirrorConfig(config *web.ServerConfig) {
	config.Bind = c.webBind
	config.Port = c.webPort
	config.PublicURL = c.publicURL
	config.AllowControl = c.webControl
}

func (c *Config) setupLogging() {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// load fills every flag the user did not set from the environment and the config file
func (c *Config) load(v *viper.Viper, fs *pflag.FlagSet) error {
	// the file path itself may come from the environment
	if f := fs.Lookup("config"); f != nil && !f.Changed {
		_ = v.BindEnv(f.Name)
		if path := v.GetString(f.Name); path != "" {
			if err := fs.Set(f.Name, path); err != nil {
				return err
			}
		}
	}

	if c.configFile != "" {
		v.SetConfigFile(c.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}

		if err := v.UnmarshalKey("participants", &c.participants); err != nil {
			return fmt.Errorf("reading participants: %w", err)
		}
	}

	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if f.Changed || !v.IsSet(f.Name) {
			return
		}

		value := fmt.Sprintf("%v", v.Get(f.Name))
		// lists from a config file, env values are already comma-separated
		if list, ok := v.Get(f.Name).([]any); ok {
			items := make([]string, len(list))
			for i, item := range list {
				items[i] = fmt.Sprintf("%v", item)
			}
			value = strings.Join(items, ",")
		}
		if setErr := fs.Set(f.Name, value); setErr != nil && err == nil {
			err = fmt.Errorf("invalid value for %s: %w", f.Name, setErr)
		}
	})

	return err
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("BUZZIN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

func addFlags(cmd *cobra.Command, cfg *Config) {
	fs := cmd.PersistentFlags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.configFile, "config", "c", "", "path to a YAML/TOML/JSON config file (env: BUZZIN_CONFIG)")

	fs.IntVarP(&cfg.count, "count", "n", 3, "number of participants when --players is not given (env: BUZZIN_COUNT)")
	fs.StringSliceVarP(&cfg.players, "players", "p", nil, "comma-separated participant names (env: BUZZIN_PLAYERS)")
	fs.StringSliceVar(&cfg.colors, "colors", nil, "comma-separated square colors, by name or #RRGGBB (env: BUZZIN_COLORS)")
	fs.StringVarP(&cfg.moderator, "moderator", "m", "", "name of the host (env: BUZZIN_MODERATOR)")
	fs.StringVarP(&cfg.language, "lang", "l", "en", "language of the labels, en or ru (env: BUZZIN_LANG)")

	fs.StringVarP(&cfg.sound, "sound", "s", "", "sound file played on every buzz (env: BUZZIN_SOUND)")
	fs.IntVar(&cfg.squareSize, "square-size", 100, "size of a participant square in pixels (env: BUZZIN_SQUARE_SIZE)")
	fs.IntVar(&cfg.pointerX, "pointer-x", 230, "x coordinate the pointer is kept at (env: BUZZIN_POINTER_X)")
	fs.IntVar(&cfg.pointerY, "pointer-y", 20, "y coordinate the pointer is kept at (env: BUZZIN_POINTER_Y)")
	fs.DurationVar(&cfg.recenter, "recenter-interval", 50*time.Millisecond, "how often the pointer is moved back, 0 disables it (env: BUZZIN_RECENTER_INTERVAL)")
	fs.IntVar(&cfg.fps, "fps", 60, "frames per second of the window (env: BUZZIN_FPS)")

	fs.StringVar(&cfg.webBind, "web-bind", "0.0.0.0", "address the web mirror binds to (env: BUZZIN_WEB_BIND)")
	fs.IntVarP(&cfg.webPort, "web-port", "w", 0, "port of the web mirror, 0 disables it (env: BUZZIN_WEB_PORT)")
	fs.BoolVar(&cfg.webControl, "web-control", false, "let web clients skip and reconfigure, anyone who can open the mirror can then control the game (env: BUZZIN_WEB_CONTROL)")
	fs.StringVar(&cfg.publicURL, "public-url", "", "URL encoded in the mirror's QR code (env: BUZZIN_PUBLIC_URL)")

	fs.StringVar(&cfg.tty, "tty", buzzin.DefaultTerminalPath, "terminal read by the term command (env: BUZZIN_TTY)")
	fs.BoolVar(&cfg.noEvdev, "no-evdev", false, "do not read /dev/input devices (env: BUZZIN_NO_EVDEV)")
	fs.BoolVar(&cfg.grab, "grab", false, "take exclusive access of the input devices (env: BUZZIN_GRAB)")
	fs.StringSliceVar(&cfg.exclude, "exclude", nil, "comma-separated device paths to ignore (env: BUZZIN_EXCLUDE)")

	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display debug output (env: BUZZIN_VERBOSE)")
}
