package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/config"
	"github.com/ja-he/timeruler/internal/control"
	"github.com/ja-he/timeruler/internal/potatolog"
	"github.com/ja-he/timeruler/internal/tui"
)

// TuiCommand contains flags for the `tui` command line command, for
// `go-flags` to parse command line args into.
type TuiCommand struct {
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
	NoWatch       bool   `long:"no-watch" description:"do not reload the config file when it changes"`
}

// Execute runs the TUI.
// (This gets called by `go-flags` when `tui` is provided on the command line)
func (command *TuiCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, &potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = &potatolog.GlobalMemoryLogReaderWriter
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	theme := config.ColorschemeTypeFromString(command.Theme)

	envData := control.EnvDataFromEnvironment(os.Getenv)

	configData, err := readConfig(envData.ConfigFilePath(), theme)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't load config")
	}

	renderer, err := tui.NewTUIScreenHandler()
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't set up terminal screen")
	}

	controller, err := NewController(envData, configData, theme, renderer)
	if err != nil {
		renderer.Fini()
		stderrLogger.Fatal().Err(err).Msg("can't set up controller")
	}

	if !command.NoWatch {
		watcher, err := config.NewWatcher(envData.ConfigFilePath(), config.DefaultWatchDebounce)
		if err != nil {
			log.Warn().Err(err).Msg("can't watch config file, changes require a restart")
		} else {
			controller.WatchConfig(watcher)
		}
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller.Run()
	return nil
}
