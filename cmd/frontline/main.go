package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/frontline/internal/config"
	"github.com/mitchelldurbincs/frontline/internal/game"
	"github.com/mitchelldurbincs/frontline/internal/game/core"
	"github.com/mitchelldurbincs/frontline/internal/game/events"
	"github.com/mitchelldurbincs/frontline/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/frontline/internal/game/mapgen"
	"github.com/mitchelldurbincs/frontline/internal/game/processor"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	mapPath := flag.String("map", "", "Path to a YAML map (empty to use config, then the generator)")
	commandsPath := flag.String("commands", "", "Path to a JSON-lines command file, or - for stdin")
	stopOnError := flag.Bool("stop-on-error", false, "Stop at the first rejected command")
	watch := flag.Bool("watch", false, "Keep running and re-render when the config file changes")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		if err := config.LoadEnvironmentConfig(env); err != nil {
			log.Fatal().Err(err).Str("env", env).Msg("Failed to load environment config")
		}
	}
	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	setupLogging(*logLevel, cfg.Logging.Format)
	log.Info().Str("config_file", config.ConfigFilePath()).Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus, recorder := setupEvents(cfg)

	board, mapOpts, err := loadBoard(cfg, *mapPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load map")
	}

	opts, err := game.OptionsFromConfig(cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid game configuration")
	}
	opts = append(opts, mapOpts...)
	opts = append(opts, game.WithEventBus(bus))
	g := game.NewGame(board, opts...)

	renderOpts := game.RenderOptions{
		Color:       isatty.IsTerminal(os.Stdout.Fd()),
		Coordinates: cfg.Development.ShowCoordinates,
	}

	exitCode := 0
	if *commandsPath != "" {
		cmds, err := readCommands(*commandsPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read commands")
		}
		cp := processor.NewCommandProcessor(log.Logger, *stopOnError)
		results, err := cp.Process(ctx, g, cmds)
		if err != nil {
			log.Error().Err(err).Int("applied", countApplied(results)).Msg("Command batch did not complete cleanly")
			exitCode = 1
		}
	}

	fmt.Print(g.Render(renderOpts))
	printEventSummary(recorder)

	if *watch {
		config.WatchConfig(func(updated *config.Config) {
			setupLogging(updated.Logging.Level, updated.Logging.Format)
			renderOpts.Coordinates = updated.Development.ShowCoordinates
			log.Info().Msg("Config reloaded")
			fmt.Print(g.Render(renderOpts))
		}, func(err error) {
			log.Warn().Err(err).Msg("Ignoring invalid config change")
		})
		log.Info().Msg("Watching config for changes, interrupt to exit")
		<-ctx.Done()
	}

	stop()
	os.Exit(exitCode)
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// Logs go to stderr so the rendered board can be piped
	if format == "json" || os.Getenv("APP_ENV") == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}

func setupEvents(cfg *config.Config) (*events.EventBus, *subscribers.Recorder) {
	bus := events.NewEventBus(log.Logger)

	level, err := zerolog.ParseLevel(cfg.Events.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	logSub := subscribers.NewLoggerSubscriber("event-logger", log.Logger, level)
	logSub.SetDevMode(cfg.Events.DevMode || cfg.Development.VerboseLogging)
	if len(cfg.Events.Filter) > 0 {
		logSub.SetEventFilter(cfg.Events.Filter)
	}
	bus.Subscribe(logSub)

	recorder := subscribers.NewRecorder("event-recorder")
	bus.Subscribe(recorder)
	return bus, recorder
}

// loadBoard picks the board from the -map flag, then map.path, then the
// random generator
func loadBoard(cfg *config.Config, mapPath string) (*core.Board, []game.Option, error) {
	if mapPath == "" {
		mapPath = cfg.Map.Path
	}
	if mapPath != "" {
		m, err := mapgen.LoadMap(mapPath)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("map", m.Name).Str("path", mapPath).Msg("Map loaded")
		return m.Board, m.Options(), nil
	}

	genCfg := cfg.Map.Generator
	if genCfg.Seed == 0 {
		genCfg.Seed = time.Now().UnixNano()
	}
	log.Info().
		Int64("seed", genCfg.Seed).
		Int("ranks", genCfg.Ranks).
		Int("files", genCfg.Files).
		Msg("Generating map")
	board := mapgen.NewSeededGenerator(genCfg).GenerateMap()
	return board, nil, nil
}

func readCommands(path string) ([]core.Command, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return core.DecodeCommands(r)
}

func countApplied(results []processor.Result) int {
	n := 0
	for _, r := range results {
		if r.Applied() {
			n++
		}
	}
	return n
}

func printEventSummary(recorder *subscribers.Recorder) {
	counts := recorder.Counts()
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	slices.Sort(types)

	fmt.Println("events:")
	for _, t := range types {
		fmt.Printf("  %-16s %d\n", t, counts[t])
	}
}
