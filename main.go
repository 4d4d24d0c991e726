package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"

	"lightbot/pkg/engine/input"
	"lightbot/pkg/game/config"
	"lightbot/pkg/game/console"
	"lightbot/pkg/game/gameplay"
	"lightbot/pkg/game/level"
	"lightbot/pkg/game/messages"
	"lightbot/pkg/game/program"
	"lightbot/pkg/game/renderer"
	"lightbot/pkg/game/renderer/tui"
	"lightbot/pkg/transport/ws"
)

func main() {
	configPath := flag.String("config", "", "settings file (YAML)")
	levelsPath := flag.String("levels", "", "levels file (JSON), replaces the built-in levels")
	startLevel := flag.Int("level", 0, "level to start on (default: the first one)")
	script := flag.String("program", "", "program to run once, as a script file or inline script")
	speed := flag.Int("speed", -1, "pause after every block in milliseconds")
	lang := flag.String("lang", "", "message language ("+fmt.Sprint(messages.Locales())+")")
	listen := flag.String("listen", "", "serve WebSocket sessions on this address instead of playing")
	check := flag.Bool("check", false, "report levels whose goals the robot can never reach, then exit")
	flag.Parse()

	logger := log.New(os.Stderr, "[lightbot] ", log.LstdFlags)

	cfg, err := loadConfig(*configPath, *levelsPath, *speed, *lang, *listen)
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	levels, err := loadLevels(cfg.LevelsFile)
	if err != nil {
		logger.Fatalf("levels: %v", err)
	}

	if *check {
		if !checkLevels(levels, logger) {
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Listen != "" {
		serve(ctx, cfg, levels, logger)
		return
	}

	if err := play(ctx, cfg, levels, *startLevel, *script, logger); err != nil {
		logger.Fatal(err)
	}
}

// loadConfig reads the settings file, then applies the command line on top
func loadConfig(path, levelsPath string, speed int, lang, listen string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	if levelsPath != "" {
		cfg.LevelsFile = levelsPath
	}
	if speed >= 0 {
		cfg.ExecutionSpeedMs = speed
	}
	if lang != "" {
		cfg.Locale = lang
	}
	if listen != "" {
		cfg.Listen = listen
	}
	return cfg, cfg.Validate()
}

func loadLevels(path string) (level.Repository, error) {
	if path == "" {
		return level.Default()
	}
	return level.LoadFile(path)
}

// checkLevels logs every level with unreachable goals. Returns true if all levels can be won.
func checkLevels(levels level.Repository, logger *log.Logger) bool {
	ok := true
	for _, id := range levels.IDs() {
		l, _ := levels.Level(id)
		unreachable, err := gameplay.UnreachableGoals(l)
		switch {
		case err != nil:
			logger.Printf("level %d: %v", id, err)
			ok = false
		case len(unreachable) > 0:
			logger.Printf("level %d %q: unreachable goals %v", id, l.Title, unreachable)
			ok = false
		}
	}
	if ok {
		logger.Printf("%d levels checked", len(levels.IDs()))
	}
	return ok
}

func serve(ctx context.Context, cfg config.Config, levels level.Repository, logger *log.Logger) {
	options := func() (gameplay.Options, error) { return cfg.ExecutorOptions(logger) }
	srv := ws.NewServer(levels, options, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/run", srv.Handler())

	httpSrv := &http.Server{Addr: cfg.Listen, Handler: mux}
	go func() {
		<-ctx.Done()
		_ = httpSrv.Close()
	}()

	logger.Printf("listening on %s", cfg.Listen)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("serve: %v", err)
	}
}

func play(ctx context.Context, cfg config.Config, levels level.Repository, startLevel int, script string, logger *log.Logger) error {
	opts, err := cfg.ExecutorOptions(logger)
	if err != nil {
		return err
	}
	keys, err := cfg.Bindings()
	if err != nil {
		return err
	}

	g, err := gameplay.BuildGame(levels, startLevel, opts.Messages)
	if err != nil {
		return err
	}

	renderer.SetRenderer(tui.New(os.Stdout))
	renderer.Init()
	opts.Observer = renderer.Follow(g)
	exec := gameplay.NewExecutor(g, opts)

	if script == "" {
		in := input.NewTerminalReader(os.Stdin, os.Stdout)
		return console.New(exec, opts.Messages, keys, in, os.Stdout).Loop(ctx)
	}

	src := script
	if raw, err := os.ReadFile(script); err == nil {
		src = string(raw)
	}
	p, err := program.Parse(src)
	if err != nil {
		return err
	}
	g.SetProgram(p)

	res, err := exec.Run(ctx, g.Program)
	if err != nil {
		return err
	}
	if res.Outcome != gameplay.OutcomeWin {
		return fmt.Errorf("level %d not solved: %v %v", g.LevelID(), res.Outcome, res.Reason)
	}
	return nil
}
