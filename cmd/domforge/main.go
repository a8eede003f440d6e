package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/domforge/domforge/internal/component"
	"github.com/domforge/domforge/internal/config"
	"github.com/domforge/domforge/internal/core/ecs"
	"github.com/domforge/domforge/internal/core/event"
	"github.com/domforge/domforge/internal/host"
	"github.com/domforge/domforge/internal/host/memdom"
	"github.com/domforge/domforge/internal/host/termdom"
	"github.com/domforge/domforge/internal/scene"
	"github.com/domforge/domforge/internal/scripting"
	"github.com/domforge/domforge/internal/system"
	"github.com/domforge/domforge/internal/widget"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "path to config.toml")
	dry := flag.Bool("dry", false, "build in memory and print the tree instead of opening a terminal")
	flag.Parse()

	// 1. Load config
	cfg := config.Defaults()
	if *cfgPath == "" {
		if p := os.Getenv("DOMFORGE_CONFIG"); p != "" {
			*cfgPath = p
		}
	}
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if *dry {
		return runDry(cfg, log)
	}
	return runTerminal(cfg, log)
}

// runDry builds the scene against the in-memory host and prints the tree.
func runDry(cfg *config.Config, log *zap.Logger) error {
	dom := memdom.New()
	world, _, err := buildWorld(dom.Externals(log))
	if err != nil {
		return err
	}
	if err := buildScene(world, cfg, log); err != nil {
		return err
	}
	if err := world.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	fmt.Print(dom.Root().Render())
	log.Info("dry run complete", zap.Int("host_mutations", dom.Mutations()))
	return nil
}

// runTerminal mounts the scene in a tcell screen and runs the input loop.
func runTerminal(cfg *config.Config, log *zap.Logger) error {
	term, err := termdom.New()
	if err != nil {
		return err
	}
	defer term.Fini()

	ext := host.Externals{
		Document: term,
		Root:     term.Root(),
		Window:   term,
		Log:      log,
	}
	world, _, err := buildWorld(ext)
	if err != nil {
		return err
	}
	ext.Window.SetTitle(cfg.App.Title + "  (tab: focus, enter: click, q: quit)")

	if err := buildScene(world, cfg, log); err != nil {
		return err
	}
	if err := world.Flush(); err != nil {
		return fmt.Errorf("initial flush: %w", err)
	}
	term.Present()

	for {
		switch ev := term.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				log.Info("shutting down")
				return nil
			case ev.Key() == tcell.KeyTab:
				term.FocusNext()
			case ev.Key() == tcell.KeyEnter:
				term.ClickFocused()
			}
			if err := world.Flush(); err != nil {
				return fmt.Errorf("flush: %w", err)
			}
			term.Present()
		case *tcell.EventResize:
			term.Present()
		}
	}
}

// buildWorld wires the full pipeline: DOM systems plus radio behavior.
func buildWorld(ext host.Externals) (*ecs.World, *event.Bus, error) {
	world, err := ecs.NewWorld(ext)
	if err != nil {
		return nil, nil, err
	}
	bus := event.NewBus()
	system.RegisterDOMSystems(world, bus)
	widget.RegisterRadioSystems(world, bus)
	return world, bus, nil
}

// buildScene populates the world from the configured source, falling
// back to the built-in demo scene.
func buildScene(world *ecs.World, cfg *config.Config, log *zap.Logger) error {
	switch cfg.Scene.Format {
	case "yaml":
		if _, err := os.Stat(cfg.Scene.Path); err == nil {
			root, err := scene.LoadYAMLFile(cfg.Scene.Path)
			if err != nil {
				return err
			}
			_, err = scene.Materialize(world, root)
			return err
		}
	case "lua":
		if _, err := os.Stat(cfg.Scene.Path); err == nil {
			eng := scripting.NewEngine(world, log)
			defer eng.Close()
			if err := eng.LoadDir(cfg.Scene.Path); err != nil {
				return fmt.Errorf("load scripts: %w", err)
			}
			if _, err := eng.BuildGlobal(cfg.Scene.Entry); err != nil {
				return err
			}
			return nil
		}
	}
	log.Info("no scene found, using built-in demo", zap.String("path", cfg.Scene.Path))
	return demoScene(world)
}

// demoScene is a header plus a radio group, the reference widget.
func demoScene(world *ecs.World) error {
	page, err := scene.Materialize(world, scene.Entity(
		scene.Element("div"),
		scene.ClassList("page"),
		scene.Entity(
			scene.Element("h3"),
			scene.Text("Pick a flavor"),
		),
	))
	if err != nil {
		return err
	}
	group, err := widget.NewRadioGroup(world, page, "flavor", []string{"vanilla", "chocolate", "pistachio"})
	if err != nil {
		return err
	}
	// Preselect the first option.
	sel, err := component.NewSelection("vanilla")
	if err != nil {
		return err
	}
	return world.Add(group, sel)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
