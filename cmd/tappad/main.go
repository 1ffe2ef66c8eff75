// tappad is a terminal scratch pad wired to the keyboard engine. Every
// keystroke is translated into a gesture on an action and dispatched
// against an in-memory document, so the full pipeline runs the way it
// would behind a host keyboard: replacements, autocorrect, the
// auto-space marker, space-drag cursor movement, feedback cues and
// behavior-driven mode switches.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/dshills/keytap/internal/behavior"
	"github.com/dshills/keytap/internal/config"
	"github.com/dshills/keytap/internal/dispatcher"
	"github.com/dshills/keytap/internal/feedback"
	"github.com/dshills/keytap/internal/keyboard"
	"github.com/dshills/keytap/internal/replacement"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "Path to the engine TOML configuration")
	logFilePath := flag.String("logFile", "tappad.log", "Log file path")
	logLevel := flag.String("logLevel", logLevelDefault, "Logging level [NONE|PANIC|FATAL|ERROR|WARN|INFO|DEBUG|TRACE]")
	flag.Parse()

	if err := initialiseLogging(*logLevel, *logFilePath); err != nil {
		fmt.Fprintf(os.Stderr, "tappad: %v\n", err)
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tappad: %v\n", err)
		return 1
	}

	a, err := newApp(cfg, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tappad: %v\n", err)
		return 1
	}
	defer a.shutdown()

	log.Info("tappad: starting")
	a.loop()
	log.Info("tappad: exiting")
	return 0
}

// app owns the screen, the engine and the demo surface.
type app struct {
	screen     tcell.Screen
	cfg        *config.Config
	configPath string

	ctx        *keyboard.Context
	pad        *pad
	provider   *demoProvider
	dispatcher *dispatcher.Dispatcher
	watcher    *config.Watcher

	// armed mirrors the engine's space-drag session for key routing.
	armed         bool
	dragX         float64
	lastBackspace time.Time
	quit          bool
}

func newApp(cfg *config.Config, configPath string) (*app, error) {
	ctx, err := cfg.Context()
	if err != nil {
		return nil, err
	}

	p := newPad()
	provider := &demoProvider{pad: p}

	d := dispatcher.New(ctx, dispatcher.DefaultConfig().
		WithMetrics().
		WithDragSensitivity(cfg.SpaceDrag.Sensitivity))
	d.SetController(p)
	d.SetProvider(provider)
	d.SetResolver(replacement.NewDefault())

	if cfg.Behavior.Script != "" {
		lua, err := behavior.NewLua(cfg.Behavior.Script)
		if err != nil {
			return nil, err
		}
		d.SetBehavior(lua)
	} else {
		d.SetBehavior(behavior.NewStandard(ctx, p.Proxy))
	}

	fc, err := cfg.FeedbackConfiguration()
	if err != nil {
		return nil, err
	}
	d.SetFeedback(feedback.NewPolicy(fc, &statusBackend{pad: p}))

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	a := &app{
		screen:     screen,
		cfg:        cfg,
		configPath: configPath,
		ctx:        ctx,
		pad:        p,
		provider:   provider,
		dispatcher: d,
	}
	p.onDismiss = func() { a.quit = true }

	if configPath != "" {
		w, err := config.NewWatcher(a.onConfigChange, configPath, cfg.Feedback.File)
		if err != nil {
			log.WithError(err).Warn("tappad: config watcher unavailable")
		} else {
			a.watcher = w
		}
	}
	return a, nil
}

// loop runs the event loop until the keyboard is dismissed.
func (a *app) loop() {
	for !a.quit {
		a.draw()

		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			a.handleKey(ev)
		case *tcell.EventInterrupt:
			if path, ok := ev.Data().(string); ok {
				a.reloadConfig(path)
			}
		}
	}
}

func (a *app) shutdown() {
	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.screen != nil {
		a.screen.Fini()
	}
}

// onConfigChange runs on the watcher goroutine; hop onto the event
// loop before touching any state.
func (a *app) onConfigChange(path string) {
	_ = a.screen.PostEvent(tcell.NewEventInterrupt(path))
}

// reloadConfig applies a changed configuration in place. The context is
// mutated rather than replaced so the dispatcher and behavior keep
// their references.
func (a *app) reloadConfig(path string) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		log.WithError(err).Warn("tappad: config reload failed")
		a.pad.status = "config reload failed"
		return
	}

	ctx, err := cfg.Context()
	if err != nil {
		log.WithError(err).Warn("tappad: config reload failed")
		a.pad.status = "config reload failed"
		return
	}
	a.ctx.Locale = ctx.Locale
	a.ctx.Locales = ctx.Locales
	a.ctx.SpaceLongPress = ctx.SpaceLongPress

	fc, err := cfg.FeedbackConfiguration()
	if err != nil {
		log.WithError(err).Warn("tappad: feedback reload failed")
	} else {
		a.dispatcher.SetFeedback(feedback.NewPolicy(fc, &statusBackend{pad: a.pad}))
	}

	// Harmless when logging is discarded; effective when a log file is
	// active.
	log.SetLevel(cfg.LogLevel())

	a.cfg = cfg
	a.pad.status = "config reloaded"
	log.WithField("path", path).Info("tappad: config reloaded")
}
