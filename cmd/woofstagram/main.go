package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/johnzilla/woofstagram/internal/app"
	"github.com/johnzilla/woofstagram/internal/config"
	"github.com/johnzilla/woofstagram/internal/tui"
)

var mainDepsProvider = defaultDeps
var mainRunner = realMain

func main() {
	mainRunner(mainDepsProvider())
}

type mainDeps struct {
	loadConfig func() config.Config
	newApp     func(config.Config) (*app.App, error)
	notify     func(chan<- os.Signal, ...os.Signal)
	run        func(context.Context, *app.App, <-chan os.Signal, UIFunc) error
}

func defaultDeps() mainDeps {
	return mainDeps{
		loadConfig: config.Load,
		newApp:     app.New,
		notify:     signal.Notify,
		run:        Run,
	}
}

func realMain(deps mainDeps) {
	cfg := deps.loadConfig()

	a, err := deps.newApp(cfg)
	if err != nil {
		log.Printf("startup failed: %v", err)
		return
	}

	signals := make(chan os.Signal, 1)
	deps.notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if err := deps.run(context.Background(), a, signals, nil); err != nil {
		log.Printf("client exited with error: %v", err)
	}
}

type UIFunc func(context.Context, *app.App) error

var defaultUI UIFunc = tui.Run

// Run drives the terminal client and waits for it to finish or for a
// termination signal, then releases the app's resources.
func Run(ctx context.Context, a *app.App, signals <-chan os.Signal, ui UIFunc) error {
	if ui == nil {
		ui = defaultUI
	}

	uiCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- ui(uiCtx, a)
	}()

	var runErr error
	select {
	case <-signals:
		cancel()
		select {
		case runErr = <-errCh:
		case <-time.After(5 * time.Second):
		}
	case <-ctx.Done():
		select {
		case runErr = <-errCh:
		case <-time.After(5 * time.Second):
		}
	case runErr = <-errCh:
	}

	if err := a.Close(); runErr == nil {
		runErr = err
	}
	return runErr
}
