package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Ravishrk124/helpnet.in/internal/components"
	"github.com/Ravishrk124/helpnet.in/internal/config"
)

func Run() error {
	cfg, err := config.Load(context.Background())
	if err != nil {
		return err
	}
	logger := components.SetupLogger(cfg.Env)

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	comps, err := components.InitComponents(appCtx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	ctx, stop := context.WithCancel(appCtx)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		comps.Loop.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		comps.Ticker.Run(ctx)
	}()

	comps.Board.Start(ctx, cfg.Board.LocationTimeout)

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChan

	stop()
	logger.Info("captured signal, initiating shutdown", "signal", sig.String())

	wg.Wait()
	comps.ShutdownAll()
	logger.Info("gracefully shut down")

	return nil
}
