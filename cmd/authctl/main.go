package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/gatekeeper/internal/authctl"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server"
	"github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/delivery"
	"github.com/jonboulle/clockwork"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, authctl.ErrUsage) {
			authctl.Usage(os.Stderr)
			os.Exit(2)
		}
		log.Fatalf("authctl: %v", err)
	}
}

func run(ctx context.Context, args []string) error {
	inv, err := authctl.SplitArgs(args)
	if err != nil {
		return err
	}
	if len(inv.Command) == 0 {
		return authctl.ErrUsage
	}

	key, err := authctl.MasterKey(os.Getenv, config.EnvMasterKey, os.Stderr)
	if err != nil {
		return err
	}
	getenv := func(k string) string {
		if k == config.EnvMasterKey && key != "" {
			return key
		}
		return os.Getenv(k)
	}
	cfg, err := config.Load(inv.Flags, getenv)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := logging.NewJSON(logging.ParseLevel(cfg.LogLevel))
	store, err := server.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	// Admin commands never send messages; anything queued goes nowhere.
	out := delivery.NewDispatcher(delivery.NewConsole(io.Discard, logger), cfg.DeliveryTimeout, logger)
	defer out.Wait()

	engine, err := server.NewEngine(cfg, store, clockwork.NewRealClock(), out, logger)
	if err != nil {
		return err
	}

	return authctl.NewApp(engine.Services.Admin, os.Stdout).WithQRDir(inv.QRDir).Run(ctx, inv.Command)
}
