// Package server wires the authentication engine together and runs its gRPC
// and HTTP endpoints and the sweeper until the process is signalled.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gatekeeper/internal/cryptox"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/continuation"
	"github.com/dmitrijs2005/gatekeeper/internal/server/delivery"
	"github.com/dmitrijs2005/gatekeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/memory"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gatekeeper/internal/server/services"
	"github.com/dmitrijs2005/gatekeeper/internal/server/sessions"
	"github.com/dmitrijs2005/gatekeeper/internal/server/sweeper"
	"github.com/dmitrijs2005/gatekeeper/internal/server/tokens"
	"github.com/dmitrijs2005/gatekeeper/internal/server/verifiers"
	"github.com/jonboulle/clockwork"

	gs "github.com/dmitrijs2005/gatekeeper/internal/server/grpc"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	store      repomanager.RepositoryManager
	engine     *Engine
	dispatcher *delivery.Dispatcher
}

// Engine is the composed authentication engine without any transport.
type Engine struct {
	Services *services.Services
	Sessions *sessions.Manager
	Sweeper  *sweeper.Sweeper
}

// OpenStore selects the repository manager for cfg.DatabaseDSN and applies
// migrations.
func OpenStore(ctx context.Context, cfg *config.Config) (repomanager.RepositoryManager, error) {
	if cfg.DatabaseDSN == config.MemoryDSN {
		return memory.NewManager(), nil
	}
	pm, err := repomanager.OpenPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := pm.RunMigrations(ctx); err != nil {
		_ = pm.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return pm, nil
}

// verifierRegistry registers every supported method.
func verifierRegistry(cfg *config.Config, clock clockwork.Clock) (*verifiers.Registry, error) {
	rp := verifiers.RelyingPartyConfig{ID: cfg.RPID, DisplayName: cfg.RPDisplayName, Origins: cfg.RPOrigins}
	passkey, err := verifiers.NewPasskey(rp)
	if err != nil {
		return nil, err
	}
	fido2, err := verifiers.NewFIDO2(rp)
	if err != nil {
		return nil, err
	}
	totp := verifiers.NewTOTP(verifiers.DefaultTOTPConfig(cfg.TOTPIssuer), clock)
	return verifiers.NewRegistry(passkey, fido2, totp)
}

// NewEngine builds the engine over store. Messages go to out.
func NewEngine(cfg *config.Config, store repomanager.RepositoryManager, clock clockwork.Clock, out services.Deliverer, logger logging.Logger) (*Engine, error) {
	key := cryptox.DeriveKey([]byte(cfg.MasterKey), []byte(cfg.MasterSalt))
	sealer, err := cryptox.NewSealer(key)
	if err != nil {
		return nil, fmt.Errorf("sealer: %w", err)
	}
	reg, err := verifierRegistry(cfg, clock)
	if err != nil {
		return nil, err
	}

	ts := tokens.NewService(clock, cfg.PendingTokenTTL)
	sm := sessions.NewManager(store, ts, clock, sessions.Config{
		Grace:             cfg.SessionGrace,
		ActiveWindow:      cfg.ActiveWindow,
		HeartbeatInterval: cfg.HeartbeatInterval,
		HardLifetime:      cfg.SessionHardLifetime,
	}, logger)

	svc := services.New(services.Deps{
		Store:         store,
		Tokens:        ts,
		Sessions:      sm,
		Verifiers:     reg,
		Continuations: continuation.NewSigner([]byte(cfg.SigningKey), cfg.ContinuationTTL, clock),
		Sealer:        sealer,
		Delivery:      out,
		Clock:         clock,
		Log:           logger,
		PublicBaseURL: cfg.PublicBaseURL,
		ChallengeTTL:  cfg.ChallengeTTL,
		FailureFloor:  cfg.FailureFloor,
		DecoyKey:      cryptox.Keyed(key, "decoy"),
	})

	sw := sweeper.New(store, clock, sweeper.Config{
		Interval:     cfg.SweepInterval,
		SessionGrace: cfg.SessionGrace,
		Retention:    cfg.TerminatedRetention,
	}, logger)

	return &Engine{Services: svc, Sessions: sm, Sweeper: sw}, nil
}

// transport routes e-mail over SMTP and SMS over the webhook. Only in dev mode
// do kinds without a transport fall back to printing on devOut; otherwise
// they fail and the dispatcher logs the failure.
func transport(cfg *config.Config, devOut io.Writer, logger logging.Logger) delivery.Transport {
	r := delivery.NewRouter()
	if cfg.DevMode {
		console := delivery.NewConsole(devOut, logger)
		r.Handle(delivery.KindEmail, console).Handle(delivery.KindSMS, console)
		logger.Warn(context.Background(), "dev mode: undeliverable messages are printed to stderr")
	}
	if cfg.SMTPHost != "" {
		r.Handle(delivery.KindEmail, delivery.NewSMTP(delivery.SMTPConfig{
			Host: cfg.SMTPHost, Port: cfg.SMTPPort, User: cfg.SMTPUser, Pass: cfg.SMTPPass, From: cfg.SMTPFrom,
		}))
	}
	if cfg.SMSWebhookURL != "" {
		r.Handle(delivery.KindSMS, delivery.NewWebhook(cfg.SMSWebhookURL, &http.Client{Timeout: cfg.DeliveryTimeout}))
	}
	return r
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(logging.ParseLevel(c.LogLevel))

	store, err := OpenStore(ctx, c)
	if err != nil {
		return nil, err
	}

	dispatcher := delivery.NewDispatcher(transport(c, os.Stderr, logger), c.DeliveryTimeout, logger)
	engine, err := NewEngine(c, store, clockwork.NewRealClock(), dispatcher, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{config: c, logger: logger, store: store, engine: engine, dispatcher: dispatcher}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewServer(app.config.EndpointAddrGRPC, app.logger, app.engine.Services, app.engine.Sessions)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.engine.Services, app.engine.Sessions,
		httpapi.CookieConfig{Name: app.config.CookieName, Secure: app.config.CookieSecure})
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a signal arrives or a server fails. It
// then waits for in-flight deliveries and closes the store.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.engine.Sweeper.Run(ctx)
	}()

	wg.Wait()

	app.dispatcher.Wait()
	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "closing store", "error", err)
	}
	app.logger.Info(ctx, "Stopped")
}
