// Package console implements app.Runner for the bridge console process.
package console

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/bridge-console/pkg/app/http"
	"github.com/chainsafe/bridge-console/pkg/attemptstore"
	"github.com/chainsafe/bridge-console/pkg/config"
	"github.com/chainsafe/bridge-console/pkg/location"
	"github.com/chainsafe/bridge-console/pkg/pgutil"
	"github.com/chainsafe/bridge-console/pkg/plan"
	"github.com/chainsafe/bridge-console/pkg/status"
	"github.com/chainsafe/bridge-console/pkg/statusstore"
	"github.com/chainsafe/bridge-console/pkg/transfer"
	transferservice "github.com/chainsafe/bridge-console/pkg/transfer/service"
)

// Server holds cfg to init the console server.
type Server struct {
	cfg *config.Config
}

type stores struct {
	attempts attemptstore.Store
	status   status.SnapshotStore
	close    func()
}

// NewServer initializes a new console server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run starts the status poller, the session sweeper and the HTTP API.
// It blocks until an OS shutdown signal is received or the server fails.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("console config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	catalog, err := location.LoadCatalog(cfg.Environment.File)
	if err != nil {
		return fmt.Errorf("load environment: %w", err)
	}

	logger.Info("Starting bridge console",
		zap.String("environment", catalog.Name()),
		zap.Int("locations", len(catalog.All())),
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	st, err := s.openStores(ctx, logger)
	if err != nil {
		return err
	}
	defer st.close()

	source, closeSource, err := s.openStatusSource(ctx, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	native := status.NativeToken{
		Symbol:   cfg.Status.NativeToken.Symbol,
		Decimals: cfg.Status.NativeToken.Decimals,
	}
	poller := status.NewPoller(
		source,
		st.status,
		native,
		cfg.Status.PollingInterval,
		cfg.Status.FetchTimeout,
		logger,
	)
	poller.Start(ctx)
	// Stopped explicitly after ServeAndWait for deterministic shutdown order.
	defer poller.Stop()

	registry := transfer.NewRegistry(cfg.Sessions.IdleTimeout, logger)
	registry.StartSweeping(cfg.Sessions.SweepInterval)
	defer registry.Stop()

	planner := plan.NewHTTPClient(cfg.Planner.URL, cfg.Planner.Timeout, logger)
	transferService := transferservice.NewLog(
		transferservice.NewService(catalog, registry, planner, st.attempts, logger),
		logger,
	)

	router := s.setupRouter(transferService, poller, native, logger)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	// Stop background work before deferred store closes kick in.
	poller.Stop()
	registry.Stop()

	return err
}

// openStores connects the history stores. Without a database the console
// keeps no history.
func (s *Server) openStores(ctx context.Context, logger *zap.Logger) (*stores, error) {
	if !s.cfg.Database.Enabled {
		logger.Info("Database disabled, status and submit history will not be kept")
		return &stores{
			attempts: attemptstore.NewNopStore(),
			status:   statusstore.NewNopStore(),
			close:    func() {},
		}, nil
	}

	db, err := pgutil.ConnectDB(ctx, &s.cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	return &stores{
		attempts: attemptstore.NewStore(db),
		status:   statusstore.NewStore(db),
		close:    func() { _ = db.Close() },
	}, nil
}

// openStatusSource creates the status report source, reading the Ethereum
// head from an RPC node when one is configured.
func (s *Server) openStatusSource(ctx context.Context, logger *zap.Logger) (status.Source, func(), error) {
	cfg := s.cfg.Status

	if cfg.EthereumRPCURL == "" {
		return status.NewHTTPSource(cfg.SourceURL, cfg.FetchTimeout, logger), func() {}, nil
	}

	client, err := ethclient.DialContext(ctx, cfg.EthereumRPCURL)
	if err != nil {
		return nil, nil, fmt.Errorf("dial ethereum rpc: %w", err)
	}
	logger.Info("Reading Ethereum head from RPC node", zap.String("rpc_url", cfg.EthereumRPCURL))

	source := status.NewHTTPSource(cfg.SourceURL, cfg.FetchTimeout, logger, status.WithEthereumHead(client))
	return source, client.Close, nil
}

func (s *Server) setupRouter(
	transferService transferservice.Service,
	statusService status.Service,
	native status.NativeToken,
	logger *zap.Logger,
) chi.Router {
	r := apphttp.NewRouter(s.cfg.Server.RequestTimeout, logger)

	// Readiness: 503 until the first status report has been fetched
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if _, err := statusService.Latest(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	transferservice.RegisterRoutes(r, transferService, logger)
	status.RegisterRoutes(r, statusService, native, s.cfg.Status.HistoryLimit, logger)

	return r
}
