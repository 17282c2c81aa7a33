// Package main contains the process-ready settlement job.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/metrics"
	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/chain"
	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/progress"
	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/repository/postgres"
	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/service"
)

type config struct {
	PostgresURL     string        `long:"postgres-url" env:"SETTLE_RUNNER_POSTGRES_URL" description:"Postgres URL for the settlement cache"`
	RPCURL          string        `long:"rpc-url" env:"SETTLE_RUNNER_RPC_URL" description:"EVM JSON-RPC endpoint"`
	ContractAddress string        `long:"contract-address" env:"SETTLE_RUNNER_CONTRACT_ADDRESS" description:"settlement contract address"`
	ABIPath         string        `long:"abi-path" env:"SETTLE_RUNNER_ABI_PATH" description:"path to the contract ABI JSON"`
	PrivateKey      string        `long:"private-key" env:"SETTLE_RUNNER_PRIVATE_KEY" description:"hex signing key"`
	MaxFeeGwei      uint64        `long:"max-fee-gwei" env:"SETTLE_RUNNER_MAX_FEE_GWEI" description:"cap on maxFeePerGas in gwei; 0 disables the cap"`
	GasLimit        uint64        `long:"gas-limit" env:"SETTLE_RUNNER_GAS_LIMIT" description:"gas limit override; 0 uses estimation"`
	RequestTimeout  time.Duration `long:"request-timeout" env:"SETTLE_RUNNER_REQUEST_TIMEOUT" description:"timeout per RPC request" default:"15s"`
	ReceiptTimeout  time.Duration `long:"receipt-timeout" env:"SETTLE_RUNNER_RECEIPT_TIMEOUT" description:"timeout waiting for a receipt" default:"2m"`

	ListLimit   uint64 `long:"list-limit" env:"SETTLE_RUNNER_LIST_LIMIT" description:"max challenges fetched per refresh" default:"200"`
	ChunkSize   int    `long:"chunk-size" env:"SETTLE_RUNNER_CHUNK_SIZE" description:"participants per declaration transaction" default:"200"`
	FallbackPPM int64  `long:"fallback-ppm" env:"SETTLE_RUNNER_FALLBACK_PPM" description:"fallback refund in parts per million" default:"0"`
	Send        bool   `long:"send" env:"SETTLE_RUNNER_SEND" description:"broadcast declaration transactions; the default is a dry run"`
	KeepRows    bool   `long:"keep-participant-rows" env:"SETTLE_RUNNER_KEEP_PARTICIPANT_ROWS" description:"keep cached participant rows after archiving"`
	MetricsAddr string `long:"metrics-addr" env:"SETTLE_RUNNER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.PostgresURL == "" {
		logger.Fatal("Postgres URL is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("settle runner failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	gateway, err := chain.NewGateway(chain.Config{
		RPCURL:          cfg.RPCURL,
		ContractAddress: cfg.ContractAddress,
		ABIPath:         cfg.ABIPath,
		PrivateKey:      cfg.PrivateKey,
		MaxFeeGwei:      cfg.MaxFeeGwei,
		GasLimit:        cfg.GasLimit,
		RequestTimeout:  cfg.RequestTimeout,
		ReceiptTimeout:  cfg.ReceiptTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("init chain gateway: %w", err)
	}

	repo, err := postgres.New(cfg.PostgresURL, metrics.NewPostgresRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		_ = repo.Close()
	}()

	oracle := progress.NewRegistry(nil)
	indexer := service.NewIndexerService(repo, gateway, cfg.ContractAddress, metrics.NewIndexer(), logger)
	runner := service.NewRunner(
		indexer,
		service.NewResolverService(repo, indexer, oracle, cfg.ContractAddress, logger),
		service.NewWriterService(gateway, metrics.NewWriter(), logger),
		service.NewReconcilerService(gateway, logger),
		service.NewArchiverService(repo, cfg.ContractAddress, logger),
		logger,
	)

	report, err := runner.ProcessReady(ctx, service.ProcessOptions{
		ListLimit:          cfg.ListLimit,
		ChunkSize:          cfg.ChunkSize,
		FallbackPPM:        cfg.FallbackPPM,
		Send:               cfg.Send,
		DeleteParticipants: !cfg.KeepRows,
	})
	if report != nil {
		out, marshalErr := json.MarshalIndent(report, "", "  ")
		if marshalErr == nil {
			fmt.Println(string(out))
		}
	}
	return err
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
