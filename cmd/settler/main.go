// Package main contains the one-shot settlement CLI.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/metrics"
	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/chain"
	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/percent"
	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/progress"
	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/repository/postgres"
	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/service"
)

type config struct {
	PostgresURL     string        `long:"postgres-url" env:"SETTLER_POSTGRES_URL" description:"Postgres URL for the settlement cache"`
	RPCURL          string        `long:"rpc-url" env:"SETTLER_RPC_URL" description:"EVM JSON-RPC endpoint"`
	ContractAddress string        `long:"contract-address" env:"SETTLER_CONTRACT_ADDRESS" description:"settlement contract address"`
	ABIPath         string        `long:"abi-path" env:"SETTLER_ABI_PATH" description:"path to the contract ABI JSON"`
	PrivateKey      string        `long:"private-key" env:"SETTLER_PRIVATE_KEY" description:"hex signing key; required only for sending"`
	MaxFeeGwei      uint64        `long:"max-fee-gwei" env:"SETTLER_MAX_FEE_GWEI" description:"cap on maxFeePerGas in gwei; 0 disables the cap"`
	GasLimit        uint64        `long:"gas-limit" env:"SETTLER_GAS_LIMIT" description:"gas limit override; 0 uses estimation"`
	RequestTimeout  time.Duration `long:"request-timeout" env:"SETTLER_REQUEST_TIMEOUT" description:"timeout per RPC request" default:"15s"`
	ReceiptTimeout  time.Duration `long:"receipt-timeout" env:"SETTLER_RECEIPT_TIMEOUT" description:"timeout waiting for a receipt" default:"2m"`

	ListLimit   uint64 `long:"list-limit" env:"SETTLER_LIST_LIMIT" description:"max challenges fetched per refresh" default:"200"`
	ChunkSize   int    `long:"chunk-size" env:"SETTLER_CHUNK_SIZE" description:"participants per declaration transaction" default:"200"`
	FallbackPPM int64  `long:"fallback-ppm" env:"SETTLER_FALLBACK_PPM" description:"fallback refund in parts per million" default:"0"`
	Send        bool   `long:"send" env:"SETTLER_SEND" description:"broadcast declaration transactions; the default is a dry run"`
	KeepRows    bool   `long:"keep-participant-rows" env:"SETTLER_KEEP_PARTICIPANT_ROWS" description:"keep cached participant rows after archiving"`
}

const usage = "usage: settler [flags] <refresh-ready|cache-participants <id>|list-ready|prepare-run <id>|declare <id>|archive <id>|sanity>"

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

	args, err := flags.ParseArgs(&cfg, os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}
	if len(args) == 0 {
		logger.Fatal(usage)
	}

	if err := run(ctx, cfg, args, logger); err != nil {
		logger.Fatal("settler command failed", zap.Error(err))
	}
}

type services struct {
	gateway    *chain.Gateway
	indexer    *service.IndexerService
	resolver   *service.ResolverService
	writer     *service.WriterService
	reconciler *service.ReconcilerService
	archiver   *service.ArchiverService
}

func buildServices(cfg config, logger *zap.Logger) (*services, error) {
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
		return nil, fmt.Errorf("init chain gateway: %w", err)
	}

	repo, err := postgres.New(cfg.PostgresURL, metrics.NewPostgresRepository())
	if err != nil {
		return nil, fmt.Errorf("init repository: %w", err)
	}

	oracle := progress.NewRegistry(nil)
	indexer := service.NewIndexerService(repo, gateway, cfg.ContractAddress, metrics.NewIndexer(), logger)
	return &services{
		gateway:    gateway,
		indexer:    indexer,
		resolver:   service.NewResolverService(repo, indexer, oracle, cfg.ContractAddress, logger),
		writer:     service.NewWriterService(gateway, metrics.NewWriter(), logger),
		reconciler: service.NewReconcilerService(gateway, logger),
		archiver:   service.NewArchiverService(repo, cfg.ContractAddress, logger),
	}, nil
}

func run(ctx context.Context, cfg config, args []string, logger *zap.Logger) error {
	svc, err := buildServices(cfg, logger)
	if err != nil {
		return err
	}

	command := args[0]
	switch command {
	case "refresh-ready":
		result, err := svc.indexer.Refresh(ctx, cfg.ListLimit, true, true)
		if err != nil {
			return err
		}
		return print(result)

	case "cache-participants":
		id, err := challengeIDArg(args)
		if err != nil {
			return err
		}
		result, err := svc.indexer.CacheParticipants(ctx, id)
		if err != nil {
			return err
		}
		return print(result)

	case "list-ready":
		ready, err := svc.indexer.ListReady(ctx)
		if err != nil {
			return err
		}
		return print(ready)

	case "prepare-run":
		id, err := challengeIDArg(args)
		if err != nil {
			return err
		}
		result, err := svc.resolver.PrepareRun(ctx, id, cfg.FallbackPPM)
		if err != nil {
			return err
		}
		return print(result)

	case "declare":
		id, err := challengeIDArg(args)
		if err != nil {
			return err
		}
		prep, err := svc.resolver.PrepareRun(ctx, id, cfg.FallbackPPM)
		if err != nil {
			return err
		}
		result, err := svc.writer.DeclareResults(ctx, id, prep.Items, cfg.ChunkSize, cfg.Send)
		if result != nil {
			_ = print(result)
		}
		return err

	case "archive":
		id, err := challengeIDArg(args)
		if err != nil {
			return err
		}
		// Archive whatever the contract reports as settled.
		rec, err := svc.reconciler.Reconcile(ctx, id, nil)
		if err != nil {
			return err
		}
		items := make([]model.DeclareItem, 0, len(rec.DeclaredOnChain))
		for _, p := range rec.DeclaredOnChain {
			items = append(items, model.DeclareItem{
				User:            p.ParticipantAddress,
				StakeMinorUnits: p.Amount,
				PercentPPM:      percent.BpsToPPM(p.RefundPercentage),
			})
		}
		rule := model.Rule{Type: "fixed", FallbackPercentPPM: cfg.FallbackPPM}
		result, err := svc.archiver.Archive(ctx, id, rule, model.Summary{TxHashes: []string{}}, items, !cfg.KeepRows)
		if err != nil {
			return err
		}
		return print(result)

	case "sanity":
		return print(svc.gateway.Sanity(ctx))

	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func challengeIDArg(args []string) (uint64, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("command %s requires a challenge id", args[0])
	}
	id, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid challenge id %q: %w", args[1], err)
	}
	return id, nil
}

func print(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
