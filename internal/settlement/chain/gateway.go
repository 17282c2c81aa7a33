// Package chain implements read/write access to the settlement contract.
package chain

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/clock"
)

// nodeClient is the subset of the ethclient surface the gateway uses.
// *ethclient.Client satisfies it.
type nodeClient interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Config carries operator-provided gateway settings.
type Config struct {
	RPCURL          string
	ContractAddress string
	ABIPath         string

	// PrivateKey is the hex-encoded signing key; optional until a send is
	// requested.
	PrivateKey string

	// MaxFeeGwei caps maxFeePerGas when set (> 0). See selectFeeParams.
	MaxFeeGwei uint64
	// GasLimit overrides gas estimation when set (> 0).
	GasLimit uint64

	RequestTimeout time.Duration
	ReceiptTimeout time.Duration
}

const (
	defaultRequestTimeout = 15 * time.Second
	defaultReceiptTimeout = 2 * time.Minute
	receiptPollInterval   = 2 * time.Second
)

// Gateway reads and writes the settlement contract over JSON-RPC.
type Gateway struct {
	node     nodeClient
	abi      abi.ABI
	contract common.Address
	abiPath  string
	key      *ecdsa.PrivateKey
	cfg      Config
	logger   *zap.Logger

	chainIDMu sync.Mutex
	chainID   *big.Int

	sleep func(context.Context, time.Duration) error
}

// NewGateway dials the RPC endpoint and loads the contract ABI. A missing
// RPC URL, contract address or ABI path is reported as ErrNotConfigured.
func NewGateway(cfg Config, logger *zap.Logger) (*Gateway, error) {
	if cfg.RPCURL == "" || cfg.ContractAddress == "" || cfg.ABIPath == "" {
		return nil, fmt.Errorf("%w: rpc url, contract address and abi path are required", ErrNotConfigured)
	}
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("%w: invalid contract address %q", ErrNotConfigured, cfg.ContractAddress)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.ReceiptTimeout <= 0 {
		cfg.ReceiptTimeout = defaultReceiptTimeout
	}

	contractABI, err := loadABI(cfg.ABIPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotConfigured, err)
	}

	var key *ecdsa.PrivateKey
	if cfg.PrivateKey != "" {
		key, err = crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid private key: %v", ErrNotConfigured, err)
		}
	}

	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc %s: %w", cfg.RPCURL, err)
	}

	return &Gateway{
		node:     client,
		abi:      contractABI,
		contract: common.HexToAddress(cfg.ContractAddress),
		abiPath:  cfg.ABIPath,
		key:      key,
		cfg:      cfg,
		logger:   logger.Named("chainGateway"),
		sleep:    clock.SleepWithContext,
	}, nil
}

// loadABI reads an ABI JSON file, accepting either a plain ABI array or a
// compiler artifact object carrying the array under an "abi" key.
func loadABI(path string) (abi.ABI, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return abi.ABI{}, fmt.Errorf("read abi %s: %w", path, err)
	}

	var artifact struct {
		ABI json.RawMessage `json:"abi"`
	}
	if err := json.Unmarshal(raw, &artifact); err == nil && len(artifact.ABI) > 0 {
		raw = artifact.ABI
	}

	parsed, err := abi.JSON(strings.NewReader(string(raw)))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse abi %s: %w", path, err)
	}
	return parsed, nil
}

// SignerAddress returns the configured signer's address, or ErrSignerMissing.
func (g *Gateway) SignerAddress() (common.Address, error) {
	if g.key == nil {
		return common.Address{}, ErrSignerMissing
	}
	return crypto.PubkeyToAddress(g.key.PublicKey), nil
}

// PendingNonce fetches the signer's pending nonce. Callers fetch it once per
// run and increment locally between chunks.
func (g *Gateway) PendingNonce(ctx context.Context) (uint64, error) {
	from, err := g.SignerAddress()
	if err != nil {
		return 0, err
	}
	ctx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	defer cancel()
	return g.node.PendingNonceAt(ctx, from)
}

func (g *Gateway) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := g.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	defer cancel()

	out, err := g.node.CallContract(callCtx, ethereum.CallMsg{To: &g.contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}

	values, err := g.abi.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	return values, nil
}

// ensureChainID fetches the chain id once and caches it. A failed fetch is
// not cached, so a transient RPC error does not poison later calls.
func (g *Gateway) ensureChainID(ctx context.Context) (*big.Int, error) {
	g.chainIDMu.Lock()
	defer g.chainIDMu.Unlock()
	if g.chainID != nil {
		return g.chainID, nil
	}

	idCtx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	defer cancel()
	id, err := g.node.ChainID(idCtx)
	if err != nil {
		return nil, err
	}
	g.chainID = id
	return id, nil
}

// SanityReport carries basic node/contract diagnostics for troubleshooting.
type SanityReport struct {
	RPCURL          string `json:"rpc_url"`
	ContractAddress string `json:"contract_address"`
	ChainID         string `json:"chain_id,omitempty"`
	ContractCodeLen int    `json:"contract_code_len"`
	ABIPath         string `json:"abi_path"`
}

// Sanity probes the node and contract. Probe failures are reported as zero
// values rather than errors so the report stays usable on degraded nodes.
func (g *Gateway) Sanity(ctx context.Context) SanityReport {
	report := SanityReport{
		RPCURL:          g.cfg.RPCURL,
		ContractAddress: g.contract.Hex(),
		ABIPath:         g.abiPath,
	}
	if id, err := g.ensureChainID(ctx); err == nil && id != nil {
		report.ChainID = id.String()
	}
	codeCtx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	defer cancel()
	if code, err := g.node.CodeAt(codeCtx, g.contract, nil); err == nil {
		report.ContractCodeLen = len(code)
	}
	return report
}
