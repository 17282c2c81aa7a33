package chain

import (
	"context"
	"math/big"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
)

// FeeTier identifies which fee selection path produced the parameters. Every
// transaction send records the tier for audit.
type FeeTier string

const (
	// FeeTierOperatorCap uses the operator-configured max fee cap (EIP-1559).
	FeeTierOperatorCap FeeTier = "operator_cap"
	// FeeTierDynamic derives an EIP-1559 max fee from the latest base fee.
	FeeTierDynamic FeeTier = "eip1559"
	// FeeTierLegacy falls back to a single node-suggested gas price.
	FeeTierLegacy FeeTier = "legacy"
)

// FeeParams is either dynamic (MaxFeePerGas/MaxPriorityFeePerGas set) or
// legacy (GasPrice set).
type FeeParams struct {
	Tier                 FeeTier
	GasPrice             *big.Int
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

var (
	gwei = big.NewInt(1_000_000_000)

	// fallbackPriorityFee is used when the node cannot suggest a tip: 2 gwei.
	fallbackPriorityFee = new(big.Int).Mul(big.NewInt(2), gwei)
	// fallbackGasPrice keeps dry-run previews usable on degraded nodes: 1 gwei.
	fallbackGasPrice = new(big.Int).Mul(big.NewInt(1), gwei)
)

// selectFeeParams picks fee parameters by a three-tier priority:
//  1. operator-configured max fee cap, with the node's tip suggestion (or the
//     constant fallback) as priority fee;
//  2. EIP-1559: 2*latestBaseFee + priority fee;
//  3. legacy gas price from the node.
func (g *Gateway) selectFeeParams(ctx context.Context) (FeeParams, error) {
	if g.cfg.MaxFeeGwei > 0 {
		maxFee := new(big.Int).Mul(new(big.Int).SetUint64(g.cfg.MaxFeeGwei), gwei)
		priority := g.suggestPriorityFee(ctx)
		if priority.Cmp(maxFee) > 0 {
			priority = new(big.Int).Set(maxFee)
		}
		return FeeParams{Tier: FeeTierOperatorCap, MaxFeePerGas: maxFee, MaxPriorityFeePerGas: priority}, nil
	}

	headerCtx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	header, headerErr := g.node.HeaderByNumber(headerCtx, nil)
	cancel()
	if headerErr == nil && header != nil && header.BaseFee != nil {
		priority := g.suggestPriorityFee(ctx)
		maxFee := new(big.Int).Mul(header.BaseFee, big.NewInt(2))
		maxFee.Add(maxFee, priority)
		return FeeParams{Tier: FeeTierDynamic, MaxFeePerGas: maxFee, MaxPriorityFeePerGas: priority}, nil
	}

	priceCtx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	defer cancel()
	gasPrice, err := g.node.SuggestGasPrice(priceCtx)
	if err != nil {
		return FeeParams{}, err
	}
	return FeeParams{Tier: FeeTierLegacy, GasPrice: gasPrice}, nil
}

func (g *Gateway) suggestPriorityFee(ctx context.Context) *big.Int {
	tipCtx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	defer cancel()
	tip, err := g.node.SuggestGasTipCap(tipCtx)
	if err != nil || tip == nil || tip.Sign() <= 0 {
		return new(big.Int).Set(fallbackPriorityFee)
	}
	return tip
}

// PreviewFeeParams selects fee parameters for a dry run. It never fails: when
// every tier is unavailable it substitutes the legacy fallback gas price so
// previews stay usable while the node is degraded.
func (g *Gateway) PreviewFeeParams(ctx context.Context) model.FeePreview {
	params, err := g.selectFeeParams(ctx)
	if err != nil {
		g.logger.Warn("fee selection failed, previewing fallback gas price", zap.Error(err))
		params = FeeParams{Tier: FeeTierLegacy, GasPrice: new(big.Int).Set(fallbackGasPrice)}
	}
	preview := model.FeePreview{Tier: string(params.Tier)}
	if params.GasPrice != nil {
		preview.GasPrice = params.GasPrice.String()
	}
	if params.MaxFeePerGas != nil {
		preview.MaxFeePerGas = params.MaxFeePerGas.String()
	}
	if params.MaxPriorityFeePerGas != nil {
		preview.MaxPriorityFeePerGas = params.MaxPriorityFeePerGas.String()
	}
	return preview
}
