package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
)

// fallbackGasLimit is the conservative gas limit applied when estimation
// fails; generous enough for a full declaration chunk.
const fallbackGasLimit uint64 = 1_000_000

// Declare submits one declareResults transaction for a single caller-supplied
// chunk and waits for its receipt. Chunking is the caller's responsibility;
// the gateway only enforces that the two arrays have equal non-zero length.
// A duplicate-declaration revert surfaces as ErrAlreadyDeclared.
func (g *Gateway) Declare(
	ctx context.Context,
	challengeID uint64,
	participants []common.Address,
	refundBps []int64,
	nonce uint64,
) (*model.Receipt, FeeTier, error) {
	if len(participants) == 0 {
		return nil, "", errors.New("declare: empty participant set")
	}
	if len(participants) != len(refundBps) {
		return nil, "", fmt.Errorf("declare: %d participants vs %d percentages", len(participants), len(refundBps))
	}
	if g.key == nil {
		return nil, "", ErrSignerMissing
	}

	from, err := g.SignerAddress()
	if err != nil {
		return nil, "", err
	}

	bps := make([]*big.Int, len(refundBps))
	for i, v := range refundBps {
		bps[i] = big.NewInt(v)
	}
	data, err := g.abi.Pack("declareResults", new(big.Int).SetUint64(challengeID), participants, bps)
	if err != nil {
		return nil, "", fmt.Errorf("pack declareResults: %w", err)
	}

	chainID, err := g.ensureChainID(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("resolve chain id: %w", err)
	}

	fees, err := g.selectFeeParams(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("select fee params: %w", err)
	}

	gasLimit := g.gasLimit(ctx, from, data, fees)

	var txData types.TxData
	if fees.GasPrice != nil {
		txData = &types.LegacyTx{
			Nonce:    nonce,
			GasPrice: fees.GasPrice,
			Gas:      gasLimit,
			To:       &g.contract,
			Data:     data,
		}
	} else {
		txData = &types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     nonce,
			GasTipCap: fees.MaxPriorityFeePerGas,
			GasFeeCap: fees.MaxFeePerGas,
			Gas:       gasLimit,
			To:        &g.contract,
			Data:      data,
		}
	}

	signed, err := types.SignNewTx(g.key, types.LatestSignerForChainID(chainID), txData)
	if err != nil {
		return nil, "", fmt.Errorf("sign declareResults: %w", err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	err = g.node.SendTransaction(sendCtx, signed)
	cancel()
	if err != nil {
		if isAlreadyDeclaredRevert(err) {
			return nil, fees.Tier, fmt.Errorf("%w: %v", ErrAlreadyDeclared, err)
		}
		return nil, fees.Tier, fmt.Errorf("send declareResults: %w", err)
	}

	g.logger.Info("declaration broadcast",
		zap.Uint64("challenge_id", challengeID),
		zap.Int("participants", len(participants)),
		zap.Uint64("nonce", nonce),
		zap.String("fee_tier", string(fees.Tier)),
		zap.String("tx_hash", signed.Hash().Hex()),
	)

	receipt, err := g.waitMined(ctx, signed.Hash())
	if err != nil {
		return nil, fees.Tier, fmt.Errorf("wait receipt %s: %w", signed.Hash().Hex(), err)
	}
	return receipt, fees.Tier, nil
}

// gasLimit resolves the transaction gas limit: operator override first, then
// a simulated estimate, then the conservative constant.
func (g *Gateway) gasLimit(ctx context.Context, from common.Address, data []byte, fees FeeParams) uint64 {
	if g.cfg.GasLimit > 0 {
		return g.cfg.GasLimit
	}

	msg := ethereum.CallMsg{From: from, To: &g.contract, Data: data}
	if fees.GasPrice != nil {
		msg.GasPrice = fees.GasPrice
	} else {
		msg.GasFeeCap = fees.MaxFeePerGas
		msg.GasTipCap = fees.MaxPriorityFeePerGas
	}

	estCtx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	defer cancel()
	estimate, err := g.node.EstimateGas(estCtx, msg)
	if err != nil {
		g.logger.Warn("gas estimation failed, using fallback limit",
			zap.Uint64("fallback", fallbackGasLimit), zap.Error(err))
		return fallbackGasLimit
	}
	return estimate
}

// waitMined polls for the transaction receipt until found or the receipt
// timeout elapses.
func (g *Gateway) waitMined(ctx context.Context, txHash common.Hash) (*model.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, g.cfg.ReceiptTimeout)
	defer cancel()

	for {
		receiptCtx, receiptCancel := context.WithTimeout(waitCtx, g.cfg.RequestTimeout)
		receipt, err := g.node.TransactionReceipt(receiptCtx, txHash)
		receiptCancel()
		if err == nil && receipt != nil {
			var blockNumber uint64
			if receipt.BlockNumber != nil {
				blockNumber = receipt.BlockNumber.Uint64()
			}
			return &model.Receipt{
				TxHash:      txHash.Hex(),
				Status:      receipt.Status,
				GasUsed:     receipt.GasUsed,
				BlockNumber: blockNumber,
			}, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			g.logger.Debug("receipt poll failed", zap.String("tx_hash", txHash.Hex()), zap.Error(err))
		}
		if err := g.sleep(waitCtx, receiptPollInterval); err != nil {
			return nil, err
		}
	}
}
