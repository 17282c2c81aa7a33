package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/percent"
	"github.com/goodnatureofminers/chainsettle7000-backend/pkg/chunker"
)

// WriterService submits declaration chunks to the contract.
type WriterService struct {
	gateway ChainGateway
	metrics WriterMetrics
	logger  *zap.Logger
}

func NewWriterService(gateway ChainGateway, metrics WriterMetrics, logger *zap.Logger) *WriterService {
	return &WriterService{gateway: gateway, metrics: metrics, logger: logger}
}

// DeclareResults converts items to basis points, partitions them into ordered
// chunks and either previews the payload (dry run) or broadcasts one
// transaction per chunk. The nonce is fetched once and incremented locally.
// On a chunk failure the remaining chunks are abandoned but receipts collected
// so far are returned alongside the error.
func (s *WriterService) DeclareResults(
	ctx context.Context,
	challengeID uint64,
	items []model.DeclareItem,
	chunkSize int,
	send bool,
) (*model.DeclareResult, error) {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}

	for _, item := range items {
		if _, err := percent.PPMToBps(item.PercentPPM); err != nil {
			return nil, fmt.Errorf("item %s: %w", item.User, err)
		}
	}

	chunks := make([]model.DeclareChunk, 0)
	for _, part := range chunker.Partition(items, chunkSize) {
		chunk := model.DeclareChunk{
			Participants: make([]string, 0, len(part)),
			RefundBps:    make([]int64, 0, len(part)),
		}
		for _, item := range part {
			bps, _ := percent.PPMToBps(item.PercentPPM)
			chunk.Participants = append(chunk.Participants, item.User)
			chunk.RefundBps = append(chunk.RefundBps, bps)
		}
		if len(chunk.Participants) > 0 {
			chunks = append(chunks, chunk)
		}
	}

	result := &model.DeclareResult{
		DryRun:   !send,
		Payload:  model.DeclarePayload{ChallengeID: challengeID, Chunks: chunks},
		TxHashes: []string{},
		Receipts: []model.Receipt{},
		FeeTiers: []string{},
	}

	if !send {
		preview := s.gateway.PreviewFeeParams(ctx)
		result.FeePreview = &preview
		return result, nil
	}

	if len(chunks) == 0 {
		return result, nil
	}

	if _, err := s.gateway.SignerAddress(); err != nil {
		return nil, err
	}

	nonce, err := s.gateway.PendingNonce(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch pending nonce: %w", err)
	}

	for i, chunk := range chunks {
		started := time.Now()

		addresses := make([]common.Address, 0, len(chunk.Participants))
		for _, p := range chunk.Participants {
			addresses = append(addresses, common.HexToAddress(p))
		}

		receipt, tier, declareErr := s.gateway.Declare(ctx, challengeID, addresses, chunk.RefundBps, nonce)
		s.metrics.ObserveDeclareChunk(string(tier), len(addresses), declareErr, started)
		if declareErr != nil {
			return result, fmt.Errorf("declare chunk %d of %d: %w", i+1, len(chunks), declareErr)
		}

		result.TxHashes = append(result.TxHashes, receipt.TxHash)
		result.Receipts = append(result.Receipts, *receipt)
		result.FeeTiers = append(result.FeeTiers, string(tier))
		nonce++

		s.logger.Info("declaration chunk mined",
			zap.Uint64("challenge_id", challengeID),
			zap.Int("chunk", i),
			zap.Int("participants", len(addresses)),
			zap.String("tx_hash", receipt.TxHash),
			zap.String("fee_tier", string(tier)))
	}

	return result, nil
}
