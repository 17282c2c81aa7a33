package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
)

// ReconcileResult narrows a declare item set against current chain state.
type ReconcileResult struct {
	// Pending are the input items whose on-chain result is still undeclared.
	Pending []model.DeclareItem
	// DeclaredOnChain are participants the contract already settled.
	DeclaredOnChain []model.ChainParticipant
}

// ReconcilerService re-reads chain state after a duplicate-declaration revert
// to decide what is actually left to declare.
type ReconcilerService struct {
	gateway ChainGateway
	logger  *zap.Logger
}

func NewReconcilerService(gateway ChainGateway, logger *zap.Logger) *ReconcilerService {
	return &ReconcilerService{gateway: gateway, logger: logger}
}

// Reconcile fetches the on-chain participant set of the challenge and splits
// the given items into still-pending and already-declared. An empty Pending
// set means the challenge is fully settled on chain.
func (s *ReconcilerService) Reconcile(ctx context.Context, challengeID uint64, items []model.DeclareItem) (*ReconcileResult, error) {
	detail, err := s.gateway.ChallengeDetailByID(ctx, challengeID)
	if err != nil {
		return nil, fmt.Errorf("fetch challenge %d detail: %w", challengeID, err)
	}

	undeclared := make(map[string]struct{}, len(detail.Participants))
	declared := make([]model.ChainParticipant, 0, len(detail.Participants))
	for _, p := range detail.Participants {
		if p.ResultDeclared {
			declared = append(declared, p)
			continue
		}
		undeclared[strings.ToLower(p.ParticipantAddress)] = struct{}{}
	}

	pending := make([]model.DeclareItem, 0, len(items))
	for _, item := range items {
		if _, ok := undeclared[strings.ToLower(item.User)]; ok {
			pending = append(pending, item)
		}
	}

	s.logger.Info("reconciled against chain",
		zap.Uint64("challenge_id", challengeID),
		zap.Int("input_items", len(items)),
		zap.Int("pending", len(pending)),
		zap.Int("declared_on_chain", len(declared)))
	return &ReconcileResult{Pending: pending, DeclaredOnChain: declared}, nil
}
