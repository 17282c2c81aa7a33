package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
)

// ArchiverService moves a settled challenge from the cache tables to the
// immutable archive tables.
type ArchiverService struct {
	store    Store
	logger   *zap.Logger
	contract string
}

func NewArchiverService(store Store, contract string, logger *zap.Logger) *ArchiverService {
	return &ArchiverService{store: store, logger: logger, contract: contract}
}

// Archive writes the archive rows for one settled challenge and removes its
// cache rows. Every step is an upsert or keyed delete, so reruns converge on
// the same final state.
func (s *ArchiverService) Archive(
	ctx context.Context,
	challengeID uint64,
	rule model.Rule,
	summary model.Summary,
	items []model.DeclareItem,
	deleteParticipants bool,
) (*model.ArchiveResult, error) {
	finished := model.FinishedChallenge{
		ContractAddress: s.contract,
		ChallengeID:     challengeID,
		Rule:            rule,
		Summary:         summary,
	}
	if err := s.store.UpsertFinishedChallenge(ctx, finished); err != nil {
		return nil, fmt.Errorf("archive challenge %d: %w", challengeID, err)
	}

	rows := make([]model.FinishedParticipant, 0, len(items))
	for _, item := range items {
		row := model.FinishedParticipant{
			ContractAddress:    s.contract,
			ChallengeID:        challengeID,
			ParticipantAddress: item.User,
			StakeMinorUnits:    item.StakeMinorUnits,
			PercentPPM:         item.PercentPPM,
			ProgressRatio:      item.ProgressRatio,
			BatchNo:            item.BatchNo,
		}
		if item.TxHash != "" {
			hash := item.TxHash
			row.TxHash = &hash
		}
		rows = append(rows, row)
	}
	if err := s.store.UpsertFinishedParticipants(ctx, rows); err != nil {
		return nil, fmt.Errorf("archive participants of challenge %d: %w", challengeID, err)
	}

	result := &model.ArchiveResult{
		ChallengeID:          challengeID,
		ArchivedChallenge:    true,
		ArchivedParticipants: len(rows),
	}

	deleted, err := s.store.DeleteChallenge(ctx, s.contract, challengeID)
	if err != nil {
		return nil, fmt.Errorf("delete cached challenge %d: %w", challengeID, err)
	}
	result.DeletedChallenge = deleted

	if deleteParticipants {
		count, delErr := s.store.DeleteParticipants(ctx, s.contract, challengeID)
		if delErr != nil {
			return nil, fmt.Errorf("delete cached participants of challenge %d: %w", challengeID, delErr)
		}
		result.DeletedParticipants = count
	}

	s.logger.Info("challenge archived",
		zap.Uint64("challenge_id", challengeID),
		zap.Int("participants", len(rows)),
		zap.Bool("deleted_challenge", result.DeletedChallenge),
		zap.Int64("deleted_participants", result.DeletedParticipants))
	return result, nil
}
