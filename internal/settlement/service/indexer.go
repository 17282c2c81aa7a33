package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/clock"
	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
	"github.com/goodnatureofminers/chainsettle7000-backend/pkg/workerpool"
)

// IndexerService mirrors on-chain challenges into the cache store and decides
// which of them are ready for settlement.
type IndexerService struct {
	store    Store
	gateway  ChainGateway
	metrics  IndexerMetrics
	logger   *zap.Logger
	contract string
	now      func() int64
	workers  int
}

func NewIndexerService(
	store Store,
	gateway ChainGateway,
	contract string,
	metrics IndexerMetrics,
	logger *zap.Logger,
) *IndexerService {
	return &IndexerService{
		store:    store,
		gateway:  gateway,
		metrics:  metrics,
		logger:   logger,
		contract: contract,
		now:      clock.NowUnix,
		workers:  defaultDetailWorkerCount,
	}
}

// Refresh lists challenges from the contract and upserts them into the cache.
// onlyReadyToEnd keeps only ended and not-finalized challenges; excludeFinished
// drops challenges already present in the archive. Safe to repeat at any time.
func (s *IndexerService) Refresh(ctx context.Context, limit uint64, onlyReadyToEnd, excludeFinished bool) (*model.RefreshResult, error) {
	started := time.Now()
	var err error
	indexed := 0
	defer func() {
		s.metrics.ObserveRefresh(err, indexed, started)
	}()

	challenges, err := s.gateway.ListChallenges(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}

	result := &model.RefreshResult{
		Fetched:         len(challenges),
		OnlyReadyToEnd:  onlyReadyToEnd,
		ExcludeFinished: excludeFinished,
	}

	now := s.now()
	candidates := make([]model.ChainChallenge, 0, len(challenges))
	for _, c := range challenges {
		if onlyReadyToEnd && (c.EndTime > now || c.ResultsFinalized) {
			continue
		}
		candidates = append(candidates, c)
	}

	toIndex := candidates
	if excludeFinished && len(candidates) > 0 {
		ids := make([]uint64, 0, len(candidates))
		for _, c := range candidates {
			ids = append(ids, c.ChallengeID)
		}
		var archived map[uint64]struct{}
		archived, err = s.store.ArchivedChallengeIDs(ctx, s.contract, ids)
		if err != nil {
			return nil, fmt.Errorf("filter archived challenges: %w", err)
		}

		toIndex = make([]model.ChainChallenge, 0, len(candidates))
		for _, c := range candidates {
			if _, ok := archived[c.ChallengeID]; ok {
				result.SkippedArchived++
				continue
			}
			toIndex = append(toIndex, c)
		}
	}

	if err = s.store.UpsertChallenges(ctx, toIndex); err != nil {
		return nil, fmt.Errorf("upsert challenges: %w", err)
	}

	indexed = len(toIndex)
	result.Indexed = indexed
	s.logger.Info("challenge cache refreshed",
		zap.Int("fetched", result.Fetched),
		zap.Int("indexed", result.Indexed),
		zap.Int("skipped_archived", result.SkippedArchived))
	return result, nil
}

// CacheParticipants fetches and caches the participant set of one challenge.
// Archived or not-yet-ready challenges are skipped before any gateway call.
func (s *IndexerService) CacheParticipants(ctx context.Context, challengeID uint64) (*model.CacheParticipantsResult, error) {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.ObserveCacheParticipants(err, started)
	}()

	archived, err := s.store.FinishedChallengeExists(ctx, s.contract, challengeID)
	if err != nil {
		return nil, fmt.Errorf("check archive for challenge %d: %w", challengeID, err)
	}
	if archived {
		return &model.CacheParticipantsResult{
			ChallengeID: challengeID,
			Skipped:     true,
			Reason:      model.SkipAlreadyArchived,
		}, nil
	}

	cached, err := s.store.GetChallenge(ctx, s.contract, challengeID)
	if err != nil {
		return nil, fmt.Errorf("load cached challenge %d: %w", challengeID, err)
	}
	if cached == nil || cached.EndTime > s.now() || cached.ResultsFinalized {
		return &model.CacheParticipantsResult{
			ChallengeID: challengeID,
			Skipped:     true,
			Reason:      model.SkipNotReady,
		}, nil
	}

	detail, err := s.gateway.ChallengeDetailByID(ctx, challengeID)
	if err != nil {
		return nil, fmt.Errorf("fetch challenge %d detail: %w", challengeID, err)
	}

	if err = s.store.UpsertParticipants(ctx, s.contract, challengeID, detail.Participants); err != nil {
		return nil, fmt.Errorf("upsert participants of challenge %d: %w", challengeID, err)
	}

	s.logger.Info("participants cached",
		zap.Uint64("challenge_id", challengeID),
		zap.Int("participants", len(detail.Participants)))
	return &model.CacheParticipantsResult{
		ChallengeID:         challengeID,
		ParticipantsIndexed: len(detail.Participants),
	}, nil
}

// ListReady returns cached challenges whose end time has passed and whose
// results are not finalized.
func (s *IndexerService) ListReady(ctx context.Context) ([]model.ChainChallenge, error) {
	return s.store.ListReadyChallenges(ctx, s.contract, s.now())
}

// CacheReadyDetails caches participants for every ready challenge. Distinct
// challenges own disjoint cache rows, so the fan-out is safe.
func (s *IndexerService) CacheReadyDetails(ctx context.Context) (*model.CacheReadyDetailsResult, error) {
	ready, err := s.ListReady(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ready challenges: %w", err)
	}

	var indexed atomic.Int64
	err = workerpool.Process(ctx, s.workers, ready, func(ctx context.Context, c model.ChainChallenge) error {
		res, cacheErr := s.CacheParticipants(ctx, c.ChallengeID)
		if cacheErr != nil {
			return cacheErr
		}
		indexed.Add(int64(res.ParticipantsIndexed))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.CacheReadyDetailsResult{
		Ready:               len(ready),
		ParticipantsIndexed: int(indexed.Load()),
	}, nil
}
