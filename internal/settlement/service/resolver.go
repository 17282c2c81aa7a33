package service

import (
	"context"
	"fmt"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/percent"
)

const (
	ruleTypeProgressOracle = "progress_oracle"
	ruleTypeFixed          = "fixed"
)

// ResolverService turns cached pending participants into declare items with
// resolved refund percentages.
type ResolverService struct {
	store        Store
	indexer      *IndexerService
	oracle       ProgressOracle
	limiter      ratelimit.Limiter
	logger       *zap.Logger
	contract     string
	pendingLimit int
}

func NewResolverService(
	store Store,
	indexer *IndexerService,
	oracle ProgressOracle,
	contract string,
	logger *zap.Logger,
) *ResolverService {
	return &ResolverService{
		store:        store,
		indexer:      indexer,
		oracle:       oracle,
		limiter:      ratelimit.New(defaultOracleRatePerSecond),
		logger:       logger,
		contract:     contract,
		pendingLimit: defaultPendingLimit,
	}
}

// PrepareRun resolves refund percentages for every pending participant of one
// challenge. Participants without oracle data get the fallback percentage.
// When the participant cache is empty it is filled first, respecting the
// readiness guards; a guarded skip yields an empty item set.
func (s *ResolverService) PrepareRun(ctx context.Context, challengeID uint64, fallbackPPM int64) (*model.PrepareRunResult, error) {
	if err := percent.ValidatePPM(fallbackPPM); err != nil {
		return nil, fmt.Errorf("fallback percentage: %w", err)
	}

	pending, err := s.store.ListPendingParticipants(ctx, s.contract, challengeID, s.pendingLimit)
	if err != nil {
		return nil, fmt.Errorf("list pending participants: %w", err)
	}

	if len(pending) == 0 {
		cached, cacheErr := s.indexer.CacheParticipants(ctx, challengeID)
		if cacheErr != nil {
			return nil, cacheErr
		}
		if !cached.Skipped {
			pending, err = s.store.ListPendingParticipants(ctx, s.contract, challengeID, s.pendingLimit)
			if err != nil {
				return nil, fmt.Errorf("list pending participants: %w", err)
			}
		}
	}

	rule := model.Rule{Type: ruleTypeFixed, FallbackPercentPPM: fallbackPPM}
	result := &model.PrepareRunResult{ChallengeID: challengeID, Rule: rule}
	if len(pending) == 0 {
		return result, nil
	}

	challenge, err := s.store.GetChallenge(ctx, s.contract, challengeID)
	if err != nil {
		return nil, fmt.Errorf("load cached challenge %d: %w", challengeID, err)
	}
	if challenge == nil {
		return nil, fmt.Errorf("challenge %d not cached", challengeID)
	}
	if challenge.APIType != "" {
		result.Rule.Type = ruleTypeProgressOracle
	}

	items := make([]model.DeclareItem, 0, len(pending))
	for _, p := range pending {
		s.limiter.Take()

		ratio, resolveErr := s.oracle.Resolve(ctx, *challenge, p.ParticipantAddress)
		if resolveErr != nil {
			s.logger.Warn("progress lookup failed; using fallback",
				zap.Uint64("challenge_id", challengeID),
				zap.String("participant", p.ParticipantAddress),
				zap.Error(resolveErr))
			ratio = nil
		}

		ppm := fallbackPPM
		if ratio != nil {
			ppm = percent.RatioToPPM(*ratio)
		}

		items = append(items, model.DeclareItem{
			User:            p.ParticipantAddress,
			StakeMinorUnits: p.Amount,
			PercentPPM:      ppm,
			ProgressRatio:   ratio,
		})
	}

	result.Items = items
	return result, nil
}
