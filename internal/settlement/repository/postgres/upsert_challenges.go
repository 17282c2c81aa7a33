package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
)

// UpsertChallenges stores challenge cache rows, one row per
// (contract_address, challenge_id).
func (r *Repository) UpsertChallenges(ctx context.Context, challenges []model.ChainChallenge) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_challenges", err, start)
	}()

	if len(challenges) == 0 {
		return nil
	}

	const query = `
INSERT INTO chain_challenges (
	contract_address,
	challenge_id,
	recipient,
	start_time,
	end_time,
	is_private,
	name,
	api_type,
	goal_type,
	goal_amount,
	description,
	total_donation_amount,
	results_finalized,
	participant_count,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
ON CONFLICT (contract_address, challenge_id) DO UPDATE SET
	recipient = EXCLUDED.recipient,
	start_time = EXCLUDED.start_time,
	end_time = EXCLUDED.end_time,
	is_private = EXCLUDED.is_private,
	name = EXCLUDED.name,
	api_type = EXCLUDED.api_type,
	goal_type = EXCLUDED.goal_type,
	goal_amount = EXCLUDED.goal_amount,
	description = EXCLUDED.description,
	total_donation_amount = EXCLUDED.total_donation_amount,
	results_finalized = EXCLUDED.results_finalized,
	participant_count = EXCLUDED.participant_count,
	updated_at = NOW()`

	for _, c := range challenges {
		if _, err = r.db.ExecContext(ctx, query,
			c.ContractAddress,
			int64(c.ChallengeID),
			c.Recipient,
			c.StartTime,
			c.EndTime,
			c.IsPrivate,
			c.Name,
			c.APIType,
			c.GoalType,
			c.GoalAmount,
			c.Description,
			c.TotalDonationAmount,
			c.ResultsFinalized,
			c.ParticipantCount,
		); err != nil {
			return fmt.Errorf("upsert challenge %d: %w", c.ChallengeID, err)
		}
	}
	return nil
}
