package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
)

// ListReadyChallenges returns cached challenges that ended at or before the
// given unix time and are not finalized, ordered by end time then id.
func (r *Repository) ListReadyChallenges(ctx context.Context, contractAddress string, nowUnix int64) ([]model.ChainChallenge, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_ready_challenges", err, start)
	}()

	const query = `
SELECT
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
	participant_count
FROM chain_challenges
WHERE contract_address = $1
  AND end_time <= $2
  AND results_finalized = FALSE
ORDER BY end_time, challenge_id`

	rows, err := r.db.QueryContext(ctx, query, contractAddress, nowUnix)
	if err != nil {
		return nil, fmt.Errorf("list ready challenges: %w", err)
	}
	defer rows.Close()

	var challenges []model.ChainChallenge
	for rows.Next() {
		var (
			c  model.ChainChallenge
			id int64
		)
		if err = rows.Scan(
			&c.ContractAddress,
			&id,
			&c.Recipient,
			&c.StartTime,
			&c.EndTime,
			&c.IsPrivate,
			&c.Name,
			&c.APIType,
			&c.GoalType,
			&c.GoalAmount,
			&c.Description,
			&c.TotalDonationAmount,
			&c.ResultsFinalized,
			&c.ParticipantCount,
		); err != nil {
			return nil, fmt.Errorf("scan ready challenge: %w", err)
		}
		c.ChallengeID = uint64(id)
		challenges = append(challenges, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ready challenges: %w", err)
	}
	return challenges, nil
}
