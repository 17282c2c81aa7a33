package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
)

// GetChallenge loads one cached challenge row. Returns nil when the row does
// not exist.
func (r *Repository) GetChallenge(ctx context.Context, contractAddress string, challengeID uint64) (*model.ChainChallenge, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_challenge", err, start)
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
WHERE contract_address = $1 AND challenge_id = $2`

	var (
		c  model.ChainChallenge
		id int64
	)
	err = r.db.QueryRowContext(ctx, query, contractAddress, int64(challengeID)).Scan(
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
	)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get challenge %d: %w", challengeID, err)
	}

	c.ChallengeID = uint64(id)
	return &c, nil
}
