package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
)

// ListPendingParticipants returns cached participants of one challenge whose
// results are not yet declared on chain, ordered by address for stable output.
func (r *Repository) ListPendingParticipants(ctx context.Context, contractAddress string, challengeID uint64, limit int) ([]model.ChainParticipant, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_pending_participants", err, start)
	}()

	const query = `
SELECT
	contract_address,
	challenge_id,
	user_address,
	initial_amount,
	amount,
	refund_percentage,
	result_declared
FROM chain_participants
WHERE contract_address = $1
  AND challenge_id = $2
  AND result_declared = FALSE
ORDER BY user_address
LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, contractAddress, int64(challengeID), limit)
	if err != nil {
		return nil, fmt.Errorf("list pending participants of challenge %d: %w", challengeID, err)
	}
	defer rows.Close()

	var participants []model.ChainParticipant
	for rows.Next() {
		var (
			p  model.ChainParticipant
			id int64
		)
		if err = rows.Scan(
			&p.ContractAddress,
			&id,
			&p.ParticipantAddress,
			&p.InitialAmount,
			&p.Amount,
			&p.RefundPercentage,
			&p.ResultDeclared,
		); err != nil {
			return nil, fmt.Errorf("scan pending participant: %w", err)
		}
		p.ChallengeID = uint64(id)
		participants = append(participants, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending participants: %w", err)
	}
	return participants, nil
}
