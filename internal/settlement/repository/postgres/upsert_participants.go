package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
)

// UpsertParticipants stores participant cache rows for one challenge, keyed by
// (contract_address, challenge_id, user_address).
func (r *Repository) UpsertParticipants(ctx context.Context, contractAddress string, challengeID uint64, participants []model.ChainParticipant) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_participants", err, start)
	}()

	if len(participants) == 0 {
		return nil
	}

	const query = `
INSERT INTO chain_participants (
	contract_address,
	challenge_id,
	user_address,
	initial_amount,
	amount,
	refund_percentage,
	result_declared,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
ON CONFLICT (contract_address, challenge_id, user_address) DO UPDATE SET
	initial_amount = EXCLUDED.initial_amount,
	amount = EXCLUDED.amount,
	refund_percentage = EXCLUDED.refund_percentage,
	result_declared = EXCLUDED.result_declared,
	updated_at = NOW()`

	for _, p := range participants {
		if _, err = r.db.ExecContext(ctx, query,
			contractAddress,
			int64(challengeID),
			p.ParticipantAddress,
			p.InitialAmount,
			p.Amount,
			p.RefundPercentage,
			p.ResultDeclared,
		); err != nil {
			return fmt.Errorf("upsert participant %s of challenge %d: %w", p.ParticipantAddress, challengeID, err)
		}
	}
	return nil
}
