package postgres

import (
	"context"
	"fmt"
	"time"
)

// DeleteParticipants removes all participant cache rows of one challenge and
// returns the number of deleted rows.
func (r *Repository) DeleteParticipants(ctx context.Context, contractAddress string, challengeID uint64) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_participants", err, start)
	}()

	const query = `
DELETE FROM chain_participants
WHERE contract_address = $1 AND challenge_id = $2`

	res, err := r.db.ExecContext(ctx, query, contractAddress, int64(challengeID))
	if err != nil {
		return 0, fmt.Errorf("delete participants of challenge %d: %w", challengeID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete participants of challenge %d rows affected: %w", challengeID, err)
	}
	return affected, nil
}
