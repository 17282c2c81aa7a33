package postgres

import (
	"context"
	"fmt"
	"time"
)

// DeleteChallenge removes one challenge cache row. Returns whether a row was
// deleted.
func (r *Repository) DeleteChallenge(ctx context.Context, contractAddress string, challengeID uint64) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_challenge", err, start)
	}()

	const query = `
DELETE FROM chain_challenges
WHERE contract_address = $1 AND challenge_id = $2`

	res, err := r.db.ExecContext(ctx, query, contractAddress, int64(challengeID))
	if err != nil {
		return false, fmt.Errorf("delete challenge %d: %w", challengeID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete challenge %d rows affected: %w", challengeID, err)
	}
	return affected > 0, nil
}
