package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// ArchivedChallengeIDs returns which of the candidate ids already have an
// archive row for the contract.
func (r *Repository) ArchivedChallengeIDs(ctx context.Context, contractAddress string, candidates []uint64) (map[uint64]struct{}, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("archived_challenge_ids", err, start)
	}()

	archived := make(map[uint64]struct{}, len(candidates))
	if len(candidates) == 0 {
		return archived, nil
	}

	ids := make([]int64, 0, len(candidates))
	for _, id := range candidates {
		ids = append(ids, int64(id))
	}

	const query = `
SELECT challenge_id
FROM finished_challenges
WHERE contract_address = $1 AND challenge_id = ANY($2)`

	rows, err := r.db.QueryContext(ctx, query, contractAddress, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("query archived challenge ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan archived challenge id: %w", err)
		}
		archived[uint64(id)] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate archived challenge ids: %w", err)
	}
	return archived, nil
}
