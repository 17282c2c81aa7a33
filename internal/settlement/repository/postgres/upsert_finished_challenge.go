package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
)

// UpsertFinishedChallenge stores one archive row for a settled challenge.
// The settlement rule and run summary are kept as JSONB documents.
func (r *Repository) UpsertFinishedChallenge(ctx context.Context, finished model.FinishedChallenge) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_finished_challenge", err, start)
	}()

	ruleJSON, err := json.Marshal(finished.Rule)
	if err != nil {
		return fmt.Errorf("marshal settlement rule: %w", err)
	}
	summaryJSON, err := json.Marshal(finished.Summary)
	if err != nil {
		return fmt.Errorf("marshal settlement summary: %w", err)
	}

	const query = `
INSERT INTO finished_challenges (
	contract_address,
	challenge_id,
	rule,
	summary,
	settled_at
) VALUES ($1, $2, $3, $4, NOW())
ON CONFLICT (contract_address, challenge_id) DO UPDATE SET
	rule = EXCLUDED.rule,
	summary = EXCLUDED.summary,
	settled_at = NOW()`

	if _, err = r.db.ExecContext(ctx, query,
		finished.ContractAddress,
		int64(finished.ChallengeID),
		ruleJSON,
		summaryJSON,
	); err != nil {
		return fmt.Errorf("upsert finished challenge %d: %w", finished.ChallengeID, err)
	}
	return nil
}
