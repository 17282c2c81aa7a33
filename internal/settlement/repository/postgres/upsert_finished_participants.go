package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
)

// UpsertFinishedParticipants stores archive rows for settled participants,
// keyed by (contract_address, challenge_id, participant_address).
func (r *Repository) UpsertFinishedParticipants(ctx context.Context, participants []model.FinishedParticipant) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_finished_participants", err, start)
	}()

	if len(participants) == 0 {
		return nil
	}

	const query = `
INSERT INTO finished_participants (
	contract_address,
	challenge_id,
	participant_address,
	stake_minor_units,
	percent_ppm,
	progress_ratio,
	batch_no,
	tx_hash,
	settled_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
ON CONFLICT (contract_address, challenge_id, participant_address) DO UPDATE SET
	stake_minor_units = EXCLUDED.stake_minor_units,
	percent_ppm = EXCLUDED.percent_ppm,
	progress_ratio = EXCLUDED.progress_ratio,
	batch_no = EXCLUDED.batch_no,
	tx_hash = EXCLUDED.tx_hash,
	settled_at = NOW()`

	for _, p := range participants {
		if _, err = r.db.ExecContext(ctx, query,
			p.ContractAddress,
			int64(p.ChallengeID),
			p.ParticipantAddress,
			p.StakeMinorUnits,
			p.PercentPPM,
			p.ProgressRatio,
			p.BatchNo,
			p.TxHash,
		); err != nil {
			return fmt.Errorf("upsert finished participant %s of challenge %d: %w", p.ParticipantAddress, p.ChallengeID, err)
		}
	}
	return nil
}
