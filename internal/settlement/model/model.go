// Package model defines domain models for challenge settlement.
package model

// SkipReason explains why participant caching was skipped for a challenge.
type SkipReason string

const (
	// SkipNone means caching was not skipped.
	SkipNone SkipReason = ""
	// SkipNotReady marks a challenge that has not ended or is already finalized.
	SkipNotReady SkipReason = "not_ready"
	// SkipAlreadyArchived marks a challenge with an existing archive row.
	SkipAlreadyArchived SkipReason = "already_archived"
)

// ChainChallenge is a cached mirror of an on-chain challenge record.
// At most one row exists per (ContractAddress, ChallengeID); rows with
// ResultsFinalized=true are never cached.
type ChainChallenge struct {
	ContractAddress     string
	ChallengeID         uint64
	Recipient           string
	StartTime           int64
	EndTime             int64
	IsPrivate           bool
	Name                string
	APIType             string
	GoalType            string
	GoalAmount          int64
	Description         string
	TotalDonationAmount int64
	ResultsFinalized    bool
	ParticipantCount    int64
}

// ChainParticipant is a cached mirror of an on-chain participant record.
// Rows with ResultDeclared=true must never be re-submitted for declaration.
type ChainParticipant struct {
	ContractAddress    string
	ChallengeID        uint64
	ParticipantAddress string
	InitialAmount      int64
	Amount             int64
	RefundPercentage   int64 // basis points as last read from chain
	ResultDeclared     bool
}

// DeclareItem is a transient pipeline item; it is never persisted standalone
// and folds into FinishedParticipant rows on archival.
type DeclareItem struct {
	User            string   `json:"user"`
	StakeMinorUnits int64    `json:"stake_minor_units"`
	PercentPPM      int64    `json:"percent_ppm"`
	ProgressRatio   *float64 `json:"progress_ratio,omitempty"`
	BatchNo         *int     `json:"batch_no,omitempty"`
	TxHash          string   `json:"tx_hash,omitempty"`
}

// Rule records how refund percentages were resolved, for archive provenance.
type Rule struct {
	Type               string `json:"type"`
	FallbackPercentPPM int64  `json:"fallback_percent_ppm"`
}

// Summary aggregates transaction hashes of a settlement run.
type Summary struct {
	TxHashes []string `json:"tx_hashes"`
}

// FinishedChallenge is the immutable archive row for a settled challenge.
// Its existence is the authoritative "already processed" signal.
type FinishedChallenge struct {
	ContractAddress string
	ChallengeID     uint64
	Rule            Rule
	Summary         Summary
}

// FinishedParticipant is the immutable archive row for a settled participant.
type FinishedParticipant struct {
	ContractAddress    string
	ChallengeID        uint64
	ParticipantAddress string
	StakeMinorUnits    int64
	PercentPPM         int64
	ProgressRatio      *float64
	BatchNo            *int
	TxHash             *string
}
