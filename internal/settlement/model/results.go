package model

// Structured results returned by pipeline operations so that a driving
// process (CLI, scheduler, job handler) can relay them verbatim.

// RefreshResult reports a chain refresh of the challenge cache.
type RefreshResult struct {
	Fetched         int  `json:"fetched"`
	Indexed         int  `json:"indexed"`
	SkippedArchived int  `json:"skipped_archived"`
	OnlyReadyToEnd  bool `json:"only_ready_to_end"`
	ExcludeFinished bool `json:"exclude_finished"`
}

// CacheParticipantsResult reports a participant caching attempt.
type CacheParticipantsResult struct {
	ChallengeID         uint64     `json:"challenge_id"`
	ParticipantsIndexed int        `json:"participants_indexed"`
	Skipped             bool       `json:"skipped"`
	Reason              SkipReason `json:"reason,omitempty"`
}

// CacheReadyDetailsResult reports participant caching across all ready challenges.
type CacheReadyDetailsResult struct {
	Ready               int `json:"ready"`
	ParticipantsIndexed int `json:"participants_indexed"`
}

// PrepareRunResult is the resolved item set for one challenge.
type PrepareRunResult struct {
	ChallengeID uint64        `json:"challenge_id"`
	Items       []DeclareItem `json:"items"`
	Rule        Rule          `json:"rule"`
}

// DeclareChunk is one transaction's worth of declaration arguments.
// Participants and RefundBps always have equal length.
type DeclareChunk struct {
	Participants []string `json:"participants"`
	RefundBps    []int64  `json:"refundPercentages"`
}

// DeclarePayload is the chunked declaration payload, ordered; chunk index is
// the batch number attributed to each contained item.
type DeclarePayload struct {
	ChallengeID uint64         `json:"challenge_id"`
	Chunks      []DeclareChunk `json:"chunks"`
}

// Receipt summarizes a mined declaration transaction.
type Receipt struct {
	TxHash      string `json:"transactionHash"`
	Status      uint64 `json:"status"`
	GasUsed     uint64 `json:"gasUsed"`
	BlockNumber uint64 `json:"blockNumber"`
}

// FeePreview describes fee parameters chosen for a dry run.
type FeePreview struct {
	Tier                 string `json:"tier"`
	GasPrice             string `json:"gasPrice,omitempty"`
	MaxFeePerGas         string `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas string `json:"maxPriorityFeePerGas,omitempty"`
}

// DeclareResult reports a declaration attempt. In send mode Receipts holds one
// entry per broadcast chunk even when a later chunk failed, so partial
// progress is never silently lost.
type DeclareResult struct {
	DryRun     bool           `json:"dry_run"`
	Payload    DeclarePayload `json:"payload"`
	FeePreview *FeePreview    `json:"fee_params_preview,omitempty"`
	TxHashes   []string       `json:"tx_hashes"`
	Receipts   []Receipt      `json:"receipts"`
	FeeTiers   []string       `json:"used_fee_params"`
}

// ArchiveResult reports archival of one settled challenge.
type ArchiveResult struct {
	ChallengeID          uint64 `json:"challenge_id"`
	ArchivedChallenge    bool   `json:"archived_challenge"`
	ArchivedParticipants int    `json:"archived_participants"`
	DeletedChallenge     bool   `json:"deleted_challenge"`
	DeletedParticipants  int64  `json:"deleted_participants"`
}

// ProcessedChallenge is the per-challenge entry of a RunReport.
type ProcessedChallenge struct {
	ChallengeID uint64         `json:"challenge_id"`
	Declare     *DeclareResult `json:"declare,omitempty"`
	Archived    *ArchiveResult `json:"archived,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// RunReport is the result of one full process-ready run.
type RunReport struct {
	RunID      string                   `json:"run_id"`
	Refresh    *RefreshResult           `json:"refresh"`
	Details    *CacheReadyDetailsResult `json:"details"`
	ReadyCount int                      `json:"ready_count"`
	Processed  []ProcessedChallenge     `json:"processed"`
}
