package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/chain"
	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/percent"
)

// ProcessOptions configures one full run over the ready challenge set.
// Send must be set explicitly to broadcast transactions; the default run is a
// dry pass that refreshes the cache and reports pending work.
type ProcessOptions struct {
	ListLimit          uint64
	ChunkSize          int
	FallbackPPM        int64
	Send               bool
	DeleteParticipants bool
}

// Runner drives the full pipeline over every ready challenge. It owns no
// schedule; an external cron invokes it and each invocation is re-entrant.
type Runner struct {
	indexer    *IndexerService
	resolver   *ResolverService
	writer     *WriterService
	reconciler *ReconcilerService
	archiver   *ArchiverService
	logger     *zap.Logger
}

func NewRunner(
	indexer *IndexerService,
	resolver *ResolverService,
	writer *WriterService,
	reconciler *ReconcilerService,
	archiver *ArchiverService,
	logger *zap.Logger,
) *Runner {
	return &Runner{
		indexer:    indexer,
		resolver:   resolver,
		writer:     writer,
		reconciler: reconciler,
		archiver:   archiver,
		logger:     logger,
	}
}

// ProcessReady refreshes the cache, then settles every ready challenge:
// resolve percentages, reconcile against chain, declare pending results and
// archive. Without opts.Send nothing is declared or archived; the run only
// refreshes the cache and reports pending work. A failure in one challenge is
// recorded in the report and does not stop the others.
func (r *Runner) ProcessReady(ctx context.Context, opts ProcessOptions) (*model.RunReport, error) {
	report := &model.RunReport{RunID: uuid.NewString(), Processed: []model.ProcessedChallenge{}}

	refresh, err := r.indexer.Refresh(ctx, opts.ListLimit, true, true)
	if err != nil {
		return report, err
	}
	report.Refresh = refresh

	details, err := r.indexer.CacheReadyDetails(ctx)
	if err != nil {
		return report, err
	}
	report.Details = details

	ready, err := r.indexer.ListReady(ctx)
	if err != nil {
		return report, err
	}
	report.ReadyCount = len(ready)

	for _, challenge := range ready {
		entry := r.processOne(ctx, challenge.ChallengeID, opts)
		report.Processed = append(report.Processed, entry)
	}

	r.logger.Info("process-ready run finished",
		zap.String("run_id", report.RunID),
		zap.Int("ready", report.ReadyCount))
	return report, nil
}

func (r *Runner) processOne(ctx context.Context, challengeID uint64, opts ProcessOptions) model.ProcessedChallenge {
	entry := model.ProcessedChallenge{ChallengeID: challengeID}

	prep, err := r.resolver.PrepareRun(ctx, challengeID, opts.FallbackPPM)
	if err != nil {
		entry.Error = err.Error()
		return entry
	}

	rec, err := r.reconciler.Reconcile(ctx, challengeID, prep.Items)
	if err != nil {
		entry.Error = err.Error()
		return entry
	}

	items := rec.Pending
	settledItems := declaredToItems(rec.DeclaredOnChain)

	if !opts.Send {
		// Dry run: report the reconciled state and leave declaration and
		// archival to a run with sending enabled.
		entry.Declare = &model.DeclareResult{
			DryRun:   true,
			Payload:  model.DeclarePayload{ChallengeID: challengeID, Chunks: []model.DeclareChunk{}},
			TxHashes: []string{},
		}
		return entry
	}

	if len(items) == 0 {
		// Nothing left to declare on chain; archive without a transaction.
		entry.Archived, err = r.archive(ctx, challengeID, prep.Rule, model.Summary{TxHashes: []string{}}, settledItems, opts)
		if err != nil {
			entry.Error = err.Error()
		}
		return entry
	}

	declare, err := r.writer.DeclareResults(ctx, challengeID, items, opts.ChunkSize, true)
	entry.Declare = declare
	if err != nil {
		if !errors.Is(err, chain.ErrAlreadyDeclared) {
			entry.Error = err.Error()
			return entry
		}

		// Someone settled part of this challenge between reconcile and send.
		// Re-reconcile; if nothing is pending any more, archive what the
		// chain reports and leave partially settled challenges to the next
		// scheduled run.
		rec2, recErr := r.reconciler.Reconcile(ctx, challengeID, items)
		if recErr != nil {
			entry.Error = recErr.Error()
			return entry
		}
		if len(rec2.Pending) > 0 {
			entry.Error = err.Error()
			return entry
		}

		settledItems = declaredToItems(rec2.DeclaredOnChain)
		summary := model.Summary{TxHashes: declare.TxHashes}
		entry.Archived, err = r.archive(ctx, challengeID, prep.Rule, summary, settledItems, opts)
		if err != nil {
			entry.Error = err.Error()
		}
		return entry
	}

	merged := append(annotate(items, declare), settledItems...)
	summary := model.Summary{TxHashes: declare.TxHashes}
	entry.Archived, err = r.archive(ctx, challengeID, prep.Rule, summary, merged, opts)
	if err != nil {
		entry.Error = err.Error()
	}
	return entry
}

func (r *Runner) archive(
	ctx context.Context,
	challengeID uint64,
	rule model.Rule,
	summary model.Summary,
	items []model.DeclareItem,
	opts ProcessOptions,
) (*model.ArchiveResult, error) {
	return r.archiver.Archive(ctx, challengeID, rule, summary, items, opts.DeleteParticipants)
}

// annotate attributes each item with the chunk number and transaction hash it
// was declared in. Items beyond the broadcast chunks stay unannotated.
func annotate(items []model.DeclareItem, declare *model.DeclareResult) []model.DeclareItem {
	if declare == nil {
		return items
	}

	type mark struct {
		batch int
		tx    string
	}
	marks := make(map[string]mark, len(items))
	for i, chunk := range declare.Payload.Chunks {
		if i >= len(declare.TxHashes) {
			break
		}
		for _, user := range chunk.Participants {
			marks[strings.ToLower(user)] = mark{batch: i, tx: declare.TxHashes[i]}
		}
	}

	annotated := make([]model.DeclareItem, 0, len(items))
	for _, item := range items {
		if m, ok := marks[strings.ToLower(item.User)]; ok {
			batch := m.batch
			item.BatchNo = &batch
			item.TxHash = m.tx
		}
		annotated = append(annotated, item)
	}
	return annotated
}

// declaredToItems folds participants the contract already settled into archive
// rows, converting their stored basis points back to parts per million.
func declaredToItems(declared []model.ChainParticipant) []model.DeclareItem {
	items := make([]model.DeclareItem, 0, len(declared))
	for _, p := range declared {
		items = append(items, model.DeclareItem{
			User:            p.ParticipantAddress,
			StakeMinorUnits: p.Amount,
			PercentPPM:      percent.BpsToPPM(p.RefundPercentage),
		})
	}
	return items
}
