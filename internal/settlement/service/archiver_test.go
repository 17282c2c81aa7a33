package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
)

func TestArchiverArchive_WritesArchiveAndClearsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := NewMockStore(ctrl)
	ctx := context.Background()

	rule := model.Rule{Type: "progress_oracle", FallbackPercentPPM: 200_000}
	summary := model.Summary{TxHashes: []string{"0xaaa1"}}
	batch := 0
	items := []model.DeclareItem{
		{User: "0xaaaa", StakeMinorUnits: 100, PercentPPM: 1_000_000, BatchNo: &batch, TxHash: "0xaaa1"},
		{User: "0xbbbb", StakeMinorUnits: 200, PercentPPM: 200_000},
	}

	store.EXPECT().
		UpsertFinishedChallenge(ctx, model.FinishedChallenge{
			ContractAddress: testContract,
			ChallengeID:     9,
			Rule:            rule,
			Summary:         summary,
		}).
		Return(nil)
	store.EXPECT().
		UpsertFinishedParticipants(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []model.FinishedParticipant) error {
			if len(rows) != 2 {
				t.Fatalf("expected 2 archive rows, got %d", len(rows))
			}
			if rows[0].TxHash == nil || *rows[0].TxHash != "0xaaa1" {
				t.Fatalf("expected tx hash carried into archive row")
			}
			if rows[0].BatchNo == nil || *rows[0].BatchNo != 0 {
				t.Fatalf("expected batch number carried into archive row")
			}
			if rows[1].TxHash != nil {
				t.Fatalf("expected nil tx hash for undeclared-this-run row")
			}
			return nil
		})
	store.EXPECT().DeleteChallenge(ctx, testContract, uint64(9)).Return(true, nil)
	store.EXPECT().DeleteParticipants(ctx, testContract, uint64(9)).Return(int64(2), nil)

	got, err := NewArchiverService(store, testContract, zap.NewNop()).
		Archive(ctx, 9, rule, summary, items, true)
	if err != nil {
		t.Fatalf("Archive returned error: %v", err)
	}
	if !got.ArchivedChallenge || got.ArchivedParticipants != 2 {
		t.Fatalf("unexpected archive result: %+v", got)
	}
	if !got.DeletedChallenge || got.DeletedParticipants != 2 {
		t.Fatalf("unexpected delete counts: %+v", got)
	}
}

func TestArchiverArchive_KeepsParticipantsWhenNotRequested(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := NewMockStore(ctrl)
	ctx := context.Background()

	store.EXPECT().UpsertFinishedChallenge(ctx, gomock.Any()).Return(nil)
	store.EXPECT().UpsertFinishedParticipants(ctx, gomock.Any()).Return(nil)
	store.EXPECT().DeleteChallenge(ctx, testContract, uint64(9)).Return(false, nil)

	got, err := NewArchiverService(store, testContract, zap.NewNop()).
		Archive(ctx, 9, model.Rule{}, model.Summary{}, nil, false)
	if err != nil {
		t.Fatalf("Archive returned error: %v", err)
	}
	if got.DeletedChallenge || got.DeletedParticipants != 0 {
		t.Fatalf("unexpected delete counts: %+v", got)
	}
}
