// Package service implements the settlement pipeline stages.
package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/chain"
	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		UpsertChallenges(ctx context.Context, challenges []model.ChainChallenge) error
		UpsertParticipants(ctx context.Context, contractAddress string, challengeID uint64, participants []model.ChainParticipant) error
		UpsertFinishedChallenge(ctx context.Context, finished model.FinishedChallenge) error
		UpsertFinishedParticipants(ctx context.Context, participants []model.FinishedParticipant) error
		GetChallenge(ctx context.Context, contractAddress string, challengeID uint64) (*model.ChainChallenge, error)
		ListReadyChallenges(ctx context.Context, contractAddress string, nowUnix int64) ([]model.ChainChallenge, error)
		ListPendingParticipants(ctx context.Context, contractAddress string, challengeID uint64, limit int) ([]model.ChainParticipant, error)
		ArchivedChallengeIDs(ctx context.Context, contractAddress string, candidates []uint64) (map[uint64]struct{}, error)
		FinishedChallengeExists(ctx context.Context, contractAddress string, challengeID uint64) (bool, error)
		DeleteChallenge(ctx context.Context, contractAddress string, challengeID uint64) (bool, error)
		DeleteParticipants(ctx context.Context, contractAddress string, challengeID uint64) (int64, error)
	}
	ChainGateway interface {
		ListChallenges(ctx context.Context, limit uint64) ([]model.ChainChallenge, error)
		ChallengeDetailByID(ctx context.Context, challengeID uint64) (*chain.ChallengeDetail, error)
		Declare(ctx context.Context, challengeID uint64, participants []common.Address, refundBps []int64, nonce uint64) (*model.Receipt, chain.FeeTier, error)
		PreviewFeeParams(ctx context.Context) model.FeePreview
		PendingNonce(ctx context.Context) (uint64, error)
		SignerAddress() (common.Address, error)
	}
	ProgressOracle interface {
		Resolve(ctx context.Context, challenge model.ChainChallenge, participantAddress string) (*float64, error)
	}
	IndexerMetrics interface {
		ObserveRefresh(err error, indexed int, started time.Time)
		ObserveCacheParticipants(err error, started time.Time)
	}
	WriterMetrics interface {
		ObserveDeclareChunk(feeTier string, size int, err error, started time.Time)
	}
)
