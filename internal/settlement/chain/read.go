package chain

import (
	"context"
	"fmt"
	"math/big"
	"reflect"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
)

// ChallengeDetail is one challenge with its full participant set.
type ChallengeDetail struct {
	Challenge    model.ChainChallenge
	Participants []model.ChainParticipant
}

// ListChallenges enumerates up to limit challenges from the contract.
func (g *Gateway) ListChallenges(ctx context.Context, limit uint64) ([]model.ChainChallenge, error) {
	values, err := g.call(ctx, "getAllChallenges", new(big.Int).SetUint64(limit))
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("getAllChallenges returned no values")
	}

	v := reflect.ValueOf(values[0])
	if v.Kind() != reflect.Slice {
		return nil, fmt.Errorf("getAllChallenges: expected tuple array, got %T", values[0])
	}

	challenges := make([]model.ChainChallenge, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		c, err := decodeChallengeSummary(v.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("decode challenge %d: %w", i, err)
		}
		c.ContractAddress = g.contract.Hex()
		challenges = append(challenges, c)
	}
	return challenges, nil
}

// ChallengeDetailByID fetches one challenge with participants.
func (g *Gateway) ChallengeDetailByID(ctx context.Context, challengeID uint64) (*ChallengeDetail, error) {
	values, err := g.call(ctx, "getChallengeById", new(big.Int).SetUint64(challengeID))
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("getChallengeById returned no values")
	}

	c, participants, err := decodeChallengeDetail(values[0])
	if err != nil {
		return nil, fmt.Errorf("decode challenge %d detail: %w", challengeID, err)
	}
	c.ContractAddress = g.contract.Hex()
	for i := range participants {
		participants[i].ContractAddress = g.contract.Hex()
	}
	return &ChallengeDetail{Challenge: c, Participants: participants}, nil
}
