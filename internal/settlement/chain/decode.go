package chain

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/common"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
	"github.com/goodnatureofminers/chainsettle7000-backend/pkg/safe"
)

// The contract has shipped two record layouts. Old deployments return
// challenge tuples without the name field and participant tuples without the
// initial amount. Decoding therefore detects record arity and maps fields
// positionally; it never relies on ABI component names.
//
// Challenge (old, 12 fields): id, recipient, start, end, isPrivate, apiType,
// goalType, goalAmount, description, totalDonation, resultsFinalized, last.
// Challenge (new, 13 fields): name inserted at index 5.
// The last field is participantCount in list records and the participant
// array in detail records.
//
// Participant (old, 4 fields): address, amount, refundPercentage, declared.
// Participant (new, 5 fields): initialAmount inserted at index 1.

const (
	challengeArityOld = 12
	challengeArityNew = 13

	participantArityOld = 4
	participantArityNew = 5
)

// record wraps one unpacked tuple for positional, type-checked field access.
type record struct {
	v reflect.Value
}

func newRecord(raw interface{}) (record, error) {
	v := reflect.ValueOf(raw)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return record{}, fmt.Errorf("expected tuple, got %T", raw)
	}
	return record{v: v}, nil
}

func (r record) arity() int {
	return r.v.NumField()
}

func (r record) field(i int) (interface{}, error) {
	if i < 0 || i >= r.v.NumField() {
		return nil, fmt.Errorf("tuple field %d out of range (arity %d)", i, r.v.NumField())
	}
	return r.v.Field(i).Interface(), nil
}

func (r record) int64(i int) (int64, error) {
	raw, err := r.field(i)
	if err != nil {
		return 0, err
	}
	b, ok := raw.(*big.Int)
	if !ok {
		return 0, fmt.Errorf("tuple field %d: expected *big.Int, got %T", i, raw)
	}
	v, err := safe.Int64(b)
	if err != nil {
		return 0, fmt.Errorf("tuple field %d: %w", i, err)
	}
	return v, nil
}

func (r record) uint64(i int) (uint64, error) {
	raw, err := r.field(i)
	if err != nil {
		return 0, err
	}
	b, ok := raw.(*big.Int)
	if !ok {
		return 0, fmt.Errorf("tuple field %d: expected *big.Int, got %T", i, raw)
	}
	v, err := safe.Uint64(b)
	if err != nil {
		return 0, fmt.Errorf("tuple field %d: %w", i, err)
	}
	return v, nil
}

func (r record) str(i int) (string, error) {
	raw, err := r.field(i)
	if err != nil {
		return "", err
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("tuple field %d: expected string, got %T", i, raw)
	}
	return s, nil
}

func (r record) boolean(i int) (bool, error) {
	raw, err := r.field(i)
	if err != nil {
		return false, err
	}
	b, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("tuple field %d: expected bool, got %T", i, raw)
	}
	return b, nil
}

func (r record) address(i int) (string, error) {
	raw, err := r.field(i)
	if err != nil {
		return "", err
	}
	a, ok := raw.(common.Address)
	if !ok {
		return "", fmt.Errorf("tuple field %d: expected address, got %T", i, raw)
	}
	return a.Hex(), nil
}

func (r record) slice(i int) ([]interface{}, error) {
	raw, err := r.field(i)
	if err != nil {
		return nil, err
	}
	v := reflect.ValueOf(raw)
	if v.Kind() != reflect.Slice {
		return nil, fmt.Errorf("tuple field %d: expected slice, got %T", i, raw)
	}
	out := make([]interface{}, v.Len())
	for j := 0; j < v.Len(); j++ {
		out[j] = v.Index(j).Interface()
	}
	return out, nil
}

// decodeChallengeFields fills the arity-independent challenge fields. The
// caller decodes the final field (count or participants) itself.
func decodeChallengeFields(r record) (model.ChainChallenge, error) {
	arity := r.arity()
	if arity < challengeArityOld {
		return model.ChainChallenge{}, fmt.Errorf("challenge tuple arity %d below minimum %d", arity, challengeArityOld)
	}
	hasName := arity >= challengeArityNew

	var c model.ChainChallenge
	var err error

	if c.ChallengeID, err = r.uint64(0); err != nil {
		return c, err
	}
	if c.Recipient, err = r.address(1); err != nil {
		return c, err
	}
	if c.StartTime, err = r.int64(2); err != nil {
		return c, err
	}
	if c.EndTime, err = r.int64(3); err != nil {
		return c, err
	}
	if c.IsPrivate, err = r.boolean(4); err != nil {
		return c, err
	}

	idx := 5
	if hasName {
		if c.Name, err = r.str(idx); err != nil {
			return c, err
		}
		idx++
	}
	if c.APIType, err = r.str(idx); err != nil {
		return c, err
	}
	if c.GoalType, err = r.str(idx + 1); err != nil {
		return c, err
	}
	if c.GoalAmount, err = r.int64(idx + 2); err != nil {
		return c, err
	}
	if c.Description, err = r.str(idx + 3); err != nil {
		return c, err
	}
	if c.TotalDonationAmount, err = r.int64(idx + 4); err != nil {
		return c, err
	}
	if c.ResultsFinalized, err = r.boolean(idx + 5); err != nil {
		return c, err
	}
	return c, nil
}

func decodeChallengeSummary(raw interface{}) (model.ChainChallenge, error) {
	r, err := newRecord(raw)
	if err != nil {
		return model.ChainChallenge{}, err
	}
	c, err := decodeChallengeFields(r)
	if err != nil {
		return model.ChainChallenge{}, err
	}
	count, err := r.int64(r.arity() - 1)
	if err != nil {
		return model.ChainChallenge{}, err
	}
	c.ParticipantCount = count
	return c, nil
}

func decodeChallengeDetail(raw interface{}) (model.ChainChallenge, []model.ChainParticipant, error) {
	r, err := newRecord(raw)
	if err != nil {
		return model.ChainChallenge{}, nil, err
	}
	c, err := decodeChallengeFields(r)
	if err != nil {
		return model.ChainChallenge{}, nil, err
	}

	rawParts, err := r.slice(r.arity() - 1)
	if err != nil {
		return model.ChainChallenge{}, nil, err
	}
	participants := make([]model.ChainParticipant, 0, len(rawParts))
	for _, rp := range rawParts {
		p, err := decodeParticipant(rp)
		if err != nil {
			return model.ChainChallenge{}, nil, err
		}
		p.ChallengeID = c.ChallengeID
		participants = append(participants, p)
	}
	c.ParticipantCount = int64(len(participants))
	return c, participants, nil
}

func decodeParticipant(raw interface{}) (model.ChainParticipant, error) {
	r, err := newRecord(raw)
	if err != nil {
		return model.ChainParticipant{}, err
	}

	var p model.ChainParticipant
	switch arity := r.arity(); {
	case arity >= participantArityNew:
		if p.ParticipantAddress, err = r.address(0); err != nil {
			return p, err
		}
		if p.InitialAmount, err = r.int64(1); err != nil {
			return p, err
		}
		if p.Amount, err = r.int64(2); err != nil {
			return p, err
		}
		if p.RefundPercentage, err = r.int64(3); err != nil {
			return p, err
		}
		if p.ResultDeclared, err = r.boolean(4); err != nil {
			return p, err
		}
	case arity == participantArityOld:
		if p.ParticipantAddress, err = r.address(0); err != nil {
			return p, err
		}
		if p.Amount, err = r.int64(1); err != nil {
			return p, err
		}
		p.InitialAmount = p.Amount
		if p.RefundPercentage, err = r.int64(2); err != nil {
			return p, err
		}
		if p.ResultDeclared, err = r.boolean(3); err != nil {
			return p, err
		}
	default:
		return p, fmt.Errorf("participant tuple arity %d below minimum %d", r.arity(), participantArityOld)
	}
	return p, nil
}
