// Package progress defines the completion-ratio boundary between the
// settlement pipeline and external progress providers.
package progress

import (
	"context"
	"strings"

	"github.com/goodnatureofminers/chainsettle7000-backend/internal/settlement/model"
)

// Oracle resolves a participant's completion ratio for a challenge window.
// A nil ratio with a nil error means "no data for this participant"; the
// resolver substitutes its configured fallback in that case. Implementations
// exist per provider (github, strava, wakatime, farcaster); the pipeline only
// depends on this contract, never on provider payloads.
type Oracle interface {
	Resolve(ctx context.Context, challenge model.ChainChallenge, participantAddress string) (*float64, error)
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(ctx context.Context, challenge model.ChainChallenge, participantAddress string) (*float64, error)

// Resolve implements Oracle.
func (f OracleFunc) Resolve(ctx context.Context, challenge model.ChainChallenge, participantAddress string) (*float64, error) {
	return f(ctx, challenge, participantAddress)
}

// Registry dispatches ratio lookups to the oracle registered for a
// challenge's provider tag. An unknown or empty tag resolves to no data.
type Registry struct {
	oracles map[string]Oracle
}

// NewRegistry builds a Registry from provider tag to oracle.
func NewRegistry(oracles map[string]Oracle) *Registry {
	normalized := make(map[string]Oracle, len(oracles))
	for tag, oracle := range oracles {
		normalized[strings.ToLower(tag)] = oracle
	}
	return &Registry{oracles: normalized}
}

// Resolve implements Oracle by dispatching on the challenge's APIType.
func (r *Registry) Resolve(ctx context.Context, challenge model.ChainChallenge, participantAddress string) (*float64, error) {
	oracle, ok := r.oracles[strings.ToLower(challenge.APIType)]
	if !ok {
		return nil, nil
	}
	return oracle.Resolve(ctx, challenge, participantAddress)
}

// None is an Oracle that never has data; useful as a default when no
// providers are configured.
var None Oracle = OracleFunc(func(context.Context, model.ChainChallenge, string) (*float64, error) {
	return nil, nil
})
