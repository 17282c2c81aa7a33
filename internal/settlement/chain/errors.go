package chain

import (
	"errors"
	"strings"
)

var (
	// ErrNotConfigured marks a missing RPC/contract/ABI configuration. This is
	// a fatal operator error and is never retried automatically.
	ErrNotConfigured = errors.New("chain gateway not configured")

	// ErrSignerMissing marks a send attempted without a configured signing key.
	// Fatal configuration error.
	ErrSignerMissing = errors.New("signing key not configured")

	// ErrAlreadyDeclared marks the contract's duplicate-declaration revert.
	// Expected and non-fatal: callers reconcile against chain state instead of
	// failing the run.
	ErrAlreadyDeclared = errors.New("result already declared for participant")
)

// alreadyDeclaredReason is the revert reason emitted by the contract when a
// declaration targets a participant whose result is already recorded. Revert
// message formats are not stable across compiler versions, so matching is by
// substring and confined to this file; everything above this boundary sees
// only the typed ErrAlreadyDeclared.
const alreadyDeclaredReason = "already declared for participant"

func isAlreadyDeclaredRevert(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), alreadyDeclaredReason)
}
