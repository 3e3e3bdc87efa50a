package types

// Outcome is the result of a single accepted confirmation.
type Outcome int

const (
	// Pending means the local effect must not run on this call.
	Pending Outcome = iota
	// Ready means this call is the one that reached quorum; the effect runs now, once.
	Ready
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Ready:
		return "ready"
	default:
		return "pending"
	}
}

// QuorumThreshold returns the number of confirmations required to execute an
// action for a validator set of the given size: strictly more than two thirds.
func QuorumThreshold(validatorCount uint64) uint64 {
	return validatorCount*2/3 + 1
}

// ConfirmResult is returned by an accepted confirmation.
type ConfirmResult struct {
	Outcome Outcome
	// Confirmations is the size of the confirmation set after this call.
	Confirmations uint64
	// Threshold is the quorum threshold the call was evaluated against.
	Threshold uint64
	// Payload is the stored, authoritative payload of the action.
	Payload ActionPayload
	// Pruned is true if the record was removed because every validator confirmed it.
	Pruned bool
}

// IsReady reports whether the caller must execute the payload.
func (r ConfirmResult) IsReady() bool {
	return r.Outcome == Ready
}
