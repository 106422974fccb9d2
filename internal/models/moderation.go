package models

// ModerationState is the single internal form of a message's moderation
// lifecycle. The stored tri-state boolean and status string are generated
// from it here and nowhere else.
type ModerationState string

const (
	StatePending  ModerationState = "pending"
	StateApproved ModerationState = "approved"
	StateRejected ModerationState = "rejected"
)

// StateFromApproved maps the stored tri-state boolean to the enum.
func StateFromApproved(approved *bool) ModerationState {
	switch {
	case approved == nil:
		return StatePending
	case *approved:
		return StateApproved
	default:
		return StateRejected
	}
}

// Approved returns the tri-state boolean column value for the state.
func (s ModerationState) Approved() *bool {
	switch s {
	case StateApproved:
		v := true
		return &v
	case StateRejected:
		v := false
		return &v
	default:
		return nil
	}
}

// IsDecision reports whether the state is a valid moderation decision.
// Pending is an initial state only; there is no transition back into it.
func (s ModerationState) IsDecision() bool {
	return s == StateApproved || s == StateRejected
}
