package memory

// PendingSlot records which follow-up question the bot is waiting on for a
// conversation. At most one slot is pending at a time.
type PendingSlot int

const (
	SlotNone PendingSlot = iota
	SlotAwaitingCity
	SlotAwaitingJokeConfirmation
)

func (s PendingSlot) String() string {
	switch s {
	case SlotAwaitingCity:
		return "awaiting_city"
	case SlotAwaitingJokeConfirmation:
		return "awaiting_joke_confirmation"
	default:
		return "none"
	}
}

// Context is the per-conversation memory record.
type Context struct {
	Pending PendingSlot
}
