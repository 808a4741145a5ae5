package domain

import "time"

// EventTypeMemberTakeChanged is published after a take change commits, so the
// member's funded tips can be recomputed.
const EventTypeMemberTakeChanged = "member.take_changed"

// TakeChangedEvent is the payload of EventTypeMemberTakeChanged.
type TakeChangedEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	MemberID   string    `json:"member_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
