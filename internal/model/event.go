package model

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names a pool transition recorded in the journal.
type EventKind string

const (
	EventJoined       EventKind = "joined"
	EventWithdrew     EventKind = "withdrew"
	EventWeekAdvanced EventKind = "week_advanced"
)

// Event is one journal entry. Member fields are zero for week_advanced.
type Event struct {
	Seq        int64
	Week       int
	Kind       EventKind
	MemberID   uuid.UUID
	MemberName string
	Tier       int
	Amount     int64 // deposit for joined, balance paid out for withdrew, pool total for week_advanced
	At         time.Time
}
