// Package model defines domain types for the cryptosave savings pool.
package model

import "github.com/google/uuid"

// Member is one saver in the pool.
// WeeklyInterest is fixed when the member joins and never recomputed.
type Member struct {
	ID             uuid.UUID
	Name           string
	Tier           int
	InitialAmount  int64
	CurrentAmount  int64
	WeeklyInterest int64
	JoinedWeek     int
}

// InterestToDate is the interest accrued since joining.
func (m Member) InterestToDate() int64 {
	return m.CurrentAmount - m.InitialAmount
}

// Draft is the raw text of the add-member form.
type Draft struct {
	Name   string
	Tier   string
	Amount string
}

// Totals holds the pool aggregates. Interest is always Savings - InitialSavings.
type Totals struct {
	Savings        int64
	InitialSavings int64
	Interest       int64
	Members        int
}
