// Package pool implements the savings pool state and its transitions.
//
// Every transition is a value-receiver method that returns a new Pool;
// the receiver and its member slice are never modified.
package pool

import (
	"strings"

	"github.com/google/uuid"

	"github.com/theirongolddev/cryptosave/internal/config"
	"github.com/theirongolddev/cryptosave/internal/model"
)

// Pool is the ordered member list plus the current simulated week.
type Pool struct {
	Members []model.Member
	Week    int
}

// New returns an empty pool at week 1.
func New() Pool {
	return Pool{Week: 1}
}

// NewMemberID returns a time-ordered member ID.
func NewMemberID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// Len returns the member count.
func (p Pool) Len() int {
	return len(p.Members)
}

// CanAdd reports whether another member fits.
func (p Pool) CanAdd() bool {
	return len(p.Members) < config.MaxMembers
}

// CanAdvance reports whether there is anyone to accrue interest for.
func (p Pool) CanAdvance() bool {
	return len(p.Members) > 0
}

// Find returns the member with the given ID.
func (p Pool) Find(id uuid.UUID) (model.Member, bool) {
	for _, m := range p.Members {
		if m.ID == id {
			return m, true
		}
	}
	return model.Member{}, false
}

// Validate checks d against this pool's current size.
func (p Pool) Validate(d model.Draft) model.FieldErrors {
	return Validate(d, len(p.Members))
}

// AddMember appends a member built from d. On validation failure the pool
// is returned unchanged together with the errors.
func (p Pool) AddMember(d model.Draft, id uuid.UUID) (Pool, model.FieldErrors) {
	if errs := p.Validate(d); !errs.Valid() {
		return p, errs
	}

	// Validate guarantees both parse.
	tier, _ := lookupDraftTier(d.Tier)
	amount, _ := parseAmount(d.Amount)

	m := model.Member{
		ID:             id,
		Name:           strings.TrimSpace(d.Name),
		Tier:           tier.ID,
		InitialAmount:  amount,
		CurrentAmount:  amount,
		WeeklyInterest: tier.WeeklyInterest(amount),
		JoinedWeek:     p.Week,
	}

	members := make([]model.Member, 0, len(p.Members)+1)
	members = append(members, p.Members...)
	members = append(members, m)

	return Pool{Members: members, Week: p.Week}, model.FieldErrors{}
}

// RemoveMember drops the member with the given ID. Unknown IDs are ignored.
func (p Pool) RemoveMember(id uuid.UUID) Pool {
	idx := -1
	for i, m := range p.Members {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return p
	}

	members := make([]model.Member, 0, len(p.Members)-1)
	members = append(members, p.Members[:idx]...)
	members = append(members, p.Members[idx+1:]...)
	return Pool{Members: members, Week: p.Week}
}

// AdvanceWeek credits each member's fixed weekly interest and moves to the
// next week. Growth is linear: the credit never changes between weeks.
func (p Pool) AdvanceWeek() Pool {
	members := make([]model.Member, len(p.Members))
	for i, m := range p.Members {
		m.CurrentAmount += m.WeeklyInterest
		members[i] = m
	}
	return Pool{Members: members, Week: p.Week + 1}
}

// Totals derives the pool aggregates.
func (p Pool) Totals() model.Totals {
	var t model.Totals
	for _, m := range p.Members {
		t.Savings += m.CurrentAmount
		t.InitialSavings += m.InitialAmount
	}
	t.Interest = t.Savings - t.InitialSavings
	t.Members = len(p.Members)
	return t
}
