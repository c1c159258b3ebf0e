package pool

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/theirongolddev/cryptosave/internal/model"
)

// State is the full view state: the pool plus the add-member form.
type State struct {
	Pool     Pool
	Draft    model.Draft
	Errors   model.FieldErrors
	FormOpen bool
}

// NewState returns the initial view state.
func NewState() State {
	return State{Pool: New(), Errors: model.FieldErrors{}}
}

// ToggleForm opens or closes the add-member form.
// Opening is refused while the pool is full.
func (s State) ToggleForm() State {
	if !s.FormOpen && !s.Pool.CanAdd() {
		return s
	}
	s.FormOpen = !s.FormOpen
	return s
}

// EditName replaces the draft name.
func (s State) EditName(name string) State {
	s.Draft.Name = name
	return s
}

// EditAmount replaces the draft amount.
func (s State) EditAmount(amount string) State {
	s.Draft.Amount = amount
	return s
}

// SelectTier sets the draft tier and fills in its fixed amount.
// An unknown tier clears the amount. Tier and amount errors are dropped.
func (s State) SelectTier(tier string) State {
	s.Draft.Tier = tier
	if t, ok := lookupDraftTier(tier); ok {
		s.Draft.Amount = strconv.FormatInt(t.Amount, 10)
	} else {
		s.Draft.Amount = ""
	}
	s.Errors = s.Errors.Without(model.FieldTier, model.FieldAmount)
	return s
}

// Submit tries to add the drafted member. Success resets the form and
// closes it; failure keeps the form open with the errors attached.
func (s State) Submit(id uuid.UUID) (State, bool) {
	next, errs := s.Pool.AddMember(s.Draft, id)
	if !errs.Valid() {
		s.Errors = errs
		return s, false
	}
	return State{Pool: next, Errors: model.FieldErrors{}}, true
}

// Cancel discards the draft and closes the form.
func (s State) Cancel() State {
	s.Draft = model.Draft{}
	s.Errors = model.FieldErrors{}
	s.FormOpen = false
	return s
}

// Withdraw removes a member.
func (s State) Withdraw(id uuid.UUID) State {
	s.Pool = s.Pool.RemoveMember(id)
	return s
}

// AdvanceWeek moves the pool forward one week.
func (s State) AdvanceWeek() State {
	s.Pool = s.Pool.AdvanceWeek()
	return s
}

// Preview returns the selected tier's weekly interest and the balance after
// one week. ok is false when no tier is selected.
func (s State) Preview() (weekly, afterOneWeek int64, ok bool) {
	t, ok := lookupDraftTier(s.Draft.Tier)
	if !ok {
		return 0, 0, false
	}
	weekly = t.WeeklyInterest(t.Amount)
	return weekly, t.Amount + weekly, true
}
