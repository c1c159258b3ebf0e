package pool

import "github.com/theirongolddev/cryptosave/internal/model"

// JoinedEvent describes a member joining.
func JoinedEvent(m model.Member) model.Event {
	return model.Event{
		Week:       m.JoinedWeek,
		Kind:       model.EventJoined,
		MemberID:   m.ID,
		MemberName: m.Name,
		Tier:       m.Tier,
		Amount:     m.InitialAmount,
	}
}

// WithdrewEvent describes a member leaving with their current balance.
func WithdrewEvent(m model.Member, week int) model.Event {
	return model.Event{
		Week:       week,
		Kind:       model.EventWithdrew,
		MemberID:   m.ID,
		MemberName: m.Name,
		Tier:       m.Tier,
		Amount:     m.CurrentAmount,
	}
}

// WeekAdvancedEvent describes the pool after a week advance: the week it
// reached and its total savings.
func WeekAdvancedEvent(p Pool) model.Event {
	return model.Event{
		Week:   p.Week,
		Kind:   model.EventWeekAdvanced,
		Amount: p.Totals().Savings,
	}
}
