package scenario

import "github.com/theirongolddev/cryptosave/internal/model"

// Script is a named list of steps applied to a fresh pool.
type Script struct {
	Name  string `yaml:"name,omitempty"`
	Steps []Step `yaml:"steps"`
}

// Step holds exactly one action.
type Step struct {
	Add      *AddStep `yaml:"add,omitempty"`
	Advance  *int     `yaml:"advance,omitempty"`
	Withdraw string   `yaml:"withdraw,omitempty"`
}

// AddStep mirrors the add-member form. An empty Amount takes the tier's
// fixed amount, the same way picking a tier fills the form.
type AddStep struct {
	Name   string `yaml:"name"`
	Tier   string `yaml:"tier"`
	Amount string `yaml:"amount,omitempty"`
}

// Step kinds reported in results.
const (
	KindAdd      = "add"
	KindAdvance  = "advance"
	KindWithdraw = "withdraw"
)

// StepResult describes what one step did.
type StepResult struct {
	Index  int
	Kind   string
	Week   int // pool week after the step
	Member string
	Errors model.FieldErrors // rejected add
	Note   string
}

// OK reports whether the step changed the pool as requested.
func (r StepResult) OK() bool {
	return r.Errors.Valid() && r.Note == ""
}
