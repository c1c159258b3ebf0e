package pool

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/cryptosave/internal/config"
	"github.com/theirongolddev/cryptosave/internal/model"
)

// Validation messages shown next to the offending field.
const (
	MsgNameRequired   = "Name is required"
	MsgTierRequired   = "Please select a tier"
	MsgAmountRequired = "Amount is required"
	MsgAmountNotWhole = "Amount must be a whole number"
	MsgPoolFull       = "Maximum of 12 members allowed"
)

// unsetTierName labels the expected-amount message when no tier is selected.
const unsetTierName = "Tier"

// Validate checks a draft against the tier table and the member cap.
// Every check runs; the result holds all applicable errors at once.
func Validate(d model.Draft, memberCount int) model.FieldErrors {
	errs := model.FieldErrors{}

	if strings.TrimSpace(d.Name) == "" {
		errs[model.FieldName] = MsgNameRequired
	}

	tier, hasTier := lookupDraftTier(d.Tier)
	if !hasTier {
		errs[model.FieldTier] = MsgTierRequired
	}

	if msg := validateAmount(d.Amount, tier, hasTier); msg != "" {
		errs[model.FieldAmount] = msg
	}

	if memberCount >= config.MaxMembers {
		errs[model.FieldGeneral] = MsgPoolFull
	}

	return errs
}

// validateAmount compares the amount against the tier's fixed deposit.
// With no tier selected the expected amount is 0.
func validateAmount(raw string, tier config.Tier, hasTier bool) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return MsgAmountRequired
	}

	amount, err := parseAmount(raw)
	if err != nil {
		return MsgAmountNotWhole
	}

	expected := int64(0)
	name := unsetTierName
	if hasTier {
		expected = tier.Amount
		name = tier.Name
	}
	if amount != expected {
		return fmt.Sprintf("%s requires exactly %s", name, model.FormatNaira(expected))
	}
	return ""
}

// parseAmount accepts an optionally signed base-10 integer.
func parseAmount(raw string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}

func lookupDraftTier(raw string) (config.Tier, bool) {
	id, ok := config.ParseTierID(raw)
	if !ok {
		return config.Tier{}, false
	}
	return config.LookupTier(id)
}
