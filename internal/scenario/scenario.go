// Package scenario replays YAML scripts of pool operations.
package scenario

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/cryptosave/internal/model"
	"github.com/theirongolddev/cryptosave/internal/pool"
)

var (
	// ErrUnknownStep is returned for a step with no recognised action.
	ErrUnknownStep = errors.New("step has no action")
	// ErrAmbiguousStep is returned for a step with more than one action.
	ErrAmbiguousStep = errors.New("step has more than one action")
	// ErrNegativeAdvance is returned for advance counts below zero.
	ErrNegativeAdvance = errors.New("advance count must not be negative")
)

// Recorder receives an event for every applied transition.
type Recorder interface {
	Record(ctx context.Context, e model.Event) (model.Event, error)
}

// Result is the outcome of a replay.
type Result struct {
	State pool.State
	Steps []StepResult
}

// Rejected counts steps that did not apply.
func (r Result) Rejected() int {
	n := 0
	for _, s := range r.Steps {
		if !s.OK() {
			n++
		}
	}
	return n
}

// Load reads and parses a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the --scenario flag
	if err != nil {
		return Script{}, fmt.Errorf("reading scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a script, rejecting unknown keys.
func Parse(data []byte) (Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Script{}, nil
		}
		return Script{}, fmt.Errorf("parsing scenario: %w", err)
	}

	for i, step := range s.Steps {
		if err := checkStep(step); err != nil {
			return Script{}, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return s, nil
}

func checkStep(s Step) error {
	n := 0
	if s.Add != nil {
		n++
	}
	if s.Advance != nil {
		n++
		if *s.Advance < 0 {
			return ErrNegativeAdvance
		}
	}
	if s.Withdraw != "" {
		n++
	}
	switch n {
	case 0:
		return ErrUnknownStep
	case 1:
		return nil
	default:
		return ErrAmbiguousStep
	}
}

// Run applies the script to a fresh pool. Rejected adds and unknown
// withdraw names are reported in the result, not as errors.
// rec may be nil.
func Run(ctx context.Context, script Script, rec Recorder) (Result, error) {
	st := pool.NewState()
	res := Result{Steps: make([]StepResult, 0, len(script.Steps))}

	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			res.State = st
			return res, err
		}

		var (
			sr     StepResult
			events []model.Event
		)
		switch {
		case step.Add != nil:
			st, sr, events = applyAdd(st, *step.Add)
		case step.Advance != nil:
			st, sr, events = applyAdvance(st, *step.Advance)
		case step.Withdraw != "":
			st, sr, events = applyWithdraw(st, step.Withdraw)
		default:
			res.State = st
			return res, fmt.Errorf("step %d: %w", i+1, ErrUnknownStep)
		}
		sr.Index = i + 1
		sr.Week = st.Pool.Week
		res.Steps = append(res.Steps, sr)

		if rec == nil {
			continue
		}
		for _, e := range events {
			if _, err := rec.Record(ctx, e); err != nil {
				res.State = st
				return res, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
	}

	res.State = st
	return res, nil
}

func applyAdd(st pool.State, add AddStep) (pool.State, StepResult, []model.Event) {
	sr := StepResult{Kind: KindAdd, Member: strings.TrimSpace(add.Name)}

	st = st.ToggleForm().EditName(add.Name).SelectTier(add.Tier)
	if add.Amount != "" {
		st = st.EditAmount(add.Amount)
	}

	id := pool.NewMemberID()
	next, ok := st.Submit(id)
	if !ok {
		sr.Errors = next.Errors
		return next.Cancel(), sr, nil
	}

	m, _ := next.Pool.Find(id)
	return next, sr, []model.Event{pool.JoinedEvent(m)}
}

func applyAdvance(st pool.State, weeks int) (pool.State, StepResult, []model.Event) {
	sr := StepResult{Kind: KindAdvance}
	if weeks > 0 && !st.Pool.CanAdvance() {
		sr.Note = "no members to advance"
		return st, sr, nil
	}

	events := make([]model.Event, 0, weeks)
	for w := 0; w < weeks; w++ {
		st = st.AdvanceWeek()
		events = append(events, pool.WeekAdvancedEvent(st.Pool))
	}
	return st, sr, events
}

func applyWithdraw(st pool.State, name string) (pool.State, StepResult, []model.Event) {
	name = strings.TrimSpace(name)
	sr := StepResult{Kind: KindWithdraw, Member: name}

	for _, m := range st.Pool.Members {
		if m.Name == name {
			week := st.Pool.Week
			return st.Withdraw(m.ID), sr, []model.Event{pool.WithdrewEvent(m, week)}
		}
	}
	sr.Note = fmt.Sprintf("no member named %q", name)
	return st, sr, nil
}
