package scenario

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/cryptosave/internal/model"
	"github.com/theirongolddev/cryptosave/internal/pool"
	"github.com/theirongolddev/cryptosave/internal/store"
)

const adaScript = `
name: ada
steps:
  - add: {name: Ada, tier: "1"}
  - add: {name: Bo, tier: "2", amount: "20000"}
  - advance: 2
  - withdraw: Bo
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(adaScript))
	require.NoError(t, err)

	assert.Equal(t, "ada", s.Name)
	require.Len(t, s.Steps, 4)
	assert.Equal(t, "Ada", s.Steps[0].Add.Name)
	assert.Empty(t, s.Steps[0].Add.Amount)
	assert.Equal(t, "20000", s.Steps[1].Add.Amount)
	assert.Equal(t, 2, *s.Steps[2].Advance)
	assert.Equal(t, "Bo", s.Steps[3].Withdraw)
}

func TestParse_Empty(t *testing.T) {
	s, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, s.Steps)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no action", "steps:\n  - {}\n", ErrUnknownStep},
		{"two actions", "steps:\n  - {advance: 1, withdraw: Ada}\n", ErrAmbiguousStep},
		{"negative advance", "steps:\n  - advance: -1\n", ErrNegativeAdvance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("steps:\n  - deposit: 5\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ada.yaml")
	require.NoError(t, os.WriteFile(path, []byte(adaScript), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Steps, 4)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRun_AdaScenario(t *testing.T) {
	s, err := Parse([]byte(adaScript))
	require.NoError(t, err)

	res, err := Run(context.Background(), s, nil)
	require.NoError(t, err)
	assert.Zero(t, res.Rejected())

	p := res.State.Pool
	assert.Equal(t, 3, p.Week)
	require.Equal(t, 1, p.Len())
	assert.Equal(t, "Ada", p.Members[0].Name)
	assert.Equal(t, int64(11_000), p.Members[0].CurrentAmount)

	tot := p.Totals()
	assert.Equal(t, tot.Savings-tot.InitialSavings, tot.Interest)
}

func TestRun_RejectedStepsAreReported(t *testing.T) {
	doc := `
steps:
  - advance: 1
  - add: {name: "", tier: ""}
  - add: {name: Ada, tier: "", amount: "5000"}
  - withdraw: Nobody
`
	s, err := Parse([]byte(doc))
	require.NoError(t, err)

	res, err := Run(context.Background(), s, nil)
	require.NoError(t, err)
	require.Len(t, res.Steps, 4)
	assert.Equal(t, 4, res.Rejected())

	assert.Equal(t, "no members to advance", res.Steps[0].Note)
	assert.Equal(t, pool.MsgNameRequired, res.Steps[1].Errors.Get(model.FieldName))
	assert.Equal(t, pool.MsgAmountRequired, res.Steps[1].Errors.Get(model.FieldAmount))
	assert.Equal(t, "Tier requires exactly ₦0", res.Steps[2].Errors.Get(model.FieldAmount))
	assert.Contains(t, res.Steps[3].Note, "Nobody")

	assert.Equal(t, 1, res.State.Pool.Week)
	assert.Zero(t, res.State.Pool.Len())
	assert.False(t, res.State.FormOpen)
}

func TestRun_CapAtTwelve(t *testing.T) {
	var s Script
	for i := 0; i < 13; i++ {
		s.Steps = append(s.Steps, Step{Add: &AddStep{Name: "m", Tier: "1"}})
	}

	res, err := Run(context.Background(), s, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, res.State.Pool.Len())
	require.Len(t, res.Steps, 13)
	assert.Equal(t, pool.MsgPoolFull, res.Steps[12].Errors.Get(model.FieldGeneral))
}

func TestRun_RecordsJournal(t *testing.T) {
	ctx := context.Background()
	j, err := store.Open()
	require.NoError(t, err)
	defer j.Close()

	s, err := Parse([]byte(adaScript))
	require.NoError(t, err)

	_, err = Run(ctx, s, j)
	require.NoError(t, err)

	// 2 joins + 2 advances + 1 withdraw
	n, err := j.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	events, err := j.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.EventWithdrew, events[0].Kind)
	assert.Equal(t, "Bo", events[0].MemberName)
	assert.Equal(t, int64(24_000), events[0].Amount)
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := Parse([]byte(adaScript))
	require.NoError(t, err)

	_, err = Run(ctx, s, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
