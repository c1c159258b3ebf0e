package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/theirongolddev/cryptosave/internal/cli"
	"github.com/theirongolddev/cryptosave/internal/config"
	"github.com/theirongolddev/cryptosave/internal/logging"
	"github.com/theirongolddev/cryptosave/internal/model"
	"github.com/theirongolddev/cryptosave/internal/scenario"
	"github.com/theirongolddev/cryptosave/internal/store"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagScenario string
	flagMembers  []string
	flagWeeks    int
	flagJournal  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a pool simulation without the dashboard",
	Long: "Replay a scenario file and/or --member additions, advance --weeks,\n" +
		"and print the resulting pool.",
	Example: "  cryptosave simulate --member Ada:1 --member Bo:3 --weeks 4\n" +
		"  cryptosave simulate --scenario pool.yaml --journal",
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&flagScenario, "scenario", "s", "", "YAML scenario file to replay")
	simulateCmd.Flags().StringArrayVarP(&flagMembers, "member", "m", nil, "Add a member as Name:tier (repeatable)")
	simulateCmd.Flags().IntVarP(&flagWeeks, "weeks", "w", 0, "Weeks to simulate after all additions")
	simulateCmd.Flags().BoolVar(&flagJournal, "journal", false, "Print the event journal")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	logging.Setup(cfg, os.Stderr)

	script, err := buildScript(flagScenario, flagMembers, flagWeeks)
	if err != nil {
		return err
	}
	if len(script.Steps) == 0 {
		fmt.Println("\n  Nothing to simulate.")
		fmt.Println("  Pass --member Name:tier or --scenario file.yaml")
		return nil
	}

	journal, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer journal.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := scenario.Run(ctx, script, journal)
	if err != nil {
		return fmt.Errorf("running scenario: %w", err)
	}
	log.WithFields(log.Fields{
		"steps":    len(res.Steps),
		"rejected": res.Rejected(),
		"week":     res.State.Pool.Week,
	}).Debug("scenario finished")

	title := "POOL SIMULATION"
	if script.Name != "" {
		title += "  " + strings.ToUpper(script.Name)
	}
	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	if res.Rejected() > 0 {
		fmt.Print(renderRejected(res.Steps))
		fmt.Println()
	}

	p := res.State.Pool
	fmt.Print(cli.RenderSummary(p.Totals(), p.Week))
	fmt.Printf("  Capacity  %s\n", cli.RenderProgressBar(p.Len(), config.MaxMembers, 24))
	fmt.Println()
	fmt.Print(cli.RenderMembers(p.Members))

	events, err := allEvents(ctx, journal)
	if err != nil {
		return err
	}
	if trend := savingsTrend(events); len(trend) > 1 {
		fmt.Println()
		fmt.Printf("  Savings  %s  %s → %s\n",
			cli.RenderSparkline(trend),
			cli.FormatNaira(trend[0]),
			cli.FormatNaira(trend[len(trend)-1]))
	}

	if flagJournal {
		fmt.Println()
		fmt.Print(cli.RenderEvents(events))
	}

	return nil
}

// buildScript combines the scenario file with --member and --weeks flags,
// which run after the file's steps.
func buildScript(path string, members []string, weeks int) (scenario.Script, error) {
	var script scenario.Script
	if path != "" {
		s, err := scenario.Load(path)
		if err != nil {
			return scenario.Script{}, err
		}
		script = s
	}

	for _, arg := range members {
		name, tier, ok := strings.Cut(arg, ":")
		if !ok {
			return scenario.Script{}, fmt.Errorf("invalid --member %q: want Name:tier", arg)
		}
		script.Steps = append(script.Steps, scenario.Step{
			Add: &scenario.AddStep{Name: name, Tier: tier},
		})
	}

	if weeks < 0 {
		return scenario.Script{}, fmt.Errorf("--weeks: %w", scenario.ErrNegativeAdvance)
	}
	if weeks > 0 {
		w := weeks
		script.Steps = append(script.Steps, scenario.Step{Advance: &w})
	}
	return script, nil
}

func renderRejected(steps []scenario.StepResult) string {
	var rows [][]string
	for _, s := range steps {
		if s.OK() {
			continue
		}
		reason := s.Note
		if !s.Errors.Valid() {
			fields := make([]string, 0, len(s.Errors))
			for f := range s.Errors {
				fields = append(fields, f)
			}
			sort.Strings(fields)
			msgs := make([]string, 0, len(fields))
			for _, f := range fields {
				msgs = append(msgs, s.Errors[f])
			}
			reason = strings.Join(msgs, "; ")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.Index),
			s.Kind,
			s.Member,
			reason,
		})
	}

	return cli.RenderWarning(fmt.Sprintf("%d step(s) not applied", len(rows))) + "\n" +
		cli.RenderTable(cli.Table{
			Headers: []string{"Step", "Action", "Member", "Reason"},
			Rows:    rows,
		})
}

func allEvents(ctx context.Context, j *store.Journal) ([]model.Event, error) {
	n, err := j.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting journal: %w", err)
	}
	events, err := j.Recent(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("reading journal: %w", err)
	}
	return events, nil
}

// savingsTrend extracts total savings after each simulated week, oldest
// first, starting with the pool's balance before the first advance.
func savingsTrend(newestFirst []model.Event) []int64 {
	var trend []int64
	var opening int64
	for i := len(newestFirst) - 1; i >= 0; i-- {
		e := newestFirst[i]
		switch e.Kind {
		case model.EventJoined:
			opening += e.Amount
		case model.EventWithdrew:
			opening -= e.Amount
		case model.EventWeekAdvanced:
			if len(trend) == 0 {
				trend = append(trend, opening)
			}
			trend = append(trend, e.Amount)
		}
	}
	return trend
}
