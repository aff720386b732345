package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidrhall/conquest-go/internal/adapters/metrics"
	"github.com/davidrhall/conquest-go/internal/adapters/persistence"
	"github.com/davidrhall/conquest-go/internal/application/mediator"
	"github.com/davidrhall/conquest-go/internal/application/scoreview"
	"github.com/davidrhall/conquest-go/internal/application/scoreview/queries"
	"github.com/davidrhall/conquest-go/internal/domain/dataview"
	"github.com/davidrhall/conquest-go/internal/domain/game"
	"github.com/davidrhall/conquest-go/internal/domain/score"
	"github.com/davidrhall/conquest-go/internal/domain/shared"
	"github.com/davidrhall/conquest-go/internal/infrastructure/database"
	"github.com/davidrhall/conquest-go/pkg/utils"
)

// NewScoreCommand creates the score command with subcommands
func NewScoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Render score charts and tables",
		Long: `Render the tracked per-turn scores.

The chart view shows one score variant over time, one row per player or
team. The table view shows all variants for a single turn, or the change
between two turns.

Examples:
  conquest score variants
  conquest score chart --variant 4 --cumulative
  conquest score table --turn -1 --by-team
  conquest score table --diff 5,4`,
	}

	cmd.AddCommand(newScoreVariantsCommand())
	cmd.AddCommand(newScoreChartCommand())
	cmd.AddCommand(newScoreTableCommand())
	cmd.AddCommand(newScoreIngestCommand())

	return cmd
}

// newScoreIngestCommand creates the score ingest subcommand
func newScoreIngestCommand() *cobra.Command {
	var (
		configPath string
		id         int16
		name       string
		turn       int
		turnLimit  int16
		winLimit   int32
		timestamp  string
		values     []string
	)

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Store one score report",
		Long: `Store one score report in the local database.

Reports are append-only; the in-memory score list is rebuilt by replaying
them, so feeding the same report twice is harmless. Player values are
given as player=value pairs.

Example:
  conquest score ingest --id 51 --name "Tons destroyed" --turn 7 \
    --timestamp "01-07-200312:00:00" --value 1=100 --value 4=250`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ts := shared.ParseTimestamp([]byte(timestamp))
			if !ts.IsValid() {
				return fmt.Errorf("--timestamp must be an 18-character host stamp (MM-DD-YYYYhh:mm:ss)")
			}

			msg := score.Message{
				ID:         score.ScoreID(id),
				Name:       name,
				TurnNumber: turn,
				Values:     make(map[int]int32),
			}
			if cmd.Flags().Changed("turnlimit") {
				msg.TurnLimit = shared.NewValue(int32(turnLimit))
			}
			if cmd.Flags().Changed("winlimit") {
				msg.WinLimit = shared.NewValue(winLimit)
			}
			for _, pair := range values {
				var player int
				var value int32
				if _, err := fmt.Sscanf(pair, "%d=%d", &player, &value); err != nil {
					return fmt.Errorf("invalid --value %q, want player=value", pair)
				}
				msg.Values[player] = value
			}

			_, db, err := openDatabase(configPath)
			if err != nil {
				return err
			}
			defer database.Close(db)

			reports := persistence.NewGormScoreReportRepository(db)
			if err := reports.Add(cmd.Context(), msg, ts); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Report stored.")
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file path")
	cmd.Flags().Int16Var(&id, "id", 0, "Score kind id (0 = resolve by name)")
	cmd.Flags().StringVar(&name, "name", "", "Score display name")
	cmd.Flags().IntVar(&turn, "turn", 0, "Turn number the values belong to")
	cmd.Flags().Int16Var(&turnLimit, "turnlimit", 0, "Win condition: turns the score must be held")
	cmd.Flags().Int32Var(&winLimit, "winlimit", -1, "Win condition: score value needed")
	cmd.Flags().StringVar(&timestamp, "timestamp", "", "Host timestamp (MM-DD-YYYYhh:mm:ss)")
	cmd.Flags().StringArrayVar(&values, "value", nil, "Player value as player=value (repeatable)")
	return cmd
}

// newScoreMediator registers the score query handlers on a fresh mediator
func newScoreMediator(session *scoreview.Session) (mediator.Mediator, error) {
	m := mediator.NewMediator()
	if err := mediator.RegisterHandler[scoreview.BuildChartQuery](m, queries.NewBuildChartHandler(session)); err != nil {
		return nil, err
	}
	if err := mediator.RegisterHandler[scoreview.BuildTableQuery](m, queries.NewBuildTableHandler(session)); err != nil {
		return nil, err
	}
	return m, nil
}

// newSession builds a scoreview session from stored score reports
func newSession(cmd *cobra.Command, configPath string) (*scoreview.Session, func(), error) {
	cfg, db, err := openDatabase(configPath)
	if err != nil {
		return nil, nil, err
	}

	scores, err := loadScores(cmd.Context(), db)
	if err != nil {
		database.Close(db)
		return nil, nil, err
	}

	players, teams, host, hostConfig := buildGameEnvironment(cfg, scores)
	session := scoreview.NewSession(scores, players, teams, host, hostConfig, game.NewIdentityTranslator())

	cleanup := func() {
		session.Close()
		database.Close(db)
	}
	return session, cleanup, nil
}

// newScoreVariantsCommand creates the score variants subcommand
func newScoreVariantsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the score variants available for charting",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, cleanup, err := newSession(cmd, configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			variants, err := session.ChartVariants(cmd.Context())
			if err != nil {
				return err
			}
			for i, v := range variants {
				line := fmt.Sprintf("%2d  %s", i, v.Name)
				if v.WinLimit >= 0 {
					line += fmt.Sprintf("  (win at %d)", v.WinLimit)
				}
				if v.Decay != 0 {
					line += fmt.Sprintf("  (decays %d%%/turn)", v.Decay)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file path")
	return cmd
}

// newScoreChartCommand creates the score chart subcommand
func newScoreChartCommand() *cobra.Command {
	var (
		configPath string
		variant    int
		byTeam     bool
		cumulative bool
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render one score variant across all turns",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, cleanup, err := newSession(cmd, configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			collector := metrics.NewScoreMetricsCollector()
			if err := collector.Register(); err != nil {
				return err
			}

			variants, err := session.ChartVariants(cmd.Context())
			if err != nil {
				return err
			}
			if len(variants) == 0 {
				return fmt.Errorf("no score variants available")
			}

			query := scoreview.BuildChartQuery{
				VariantIndex: utils.Clamp(variant, 0, len(variants)-1),
				ByTeam:       byTeam,
				Cumulative:   cumulative,
			}
			m, err := newScoreMediator(session)
			if err != nil {
				return err
			}
			response, err := m.Send(cmd.Context(), query)
			if err != nil {
				return err
			}
			collector.RecordChartBuild(byTeam, cumulative)

			table := response.(*dataview.Table)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", variants[query.VariantIndex].Name)
			renderTable(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file path")
	cmd.Flags().IntVar(&variant, "variant", 0, "Variant index (see 'score variants')")
	cmd.Flags().BoolVar(&byTeam, "by-team", false, "Group rows by team")
	cmd.Flags().BoolVar(&cumulative, "cumulative", false, "Stack columns into running totals")
	return cmd
}

// newScoreTableCommand creates the score table subcommand
func newScoreTableCommand() *cobra.Command {
	var (
		configPath string
		turn       int
		byTeam     bool
		diff       []int
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Render all score variants for one turn",
		Long: `Render all score variants for one turn, one row per player or team.

The turn is addressed by its index in the stored sequence; -1 means the
newest turn. With --diff A,B the table shows turn A's values minus turn
B's.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, cleanup, err := newSession(cmd, configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			collector := metrics.NewScoreMetricsCollector()
			if err := collector.Register(); err != nil {
				return err
			}

			var numTurns int
			err = session.Update(cmd.Context(), func(l *score.TurnScoreList) {
				numTurns = l.NumTurns()
			})
			if err != nil {
				return err
			}
			if numTurns == 0 {
				return fmt.Errorf("no score data stored yet")
			}
			if turn < 0 {
				turn = numTurns - 1
			}

			query := scoreview.BuildTableQuery{TurnIndex: utils.Clamp(turn, 0, numTurns-1), ByTeam: byTeam}
			if len(diff) == 2 {
				query.Difference = &scoreview.TurnPair{First: diff[0], Second: diff[1]}
			} else if len(diff) != 0 {
				return fmt.Errorf("--diff needs exactly two turn indexes")
			}

			m, err := newScoreMediator(session)
			if err != nil {
				return err
			}
			response, err := m.Send(cmd.Context(), query)
			if err != nil {
				return err
			}
			collector.RecordTableBuild(byTeam, query.Difference != nil)

			renderTable(cmd.OutOrStdout(), response.(*dataview.Table))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file path")
	cmd.Flags().IntVar(&turn, "turn", -1, "Turn index (-1 = newest)")
	cmd.Flags().BoolVar(&byTeam, "by-team", false, "Group rows by team")
	cmd.Flags().IntSliceVar(&diff, "diff", nil, "Difference mode: two turn indexes A,B")
	return cmd
}
