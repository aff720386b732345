package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/davidrhall/conquest-go/internal/adapters/metrics"
	"github.com/davidrhall/conquest-go/internal/adapters/persistence"
	apphistory "github.com/davidrhall/conquest-go/internal/application/history"
	"github.com/davidrhall/conquest-go/internal/domain/history"
	"github.com/davidrhall/conquest-go/internal/infrastructure/database"
)

// NewHistoryCommand creates the history command with subcommands
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and load historical turns",
		Long: `Inspect which past turns the local archive can provide, and load
individual turn snapshots.

Examples:
  conquest history status --player 3
  conquest history load --player 3 --turn 41`,
	}

	cmd.AddCommand(newHistoryStatusCommand())
	cmd.AddCommand(newHistoryLoadCommand())

	return cmd
}

// newHistoryService wires the load service over the turn archive
func newHistoryService(configPath string) (*apphistory.LoadService, *history.List, int, func(), error) {
	cfg, db, err := openDatabase(configPath)
	if err != nil {
		return nil, nil, 0, nil, err
	}

	collector := metrics.NewHistoryMetricsCollector()
	if err := collector.Register(); err != nil {
		database.Close(db)
		return nil, nil, 0, nil, err
	}
	turns := history.NewList()
	service := apphistory.NewLoadService(turns, persistence.NewGormTurnArchiveRepository(db), 0, collector)

	cleanup := func() { database.Close(db) }
	return service, turns, cfg.Game.CurrentTurn, cleanup, nil
}

// newHistoryStatusCommand creates the history status subcommand
func newHistoryStatusCommand() *cobra.Command {
	var (
		configPath string
		player     int
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show availability of all past turns",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, turns, currentTurn, cleanup, err := newHistoryService(configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			count := currentTurn - 1
			if count < 1 {
				fmt.Fprintln(cmd.OutOrStdout(), "No past turns yet.")
				return nil
			}
			if err := service.Classify(cmd.Context(), player, 1, count); err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "Turn\tStatus\tTimestamp")
			for turn := 1; turn < currentTurn; turn++ {
				fmt.Fprintf(w, "%d\t%s\t%s\n", turn, turns.TurnStatus(turn), turns.TurnTimestamp(turn))
			}
			w.Flush()

			fmt.Fprintf(cmd.OutOrStdout(), "\nNewest unexplored turn: %d\n",
				turns.FindNewestUnknownTurnNumber(currentTurn))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file path")
	cmd.Flags().IntVar(&player, "player", 1, "Player number")
	return cmd
}

// newHistoryLoadCommand creates the history load subcommand
func newHistoryLoadCommand() *cobra.Command {
	var (
		configPath string
		player     int
		turn       int
	)

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load one historical turn snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if turn <= 0 {
				return fmt.Errorf("--turn must be positive")
			}
			service, _, _, cleanup, err := newHistoryService(configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			entry, err := service.Load(cmd.Context(), player, turn)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Turn %d: %s\n", entry.TurnNumber(), entry.Status())
			if snapshot := entry.Snapshot(); snapshot != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Snapshot %s, host time %s\n", snapshot.ID(), snapshot.Timestamp())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file path")
	cmd.Flags().IntVar(&player, "player", 1, "Player number")
	cmd.Flags().IntVar(&turn, "turn", 0, "Turn number to load")
	return cmd
}
