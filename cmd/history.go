package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"kmi-checker/core/config"
	"kmi-checker/core/database"
	"kmi-checker/core/history"
	"kmi-checker/core/logger"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded KMI check runs",
	Long:  `Lists recent check runs from the history database, or the findings of one run.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		// Unlike check, history is the whole point here
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("history database required: %w", err)
		}
		repo := history.NewRepository(db)
		if err := repo.Migrate(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(args) == 1 {
			run, err := repo.Get(cmd.Context(), args[0])
			if errors.Is(err, history.ErrRunNotFound) {
				return &exitError{code: ExitNotFound, err: err}
			}
			if err != nil {
				return err
			}
			renderRun(out, run)
			return nil
		}

		runs, err := repo.List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		renderRuns(out, runs)
		return nil
	},
}

func renderRuns(out io.Writer, runs []history.CheckRun) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Run", "Created", "Passed", "Whitelist", "Missing", "Mismatches", "Symvers"})
	for _, r := range runs {
		table.Append([]string{
			r.ID,
			r.CreatedAt.Format(time.RFC3339),
			strconv.FormatBool(r.Passed),
			strconv.Itoa(r.WhitelistSymbols),
			strconv.Itoa(r.Missing),
			strconv.Itoa(r.Mismatches),
			r.SymversSource,
		})
	}
	table.Render()
}

func renderRun(out io.Writer, run *history.CheckRun) {
	fmt.Fprintf(out, "Run %s at %s: passed=%t\n", run.ID, run.CreatedAt.Format(time.RFC3339), run.Passed)
	fmt.Fprintf(out, "  whitelist: %s\n  symvers:   %s\n", run.WhitelistSource, run.SymversSource)
	if len(run.Findings) == 0 {
		return
	}
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Kind", "Symbol", "Whitelist CRC", "Module CRC"})
	for _, f := range run.Findings {
		table.Append([]string{f.Kind, f.Symbol, f.WhitelistCRC, f.ModuleCRC})
	}
	table.Render()
}

func init() {
	historyCmd.Flags().Int("limit", history.DefaultListLimit, "Maximum number of runs to list")
	RootCmd.AddCommand(historyCmd)
}
