package cmd

import (
	"fmt"

	"kmi-checker/core/config"
	"kmi-checker/core/history"
	"kmi-checker/core/logger"
	"kmi-checker/core/storage"
	"kmi-checker/feature/kmi"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [whitelist symvers]",
	Short: "Compare a KMI whitelist with a Module.symvers",
	Long: `Checks that every symbol of the whitelist is exported by the build with the
same CRC. Without arguments the configured kmi.whitelist_path and kmi.symvers_path
are used. Either argument may be a local path or an s3://bucket/key reference.

Exit codes: 0 passed, 1 CRC mismatch, 2 usage error, 3 malformed input,
4 input not found, 5 other failure. Missing symbols are reported as a warning
and do not fail the check.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return usageError("check expects no arguments or exactly two (whitelist, symvers), got %d", len(args))
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	archive, _ := cmd.Flags().GetBool("archive")
	strict, _ := cmd.Flags().GetBool("strict")
	noHistory, _ := cmd.Flags().GetBool("no-history")
	noColor, _ := cmd.Flags().GetBool("no-color")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("categories") {
		cfg.Kmi.Categories, _ = cmd.Flags().GetStringSlice("categories")
	}
	if strict {
		cfg.Kmi.StrictDuplicates = true
	}
	if noHistory {
		cfg.Kmi.RecordHistory = false
	}
	if noColor {
		color.NoColor = true
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	var sources kmi.Sources
	if len(args) == 2 {
		sources = kmi.Sources{Whitelist: args[0], Symvers: args[1]}
	}
	sources = sources.WithDefaults(cfg.Kmi)

	// Storage is only needed for s3:// sources and archiving
	var client storage.Client
	if archive || kmi.IsStorageRef(sources.Whitelist) || kmi.IsStorageRef(sources.Symvers) {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	var repo *history.Repository
	if cfg.Kmi.RecordHistory {
		repo = openHistory(cfg.Database, logg)
	}

	svc := kmi.NewService(client, cfg.Storage.Bucket, logg, repo, cfg.Kmi)

	logg.Debug("Checking KMI", zap.String("whitelist", sources.Whitelist), zap.String("symvers", sources.Symvers))
	report, err := svc.Check(cmd.Context(), sources)
	if err != nil {
		return fmt.Errorf("KMI check failed: %w", err)
	}

	if archive {
		ref, err := svc.Archive(cmd.Context(), report)
		if err != nil {
			return err
		}
		logg.Info("Report archived", zap.String("ref", ref))
	}

	if len(report.Missing) > 0 {
		logg.Warn("Whitelisted symbols are not exported", zap.Int("count", len(report.Missing)), zap.Strings("symbols", report.Missing))
	}
	logg.Info("KMI check completed",
		zap.String("run_id", report.ID),
		zap.Bool("passed", report.Passed),
		zap.Int("whitelist", report.Summary.WhitelistSymbols),
		zap.Int("consistent", report.Summary.Consistent),
		zap.Int("missing", report.Summary.Missing),
		zap.Int("mismatches", report.Summary.Mismatches),
		zap.String("duration", report.ExecutionTime))

	out := cmd.OutOrStdout()
	if jsonOutput {
		if err := kmi.RenderJSON(out, report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	} else {
		kmi.RenderText(out, report)
	}

	if !report.Passed {
		// The report already names every mismatch
		return &exitError{code: ExitMismatch, silent: true}
	}
	return nil
}

func init() {
	checkCmd.Flags().Bool("json", false, "Output the report as JSON")
	checkCmd.Flags().Bool("archive", false, "Upload the JSON report to the configured bucket")
	checkCmd.Flags().StringSlice("categories", nil, "Whitelist sections to scan (default from kmi.categories)")
	checkCmd.Flags().Bool("strict", false, "Reject symbols listed twice in one input")
	checkCmd.Flags().Bool("no-history", false, "Do not record the run in the history database")
	checkCmd.Flags().Bool("no-color", false, "Disable colored output")
	RootCmd.AddCommand(checkCmd)
}
