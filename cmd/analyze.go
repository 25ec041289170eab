package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/user/auditfuse/pkg/classify"
	"github.com/user/auditfuse/pkg/engine"
	"github.com/user/auditfuse/pkg/ingest"
	"github.com/user/auditfuse/pkg/logging"
	"github.com/user/auditfuse/pkg/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Classify the three audit exports and produce a fused report",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.New(DebugMode)

		sqlPath, _ := cmd.Flags().GetString("sql")
		adPath, _ := cmd.Flags().GetString("ad")
		backupPath, _ := cmd.Flags().GetString("backup")
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		snapshotPath, _ := cmd.Flags().GetString("snapshot")
		baselinePath, _ := cmd.Flags().GetString("baseline")

		if sqlPath == "" && adPath == "" && backupPath == "" {
			return fmt.Errorf("at least one of --sql, --ad, --backup is required")
		}

		r, err := runAnalysis(log, sqlPath, adPath, backupPath)
		if err != nil {
			return err
		}

		rendered, err := renderReport(r, format)
		if err != nil {
			return err
		}

		if output != "" {
			if err := os.WriteFile(output, []byte(rendered), 0644); err != nil {
				return fmt.Errorf("failed to write report to %s: %w", output, err)
			}
			log.Info().Str("path", output).Msg("report written")
		} else {
			fmt.Println(rendered)
		}

		if baselinePath != "" {
			baseline, err := engine.LoadSnapshot(baselinePath)
			if err != nil {
				return err
			}
			fmt.Println(engine.DiffSnapshot(baseline, r).Summary())
		}

		if snapshotPath != "" {
			if err := engine.SaveSnapshot(r, snapshotPath); err != nil {
				return err
			}
			log.Info().Str("path", snapshotPath).Msg("snapshot saved")
		}
		return nil
	},
}

// runAnalysis loads whichever exports were supplied and fuses the
// verdicts. A missing file path classifies as no data for that source.
func runAnalysis(log zerolog.Logger, sqlPath, adPath, backupPath string) (*engine.Report, error) {
	sqlRecords, err := loadSource(log, sqlPath, ingest.SourceSQL)
	if err != nil {
		return nil, err
	}
	adRecords, err := loadSource(log, adPath, ingest.SourceAD)
	if err != nil {
		return nil, err
	}
	backupRecords, err := loadSource(log, backupPath, ingest.SourceBackup)
	if err != nil {
		return nil, err
	}

	r := engine.Fuse(
		classify.ClassifySQL(sqlRecords),
		classify.ClassifyAD(adRecords),
		classify.ClassifyBackup(backupRecords, time.Now().UTC()),
	)
	log.Debug().Stringer("overall", r.Overall).Int("findings", r.FindingCount()).Msg("fusion complete")
	return r, nil
}

func loadSource(log zerolog.Logger, path string, st ingest.SourceType) ([]ingest.Record, error) {
	if path == "" {
		return nil, nil
	}
	table, err := ingest.ParseCSVFile(path)
	if err != nil {
		return nil, err
	}
	// Advisory guard against a file uploaded into the wrong slot; the
	// classifiers themselves are total either way.
	if err := ingest.ValidateSource(table, st); err != nil {
		log.Warn().Str("path", path).Err(err).Msg("source fingerprint mismatch")
	}
	log.Debug().Str("path", path).Str("type", string(st)).Int("rows", len(table.Rows)).Msg("source loaded")
	return table.Rows, nil
}

func renderReport(r *engine.Report, format string) (string, error) {
	switch format {
	case "text":
		return report.Text(r), nil
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode report: %w", err)
		}
		return string(data), nil
	case "pretty", "":
		return report.Pretty(r), nil
	default:
		return "", fmt.Errorf("unknown format: %s (want text, json, or pretty)", format)
	}
}

func init() {
	analyzeCmd.Flags().String("sql", "", "Path to the SQL server health check CSV")
	analyzeCmd.Flags().String("ad", "", "Path to the AD group membership CSV")
	analyzeCmd.Flags().String("backup", "", "Path to the backup job log CSV")
	analyzeCmd.Flags().StringP("format", "f", "pretty", "Output format: text, json, or pretty")
	analyzeCmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	analyzeCmd.Flags().String("snapshot", "", "Save the report as a snapshot for future comparison")
	analyzeCmd.Flags().String("baseline", "", "Compare against a previously saved snapshot")
	rootCmd.AddCommand(analyzeCmd)
}
