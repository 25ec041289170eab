package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/auditfuse/pkg/adk"
	"github.com/user/auditfuse/pkg/config"
	"github.com/user/auditfuse/pkg/logging"
	"github.com/user/auditfuse/pkg/report"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Analyze the exports and ask the configured AI model for an executive summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.New(DebugMode)

		sqlPath, _ := cmd.Flags().GetString("sql")
		adPath, _ := cmd.Flags().GetString("ad")
		backupPath, _ := cmd.Flags().GetString("backup")

		if sqlPath == "" && adPath == "" && backupPath == "" {
			return fmt.Errorf("at least one of --sql, --ad, --backup is required")
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		providerName := cfg.SelectedProvider
		if providerName == "" {
			providerName = "gemini" // Default
		}

		apiKey := cfg.GetAPIKey(providerName)
		if apiKey == "" && providerName == "gemini" {
			apiKey = os.Getenv("GOOGLE_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("no API key for %s; run 'auditfuse config setup' first", providerName)
		}

		r, err := runAnalysis(log, sqlPath, adPath, backupPath)
		if err != nil {
			return err
		}

		reportJSON, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}

		ctx := context.Background()
		log.Info().Str("provider", providerName).Str("model", cfg.SelectedModel).Msg("requesting summary")
		provider, err := adk.NewProvider(ctx, providerName, apiKey, cfg.SelectedModel)
		if err != nil {
			return fmt.Errorf("failed to create AI provider: %w", err)
		}
		if closer, ok := provider.(interface{ Close() }); ok {
			defer closer.Close()
		}

		summary, err := adk.Summarize(ctx, provider, string(reportJSON))
		if err != nil {
			return fmt.Errorf("summary request failed: %w", err)
		}

		fmt.Println(report.Pretty(r))
		fmt.Println("EXECUTIVE SUMMARY")
		fmt.Println("--------------------------------------------------")
		fmt.Println(summary)
		return nil
	},
}

func init() {
	explainCmd.Flags().String("sql", "", "Path to the SQL server health check CSV")
	explainCmd.Flags().String("ad", "", "Path to the AD group membership CSV")
	explainCmd.Flags().String("backup", "", "Path to the backup job log CSV")
	rootCmd.AddCommand(explainCmd)
}
