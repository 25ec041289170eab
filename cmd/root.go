package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "auditfuse",
	Short: "Fused risk assessment over heterogeneous audit CSV exports",
	Long: `AuditFuse ingests CSV exports from SQL server health checks, Active
Directory group membership dumps, and backup job logs, classifies each with
its own heuristic rule set, and fuses the verdicts into a single ranked risk
assessment with a prioritized remediation plan.`,
}

var DebugMode bool

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
}
