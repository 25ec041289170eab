package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/auditfuse/pkg/ingest"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check that a CSV export fingerprints as the expected source type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceType, _ := cmd.Flags().GetString("type")

		table, err := ingest.ParseCSVFile(args[0])
		if err != nil {
			return err
		}

		if sourceType == "" {
			detected, ok := ingest.DetectSource(table)
			if !ok {
				return fmt.Errorf("%s does not fingerprint as any known source type", args[0])
			}
			fmt.Printf("%s fingerprints as a %s export (%d rows)\n", args[0], detected, len(table.Rows))
			return nil
		}

		if err := ingest.ValidateSource(table, ingest.SourceType(sourceType)); err != nil {
			return err
		}
		fmt.Printf("%s is a valid %s export (%d rows)\n", args[0], sourceType, len(table.Rows))
		return nil
	},
}

func init() {
	checkCmd.Flags().StringP("type", "t", "", "Expected source type: sql, ad, or backup (detect when omitted)")
	rootCmd.AddCommand(checkCmd)
}
