package cli

import (
	"fmt"

	"github.com/folio-labs/newitem/internal/doctor"
	"github.com/spf13/cobra"
)

var doctorFix bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Create missing content directories")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the site layout and index files",
	Long: `Run diagnostic checks on the site: content directories exist, index files
are lists of name/link records, every record has a content file and every
content file is listed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		report := doctor.Check(cmd.OutOrStdout(), cfg.Layout(), doctorFix)
		if !report.OK() {
			return fmt.Errorf("%d check(s) failed", report.Failures)
		}
		return nil
	},
}
