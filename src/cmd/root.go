// backend/src/cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/taxsarthi/backend/src/config"
	"github.com/username/taxsarthi/backend/src/logger"
)

var rootCmd = &cobra.Command{
	Use:   "taxsarthi",
	Short: "Tax rule evaluation engine for payroll declarations",
	Long: `taxsarthi evaluates payroll tax declarations against the statutory
deduction and exemption rules for one tax year.

It safely evaluates the "=..." calculator expressions users type into
amount cells, checks declared figures against statutory ceilings
(Section 80C/80D, HRA, LTA and the rest), and normalizes the nested
backend record into the flat form shape and back.

Example Usage:
  taxsarthi evaluate "=1200*12 + 5000"
  taxsarthi validate declaration.json
  taxsarthi limits --year 2025-26`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
		logger.InitLogger(config.Cfg.LogLevel)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
