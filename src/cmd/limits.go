// backend/src/cmd/limits.go
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/username/taxsarthi/backend/src/config"
	"github.com/username/taxsarthi/backend/src/limits"
)

var limitsYear string

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Print the statutory limit table for a tax year",
	RunE: func(cmd *cobra.Command, args []string) error {
		year := limitsYear
		if year == "" {
			year = config.Cfg.TaxYear
		}
		table, err := limits.Load(year)
		if err != nil {
			return err
		}
		fmt.Printf("Statutory limits for %s\n", table.Year())
		for _, key := range table.Keys() {
			fmt.Printf("  %-34s %s\n", key, strconv.FormatFloat(table.Value(key), 'f', -1, 64))
		}
		return nil
	},
}

func init() {
	limitsCmd.Flags().StringVar(&limitsYear, "year", "", "Tax year to print (default is the configured TAX_YEAR)")
	rootCmd.AddCommand(limitsCmd)
}
