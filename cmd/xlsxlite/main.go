// Command xlsxlite converts between .xlsx workbooks and plain data
// formats using the xlsxlite codec.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlsxlite",
		Short: "Convert between .xlsx workbooks and plain tables",
		Long: `xlsxlite reads and writes a minimal subset of the .xlsx format.

Commands:
  dump  Decode a workbook and print its sheets as JSON or YAML.
  pack  Build a workbook from one table per CSV file.`,
	}

	rootCmd.AddCommand(newDumpCommand())
	rootCmd.AddCommand(newPackCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
