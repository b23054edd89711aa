package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Neogtt/xlsxlite"
)

var (
	dumpOutput string
	dumpFormat string
	dumpPretty bool
)

func newDumpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file.xlsx>",
		Short: "Decode a workbook and print its sheets as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
	cmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&dumpFormat, "format", "json", "Output format: json or yaml")
	cmd.Flags().BoolVar(&dumpPretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runDump(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	tables, err := xlsxlite.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}

	var out []byte
	switch dumpFormat {
	case "json":
		grids := make(map[string][][]xlsxlite.Value, len(tables))
		for name, table := range tables {
			grids[name] = table.Rows
		}
		if dumpPretty {
			out, err = json.MarshalIndent(grids, "", "  ")
		} else {
			out, err = json.Marshal(grids)
		}
	case "yaml":
		grids := make(map[string][][]any, len(tables))
		for name, table := range tables {
			grid := make([][]any, len(table.Rows))
			for i, row := range table.Rows {
				cells := make([]any, len(row))
				for j, v := range row {
					cells[j] = v.Interface()
				}
				grid[i] = cells
			}
			grids[name] = grid
		}
		out, err = yaml.Marshal(grids)
	default:
		return fmt.Errorf("invalid format: %s (must be json or yaml)", dumpFormat)
	}
	if err != nil {
		return err
	}

	if dumpOutput != "" {
		return os.WriteFile(dumpOutput, out, 0644)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
