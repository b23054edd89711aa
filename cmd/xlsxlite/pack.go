package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Neogtt/xlsxlite"
)

var packOutput string

func newPackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <file.csv> [file.csv...]",
		Short: "Build a workbook from one table per CSV file",
		Long: `pack encodes each CSV file as one worksheet: the file's base name
becomes the table name, the first record becomes the header row, and the
remaining fields are sniffed into integers, floats, booleans or text.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runPack,
	}
	cmd.Flags().StringVarP(&packOutput, "output", "o", "workbook.xlsx", "Output .xlsx path")
	return cmd
}

func runPack(cmd *cobra.Command, args []string) error {
	tables := make([]xlsxlite.Table, 0, len(args))
	for _, path := range args {
		table, err := readCSVTable(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tables = append(tables, table)
	}

	data, err := xlsxlite.Encode(tables)
	if err != nil {
		return err
	}
	return os.WriteFile(packOutput, data, 0644)
}

func readCSVTable(path string) (xlsxlite.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return xlsxlite.Table{}, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return xlsxlite.Table{}, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	table := xlsxlite.Table{Name: name}
	if len(records) == 0 {
		return table, nil
	}

	table.Columns = records[0]
	for _, record := range records[1:] {
		row := make([]xlsxlite.Value, len(record))
		for i, field := range record {
			row[i] = xlsxlite.Parse(field)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
