// Command seedmun converts the IBGE municipality Excel file into a SQL seed
// file. Reads the DTB (Divisão Territorial Brasileira) municipality sheet.
// Usage: go run ./cmd/seedmun RELATORIO_DTB_BRASIL_MUNICIPIO.xlsx
// Output: db/seeds/municipalities.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

const batchSize = 500

type munEntry struct {
	code  string
	city  string
	state string
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: seedmun <ibge-municipality-xlsx>")
	}
	xlsxPath := os.Args[1]
	outPath := "db/seeds/municipalities.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := parseMunicipalitySheet(f)
	if err != nil {
		return fmt.Errorf("parse municipality sheet: %w", err)
	}
	log.Printf("Municipality sheet: %d entries", len(entries))

	// Write SQL file with batched multi-row INSERTs.
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- IBGE municipality seed data generated from the DTB Excel file.",
		fmt.Sprintf("-- %d entries in batches of %d.", len(entries), batchSize),
		"-- Run: make seed-municipalities",
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	for i := 0; i < len(entries); i += batchSize {
		end := i + batchSize
		if end > len(entries) {
			end = len(entries)
		}
		if err := writeBatch(out, entries[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated %d entries (%d batches) in %s",
		len(entries), (len(entries)+batchSize-1)/batchSize, outPath)
	return nil
}

// parseMunicipalitySheet reads the first sheet of the DTB file.
// Columns: A(0)=state abbreviation (UF), B(1)=7-digit IBGE code,
// C(2)=municipality name. Data starts at row index 1 (row 0 is the header).
func parseMunicipalitySheet(f *excelize.File) ([]munEntry, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var entries []munEntry
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 3 {
			continue
		}

		state := strings.ToUpper(strings.TrimSpace(cellVal(row, 0)))
		code := strings.TrimSpace(cellVal(row, 1))
		city := strings.TrimSpace(cellVal(row, 2))

		if len(state) != 2 || city == "" {
			continue
		}
		if len(code) != 7 || !isNumeric(code) {
			continue
		}
		if seen[code] {
			continue
		}
		seen[code] = true

		entries = append(entries, munEntry{code: code, city: city, state: state})
	}
	return entries, nil
}

func writeBatch(out *os.File, batch []munEntry) error {
	if _, err := fmt.Fprintln(out, "INSERT INTO municipalities (code, city, state) VALUES"); err != nil {
		return err
	}
	for i, e := range batch {
		sep := ","
		if i == len(batch)-1 {
			sep = ""
		}
		line := fmt.Sprintf("('%s', '%s', '%s')%s",
			e.code, escapeSQL(e.city), e.state, sep)
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out, "ON CONFLICT (code) DO UPDATE SET city = EXCLUDED.city, state = EXCLUDED.state;")
	return err
}

func cellVal(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
