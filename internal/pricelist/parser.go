package pricelist

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hospitalsanjose/billing/internal/catalog"
	enc "github.com/hospitalsanjose/billing/internal/encoding"
)

// Parser reads price-list CSV exports (code, name, unit price) and produces
// catalog upsert params. Column order is fixed; a header row is detected by
// a non-numeric price cell and skipped. Both semicolon and comma separated
// files are accepted, and amounts may use either European ("1.234,56") or
// plain ("1234.56") formatting.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]catalog.UpsertParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	raw, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read price list: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.Comma = detectDelimiter(string(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	var params []catalog.UpsertParams

	for i, row := range rows {
		rowNum := i + 1

		if len(row) < 3 {
			return nil, fmt.Errorf("row %d: expected code, name and price, got %d columns", rowNum, len(row))
		}

		code := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		priceCell := strings.TrimSpace(row[2])

		price, err := parseAmount(priceCell)
		if err != nil {
			if i == 0 {
				// Header row.
				continue
			}

			return nil, fmt.Errorf("row %d: invalid price %q", rowNum, priceCell)
		}

		if code == "" || name == "" {
			return nil, fmt.Errorf("row %d: code and name are required", rowNum)
		}

		params = append(params, catalog.UpsertParams{
			Code:      code,
			Name:      name,
			UnitPrice: price,
		})
	}

	return params, nil
}

// detectDelimiter picks between semicolon and comma based on the first line.
// Spreadsheets in es-HN locales export with semicolons.
func detectDelimiter(content string) rune {
	line, _, _ := strings.Cut(content, "\n")
	if strings.Contains(line, ";") {
		return ';'
	}

	return ','
}

// parseAmount parses a money cell in either European format ("1.234,56")
// or plain decimal format ("1234.56").
func parseAmount(s string) (decimal.Decimal, error) {
	clean := s
	if strings.Contains(s, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, err
	}

	return d.Round(2), nil
}
