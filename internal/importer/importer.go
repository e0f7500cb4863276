package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/logger"
	"skkuri-backend/internal/repository"
)

var ErrMissingNameColumn = errors.New("spreadsheet has no name column")

type column int

const (
	colName column = iota
	colDescription
	colLocation
	colLogo
	colMainCategory
	colSubCategory
	colRecruiting
)

var headerAliases = map[string]column{
	"name":          colName,
	"description":   colDescription,
	"locate":        colLocation,
	"location":      colLocation,
	"logo_img_path": colLogo,
	"main_category": colMainCategory,
	"sub_category":  colSubCategory,
	"is_recruiting": colRecruiting,
}

// ParseClubs reads clubs from the first sheet of an xlsx workbook. The first
// row is the header; unknown columns are ignored and rows without a name are
// skipped.
func ParseClubs(r io.Reader) ([]domain.Club, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	index := map[column]int{}
	for i, h := range rows[0] {
		if col, ok := headerAliases[strings.ToLower(strings.TrimSpace(h))]; ok {
			if _, seen := index[col]; !seen {
				index[col] = i
			}
		}
	}
	if _, ok := index[colName]; !ok {
		return nil, ErrMissingNameColumn
	}

	clubs := make([]domain.Club, 0, len(rows)-1)
	for n, row := range rows[1:] {
		cell := func(c column) string {
			i, ok := index[c]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		name := cell(colName)
		if name == "" {
			logger.Debug("Skipping row without club name", "row", n+2)
			continue
		}
		clubs = append(clubs, domain.Club{
			Name:         name,
			Description:  cell(colDescription),
			Location:     cell(colLocation),
			LogoImgPath:  cell(colLogo),
			MainCategory: cell(colMainCategory),
			SubCategory:  cell(colSubCategory),
			IsRecruiting: parseBool(cell(colRecruiting)),
		})
	}
	return clubs, nil
}

func parseBool(s string) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	switch strings.ToLower(s) {
	case "y", "yes", "o":
		return true
	}
	return false
}

// Import inserts every club in one transaction and returns how many were
// written. A failed row aborts the whole import, so it can be re-run.
func Import(ctx context.Context, repo repository.ClubRepository, clubs []domain.Club) (int, error) {
	if len(clubs) == 0 {
		return 0, nil
	}
	if err := repo.CreateMany(ctx, clubs); err != nil {
		return 0, err
	}
	logger.Info("Club import finished", "count", len(clubs))
	return len(clubs), nil
}

// BuildInsertStatements renders literal INSERT statements for offline
// loading. Text values are quoted with doubled single quotes.
func BuildInsertStatements(clubs []domain.Club) []string {
	stmts := make([]string, 0, len(clubs))
	for _, c := range clubs {
		stmts = append(stmts, fmt.Sprintf(
			"INSERT INTO clubs (name, description, location, logo_img_path, main_category, sub_category, is_recruiting) VALUES (%s, %s, %s, %s, %s, %s, %t);",
			quote(c.Name), quote(c.Description), quote(c.Location), quote(c.LogoImgPath),
			quote(c.MainCategory), quote(c.SubCategory), c.IsRecruiting,
		))
	}
	return stmts
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
