package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/azzaconstruction/contact-backend/internal/models"
)

// ExcelStore persists submissions in a local .xlsx workbook. Every append is a
// read-modify-write over the whole file, so all access is serialized through a
// single mutex; two concurrent appends must never interleave or one row would
// silently be lost.
type ExcelStore struct {
	mu    sync.Mutex
	path  string
	sheet string
}

// NewExcelStore opens the workbook at path, creating it with the header row
// and an empty sheet when it does not exist yet.
func NewExcelStore(path, sheet string) (*ExcelStore, error) {
	s := &ExcelStore{path: path, sheet: sheet}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.initialize(); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat submissions workbook: %w", err)
	}
	return s, nil
}

func (s *ExcelStore) initialize() error {
	f := excelize.NewFile()
	defer f.Close()

	if s.sheet != "Sheet1" {
		if _, err := f.NewSheet(s.sheet); err != nil {
			return fmt.Errorf("create sheet %q: %w", s.sheet, err)
		}
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("remove default sheet: %w", err)
		}
	}

	header := make([]interface{}, len(models.Columns))
	for i, c := range models.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(s.sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("create submissions workbook: %w", err)
	}
	return nil
}

// Append adds one row after the last occupied row and rewrites the file.
func (s *ExcelStore) Append(_ context.Context, sub models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("open submissions workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(s.sheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", s.sheet, err)
	}

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	row := make([]interface{}, 0, len(models.Columns))
	for _, v := range sub.Row() {
		row = append(row, v)
	}
	if err := f.SetSheetRow(s.sheet, cell, &row); err != nil {
		return fmt.Errorf("append submission row: %w", err)
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("save submissions workbook: %w", err)
	}
	return nil
}

// All returns every stored submission in append order, header row excluded.
func (s *ExcelStore) All(_ context.Context) ([]models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, nil
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open submissions workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(s.sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", s.sheet, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	subs := make([]models.Submission, 0, len(rows)-1)
	for _, row := range rows[1:] {
		subs = append(subs, models.FromRow(row))
	}
	return subs, nil
}

func (s *ExcelStore) Close() error { return nil }
