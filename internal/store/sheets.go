package store

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/azzaconstruction/contact-backend/internal/config"
	"github.com/azzaconstruction/contact-backend/internal/models"
)

// SheetsStore persists submissions in a Google Sheets spreadsheet. Appends go
// through the values.append API, which is safe for concurrent callers; row
// ordering is the service's responsibility.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
	sheet         string
}

// NewSheetsStore authenticates with a service-account key (inline JSON wins
// over the key file) and targets the sheet named in the configuration.
func NewSheetsStore(ctx context.Context, cfg *config.Config) (*SheetsStore, error) {
	if cfg.SheetID == "" {
		return nil, fmt.Errorf("SHEET_ID is required for the sheets backend")
	}

	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	} else {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}

	return &SheetsStore{
		svc:           svc,
		spreadsheetID: cfg.SheetID,
		sheet:         cfg.SheetName,
	}, nil
}

func (s *SheetsStore) valueRange() string {
	return fmt.Sprintf("%s!A:F", s.sheet)
}

// Append issues a single values.append call scoped to the submissions range.
func (s *SheetsStore) Append(ctx context.Context, sub models.Submission) error {
	row := make([]interface{}, 0, len(models.Columns))
	for _, v := range sub.Row() {
		row = append(row, v)
	}

	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.valueRange(), &sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row to sheet %q: %w", s.sheet, err)
	}
	return nil
}

// All fetches the full submissions range and drops the header row.
func (s *SheetsStore) All(ctx context.Context) ([]models.Submission, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, s.valueRange()).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", s.sheet, err)
	}
	if len(resp.Values) <= 1 {
		return nil, nil
	}

	subs := make([]models.Submission, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		subs = append(subs, models.FromRow(row))
	}
	return subs, nil
}

func (s *SheetsStore) Close() error { return nil }
