package store

import (
	"context"
	"fmt"

	"github.com/azzaconstruction/contact-backend/internal/config"
	"github.com/azzaconstruction/contact-backend/internal/models"
)

// Store is the durable backing medium for submissions. Append adds exactly one
// row; it is not idempotent — repeated calls with identical input produce
// duplicate rows. All returns every stored row in append order (header
// excluded) and exists only to serve the bulk export path.
type Store interface {
	Append(ctx context.Context, sub models.Submission) error
	All(ctx context.Context) ([]models.Submission, error)
	Close() error
}

// New selects the backend configured in STORE_BACKEND. Exactly one backend is
// active per deployment; request code never branches on the concrete type.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreBackend {
	case config.BackendExcel:
		return NewExcelStore(cfg.ExcelPath, cfg.SheetName)
	case config.BackendSheets:
		return NewSheetsStore(ctx, cfg)
	case config.BackendPostgres:
		return OpenPostgres(cfg.PostgresURI)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
