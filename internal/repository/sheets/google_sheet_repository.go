package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mamadbah2/finca/internal/config"
	"github.com/mamadbah2/finca/internal/domain/models"
)

// DigestRange is the sheet range digests are appended to, one row per digest.
const DigestRange = "Digest!A:J"

// Repository defines the persistence operations supported by the Google Sheets adapter.
type Repository interface {
	WriteRow(ctx context.Context, sheetRange string, values []interface{}) error
}

// GoogleSheetRepository implements the Repository interface using the official Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed repository instance.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// WriteRow appends the provided values to the supplied sheet range.
func (r *GoogleSheetRepository) WriteRow(ctx context.Context, sheetRange string, values []interface{}) error {
	if sheetRange == "" {
		return fmt.Errorf("sheetRange must not be empty")
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append row into range %s: %w", sheetRange, err)
	}

	r.logger.Debug("row appended to sheet", zap.String("range", sheetRange))
	return nil
}

// DigestSink exports digests as spreadsheet rows.
type DigestSink struct {
	repo Repository
}

// NewDigestSink wraps a sheet repository.
func NewDigestSink(repo Repository) *DigestSink {
	return &DigestSink{repo: repo}
}

// Name identifies the sink in logs.
func (s *DigestSink) Name() string { return "sheets" }

// PublishDigest appends one row to DigestRange.
func (s *DigestSink) PublishDigest(ctx context.Context, digest models.DashboardDigest) error {
	return s.repo.WriteRow(ctx, DigestRange, DigestRow(digest))
}

// DigestRow flattens a digest into the ten columns of DigestRange.
func DigestRow(d models.DashboardDigest) []interface{} {
	return []interface{}{
		d.Date.Format(models.DateLayout),
		d.Agro.CultivatedArea,
		d.Agro.MonthlyHarvestValue,
		d.Pecuario.TotalAnimals,
		d.Pecuario.MonthlyMilkLiters,
		d.Finanzas.MonthlyIncome,
		d.Finanzas.MonthlyExpenses,
		d.Finanzas.AccountsReceivable,
		d.Finanzas.AccountsPayable,
		d.BudgetsExceeded,
	}
}
