// Package sheets implements the JobLedger port on a Google Sheet.
//
// The ledger is a sheet of rows with three columns: source locator,
// output label and status. A row is pending while its status cell is
// empty; the worker writes "<outcome>: <diagnostic>" back into it.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/pagepress-cli/internal/connectors/google"
	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
	"github.com/custodia-labs/pagepress-cli/internal/core/ports/driven"
)

// Ensure Ledger implements the interface.
var _ driven.JobLedger = (*Ledger)(nil)

// Config identifies the ledger sheet and its layout.
type Config struct {
	// SpreadsheetID is the spreadsheet document ID.
	SpreadsheetID string

	// Sheet is the tab name holding the job rows.
	Sheet string

	// StartRow is the first data row, 1-based (row 1 is the header).
	StartRow int

	// StatusColumn is the column letter status writes go to.
	StatusColumn string
}

// Ledger reads pending jobs from and writes statuses to a Google Sheet.
type Ledger struct {
	svc     *sheets.Service
	limiter *google.RateLimiter
	cfg     Config
}

// NewLedger creates a sheet-backed job ledger.
func NewLedger(svc *sheets.Service, limiter *google.RateLimiter, cfg Config) (*Ledger, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("%w: ledger spreadsheet id must be set", domain.ErrInvalidInput)
	}
	if cfg.Sheet == "" {
		cfg.Sheet = "Jobs"
	}
	if cfg.StartRow < 1 {
		cfg.StartRow = 2
	}
	if cfg.StatusColumn == "" {
		cfg.StatusColumn = "C"
	}
	return &Ledger{svc: svc, limiter: limiter, cfg: cfg}, nil
}

// Pending returns the rows that have a locator but no status yet.
func (l *Ledger) Pending(ctx context.Context) ([]domain.Job, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	readRange := fmt.Sprintf("%s!A%d:%s", l.cfg.Sheet, l.cfg.StartRow, l.cfg.StatusColumn)
	resp, err := l.svc.Spreadsheets.Values.Get(l.cfg.SpreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read ledger %s: %w", readRange, google.MapError(l.limiter, err))
	}

	return pendingFromValues(resp.Values, l.cfg.StartRow), nil
}

// SetStatus writes "<outcome>: <diagnostic>" into the row's status cell.
func (l *Ledger) SetStatus(ctx context.Context, job domain.Job, status domain.JobStatus) error {
	if job.Row < l.cfg.StartRow {
		return fmt.Errorf("%w: job has no ledger row", domain.ErrInvalidInput)
	}
	if err := l.limiter.Wait(ctx); err != nil {
		return err
	}

	cell := fmt.Sprintf("%s!%s%d", l.cfg.Sheet, l.cfg.StatusColumn, job.Row)
	values := &sheets.ValueRange{
		Values: [][]any{{formatStatus(status)}},
	}
	_, err := l.svc.Spreadsheets.Values.Update(l.cfg.SpreadsheetID, cell, values).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write status to %s: %w", cell, google.MapError(l.limiter, err))
	}
	return nil
}

// pendingFromValues converts raw sheet rows into pending jobs.
// values[i] corresponds to sheet row startRow+i; column order is
// locator, label, status.
func pendingFromValues(values [][]any, startRow int) []domain.Job {
	var jobs []domain.Job
	for i, row := range values {
		locator := cellString(row, 0)
		if locator == "" {
			continue
		}
		if cellString(row, 2) != "" {
			continue // already processed
		}
		jobs = append(jobs, domain.Job{
			Row:     startRow + i,
			Locator: locator,
			Label:   cellString(row, 1),
		})
	}
	return jobs
}

func cellString(row []any, col int) string {
	if col >= len(row) {
		return ""
	}
	s, _ := row[col].(string)
	return strings.TrimSpace(s)
}

func formatStatus(status domain.JobStatus) string {
	if status.Diagnostic == "" {
		return string(status.Outcome)
	}
	return fmt.Sprintf("%s: %s", status.Outcome, status.Diagnostic)
}
