package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
)

// TestPendingFromValues tests row filtering and row-number accounting.
func TestPendingFromValues(t *testing.T) {
	values := [][]any{
		{"https://example.com/a.pdf", "Report A"},                      // row 2: pending
		{"https://example.com/b.pdf", "Report B", "done: link"},        // row 3: processed
		{"", "orphan label"},                                           // row 4: no locator
		{"https://example.com/c.pdf"},                                  // row 5: pending, no label
		{"https://example.com/d.pdf", "Report D", "   "},               // row 6: blank status
		{"https://example.com/e.pdf", "Report E", "error: fetch fail"}, // row 7: processed
	}

	jobs := pendingFromValues(values, 2)
	require.Len(t, jobs, 3)

	assert.Equal(t, domain.Job{Row: 2, Locator: "https://example.com/a.pdf", Label: "Report A"}, jobs[0])
	assert.Equal(t, domain.Job{Row: 5, Locator: "https://example.com/c.pdf", Label: ""}, jobs[1])
	assert.Equal(t, domain.Job{Row: 6, Locator: "https://example.com/d.pdf", Label: "Report D"}, jobs[2])
}

// TestPendingFromValues_Empty tests an empty sheet yields no jobs.
func TestPendingFromValues_Empty(t *testing.T) {
	assert.Empty(t, pendingFromValues(nil, 2))
	assert.Empty(t, pendingFromValues([][]any{}, 2))
}

// TestPendingFromValues_NonStringCells tests numeric cells are ignored
// rather than panicking.
func TestPendingFromValues_NonStringCells(t *testing.T) {
	values := [][]any{
		{42.0, "numeric locator"},
		{"https://example.com/a.pdf", 7.0},
	}

	jobs := pendingFromValues(values, 2)
	require.Len(t, jobs, 1)
	assert.Equal(t, "https://example.com/a.pdf", jobs[0].Locator)
	assert.Equal(t, "", jobs[0].Label)
}

// TestFormatStatus tests the status cell format.
func TestFormatStatus(t *testing.T) {
	assert.Equal(t, "done: https://x/1 (900 bytes, 150 dpi, quality 70)",
		formatStatus(domain.JobStatus{
			Outcome:    domain.JobOutcomeDone,
			Diagnostic: "https://x/1 (900 bytes, 150 dpi, quality 70)",
		}))
	assert.Equal(t, "error", formatStatus(domain.JobStatus{Outcome: domain.JobOutcomeError}))
}
