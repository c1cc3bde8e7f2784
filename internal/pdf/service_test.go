package pdf

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hourbill/hourbill/internal/billing"
	"github.com/hourbill/hourbill/internal/config"
	"github.com/hourbill/hourbill/internal/domain/timeentry"
	"github.com/hourbill/hourbill/internal/logger"
)

func newTestGenerator(t *testing.T) Generator {
	t.Helper()
	cfg := config.GetDefaultConfig()
	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)
	return NewGenerator(cfg, log)
}

func marchWeeks(t *testing.T) billing.WeekGroups {
	t.Helper()
	weeks, err := billing.GroupByWeek([]*timeentry.TimeEntry{
		{Date: "2024-03-01", Hours: decimal.NewFromInt(4), Description: "Kickoff planning"},
		{Date: "2024-03-04", Hours: decimal.NewFromInt(8), Description: "Setup"},
		{Date: "2024-03-05", Hours: decimal.NewFromFloat(7.5), Description: "Pipeline build out"},
		{Date: "2024-03-11", Hours: decimal.NewFromInt(6), Description: "Review and fixes"},
	})
	require.NoError(t, err)
	return weeks
}

func TestRenderInvoicePDF(t *testing.T) {
	gen := newTestGenerator(t)

	out, err := gen.RenderInvoicePDF(context.Background(), &DocumentData{
		Year:  2024,
		Month: time.March,
		Weeks: marchWeeks(t),
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output should be a PDF")
}

func TestRenderHoursLogPDF(t *testing.T) {
	gen := newTestGenerator(t)

	out, err := gen.RenderHoursLogPDF(context.Background(), &DocumentData{
		Year:  2024,
		Month: time.March,
		Weeks: marchWeeks(t),
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRenderHoursLogPDFPaginates(t *testing.T) {
	gen := newTestGenerator(t)

	// a full month of long-description entries forces page breaks
	entries := make([]*timeentry.TimeEntry, 0, 31)
	for d := 1; d <= 31; d++ {
		entries = append(entries, &timeentry.TimeEntry{
			Date:  fmt.Sprintf("2024-03-%02d", d),
			Hours: decimal.NewFromInt(8),
			Description: "Worked through the ingestion pipeline backlog, reviewed the " +
				"failing nightly jobs, and paired on the storage migration plan for the " +
				"remainder of the afternoon before writing up the findings",
		})
	}
	weeks, err := billing.GroupByWeek(entries)
	require.NoError(t, err)

	small, err := gen.RenderHoursLogPDF(context.Background(), &DocumentData{
		Year: 2024, Month: time.March, Weeks: marchWeeks(t),
	})
	require.NoError(t, err)

	large, err := gen.RenderHoursLogPDF(context.Background(), &DocumentData{
		Year: 2024, Month: time.March, Weeks: weeks,
	})
	require.NoError(t, err)
	assert.Greater(t, len(large), len(small))
	// multiple page objects in the body
	assert.Greater(t, bytes.Count(large, []byte("/Type /Page")), bytes.Count(small, []byte("/Type /Page")))
}

func TestRenderInvoicePDFBadEntryDate(t *testing.T) {
	gen := newTestGenerator(t)

	_, err := gen.RenderInvoicePDF(context.Background(), &DocumentData{
		Year:  2024,
		Month: time.March,
		Weeks: billing.WeekGroups{
			2: {{Date: "bogus", Hours: decimal.NewFromInt(1), Description: "x"}},
		},
	})
	assert.Error(t, err)
}
