package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/hourbill/hourbill/internal/billing"
	ierr "github.com/hourbill/hourbill/internal/errors"
)

// Remaining-space thresholds for page breaks. The week header threshold is
// larger so a header always has room for at least one entry line under it.
const (
	weekBreakAt  = pageHeight - 100
	entryBreakAt = pageHeight - 80
)

func (s *service) RenderHoursLogPDF(ctx context.Context, data *DocumentData) ([]byte, error) {
	monthYear := billing.FormatMonthYear(data.Year, data.Month)

	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	y := topMargin

	doc.SetFont("Helvetica", "B", 20)
	doc.Text(leftMargin, y, tr(fmt.Sprintf("%s %s Hours Log", s.billing.HoursLogPrefix, monthYear)))
	y += 30

	totalHours := decimal.Zero

	for _, num := range data.Weeks.SortedWeekNumbers() {
		if y > weekBreakAt {
			doc.AddPage()
			y = topMargin
		}

		header := fmt.Sprintf("Week %d", num)
		doc.SetFont("Helvetica", "B", 16)
		doc.Text(leftMargin, y, header)
		doc.SetLineWidth(1)
		doc.Line(leftMargin, y+2, leftMargin+doc.GetStringWidth(header), y+2)
		y += 25

		for _, entry := range billing.SortByDate(data.Weeks[num]) {
			if y > entryBreakAt {
				doc.AddPage()
				y = topMargin
			}

			totalHours = totalHours.Add(entry.Hours)

			date, err := billing.ParseDate(entry.Date)
			if err != nil {
				return nil, err
			}
			dateStr := billing.FormatFullDate(date)

			doc.SetFont("Helvetica", "B", 13)
			doc.Text(leftMargin, y, dateStr)
			doc.SetLineWidth(0.5)
			doc.Line(leftMargin, y+2, leftMargin+doc.GetStringWidth(dateStr), y+2)
			y += 18

			doc.SetFont("Helvetica", "B", 11)
			doc.Text(leftMargin, y, "Total Hours: ")
			hoursLabelWidth := doc.GetStringWidth("Total Hours: ")
			doc.SetFont("Helvetica", "", 11)
			doc.Text(leftMargin+hoursLabelWidth, y, entry.Hours.String())
			y += 16

			doc.SetFont("Helvetica", "I", 11)
			doc.Text(leftMargin, y, "Description: ")
			descLabelWidth := doc.GetStringWidth("Description: ")

			// Word-wrap against the remaining column width; the first line
			// starts right after the label, continuation lines at the margin.
			doc.SetFont("Helvetica", "", 11)
			maxDescWidth := rightMargin - leftMargin - descLabelWidth
			descX := leftMargin + descLabelWidth

			currentLine := ""
			firstLine := true

			for _, word := range strings.Split(entry.Description, " ") {
				testLine := word
				if currentLine != "" {
					testLine = currentLine + " " + word
				}

				if doc.GetStringWidth(tr(testLine)) > maxDescWidth && currentLine != "" {
					doc.Text(descX, y, tr(currentLine))
					y += 14
					currentLine = word
					if firstLine {
						descX = leftMargin
						firstLine = false
					}
				} else {
					currentLine = testLine
				}
			}

			if currentLine != "" {
				doc.Text(descX, y, tr(currentLine))
				y += 20
			}
		}

		y += 10
	}

	y += 10
	doc.SetLineWidth(1)
	doc.Line(leftMargin, y, rightMargin, y)
	y += 20

	doc.SetFont("Helvetica", "B", 12)
	doc.Text(leftMargin, y, fmt.Sprintf("Total Hours for %s: %s", monthYear, totalHours.String()))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to render hours log PDF").
			Mark(ierr.ErrSystem)
	}
	return buf.Bytes(), nil
}
