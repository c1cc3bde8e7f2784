package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/hourbill/hourbill/internal/billing"
	ierr "github.com/hourbill/hourbill/internal/errors"
)

// billingRow is one invoice line item: a week of work billed as a lump sum.
type billingRow struct {
	date        string
	description string
	amount      decimal.Decimal
}

func (s *service) RenderInvoicePDF(ctx context.Context, data *DocumentData) ([]byte, error) {
	rate := s.billing.Rate()
	monthYear := billing.FormatMonthYear(data.Year, data.Month)

	rows := make([]billingRow, 0, len(data.Weeks))
	total := decimal.Zero

	for _, num := range data.Weeks.SortedWeekNumbers() {
		entries := billing.SortByDate(data.Weeks[num])
		amount := billing.WeekTotal(entries).Mul(rate)
		total = total.Add(amount)

		first, err := billing.ParseDate(entries[0].Date)
		if err != nil {
			return nil, err
		}
		last, err := billing.ParseDate(entries[len(entries)-1].Date)
		if err != nil {
			return nil, err
		}

		rows = append(rows, billingRow{
			date: billing.FormatMMDDYY(last),
			description: fmt.Sprintf("%s Week %d (%s - %s)",
				monthYear, num, billing.FormatMD(first), billing.FormatMD(last)),
			amount: amount,
		})
	}

	lastDay := billing.LastDayOfMonth(data.Year, data.Month)
	invoiceDate := billing.FormatOrdinalDate(lastDay)
	dueDate := billing.FormatOrdinalMonthDay(billing.DueDate(data.Year, data.Month))

	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	y := topMargin

	// Header
	doc.SetFont("Helvetica", "B", 28)
	doc.Text(leftMargin, y, "Invoice")
	y += 25

	doc.SetFont("Helvetica", "", 14)
	doc.Text(leftMargin, y, invoiceDate)
	y += 20

	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(77, 77, 77)
	doc.Text(leftMargin, y, tr(fmt.Sprintf("%s - %s - %s",
		s.billing.ContactName, s.billing.ContactPhone, s.billing.ContactEmail)))
	doc.SetTextColor(0, 0, 0)
	y += 25

	doc.SetLineWidth(1)
	doc.Line(leftMargin, y, rightMargin, y)
	y += 25

	doc.SetFont("Helvetica", "B", 12)
	doc.Text(leftMargin, y, tr(fmt.Sprintf("The following is billed to %s for %s",
		s.billing.ClientName, monthYear)))
	y += 25

	// Table
	col1X := leftMargin
	col2X := leftMargin + 80
	col3X := rightMargin - 70
	tableTop := y

	doc.SetFillColor(242, 242, 242)
	doc.Rect(leftMargin, y-15, rightMargin-leftMargin, 20, "F")

	doc.SetFont("Helvetica", "B", 10)
	doc.Text(col1X+5, y, "Date")
	doc.Text(col2X+5, y, "Description")
	doc.Text(col3X+5, y, "Amount")
	y += 20

	doc.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		doc.Text(col1X+5, y, row.date)
		doc.Text(col2X+5, y, tr(row.description))
		doc.Text(col3X+5, y, "$"+row.amount.StringFixed(2))
		y += 18
	}

	tableBottom := y - 13

	doc.Rect(leftMargin, tableTop-15, rightMargin-leftMargin, tableBottom-(tableTop-15), "D")
	doc.Line(col2X, tableTop-15, col2X, tableBottom)
	doc.Line(col3X, tableTop-15, col3X, tableBottom)
	doc.Line(leftMargin, tableTop+5, rightMargin, tableTop+5)
	y += 15

	doc.SetFont("Helvetica", "B", 14)
	totalStr := "Total: $" + billing.FormatMoney(total.StringFixed(2))
	doc.Text(rightMargin-doc.GetStringWidth(totalStr), y, totalStr)
	y += 25

	doc.Line(leftMargin, y, rightMargin, y)
	y += 25

	doc.SetFont("Helvetica", "B", 12)
	doc.Text(leftMargin, y, "Payment Notes:")
	y += 18

	doc.SetFont("Helvetica", "", 11)
	doc.Text(leftMargin+10, y, tr("• Payment via direct deposit"))
	y += 16
	doc.Text(leftMargin+10, y, tr(fmt.Sprintf("• Payment expected by %s", dueDate)))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to render invoice PDF").
			Mark(ierr.ErrSystem)
	}
	return buf.Bytes(), nil
}
