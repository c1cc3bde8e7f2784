package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hourbill/hourbill/internal/billing"
	ierr "github.com/hourbill/hourbill/internal/errors"
	"github.com/hourbill/hourbill/internal/pdf"
	"github.com/hourbill/hourbill/internal/types"
)

// DocumentType identifies which billing PDF to generate
type DocumentType string

const (
	DocumentTypeInvoice  DocumentType = "invoice"
	DocumentTypeHoursLog DocumentType = "hours-log"
)

func (t DocumentType) Validate() error {
	switch t {
	case DocumentTypeInvoice, DocumentTypeHoursLog:
		return nil
	default:
		return ierr.NewError("invalid document type").
			WithHintf("Document type must be %s or %s", DocumentTypeInvoice, DocumentTypeHoursLog).
			Mark(ierr.ErrValidation)
	}
}

// DocumentService renders the two billing PDFs for a billing month.
type DocumentService interface {
	GenerateDocument(ctx context.Context, docType DocumentType, monthKey string, now time.Time) (*ExportResult, error)
}

type documentService struct {
	ServiceParams
}

func NewDocumentService(params ServiceParams) DocumentService {
	return &documentService{
		ServiceParams: params,
	}
}

func (s *documentService) GenerateDocument(ctx context.Context, docType DocumentType, monthKey string, now time.Time) (*ExportResult, error) {
	if err := docType.Validate(); err != nil {
		return nil, err
	}

	year, month, err := resolveMonth(monthKey, now)
	if err != nil {
		return nil, err
	}

	from, to := billing.MonthRange(year, month)
	entries, err := s.TimeEntryRepo.ListByDateRange(ctx, types.GetUserID(ctx), from, to)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ierr.NewError("no time entries for billing month").
			WithHintf("No time entries found for %s", billing.FormatMonthYear(year, month)).
			Mark(ierr.ErrNotFound)
	}

	weeks, err := billing.GroupByWeek(entries)
	if err != nil {
		return nil, err
	}

	data := &pdf.DocumentData{
		Year:  year,
		Month: month,
		Weeks: weeks,
	}

	var (
		raw      []byte
		filename string
	)
	switch docType {
	case DocumentTypeInvoice:
		raw, err = s.PDFGenerator.RenderInvoicePDF(ctx, data)
		filename = fmt.Sprintf("%s %s Invoice.pdf",
			s.Config.Billing.ClientName, billing.FormatMonthYear(year, month))
	case DocumentTypeHoursLog:
		raw, err = s.PDFGenerator.RenderHoursLogPDF(ctx, data)
		filename = fmt.Sprintf("%s %s Hours Log.pdf",
			s.Config.Billing.HoursLogPrefix, billing.FormatMonthYear(year, month))
	}
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("generated billing document",
		"type", docType,
		"billing_month", billing.MonthKey(year, month),
		"entries", len(entries),
		"bytes", len(raw))

	return &ExportResult{
		Filename:    filename,
		ContentType: "application/pdf",
		Data:        raw,
	}, nil
}
