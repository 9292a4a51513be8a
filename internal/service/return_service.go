package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"gstrly/internal/config"
	"gstrly/internal/domain"
	"gstrly/internal/gstr1"
	"gstrly/internal/port"
)

const (
	workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	payloadContentType  = "application/json"
)

// ArchiveResult holds the S3 locations and presigned download links of one
// archived return.
type ArchiveResult struct {
	WorkbookKey string            `json:"workbook_key"`
	PayloadKey  string            `json:"payload_key"`
	Links       []port.ReturnLink `json:"links"`
}

// ReturnService orchestrates GSTR-1 generation: it assembles the period
// snapshot from the repositories, runs the generator, and handles archival
// and delivery of the artifacts.
type ReturnService interface {
	Generate(ctx context.Context, businessID uuid.UUID, period string) (*gstr1.Output, error)
	Archive(ctx context.Context, businessID uuid.UUID, period string) (*ArchiveResult, error)
	SendToProfessional(ctx context.Context, businessID uuid.UUID, period, toEmail string) (*ArchiveResult, error)
}

type returnService struct {
	profileRepo  port.ProfileRepository
	customerRepo port.CustomerRepository
	invoiceRepo  port.InvoiceRepository
	noteRepo     port.NoteRepository
	storage      port.ObjectStorage
	email        port.EmailSender
	s3cfg        config.S3Config
}

// NewReturnService creates a new ReturnService implementation.
func NewReturnService(
	profileRepo port.ProfileRepository,
	customerRepo port.CustomerRepository,
	invoiceRepo port.InvoiceRepository,
	noteRepo port.NoteRepository,
	storage port.ObjectStorage,
	email port.EmailSender,
	s3cfg config.S3Config,
) ReturnService {
	return &returnService{
		profileRepo:  profileRepo,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		noteRepo:     noteRepo,
		storage:      storage,
		email:        email,
		s3cfg:        s3cfg,
	}
}

// ParsePeriod validates a 6-character MMYYYY filing period token and returns
// the half-open [from, to) date range it covers.
func ParsePeriod(period string) (from, to time.Time, err error) {
	if len(period) != 6 {
		return time.Time{}, time.Time{}, domain.ErrInvalidPeriod
	}
	month, err := strconv.Atoi(period[:2])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, time.Time{}, domain.ErrInvalidPeriod
	}
	year, err := strconv.Atoi(period[2:])
	if err != nil || year < 2017 {
		return time.Time{}, time.Time{}, domain.ErrInvalidPeriod
	}
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 1, 0)
	return from, to, nil
}

func (s *returnService) Generate(ctx context.Context, businessID uuid.UUID, period string) (*gstr1.Output, error) {
	snap, err := s.buildSnapshot(ctx, businessID, period)
	if err != nil {
		return nil, err
	}
	return gstr1.Generate(snap)
}

func (s *returnService) buildSnapshot(ctx context.Context, businessID uuid.UUID, period string) (*gstr1.Snapshot, error) {
	from, to, err := ParsePeriod(period)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("returnService.buildSnapshot profile: %w", err)
	}
	if profile.GSTIN == "" || profile.State == "" {
		return nil, domain.ErrProfileIncomplete
	}

	customers, err := s.customerRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("returnService.buildSnapshot customers: %w", err)
	}

	invoices, err := s.invoiceRepo.ListByDateRange(ctx, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("returnService.buildSnapshot invoices: %w", err)
	}

	creditNotes, err := s.noteRepo.ListByDateRange(ctx, businessID, domain.NoteCredit, from, to)
	if err != nil {
		return nil, fmt.Errorf("returnService.buildSnapshot credit notes: %w", err)
	}

	debitNotes, err := s.noteRepo.ListByDateRange(ctx, businessID, domain.NoteDebit, from, to)
	if err != nil {
		return nil, fmt.Errorf("returnService.buildSnapshot debit notes: %w", err)
	}

	return &gstr1.Snapshot{
		Profile:     *profile,
		Customers:   customers,
		Invoices:    invoices,
		CreditNotes: creditNotes,
		DebitNotes:  debitNotes,
		Period:      period,
	}, nil
}

func (s *returnService) Archive(ctx context.Context, businessID uuid.UUID, period string) (*ArchiveResult, error) {
	out, err := s.Generate(ctx, businessID, period)
	if err != nil {
		return nil, err
	}

	wbBuf, err := out.Workbook.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("returnService.Archive workbook: %w", err)
	}

	payloadBytes, err := json.Marshal(out.Payload)
	if err != nil {
		return nil, fmt.Errorf("returnService.Archive payload: %w", err)
	}

	prefix := fmt.Sprintf("businesses/%s/returns/%s", businessID, period)
	wbKey := fmt.Sprintf("%s/%s", prefix, out.WorkbookName)
	plKey := fmt.Sprintf("%s/%s", prefix, out.PayloadName)

	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         wbKey,
		Body:        wbBuf,
		ContentType: workbookContentType,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArchiveFailed, err)
	}

	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         plKey,
		Body:        bytes.NewReader(payloadBytes),
		ContentType: payloadContentType,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArchiveFailed, err)
	}

	wbURL, err := s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, wbKey, s.s3cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("returnService.Archive presign workbook: %w", err)
	}
	plURL, err := s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, plKey, s.s3cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("returnService.Archive presign payload: %w", err)
	}

	return &ArchiveResult{
		WorkbookKey: wbKey,
		PayloadKey:  plKey,
		Links: []port.ReturnLink{
			{Label: "GSTR-1 Workbook (Excel)", URL: wbURL},
			{Label: "GSTR-1 Payload (JSON)", URL: plURL},
		},
	}, nil
}

func (s *returnService) SendToProfessional(ctx context.Context, businessID uuid.UUID, period, toEmail string) (*ArchiveResult, error) {
	profile, err := s.profileRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("returnService.SendToProfessional profile: %w", err)
	}

	result, err := s.Archive(ctx, businessID, period)
	if err != nil {
		return nil, err
	}

	name := profile.TradeName
	if name == "" {
		name = profile.LegalName
	}

	if err := s.email.SendReturnEmail(ctx, toEmail, name, period, result.Links); err != nil {
		return nil, fmt.Errorf("returnService.SendToProfessional: %w", err)
	}
	return result, nil
}
