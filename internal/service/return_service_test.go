package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstrly/internal/config"
	"gstrly/internal/domain"
	"gstrly/internal/port"
	"gstrly/internal/service"
)

func TestParsePeriod(t *testing.T) {
	from, to, err := service.ParsePeriod("042025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), to)

	// December rolls into the next year.
	from, to, err = service.ParsePeriod("122024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestParsePeriod_Invalid(t *testing.T) {
	for _, period := range []string{
		"",
		"42025",    // missing leading zero
		"0420255",  // too long
		"132025",   // month out of range
		"002025",   // month out of range
		"042016",   // before GST rollout
		"ab2025",   // non-numeric month
		"04year",   // non-numeric year
		"04-2025",  // wrong separator
	} {
		_, _, err := service.ParsePeriod(period)
		assert.ErrorIs(t, err, domain.ErrInvalidPeriod, "period %q", period)
	}
}

type stubProfileRepo struct {
	profile *domain.BusinessProfile
	err     error
}

func (s *stubProfileRepo) GetByID(ctx context.Context, businessID uuid.UUID) (*domain.BusinessProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func (s *stubProfileRepo) Update(ctx context.Context, profile *domain.BusinessProfile) error {
	return nil
}

type stubCustomerRepo struct {
	customers []domain.Customer
}

func (s *stubCustomerRepo) Create(ctx context.Context, c *domain.Customer) error { return nil }
func (s *stubCustomerRepo) GetByID(ctx context.Context, businessID, customerID uuid.UUID) (*domain.Customer, error) {
	return nil, domain.ErrNotFound
}
func (s *stubCustomerRepo) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.Customer, error) {
	return s.customers, nil
}
func (s *stubCustomerRepo) Update(ctx context.Context, c *domain.Customer) error { return nil }
func (s *stubCustomerRepo) Delete(ctx context.Context, businessID, customerID uuid.UUID) error {
	return nil
}

type stubInvoiceRepo struct {
	invoices []domain.Invoice
	gotFrom  time.Time
	gotTo    time.Time
}

func (s *stubInvoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error { return nil }
func (s *stubInvoiceRepo) GetByID(ctx context.Context, businessID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	return nil, domain.ErrNotFound
}
func (s *stubInvoiceRepo) ListByBusiness(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invoices, len(s.invoices), nil
}
func (s *stubInvoiceRepo) ListByDateRange(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]domain.Invoice, error) {
	s.gotFrom, s.gotTo = from, to
	return s.invoices, nil
}
func (s *stubInvoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error { return nil }
func (s *stubInvoiceRepo) Delete(ctx context.Context, businessID, invoiceID uuid.UUID) error {
	return nil
}

type stubNoteRepo struct {
	credits []domain.Note
	debits  []domain.Note
}

func (s *stubNoteRepo) Create(ctx context.Context, n *domain.Note) error { return nil }
func (s *stubNoteRepo) GetByID(ctx context.Context, businessID, noteID uuid.UUID) (*domain.Note, error) {
	return nil, domain.ErrNotFound
}
func (s *stubNoteRepo) ListByBusiness(ctx context.Context, businessID uuid.UUID, kind domain.NoteKind, offset, limit int) ([]domain.Note, int, error) {
	return nil, 0, nil
}
func (s *stubNoteRepo) ListByDateRange(ctx context.Context, businessID uuid.UUID, kind domain.NoteKind, from, to time.Time) ([]domain.Note, error) {
	if kind == domain.NoteCredit {
		return s.credits, nil
	}
	return s.debits, nil
}
func (s *stubNoteRepo) Delete(ctx context.Context, businessID, noteID uuid.UUID) error { return nil }

type stubStorage struct {
	uploads   []port.UploadInput
	uploadErr error
}

func (s *stubStorage) Upload(ctx context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	s.uploads = append(s.uploads, input)
	return &port.UploadOutput{Location: "s3://test/" + input.Key}, nil
}

func (s *stubStorage) Delete(ctx context.Context, bucket, key string) error { return nil }

func (s *stubStorage) GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error) {
	return "https://presigned.test/" + key, nil
}

type stubEmail struct {
	to     string
	name   string
	period string
	links  []port.ReturnLink
}

func (s *stubEmail) SendReturnEmail(ctx context.Context, toEmail, businessName, period string, links []port.ReturnLink) error {
	s.to, s.name, s.period, s.links = toEmail, businessName, period, links
	return nil
}

func testReturnService(profile *domain.BusinessProfile, storage *stubStorage, email *stubEmail) (service.ReturnService, *stubInvoiceRepo) {
	invoiceRepo := &stubInvoiceRepo{}
	return service.NewReturnService(
		&stubProfileRepo{profile: profile},
		&stubCustomerRepo{},
		invoiceRepo,
		&stubNoteRepo{},
		storage,
		email,
		config.S3Config{Bucket: "gstrly-test", PresignExpiry: 600},
	), invoiceRepo
}

func filerProfile() *domain.BusinessProfile {
	return &domain.BusinessProfile{
		ID:           uuid.New(),
		LegalName:    "Kaveri Textiles Private Limited",
		TradeName:    "Kaveri Textiles",
		GSTIN:        "29AACCK7865F1Z5",
		State:        "Karnataka",
		TurnoverBand: domain.TurnoverBelow5Cr,
	}
}

func TestReturnService_Generate(t *testing.T) {
	profile := filerProfile()
	svc, invoiceRepo := testReturnService(profile, &stubStorage{}, &stubEmail{})

	out, err := svc.Generate(context.Background(), profile.ID, "042025")
	require.NoError(t, err)

	assert.Equal(t, "29AACCK7865F1Z5", out.Return.GSTIN)
	assert.Equal(t, "042025", out.Return.Period)
	assert.Equal(t, "GSTR1_29AACCK7865F1Z5_042025.xlsx", out.WorkbookName)
	assert.Equal(t, "GSTR1_29AACCK7865F1Z5_042025.json", out.PayloadName)

	// The repository is queried with the half-open month range.
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), invoiceRepo.gotFrom)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), invoiceRepo.gotTo)
}

func TestReturnService_Generate_ProfileIncomplete(t *testing.T) {
	profile := filerProfile()
	profile.GSTIN = ""
	svc, _ := testReturnService(profile, &stubStorage{}, &stubEmail{})

	_, err := svc.Generate(context.Background(), profile.ID, "042025")
	assert.ErrorIs(t, err, domain.ErrProfileIncomplete)
}

func TestReturnService_Generate_InvalidPeriod(t *testing.T) {
	profile := filerProfile()
	svc, _ := testReturnService(profile, &stubStorage{}, &stubEmail{})

	_, err := svc.Generate(context.Background(), profile.ID, "202504")
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestReturnService_Archive(t *testing.T) {
	profile := filerProfile()
	storage := &stubStorage{}
	svc, _ := testReturnService(profile, storage, &stubEmail{})

	result, err := svc.Archive(context.Background(), profile.ID, "042025")
	require.NoError(t, err)

	prefix := "businesses/" + profile.ID.String() + "/returns/042025/"
	assert.Equal(t, prefix+"GSTR1_29AACCK7865F1Z5_042025.xlsx", result.WorkbookKey)
	assert.Equal(t, prefix+"GSTR1_29AACCK7865F1Z5_042025.json", result.PayloadKey)

	require.Len(t, storage.uploads, 2)
	assert.Equal(t, "gstrly-test", storage.uploads[0].Bucket)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", storage.uploads[0].ContentType)
	assert.Equal(t, "application/json", storage.uploads[1].ContentType)

	require.Len(t, result.Links, 2)
	assert.Equal(t, "https://presigned.test/"+result.WorkbookKey, result.Links[0].URL)
	assert.Equal(t, "https://presigned.test/"+result.PayloadKey, result.Links[1].URL)
}

func TestReturnService_Archive_UploadFailure(t *testing.T) {
	profile := filerProfile()
	storage := &stubStorage{uploadErr: assert.AnError}
	svc, _ := testReturnService(profile, storage, &stubEmail{})

	_, err := svc.Archive(context.Background(), profile.ID, "042025")
	assert.ErrorIs(t, err, domain.ErrArchiveFailed)
}

func TestReturnService_SendToProfessional(t *testing.T) {
	profile := filerProfile()
	email := &stubEmail{}
	svc, _ := testReturnService(profile, &stubStorage{}, email)

	result, err := svc.SendToProfessional(context.Background(), profile.ID, "042025", "ca@firm.in")
	require.NoError(t, err)

	assert.Equal(t, "ca@firm.in", email.to)
	assert.Equal(t, "Kaveri Textiles", email.name)
	assert.Equal(t, "042025", email.period)
	assert.Equal(t, result.Links, email.links)
}

func TestReturnService_SendToProfessional_FallsBackToLegalName(t *testing.T) {
	profile := filerProfile()
	profile.TradeName = ""
	email := &stubEmail{}
	svc, _ := testReturnService(profile, &stubStorage{}, email)

	_, err := svc.SendToProfessional(context.Background(), profile.ID, "042025", "ca@firm.in")
	require.NoError(t, err)
	assert.Equal(t, "Kaveri Textiles Private Limited", email.name)
}
