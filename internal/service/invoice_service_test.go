package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lalindra-code/clearBillCopy/internal/billing"
	"github.com/lalindra-code/clearBillCopy/internal/model"
	"github.com/lalindra-code/clearBillCopy/internal/render"
)

type fakeInvoiceRepo struct {
	invoices []*model.Invoice
}

func (r *fakeInvoiceRepo) Create(_ context.Context, invoice *model.Invoice) error {
	for _, existing := range r.invoices {
		if existing.InvoiceNumber == invoice.InvoiceNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	r.invoices = append(r.invoices, invoice)
	return nil
}

func (r *fakeInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInvoiceRepo) FindByNumber(_ context.Context, number string) (*model.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.InvoiceNumber == number {
			return inv, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInvoiceRepo) List(_ context.Context, page, limit int) ([]model.Invoice, int64, error) {
	// Newest first, mirroring the created_at DESC ordering.
	out := make([]model.Invoice, 0, len(r.invoices))
	for i := len(r.invoices) - 1; i >= 0; i-- {
		out = append(out, *r.invoices[i])
	}
	offset := (page - 1) * limit
	if offset >= len(out) {
		return nil, int64(len(r.invoices)), nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], int64(len(r.invoices)), nil
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return v
}

func newTestInvoiceService(t *testing.T, invoices *fakeInvoiceRepo, users *fakeUserRepo) InvoiceService {
	t.Helper()
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New(): %v", err)
	}
	return NewInvoiceService(invoices, users, fakeTxManager{}, renderer, nil, zerolog.Nop())
}

func createRequest(t *testing.T) CreateInvoiceRequest {
	t.Helper()
	return CreateInvoiceRequest{
		InvoiceNumber:   "2024-001",
		Date:            "2024-03-01",
		DueDate:         "2024-03-15",
		BusinessName:    "Colombo Salon",
		BusinessAddress: "12 Galle Road, Colombo",
		ClientName:      "Nimal Perera",
		ClientAddress:   "34 Kandy Road, Kadawatha",
		Items: []InvoiceItemRequest{
			{Description: "Consultation", Quantity: 2, UnitPrice: dec(t, "500")},
			{Description: "Report", Quantity: 1, UnitPrice: dec(t, "1000")},
		},
		TaxRate: dec(t, "10"),
	}
}

func TestCreateComputesTotals(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := newTestInvoiceService(t, repo, newFakeUserRepo())

	invoice, err := svc.Create(context.Background(), createRequest(t))
	if err != nil {
		t.Fatalf("Create(): %v", err)
	}

	if !invoice.Subtotal.Equal(dec(t, "2000")) {
		t.Errorf("Subtotal = %s, want 2000", invoice.Subtotal)
	}
	if !invoice.TaxAmount.Equal(dec(t, "200")) {
		t.Errorf("TaxAmount = %s, want 200", invoice.TaxAmount)
	}
	if !invoice.Total.Equal(dec(t, "2200")) {
		t.Errorf("Total = %s, want 2200", invoice.Total)
	}
	if invoice.Status != model.StatusDraft {
		t.Errorf("Status = %q, want draft default", invoice.Status)
	}

	if len(invoice.Items) != 2 {
		t.Fatalf("have %d items, want 2", len(invoice.Items))
	}
	for i, item := range invoice.Items {
		if item.Position != i {
			t.Errorf("item %d has position %d", i, item.Position)
		}
	}
	if !invoice.Items[0].Amount.Equal(dec(t, "1000")) {
		t.Errorf("first line amount = %s, want 1000", invoice.Items[0].Amount)
	}
	if !invoice.Items[1].Amount.Equal(dec(t, "1000")) {
		t.Errorf("second line amount = %s, want 1000", invoice.Items[1].Amount)
	}
}

func TestCreateOverridesSubmittedTotals(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := newTestInvoiceService(t, repo, newFakeUserRepo())

	req := createRequest(t)
	wrong := dec(t, "999999")
	req.Subtotal = &wrong
	req.Total = &wrong

	invoice, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create(): %v", err)
	}
	if !invoice.Total.Equal(dec(t, "2200")) {
		t.Fatalf("Total = %s, want the server-computed 2200", invoice.Total)
	}
}

func TestCreateRejectsDuplicateNumber(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := newTestInvoiceService(t, repo, newFakeUserRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, createRequest(t)); err != nil {
		t.Fatalf("first Create(): %v", err)
	}
	_, err := svc.Create(ctx, createRequest(t))
	if !errors.Is(err, ErrDuplicateInvoiceNumber) {
		t.Fatalf("second Create() = %v, want ErrDuplicateInvoiceNumber", err)
	}
	if len(repo.invoices) != 1 {
		t.Fatalf("stored %d invoices, want 1", len(repo.invoices))
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestInvoiceService(t, &fakeInvoiceRepo{}, newFakeUserRepo())
	ctx := context.Background()

	t.Run("bad date", func(t *testing.T) {
		req := createRequest(t)
		req.Date = "01/03/2024"
		if _, err := svc.Create(ctx, req); !errors.Is(err, ErrInvalidInvoiceDate) {
			t.Fatalf("Create() = %v, want ErrInvalidInvoiceDate", err)
		}
	})
	t.Run("bad status", func(t *testing.T) {
		req := createRequest(t)
		req.Status = "archived"
		if _, err := svc.Create(ctx, req); !errors.Is(err, ErrInvalidInvoiceStatus) {
			t.Fatalf("Create() = %v, want ErrInvalidInvoiceStatus", err)
		}
	})
	t.Run("tax rate above 100", func(t *testing.T) {
		req := createRequest(t)
		req.TaxRate = dec(t, "101")
		if _, err := svc.Create(ctx, req); !errors.Is(err, billing.ErrTaxRateOutOfRange) {
			t.Fatalf("Create() = %v, want ErrTaxRateOutOfRange", err)
		}
	})
	t.Run("negative discount", func(t *testing.T) {
		req := createRequest(t)
		req.Discount = dec(t, "-5")
		if _, err := svc.Create(ctx, req); !errors.Is(err, billing.ErrNegativeDiscount) {
			t.Fatalf("Create() = %v, want ErrNegativeDiscount", err)
		}
	})
	t.Run("due date before issue date is accepted", func(t *testing.T) {
		req := createRequest(t)
		req.InvoiceNumber = "2024-002"
		req.DueDate = "2024-02-01"
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("Create() = %v, want nil", err)
		}
	})
}

func TestCreateBumpsOwnerInvoiceCount(t *testing.T) {
	users := newFakeUserRepo()
	owner := &model.User{Name: "Owner", Email: "owner@example.com", Plan: model.PlanFree}
	if err := users.Create(context.Background(), owner); err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	svc := newTestInvoiceService(t, &fakeInvoiceRepo{}, users)

	ctx := WithSessionUserID(context.Background(), owner.ID.String())
	if _, err := svc.Create(ctx, createRequest(t)); err != nil {
		t.Fatalf("Create(): %v", err)
	}

	if owner.InvoiceCount != 1 {
		t.Fatalf("InvoiceCount = %d, want 1", owner.InvoiceCount)
	}
}

func TestGetInvoice(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := newTestInvoiceService(t, repo, newFakeUserRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest(t))
	if err != nil {
		t.Fatalf("Create(): %v", err)
	}

	t.Run("found", func(t *testing.T) {
		got, err := svc.Get(ctx, created.ID.String())
		if err != nil {
			t.Fatalf("Get(): %v", err)
		}
		if got.InvoiceNumber != "2024-001" {
			t.Fatalf("InvoiceNumber = %q", got.InvoiceNumber)
		}
	})
	t.Run("malformed id", func(t *testing.T) {
		if _, err := svc.Get(ctx, "not-a-uuid"); !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("Get() = %v, want ErrInvalidInvoiceID", err)
		}
	})
	t.Run("missing id", func(t *testing.T) {
		if _, err := svc.Get(ctx, uuid.NewString()); !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("Get() = %v, want ErrInvoiceNotFound", err)
		}
	})
}

func TestListNewestFirst(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := newTestInvoiceService(t, repo, newFakeUserRepo())
	ctx := context.Background()

	for _, number := range []string{"2024-001", "2024-002", "2024-003"} {
		req := createRequest(t)
		req.InvoiceNumber = number
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("Create(%s): %v", number, err)
		}
	}

	invoices, total, err := svc.List(ctx, 1, 50)
	if err != nil {
		t.Fatalf("List(): %v", err)
	}
	if total != 3 || len(invoices) != 3 {
		t.Fatalf("List() = %d items, total %d, want 3/3", len(invoices), total)
	}
	if invoices[0].InvoiceNumber != "2024-003" {
		t.Fatalf("first listed invoice = %q, want the newest", invoices[0].InvoiceNumber)
	}
}

func TestExportPDF(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := newTestInvoiceService(t, repo, newFakeUserRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest(t))
	if err != nil {
		t.Fatalf("Create(): %v", err)
	}

	pdf, filename, err := svc.ExportPDF(ctx, created.ID.String(), billing.LangEnglish)
	if err != nil {
		t.Fatalf("ExportPDF(): %v", err)
	}
	if filename != "INV-2024-001.pdf" {
		t.Fatalf("filename = %q, want INV-2024-001.pdf", filename)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("output does not start with a PDF header")
	}

	if _, _, err := svc.ExportPDF(ctx, uuid.NewString(), billing.LangEnglish); !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("ExportPDF(missing) = %v, want ErrInvoiceNotFound", err)
	}
}
