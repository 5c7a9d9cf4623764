package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lalindra-code/clearBillCopy/internal/billing"
	"github.com/lalindra-code/clearBillCopy/internal/model"
	"github.com/lalindra-code/clearBillCopy/internal/pdfexport"
	"github.com/lalindra-code/clearBillCopy/internal/render"
	"github.com/lalindra-code/clearBillCopy/internal/repository"
	"github.com/lalindra-code/clearBillCopy/internal/websocket"
)

var (
	ErrInvalidInvoiceID       = errors.New("invalid invoice id")
	ErrInvoiceNotFound        = errors.New("invoice not found")
	ErrDuplicateInvoiceNumber = errors.New("an invoice with this number already exists")
	ErrInvalidInvoiceDate     = errors.New("invalid invoice date")
	ErrInvalidInvoiceStatus   = errors.New("invalid invoice status")
)

// --- DTOs ---

type InvoiceItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// CreateInvoiceRequest mirrors the document shape minus the id.
// Subtotal/TaxAmount/Total may be submitted by the client but are
// recomputed server-side; the computed values are authoritative.
type CreateInvoiceRequest struct {
	InvoiceNumber string `json:"invoiceNumber" binding:"required"`
	Date          string `json:"date" binding:"required"`    // YYYY-MM-DD
	DueDate       string `json:"dueDate" binding:"required"` // YYYY-MM-DD, may precede Date

	BusinessName    string `json:"businessName" binding:"required"`
	BusinessAddress string `json:"businessAddress" binding:"required"`
	BusinessPhone   string `json:"businessPhone"`
	BusinessEmail   string `json:"businessEmail"`
	BusinessLogo    string `json:"businessLogo"`

	ClientName    string `json:"clientName" binding:"required"`
	ClientAddress string `json:"clientAddress" binding:"required"`
	ClientPhone   string `json:"clientPhone"`
	ClientEmail   string `json:"clientEmail"`

	Items []InvoiceItemRequest `json:"items" binding:"required,min=1"`

	TaxRate  decimal.Decimal `json:"taxRate"`
	Discount decimal.Decimal `json:"discount"`

	Subtotal  *decimal.Decimal `json:"subtotal"`
	TaxAmount *decimal.Decimal `json:"taxAmount"`
	Total     *decimal.Decimal `json:"total"`

	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// --- Interface ---

type InvoiceService interface {
	Create(ctx context.Context, req CreateInvoiceRequest) (*model.Invoice, error)
	List(ctx context.Context, page, limit int) ([]model.Invoice, int64, error)
	Get(ctx context.Context, id string) (*model.Invoice, error)
	ExportPDF(ctx context.Context, id, lang string) ([]byte, string, error)
}

type invoiceService struct {
	invoices  repository.InvoiceRepository
	users     repository.UserRepository
	txManager repository.TransactionManager
	renderer  *render.Renderer
	hub       *websocket.Hub
	log       zerolog.Logger
}

func NewInvoiceService(
	invoices repository.InvoiceRepository,
	users repository.UserRepository,
	txManager repository.TransactionManager,
	renderer *render.Renderer,
	hub *websocket.Hub,
	log zerolog.Logger,
) InvoiceService {
	return &invoiceService{
		invoices:  invoices,
		users:     users,
		txManager: txManager,
		renderer:  renderer,
		hub:       hub,
		log:       log,
	}
}

// --- Implementation ---

const dateLayout = "2006-01-02"

func validStatus(status string) bool {
	switch status {
	case model.StatusDraft, model.StatusSent, model.StatusPaid, model.StatusOverdue:
		return true
	}
	return false
}

// Create validates the document, recomputes the totals from the line
// items and persists everything in one write. Duplicate invoice
// numbers fail the create; they never silently overwrite.
func (s *invoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*model.Invoice, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInvoiceDate, req.Date)
	}
	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInvoiceDate, req.DueDate)
	}
	// A due date before the issue date is accepted as given.

	status := req.Status
	if status == "" {
		status = model.StatusDraft
	}
	if !validStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInvoiceStatus, req.Status)
	}

	lines := make([]billing.LineInput, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, billing.LineInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	totals, err := billing.ComputeTotals(lines, req.TaxRate, req.Discount)
	if err != nil {
		return nil, err
	}
	s.checkSubmittedTotals(req, totals)

	items := make([]model.InvoiceItem, 0, len(req.Items))
	for i, item := range req.Items {
		items = append(items, model.InvoiceItem{
			Position:    i,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      billing.LineAmount(item.Quantity, item.UnitPrice),
		})
	}

	invoice := &model.Invoice{
		InvoiceNumber:   req.InvoiceNumber,
		Date:            date,
		DueDate:         dueDate,
		BusinessName:    req.BusinessName,
		BusinessAddress: req.BusinessAddress,
		BusinessPhone:   req.BusinessPhone,
		BusinessEmail:   req.BusinessEmail,
		BusinessLogo:    req.BusinessLogo,
		ClientName:      req.ClientName,
		ClientAddress:   req.ClientAddress,
		ClientPhone:     req.ClientPhone,
		ClientEmail:     req.ClientEmail,
		Items:           items,
		Subtotal:        totals.Subtotal,
		TaxRate:         req.TaxRate,
		TaxAmount:       totals.TaxAmount,
		Discount:        req.Discount,
		Total:           totals.Total,
		Status:          status,
		Notes:           req.Notes,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.invoices.Create(txCtx, invoice); createErr != nil {
			return createErr
		}
		if userID, ok := SessionUserID(ctx); ok {
			if countErr := s.users.IncrementInvoiceCount(txCtx, userID); countErr != nil {
				return countErr
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateInvoiceNumber
		}
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	s.broadcastCreated(invoice)

	return invoice, nil
}

// checkSubmittedTotals logs when client-computed totals disagree with
// the server's numbers. The server values always win; this exists so
// a drifting client does not go unnoticed.
func (s *invoiceService) checkSubmittedTotals(req CreateInvoiceRequest, totals billing.Totals) {
	mismatch := func(name string, submitted *decimal.Decimal, computed decimal.Decimal) {
		if submitted != nil && !submitted.Equal(computed) {
			s.log.Warn().
				Str("invoice_number", req.InvoiceNumber).
				Str("field", name).
				Str("submitted", submitted.String()).
				Str("computed", computed.String()).
				Msg("client-submitted total differs from server computation")
		}
	}
	mismatch("subtotal", req.Subtotal, totals.Subtotal)
	mismatch("taxAmount", req.TaxAmount, totals.TaxAmount)
	mismatch("total", req.Total, totals.Total)
}

func (s *invoiceService) broadcastCreated(invoice *model.Invoice) {
	if s.hub == nil {
		return
	}
	event, err := json.Marshal(map[string]string{
		"type":          "invoice.created",
		"id":            invoice.ID.String(),
		"invoiceNumber": invoice.InvoiceNumber,
		"total":         invoice.Total.StringFixed(2),
	})
	if err != nil {
		return
	}
	s.hub.Broadcast <- event
}

func (s *invoiceService) List(ctx context.Context, page, limit int) ([]model.Invoice, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}

	invoices, total, err := s.invoices.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, total, nil
}

func (s *invoiceService) Get(ctx context.Context, id string) (*model.Invoice, error) {
	invoiceID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInvoiceID
	}

	invoice, err := s.invoices.FindByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("fetch invoice: %w", err)
	}
	return invoice, nil
}

// ExportPDF renders a persisted invoice and returns the PDF bytes and
// download filename. The stored totals are rendered as-is, never
// recomputed at read time.
func (s *invoiceService) ExportPDF(ctx context.Context, id, lang string) ([]byte, string, error) {
	invoice, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	page, err := s.renderer.Render(invoice, lang, render.DefaultScale)
	if err != nil {
		return nil, "", fmt.Errorf("render invoice %s: %w", invoice.InvoiceNumber, err)
	}

	pdf, err := pdfexport.Export(page)
	if err != nil {
		return nil, "", fmt.Errorf("export invoice %s: %w", invoice.InvoiceNumber, err)
	}

	return pdf, pdfexport.Filename(invoice.InvoiceNumber), nil
}
