package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lalindra-code/clearBillCopy/internal/billing"
	"github.com/lalindra-code/clearBillCopy/internal/middleware"
	"github.com/lalindra-code/clearBillCopy/internal/service"
	"github.com/lalindra-code/clearBillCopy/pkg/pagination"
	"github.com/lalindra-code/clearBillCopy/pkg/response"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// RegisterRoutes binds the invoice endpoints. All of them require a session.
func (h *InvoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	invoices := router.Group("/invoices", middleware.RequireAuth())
	{
		invoices.POST("", h.CreateInvoice)
		invoices.GET("", h.ListInvoices)
		invoices.GET("/:id", h.GetInvoice)
		invoices.GET("/:id/pdf", h.DownloadPDF)
	}
}

// CreateInvoice persists a new invoice
// @Summary      Create invoice
// @Description  Stores an invoice; totals are recomputed server-side from the line items
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateInvoiceRequest  true  "Invoice Payload"
// @Success      201      {object}  model.Invoice
// @Failure      400      {object}  response.Body
// @Failure      401      {object}  response.Body
// @Failure      409      {object}  response.Body
// @Router       /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req service.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid invoice payload"))
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, invoice)
	case errors.Is(err, service.ErrDuplicateInvoiceNumber):
		c.JSON(http.StatusConflict, response.Error(err.Error()))
	case errors.Is(err, billing.ErrTaxRateOutOfRange),
		errors.Is(err, billing.ErrNegativeDiscount),
		errors.Is(err, billing.ErrInvalidQuantity),
		errors.Is(err, billing.ErrNegativeUnitPrice),
		errors.Is(err, service.ErrInvalidInvoiceDate),
		errors.Is(err, service.ErrInvalidInvoiceStatus):
		c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, response.Error("Failed to create invoice"))
	}
}

// ListInvoices returns saved invoices, newest first
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {array}   model.Invoice
// @Failure      401    {object}  response.Body
// @Router       /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	params := pagination.Parse(c)

	invoices, _, err := h.invoiceService.List(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Failed to load invoices"))
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// GetInvoice returns one invoice with its line items
// @Summary      Get invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  model.Invoice
// @Failure      400  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.Get(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, invoice)
	case errors.Is(err, service.ErrInvalidInvoiceID):
		c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	case errors.Is(err, service.ErrInvoiceNotFound):
		c.JSON(http.StatusNotFound, response.Error(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, response.Error("Failed to load invoice"))
	}
}

// DownloadPDF exports an invoice as a PDF document
// @Summary      Download invoice PDF
// @Description  Renders the invoice and streams it as an A4-width PDF attachment
// @Tags         invoices
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id    path      string  true   "Invoice ID"
// @Param        lang  query     string  false  "Label language (en, si, ta)"
// @Success      200   {file}    binary
// @Failure      400   {object}  response.Body
// @Failure      404   {object}  response.Body
// @Router       /invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	lang := c.DefaultQuery("lang", billing.LangEnglish)

	pdf, filename, err := h.invoiceService.ExportPDF(c.Request.Context(), c.Param("id"), lang)
	switch {
	case err == nil:
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/pdf", pdf)
	case errors.Is(err, service.ErrInvalidInvoiceID):
		c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	case errors.Is(err, service.ErrInvoiceNotFound):
		c.JSON(http.StatusNotFound, response.Error(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, response.Error("Failed to export invoice"))
	}
}
