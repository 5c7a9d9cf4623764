package pdfexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lalindra-code/clearBillCopy/internal/billing"
	"github.com/lalindra-code/clearBillCopy/internal/model"
	"github.com/lalindra-code/clearBillCopy/internal/render"
)

func TestFilename(t *testing.T) {
	if got := Filename("2026-101"); got != "INV-2026-101.pdf" {
		t.Fatalf("Filename = %q", got)
	}
}

func TestExport_ProducesPDF(t *testing.T) {
	r, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	price := decimal.NewFromInt(1500)
	inv := &model.Invoice{
		InvoiceNumber:   "2026-042",
		Date:            time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		DueDate:         time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		BusinessName:    "Ceylon Craft Studio",
		BusinessAddress: "12 Galle Road",
		ClientName:      "Nimal Perera",
		ClientAddress:   "45 Temple Lane",
		Items: []model.InvoiceItem{
			{Description: "Haircut", Quantity: 1, UnitPrice: price, Amount: price},
		},
		Subtotal: price,
		Total:    price,
	}

	page, err := r.Render(inv, billing.LangEnglish, 2)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	out, err := Export(page)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF: %q", out[:8])
	}
	if !bytes.Contains(out, []byte("%%EOF")) {
		t.Fatal("output missing PDF trailer")
	}
}
