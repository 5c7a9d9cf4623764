package render

import (
	"fmt"
	"strings"

	"github.com/lalindra-code/clearBillCopy/internal/billing"
	"github.com/lalindra-code/clearBillCopy/internal/model"
)

// tableRow is one rendered line-item row, already formatted.
type tableRow struct {
	Desc   string
	Qty    string
	Unit   string
	Amount string
}

// totalsRow is one row of the totals panel.
type totalsRow struct {
	Label      string
	Value      string
	Emphasized bool // the final total box
}

// pageLayout is the display-ordered content of an invoice page. It is
// built once per render from the document and the label locale, and
// the draw step consumes it verbatim — conditional inclusion of
// optional fields happens here, not while drawing.
type pageLayout struct {
	HasLogo       bool
	BusinessName  string
	BusinessLines []string // address lines, then phone, then email — absent fields omitted

	InvoiceLabel string
	Number       string
	DateLabel    string
	DateValue    string
	DueLabel     string
	DueValue     string

	BilledToLabel string
	ClientName    string
	ClientLines   []string

	Columns [4]string
	Rows    []tableRow

	Totals []totalsRow

	NotesLabel string
	NotesLines []string // empty slice → notes block omitted

	Footer string
}

func buildLayout(inv *model.Invoice, labels billing.Labels) pageLayout {
	l := pageLayout{
		HasLogo:       inv.BusinessLogo != "",
		BusinessName:  inv.BusinessName,
		InvoiceLabel:  labels.Invoice,
		Number:        inv.InvoiceNumber,
		DateLabel:     labels.Date,
		DateValue:     billing.FormatDate(inv.Date),
		DueLabel:      labels.Due,
		DueValue:      billing.FormatDate(inv.DueDate),
		BilledToLabel: labels.BilledTo,
		ClientName:    inv.ClientName,
		Columns:       [4]string{labels.Desc, labels.Qty, labels.UnitPrice, labels.Amount},
		NotesLabel:    labels.Notes,
		Footer:        labels.Footer,
	}

	l.BusinessLines = contactLines(inv.BusinessAddress, inv.BusinessPhone, inv.BusinessEmail)
	l.ClientLines = contactLines(inv.ClientAddress, inv.ClientPhone, inv.ClientEmail)

	for _, item := range inv.Items {
		l.Rows = append(l.Rows, tableRow{
			Desc:   item.Description,
			Qty:    fmt.Sprintf("%d", item.Quantity),
			Unit:   billing.FormatLKR(item.UnitPrice),
			Amount: billing.FormatLKR(item.Amount),
		})
	}

	l.Totals = append(l.Totals, totalsRow{Label: labels.Subtotal, Value: billing.FormatLKR(inv.Subtotal)})
	if inv.TaxRate.IsPositive() {
		l.Totals = append(l.Totals, totalsRow{
			Label: fmt.Sprintf("%s (%s%%)", labels.Tax, inv.TaxRate.String()),
			Value: billing.FormatLKR(inv.TaxAmount),
		})
	}
	if inv.Discount.IsPositive() {
		l.Totals = append(l.Totals, totalsRow{
			Label: labels.Discount,
			Value: "− " + billing.FormatLKR(inv.Discount),
		})
	}
	l.Totals = append(l.Totals, totalsRow{Label: labels.Total, Value: billing.FormatLKR(inv.Total), Emphasized: true})

	if strings.TrimSpace(inv.Notes) != "" {
		l.NotesLines = splitLines(inv.Notes)
	}

	return l
}

// contactLines assembles the address/phone/email block, skipping
// whatever is absent so no blank lines appear.
func contactLines(address, phone, email string) []string {
	lines := splitLines(address)
	if phone != "" {
		lines = append(lines, phone)
	}
	if email != "" {
		lines = append(lines, email)
	}
	return lines
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
