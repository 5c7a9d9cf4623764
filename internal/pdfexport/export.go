// Package pdfexport turns a rasterized invoice page into a
// single-page PDF sized to the content: A4 width, height derived from
// the bitmap aspect ratio so nothing is ever cut off.
package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/lalindra-code/clearBillCopy/internal/render"
)

// A4 physical width in millimetres; the page height follows the bitmap.
const pageWidthMm = 210.0

// Filename returns the download name for an invoice number.
func Filename(invoiceNumber string) string {
	return fmt.Sprintf("INV-%s.pdf", invoiceNumber)
}

// Export embeds the page bitmap into a PDF and returns the file
// bytes. Failures are atomic — either the full document is returned
// or nothing is.
func Export(page *render.Page) ([]byte, error) {
	pngBytes, err := page.PNG()
	if err != nil {
		return nil, fmt.Errorf("rasterize page: %w", err)
	}

	heightMm := float64(page.Height) * pageWidthMm / float64(page.Width)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: pageWidthMm, Ht: heightMm},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("invoice", opts, bytes.NewReader(pngBytes))
	pdf.ImageOptions("invoice", 0, 0, pageWidthMm, heightMm, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
