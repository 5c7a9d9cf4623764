// Package render draws an invoice document onto a fixed-width page
// bitmap for preview and PDF export. Output is deterministic: the
// same document, language and scale always produce identical pixels.
package render

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/lalindra-code/clearBillCopy/internal/billing"
	"github.com/lalindra-code/clearBillCopy/internal/model"

	_ "image/gif"
	_ "image/jpeg"
)

// Base page geometry: A4 proportions at 96dpi.
const (
	PageWidth  = 794
	PageHeight = 1123

	// DefaultScale is the oversampling factor used for export so text
	// stays legible at print resolution.
	DefaultScale = 2
)

var ErrBadLogo = errors.New("business logo could not be decoded")

// Page is the rasterized invoice. Width and Height are in device
// pixels (base geometry × Scale).
type Page struct {
	Image  image.Image
	Width  int
	Height int
	Scale  int
}

// PNG encodes the page bitmap.
func (p *Page) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.Image); err != nil {
		return nil, fmt.Errorf("encode page: %w", err)
	}
	return buf.Bytes(), nil
}

// Renderer holds the parsed template fonts. Safe for concurrent use;
// each Render call builds its own drawing state.
type Renderer struct {
	regular *opentype.Font
	bold    *opentype.Font
}

// New parses the embedded Go fonts. No font files on disk means the
// raster output cannot drift between deployments.
func New() (*Renderer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Renderer{regular: regular, bold: bold}, nil
}

// Render draws the invoice at the given oversampling scale. A scale
// below 1 falls back to DefaultScale. The page grows past the A4
// base height as a single continuous page when the content needs it;
// nothing is ever truncated.
func (r *Renderer) Render(inv *model.Invoice, lang string, scale int) (*Page, error) {
	if scale < 1 {
		scale = DefaultScale
	}

	layout := buildLayout(inv, billing.LabelsFor(lang))

	var logo image.Image
	if layout.HasLogo {
		decoded, err := decodeLogo(inv.BusinessLogo)
		if err != nil {
			return nil, err
		}
		logo = imaging.Fit(decoded, 160*scale, 60*scale, imaging.Lanczos)
	}

	c := newCanvas(r, scale, pageHeightFor(layout))
	c.draw(layout, logo)
	if c.err != nil {
		return nil, c.err
	}

	return &Page{
		Image:  c.dc.Image(),
		Width:  c.dc.Width(),
		Height: c.dc.Height(),
		Scale:  scale,
	}, nil
}

// pageHeightFor computes the base-unit page height: at least one A4
// page, more when the item table or notes overflow it.
func pageHeightFor(l pageLayout) int {
	y := headerHeight + 40 // top of body

	billed := 30 + 22 + float64(len(l.ClientLines))*18
	table := 36 + float64(len(l.Rows))*rowHeight + 32
	totals := float64(len(l.Totals)-1)*30 + 56 + 32
	notes := 0.0
	if len(l.NotesLines) > 0 {
		notes = 48 + float64(len(l.NotesLines))*20 + 32
	}
	footer := 64.0

	needed := int(float64(y) + billed + table + totals + notes + footer)
	if needed < PageHeight {
		return PageHeight
	}
	return needed
}

func decodeLogo(dataURL string) (image.Image, error) {
	payload := dataURL
	if idx := strings.Index(dataURL, "base64,"); idx >= 0 {
		payload = dataURL[idx+len("base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadLogo, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadLogo, err)
	}
	return img, nil
}

// Layout metrics in base units.
const (
	headerHeight = 170.0
	marginX      = 48.0
	rowHeight    = 40.0
)

// Template palette, carried over from the web preview.
const (
	colHeaderBG   = "#065F46"
	colAccent     = "#22C278"
	colPaleGreen  = "#86EFAC"
	colBright     = "#4ADE80"
	colTableHead  = "#F0FDF4"
	colZebra      = "#FAFAFA"
	colNotesEdge  = "#DCFCE7"
	colInk        = "#111827"
	colBody       = "#374151"
	colMuted      = "#6B7280"
	colFaint      = "#9CA3AF"
	colHairline   = "#F3F4F6"
	colTableSplit = "#DCFCE7"
)

// canvas wraps a gg context with base-unit coordinates. All positions
// and sizes are given in the 794-wide base space and multiplied by
// the oversampling scale at draw time.
type canvas struct {
	dc    *gg.Context
	r     *Renderer
	s     float64
	faces map[faceKey]font.Face
	err   error
}

type faceKey struct {
	size float64
	bold bool
}

func newCanvas(r *Renderer, scale int, baseHeight int) *canvas {
	return &canvas{
		dc:    gg.NewContext(PageWidth*scale, baseHeight*scale),
		r:     r,
		s:     float64(scale),
		faces: make(map[faceKey]font.Face),
	}
}

func (c *canvas) face(size float64, bold bool) font.Face {
	key := faceKey{size, bold}
	if f, ok := c.faces[key]; ok {
		return f
	}
	src := c.r.regular
	if bold {
		src = c.r.bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size * c.s,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil && c.err == nil {
		c.err = fmt.Errorf("build font face: %w", err)
	}
	c.faces[key] = f
	return f
}

func (c *canvas) rect(x, y, w, h float64, hex string) {
	c.dc.SetHexColor(hex)
	c.dc.DrawRectangle(x*c.s, y*c.s, w*c.s, h*c.s)
	c.dc.Fill()
}

func (c *canvas) roundedRect(x, y, w, h, radius float64, hex string) {
	c.dc.SetHexColor(hex)
	c.dc.DrawRoundedRectangle(x*c.s, y*c.s, w*c.s, h*c.s, radius*c.s)
	c.dc.Fill()
}

// text draws at a baseline position in base units.
func (c *canvas) text(s string, x, y, size float64, bold bool, hex string) {
	c.dc.SetFontFace(c.face(size, bold))
	c.dc.SetHexColor(hex)
	c.dc.DrawString(s, x*c.s, y*c.s)
}

// textRight right-aligns the string so it ends at x.
func (c *canvas) textRight(s string, x, y, size float64, bold bool, hex string) {
	c.dc.SetFontFace(c.face(size, bold))
	w, _ := c.dc.MeasureString(s)
	c.dc.SetHexColor(hex)
	c.dc.DrawString(s, x*c.s-w, y*c.s)
}

func (c *canvas) draw(l pageLayout, logo image.Image) {
	// White page.
	c.dc.SetHexColor("#FFFFFF")
	c.dc.Clear()

	// Header band.
	c.rect(0, 0, PageWidth, headerHeight, colHeaderBG)

	y := 52.0
	if logo != nil {
		c.dc.DrawImage(logo, int(marginX*c.s), int(34*c.s))
		y = 34 + float64(logo.Bounds().Dy())/c.s + 24
	} else {
		// Fallback wordmark.
		c.roundedRect(marginX, 34, 36, 36, 10, colAccent)
		c.text("EcoBill", marginX+46, 60, 20, true, "#FFFFFF")
		y = 96.0
	}
	c.text(l.BusinessName, marginX, y, 18, true, "#FFFFFF")
	y += 18
	for _, line := range l.BusinessLines {
		c.text(line, marginX, y, 12, false, colPaleGreen)
		y += 15
	}

	// Invoice identity, right side of the band.
	right := PageWidth - marginX
	c.textRight(l.InvoiceLabel, right, 48, 11, true, colPaleGreen)
	c.textRight(l.Number, right, 80, 28, true, "#FFFFFF")
	c.textRight(l.DateLabel+":  "+l.DateValue, right, 106, 12, false, colPaleGreen)
	c.textRight(l.DueLabel+":  "+l.DueValue, right, 126, 12, true, colBright)

	// Billed-to block.
	y = headerHeight + 70
	c.text(strings.ToUpper(l.BilledToLabel), marginX, y, 10, true, colFaint)
	y += 24
	c.text(l.ClientName, marginX, y, 16, true, colInk)
	y += 20
	for _, line := range l.ClientLines {
		c.text(line, marginX, y, 13, false, colMuted)
		y += 18
	}
	y += 24

	// Items table.
	tableW := PageWidth - 2*marginX
	colQtyX := marginX + tableW*0.60
	colUnitX := marginX + tableW*0.80
	colAmountX := marginX + tableW

	c.rect(marginX, y, tableW, 36, colTableHead)
	headBase := y + 23
	c.text(strings.ToUpper(l.Columns[0]), marginX+16, headBase, 11, true, colHeaderBG)
	c.textRight(strings.ToUpper(l.Columns[1]), colQtyX, headBase, 11, true, colHeaderBG)
	c.textRight(strings.ToUpper(l.Columns[2]), colUnitX, headBase, 11, true, colHeaderBG)
	c.textRight(strings.ToUpper(l.Columns[3]), colAmountX-16, headBase, 11, true, colHeaderBG)
	y += 36
	c.rect(marginX, y, tableW, 2, colTableSplit)
	y += 2

	for i, row := range l.Rows {
		if i%2 == 1 {
			c.rect(marginX, y, tableW, rowHeight, colZebra)
		}
		base := y + 25
		c.text(row.Desc, marginX+16, base, 14, false, colBody)
		c.textRight(row.Qty, colQtyX, base, 14, false, colBody)
		c.textRight(row.Unit, colUnitX, base, 14, false, colBody)
		c.textRight(row.Amount, colAmountX-16, base, 14, true, colInk)
		y += rowHeight
		c.rect(marginX, y, tableW, 1, colHairline)
		y += 1
	}
	y += 32

	// Totals panel, right-aligned.
	panelW := 280.0
	panelX := PageWidth - marginX - panelW
	for _, row := range l.Totals {
		if row.Emphasized {
			y += 8
			c.roundedRect(panelX, y, panelW, 56, 12, colHeaderBG)
			base := y + 35
			c.text(row.Label, panelX+16, base, 18, true, "#FFFFFF")
			c.textRight(row.Value, panelX+panelW-16, base, 18, true, colBright)
			y += 56
			continue
		}
		base := y + 20
		c.text(row.Label, panelX, base, 14, false, colMuted)
		c.textRight(row.Value, panelX+panelW, base, 14, false, colMuted)
		y += 30
	}
	y += 32

	// Notes block, only when there is content.
	if len(l.NotesLines) > 0 {
		boxH := 48 + float64(len(l.NotesLines))*20
		c.roundedRect(marginX, y, PageWidth-2*marginX, boxH, 12, colTableHead)
		c.text(strings.ToUpper(l.NotesLabel), marginX+20, y+28, 11, true, colHeaderBG)
		lineY := y + 52
		for _, line := range l.NotesLines {
			c.text(line, marginX+20, lineY, 13, false, colBody)
			lineY += 20
		}
		y += boxH + 32
	}

	// Fixed footer pinned to the bottom of the page.
	footY := float64(c.dc.Height())/c.s - 40
	c.rect(marginX, footY-24, PageWidth-2*marginX, 1, colHairline)
	c.text(l.Footer, marginX, footY, 11, false, colFaint)
	c.textRight("ecobill.lk", PageWidth-marginX, footY, 11, false, colPaleGreen)
}
