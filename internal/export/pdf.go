package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin    = 10.0
	pdfRowHeight = 8.0
	pdfFontSize  = 10.0
)

// Column widths in mm on landscape A4 (297mm minus margins).
var pdfColumnWidths = []float64{70, 50, 32, 125}

// WritePDF writes t as a paginated report with fixed-width columns. The
// header row is repeated at the top of every page.
func WritePDF(w io.Writer, t Table) error {
	return writePDF(w, t, true)
}

func writePDF(w io.Writer, t Table, compress bool) error {
	if len(t.Header) != len(pdfColumnWidths) {
		return fmt.Errorf("pdf: table has %d columns, want %d", len(t.Header), len(pdfColumnWidths))
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.SetTitle(docxHeading, true)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	_, pageHeight := pdf.GetPageSize()

	header := func() {
		pdf.SetFont("Arial", "B", pdfFontSize)
		drawRow(pdf, tr, t.Header)
		pdf.SetFont("Arial", "", pdfFontSize)
	}

	pdf.AddPage()
	header()
	for _, row := range t.Rows {
		if pdf.GetY()+pdfRowHeight > pageHeight-pdfMargin {
			pdf.AddPage()
			header()
		}
		drawRow(pdf, tr, row)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func drawRow(pdf *fpdf.Fpdf, tr func(string) string, cells []string) {
	for i, cell := range cells {
		width := pdfColumnWidths[i]
		pdf.CellFormat(width, pdfRowHeight, fitText(pdf, tr(cell), width-2), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(pdfRowHeight)
}

// fitText cuts s until it fits in width, marking the cut with "...".
func fitText(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	const ellipsis = "..."
	for len(s) > 0 {
		s = s[:len(s)-1]
		if pdf.GetStringWidth(s+ellipsis) <= width {
			return s + ellipsis
		}
	}
	return ellipsis
}
