package datatable

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
)

const (
	pdfMargin     = 10.0
	pdfPageWidth  = 297.0
	pdfRowHeight  = 7.0
	pdfHeaderSize = 9.0
	pdfBodySize   = 8.0
)

// WritePDF writes the data rows of view as a landscape A4 table.
func WritePDF(w io.Writer, title string, view View) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", pdfBodySize)
	pdf.Cell(0, 6, fmt.Sprintf("Page %d of %d, %d records, generated %s",
		view.Pagination.PageIndex+1, max(view.Pagination.PageCount, 1), view.Pagination.TotalCount,
		time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(8)

	if len(view.Headers) == 0 {
		return pdf.Output(w)
	}
	width := (pdfPageWidth - 2*pdfMargin) / float64(len(view.Headers))

	pdf.SetFont("Helvetica", "B", pdfHeaderSize)
	pdf.SetFillColor(230, 230, 230)
	for _, h := range view.Headers {
		pdf.CellFormat(width, pdfRowHeight, h.Label, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", pdfBodySize)
	for _, row := range view.Rows {
		if row.Kind != RowData {
			pdf.CellFormat(width*float64(len(view.Headers)), pdfRowHeight, row.Text, "1", 0, "C", false, 0, "")
			pdf.Ln(-1)
			continue
		}
		for _, cell := range row.Cells {
			pdf.CellFormat(width, pdfRowHeight, fit(pdf, cell.Text, width), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

func fit(pdf *gofpdf.Fpdf, text string, width float64) string {
	limit := width - 2
	if pdf.GetStringWidth(text) <= limit {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
