// ABOUTME: Printable single-recipe PDF built with gofpdf.
// ABOUTME: Adds a QR code of the share link in the top-right corner when one is given.
package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"github.com/2389-research/cocktail/internal/models"
)

const qrSizePx = 256

// PrintPDF writes a one-page Letter PDF for d. shareURL may be empty.
func PrintPDF(w io.Writer, d models.Drink, shareURL string) error {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(14, 14, 14)
	pdf.SetAutoPageBreak(true, 14)
	pdf.SetTitle(ShareTitle(d), true)
	pdf.AddPage()

	// Core fonts are cp1252; translate bullets and dashes from UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	textWidth := 0.0
	if shareURL != "" {
		png, err := ShareQR(shareURL, qrSizePx)
		if err != nil {
			return err
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(png))
		pageW, _ := pdf.GetPageSize()
		pdf.ImageOptions("qr", pageW-14-36, 14, 36, 36, false, opts, 0, "")
		textWidth = pageW - 28 - 40
	}

	pdf.SetFont("Times", "B", 24)
	pdf.MultiCell(textWidth, 10, tr(orPlaceholder(d.Name)), "", "L", false)

	if meta := d.Meta(); meta != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(71, 85, 105)
		pdf.MultiCell(textWidth, 6, tr(meta), "", "L", false)
		pdf.SetTextColor(17, 17, 17)
	}
	pdf.Ln(8)
	if y := pdf.GetY(); shareURL != "" && y < 54 {
		pdf.SetY(54)
	}

	pdf.SetFont("Times", "B", 14)
	pdf.CellFormat(0, 8, "Ingredients", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	for _, ing := range models.IngredientLines(d) {
		pdf.MultiCell(0, 6, tr("• "+ing), "", "L", false)
	}
	pdf.Ln(6)

	pdf.SetFont("Times", "B", 14)
	pdf.CellFormat(0, 8, "Instructions", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 6, tr(orPlaceholder(d.Instructions)), "", "L", false)

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(71, 85, 105)
	pdf.CellFormat(0, 5, tr("Printed from "+AppName+" • thecocktaildb.com"), "", 1, "C", false, 0, "")
	if shareURL != "" {
		pdf.CellFormat(0, 5, shareURL, "", 1, "C", false, 0, shareURL)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
