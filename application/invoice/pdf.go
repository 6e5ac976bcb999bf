package invoice

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

// WritePDF draws the Document with the core Helvetica font. Text is translated to cp1252
// so bullets and Indonesian text survive the core font encoding.
func WritePDF(doc Document, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(doc.IssuedAt)
	pdf.SetModificationDate(doc.IssuedAt)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("fw-development", false)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, el := range page.Elements {
			switch el.Kind {
			case ElementText:
				style := ""
				if el.Bold {
					style = "B"
				}
				pdf.SetFont(fontFamily, style, el.FontSize)
				pdf.SetTextColor(el.Color.R, el.Color.G, el.Color.B)
				pdf.Text(el.X, el.Y, tr(el.Text))
			case ElementRect:
				if el.Fill {
					pdf.SetFillColor(el.Color.R, el.Color.G, el.Color.B)
					pdf.Rect(el.X, el.Y, el.W, el.H, "F")
					continue
				}
				pdf.SetDrawColor(el.Color.R, el.Color.G, el.Color.B)
				pdf.Rect(el.X, el.Y, el.W, el.H, "D")
			case ElementLine:
				pdf.SetDrawColor(el.Color.R, el.Color.G, el.Color.B)
				pdf.Line(el.X, el.Y, el.X2, el.Y2)
			default:
				return fmt.Errorf("invoice: unknown element kind %d", el.Kind)
			}
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("invoice: render pdf: %w", err)
	}
	return pdf.Output(w)
}
