// Package pdfexport renderiza documentos simples (título + secciones de
// pares label/valor + párrafos) a PDF A4.
//
// No conoce el dominio: los handlers arman el Document y este paquete solo
// formatea. Así el render queda testeable sin dosis ni pacientes de por medio.
package pdfexport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

type Row struct {
	Label string
	Value string
}

// Section es un bloque del documento: o bien filas label/valor, o bien
// texto corrido (Text). Si trae ambos, primero filas y después el texto.
type Section struct {
	Title string
	Rows  []Row
	Text  string
}

type Document struct {
	Title    string
	Caption  string
	Sections []Section
	Footer   string
}

const (
	labelColWidth = 70
	lineHeight    = 6
)

// Render produce los bytes del PDF. Falla solo si fpdf acumuló un error
// interno (fuente inválida, salida imposible); el contenido nunca falla.
func Render(doc Document) ([]byte, error) {
	if strings.TrimSpace(doc.Title) == "" {
		return nil, fmt.Errorf("pdfexport: document title required")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 9, doc.Title, "", "L", false)

	if doc.Caption != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(90, 90, 90)
		pdf.MultiCell(0, 5, doc.Caption, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(3)

	for _, sec := range doc.Sections {
		if sec.Title != "" {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 8, sec.Title, "B", 1, "L", false, 0, "")
			pdf.Ln(1)
		}

		pdf.SetFont("Helvetica", "", 10)
		for _, row := range sec.Rows {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(labelColWidth, lineHeight, row.Label, "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, lineHeight, row.Value, "", "L", false)
		}

		if sec.Text != "" {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, lineHeight, sec.Text, "", "L", false)
		}
		pdf.Ln(4)
	}

	if doc.Footer != "" {
		pdf.SetY(-25)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.MultiCell(0, 4, doc.Footer, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdfexport: render failed: %w", err)
	}
	return buf.Bytes(), nil
}
