package pdfexport

import (
	"bytes"
	"testing"
)

func TestRender_ProducesPDFBytes(t *testing.T) {
	doc := Document{
		Title:   "SMART Insulin Worksheet",
		Caption: "Worksheet test - generated 2026-01-01",
		Sections: []Section{
			{
				Title: "Patient parameters",
				Rows: []Row{
					{Label: "Weight", Value: "70.0 kg"},
					{Label: "Blood glucose", Value: "250 mg/dL"},
				},
			},
			{
				Title: "Titration guidance",
				Text:  "Increase basal by 2 units every 3 days until fasting glucose is 80-130 mg/dL.",
			},
		},
		Footer: "Calculation aid, not a prescription.",
	}

	out, err := Render(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected non-empty PDF output")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", out[:8])
	}
}

func TestRender_RequiresTitle(t *testing.T) {
	if _, err := Render(Document{}); err == nil {
		t.Fatalf("expected error for document without title")
	}
}

func TestRender_DeterministicContentLength(t *testing.T) {
	doc := Document{
		Title: "SMART Insulin Worksheet",
		Sections: []Section{
			{Title: "Dosing recommendation", Rows: []Row{{Label: "Total daily dose", Value: "35.0 U"}}},
		},
	}

	first, err := Render(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Render(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// El PDF embebe timestamps, así que no comparamos bytes; el layout
	// (y por lo tanto el tamaño) sí tiene que ser estable.
	if len(first) != len(second) {
		t.Fatalf("expected stable output size, got %d then %d", len(first), len(second))
	}
}
