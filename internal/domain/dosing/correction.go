package dosing

import (
	"errors"
	"fmt"
)

var (
	// ErrGlucoseOutOfRange: glucemia por encima del último bin de la tabla.
	// No se clampa al bin superior; requiere criterio clínico manual.
	ErrGlucoseOutOfRange = errors.New("glucose out of correction table range")
)

// CorrectionBin es un rango semiabierto [From, To) en mg/dL con sus unidades
// de corrección. La convención semiabierta hace que un valor exacto en el
// borde (ej. 190) resuelva al bin superior.
type CorrectionBin struct {
	FromMgDL int
	ToMgDL   int
	Units    int
}

func (b CorrectionBin) contains(glucose int) bool {
	return glucose >= b.FromMgDL && glucose < b.ToMgDL
}

// CorrectionTable es una secuencia ordenada de bins contiguos y disjuntos.
// Por debajo del primer bin no corresponde corrección (0 unidades);
// por encima del último, ErrGlucoseOutOfRange.
type CorrectionTable struct {
	bins []CorrectionBin
}

// NewCorrectionTable valida la tabla: al menos un bin, rangos bien formados,
// contiguos, y unidades no decrecientes (la escala nunca baja al subir la glucemia).
func NewCorrectionTable(bins []CorrectionBin) (CorrectionTable, error) {
	if len(bins) == 0 {
		return CorrectionTable{}, errors.New("correction table requires at least one bin")
	}
	for i, b := range bins {
		if b.FromMgDL <= 0 || b.ToMgDL <= b.FromMgDL {
			return CorrectionTable{}, fmt.Errorf("correction bin %d: malformed range [%d,%d)", i, b.FromMgDL, b.ToMgDL)
		}
		if b.Units < 0 {
			return CorrectionTable{}, fmt.Errorf("correction bin %d: negative units", i)
		}
		if i > 0 {
			prev := bins[i-1]
			if b.FromMgDL != prev.ToMgDL {
				return CorrectionTable{}, fmt.Errorf("correction bin %d: gap or overlap at %d", i, b.FromMgDL)
			}
			if b.Units < prev.Units {
				return CorrectionTable{}, fmt.Errorf("correction bin %d: units decrease across bins", i)
			}
		}
	}

	out := make([]CorrectionBin, len(bins))
	copy(out, bins)
	return CorrectionTable{bins: out}, nil
}

// DefaultCorrectionTable es la escala de corrección estándar del worksheet:
// bins de 40 mg/dL desde 150 hasta 350.
func DefaultCorrectionTable() CorrectionTable {
	t, err := NewCorrectionTable([]CorrectionBin{
		{FromMgDL: 150, ToMgDL: 190, Units: 2},
		{FromMgDL: 190, ToMgDL: 230, Units: 4},
		{FromMgDL: 230, ToMgDL: 270, Units: 6},
		{FromMgDL: 270, ToMgDL: 310, Units: 8},
		{FromMgDL: 310, ToMgDL: 350, Units: 10},
	})
	if err != nil {
		// Tabla fija definida acá mismo; si no valida es bug de programación.
		panic(err)
	}
	return t
}

// Lookup devuelve las unidades de corrección para una glucemia en mg/dL.
// Debajo del primer bin => 0, nil (sin corrección).
// En o por encima del límite superior => ErrGlucoseOutOfRange.
func (t CorrectionTable) Lookup(glucoseMgDL int) (int, error) {
	if len(t.bins) == 0 {
		return 0, errors.New("correction table not initialized")
	}
	if glucoseMgDL < t.bins[0].FromMgDL {
		return 0, nil
	}
	for _, b := range t.bins {
		if b.contains(glucoseMgDL) {
			return b.Units, nil
		}
	}
	return 0, ErrGlucoseOutOfRange
}

// UpperBound devuelve el techo exclusivo de la tabla (To del último bin).
func (t CorrectionTable) UpperBound() int {
	if len(t.bins) == 0 {
		return 0
	}
	return t.bins[len(t.bins)-1].ToMgDL
}

// Bins expone una copia de los bins (para el endpoint de consulta y el PDF).
func (t CorrectionTable) Bins() []CorrectionBin {
	out := make([]CorrectionBin, len(t.bins))
	copy(out, t.bins)
	return out
}
