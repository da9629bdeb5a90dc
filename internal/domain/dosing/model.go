package dosing

import "math"

// Regimen define las estrategias de insulinización soportadas.
// @Enum basal, basal_plus, premixed, basal_bolus
type Regimen string

const (
	RegimenBasal      Regimen = "basal"
	RegimenBasalPlus  Regimen = "basal_plus"
	RegimenPremixed   Regimen = "premixed"
	RegimenBasalBolus Regimen = "basal_bolus"
)

// GlucoseUnit define las unidades aceptadas para glucemia.
// Internamente todo se calcula en mg/dL.
type GlucoseUnit string

const (
	UnitMgDL  GlucoseUnit = "mg/dL"
	UnitMmolL GlucoseUnit = "mmol/L"
)

// Factor de conversión estándar mg/dL <-> mmol/L.
const mgdlPerMmol = 18.0182

// PatientInput son los parámetros del paciente para un cálculo.
// Inmutable: el handler lo arma una vez y la capa de cálculo no lo toca.
type PatientInput struct {
	WeightKg     float64
	Regimen      Regimen
	Glucose      float64
	GlucoseUnit  GlucoseUnit // vacío => mg/dL
	InsulinNaive bool
}

// GlucoseMgDL normaliza la glucemia a mg/dL (entero, como la reporta el glucómetro).
func (in PatientInput) GlucoseMgDL() int {
	if in.GlucoseUnit == UnitMmolL {
		return int(math.Round(in.Glucose * mgdlPerMmol))
	}
	return int(math.Round(in.Glucose))
}

// SplitPart es una fracción fija del total diario asignada a una aplicación.
type SplitPart struct {
	Label   string
	Percent float64
}

// RegimenPlan reúne las constantes clínicas de un régimen:
// factor U/kg, reparto porcentual y texto de titulación.
// Es la fuente de verdad; no hay configuración externa de estos valores.
type RegimenPlan struct {
	Regimen         Regimen
	Name            string
	UnitsPerKg      float64 // paciente ya insulinizado
	NaiveUnitsPerKg float64 // inicio conservador en insulino-naive
	Split           []SplitPart
	Titration       string
}

// FactorFor devuelve el factor U/kg según si el paciente es insulino-naive.
func (p RegimenPlan) FactorFor(insulinNaive bool) float64 {
	if insulinNaive {
		return p.NaiveUnitsPerKg
	}
	return p.UnitsPerKg
}

// plans está ordenado de menos a más intensivo (así lo muestra el formulario).
// Los porcentajes de cada Split suman 100.
var plans = []RegimenPlan{
	{
		Regimen:         RegimenBasal,
		Name:            "Basal only",
		UnitsPerKg:      0.2,
		NaiveUnitsPerKg: 0.1,
		Split: []SplitPart{
			{Label: "Basal (bedtime)", Percent: 100},
		},
		Titration: "Increase basal by 2 units every 3 days until fasting glucose is 80-130 mg/dL. Reduce by 10-20% if fasting glucose falls below 80 mg/dL.",
	},
	{
		Regimen:         RegimenBasalPlus,
		Name:            "Basal plus",
		UnitsPerKg:      0.3,
		NaiveUnitsPerKg: 0.2,
		Split: []SplitPart{
			{Label: "Basal (bedtime)", Percent: 70},
			{Label: "Bolus (main meal)", Percent: 30},
		},
		Titration: "Titrate basal against fasting glucose as in basal-only. Adjust the main-meal bolus by 1-2 units every 3 days against the 2-hour post-meal reading (target below 180 mg/dL).",
	},
	{
		Regimen:         RegimenPremixed,
		Name:            "Premixed twice daily",
		UnitsPerKg:      0.5,
		NaiveUnitsPerKg: 0.3,
		Split: []SplitPart{
			{Label: "Pre-breakfast", Percent: 60},
			{Label: "Pre-dinner", Percent: 40},
		},
		Titration: "Adjust the pre-breakfast dose against the pre-dinner glucose and the pre-dinner dose against the fasting glucose, 2 units every 3 days. Do not adjust both doses on the same day.",
	},
	{
		Regimen:         RegimenBasalBolus,
		Name:            "Basal-bolus",
		UnitsPerKg:      0.5,
		NaiveUnitsPerKg: 0.3,
		Split: []SplitPart{
			{Label: "Basal (bedtime)", Percent: 50},
			{Label: "Bolus (breakfast)", Percent: 50.0 / 3},
			{Label: "Bolus (lunch)", Percent: 50.0 / 3},
			{Label: "Bolus (dinner)", Percent: 50.0 / 3},
		},
		Titration: "Titrate basal against fasting glucose; titrate each meal bolus by 1-2 units every 3 days against the next pre-meal or 2-hour post-meal reading. Review the full regimen weekly.",
	},
}

// Plans devuelve todos los regímenes soportados (copia, para no exponer el slice interno).
func Plans() []RegimenPlan {
	out := make([]RegimenPlan, len(plans))
	copy(out, plans)
	return out
}

// PlanFor busca el plan de un régimen. ok=false si el régimen no existe.
func PlanFor(r Regimen) (RegimenPlan, bool) {
	for _, p := range plans {
		if p.Regimen == r {
			return p, true
		}
	}
	return RegimenPlan{}, false
}

// DoseComponent es una línea del reparto calculado: etiqueta, % y unidades.
type DoseComponent struct {
	Label   string
	Percent float64
	Units   float64
}

// Recommendation es la salida del cálculo. Valor inmutable por request;
// no hay estado compartido entre invocaciones.
type Recommendation struct {
	Regimen         Regimen
	RegimenName     string
	UnitsPerKg      float64
	TotalDailyUnits float64
	Components      []DoseComponent
	GlucoseMgDL     int
	CorrectionUnits int
	Titration       string
	Warning         string
}
