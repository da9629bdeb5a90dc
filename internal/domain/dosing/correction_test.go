package dosing

import (
	"errors"
	"testing"
)

func TestDefaultCorrectionTable_Lookup(t *testing.T) {
	table := DefaultCorrectionTable()

	cases := []struct {
		name    string
		glucose int
		want    int
		wantErr error
	}{
		{name: "well below table", glucose: 90, want: 0},
		{name: "just below first bin", glucose: 149, want: 0},
		{name: "first bin lower edge", glucose: 150, want: 2},
		{name: "inside first bin", glucose: 170, want: 2},
		{name: "bin edge resolves up (half-open)", glucose: 190, want: 4},
		{name: "inside third bin", glucose: 250, want: 6},
		{name: "inside fourth bin", glucose: 280, want: 8},
		{name: "top bin last value", glucose: 349, want: 10},
		{name: "at upper bound", glucose: 350, wantErr: ErrGlucoseOutOfRange},
		{name: "above upper bound", glucose: 420, wantErr: ErrGlucoseOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := table.Lookup(tc.glucose)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("glucose=%d: expected %v, got err=%v", tc.glucose, tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("glucose=%d: unexpected error: %v", tc.glucose, err)
			}
			if got != tc.want {
				t.Fatalf("glucose=%d: expected %dU, got %dU", tc.glucose, tc.want, got)
			}
		})
	}
}

func TestDefaultCorrectionTable_MonotonicAcrossBins(t *testing.T) {
	table := DefaultCorrectionTable()

	prev := -1
	for g := 70; g < table.UpperBound(); g++ {
		units, err := table.Lookup(g)
		if err != nil {
			t.Fatalf("glucose=%d: unexpected error: %v", g, err)
		}
		if units < prev {
			t.Fatalf("correction decreased at glucose=%d: %dU after %dU", g, units, prev)
		}
		prev = units
	}
}

func TestNewCorrectionTable_RejectsMalformedTables(t *testing.T) {
	cases := []struct {
		name string
		bins []CorrectionBin
	}{
		{name: "empty", bins: nil},
		{
			name: "inverted range",
			bins: []CorrectionBin{{FromMgDL: 190, ToMgDL: 150, Units: 2}},
		},
		{
			name: "gap between bins",
			bins: []CorrectionBin{
				{FromMgDL: 150, ToMgDL: 190, Units: 2},
				{FromMgDL: 200, ToMgDL: 240, Units: 4},
			},
		},
		{
			name: "overlapping bins",
			bins: []CorrectionBin{
				{FromMgDL: 150, ToMgDL: 190, Units: 2},
				{FromMgDL: 180, ToMgDL: 220, Units: 4},
			},
		},
		{
			name: "units decrease",
			bins: []CorrectionBin{
				{FromMgDL: 150, ToMgDL: 190, Units: 4},
				{FromMgDL: 190, ToMgDL: 230, Units: 2},
			},
		},
		{
			name: "negative units",
			bins: []CorrectionBin{{FromMgDL: 150, ToMgDL: 190, Units: -1}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCorrectionTable(tc.bins); err == nil {
				t.Fatalf("expected error for %s table", tc.name)
			}
		})
	}
}
