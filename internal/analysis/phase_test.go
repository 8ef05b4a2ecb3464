package analysis

import "testing"

func floatPtr(v float64) *float64 {
	return &v
}

func TestClassifyPhase(t *testing.T) {
	tests := []struct {
		name  string
		ratio *float64
		want  string
	}{
		{"nil ratio", nil, "No Data"},
		{"deep deload", floatPtr(0.4), "Deloading"},
		{"just under maintenance", floatPtr(0.79), "Deloading"},
		{"maintenance floor", floatPtr(0.8), "Maintenance"},
		{"steady state", floatPtr(1.0), "Maintenance"},
		{"maintenance ceiling", floatPtr(1.1), "Maintenance"},
		{"just into peaking", floatPtr(1.15), "Peaking"},
		{"peaking ceiling", floatPtr(1.5), "Peaking"},
		{"over the line", floatPtr(1.51), "Overreaching"},
		{"big spike", floatPtr(2.3), "Overreaching"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPhase(tt.ratio)
			if got.Name != tt.want {
				t.Errorf("ClassifyPhase(%v) = %q, want %q", tt.ratio, got.Name, tt.want)
			}
		})
	}
}

func TestClassifyPhaseSignals(t *testing.T) {
	if got := ClassifyPhase(floatPtr(1.2)).Signal; got != "Sweet Spot" {
		t.Errorf("peaking signal = %q, want Sweet Spot", got)
	}
	if got := ClassifyPhase(floatPtr(1.6)).Signal; got != "Spike Risk" {
		t.Errorf("overreaching signal = %q, want Spike Risk", got)
	}
}
