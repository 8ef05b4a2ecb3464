package analysis

// Phase is a discrete training-phase classification of a combined
// acute:chronic ratio.
type Phase struct {
	Name   string
	Signal string // short qualifier shown alongside the ratio
}

// ClassifyPhase maps a combined ACWR to a phase. The thresholds here
// are the single source of truth; display layers must not re-derive
// them.
//
//	ratio > 1.5        Overreaching
//	1.1 < ratio <= 1.5 Peaking
//	0.8 <= ratio <= 1.1 Maintenance
//	ratio < 0.8        Deloading
func ClassifyPhase(ratio *float64) Phase {
	switch {
	case ratio == nil:
		return Phase{Name: "No Data", Signal: "Log some sessions"}
	case *ratio > 1.5:
		return Phase{Name: "Overreaching", Signal: "Spike Risk"}
	case *ratio > 1.1:
		return Phase{Name: "Peaking", Signal: "Sweet Spot"}
	case *ratio >= 0.8:
		return Phase{Name: "Maintenance", Signal: "Stable"}
	default:
		return Phase{Name: "Deloading", Signal: "Under-loading"}
	}
}
