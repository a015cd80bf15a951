package bootstrap

import "github.com/cadbridge/fcsetup/pkg/linker"

// OutcomeKind classifies a stage result. Recovered means the stage
// failed but degraded locally (manual guidance, copy fallback) and the
// run continues; Fatal aborts the run.
type OutcomeKind int

const (
	OutcomeOk OutcomeKind = iota
	OutcomeRecovered
	OutcomeFatal
	OutcomeSkipped
)

// String returns the outcome kind name
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOk:
		return "ok"
	case OutcomeRecovered:
		return "recovered"
	case OutcomeFatal:
		return "fatal"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Outcome is the explicit per-stage result
type Outcome struct {
	Kind    OutcomeKind
	Message string
}

// Report summarizes a full bootstrap run
type Report struct {
	// InstallPath is the detected FreeCAD binary, empty when none found
	InstallPath string

	// Install is the installer stage outcome
	Install Outcome

	// Links holds the per-workbench provisioning results
	Links []linker.Result

	// AdvisoryShown records whether the addon advisory was printed
	AdvisoryShown bool
}
