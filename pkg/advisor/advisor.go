// Package advisor prints the post-setup guidance: recommended companion
// addons and next-step instructions. Pure output; no filesystem or
// network access.
package advisor

import (
	_ "embed"

	"github.com/cadbridge/fcsetup/pkg/config"
	"github.com/cadbridge/fcsetup/pkg/ui"
)

//go:embed next_steps.md
var nextSteps string

// Advisor emits the static addon advisory
type Advisor struct {
	addons []config.Addon
}

// New creates an Advisor for the configured addon list
func New(addons []config.Addon) *Advisor {
	return &Advisor{addons: addons}
}

// Print writes the recommended addons and next steps to the reporter
func (a *Advisor) Print(r *ui.Reporter) {
	r.Blank()
	r.Title("Recommended addons")
	r.Plain("Install these through FreeCAD's Addon Manager (Tools > Addon Manager):")
	for _, addon := range a.addons {
		r.Infof("%s — %s", addon.Name, addon.Description)
	}
	r.Blank()
	r.Markdown(nextSteps)
}
