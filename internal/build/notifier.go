package build

import (
	"git.home.luguber.info/inful/sitegen/internal/document"
	"git.home.luguber.info/inful/sitegen/internal/hooks"
)

// busNotifier bridges document lifecycle notifications onto the hook
// bus, stamping them with the current build ID.
type busNotifier struct {
	bus       *hooks.Bus
	buildID   string
	outputDir string
}

func (n *busNotifier) PostInit(r *document.Record) {
	_ = n.bus.Publish(hooks.DocumentInitialized{
		BuildID:    n.buildID,
		Path:       r.Path(),
		Collection: r.Collection(),
	})
}

func (n *busNotifier) PostWrite(r *document.Record) {
	url, _ := r.URL()
	dest, _ := r.Destination(n.outputDir)
	_ = n.bus.Publish(hooks.DocumentWritten{
		BuildID:     n.buildID,
		Path:        r.Path(),
		Collection:  r.Collection(),
		URL:         url,
		Destination: dest,
	})
}
