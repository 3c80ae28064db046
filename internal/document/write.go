package document

import (
	"os"
	"path/filepath"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// Write persists RawOutput at the document's destination under
// destBaseDir, creating directories as needed, and fires the post-write
// hook. Write-phase failures are never suppressed.
func (r *Record) Write(destBaseDir string) error {
	dest, err := r.Destination(destBaseDir)
	if err != nil {
		return sgerrors.WriteFailed(destBaseDir, err)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return sgerrors.WriteFailed(dest, err)
	}
	if err := os.WriteFile(dest, r.RawOutput, 0o644); err != nil {
		return sgerrors.WriteFailed(dest, err)
	}
	if r.ctx.Hooks != nil {
		r.ctx.Hooks.PostWrite(r)
	}
	return nil
}
