package scenegen

import (
	"io/fs"

	"github.com/goliatone/go-scenegen/pkg/summary"
)

// EmbeddedTemplates exposes the built-in summary templates so callers can
// reuse or extend them without importing the summary package directly.
func EmbeddedTemplates() fs.FS {
	return summary.TemplatesFS()
}
