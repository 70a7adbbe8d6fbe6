package spec

import (
	"fmt"
	"strings"
)

// MalformedHeaderError reports a document whose header block is absent or
// lacks required fields. It aborts parsing of that document.
type MalformedHeaderError struct {
	Missing []string
}

func (e *MalformedHeaderError) Error() string {
	if len(e.Missing) == 0 {
		return "no frontmatter block found in spec document"
	}
	return fmt.Sprintf("spec frontmatter missing required fields: %s", strings.Join(e.Missing, ", "))
}
