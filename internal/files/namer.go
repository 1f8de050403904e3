package files

import (
	"fmt"
	"strings"
	"time"
)

// Namer builds stored filenames of the form {epochMillis}-{originalName}
type Namer struct {
	clock func() time.Time
}

// NewNamer creates a namer reading the given clock
func NewNamer(clock func() time.Time) *Namer {
	if clock == nil {
		clock = time.Now
	}
	return &Namer{clock: clock}
}

// Name returns the stored filename for an original filename
func (n *Namer) Name(original string) string {
	return fmt.Sprintf("%d-%s", n.clock().UnixMilli(), baseName(original))
}

// baseName drops any directory part so a crafted name cannot leave the
// storage directory.
func baseName(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if strings.Trim(name, ".") == "" {
		return "upload"
	}
	return name
}
