// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
)

// EncodePretty writes a report as two-space indented JSON followed by a newline.
func EncodePretty(w io.Writer, report any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
