// internal/output/formats.go
package output

// Output format names accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
)
