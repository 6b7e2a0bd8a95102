package status

import (
	"fmt"
)

// FileFormatter defines how outcomes and the run summary are worded
type FileFormatter interface {
	// FormatProcessing formats the line announcing a page
	FormatProcessing(path string) string

	// FormatOutcome formats the status line for a processed page
	FormatOutcome(o Outcome) string

	// FormatSummary formats the final line of a run
	FormatSummary(s Summary, dryRun bool) string

	// FormatDetails formats the not-found and error counts, empty when both are zero
	FormatDetails(s Summary) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

func (f *DefaultFileFormatter) FormatProcessing(path string) string {
	return fmt.Sprintf("Processing: %s", path)
}

func (f *DefaultFileFormatter) FormatOutcome(o Outcome) string {
	switch o.Status {
	case StatusUpdated:
		if o.DryRun {
			return "✓ Would update"
		}
		return "✓ Updated"
	case StatusNotFound:
		return fmt.Sprintf("✗ No %s found", o.MissingTags())
	case StatusError:
		return fmt.Sprintf("❌ Error: %v", o.Err)
	case StatusUnchanged:
		return "- No changes needed"
	default:
		return "? Unknown"
	}
}

func (f *DefaultFileFormatter) FormatSummary(s Summary, dryRun bool) string {
	verb := "Updated"
	if dryRun {
		verb = "Would update"
	}
	return fmt.Sprintf("Completed! %s %d out of %d files.", verb, s.Updated, s.Total)
}

func (f *DefaultFileFormatter) FormatDetails(s Summary) string {
	if s.NotFound == 0 && s.Errors == 0 {
		return ""
	}
	return fmt.Sprintf("%d not found, %d failed", s.NotFound, s.Errors)
}
