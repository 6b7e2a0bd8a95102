package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 🧪 TestDefaultFileFormatter tests the outcome wording
func TestDefaultFileFormatter(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    string
	}{
		{
			name:    "updated",
			outcome: Outcome{Path: "index.html", Status: StatusUpdated},
			want:    "✓ Updated",
		},
		{
			name:    "dry_run",
			outcome: Outcome{Path: "index.html", Status: StatusUpdated, DryRun: true},
			want:    "✓ Would update",
		},
		{
			name:    "unchanged",
			outcome: Outcome{Path: "faq.html", Status: StatusUnchanged},
			want:    "- No changes needed",
		},
		{
			name:    "not_found",
			outcome: Outcome{Path: "pasta.html", Status: StatusNotFound, Missing: []string{"header"}},
			want:    "✗ No header found",
		},
		{
			name:    "not_found_several",
			outcome: Outcome{Path: "pasta.html", Status: StatusNotFound, Missing: []string{"header", "footer"}},
			want:    "✗ No header, footer found",
		},
		{
			name:    "error",
			outcome: Outcome{Path: "x.html", Status: StatusError, Err: errors.New("permission denied")},
			want:    "❌ Error: permission denied",
		},
	}

	f := NewDefaultFileFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatOutcome(tt.outcome))
		})
	}
}

func TestDefaultFileFormatter_Summary(t *testing.T) {
	f := NewDefaultFileFormatter()
	s := Summary{Total: 12, Updated: 3, Unchanged: 7, NotFound: 1, Errors: 1}

	assert.Equal(t, "Processing: recipe_details/borscht.html", f.FormatProcessing("recipe_details/borscht.html"))
	assert.Equal(t, "Completed! Updated 3 out of 12 files.", f.FormatSummary(s, false))
	assert.Equal(t, "Completed! Would update 3 out of 12 files.", f.FormatSummary(s, true))
	assert.Equal(t, "1 not found, 1 failed", f.FormatDetails(s))
	assert.Empty(t, f.FormatDetails(Summary{Total: 2, Updated: 2}))
}
