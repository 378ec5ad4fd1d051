package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectiveSlug(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"simple", "Home Renovation", "home_renovation"},
		{"trailing whitespace", "Home Renovation ", "home_renovation"},
		{"leading whitespace", "  home renovation", "home_renovation"},
		{"forward slash", "home/renovation", "home_renovation"},
		{"backslash", `home\renovation`, "home_renovation"},
		{"mixed case", "HOME RENOVATION", "home_renovation"},
		{"multiple words", "Q4 Planning Review", "q4_planning_review"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectiveSlug(tt.label))
		})
	}
}

// Labels that differ only by case, surrounding whitespace, or separator
// choice must collapse onto one objective identifier.
func TestObjectiveIRIDeterminism(t *testing.T) {
	variants := []string{
		"Home Renovation",
		"home renovation",
		" Home Renovation ",
		"Home/Renovation",
		`Home\Renovation`,
	}

	want := ObjectiveIRI(variants[0])
	assert.Equal(t, "urn:objective:home_renovation", string(want))
	for _, v := range variants[1:] {
		assert.Equal(t, want, ObjectiveIRI(v), "variant %q", v)
	}
}
