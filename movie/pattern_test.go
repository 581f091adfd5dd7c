package movie_test

import (
	"regexp"
	"strings"
	"testing"

	"moviecatalog/movie"

	"github.com/stretchr/testify/assert"
)

func TestTitlePattern(t *testing.T) {
	tests := []struct {
		name  string
		title string
		value string
		match bool
	}{
		{"substring", "heat", "Heat", true},
		{"not a substring", "heat", "Righteous Kill", false},
		{"empty matches all", "", "Scarface", true},
		{"metacharacters are literal", "Mr. & Mrs.", "Mr. & Mrs. Smith", true},
		{"dot does not match any char", "Mr.", "Mrs Doubtfire", false},
		{"parentheses are literal", "(500)", "(500) Days of Summer", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile("(?i)" + movie.TitlePattern(tt.title))
			assert.Equal(t, tt.match, re.MatchString(tt.value))
		})
	}
}

func TestCandidatePattern(t *testing.T) {
	re := regexp.MustCompile("(?i)" + movie.CandidatePattern("Robert De Niro", "Al Pacino"))

	assert.True(t, re.MatchString(strings.Join([]string{"Robert De Niro", "Al Pacino"}, movie.CastSeparator)))
	assert.True(t, re.MatchString(strings.Join([]string{"Al Pacino", "Val Kilmer", "Robert De Niro"}, movie.CastSeparator)))
	assert.True(t, re.MatchString("al pacino, robert de niro"))
	assert.False(t, re.MatchString("Al Pacino"))
	assert.Equal(t, `Al.*Robert|Robert.*Al`, movie.CandidatePattern("Al", "Robert"))
}
