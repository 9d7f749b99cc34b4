package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Matcher:
// - "**/*.java" matches nested, root-level and absolute paths
// - Non-matching extensions are rejected
// - Ignore patterns win over include patterns
// - Invalid patterns fail to compile

func TestMatcher_Match(t *testing.T) {
	t.Parallel()

	m, err := NewMatcher([]string{"**/*.java"}, []string{"target/**"})
	require.NoError(t, err)

	tests := []struct {
		path string
		want bool
	}{
		{path: "Server.java", want: true},
		{path: "src/main/java/com/acme/Server.java", want: true},
		{path: "./src/Server.java", want: true},
		{path: "/abs/path/Server.java", want: true},
		{path: "Server.kt", want: false},
		{path: "notes/README.md", want: false},
		{path: "target/generated/Server.java", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, m.Match(tt.path))
		})
	}
}

func TestMatcher_RootPattern(t *testing.T) {
	t.Parallel()

	m, err := NewMatcher([]string{"*.java"}, nil)
	require.NoError(t, err)

	assert.True(t, m.Match("A.java"))
	assert.False(t, m.Match("src/A.java"))
}

func TestNewMatcher_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := NewMatcher([]string{"[a.java"}, nil)
	assert.Error(t, err)

	_, err = NewMatcher([]string{"**/*.java"}, []string{"[a"})
	assert.Error(t, err)
}
