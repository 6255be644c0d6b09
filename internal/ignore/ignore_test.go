package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIgnoreFile(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, IgnoreFileName), []byte(content), 0644)
	require.NoError(t, err)
}

func TestNewWithoutIgnoreFile(t *testing.T) {
	rs, err := New(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, rs.Patterns())
	assert.False(t, rs.Matches("anything/at/all.txt"))
}

func TestNewParsesIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	writeIgnoreFile(t, dir, "# comment\n\nnode_modules\n/build\r\n\r\ndist\n")

	rs, err := New(dir)
	require.NoError(t, err)

	// Comments and blanks dropped, one leading slash stripped,
	// carriage returns trimmed.
	assert.Equal(t, []string{"node_modules", "build", "dist"}, rs.Patterns())
}

func TestNewAppendsCallerPatterns(t *testing.T) {
	dir := t.TempDir()
	writeIgnoreFile(t, dir, "node_modules\n")

	rs, err := New(dir, WithPatterns([]string{"vendor", "/raw"}))
	require.NoError(t, err)

	// Caller patterns come after the file's and are stored as given.
	assert.Equal(t, []string{"node_modules", "vendor", "/raw"}, rs.Patterns())
}

func TestMatches(t *testing.T) {
	dir := t.TempDir()
	rs, err := New(dir, WithPatterns([]string{"node_modules", "logs/debug"}))
	require.NoError(t, err)

	t.Run("exact match", func(t *testing.T) {
		assert.True(t, rs.Matches("node_modules"))
	})

	t.Run("prefix match", func(t *testing.T) {
		assert.True(t, rs.Matches("node_modules/x.js"))
		assert.True(t, rs.Matches("logs/debug/today.log"))
	})

	t.Run("regexp match anywhere", func(t *testing.T) {
		// "logs/debug" as a regexp matches mid-path too.
		assert.True(t, rs.Matches("app/logs/debug.txt"))
	})

	t.Run("no match", func(t *testing.T) {
		assert.False(t, rs.Matches("src/a.txt"))
		assert.False(t, rs.Matches("logs"))
	})

	t.Run("root never matches", func(t *testing.T) {
		assert.False(t, rs.Matches(""))
		assert.False(t, rs.Matches("."))
	})
}

func TestMatchesRegexpPattern(t *testing.T) {
	dir := t.TempDir()
	rs, err := New(dir, WithPatterns([]string{`\.min\.js$`}))
	require.NoError(t, err)

	assert.True(t, rs.Matches("assets/app.min.js"))
	assert.False(t, rs.Matches("assets/app.js"))
}

func TestInvalidRegexpFallsBackToLiteral(t *testing.T) {
	dir := t.TempDir()
	// "[build" does not compile as a regexp.
	rs, err := New(dir, WithPatterns([]string{"[build"}))
	require.NoError(t, err)

	assert.True(t, rs.Matches("[build"), "exact literal match must survive compile failure")
	assert.True(t, rs.Matches("[build/out.txt"), "prefix literal match must survive compile failure")
	assert.False(t, rs.Matches("build/out.txt"))
}

func TestLeadingSlashStrippedFromFilePatterns(t *testing.T) {
	dir := t.TempDir()
	writeIgnoreFile(t, dir, "/build\n")

	rs, err := New(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"build"}, rs.Patterns())
	assert.True(t, rs.Matches("build/output.txt"))
}

func TestMatchesOrderIndependent(t *testing.T) {
	dir := t.TempDir()
	patterns := []string{"vendor", `\.log$`, "tmp"}
	reversed := []string{"tmp", `\.log$`, "vendor"}

	forward, err := New(dir, WithPatterns(patterns))
	require.NoError(t, err)
	backward, err := New(dir, WithPatterns(reversed))
	require.NoError(t, err)

	for _, path := range []string{"vendor/lib.go", "run.log", "tmp", "src/main.go", "vendors"} {
		assert.Equal(t, forward.Matches(path), backward.Matches(path), "path %q", path)
	}
}

func TestNilRuleSetMatchesNothing(t *testing.T) {
	var rs *RuleSet
	assert.False(t, rs.Matches("anything"))
}
