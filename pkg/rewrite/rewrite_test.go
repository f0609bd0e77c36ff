// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rewrite_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/urlflip/pkg/log"
	"github.com/walteh/urlflip/pkg/rewrite"
	"github.com/walteh/urlflip/pkg/status"
	"github.com/walteh/urlflip/pkg/text"
	"gitlab.com/tozd/go/errors"
)

var productionRules = []text.ReplacementRule{
	{FromText: "http://localhost:3000", ToText: "https://prod-frontend.example"},
	{FromText: "http://localhost:8080", ToText: "https://prod-backend.example"},
}

// 🧪 createTestEnv creates a project directory and a rewriter over it
func createTestEnv(t *testing.T, files map[string]string, dryRun bool) (context.Context, string, *rewrite.Rewriter, *status.Manager, *bytes.Buffer) {
	t.Helper()

	baseDir := t.TempDir()
	for path, content := range files {
		abs := filepath.Join(baseDir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	}

	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())

	mgr := status.New(baseDir, &logger)
	console := &bytes.Buffer{}

	rw, err := rewrite.New(rewrite.Options{
		Files:    mgr,
		Reporter: mgr,
		Console:  log.NewWithZerolog(console, logger),
		DryRun:   dryRun,
	})
	require.NoError(t, err)

	return ctx, baseDir, rw, mgr, console
}

func readFile(t *testing.T, baseDir, path string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(baseDir, path))
	require.NoError(t, err)
	return string(content)
}

func TestNewRequiresFileManager(t *testing.T) {
	_, err := rewrite.New(rewrite.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file manager is required")
}

func TestRewriteEndToEnd(t *testing.T) {
	ctx, baseDir, rw, mgr, _ := createTestEnv(t, map[string]string{
		"app.properties": "api=http://localhost:8080/api\napp=http://localhost:3000/app\n",
	}, false)

	results, err := rw.Rewrite(ctx, []string{"app.properties"}, productionRules)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.True(t, results[0].Existed)
	assert.True(t, results[0].Changed)
	assert.Equal(t, 2, results[0].Replacements)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, status.StatusUpdated, results[0].Status())

	got := readFile(t, baseDir, "app.properties")
	assert.Equal(t, "api=https://prod-backend.example/api\napp=https://prod-frontend.example/app\n", got)
	assert.NotContains(t, got, "localhost")

	files, err := mgr.ListFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, status.StatusUpdated, files[0].Status)
}

func TestRewriteIdempotent(t *testing.T) {
	ctx, baseDir, rw, _, _ := createTestEnv(t, map[string]string{
		"a.java": `String url = "http://localhost:8080";`,
		"b.java": `String url = "http://localhost:3000/login";`,
	}, false)

	targets := []string{"a.java", "b.java"}

	first, err := rw.Rewrite(ctx, targets, productionRules)
	require.NoError(t, err)
	for _, r := range first {
		assert.True(t, r.Changed, "%s should change on first run", r.Path)
	}
	afterFirst := readFile(t, baseDir, "a.java") + readFile(t, baseDir, "b.java")

	second, err := rw.Rewrite(ctx, targets, productionRules)
	require.NoError(t, err)
	for _, r := range second {
		assert.False(t, r.Changed, "%s should not change on second run", r.Path)
		assert.Equal(t, status.StatusUnchanged, r.Status())
	}
	assert.Equal(t, afterFirst, readFile(t, baseDir, "a.java")+readFile(t, baseDir, "b.java"))
}

func TestRewriteUnchangedFileIsNotTouched(t *testing.T) {
	ctx, baseDir, rw, _, _ := createTestEnv(t, map[string]string{
		"stable.java": `String url = "https://prod-backend.example";`,
	}, false)

	abs := filepath.Join(baseDir, "stable.java")
	past := time.Now().Add(-48 * time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(abs, past, past))

	results, err := rw.Rewrite(ctx, []string{"stable.java"}, productionRules)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Changed)

	info, err := os.Stat(abs)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past), "mtime should not move for unchanged files")
	assert.Equal(t, `String url = "https://prod-backend.example";`, readFile(t, baseDir, "stable.java"))
}

func TestRewriteMissingFile(t *testing.T) {
	ctx, baseDir, rw, _, console := createTestEnv(t, map[string]string{
		"present.java": "http://localhost:8080",
	}, false)

	results, err := rw.Rewrite(ctx, []string{"missing.java", "present.java"}, productionRules)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "missing.java", results[0].Path)
	assert.False(t, results[0].Existed)
	assert.False(t, results[0].Changed)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, status.StatusMissing, results[0].Status())

	assert.True(t, results[1].Changed, "files after a missing one are still processed")
	assert.Equal(t, "https://prod-backend.example", readFile(t, baseDir, "present.java"))

	_, err = os.Stat(filepath.Join(baseDir, "missing.java"))
	assert.True(t, os.IsNotExist(err), "missing files are never created")
	assert.Contains(t, console.String(), "missing.java")
}

func TestRewriteReadFailureIsIsolated(t *testing.T) {
	ctx, baseDir, rw, mgr, _ := createTestEnv(t, map[string]string{
		"after.java": "http://localhost:3000",
	}, false)
	require.NoError(t, os.Mkdir(filepath.Join(baseDir, "adir.java"), 0o755))

	results, err := rw.Rewrite(ctx, []string{"adir.java", "after.java"}, productionRules)
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Error(t, results[0].Err)
	assert.True(t, errors.Is(results[0].Err, rewrite.ErrRead), "should be classified as a read failure")
	assert.False(t, errors.Is(results[0].Err, rewrite.ErrWrite))
	assert.Equal(t, status.StatusError, results[0].Status())

	assert.NoError(t, results[1].Err)
	assert.True(t, results[1].Changed)
	assert.Equal(t, "https://prod-frontend.example", readFile(t, baseDir, "after.java"))

	assert.Equal(t, 1, mgr.Counts()[status.StatusError])
	assert.Equal(t, 1, mgr.Counts()[status.StatusUpdated])
}

// failingWrites wraps a FileManager and fails writes for one path
type failingWrites struct {
	status.FileManager
	path string
}

func (f *failingWrites) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	if path == f.path {
		return errors.New("disk full")
	}
	return f.FileManager.WriteFileAtomic(ctx, path, content)
}

func TestRewriteWriteFailureIsIsolated(t *testing.T) {
	baseDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "a.java"), []byte("http://localhost:8080"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "b.java"), []byte("http://localhost:8080"), 0o644))

	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	mgr := status.New(baseDir, nil)

	rw, err := rewrite.New(rewrite.Options{
		Files:    &failingWrites{FileManager: mgr, path: "a.java"},
		Reporter: mgr,
	})
	require.NoError(t, err)

	results, err := rw.Rewrite(ctx, []string{"a.java", "b.java"}, productionRules)
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Error(t, results[0].Err)
	assert.True(t, errors.Is(results[0].Err, rewrite.ErrWrite), "should be classified as a write failure")
	assert.Contains(t, results[0].Err.Error(), "disk full")
	assert.Equal(t, "http://localhost:8080", readFile(t, baseDir, "a.java"), "failed write leaves the original")

	assert.NoError(t, results[1].Err)
	assert.Equal(t, "https://prod-backend.example", readFile(t, baseDir, "b.java"))
}

func TestRewriteLiteralMatch(t *testing.T) {
	ctx, baseDir, rw, _, _ := createTestEnv(t, map[string]string{
		"a.txt": "https://aXbYcom",
		"b.txt": "https://a.b.com/x",
	}, false)

	rules := []text.ReplacementRule{{FromText: "https://a.b.com", ToText: "http://localhost:8080"}}

	results, err := rw.Rewrite(ctx, []string{"a.txt", "b.txt"}, rules)
	require.NoError(t, err)

	assert.False(t, results[0].Changed, "dots must not act as wildcards")
	assert.Equal(t, "https://aXbYcom", readFile(t, baseDir, "a.txt"))
	assert.True(t, results[1].Changed)
	assert.Equal(t, "http://localhost:8080/x", readFile(t, baseDir, "b.txt"))
}

func TestRewriteCascadingRules(t *testing.T) {
	ctx, baseDir, rw, _, _ := createTestEnv(t, map[string]string{"a.txt": "A"}, false)

	rules := []text.ReplacementRule{
		{FromText: "A", ToText: "B"},
		{FromText: "B", ToText: "C"},
	}

	results, err := rw.Rewrite(ctx, []string{"a.txt"}, rules)
	require.NoError(t, err)
	assert.True(t, results[0].Changed)
	assert.Equal(t, "C", readFile(t, baseDir, "a.txt"))
}

func TestRewriteFileScopedRules(t *testing.T) {
	ctx, baseDir, rw, _, _ := createTestEnv(t, map[string]string{
		"src/main/resources/application.properties": "google.redirect.uri=http://localhost:3000/auth/google/callback",
		"src/main/java/Auth.java":                   `"google.redirect.uri=http://localhost:3000/auth/google/callback"`,
	}, false)

	rules := []text.ReplacementRule{
		{
			FromText:       "google.redirect.uri=http://localhost:3000/auth/google/callback",
			ToText:         "google.redirect.uri=https://fe.example/auth/google/callback",
			FileFilterGlob: "**/application.properties",
		},
	}

	results, err := rw.Rewrite(ctx, []string{
		"src/main/resources/application.properties",
		"src/main/java/Auth.java",
	}, rules)
	require.NoError(t, err)

	assert.True(t, results[0].Changed)
	assert.Equal(t, "google.redirect.uri=https://fe.example/auth/google/callback", readFile(t, baseDir, "src/main/resources/application.properties"))
	assert.False(t, results[1].Changed, "scoped rule must not apply to other files")
	assert.Equal(t, status.StatusUnchanged, results[1].Status())
}

func TestRewriteDryRun(t *testing.T) {
	ctx, baseDir, rw, _, console := createTestEnv(t, map[string]string{
		"a.java": "http://localhost:8080",
	}, true)

	results, err := rw.Rewrite(ctx, []string{"a.java"}, productionRules)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.True(t, results[0].Changed)
	assert.Equal(t, 1, results[0].Replacements)
	assert.Equal(t, status.StatusWouldUpdate, results[0].Status())
	assert.Equal(t, "http://localhost:8080", readFile(t, baseDir, "a.java"), "dry run must not write")
	assert.Contains(t, console.String(), "would update")
}

func TestRewriteInvalidRules(t *testing.T) {
	ctx, baseDir, rw, _, _ := createTestEnv(t, map[string]string{"a.txt": "abc"}, false)

	tests := []struct {
		name        string
		rules       []text.ReplacementRule
		errContains string
	}{
		{name: "no_rules", rules: nil, errContains: "at least one rule is required"},
		{name: "empty_pattern", rules: []text.ReplacementRule{{FromText: "", ToText: "x"}}, errContains: "from_text is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := rw.Rewrite(ctx, []string{"a.txt"}, tt.rules)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.Nil(t, results)
			assert.Equal(t, "abc", readFile(t, baseDir, "a.txt"))
		})
	}
}

func TestRewriteCancelled(t *testing.T) {
	ctx, baseDir, rw, _, _ := createTestEnv(t, map[string]string{
		"a.java": "http://localhost:8080",
	}, false)

	ctx, cancel := context.WithCancel(ctx)
	cancel()

	results, err := rw.Rewrite(ctx, []string{"a.java"}, productionRules)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, results)
	assert.Equal(t, "http://localhost:8080", readFile(t, baseDir, "a.java"), "unprocessed files stay untouched")
}

func TestRewriteDuplicateTargets(t *testing.T) {
	ctx, baseDir, rw, mgr, _ := createTestEnv(t, map[string]string{
		"a.java": "http://localhost:8080",
	}, false)

	results, err := rw.Rewrite(ctx, []string{"a.java", "a.java"}, productionRules)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Changed)
	assert.False(t, results[1].Changed, "second visit sees the already rewritten file")
	assert.Equal(t, "https://prod-backend.example", readFile(t, baseDir, "a.java"))

	counts := mgr.Counts()
	assert.Equal(t, 1, counts[status.StatusUpdated], "the first visit rewrote the file")
	assert.Equal(t, 0, counts[status.StatusUnchanged], "the second visit must not hide the update")
}

func TestRewriteConsoleLines(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	ctx, _, rw, _, console := createTestEnv(t, map[string]string{
		"a.java": "http://localhost:8080",
		"b.java": "nothing here",
	}, false)

	_, err := rw.Rewrite(ctx, []string{"a.java", "b.java", "c.java"}, productionRules)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(console.String()), "\n")
	require.Len(t, lines, 3, "one line per file")
	assert.Contains(t, lines[0], "updated")
	assert.Contains(t, lines[1], "unchanged")
	assert.Contains(t, lines[2], "missing")
}
