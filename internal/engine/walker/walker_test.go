package walker_test

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/backsync/internal/adapters/ignore"
	"go.trai.ch/backsync/internal/core/domain"
	"go.trai.ch/backsync/internal/core/ports/mocks"
	"go.trai.ch/backsync/internal/engine/rules"
	"go.trai.ch/backsync/internal/engine/walker"
	"go.uber.org/mock/gomock"
)

type seen struct {
	Rel      string
	IsDir    bool
	Excluded bool
	Reason   domain.Reason
}

// buildTree creates files under root. Keys ending in "/" are directories.
func buildTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, os.MkdirAll(path, 0o750))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func newWalker(t *testing.T, globals []string, sizes map[string]string) *walker.Walker {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	classifier, err := rules.NewClassifier(globals, sizes)
	require.NoError(t, err)
	return walker.New(classifier, ignore.NewPatternCompiler(), ".gitignore", logger)
}

func collect(t *testing.T, root string, w *walker.Walker) []seen {
	t.Helper()
	var out []seen
	for e := range w.Walk(root) {
		rel, err := filepath.Rel(root, e.Path)
		require.NoError(t, err)
		out = append(out, seen{
			Rel:      filepath.ToSlash(rel),
			IsDir:    e.IsDir,
			Excluded: e.Excluded,
			Reason:   e.Reason,
		})
	}
	return out
}

func TestWalk_PreOrderSkipsIncludedDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	buildTree(t, root, map[string]string{
		"b.txt":     "b",
		"a/x.txt":   "x",
		"a/y/z.txt": "z",
		"a/empty/":  "",
	})

	got := collect(t, root, newWalker(t, nil, nil))

	assert.Equal(t, []seen{
		{Rel: "a/x.txt"},
		{Rel: "a/y/z.txt"},
		{Rel: "b.txt"},
	}, got)
}

func TestWalk_NestedIgnoreFileExcludesLeaf(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	buildTree(t, root, map[string]string{
		"a/.gitignore": "b/c.txt\n",
		"a/b/c.txt":    "c",
		"a/b/d.txt":    "d",
	})

	got := collect(t, root, newWalker(t, nil, nil))

	assert.Equal(t, []seen{
		{Rel: "a/.gitignore"},
		{Rel: "a/b/c.txt", Excluded: true, Reason: domain.ReasonIgnoreFile},
		{Rel: "a/b/d.txt"},
	}, got)
}

func TestWalk_NestedIgnoreFilePrunesDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	buildTree(t, root, map[string]string{
		"a/.gitignore": "b/\n",
		"a/b/c.txt":    "c",
		"a/b/d/e.txt":  "e",
	})

	got := collect(t, root, newWalker(t, nil, nil))

	assert.Equal(t, []seen{
		{Rel: "a/.gitignore"},
		{Rel: "a/b", IsDir: true, Excluded: true, Reason: domain.ReasonIgnoreFile},
	}, got)
}

func TestWalk_ScopesAccumulateFromRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	buildTree(t, root, map[string]string{
		".gitignore":   "*.log\n",
		"debug.log":    "d",
		"a/.gitignore": "*.tmp\n",
		"a/b/x.go":     "package x",
		"a/b/x.log":    "l",
		"a/b/x.tmp":    "t",
		"c/x.tmp":      "t",
	})

	got := collect(t, root, newWalker(t, nil, nil))

	assert.Equal(t, []seen{
		{Rel: ".gitignore"},
		{Rel: "a/.gitignore"},
		{Rel: "a/b/x.go"},
		{Rel: "a/b/x.log", Excluded: true, Reason: domain.ReasonIgnoreFile},
		{Rel: "a/b/x.tmp", Excluded: true, Reason: domain.ReasonIgnoreFile},
		{Rel: "c/x.tmp"},
		{Rel: "debug.log", Excluded: true, Reason: domain.ReasonIgnoreFile},
	}, got)
}

func TestWalk_GlobalPatternExcludesAndPrunes(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	buildTree(t, root, map[string]string{
		"cache/blob":  "b",
		"src/main.go": "package main",
	})
	global := regexp.QuoteMeta(filepath.ToSlash(root)) + "/cache"

	got := collect(t, root, newWalker(t, []string{global}, nil))

	assert.Equal(t, []seen{
		{Rel: "cache", IsDir: true, Excluded: true, Reason: domain.ReasonGlobal},
		{Rel: "src/main.go"},
	}, got)
}

func TestWalk_SizeRuleAppliesToFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	buildTree(t, root, map[string]string{
		"big.bin":   "x",
		"empty.bin": "",
		"dir.bin/a": "",
		"notes.txt": "plain",
	})

	got := collect(t, root, newWalker(t, nil, map[string]string{`.*\.bin`: ">=0"}))

	assert.Equal(t, []seen{
		{Rel: "big.bin", Excluded: true, Reason: domain.ReasonSize},
		{Rel: "dir.bin/a", Excluded: true, Reason: domain.ReasonSize},
		{Rel: "empty.bin", Excluded: true, Reason: domain.ReasonSize},
		{Rel: "notes.txt"},
	}, got)
}

func TestWalk_DanglingSymlinkIsInaccessible(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	root := t.TempDir()
	buildTree(t, root, map[string]string{"a.txt": "a"})
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "dangling")))

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().
		Warn("can't access entry", "path", filepath.Join(root, "dangling"), "reason", domain.ReasonInaccessible, "error", gomock.Any()).
		Times(1)
	classifier, err := rules.NewClassifier(nil, nil)
	require.NoError(t, err)

	got := collect(t, root, walker.New(classifier, ignore.NewPatternCompiler(), ".gitignore", logger))

	assert.Equal(t, []seen{
		{Rel: "a.txt"},
		{Rel: "dangling", Excluded: true, Reason: domain.ReasonInaccessible},
	}, got)
}

func TestWalk_SymlinkedDirectoryIsNotFollowed(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	root := t.TempDir()
	buildTree(t, root, map[string]string{"a/x.txt": "x"})
	require.NoError(t, os.Symlink(filepath.Join(root, "a"), filepath.Join(root, "link")))

	got := collect(t, root, newWalker(t, nil, nil))

	assert.Equal(t, []seen{
		{Rel: "a/x.txt"},
		{Rel: "link", IsDir: true},
	}, got)
}

func TestWalk_UnreadableDirectoryYieldsOneExcludedEntry(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	root := t.TempDir()
	buildTree(t, root, map[string]string{
		"locked/secret.txt": "s",
		"open.txt":          "o",
	})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o750) })

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().
		Warn("can't list directory", "path", locked, "reason", domain.ReasonInaccessible, "error", gomock.Any()).
		Times(1)
	classifier, err := rules.NewClassifier(nil, nil)
	require.NoError(t, err)

	got := collect(t, root, walker.New(classifier, ignore.NewPatternCompiler(), ".gitignore", logger))

	assert.Equal(t, []seen{
		{Rel: "locked", IsDir: true, Excluded: true, Reason: domain.ReasonInaccessible},
		{Rel: "open.txt"},
	}, got)
}

func TestWalk_UnreadableIgnoreFileIsNoScope(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	buildTree(t, root, map[string]string{
		".gitignore": "*.log\n",
		"app.log":    "l",
	})

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().
		Warn("ignoring unreadable ignore file", "dir", root, "ignore_file", ".gitignore", "error", domain.ErrIgnoreCompileFailed).
		Times(1)
	compiler := mocks.NewMockIgnoreCompiler(ctrl)
	compiler.EXPECT().
		Compile(filepath.Join(root, ".gitignore")).
		Return(nil, domain.ErrIgnoreCompileFailed).
		Times(1)
	classifier, err := rules.NewClassifier(nil, nil)
	require.NoError(t, err)

	got := collect(t, root, walker.New(classifier, compiler, ".gitignore", logger))

	assert.Equal(t, []seen{
		{Rel: ".gitignore"},
		{Rel: "app.log"},
	}, got)
}

func TestWalk_MissingRootYieldsNothing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	missing := filepath.Join(t.TempDir(), "missing")
	logger.EXPECT().Warn("can't list source root", "path", missing, "error", gomock.Any()).Times(1)
	classifier, err := rules.NewClassifier(nil, nil)
	require.NoError(t, err)
	w := walker.New(classifier, ignore.NewPatternCompiler(), ".gitignore", logger)

	got := slices.Collect(w.Walk(missing))
	assert.Empty(t, got)
}

func TestWalk_StopsOnBreak(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	buildTree(t, root, map[string]string{
		"a.txt":   "a",
		"b/c.txt": "c",
		"d.txt":   "d",
	})

	var visited []string
	for e := range newWalker(t, nil, nil).Walk(root) {
		visited = append(visited, filepath.Base(e.Path))
		if len(visited) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"a.txt", "c.txt"}, visited)
}

func TestWalk_EachCallUsesFreshCache(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	buildTree(t, root, map[string]string{
		".gitignore": "*.log\n",
		"a/b.txt":    "b",
		"c/d.txt":    "d",
	})

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	matcher := mocks.NewMockIgnoreMatcher(ctrl)
	matcher.EXPECT().Matches(gomock.Any(), gomock.Any()).Return(false).AnyTimes()
	compiler := mocks.NewMockIgnoreCompiler(ctrl)
	compiler.EXPECT().
		Compile(filepath.Join(root, ".gitignore")).
		Return(matcher, nil).
		Times(2)
	classifier, err := rules.NewClassifier(nil, nil)
	require.NoError(t, err)
	w := walker.New(classifier, compiler, ".gitignore", logger)

	assert.Len(t, slices.Collect(w.Walk(root)), 3)
	assert.Len(t, slices.Collect(w.Walk(root)), 3)
}
