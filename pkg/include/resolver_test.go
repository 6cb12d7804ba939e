package include

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}
}

func TestResolveRelativeToIncluder(t *testing.T) {
	chdir(t, t.TempDir())
	writeFiles(t, "src/a.cpp", "src/b.h")

	r := NewResolver(nil)
	resolved, ok := r.Resolve("b.h", "src/a.cpp")
	require.True(t, ok)
	assert.Equal(t, "src/b.h", resolved)
}

func TestResolveIncludeDirFallback(t *testing.T) {
	chdir(t, t.TempDir())
	writeFiles(t, "src/a.cpp", "first/x.h", "second/x.h")

	r := NewResolver([]string{"first", "second"})
	resolved, ok := r.Resolve("x.h", "src/a.cpp")
	require.True(t, ok)
	assert.Equal(t, "first/x.h", resolved)
}

func TestResolveIncluderDirWinsOverIncludeDirs(t *testing.T) {
	// Deterministic order: the copy next to the including file wins even
	// when an include dir also carries the header.
	chdir(t, t.TempDir())
	writeFiles(t, "src/a.cpp", "src/x.h", "inc/x.h")

	r := NewResolver([]string{"inc"})
	resolved, ok := r.Resolve("x.h", "src/a.cpp")
	require.True(t, ok)
	assert.Equal(t, "src/x.h", resolved)
}

func TestResolveWorkingDirFallback(t *testing.T) {
	chdir(t, t.TempDir())
	writeFiles(t, "src/a.cpp", "shared/z.h")

	r := NewResolver(nil)
	resolved, ok := r.Resolve("shared/z.h", "src/a.cpp")
	require.True(t, ok)
	assert.Equal(t, "shared/z.h", resolved)
}

func TestResolveParentTraversal(t *testing.T) {
	chdir(t, t.TempDir())
	writeFiles(t, "src/core/a.cpp", "src/util/b.h")

	r := NewResolver(nil)
	resolved, ok := r.Resolve("../util/b.h", "src/core/a.cpp")
	require.True(t, ok)
	assert.Equal(t, "src/util/b.h", resolved)
}

func TestResolveNotFound(t *testing.T) {
	chdir(t, t.TempDir())
	writeFiles(t, "src/a.cpp")

	r := NewResolver([]string{"inc"})
	_, ok := r.Resolve("missing.h", "src/a.cpp")
	assert.False(t, ok)
}

func TestTidyPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"src/core/../util/b.h", "src/util/b.h"},
		{"a/b/c.h", "a/b/c.h"},
		{"x/../y/../z.h", "z.h"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TidyPath(tt.in), "TidyPath(%q)", tt.in)
	}
}

// chdir is a stand-in for testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
