package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	f := Flags()
	require.NoError(t, f.Parse(nil))

	cfg, err := Load(f)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Src)
	assert.Equal(t, MergeFile, cfg.Merge)
	assert.Equal(t, QuoteBoth, cfg.QuoteTypes)
	assert.Equal(t, OutputTypeDot, cfg.Type)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.Groups)
	assert.False(t, cfg.Paths)
	assert.Empty(t, cfg.Output)
	assert.Empty(t, cfg.IncludeDirs())
	assert.Empty(t, cfg.ExcludePatterns())
}

func TestLoadFlags(t *testing.T) {
	f := Flags()
	require.NoError(t, f.Parse([]string{
		"-d", "-g", "-p",
		"--merge", "module",
		"--quotetypes", "angle",
		"--src", "testdata/src",
		"--include", "inc1, inc2,,inc3",
		"--exclude", "*_test.cpp,vendor",
		"--output", "dep.dot",
		"--type", "png",
	}))

	cfg, err := Load(f)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Groups)
	assert.True(t, cfg.Paths)
	assert.Equal(t, MergeModule, cfg.Merge)
	assert.Equal(t, QuoteAngle, cfg.QuoteTypes)
	assert.Equal(t, "testdata/src", cfg.Src)
	assert.Equal(t, "dep.dot", cfg.Output)
	assert.Equal(t, "png", cfg.Type)
	assert.Equal(t, []string{"inc1", "inc2", "inc3"}, cfg.IncludeDirs())
	assert.Equal(t, []string{"*_test.cpp", "vendor"}, cfg.ExcludePatterns())
}

func TestLoadShorthands(t *testing.T) {
	f := Flags()
	require.NoError(t, f.Parse([]string{"-m", "directory", "-q", "quote", "-s", "src"}))

	cfg, err := Load(f)
	require.NoError(t, err)

	assert.Equal(t, MergeDirectory, cfg.Merge)
	assert.Equal(t, QuoteQuote, cfg.QuoteTypes)
	assert.Equal(t, "src", cfg.Src)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad merge", []string{"--merge", "package"}},
		{"bad quote type", []string{"--quotetypes", "system"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Flags()
			require.NoError(t, f.Parse(tt.args))

			_, err := Load(f)
			assert.Error(t, err)
		})
	}
}

func TestFlagsRejectUnknown(t *testing.T) {
	f := Flags()
	assert.Error(t, f.Parse([]string{"--no-such-flag"}))
}
