package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Merge granularities for graph nodes.
const (
	MergeFile      = "file"
	MergeModule    = "module"
	MergeDirectory = "directory"
)

// Quote-style filters for include directives.
const (
	QuoteBoth  = "both"
	QuoteAngle = "angle"
	QuoteQuote = "quote"
)

// OutputTypeDot is the default output type: raw DOT text, no renderer.
const OutputTypeDot = "dot"

// Config holds all configuration for one run. Built once from flags
// (plus optional config file and environment), read-only afterwards.
type Config struct {
	Src        string `koanf:"src"`
	Include    string `koanf:"include"`
	Exclude    string `koanf:"exclude"`
	Merge      string `koanf:"merge"`
	Groups     bool   `koanf:"groups"`
	Paths      bool   `koanf:"paths"`
	QuoteTypes string `koanf:"quotetypes"`
	Output     string `koanf:"output"`
	Type       string `koanf:"type"`
	Debug      bool   `koanf:"debug"`
}

// Flags builds the pflag set recognized by include2dot. The caller owns
// parsing so help/version can short-circuit before Load runs.
func Flags() *pflag.FlagSet {
	f := pflag.NewFlagSet("include2dot", pflag.ContinueOnError)
	f.BoolP("debug", "d", false, "display various debug info")
	f.StringP("exclude", "e", "", "comma-separated patterns of filenames to ignore")
	f.StringP("merge", "m", MergeFile, "diagram granularity: file, module or directory")
	f.BoolP("groups", "g", false, "cluster files or modules into directory groups")
	f.StringP("include", "i", "", "comma-separated list of include search paths")
	f.StringP("output", "o", "", "write the DOT graph to the given file")
	f.BoolP("paths", "p", false, "leave relative paths in displayed filenames")
	f.StringP("quotetypes", "q", QuoteBoth, "parse includes by quote style: both, angle or quote")
	f.StringP("src", "s", ".", "path to the source code to scan")
	f.StringP("type", "t", OutputTypeDot, "output file type (e.g. png or pdf); default is DOT text")
	f.BoolP("help", "h", false, "print this help")
	f.BoolP("version", "v", false, "print program version")
	return f
}

// Load loads configuration from defaults, config file, environment variables,
// and parsed flags. Priority: Flags > Env > Config File > Defaults.
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"src":        ".",
		"include":    "",
		"exclude":    "",
		"merge":      MergeFile,
		"groups":     false,
		"paths":      false,
		"quotetypes": QuoteBoth,
		"output":     "",
		"type":       OutputTypeDot,
		"debug":      false,
	}
	if err := k.Load(makeMapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Optional config file; it usually does not exist.
	_ = k.Load(file.Provider("include2dot.toml"), toml.Parser())

	// Environment variables, e.g. INCLUDE2DOT_MERGE=module.
	if err := k.Load(env.Provider("INCLUDE2DOT_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, "INCLUDE2DOT_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Merge {
	case MergeFile, MergeModule, MergeDirectory:
	default:
		return fmt.Errorf("invalid merge granularity %q: want file, module or directory", c.Merge)
	}
	switch c.QuoteTypes {
	case QuoteBoth, QuoteAngle, QuoteQuote:
	default:
		return fmt.Errorf("invalid quote type %q: want both, angle or quote", c.QuoteTypes)
	}
	return nil
}

// IncludeDirs returns the extra include search directories, in flag order.
func (c *Config) IncludeDirs() []string {
	return splitList(c.Include)
}

// ExcludePatterns returns the filename patterns dropped during collection.
func (c *Config) ExcludePatterns() []string {
	return splitList(c.Exclude)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Helper to use map as a provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
