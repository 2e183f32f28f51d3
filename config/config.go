// Package config loads the optional YAML run configuration accepted by the
// classify command's --config flag: a small typed struct decoded with
// KnownFields(true) so a typo'd key fails loudly instead of being ignored.
package config

import (
	"bytes"
	"os"

	"github.com/filterdef/filterdef/errs"
	"gopkg.in/yaml.v3"
)

// RunConfig holds classify defaults an operator would otherwise have to
// repeat on every invocation.
type RunConfig struct {
	IgnoreFields []int  `yaml:"ignore_fields"`
	LogLevel     string `yaml:"log_level"`
}

// ParseFile loads a RunConfig from path. An empty path returns the zero
// value without error, matching the CLI's optional --config flag.
func ParseFile(path string) (RunConfig, error) {
	if path == "" {
		return RunConfig{}, nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, errs.InputWrap(err, "reading config %s", path)
	}
	return ParseBytes(buf)
}

// ParseBytes decodes a RunConfig from raw YAML.
func ParseBytes(buf []byte) (RunConfig, error) {
	if len(bytes.TrimSpace(buf)) == 0 {
		return RunConfig{}, nil
	}
	var cfg RunConfig
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return RunConfig{}, errs.InputWrap(err, "parsing config")
	}
	return cfg, nil
}

// MergeIgnoreFields appends cfg's IgnoreFields ahead of any fields given
// explicitly on the command line, so flags can extend but never silently
// replace a configured default.
func MergeIgnoreFields(cfg RunConfig, cliFields []int) []int {
	if len(cfg.IgnoreFields) == 0 {
		return cliFields
	}
	merged := make([]int, 0, len(cfg.IgnoreFields)+len(cliFields))
	merged = append(merged, cfg.IgnoreFields...)
	merged = append(merged, cliFields...)
	return merged
}
