// Package scenario loads named induction test cases from YAML fixture
// files. One file can hold many scenarios, decoded strictly so a typo'd
// field fails the test run instead of silently vanishing.
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Case is one named scenario: a labelled training set, an optional
// exclusion list, and the expected outcome of induction.
type Case struct {
	Training            [][]string `yaml:"training"`
	IgnoreFields         []int      `yaml:"ignore_fields"`
	ExpectRules          []string   `yaml:"expect_rules"`
	ExpectContradiction  bool       `yaml:"expect_contradiction"`
	ToClassify           [][]string `yaml:"to_classify"`
	ExpectClassification []string   `yaml:"expect_classification"`
}

// Load reads every file matching the glob pattern and merges their top-level
// scenario maps, failing on a duplicate name or an unknown field.
func Load(pattern string) (map[string]*Case, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	cases := map[string]*Case{}
	seenIn := map[string]string{}
	for _, file := range files {
		buf, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}

		var fileCases map[string]*Case
		dec := yaml.NewDecoder(bytes.NewReader(buf), yaml.DisallowUnknownField())
		if err := dec.Decode(&fileCases); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}

		for name, c := range fileCases {
			if existing, ok := seenIn[name]; ok {
				return nil, fmt.Errorf("duplicate scenario %q in %s and %s", name, existing, file)
			}
			seenIn[name] = file
			cases[name] = c
		}
	}
	return cases, nil
}
