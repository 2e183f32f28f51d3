package filterdef

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLines(t *testing.T, path string, lines ...string) {
	t.Helper()
	var content string
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(data)
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i, c := range s {
		if c == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return lines
}

func TestRunClassifyEndToEnd(t *testing.T) {
	dir := t.TempDir()
	training := filepath.Join(dir, "training.csv")
	toClassify := filepath.Join(dir, "to_classify.csv")
	output := filepath.Join(dir, "output.csv")

	writeLines(t, training,
		"value1,value2,true",
		"value1,value3,false",
	)
	writeLines(t, toClassify,
		"value1,value3",
		"value1,value9",
	)

	var explained string
	err := RunClassify(ClassifyOptions{
		TrainingFile:   training,
		ToClassifyFile: toClassify,
		OutputFile:     output,
		Explain:        func(s string) { explained = s },
	})
	require.NoError(t, err)
	assert.NotEmpty(t, explained)

	got := readLines(t, output)
	require.Len(t, got, 2)
	assert.Equal(t, "value1,value3,false", got[0])
	assert.Equal(t, "value1,value9,true", got[1])
}

func TestRunSliceSplitsAndFailsOnShortInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	sliceOut := filepath.Join(dir, "slice.csv")
	remainderOut := filepath.Join(dir, "remainder.csv")

	writeLines(t, in, "a,1", "b,2", "c,3", "d,4")

	require.NoError(t, RunSlice(in, sliceOut, remainderOut, 2, 2))
	assert.Equal(t, []string{"b,2", "c,3"}, readLines(t, sliceOut))
	assert.Equal(t, []string{"a,1", "d,4"}, readLines(t, remainderOut))

	err := RunSlice(in, sliceOut, remainderOut, 10, 1)
	assert.Error(t, err)
}

func TestRunStripRemovesLastField(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	writeLines(t, in, "a,1,true", "b,2,false")

	require.NoError(t, RunStrip(in, out))
	assert.Equal(t, []string{"a,1", "b,2"}, readLines(t, out))
}

func TestRunCompareReportsMismatchesOnly(t *testing.T) {
	dir := t.TempDir()
	baseline := filepath.Join(dir, "baseline.csv")
	results := filepath.Join(dir, "results.csv")
	mismatches := filepath.Join(dir, "mismatches.csv")

	writeLines(t, baseline, "a,1,true", "b,2,false")
	writeLines(t, results, "a,1,true", "b,2,true")

	require.NoError(t, RunCompare(baseline, results, mismatches))
	got := readLines(t, mismatches)
	require.Len(t, got, 1)
	assert.Equal(t, "1,false,true", got[0])
}

func TestRunCompareRejectsBodyMismatch(t *testing.T) {
	dir := t.TempDir()
	baseline := filepath.Join(dir, "baseline.csv")
	results := filepath.Join(dir, "results.csv")
	mismatches := filepath.Join(dir, "mismatches.csv")

	writeLines(t, baseline, "a,1,true")
	writeLines(t, results, "a,2,true")

	err := RunCompare(baseline, results, mismatches)
	assert.Error(t, err)
}
