package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"puzshelf/internal/puz"
)

func decodeFixture(t *testing.T, name string) *puz.Puzzle {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "internal", "puz", "testdata", name))
	require.NoError(t, err)
	p, err := puz.Decode(data)
	require.NoError(t, err)
	return p
}

func TestWriteReport(t *testing.T) {
	p := decodeFixture(t, "rebus.puz")

	var out bytes.Buffer
	require.NoError(t, writeReport(&out, "rebus.puz", p, options{grid: true, clues: true, extensions: true}))
	text := out.String()

	assert.Contains(t, text, "title:      Rebus")
	assert.Contains(t, text, "version:    1.3 (ISO-8859-1)")
	assert.Contains(t, text, "3x3, 6 clues")
	assert.Contains(t, text, "  CAT   ---\n")
	assert.Contains(t, text, "    1. Feline (3)\n")
	assert.Contains(t, text, "  GRBS  9 bytes\n")
	assert.Contains(t, text, "rebus at 4: STAR")
	assert.Contains(t, text, "circled: 0, 8")
}

func TestWriteReport_HeaderOnly(t *testing.T) {
	p := decodeFixture(t, "sample.puz")

	var out bytes.Buffer
	require.NoError(t, writeReport(&out, "sample.puz", p, options{}))
	assert.Contains(t, out.String(), "notes:      Notes")
	assert.NotContains(t, out.String(), "across")
	assert.NotContains(t, out.String(), "extensions")
}

func TestWriteJSON(t *testing.T) {
	p := decodeFixture(t, "unicode.puz")

	var out bytes.Buffer
	require.NoError(t, writeJSON(&out, p))

	var report summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, "UTF-8", report.Encoding)
	assert.Equal(t, "\u2694\ufe0f", report.Title)
	assert.Equal(t, []string{"CAT", "ASH", "TEA"}, report.Solution)
	require.NotEmpty(t, report.Across)
	assert.Equal(t, "F\u00e9lin", report.Across[0].Text)
	assert.Empty(t, report.Extensions)
}

func TestWriteYAML(t *testing.T) {
	p := decodeFixture(t, "rebus.puz")

	var out bytes.Buffer
	require.NoError(t, writeYAML(&out, p))

	var report summary
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, "Rebus", report.Title)
	assert.Equal(t, []string{"---", "---", "---"}, report.Fill)
	require.Len(t, report.Down, 3)
	assert.Equal(t, "Taxi", report.Down[0].Text)
	assert.Equal(t, []extensionSummary{{"GRBS", 9}, {"RTBL", 8}, {"GEXT", 9}}, report.Extensions)
	assert.Contains(t, out.String(), "puzzle_type: normal")
}

func TestRun_Errors(t *testing.T) {
	assert.Error(t, run(nil))
	assert.Error(t, run([]string{"--bogus"}))
	assert.Error(t, run([]string{filepath.Join("..", "..", "internal", "puz", "testdata", "bad_extension.puz")}))
	assert.Error(t, run([]string{"--json", "--yaml", "x.puz"}))
	assert.NoError(t, run([]string{"--help"}))
}
