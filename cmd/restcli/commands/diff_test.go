package commands

import (
	"errors"
	"strings"
	"testing"

	"github.com/erraggy/restcli/internal/testutil"
	"github.com/erraggy/restcli/rcerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffLines(t *testing.T) {
	oldText := ".a:\n  x 1\n.b:\n  y 2\n"
	newText := ".a:\n  x 1\n.b:\n  y 3\n"

	got := DiffLines(oldText, newText)
	want := []DiffLine{
		{Op: ' ', Text: ".a:"},
		{Op: ' ', Text: "  x 1"},
		{Op: ' ', Text: ".b:"},
		{Op: '-', Text: "  y 2"},
		{Op: '+', Text: "  y 3"},
	}
	assert.Equal(t, want, got)
}

func TestDiffLines_Identical(t *testing.T) {
	for _, l := range DiffLines(testutil.SurveyOutput, testutil.SurveyOutput) {
		assert.Equal(t, byte(' '), l.Op)
	}
	assert.Empty(t, DiffLines("", ""))
}

func TestHandleDiff(t *testing.T) {
	cleanEnv(t)
	yamlPath := testutil.WriteTempFile(t, "survey.yaml", testutil.SurveyYAML)
	jsonPath := testutil.WriteTempFile(t, "survey.json", testutil.SurveyJSON)
	changed := testutil.WriteTempFile(t, "changed.yaml",
		strings.Replace(testutil.SurveyYAML, "company: Google", "company: CNCF", 1))

	t.Run("identical renderings", func(t *testing.T) {
		out, _ := captureOutput(t)
		require.NoError(t, HandleDiff([]string{"-select", "$.data.records", jsonPath, jsonPath}))
		assert.Zero(t, out.Len())
	})

	t.Run("changed attribute", func(t *testing.T) {
		out, _ := captureOutput(t)
		err := HandleDiff([]string{yamlPath, changed})
		assert.True(t, errors.Is(err, ErrDifferent))
		assert.Contains(t, out.String(), "--- "+yamlPath+"\n+++ "+changed+"\n")
		assert.Contains(t, out.String(), "-        company Google\n")
		assert.Contains(t, out.String(), "+        company CNCF\n")
		assert.Contains(t, out.String(), " .languages:\n")
	})

	t.Run("quiet suppresses output", func(t *testing.T) {
		out, _ := captureOutput(t)
		err := HandleDiff([]string{"-q", yamlPath, changed})
		assert.True(t, errors.Is(err, ErrDifferent))
		assert.Zero(t, out.Len())
	})

	t.Run("stdin against file", func(t *testing.T) {
		captureOutput(t)
		withStdin(t, testutil.SurveyYAML)
		assert.NoError(t, HandleDiff([]string{StdinFilePath, yamlPath}))
	})
}

func TestHandleDiff_Errors(t *testing.T) {
	cleanEnv(t)
	captureOutput(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"one arg", []string{"old.yaml"}},
		{"both stdin", []string{StdinFilePath, StdinFilePath}},
		{"bad indent", []string{"-indent", "0", "old.yaml", "new.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HandleDiff(tt.args)
			require.Error(t, err)
			assert.False(t, errors.Is(err, ErrDifferent))
		})
	}

	assert.NoError(t, HandleDiff([]string{"--help"}))
}

func TestHandleDiff_BadIndentIsConfigError(t *testing.T) {
	cleanEnv(t)
	captureOutput(t)

	err := HandleDiff([]string{"-indent", "0", "old.yaml", "new.yaml"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, rcerrors.ErrConfig))

	var cfgErr *rcerrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "indent", cfgErr.Option)
	assert.Equal(t, 0, cfgErr.Value)
}
