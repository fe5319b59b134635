package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qcalc/internal/calc"
	"qcalc/internal/mathexpr"
)

func TestRunLines(t *testing.T) {
	input := `2+2

1/3
5/0
:deg
sin(90)
:rad
:history
`
	var out bytes.Buffer
	session := calc.NewController(mathexpr.New())
	require.NoError(t, runLines(strings.NewReader(input), &out, session))

	want := []string{
		"4",
		"0.33333333",
		calc.ErrorMarker,
		"1",
		"2+2 = 4",
		"1/3 = 0.3333333333333333",
		"sin(90) = 1",
	}
	assert.Equal(t, want, strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"))
	assert.Equal(t, calc.Radians, session.AngleMode())
}

func TestEvaluateLine(t *testing.T) {
	session := calc.NewController(mathexpr.New())

	out, ok := evaluateLine(session, "7*6")
	assert.True(t, ok)
	assert.Equal(t, "42", out)

	out, ok = evaluateLine(session, "7*")
	assert.False(t, ok)
	assert.Equal(t, calc.ErrorMarker, out)
	assert.Equal(t, "7*", session.Input())
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeRootErr(t, args...)
	return out, err
}

func executeRootErr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEvalCommand(t *testing.T) {
	out, err := executeRoot(t, "eval", "--degrees=false", "2", "+", "2")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	out, err = executeRoot(t, "eval", "--degrees", "sin(90)")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, err = executeRoot(t, "eval", "--degrees=false", "5/0")
	assert.ErrorIs(t, err, errEvaluation)
}

func TestEvalErrorPrintedOnce(t *testing.T) {
	out, errOut, err := executeRootErr(t, "eval", "--degrees=false", "7*")
	require.ErrorIs(t, err, errEvaluation)
	assert.Empty(t, out)
	assert.Empty(t, errOut, "Execute prints the error, cobra must not")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "qcalc version "+Version+"\n", out)
}
