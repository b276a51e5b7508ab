package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/phrazzld/digits/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and returns stdout, stderr and the error.
// Tests share the global color setting, so they do not run in parallel.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEvalCommand(t *testing.T) {
	testCases := []struct {
		args []string
		want string
	}{
		{args: []string{"eval", "5", "+", "5"}, want: "digit=0 carry=1"},
		{args: []string{"eval", "7", "-", "8"}, want: "digit=9 borrow=1"},
		{args: []string{"eval", "8", "multiply", "7"}, want: "digit=6 carry=5"},
		{args: []string{"eval", "9", "/", "5"}, want: "digit=1 remainder=4"},
		{args: []string{"eval", "8", "/", "4"}, want: "digit=2"},
		{args: []string{"--saturate", "eval", "42", "add", "0"}, want: "digit=9"},
	}

	for _, tc := range testCases {
		stdout, _, err := run(t, tc.args...)
		require.NoError(t, err, "args %v", tc.args)
		assert.Equal(t, tc.want, strings.TrimSpace(stdout), "args %v", tc.args)
	}
}

func TestEvalCommandJSON(t *testing.T) {
	stdout, _, err := run(t, "--json", "eval", "7", "subtract", "8")
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"operator":"subtract","digit":"9","secondary":"1","secondary_kind":"borrow"}`,
		stdout)
}

func TestEvalCommandErrors(t *testing.T) {
	_, stderr, err := run(t, "eval", "9", "/", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)
	assert.Contains(t, stderr, "Error:")
	assert.Contains(t, stderr, "division by zero")

	_, _, err = run(t, "eval", "42", "add", "0")
	assert.ErrorIs(t, err, domain.ErrDigitOutOfRange)

	_, _, err = run(t, "eval", "1", "%", "2")
	assert.ErrorIs(t, err, domain.ErrInvalidOperator)

	_, _, err = run(t, "eval", "1", "+")
	assert.Error(t, err, "eval needs three arguments")
}

func TestTableCommand(t *testing.T) {
	stdout, _, err := run(t, "table", "multiply")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "multiply (secondary: carry)", lines[0])
	assert.Equal(t, "*    0    1    2    3    4    5    6    7    8    9", lines[1])
	assert.Equal(t, "9    0    9  8,1  7,2  6,3  5,4  4,5  3,6  2,7  1,8", lines[11])
}

func TestTableCommandJSON(t *testing.T) {
	stdout, _, err := run(t, "--json", "table", "divide")
	require.NoError(t, err)

	var grid [][]map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &grid))
	require.Len(t, grid, 10)
	require.Len(t, grid[0], 10)
	assert.Equal(t, "division by zero", grid[0][0]["error"])
	assert.Equal(t, map[string]interface{}{"digit": "2", "secondary": nil}, grid[8][4]["result"])
}

func TestNamesOnlyRejectsSymbols(t *testing.T) {
	_, _, err := run(t, "--names-only", "eval", "1", "+", "2")
	assert.ErrorIs(t, err, domain.ErrInvalidOperator)

	_, stderr, err := run(t, "--names-only", "table", "/")
	assert.ErrorIs(t, err, domain.ErrInvalidOperator)
	assert.Contains(t, stderr, "symbols disabled")

	stdout, _, err := run(t, "--names-only", "eval", "1", "add", "2")
	require.NoError(t, err)
	assert.Equal(t, "digit=3", strings.TrimSpace(stdout))
}

func TestTableCommandUnknownOperator(t *testing.T) {
	_, stderr, err := run(t, "table", "power")
	assert.ErrorIs(t, err, domain.ErrInvalidOperator)
	assert.Contains(t, stderr, "invalid operator")
}
