package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/maritimerenewable/resis/pkg/resistance"
	"github.com/maritimerenewable/resis/pkg/types"
)

var refArgs = []string{
	"--length", "5.72", "--draught", "0.248", "--beam", "0.76",
	"--speed", "2", "--slenderness", "6.99", "--prismatic", "0.613",
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	clearEnv(t)

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun_JSON(t *testing.T) {
	out, _, err := execute(t, append(refArgs, "--format", "json")...)
	require.NoError(t, err)

	var rows []row
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)

	r := rows[0]
	assert.InEpsilon(t, 32.652369140939385, r.Total, 1e-9)
	assert.Equal(t, r.Total*2.0, r.Power.Effective)
	assert.InEpsilon(t, r.Power.Effective/resistance.DefaultEfficiency, r.Power.Installed, 1e-12)
}

func TestRun_Table(t *testing.T) {
	out, _, err := execute(t, refArgs...)
	require.NoError(t, err)
	assert.Contains(t, out, "R_T")
	assert.Contains(t, out, "32.65 N")
	assert.Contains(t, out, "65.30 W")
}

func TestRun_SweepCSV(t *testing.T) {
	out, _, err := execute(t, append(refArgs, "--speeds", "1,2,3", "--format", "csv", "--efficiency", "1")...)
	require.NoError(t, err)

	recs, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, "speed_ms", recs[0][0])
	assert.Equal(t, "2", recs[2][0])
	// efficiency 1: installed == effective
	assert.Equal(t, recs[2][11], recs[2][12])
}

func TestRun_HullFileWithOverrideYAML(t *testing.T) {
	hull := writeFile(t, "hull.yaml", refHullYAML)
	out, _, err := execute(t, "--hull", hull, "--speed", "3", "--knots", "--format", "yaml")
	require.NoError(t, err)

	var rows []row
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.InDelta(t, types.Knots(3).MetresPerSecond(), rows[0].Speed, 1e-12)
	assert.Positive(t, rows[0].Total)
	assert.Positive(t, rows[0].Power.Service)
}

func TestRun_Errors(t *testing.T) {
	t.Run("invalid_dimension", func(t *testing.T) {
		args := append([]string{}, refArgs...)
		args[5] = "0" // beam
		_, _, err := execute(t, args...)
		assert.ErrorIs(t, err, resistance.ErrInvalidDimension)
	})
	t.Run("out_of_range", func(t *testing.T) {
		_, _, err := execute(t, append(refArgs, "--speeds", "2,9")...)
		assert.ErrorIs(t, err, resistance.ErrOutOfRange)
	})
	t.Run("invalid_efficiency", func(t *testing.T) {
		_, _, err := execute(t, append(refArgs, "--efficiency", "0")...)
		assert.ErrorIs(t, err, resistance.ErrInvalidEfficiency)
	})
	t.Run("unknown_format", func(t *testing.T) {
		_, _, err := execute(t, append(refArgs, "--format", "xml")...)
		assert.Error(t, err)
	})
	t.Run("no_dimensions", func(t *testing.T) {
		_, _, err := execute(t)
		assert.ErrorIs(t, err, resistance.ErrInvalidDimension)
	})
}

func TestRun_ClampFromEnv(t *testing.T) {
	clearEnv(t)
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	args := append([]string{}, refArgs...)
	args[7] = "0.2" // speed, Fn below the table
	cmd.SetArgs(append(args, "--format", "json"))
	t.Setenv("RESIS_MODEL_EXTRAPOLATION", "clamp")

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stderr.String(), "froude number outside table")

	var rows []row
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Clamped)
}
