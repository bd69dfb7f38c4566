package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/ntt/ring"
)

func TestRun(t *testing.T) {

	var results []result

	for _, s := range ring.Strategies {

		forward, backward, err := ring.NewConfigurationPair(ring.ParametersLiteral{N: 16, Options: ring.Options{Strategy: s, Workers: 2}})
		require.NoError(t, err)

		input := make([]uint64, 16)
		for i := range input {
			input[i] = uint64(i)
		}

		res, err := run(forward, backward, input, 3)
		require.NoError(t, err)
		require.Equal(t, s, res.Strategy)
		require.Len(t, res.Times, 3)
		require.GreaterOrEqual(t, res.Mean, 0.0)

		results = append(results, res)
	}

	for _, res := range results {
		require.Equal(t, results[0].Checksum, res.Checksum)
	}

	path := filepath.Join(t.TempDir(), "chart.html")
	require.NoError(t, writeChart(path, ring.ParametersLiteral{N: 16}, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "mixed-radix")
}

func TestLiteralFromFlags(t *testing.T) {

	path := filepath.Join(t.TempDir(), "params.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"n":12,"modulus":13,"primitive_root":2,"strategy":"mixed"}`), 0o600))

	defer func(old string) { *flagParams = old }(*flagParams)
	*flagParams = path

	lit, strategies, err := literalFromFlags()
	require.NoError(t, err)
	require.Equal(t, 12, lit.N)
	require.Equal(t, uint64(13), lit.Modulus)
	require.Equal(t, []ring.Strategy{ring.MixedRadix}, strategies)

	*flagParams = ""
	defer func(old string) { *flagStrategy = old }(*flagStrategy)

	*flagStrategy = "radix2"
	_, strategies, err = literalFromFlags()
	require.NoError(t, err)
	require.Equal(t, []ring.Strategy{ring.Radix2}, strategies)

	*flagStrategy = "bluestein"
	_, _, err = literalFromFlags()
	require.ErrorIs(t, err, ring.ErrInvalidParameters)
}
