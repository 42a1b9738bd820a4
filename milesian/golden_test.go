package milesian

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type goldenCase struct {
	N     string `yaml:"n"`
	Lower string `yaml:"lower"`
	Upper string `yaml:"upper"`
}

type goldenCorpus struct {
	Cases []goldenCase `yaml:"cases"`
}

// TestGoldenCorpus checks every fixture in both cases through EncodeBig, and
// through the uint64 path as well when the value fits.
func TestGoldenCorpus(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "corpus.yaml"))
	require.NoError(t, err, "read corpus")

	var corpus goldenCorpus
	require.NoError(t, yaml.Unmarshal(data, &corpus), "parse corpus")
	require.NotEmpty(t, corpus.Cases)

	for _, tc := range corpus.Cases {
		t.Run(tc.N, func(t *testing.T) {
			n, ok := new(big.Int).SetString(tc.N, 10)
			require.True(t, ok, "bad fixture value %q", tc.N)

			lower, err := EncodeBig(n, Lower)
			require.NoError(t, err)
			require.Equal(t, tc.Lower, lower, "lowercase of %s", tc.N)

			upper, err := EncodeBig(n, Upper)
			require.NoError(t, err)
			require.Equal(t, tc.Upper, upper, "uppercase of %s", tc.N)

			if n.IsUint64() {
				require.Equal(t, tc.Lower, Lowercase(n.Uint64()))
				require.Equal(t, tc.Upper, Uppercase(n.Uint64()))
			}
		})
	}
}
