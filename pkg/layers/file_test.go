package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tedjust-go/pkg/config"
)

func TestTokensFromConfig(t *testing.T) {
	cfg, err := config.LoadString(`
[layer 0]
flow: 1.1

[layer 10+]
speed: 100

[layer 15.25-15.75]
flow: 1.1
speed: 30
`)
	require.NoError(t, err)

	tokens, warnings, err := TokensFromConfig(cfg)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"L0", "F1.1", "L10+", "S100", "L15.25-15.75", "F1.1", "S30"}, tokens)

	table, problems := ParseArgs(tokens)
	assert.Empty(t, problems)
	assert.Equal(t, Tweak{Flow: 1.1, Speed: 1800}, table.Resolve(15.5))
}

func TestTokensFromConfigWarnings(t *testing.T) {
	cfg, err := config.LoadString("[printer]\nx: 1\n[layer 2]\nflow: 1.05\nsped: 20\n")
	require.NoError(t, err)

	tokens, warnings, err := TokensFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"L2", "F1.05"}, tokens)
	assert.Len(t, warnings, 2)
}

func TestTokensFromConfigErrors(t *testing.T) {
	cfg, err := config.LoadString("[layer 2]\nflow: -1\n")
	require.NoError(t, err)
	_, _, err = TokensFromConfig(cfg)
	assert.Error(t, err)

	cfg, err = config.LoadString("[printer]\nkinematics: corexy\n")
	require.NoError(t, err)
	_, _, err = TokensFromConfig(cfg)
	assert.Error(t, err)
}
