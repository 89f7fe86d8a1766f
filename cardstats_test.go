package cardstats_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/cardstats"
)

func TestRun_DefaultConfig(t *testing.T) {
	cfg := cardstats.DefaultConfig()
	cfg.Seed = 1

	r, err := cardstats.Run(context.Background(), cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cardstats.WriteText(&buf, r))
	assert.Contains(t, buf.String(), "The mean of the population is 19.615384615384")
	assert.Contains(t, buf.String(), "The standard deviation of the sample means is")
}
