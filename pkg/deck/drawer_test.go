package deck_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/bft-labs/cardstats/pkg/deck"
)

func TestDrawer_DistinctCards(t *testing.T) {
	d := deck.NewDrawer(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		cards, err := d.Draw(3)
		require.NoError(t, err)
		require.Len(t, cards, 3)
		seen := map[deck.Card]bool{}
		for _, c := range cards {
			assert.True(t, c.Valid())
			assert.False(t, seen[c], "card %d drawn twice", int(c))
			seen[c] = true
		}
	}
}

func TestDrawer_SumRange(t *testing.T) {
	d := deck.NewDrawer(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		s, err := d.DrawSum(3)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s, 3)
		assert.LessOrEqual(t, s, 30)
	}
}

func TestDrawer_WholeDeck(t *testing.T) {
	d := deck.NewDrawer(rand.NewSource(3))
	s, err := d.DrawSum(deck.Size)
	require.NoError(t, err)
	assert.Equal(t, 4*85, s)
}

func TestDrawer_Deterministic(t *testing.T) {
	a := deck.NewDrawer(rand.NewSource(42))
	b := deck.NewDrawer(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		x, err := a.DrawSum(3)
		require.NoError(t, err)
		y, err := b.DrawSum(3)
		require.NoError(t, err)
		require.Equal(t, x, y)
	}
}

func TestDrawer_InvalidSize(t *testing.T) {
	d := deck.NewDrawer(rand.NewSource(1))
	for _, n := range []int{0, -3, 53} {
		_, err := d.DrawSum(n)
		assert.True(t, errors.Is(err, deck.ErrInvalidDrawSize), "n=%d", n)
		_, err = d.Draw(n)
		assert.True(t, errors.Is(err, deck.ErrInvalidDrawSize), "n=%d", n)
	}
}

func TestDrawer_MeanNearExpected(t *testing.T) {
	d := deck.NewDrawer(rand.NewSource(11))
	const n = 20000
	total := 0
	for i := 0; i < n; i++ {
		s, err := d.DrawSum(3)
		require.NoError(t, err)
		total += s
	}
	// Expected value of a 3-card sum is 3*85/13.
	assert.InDelta(t, 3*85.0/13.0, float64(total)/n, 0.15)
}
