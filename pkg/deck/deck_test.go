package deck_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/cardstats/pkg/deck"
)

func TestValue_Table(t *testing.T) {
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10}
	for suit := 0; suit < 4; suit++ {
		for rank, v := range want {
			c := deck.Card(suit*deck.RanksPerSuit + rank + 1)
			got, err := deck.Value(c)
			require.NoError(t, err)
			assert.Equal(t, v, got, "card %d (%s)", int(c), c)
		}
	}
}

func TestValue_Invalid(t *testing.T) {
	for _, c := range []deck.Card{0, -1, 53} {
		_, err := deck.Value(c)
		assert.True(t, errors.Is(err, deck.ErrInvalidCard), "card %d", int(c))
		assert.Equal(t, 0, c.Value())
	}
}

func TestCard_SuitAndRank(t *testing.T) {
	tests := []struct {
		card deck.Card
		suit deck.Suit
		rank deck.Rank
		name string
	}{
		{1, deck.Spades, deck.Ace, "Ace of Spades"},
		{13, deck.Spades, deck.King, "King of Spades"},
		{14, deck.Diamonds, deck.Ace, "Ace of Diamonds"},
		{36, deck.Clubs, deck.Ten, "10 of Clubs"},
		{52, deck.Hearts, deck.King, "King of Hearts"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.suit, tt.card.Suit())
		assert.Equal(t, tt.rank, tt.card.Rank())
		assert.Equal(t, tt.name, tt.card.String())
	}
}

func TestCardValues_CopyIsolated(t *testing.T) {
	v := deck.CardValues()
	v[0] = 99
	assert.Equal(t, 1, deck.CardValues()[0])
}

func TestDeck(t *testing.T) {
	cards := deck.Deck()
	require.Len(t, cards, deck.Size)
	total, err := deck.Sum(cards)
	require.NoError(t, err)
	// 4 suits of 1+..+9 plus four 10-valued ranks.
	assert.Equal(t, 4*85, total)
}

func TestSum_Invalid(t *testing.T) {
	_, err := deck.Sum([]deck.Card{1, 60})
	assert.True(t, errors.Is(err, deck.ErrInvalidCard))
}

func TestMinMaxSum(t *testing.T) {
	assert.Equal(t, 3, deck.MinSum(3))
	assert.Equal(t, 30, deck.MaxSum(3))
	assert.Equal(t, 0, deck.MinSum(0))
	assert.Equal(t, 4*85, deck.MaxSum(deck.Size))
	assert.Equal(t, 4*85, deck.MinSum(deck.Size))
}
