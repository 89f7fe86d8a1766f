package deck

import (
	"fmt"

	"github.com/pkg/errors"
)

// Size is the number of cards in a standard deck.
const Size = 52

// RanksPerSuit is the number of ranks in each suit.
const RanksPerSuit = 13

// ErrInvalidCard is returned for card ids outside 1..52.
var ErrInvalidCard = errors.New("deck: invalid card")

// Suit of a card.
type Suit int

const (
	Spades Suit = iota
	Diamonds
	Clubs
	Hearts
)

var suitNames = [...]string{"Spades", "Diamonds", "Clubs", "Hearts"}

func (s Suit) String() string {
	if s < Spades || s > Hearts {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Rank of a card within its suit, Ace first.
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = [...]string{"Ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King"}

func (r Rank) String() string {
	if r < Ace || r > King {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// rankValues maps a rank to its point value.
var rankValues = [RanksPerSuit]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10}

// valueTable maps card id to value. Index 0 is unused.
var valueTable = func() (t [Size + 1]int) {
	for c := 1; c <= Size; c++ {
		t[c] = rankValues[(c-1)%RanksPerSuit]
	}
	return
}()

// Card is a card id in 1..52.
type Card int

// Valid reports whether c names a card in the deck.
func (c Card) Valid() bool {
	return c >= 1 && c <= Size
}

// Suit returns the suit of c. The result is undefined for invalid cards.
func (c Card) Suit() Suit {
	return Suit((int(c) - 1) / RanksPerSuit)
}

// Rank returns the rank of c. The result is undefined for invalid cards.
func (c Card) Rank() Rank {
	return Rank((int(c) - 1) % RanksPerSuit)
}

// Value returns the point value of c, or 0 for an invalid card.
func (c Card) Value() int {
	if !c.Valid() {
		return 0
	}
	return valueTable[c]
}

func (c Card) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Card(%d)", int(c))
	}
	return c.Rank().String() + " of " + c.Suit().String()
}

// Value returns the point value of the card with the given id.
func Value(c Card) (int, error) {
	if !c.Valid() {
		return 0, errors.Wrapf(ErrInvalidCard, "id %d", int(c))
	}
	return valueTable[c], nil
}

// CardValues returns the point value of each rank, Ace first.
func CardValues() []int {
	out := make([]int, RanksPerSuit)
	copy(out, rankValues[:])
	return out
}

// Deck returns all 52 cards in id order.
func Deck() []Card {
	cards := make([]Card, Size)
	for i := range cards {
		cards[i] = Card(i + 1)
	}
	return cards
}

// Sum returns the total point value of cards.
func Sum(cards []Card) (int, error) {
	total := 0
	for _, c := range cards {
		v, err := Value(c)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// MinSum returns the smallest possible sum of n distinct cards.
func MinSum(n int) int {
	return boundSum(n, func(i int) int { return ascending[i] })
}

// MaxSum returns the largest possible sum of n distinct cards.
func MaxSum(n int) int {
	return boundSum(n, func(i int) int { return ascending[Size-1-i] })
}

// ascending holds every card value sorted from low to high.
var ascending = func() (a [Size]int) {
	i := 0
	for _, v := range rankValues {
		for s := 0; s < 4; s++ {
			a[i] = v
			i++
		}
	}
	// rankValues is non-decreasing, so a is already sorted.
	return
}()

func boundSum(n int, at func(int) int) int {
	if n < 0 {
		n = 0
	}
	if n > Size {
		n = Size
	}
	total := 0
	for i := 0; i < n; i++ {
		total += at(i)
	}
	return total
}
