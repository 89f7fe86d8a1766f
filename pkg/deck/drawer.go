package deck

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// ErrInvalidDrawSize is returned when a draw asks for fewer than one card or
// more cards than the deck holds.
var ErrInvalidDrawSize = errors.New("deck: invalid draw size")

// Drawer draws cards without replacement. The deck is whole again before
// every draw.
type Drawer struct {
	src rand.Source
	idx []int
}

// NewDrawer returns a Drawer backed by src. A nil src uses the global
// golang.org/x/exp/rand source.
func NewDrawer(src rand.Source) *Drawer {
	return &Drawer{src: src}
}

// Draw returns n distinct cards.
func (d *Drawer) Draw(n int) ([]Card, error) {
	if err := d.pick(n); err != nil {
		return nil, err
	}
	cards := make([]Card, n)
	for i, j := range d.idx {
		cards[i] = Card(j + 1)
	}
	return cards, nil
}

// DrawSum draws n distinct cards and returns the sum of their values.
func (d *Drawer) DrawSum(n int) (int, error) {
	if err := d.pick(n); err != nil {
		return 0, err
	}
	total := 0
	for _, j := range d.idx {
		total += valueTable[j+1]
	}
	return total, nil
}

func (d *Drawer) pick(n int) error {
	if n < 1 || n > Size {
		return errors.Wrapf(ErrInvalidDrawSize, "%d cards from %d", n, Size)
	}
	if cap(d.idx) < n {
		d.idx = make([]int, n)
	}
	d.idx = d.idx[:n]
	sampleuv.WithoutReplacement(d.idx, Size, d.src)
	return nil
}
