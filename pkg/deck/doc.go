// Package deck models a standard 52-card deck and the point value of each card.
//
// Cards are identified by the integers 1 through 52. Suits occupy
// consecutive blocks of thirteen ids in the order Spades, Diamonds, Clubs,
// Hearts, and within a suit ranks run Ace, 2..10, Jack, Queen, King.
// An Ace is worth 1 point, numbered cards their face value, and face cards
// 10 points.
//
// # Drawing
//
// A [Drawer] selects distinct cards without replacement and reports the sum
// of their values:
//
//	d := deck.NewDrawer(rand.NewSource(seed))
//	sum, err := d.DrawSum(3)
//
// A Drawer is not safe for concurrent use.
package deck
