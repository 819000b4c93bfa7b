package deck

import "fmt"

// Suit represents a card suit. The order matches the wire encoding of
// card identifiers: Clubs=0, Diamonds=1, Hearts=2, Spades=3.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the lowercase letter used in the wire form (e.g. "c")
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
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
	Ace
)

// String returns the single letter used in the wire form (e.g. "T")
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the wire representation of a card (e.g. "Tc", "As")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Value returns the numeric value of the card for comparison.
// Aces are high (14), but rank low (1) in the wheel straight.
func (c Card) Value() int {
	return int(c.Rank)
}

// ID returns the canonical identifier of the card in the 52-card
// encoding: rankIndex*4 + suitIndex, with rank index 0 for Two through
// 12 for Ace.
func (c Card) ID() int {
	return (int(c.Rank)-2)*4 + int(c.Suit)
}

// FromID returns the card for a canonical identifier in [0, 52)
func FromID(id int) (Card, error) {
	if id < 0 || id >= 52 {
		return Card{}, fmt.Errorf("card id %d out of range", id)
	}
	return Card{Suit: Suit(id % 4), Rank: Rank(id/4 + 2)}, nil
}

// Parse parses the wire representation of a card (e.g. "Tc", "As")
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	var rank Rank
	switch s[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Rank(s[0] - '0')
	case 'T':
		rank = Ten
	case 'J':
		rank = Jack
	case 'Q':
		rank = Queen
	case 'K':
		rank = King
	case 'A':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank in card %q", s)
	}

	var suit Suit
	switch s[1] {
	case 'c':
		suit = Clubs
	case 'd':
		suit = Diamonds
	case 'h':
		suit = Hearts
	case 's':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}

	return Card{Suit: suit, Rank: rank}, nil
}
