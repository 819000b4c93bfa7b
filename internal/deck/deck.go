package deck

// Size is the number of cards in a standard deck
const Size = 52

// Canonical returns all 52 cards in canonical identifier order, i.e.
// 2c, 2d, 2h, 2s, 3c, ... As. Index i holds the card with ID i.
func Canonical() []Card {
	cards := make([]Card, 0, Size)
	for rank := Two; rank <= Ace; rank++ {
		for suit := Clubs; suit <= Spades; suit++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}
