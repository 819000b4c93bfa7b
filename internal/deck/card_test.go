package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		card Card
		id   int
		str  string
	}{
		{NewCard(Clubs, Two), 0, "2c"},
		{NewCard(Diamonds, Two), 1, "2d"},
		{NewCard(Spades, Two), 3, "2s"},
		{NewCard(Clubs, Three), 4, "3c"},
		{NewCard(Clubs, Ten), 32, "Tc"},
		{NewCard(Spades, Ace), 51, "As"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.id, tt.card.ID(), "ID of %s", tt.str)
		assert.Equal(t, tt.str, tt.card.String())

		back, err := FromID(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.card, back)
	}
}

func TestCardIDRoundTrip(t *testing.T) {
	t.Parallel()

	for id := 0; id < Size; id++ {
		card, err := FromID(id)
		require.NoError(t, err)
		assert.Equal(t, id, card.ID())

		parsed, err := Parse(card.String())
		require.NoError(t, err)
		assert.Equal(t, card, parsed)
	}

	_, err := FromID(52)
	assert.Error(t, err)
	_, err = FromID(-1)
	assert.Error(t, err)
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "T", "Tcc", "1c", "Tx", "tc"} {
		_, err := Parse(s)
		assert.Error(t, err, "Parse(%q)", s)
	}
}

func TestCanonicalOrder(t *testing.T) {
	t.Parallel()

	cards := Canonical()
	require.Len(t, cards, Size)

	assert.Equal(t, "2c", cards[0].String())
	assert.Equal(t, "2d", cards[1].String())
	assert.Equal(t, "As", cards[51].String())

	for i, c := range cards {
		assert.Equal(t, i, c.ID())
	}
}
