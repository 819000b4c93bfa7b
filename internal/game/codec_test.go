package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headsUpState() map[string]any {
	return map[string]any{
		"previousMove":      "RAISE",
		"previousMoveAllIn": false,
		"numberOfPlayers":   2,
		"whoseMove":         "P0",
		"currentBetter":     "P1",
		"currentRound":      "PRE_FLOP",
		"playersInHand":     []any{"P0", "P1"},
		"board":             []any{4, 5, 6, 7, 8},
		"holeCards":         []any{[]any{0, 1}, []any{2, 3}},
		"playerBets":        []any{100, 200},
		"playerChips":       []any{1900, 1800},
		"pots": []any{map[string]any{
			"chips":         300,
			"currentPotBet": 200,
			"playersInPot":  []any{"P0", "P1"},
			"playerBets":    []any{100, 200},
		}},
		"C0": "As",
		"C1": "Ks",
	}
}

func TestDecodeState(t *testing.T) {
	t.Parallel()

	s, err := DecodeState(headsUpState())
	require.NoError(t, err)

	assert.Equal(t, Raise, s.PreviousMove)
	assert.False(t, s.PreviousMoveAllIn)
	assert.Equal(t, 2, s.NumberOfPlayers)
	assert.Equal(t, 0, s.WhoseMove)
	assert.Equal(t, 1, s.CurrentBetter)
	assert.Equal(t, PreFlop, s.CurrentRound)
	assert.Equal(t, []int{0, 1}, s.PlayersInHand)
	assert.Equal(t, []int{4, 5, 6, 7, 8}, s.Board)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}}, s.HoleCards)
	assert.Equal(t, []int{100, 200}, s.PlayerBets)
	assert.Equal(t, []int{1900, 1800}, s.PlayerChips)

	require.Len(t, s.Pots, 1)
	assert.Equal(t, 300, s.Pots[0].Chips)
	assert.Equal(t, 200, s.Pots[0].CurrentPotBet)
	assert.Equal(t, []int{0, 1}, s.Pots[0].PlayersInPot)
	assert.Equal(t, 200, s.RequiredBet())

	// Disclosed card slots decode, hidden ones stay nil
	require.NotNil(t, s.Cards[0])
	assert.Equal(t, "As", s.Cards[0].String())
	assert.Nil(t, s.Cards[10])
}

func TestDecodeStateJSONNumbers(t *testing.T) {
	t.Parallel()

	// Values arriving from JSON are float64 until normalized
	state := headsUpState()
	state["numberOfPlayers"] = float64(2)
	state["playerBets"] = []any{float64(100), float64(200)}

	s, err := DecodeState(state)
	require.NoError(t, err)
	assert.Equal(t, 2, s.NumberOfPlayers)
	assert.Equal(t, []int{100, 200}, s.PlayerBets)
}

func TestDecodeStateErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing round", func(m map[string]any) { delete(m, "currentRound") }},
		{"bad move", func(m map[string]any) { m["previousMove"] = "LIMP" }},
		{"seat out of range", func(m map[string]any) { m["whoseMove"] = "P7" }},
		{"short board", func(m map[string]any) { m["board"] = []any{1, 2, 3} }},
		{"no pots", func(m map[string]any) { m["pots"] = []any{} }},
		{"bad card", func(m map[string]any) { m["C0"] = "Zz" }},
		{"wrong bet count", func(m map[string]any) { m["playerBets"] = []any{100} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			state := headsUpState()
			tc.mutate(state)
			_, err := DecodeState(state)
			assert.Error(t, err)
		})
	}
}
