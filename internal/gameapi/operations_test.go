package gameapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualNormalizesSetValues(t *testing.T) {
	t.Parallel()

	// engine-built typed values vs JSON-decoded values
	a := Set{Key: "playerBets", Value: []int{0, 100, 200}}
	b := Set{Key: "playerBets", Value: []any{float64(0), float64(100), float64(200)}}
	assert.True(t, Equal(a, b))

	c := Set{Key: "playerBets", Value: []int{0, 100, 300}}
	assert.False(t, Equal(a, c))

	d := Set{Key: "playersInHand", Value: []string{"P0", "P1"}}
	e := Set{Key: "playersInHand", Value: []any{"P0", "P1"}}
	assert.True(t, Equal(d, e))
}

func TestEqualDistinguishesOperationTypes(t *testing.T) {
	t.Parallel()

	assert.False(t, Equal(SetTurn{PlayerID: 1}, EndGame{WinnerID: 1}))
	assert.False(t, Equal(Set{Key: "k", Value: 1}, SetTurn{PlayerID: 1}))
}

func TestEqualVisibility(t *testing.T) {
	t.Parallel()

	all := SetVisibility{Key: "C4"}
	none := SetVisibility{Key: "C4", VisibleTo: []int{}}
	one := SetVisibility{Key: "C4", VisibleTo: []int{42}}

	assert.True(t, Equal(all, SetVisibility{Key: "C4"}))
	assert.False(t, Equal(all, none), "visible-to-all must differ from visible-to-none")
	assert.False(t, Equal(none, one))
	assert.False(t, Equal(one, SetVisibility{Key: "C5", VisibleTo: []int{42}}))
}

func TestEqualLists(t *testing.T) {
	t.Parallel()

	a := []Operation{SetTurn{PlayerID: 1}, Set{Key: "previousMove", Value: "FOLD"}}
	b := []Operation{SetTurn{PlayerID: 1}, Set{Key: "previousMove", Value: "FOLD"}}
	assert.True(t, EqualLists(a, b))

	// order matters
	c := []Operation{Set{Key: "previousMove", Value: "FOLD"}, SetTurn{PlayerID: 1}}
	assert.False(t, EqualLists(a, c))

	// count matters
	assert.False(t, EqualLists(a, a[:1]))
}

func TestDiff(t *testing.T) {
	t.Parallel()

	a := []Operation{SetTurn{PlayerID: 1}}
	b := []Operation{SetTurn{PlayerID: 2}}
	assert.Contains(t, Diff(a, b), "operation 0")
	assert.Contains(t, Diff(a, a[:0]), "operation count")
	assert.Empty(t, Diff(a, a))
}

func TestOperationsJSONRoundTrip(t *testing.T) {
	t.Parallel()

	ops := []Operation{
		SetTurn{PlayerID: 84},
		Set{Key: "previousMove", Value: "CALL"},
		Set{Key: "previousMoveAllIn", Value: false},
		Set{Key: "playerBets", Value: []any{0, 400, 400}},
		Set{Key: "pots", Value: []any{map[string]any{
			"chips":         300,
			"currentPotBet": 200,
			"playersInPot":  []any{"P0", "P1"},
			"playerBets":    []any{100, 200},
		}}},
		SetVisibility{Key: "C8"},
		SetVisibility{Key: "C9", VisibleTo: []int{}},
		SetVisibility{Key: "C0", VisibleTo: []int{84}},
		Shuffle{Keys: []string{"C0", "C1"}},
		AttemptChangeTokens{
			Debits:  map[int]int{84: -2000},
			Credits: map[int]int{84: 2000},
		},
		EndGame{WinnerID: 85},
	}

	data, err := MarshalOperations(ops)
	require.NoError(t, err)

	decoded, err := UnmarshalOperations(data)
	require.NoError(t, err)
	require.Len(t, decoded, len(ops))

	assert.True(t, EqualLists(ops, decoded), Diff(ops, decoded))
}

func TestUnmarshalOperationsRejectsUnknownType(t *testing.T) {
	t.Parallel()

	_, err := UnmarshalOperations([]byte(`[{"type":"reboot"}]`))
	assert.Error(t, err)
}

func TestVerifyMoveJSONRoundTrip(t *testing.T) {
	t.Parallel()

	req := VerifyMove{
		PlayerIDs: []int{84, 85},
		LastState: map[string]any{
			"numberOfPlayers": 2,
			"whoseMove":       "P0",
		},
		LastMove:         []Operation{SetTurn{PlayerID: 84}},
		LastMovePlayerID: 84,
		TokensInPot:      map[int]int{84: 2000, 85: 2000},
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var decoded VerifyMove
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, req.PlayerIDs, decoded.PlayerIDs)
	assert.Equal(t, req.LastMovePlayerID, decoded.LastMovePlayerID)
	assert.Equal(t, req.TokensInPot, decoded.TokensInPot)
	assert.Equal(t, 2, decoded.LastState["numberOfPlayers"])
	assert.True(t, EqualLists(req.LastMove, decoded.LastMove))
}
