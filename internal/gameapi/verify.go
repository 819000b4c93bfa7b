package gameapi

import (
	"encoding/json"
	"strconv"
)

// VerifyMove is the single public entry point of the engine: the
// previous public state, the operation list the acting player claims
// to have produced, and the table context.
type VerifyMove struct {
	PlayerIDs        []int
	LastState        map[string]any
	LastMove         []Operation
	LastMovePlayerID int
	TokensInPot      map[int]int
}

// VerifyMoveDone is the verification verdict. HackerPlayerID is zero
// on acceptance, or the offending player on rejection.
type VerifyMoveDone struct {
	HackerPlayerID int    `json:"hackerPlayerId"`
	Message        string `json:"message,omitempty"`
}

// Ok reports whether the move was accepted
func (d VerifyMoveDone) Ok() bool {
	return d.HackerPlayerID == 0
}

// Accept returns an accepting verdict
func Accept() VerifyMoveDone {
	return VerifyMoveDone{}
}

// Reject returns a verdict naming the offending player
func Reject(playerID int, message string) VerifyMoveDone {
	return VerifyMoveDone{HackerPlayerID: playerID, Message: message}
}

// wireVerifyMove is the JSON form of VerifyMove. The operation list
// and token map need custom decoding.
type wireVerifyMove struct {
	PlayerIDs        []int           `json:"playerIds"`
	LastState        map[string]any  `json:"lastState"`
	LastMove         json.RawMessage `json:"lastMove"`
	LastMovePlayerID int             `json:"lastMovePlayerId"`
	TokensInPot      map[string]int  `json:"tokensInPot"`
}

// MarshalJSON implements json.Marshaler
func (v VerifyMove) MarshalJSON() ([]byte, error) {
	lastMove, err := MarshalOperations(v.LastMove)
	if err != nil {
		return nil, err
	}
	tokens := make(map[string]int, len(v.TokensInPot))
	for id, amount := range v.TokensInPot {
		tokens[strconv.Itoa(id)] = amount
	}
	return json.Marshal(wireVerifyMove{
		PlayerIDs:        v.PlayerIDs,
		LastState:        NormalizeState(v.LastState),
		LastMove:         lastMove,
		LastMovePlayerID: v.LastMovePlayerID,
		TokensInPot:      tokens,
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (v *VerifyMove) UnmarshalJSON(data []byte) error {
	var wire wireVerifyMove
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	lastMove := []Operation{}
	if len(wire.LastMove) > 0 {
		ops, err := UnmarshalOperations(wire.LastMove)
		if err != nil {
			return err
		}
		lastMove = ops
	}

	tokens, err := tokenMapFromWire(wire.TokensInPot)
	if err != nil {
		return err
	}

	v.PlayerIDs = wire.PlayerIDs
	v.LastState = NormalizeState(wire.LastState)
	v.LastMove = lastMove
	v.LastMovePlayerID = wire.LastMovePlayerID
	v.TokensInPot = tokens
	return nil
}
