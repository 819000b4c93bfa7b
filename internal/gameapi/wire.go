package gameapi

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Operation type tags on the wire
const (
	typeSet                 = "set"
	typeSetTurn             = "setTurn"
	typeSetVisibility       = "setVisibility"
	typeShuffle             = "shuffle"
	typeAttemptChangeTokens = "attemptChangeTokens"
	typeEndGame             = "endGame"
)

// wireOperation is the JSON envelope for an operation
type wireOperation struct {
	Type      string         `json:"type"`
	Key       string         `json:"key,omitempty"`
	Value     any            `json:"value,omitempty"`
	PlayerID  int            `json:"playerId,omitempty"`
	VisibleTo *[]int         `json:"visibleTo,omitempty"`
	Keys      []string       `json:"keys,omitempty"`
	Debits    map[string]int `json:"debits,omitempty"`
	Credits   map[string]int `json:"credits,omitempty"`
}

// MarshalOperations serializes an operation list to JSON
func MarshalOperations(ops []Operation) ([]byte, error) {
	wire := make([]wireOperation, len(ops))
	for i, op := range ops {
		switch op := op.(type) {
		case Set:
			wire[i] = wireOperation{Type: typeSet, Key: op.Key, Value: Normalize(op.Value)}
		case SetTurn:
			wire[i] = wireOperation{Type: typeSetTurn, PlayerID: op.PlayerID}
		case SetVisibility:
			w := wireOperation{Type: typeSetVisibility, Key: op.Key}
			if op.VisibleTo != nil {
				visible := make([]int, len(op.VisibleTo))
				copy(visible, op.VisibleTo)
				w.VisibleTo = &visible
			}
			wire[i] = w
		case Shuffle:
			wire[i] = wireOperation{Type: typeShuffle, Keys: op.Keys}
		case AttemptChangeTokens:
			wire[i] = wireOperation{
				Type:    typeAttemptChangeTokens,
				Debits:  tokenMapToWire(op.Debits),
				Credits: tokenMapToWire(op.Credits),
			}
		case EndGame:
			wire[i] = wireOperation{Type: typeEndGame, PlayerID: op.WinnerID}
		default:
			return nil, fmt.Errorf("unknown operation type %T", op)
		}
	}
	return json.Marshal(wire)
}

// UnmarshalOperations deserializes an operation list from JSON
func UnmarshalOperations(data []byte) ([]Operation, error) {
	var wire []wireOperation
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}

	ops := make([]Operation, len(wire))
	for i, w := range wire {
		switch w.Type {
		case typeSet:
			ops[i] = Set{Key: w.Key, Value: Normalize(w.Value)}
		case typeSetTurn:
			ops[i] = SetTurn{PlayerID: w.PlayerID}
		case typeSetVisibility:
			op := SetVisibility{Key: w.Key}
			if w.VisibleTo != nil {
				op.VisibleTo = make([]int, len(*w.VisibleTo))
				copy(op.VisibleTo, *w.VisibleTo)
			}
			ops[i] = op
		case typeShuffle:
			ops[i] = Shuffle{Keys: w.Keys}
		case typeAttemptChangeTokens:
			debits, err := tokenMapFromWire(w.Debits)
			if err != nil {
				return nil, err
			}
			credits, err := tokenMapFromWire(w.Credits)
			if err != nil {
				return nil, err
			}
			ops[i] = AttemptChangeTokens{Debits: debits, Credits: credits}
		case typeEndGame:
			ops[i] = EndGame{WinnerID: w.PlayerID}
		default:
			return nil, fmt.Errorf("unknown operation type %q", w.Type)
		}
	}
	return ops, nil
}

func tokenMapToWire(m map[int]int) map[string]int {
	out := make(map[string]int, len(m))
	for id, amount := range m {
		out[strconv.Itoa(id)] = amount
	}
	return out
}

func tokenMapFromWire(m map[string]int) (map[int]int, error) {
	out := make(map[int]int, len(m))
	for id, amount := range m {
		n, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("invalid player id %q: %w", id, err)
		}
		out[n] = amount
	}
	return out, nil
}
