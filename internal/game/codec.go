package game

import (
	"fmt"

	"github.com/lox/holdem-referee/internal/deck"
	"github.com/lox/holdem-referee/internal/gameapi"
)

// DecodeState converts the flat key-value public state into a
// Snapshot. The input is expected in normalized form (see
// gameapi.NormalizeState). Any missing or ill-shaped key is a decode
// error, surfaced by the verifier as a rejection.
func DecodeState(state map[string]any) (*Snapshot, error) {
	state = gameapi.NormalizeState(state)
	s := &Snapshot{}

	moveName, err := stringField(state, keyPreviousMove)
	if err != nil {
		return nil, err
	}
	if s.PreviousMove, err = ParseMove(moveName); err != nil {
		return nil, err
	}

	allIn, ok := state[keyPreviousMoveAllIn].(bool)
	if !ok {
		return nil, fmt.Errorf("state key %s missing or not a bool", keyPreviousMoveAllIn)
	}
	s.PreviousMoveAllIn = allIn

	if s.NumberOfPlayers, err = intField(state, keyNumberOfPlayers); err != nil {
		return nil, err
	}
	if s.NumberOfPlayers < MinPlayers || s.NumberOfPlayers > MaxPlayers {
		return nil, fmt.Errorf("invalid number of players %d", s.NumberOfPlayers)
	}

	if s.WhoseMove, err = seatField(state, keyWhoseMove, s.NumberOfPlayers); err != nil {
		return nil, err
	}
	if s.CurrentBetter, err = seatField(state, keyCurrentBetter, s.NumberOfPlayers); err != nil {
		return nil, err
	}

	roundName, err := stringField(state, keyCurrentRound)
	if err != nil {
		return nil, err
	}
	if s.CurrentRound, err = ParseRound(roundName); err != nil {
		return nil, err
	}

	if s.PlayersInHand, err = seatListField(state, keyPlayersInHand, s.NumberOfPlayers); err != nil {
		return nil, err
	}

	if s.Board, err = intListField(state, keyBoard); err != nil {
		return nil, err
	}
	if len(s.Board) != 5 {
		return nil, fmt.Errorf("board has %d slots, want 5", len(s.Board))
	}

	if err = decodeHoleCards(state, s); err != nil {
		return nil, err
	}

	if s.PlayerBets, err = intListField(state, keyPlayerBets); err != nil {
		return nil, err
	}
	if s.PlayerChips, err = intListField(state, keyPlayerChips); err != nil {
		return nil, err
	}
	if len(s.PlayerBets) != s.NumberOfPlayers || len(s.PlayerChips) != s.NumberOfPlayers {
		return nil, fmt.Errorf("player bet/chip lists must have %d entries", s.NumberOfPlayers)
	}

	if err = decodePots(state, s); err != nil {
		return nil, err
	}

	if err = decodeCards(state, s); err != nil {
		return nil, err
	}

	return s, nil
}

func decodeHoleCards(state map[string]any, s *Snapshot) error {
	raw, ok := state[keyHoleCards].([]any)
	if !ok {
		return fmt.Errorf("state key %s missing or not a list", keyHoleCards)
	}
	if len(raw) != s.NumberOfPlayers {
		return fmt.Errorf("hole cards for %d seats, want %d", len(raw), s.NumberOfPlayers)
	}
	s.HoleCards = make([][]int, len(raw))
	for i, entry := range raw {
		slots, err := intList(entry)
		if err != nil || len(slots) != 2 {
			return fmt.Errorf("seat %d hole cards malformed", i)
		}
		s.HoleCards[i] = slots
	}
	return nil
}

func decodePots(state map[string]any, s *Snapshot) error {
	raw, ok := state[keyPots].([]any)
	if !ok {
		return fmt.Errorf("state key %s missing or not a list", keyPots)
	}
	if len(raw) == 0 {
		return fmt.Errorf("state has no pots")
	}
	s.Pots = make([]Pot, len(raw))
	for i, entry := range raw {
		fields, ok := entry.(map[string]any)
		if !ok {
			return fmt.Errorf("pot %d is not an object", i)
		}
		pot := Pot{}
		var err error
		if pot.Chips, err = intField(fields, keyChips); err != nil {
			return fmt.Errorf("pot %d: %w", i, err)
		}
		if pot.CurrentPotBet, err = intField(fields, keyCurrentPotBet); err != nil {
			return fmt.Errorf("pot %d: %w", i, err)
		}
		if pot.PlayersInPot, err = seatListField(fields, keyPlayersInPot, s.NumberOfPlayers); err != nil {
			return fmt.Errorf("pot %d: %w", i, err)
		}
		if pot.PlayerBets, err = intListField(fields, keyPlayerBets); err != nil {
			return fmt.Errorf("pot %d: %w", i, err)
		}
		if len(pot.PlayerBets) != s.NumberOfPlayers {
			return fmt.Errorf("pot %d ledger has %d entries, want %d", i, len(pot.PlayerBets), s.NumberOfPlayers)
		}
		s.Pots[i] = pot
	}
	return nil
}

func decodeCards(state map[string]any, s *Snapshot) error {
	for slot := 0; slot < deck.Size; slot++ {
		raw, ok := state[cardKey(slot)]
		if !ok {
			continue // hidden from the verifier
		}
		name, ok := raw.(string)
		if !ok {
			return fmt.Errorf("card slot %d is not a string", slot)
		}
		card, err := deck.Parse(name)
		if err != nil {
			return fmt.Errorf("card slot %d: %w", slot, err)
		}
		s.Cards[slot] = &card
	}
	return nil
}

func stringField(fields map[string]any, key string) (string, error) {
	v, ok := fields[key].(string)
	if !ok {
		return "", fmt.Errorf("state key %s missing or not a string", key)
	}
	return v, nil
}

func intField(fields map[string]any, key string) (int, error) {
	v, ok := fields[key].(int)
	if !ok {
		return 0, fmt.Errorf("state key %s missing or not a number", key)
	}
	return v, nil
}

func seatField(fields map[string]any, key string, numPlayers int) (int, error) {
	name, err := stringField(fields, key)
	if err != nil {
		return 0, err
	}
	seat, err := parseSeat(name)
	if err != nil {
		return 0, err
	}
	if seat >= numPlayers {
		return 0, fmt.Errorf("seat %s out of range for %d players", name, numPlayers)
	}
	return seat, nil
}

func seatListField(fields map[string]any, key string, numPlayers int) ([]int, error) {
	raw, ok := fields[key].([]any)
	if !ok {
		return nil, fmt.Errorf("state key %s missing or not a list", key)
	}
	seats := make([]int, len(raw))
	for i, entry := range raw {
		name, ok := entry.(string)
		if !ok {
			return nil, fmt.Errorf("state key %s entry %d is not a seat", key, i)
		}
		seat, err := parseSeat(name)
		if err != nil {
			return nil, err
		}
		if seat >= numPlayers {
			return nil, fmt.Errorf("seat %s out of range for %d players", name, numPlayers)
		}
		seats[i] = seat
	}
	return seats, nil
}

func intListField(fields map[string]any, key string) ([]int, error) {
	raw, ok := fields[key]
	if !ok {
		return nil, fmt.Errorf("state key %s missing", key)
	}
	list, err := intList(raw)
	if err != nil {
		return nil, fmt.Errorf("state key %s: %w", key, err)
	}
	return list, nil
}

func intList(raw any) ([]int, error) {
	entries, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("not a list")
	}
	out := make([]int, len(entries))
	for i, entry := range entries {
		n, ok := entry.(int)
		if !ok {
			return nil, fmt.Errorf("entry %d is not a number", i)
		}
		out[i] = n
	}
	return out, nil
}

// Encoding helpers: canonical wire values for operation payloads.
// Everything goes through gameapi.Normalize so engine-built and
// JSON-decoded values compare equal.

func seatListValue(seats []int) any {
	names := make([]any, len(seats))
	for i, s := range seats {
		names[i] = seatName(s)
	}
	return names
}

func intListValue(values []int) any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func holeCardsValue(holeCards [][]int) any {
	out := make([]any, len(holeCards))
	for i, slots := range holeCards {
		out[i] = intListValue(slots)
	}
	return out
}

func potsValue(pots []Pot) any {
	out := make([]any, len(pots))
	for i, pot := range pots {
		out[i] = map[string]any{
			keyChips:         pot.Chips,
			keyCurrentPotBet: pot.CurrentPotBet,
			keyPlayersInPot:  seatListValue(pot.PlayersInPot),
			keyPlayerBets:    intListValue(pot.PlayerBets),
		}
	}
	return out
}
