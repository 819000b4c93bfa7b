package game

import "fmt"

// clonePots deep-copies a pot list
func clonePots(pots []Pot) []Pot {
	out := make([]Pot, len(pots))
	for i, p := range pots {
		out[i] = p.clone()
	}
	return out
}

// potTotal returns the chips held across all pots
func potTotal(pots []Pot) int {
	total := 0
	for _, p := range pots {
		total += p.Chips
	}
	return total
}

// applyCall pays the seat's outstanding requirement into each pot,
// oldest first. When the seat cannot cover the full requirement the
// pot at the shortfall is split: a capped pot the seat can still win
// and a successor pot contested by everyone else. The seat is dropped
// from any pot past the split. Returns the new pots and the amount
// paid.
func applyCall(s *Snapshot, seat int) ([]Pot, int) {
	available := s.PlayerChips[seat]
	required := s.RequiredBet() - s.PlayerBets[seat]

	if available > required {
		pots := clonePots(s.Pots)
		for i := range pots {
			pots[i].Chips += pots[i].CurrentPotBet - pots[i].PlayerBets[seat]
			pots[i].PlayerBets[seat] = pots[i].CurrentPotBet
		}
		return pots, required
	}

	// All-in call: split at the pot the seat cannot cover
	return splitForShortCall(s, seat, available)
}

// splitForShortCall routes an all-in call through the pots. The pot
// where the chips run out is split at the seat's final contribution
// level; an exact all-in produces an empty successor pot.
func splitForShortCall(s *Snapshot, seat, available int) ([]Pot, int) {
	remaining := available
	split := false
	out := make([]Pot, 0, len(s.Pots)+1)

	for _, pot := range s.Pots {
		pot = pot.clone()

		if split {
			pot.PlayersInPot = removeSeat(pot.PlayersInPot, seat)
			out = append(out, pot)
			continue
		}

		owed := pot.CurrentPotBet - pot.PlayerBets[seat]
		if remaining > owed {
			pot.Chips += owed
			pot.PlayerBets[seat] = pot.CurrentPotBet
			remaining -= owed
			out = append(out, pot)
			continue
		}

		// Chips settled from earlier rounds stay with the capped pot
		carry := pot.Chips
		for _, b := range pot.PlayerBets {
			carry -= b
		}

		capLevel := pot.PlayerBets[seat] + remaining

		capped := Pot{
			Chips:         carry,
			CurrentPotBet: capLevel,
			PlayersInPot:  append([]int(nil), pot.PlayersInPot...),
			PlayerBets:    make([]int, len(pot.PlayerBets)),
		}
		rest := Pot{
			CurrentPotBet: pot.CurrentPotBet - capLevel,
			PlayersInPot:  removeSeat(pot.PlayersInPot, seat),
			PlayerBets:    make([]int, len(pot.PlayerBets)),
		}
		for j, b := range pot.PlayerBets {
			if j == seat {
				b = capLevel
			}
			if b > capLevel {
				capped.PlayerBets[j] = capLevel
				rest.PlayerBets[j] = b - capLevel
			} else {
				capped.PlayerBets[j] = b
			}
			capped.Chips += capped.PlayerBets[j]
			rest.Chips += rest.PlayerBets[j]
		}

		out = append(out, capped, rest)
		remaining = 0
		split = true
	}

	return out, available
}

// applyBet opens the betting in the newest pot. An all-in bet caps
// the pot and appends an empty successor for further action.
func applyBet(s *Snapshot, seat, amount int) ([]Pot, error) {
	if s.CurrentRound == PreFlop {
		return nil, fmt.Errorf("cannot bet before the flop, the blinds are live")
	}
	if s.RequiredBet() != 0 {
		return nil, fmt.Errorf("cannot bet into a live bet, raise instead")
	}
	if amount <= 0 || amount > s.PlayerChips[seat] {
		return nil, fmt.Errorf("bet of %d is not coverable by seat %d", amount, seat)
	}

	pots := clonePots(s.Pots)
	last := len(pots) - 1
	pots[last].Chips += amount
	pots[last].CurrentPotBet += amount
	pots[last].PlayerBets[seat] += amount

	if amount == s.PlayerChips[seat] {
		pots = append(pots, sidePotAfterAllIn(s, seat))
	}
	return pots, nil
}

// applyRaise pays the seat up to the outstanding requirement in every
// pot and puts the excess on the newest pot as a raise. The raise-by
// amount must be at least the outstanding requirement unless the seat
// is all-in for less.
func applyRaise(s *Snapshot, seat, newTotal int) ([]Pot, int, error) {
	existing := s.PlayerBets[seat]
	delta := newTotal - existing
	required := s.RequiredBet()
	allIn := delta == s.PlayerChips[seat]

	if delta <= 0 || delta > s.PlayerChips[seat] {
		return nil, 0, fmt.Errorf("raise to %d is not coverable by seat %d", newTotal, seat)
	}
	if newTotal <= required {
		return nil, 0, fmt.Errorf("raise to %d does not exceed the required %d", newTotal, required)
	}
	if raiseBy := newTotal - required; raiseBy < required && !allIn {
		return nil, 0, fmt.Errorf("raise by %d is below the minimum of %d", raiseBy, required)
	}

	pots := clonePots(s.Pots)
	last := len(pots) - 1
	for i := range pots {
		pots[i].Chips += pots[i].CurrentPotBet - pots[i].PlayerBets[seat]
		pots[i].PlayerBets[seat] = pots[i].CurrentPotBet
	}
	raiseBy := newTotal - required
	pots[last].Chips += raiseBy
	pots[last].CurrentPotBet += raiseBy
	pots[last].PlayerBets[seat] += raiseBy

	if allIn {
		pots = append(pots, sidePotAfterAllIn(s, seat))
	}
	return pots, delta, nil
}

// removeFromPots drops a folded seat from every pot it contested.
// Chips the seat already committed stay in. The second return value
// reports whether any pot changed.
func removeFromPots(pots []Pot, seat int) ([]Pot, bool) {
	out := clonePots(pots)
	changed := false
	for i := range out {
		if out[i].contains(seat) {
			out[i].PlayersInPot = removeSeat(out[i].PlayersInPot, seat)
			changed = true
		}
	}
	return out, changed
}

// resetForNewRound clears the per-round betting state of every pot.
// Chips stay where they are.
func resetForNewRound(pots []Pot, numPlayers int) []Pot {
	out := clonePots(pots)
	for i := range out {
		out[i].CurrentPotBet = 0
		out[i].PlayerBets = zeros(numPlayers)
	}
	return out
}

// sidePotAfterAllIn opens an empty side pot for the action an all-in
// bet or raise leaves behind, contested by everyone still in hand
// except the all-in seat
func sidePotAfterAllIn(s *Snapshot, seat int) Pot {
	return Pot{
		PlayersInPot: removeSeat(s.PlayersInHand, seat),
		PlayerBets:   zeros(s.NumberOfPlayers),
	}
}
