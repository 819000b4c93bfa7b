package game

import (
	"fmt"

	"github.com/lox/holdem-referee/internal/deck"
	"github.com/lox/holdem-referee/internal/gameapi"
)

// BuyInMove is the only move allowed before the deal: the seat moves
// its whole stake onto the table
func BuyInMove(playerID, amount int) []gameapi.Operation {
	return []gameapi.Operation{
		gameapi.AttemptChangeTokens{
			Debits:  map[int]int{playerID: -amount},
			Credits: map[int]int{playerID: amount},
		},
	}
}

// InitialMove builds the canonical deal sequence: blinds posted, the
// full deck assigned and shuffled, hole cards visible to their owners
// only and every other card hidden. The mover is always the first
// seat and every seat must have bought in.
func InitialMove(playerIDs []int, tokens map[int]int) ([]gameapi.Operation, error) {
	n := len(playerIDs)
	if n < MinPlayers || n > MaxPlayers {
		return nil, fmt.Errorf("cannot deal for %d players", n)
	}
	for _, id := range playerIDs {
		if tokens[id] <= 0 {
			return nil, fmt.Errorf("player %d has not bought in", id)
		}
	}

	sb := smallBlindSeat(n)
	bb := bigBlindSeat(n)
	utg := underTheGunSeat(n)

	sbPost := min(SmallBlind, tokens[playerIDs[sb]])
	bbPost := min(BigBlind, tokens[playerIDs[bb]])
	bbAllIn := bbPost == tokens[playerIDs[bb]]

	bets := zeros(n)
	bets[sb] = sbPost
	bets[bb] = bbPost

	chips := make([]int, n)
	for i, id := range playerIDs {
		chips[i] = tokens[id] - bets[i]
	}

	// Every seat contests the hand and the main pot from the deal;
	// membership only ever shrinks
	allSeats := make([]int, n)
	for i := range allSeats {
		allSeats[i] = i
	}

	mainPot := Pot{
		Chips:         sbPost + bbPost,
		CurrentPotBet: bbPost,
		PlayersInPot:  allSeats,
		PlayerBets:    append([]int(nil), bets...),
	}

	holeCards := make([][]int, n)
	for i := range holeCards {
		holeCards[i] = []int{2 * i, 2*i + 1}
	}
	board := []int{2 * n, 2*n + 1, 2*n + 2, 2*n + 3, 2*n + 4}

	ops := []gameapi.Operation{
		gameapi.SetTurn{PlayerID: playerIDs[utg]},
		gameapi.Set{Key: keyPreviousMove, Value: Raise.String()},
		gameapi.Set{Key: keyPreviousMoveAllIn, Value: bbAllIn},
		gameapi.Set{Key: keyNumberOfPlayers, Value: n},
		gameapi.Set{Key: keyWhoseMove, Value: seatName(utg)},
		gameapi.Set{Key: keyCurrentBetter, Value: seatName(bb)},
		gameapi.Set{Key: keyCurrentRound, Value: PreFlop.String()},
	}

	cardKeys := make([]string, deck.Size)
	for i, card := range deck.Canonical() {
		cardKeys[i] = cardKey(i)
		ops = append(ops, gameapi.Set{Key: cardKeys[i], Value: card.String()})
	}

	ops = append(ops,
		gameapi.Set{Key: keyPlayersInHand, Value: seatListValue(allSeats)},
		gameapi.Set{Key: keyHoleCards, Value: holeCardsValue(holeCards)},
		gameapi.Set{Key: keyBoard, Value: intListValue(board)},
		gameapi.Set{Key: keyPlayerBets, Value: intListValue(bets)},
		gameapi.Set{Key: keyPlayerChips, Value: intListValue(chips)},
		gameapi.Set{Key: keyPots, Value: potsValue([]Pot{mainPot})},
		gameapi.Shuffle{Keys: cardKeys},
	)

	for slot := 0; slot < 2*n; slot++ {
		ops = append(ops, gameapi.SetVisibility{
			Key:       cardKey(slot),
			VisibleTo: []int{playerIDs[slot/2]},
		})
	}
	for slot := 2 * n; slot < deck.Size; slot++ {
		ops = append(ops, gameapi.SetVisibility{
			Key:       cardKey(slot),
			VisibleTo: []int{},
		})
	}

	return ops, nil
}
