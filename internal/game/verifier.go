package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-referee/internal/gameapi"
)

// Verifier recomputes the canonical operation sequence for a claimed
// move and accepts only an exact match. It holds no table state: every
// verification is derived from the request alone.
type Verifier struct {
	logger *log.Logger
}

// NewVerifier creates a verifier logging through the given logger
func NewVerifier(logger *log.Logger) *Verifier {
	return &Verifier{logger: logger}
}

// Verify checks the claimed move against the only sequence the rules
// allow from the previous state. Any deviation in operation kind,
// order, count or payload rejects the move and names the acting
// player.
func (v *Verifier) Verify(req gameapi.VerifyMove) gameapi.VerifyMoveDone {
	seat := seatOf(req.PlayerIDs, req.LastMovePlayerID)
	if seat < 0 {
		return gameapi.Reject(req.LastMovePlayerID,
			fmt.Sprintf("player %d is not at the table", req.LastMovePlayerID))
	}

	verdict := v.verify(req, seat)
	if !verdict.Ok() {
		v.logger.Warn("move rejected",
			"player", req.LastMovePlayerID, "reason", verdict.Message)
	} else {
		v.logger.Debug("move accepted",
			"player", req.LastMovePlayerID, "operations", len(req.LastMove))
	}
	return verdict
}

func (v *Verifier) verify(req gameapi.VerifyMove, seat int) gameapi.VerifyMoveDone {
	if len(req.LastState) == 0 {
		return v.verifyOpening(req, seat)
	}

	s, err := DecodeState(req.LastState)
	if err != nil {
		return gameapi.Reject(req.LastMovePlayerID, err.Error())
	}
	if s.NumberOfPlayers != len(req.PlayerIDs) {
		return gameapi.Reject(req.LastMovePlayerID, "player list does not match the table")
	}
	if s.CurrentRound == Showdown {
		return gameapi.Reject(req.LastMovePlayerID, "the hand is over")
	}
	if s.WhoseMove != seat {
		return gameapi.Reject(req.LastMovePlayerID,
			fmt.Sprintf("moved out of turn, it is %s to act", seatName(s.WhoseMove)))
	}
	if !s.InHand(seat) {
		return gameapi.Reject(req.LastMovePlayerID, "moved after folding")
	}

	move, err := claimedMove(req.LastMove)
	if err != nil {
		return gameapi.Reject(req.LastMovePlayerID, err.Error())
	}

	expected, err := v.expectedOperations(s, seat, move, req)
	if err != nil {
		return gameapi.Reject(req.LastMovePlayerID, err.Error())
	}

	if diff := gameapi.Diff(expected, req.LastMove); diff != "" {
		return gameapi.Reject(req.LastMovePlayerID, diff)
	}
	return gameapi.Accept()
}

// verifyOpening handles moves made before any state exists: buy-ins,
// in any seat order, and then the deal by the first seat
func (v *Verifier) verifyOpening(req gameapi.VerifyMove, seat int) gameapi.VerifyMoveDone {
	if len(req.LastMove) == 1 {
		if _, ok := req.LastMove[0].(gameapi.AttemptChangeTokens); ok {
			expected := BuyInMove(req.LastMovePlayerID, req.TokensInPot[req.LastMovePlayerID])
			if req.TokensInPot[req.LastMovePlayerID] <= 0 {
				return gameapi.Reject(req.LastMovePlayerID, "buy-in must be positive")
			}
			if diff := gameapi.Diff(expected, req.LastMove); diff != "" {
				return gameapi.Reject(req.LastMovePlayerID, diff)
			}
			return gameapi.Accept()
		}
	}

	if seat != 0 {
		return gameapi.Reject(req.LastMovePlayerID, "only the first seat deals")
	}
	expected, err := InitialMove(req.PlayerIDs, req.TokensInPot)
	if err != nil {
		return gameapi.Reject(req.LastMovePlayerID, err.Error())
	}
	if diff := gameapi.Diff(expected, req.LastMove); diff != "" {
		return gameapi.Reject(req.LastMovePlayerID, diff)
	}
	return gameapi.Accept()
}

// expectedOperations rebuilds the one operation sequence the claimed
// move kind is allowed to produce from the previous state
func (v *Verifier) expectedOperations(s *Snapshot, seat int, move Move, req gameapi.VerifyMove) ([]gameapi.Operation, error) {
	inHand := append([]int(nil), s.PlayersInHand...)
	bets := append([]int(nil), s.PlayerBets...)
	chips := append([]int(nil), s.PlayerChips...)
	pots := s.Pots
	allIn := false
	potsChanged := false

	switch move {
	case Fold:
		inHand = removeSeat(inHand, seat)
		pots, potsChanged = removeFromPots(pots, seat)

	case Check:
		if s.RequiredBet()-bets[seat] != 0 {
			return nil, fmt.Errorf("cannot check facing a bet of %d", s.RequiredBet()-bets[seat])
		}

	case Call:
		owed := s.RequiredBet() - bets[seat]
		if owed <= 0 {
			return nil, fmt.Errorf("nothing to call, check instead")
		}
		var paid int
		pots, paid = applyCall(s, seat)
		bets[seat] += paid
		chips[seat] -= paid
		allIn = chips[seat] == 0
		potsChanged = true

	case Bet:
		newTotal, err := claimedBetTotal(req.LastMove, seat, len(bets))
		if err != nil {
			return nil, err
		}
		pots, err = applyBet(s, seat, newTotal-bets[seat])
		if err != nil {
			return nil, err
		}
		chips[seat] -= newTotal - bets[seat]
		bets[seat] = newTotal
		allIn = chips[seat] == 0
		potsChanged = true

	case Raise:
		newTotal, err := claimedBetTotal(req.LastMove, seat, len(bets))
		if err != nil {
			return nil, err
		}
		var paid int
		pots, paid, err = applyRaise(s, seat, newTotal)
		if err != nil {
			return nil, err
		}
		chips[seat] -= paid
		bets[seat] = newTotal
		allIn = chips[seat] == 0
		potsChanged = true

	default:
		return nil, fmt.Errorf("unknown move kind %v", move)
	}

	// A fold leaving one contestant ends the hand outright
	if len(inHand) == 1 {
		return v.handEndOps(s, move, req.PlayerIDs, inHand, chips, pots, allIn)
	}

	if !roundCloses(s, seat, move, inHand, chips) {
		return v.midRoundOps(s, seat, move, req.PlayerIDs, inHand, bets, chips, pots, allIn, potsChanged)
	}

	if s.CurrentRound == River {
		return v.handEndOps(s, move, req.PlayerIDs, inHand, chips, pots, allIn)
	}

	return v.roundAdvanceOps(s, seat, move, req.PlayerIDs, inHand, chips, pots, allIn)
}

// midRoundOps lays out a move that leaves the betting round open
func (v *Verifier) midRoundOps(s *Snapshot, seat int, move Move, playerIDs, inHand, bets, chips []int, pots []Pot, allIn, potsChanged bool) ([]gameapi.Operation, error) {
	next := nextTurnSeat(s, seat, inHand, chips)
	if next < 0 {
		return nil, fmt.Errorf("no seat left to act")
	}

	ops := []gameapi.Operation{
		gameapi.SetTurn{PlayerID: playerIDs[next]},
		gameapi.Set{Key: keyPreviousMove, Value: move.String()},
		gameapi.Set{Key: keyPreviousMoveAllIn, Value: allIn},
		gameapi.Set{Key: keyWhoseMove, Value: seatName(next)},
	}
	if move == Bet || move == Raise {
		ops = append(ops, gameapi.Set{Key: keyCurrentBetter, Value: seatName(seat)})
	}
	if move == Fold {
		ops = append(ops, gameapi.Set{Key: keyPlayersInHand, Value: seatListValue(inHand)})
	}
	if move == Call || move == Bet || move == Raise {
		ops = append(ops,
			gameapi.Set{Key: keyPlayerBets, Value: intListValue(bets)},
			gameapi.Set{Key: keyPlayerChips, Value: intListValue(chips)},
		)
	}
	if potsChanged {
		ops = append(ops, gameapi.Set{Key: keyPots, Value: potsValue(pots)})
	}
	return ops, nil
}

// roundAdvanceOps lays out a move that closes the round short of the
// showdown: the bets settle into the pots and the next street is
// revealed
func (v *Verifier) roundAdvanceOps(s *Snapshot, seat int, move Move, playerIDs, inHand, chips []int, pots []Pot, allIn bool) ([]gameapi.Operation, error) {
	next, err := s.CurrentRound.Next()
	if err != nil {
		return nil, err
	}
	first := firstToActSeat(s, inHand, chips)

	ops := []gameapi.Operation{
		gameapi.SetTurn{PlayerID: playerIDs[first]},
		gameapi.Set{Key: keyPreviousMove, Value: move.String()},
		gameapi.Set{Key: keyPreviousMoveAllIn, Value: allIn},
		gameapi.Set{Key: keyWhoseMove, Value: seatName(first)},
		gameapi.Set{Key: keyCurrentBetter, Value: seatName(first)},
		gameapi.Set{Key: keyCurrentRound, Value: next.String()},
	}
	if move == Fold {
		ops = append(ops, gameapi.Set{Key: keyPlayersInHand, Value: seatListValue(inHand)})
	}
	ops = append(ops, gameapi.Set{Key: keyPlayerBets, Value: intListValue(zeros(s.NumberOfPlayers))})
	if move == Call {
		ops = append(ops, gameapi.Set{Key: keyPlayerChips, Value: intListValue(chips)})
	}
	ops = append(ops, gameapi.Set{Key: keyPots, Value: potsValue(resetForNewRound(pots, s.NumberOfPlayers))})
	ops = append(ops, boardRevealOps(s, next)...)
	return ops, nil
}

// handEndOps lays out a move that ends the hand: a fold leaving one
// contestant, or the river round closing into a showdown
func (v *Verifier) handEndOps(s *Snapshot, move Move, playerIDs, inHand, chips []int, pots []Pot, allIn bool) ([]gameapi.Operation, error) {
	result, err := settle(s, pots, inHand, chips)
	if err != nil {
		return nil, err
	}

	ops := []gameapi.Operation{
		gameapi.Set{Key: keyPreviousMove, Value: move.String()},
		gameapi.Set{Key: keyPreviousMoveAllIn, Value: allIn},
		gameapi.Set{Key: keyCurrentRound, Value: Showdown.String()},
		gameapi.Set{Key: keyPlayersInHand, Value: seatListValue(inHand)},
		gameapi.Set{Key: keyPlayerBets, Value: intListValue(zeros(s.NumberOfPlayers))},
		gameapi.Set{Key: keyPlayerChips, Value: intListValue(result.Chips)},
		gameapi.Set{Key: keyPots, Value: potsValue(nil)},
	}

	// A fold-to-one win reveals nothing
	if len(inHand) >= 2 {
		for _, contestant := range inHand {
			for _, slot := range s.HoleCards[contestant] {
				ops = append(ops, gameapi.SetVisibility{Key: cardKey(slot)})
			}
		}
	}

	ops = append(ops, gameapi.EndGame{WinnerID: playerIDs[result.Winner]})
	return ops, nil
}

// claimedMove extracts the move kind the player claims to have made
// from the first previousMove assignment in the operation list
func claimedMove(ops []gameapi.Operation) (Move, error) {
	for _, op := range ops {
		set, ok := op.(gameapi.Set)
		if !ok || set.Key != keyPreviousMove {
			continue
		}
		name, ok := set.Value.(string)
		if !ok {
			return 0, fmt.Errorf("claimed %s is not a string", keyPreviousMove)
		}
		return ParseMove(name)
	}
	return 0, fmt.Errorf("claimed operations never assign %s", keyPreviousMove)
}

// claimedBetTotal extracts the seat's new total bet from the claimed
// playerBets assignment. Bets and raises are verified against the
// claimed amount; every derived operation must then match it exactly.
func claimedBetTotal(ops []gameapi.Operation, seat, numPlayers int) (int, error) {
	for _, op := range ops {
		set, ok := op.(gameapi.Set)
		if !ok || set.Key != keyPlayerBets {
			continue
		}
		bets, err := intList(gameapi.Normalize(set.Value))
		if err != nil || len(bets) != numPlayers {
			return 0, fmt.Errorf("claimed %s is malformed", keyPlayerBets)
		}
		return bets[seat], nil
	}
	return 0, fmt.Errorf("claimed operations never assign %s", keyPlayerBets)
}

func seatOf(playerIDs []int, playerID int) int {
	for i, id := range playerIDs {
		if id == playerID {
			return i
		}
	}
	return -1
}
