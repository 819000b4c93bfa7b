package game

// State keys shared with the platform
const (
	keyPreviousMove      = "previousMove"
	keyPreviousMoveAllIn = "previousMoveAllIn"
	keyNumberOfPlayers   = "numberOfPlayers"
	keyWhoseMove         = "whoseMove"
	keyCurrentBetter     = "currentBetter"
	keyCurrentRound      = "currentRound"
	keyPlayersInHand     = "playersInHand"
	keyBoard             = "board"
	keyHoleCards         = "holeCards"
	keyPlayerBets        = "playerBets"
	keyPlayerChips       = "playerChips"
	keyPots              = "pots"

	keyChips         = "chips"
	keyCurrentPotBet = "currentPotBet"
	keyPlayersInPot  = "playersInPot"
)
