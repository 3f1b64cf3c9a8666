package match

import "fmt"

// Stable reason-string templates (§6). Exact wording is not a correctness property; the
// taxonomy of which template fires when is.
const (
	DisconnectMsg       = "disconnects"
	TimeoutMsg          = "loses on time"
	IllegalMsgTemplate  = "makes an illegal move: %v"
	CheckmateMsg        = "gets checkmated"
	StalemateMsg        = "game ends in stalemate"
	InsufficientMsg     = "game ends by insufficient material"
	RepetitionMsg       = "game ends by threefold repetition"
	FiftyMsg            = "game ends by the fifty-move rule"
	AdjudicationWinMsg  = "wins by adjudication"
	AdjudicationDrawMsg = "drawn by adjudication"
)

func disconnectReason(name string) string {
	return fmt.Sprintf("%v %v", name, DisconnectMsg)
}

func timeoutReason(name string) string {
	return fmt.Sprintf("%v %v", name, TimeoutMsg)
}

func illegalMoveReason(name, uci string) string {
	if uci == "" {
		uci = "<none>"
	}
	return fmt.Sprintf("%v %v", name, fmt.Sprintf(IllegalMsgTemplate, uci))
}

func adjudicationWinReason(winnerName string) string {
	return fmt.Sprintf("%v %v", winnerName, AdjudicationWinMsg)
}

// convertRulesReason maps a Board-reported game-over Reason to its fixed-template string,
// prefixing the mover's name only for Checkmate (§6).
func convertRulesReason(moverName string, reason Reason) string {
	switch reason {
	case Checkmate:
		return fmt.Sprintf("%v %v", moverName, CheckmateMsg)
	case Stalemate:
		return StalemateMsg
	case InsufficientMaterial:
		return InsufficientMsg
	case ThreefoldRepetition:
		return RepetitionMsg
	case FiftyMoveRule:
		return FiftyMsg
	default:
		return ""
	}
}
