package board

import "fmt"

// MoveToUCI renders m in the wire format UCI engines expect. Standard castling is sent as
// the king's two-square hop (e1g1); Chess960 castling is sent "king takes own rook"
// (e1h1), per the UCI_Chess960 convention, since the destination square otherwise would
// not identify which rook is involved.
func (b *Board) MoveToUCI(m Move) string {
	if !b.chess960 {
		return m.String()
	}
	switch m.Type {
	case KingSideCastle:
		rank := m.From.Rank()
		return fmt.Sprintf("%v%v", m.From, NewSquare(FileH, rank))
	case QueenSideCastle:
		rank := m.From.Rank()
		return fmt.Sprintf("%v%v", m.From, NewSquare(FileA, rank))
	default:
		return m.String()
	}
}

// ParseUCIMove parses a UCI-wire move string into a legal move on the board's current
// position, translating Chess960's "king takes rook" castling notation back to the
// engine-internal KingSideCastle/QueenSideCastle move types. Returns an error if the
// string does not name one of the board's current legal moves.
func (b *Board) ParseUCIMove(s string) (Move, error) {
	raw, err := ParseMove(s)
	if err != nil {
		return Move{}, err
	}

	legal := b.LegalMoves()

	if b.chess960 {
		if king, ok := b.castlingKingTakesRook(raw); ok {
			if m, found := matchLegalMove(legal, king); found {
				return m, nil
			}
		}
	}

	if m, found := matchLegalMove(legal, raw); found {
		return m, nil
	}
	return Move{}, fmt.Errorf("not a legal move: %v", s)
}

// castlingKingTakesRook reinterprets raw as a Chess960 "king takes own rook" move,
// returning the equivalent king destination (g/c file) for legal-move matching.
func (b *Board) castlingKingTakesRook(raw Move) (Move, bool) {
	color, piece, ok := b.current.pos.Square(raw.From)
	if !ok || piece != King || color != b.turn {
		return Move{}, false
	}
	rank := raw.From.Rank()

	switch raw.To {
	case NewSquare(FileH, rank):
		return Move{Type: KingSideCastle, From: raw.From, To: NewSquare(FileG, rank)}, true
	case NewSquare(FileA, rank):
		return Move{Type: QueenSideCastle, From: raw.From, To: NewSquare(FileC, rank)}, true
	default:
		return Move{}, false
	}
}
