package board_test

import (
	"testing"

	"github.com/herohde/gauntlet/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sq(s string) board.Square {
	v, err := board.ParseSquareStr(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestPosition_Square(t *testing.T) {
	b, err := board.FromFEN(board.InitialFEN)
	require.NoError(t, err)

	pos := b.Position()

	c, p, ok := pos.Square(sq("e1"))
	require.True(t, ok)
	assert.Equal(t, board.White, c)
	assert.Equal(t, board.King, p)

	c, p, ok = pos.Square(sq("e8"))
	require.True(t, ok)
	assert.Equal(t, board.Black, c)
	assert.Equal(t, board.King, p)

	_, _, ok = pos.Square(sq("e4"))
	assert.False(t, ok)
	assert.True(t, pos.IsEmpty(sq("e4")))
}

func TestPosition_PseudoLegalMoves_Initial(t *testing.T) {
	b, err := board.FromFEN(board.InitialFEN)
	require.NoError(t, err)

	moves := b.Position().PseudoLegalMoves(board.White)
	assert.Len(t, moves, 20) // 16 pawn moves (8 push + 8 jump) + 4 knight moves
}

func TestPosition_PawnMoves_DoublePushAndCapture(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: sq("e2"), Color: board.White, Piece: board.Pawn},
		{Square: sq("d3"), Color: board.Black, Piece: board.Pawn},
		{Square: sq("e1"), Color: board.White, Piece: board.King},
		{Square: sq("e8"), Color: board.Black, Piece: board.King},
	}, board.ZeroCastling, board.ZeroSquare)
	require.NoError(t, err)

	moves := pos.PseudoLegalMoves(board.White)

	var hasPush, hasJump, hasCapture bool
	for _, m := range moves {
		switch {
		case m.From == sq("e2") && m.To == sq("e3") && m.Type == board.Push:
			hasPush = true
		case m.From == sq("e2") && m.To == sq("e4") && m.Type == board.Jump:
			hasJump = true
		case m.From == sq("e2") && m.To == sq("d3") && m.Type == board.Capture:
			hasCapture = true
		}
	}
	assert.True(t, hasPush)
	assert.True(t, hasJump)
	assert.True(t, hasCapture)
}

func TestPosition_EnPassant(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: sq("e5"), Color: board.White, Piece: board.Pawn},
		{Square: sq("d5"), Color: board.Black, Piece: board.Pawn},
		{Square: sq("e1"), Color: board.White, Piece: board.King},
		{Square: sq("e8"), Color: board.Black, Piece: board.King},
	}, board.ZeroCastling, sq("d6"))
	require.NoError(t, err)

	ep, ok := pos.EnPassant()
	require.True(t, ok)
	assert.Equal(t, sq("d6"), ep)

	moves := pos.PseudoLegalMoves(board.White)

	var found bool
	for _, m := range moves {
		if m.Type == board.EnPassant {
			found = true
			assert.Equal(t, sq("e5"), m.From)
			assert.Equal(t, sq("d6"), m.To)
			assert.Equal(t, board.Pawn, m.Capture)
		}
	}
	assert.True(t, found)

	next := pos.Move(board.White, board.Move{Type: board.EnPassant, From: sq("e5"), To: sq("d6"), Capture: board.Pawn})
	assert.True(t, next.IsEmpty(sq("d5"))) // captured pawn removed
	_, _, ok = next.Square(sq("d6"))
	assert.True(t, ok)
}

func TestPosition_Promotion(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: sq("a7"), Color: board.White, Piece: board.Pawn},
		{Square: sq("e1"), Color: board.White, Piece: board.King},
		{Square: sq("e8"), Color: board.Black, Piece: board.King},
	}, board.ZeroCastling, board.ZeroSquare)
	require.NoError(t, err)

	moves := pos.PseudoLegalMoves(board.White)

	var promos []board.Piece
	for _, m := range moves {
		if m.From == sq("a7") && m.To == sq("a8") {
			assert.Equal(t, board.Promotion, m.Type)
			promos = append(promos, m.Promotion)
		}
	}
	assert.ElementsMatch(t, []board.Piece{board.Queen, board.Rook, board.Bishop, board.Knight}, promos)
}

func TestPosition_CastlingMoves(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: sq("e1"), Color: board.White, Piece: board.King},
		{Square: sq("a1"), Color: board.White, Piece: board.Rook},
		{Square: sq("h1"), Color: board.White, Piece: board.Rook},
		{Square: sq("e8"), Color: board.Black, Piece: board.King},
	}, board.FullCastingRights, board.ZeroSquare)
	require.NoError(t, err)

	moves := pos.PseudoLegalMoves(board.White)

	var hasKingSide, hasQueenSide bool
	for _, m := range moves {
		switch m.Type {
		case board.KingSideCastle:
			hasKingSide = true
			assert.Equal(t, sq("g1"), m.To)
		case board.QueenSideCastle:
			hasQueenSide = true
			assert.Equal(t, sq("c1"), m.To)
		}
	}
	assert.True(t, hasKingSide)
	assert.True(t, hasQueenSide)
}

func TestPosition_CastlingBlockedThroughCheck(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: sq("e1"), Color: board.White, Piece: board.King},
		{Square: sq("h1"), Color: board.White, Piece: board.Rook},
		{Square: sq("f8"), Color: board.Black, Piece: board.Rook}, // attacks f1
		{Square: sq("e8"), Color: board.Black, Piece: board.King},
	}, board.WhiteKingSideCastle, board.ZeroSquare)
	require.NoError(t, err)

	moves := pos.PseudoLegalMoves(board.White)
	for _, m := range moves {
		assert.NotEqual(t, board.KingSideCastle, m.Type)
	}
}

func TestPosition_IsAttackedAndChecked(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: sq("e1"), Color: board.White, Piece: board.King},
		{Square: sq("e8"), Color: board.Black, Piece: board.Rook},
		{Square: sq("a8"), Color: board.Black, Piece: board.King},
	}, board.ZeroCastling, board.ZeroSquare)
	require.NoError(t, err)

	assert.True(t, pos.IsAttacked(board.White, sq("e1")))
	assert.True(t, pos.IsChecked(board.White))
	assert.False(t, pos.IsChecked(board.Black))
}

func TestPosition_HasInsufficientMaterial(t *testing.T) {
	bareKings, err := board.NewPosition([]board.Placement{
		{Square: sq("e1"), Color: board.White, Piece: board.King},
		{Square: sq("e8"), Color: board.Black, Piece: board.King},
	}, board.ZeroCastling, board.ZeroSquare)
	require.NoError(t, err)
	assert.True(t, bareKings.HasInsufficientMaterial())

	kingAndBishop, err := board.NewPosition([]board.Placement{
		{Square: sq("e1"), Color: board.White, Piece: board.King},
		{Square: sq("c1"), Color: board.White, Piece: board.Bishop},
		{Square: sq("e8"), Color: board.Black, Piece: board.King},
	}, board.ZeroCastling, board.ZeroSquare)
	require.NoError(t, err)
	assert.True(t, kingAndBishop.HasInsufficientMaterial())

	sameColorBishops, err := board.NewPosition([]board.Placement{
		{Square: sq("e1"), Color: board.White, Piece: board.King},
		{Square: sq("c1"), Color: board.White, Piece: board.Bishop},
		{Square: sq("e8"), Color: board.Black, Piece: board.King},
		{Square: sq("f8"), Color: board.Black, Piece: board.Bishop},
	}, board.ZeroCastling, board.ZeroSquare)
	require.NoError(t, err)
	assert.True(t, sameColorBishops.HasInsufficientMaterial())

	withRook, err := board.NewPosition([]board.Placement{
		{Square: sq("e1"), Color: board.White, Piece: board.King},
		{Square: sq("a1"), Color: board.White, Piece: board.Rook},
		{Square: sq("e8"), Color: board.Black, Piece: board.King},
	}, board.ZeroCastling, board.ZeroSquare)
	require.NoError(t, err)
	assert.False(t, withRook.HasInsufficientMaterial())
}

func TestNewPosition_RejectsInvalidKingCount(t *testing.T) {
	_, err := board.NewPosition([]board.Placement{
		{Square: sq("e1"), Color: board.White, Piece: board.King},
	}, board.ZeroCastling, board.ZeroSquare)
	assert.Error(t, err)
}
