package fen

import (
	"fmt"

	"github.com/corentings/chess/v2"
)

var toChessType = map[Kind]chess.PieceType{
	Pawn:   chess.Pawn,
	Knight: chess.Knight,
	Bishop: chess.Bishop,
	Rook:   chess.Rook,
	Queen:  chess.Queen,
	King:   chess.King,
}

// ToBoard converts 64 squares into a chess board.
func ToBoard(pieces []Piece) (*chess.Board, error) {
	if len(pieces) != squares {
		return nil, fmt.Errorf("%w: need %d squares, got %d", ErrInvalidArgument, squares, len(pieces))
	}
	m := map[chess.Square]chess.Piece{}
	for i, p := range pieces {
		if p.IsNone() {
			continue
		}
		t, ok := toChessType[p.Kind]
		if !ok {
			return nil, fmt.Errorf("%w: square %d holds %v", ErrInvalidArgument, i, p)
		}
		c := chess.White
		if p.Color == Dark {
			c = chess.Black
		}
		sq := chess.NewSquare(chess.File(i%8), chess.Rank(i/8))
		m[sq] = chess.NewPiece(t, c)
	}
	return chess.NewBoard(m), nil
}

// FromBoard is the inverse of ToBoard.
func FromBoard(b *chess.Board) []Piece {
	pieces := make([]Piece, squares)
	for sq, cp := range b.SquareMap() {
		if cp == chess.NoPiece {
			continue
		}
		for k, t := range toChessType {
			if t != cp.Type() {
				continue
			}
			c := Light
			if cp.Color() == chess.Black {
				c = Dark
			}
			pieces[int(sq)] = Piece{Kind: k, Color: c}
		}
	}
	return pieces
}
