// Package fen converts 64-square piece layouts to and from the piece
// placement field of Forsyth-Edwards Notation.
package fen

import "fmt"

// Color is the side a piece belongs to.
type Color int

const (
	Light Color = iota // uppercase letters
	Dark               // lowercase letters
)

// Kind is a piece type. The zero value marks an empty square.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindLetters = map[Kind]byte{
	Pawn:   'p',
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
	King:   'k',
}

// Piece is either empty (None) or a Kind of a Color.
type Piece struct {
	Kind  Kind
	Color Color
}

// None is the empty square.
var None = Piece{}

// NewPiece returns a piece of kind k and color c.
func NewPiece(c Color, k Kind) Piece {
	return Piece{Kind: k, Color: c}
}

// IsNone reports whether p is the empty square.
func (p Piece) IsNone() bool {
	return p.Kind == NoKind
}

// Letter returns the FEN letter, uppercase for Light.
func (p Piece) Letter() (byte, error) {
	l, ok := kindLetters[p.Kind]
	if !ok {
		return 0, fmt.Errorf("piece %v has no letter", p)
	}
	if p.Color == Light {
		l -= 'a' - 'A'
	}
	return l, nil
}

// PieceFromLetter is the inverse of Letter.
func PieceFromLetter(l byte) (Piece, error) {
	c := Dark
	if l >= 'A' && l <= 'Z' {
		c = Light
		l += 'a' - 'A'
	}
	for k, kl := range kindLetters {
		if kl == l {
			return Piece{Kind: k, Color: c}, nil
		}
	}
	return None, fmt.Errorf("%w: unknown piece %q", ErrFormat, l)
}

func (p Piece) String() string {
	if p.IsNone() {
		return "-"
	}
	l, err := p.Letter()
	if err != nil {
		return fmt.Sprintf("Piece(%d,%d)", p.Kind, p.Color)
	}
	return string(l)
}
