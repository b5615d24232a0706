package fen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultPosition is the standard starting position.
const DefaultPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const squares = 64

var (
	// ErrFormat is returned for text that is not a valid piece placement.
	ErrFormat = errors.New("invalid FEN position")
	// ErrInvalidArgument is returned for layouts that are not 64 squares.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Placement returns the piece placement field of a FEN record.
func Placement(fen string) string {
	placement, _, _ := strings.Cut(strings.TrimSpace(fen), " ")
	return placement
}

// Decode parses the piece placement of fen into 64 squares indexed
// rank*8+file, a1 first. Castling, turn and clock fields are ignored.
func Decode(fen string) ([]Piece, error) {
	ranks := strings.Split(Placement(fen), "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: %d ranks", ErrFormat, len(ranks))
	}

	pieces := make([]Piece, squares)
	for i, text := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(text); j++ {
			c := text[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
			} else {
				p, err := PieceFromLetter(c)
				if err != nil {
					return nil, err
				}
				if file < 8 {
					pieces[rank*8+file] = p
				}
				file++
			}
			if file > 8 {
				return nil, fmt.Errorf("%w: rank %d overflows", ErrFormat, rank+1)
			}
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank %d has %d files", ErrFormat, rank+1, file)
		}
	}
	return pieces, nil
}

// Encode writes the piece placement for 64 squares indexed rank*8+file.
func Encode(pieces []Piece) (string, error) {
	if len(pieces) != squares {
		return "", fmt.Errorf("%w: need %d squares, got %d", ErrInvalidArgument, squares, len(pieces))
	}

	var sb strings.Builder
	sb.Grow(squares + 7)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := pieces[rank*8+file]
			if p.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			l, err := p.Letter()
			if err != nil {
				return "", fmt.Errorf("%w: square %d: %w", ErrInvalidArgument, rank*8+file, err)
			}
			sb.WriteByte(l)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String(), nil
}
