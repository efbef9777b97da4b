// Package fen decodes and encodes Forsyth-Edwards Notation, the
// standard one-line text encoding of a chess position.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessfen-go/internal/chess"
	"github.com/lgbarn/chessfen-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// numFields is the number of space-separated fields in a FEN record:
// placement, active colour, castling, en passant, halfmove, fullmove.
const numFields = 6

// Decode parses a FEN string into a Position. Every validation failure
// is reported as an error from the internal/errors taxonomy; on error
// no Position is returned, there is no partially decoded state.
func Decode(fen string) (*chess.Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < numFields {
		return nil, fmt.Errorf("%d of %d fields present: %w",
			len(fields), numFields, errors.ErrMissingField)
	}

	pos := chess.NewPosition()

	if err := parsePlacement(pos, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		pos.ActiveColour = chess.White
	case "b":
		pos.ActiveColour = chess.Black
	default:
		return nil, errors.InField(errors.ErrUnknownColor, "colour", fields[1])
	}

	rights, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}
	pos.CastlingRights = rights

	if fields[3] != "-" {
		bit, err := chess.AlgebraicToBit(fields[3])
		if err != nil {
			return nil, errors.Wrap(err, "en passant")
		}
		pos.EnPassant = bit
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, errors.InField(errors.ErrInvalidHalfmove, "halfmove", fields[4])
	}
	pos.HalfmoveClock = uint(halfmove)

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, errors.InField(errors.ErrInvalidFullmove, "fullmove", fields[5])
	}
	pos.FullmoveNumber = uint(fullmove)

	return pos, nil
}

// Initial returns the standard starting position.
func Initial() *chess.Position {
	pos, _ := Decode(InitialFEN)
	return pos
}

// rankCell is one decoded cell of a placement rank: either empty or a
// coloured piece.
type rankCell struct {
	colour chess.Colour
	piece  chess.PieceType
	empty  bool
}

// parsePlacement parses the piece-placement field into pos. FEN lists
// ranks from 8 down to 1 while square index 0 is a1, so ranks are
// collected top to bottom first and then replayed in reverse order so
// squares are pushed in ascending index order.
func parsePlacement(pos *chess.Position, placement string) error {
	rankStrings := strings.Split(placement, "/")
	if len(rankStrings) != chess.BoardSize {
		return errors.InField(errors.ErrWrongSquareCount, "placement", placement)
	}

	ranks := make([][]rankCell, len(rankStrings))
	for i, s := range rankStrings {
		cells, err := parseRank(s)
		if err != nil {
			return err
		}
		ranks[i] = cells
	}

	// ranks[0] is rank 8; replay from ranks[7] (rank 1) upward.
	for i := len(ranks) - 1; i >= 0; i-- {
		for _, cell := range ranks[i] {
			if cell.empty {
				pos.PushEmptySquare()
			} else {
				pos.PushPieceAndSquare(len(pos.Squares), cell.colour, cell.piece)
			}
		}
	}
	return nil
}

// parseRank parses one placement rank into exactly 8 cells. Digits are
// runs of empty squares, letters are pieces with case giving colour.
func parseRank(rank string) ([]rankCell, error) {
	cells := make([]rankCell, 0, chess.BoardSize)

	for i := 0; i < len(rank); i++ {
		c := rank[i]
		switch {
		case c >= '1' && c <= '8':
			for n := 0; n < int(c-'0'); n++ {
				cells = append(cells, rankCell{empty: true})
			}
		default:
			pieceType, ok := chess.PieceTypeFromLetter(c)
			if !ok {
				return nil, errors.InField(errors.ErrInvalidPieceChar, "placement", rank)
			}
			colour := chess.Black
			if unicode.IsUpper(rune(c)) {
				colour = chess.White
			}
			cells = append(cells, rankCell{colour: colour, piece: pieceType})
		}
		if len(cells) > chess.BoardSize {
			return nil, errors.InField(errors.ErrRankOverflow, "placement", rank)
		}
	}

	if len(cells) != chess.BoardSize {
		return nil, errors.InField(errors.ErrWrongSquareCount, "placement", rank)
	}
	return cells, nil
}

// parseCastling parses the castling-rights field. "-" means no rights;
// otherwise every character must be one of K, Q, k, q. Duplicates are
// harmless since the rights form a set.
func parseCastling(field string) (chess.CastlingRights, error) {
	if field == "-" {
		return chess.NoRights, nil
	}
	rights := chess.NoRights
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			rights = rights.With(chess.WhiteKingside)
		case 'Q':
			rights = rights.With(chess.WhiteQueenside)
		case 'k':
			rights = rights.With(chess.BlackKingside)
		case 'q':
			rights = rights.With(chess.BlackQueenside)
		default:
			return chess.NoRights, errors.InField(errors.ErrInvalidCastlingChar, "castling", field)
		}
	}
	return rights, nil
}
