package output

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/record"
)

// sevenTagRoster lists the tags every exported game carries.
var sevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// JSONGame represents a replayed game in JSON format.
type JSONGame struct {
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result"`
	Status     string            `json:"status"`
	PlyCount   int               `json:"plyCount"`
	InitialFEN string            `json:"initialFEN,omitempty"`
	FinalFEN   string            `json:"finalFEN"`
}

// JSONMove represents one replayed move.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Colour     string `json:"colour"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castle     string `json:"castle,omitempty"`
	Check      string `json:"check,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// Options controls what GameToJSON includes.
type Options struct {
	Promotion chess.PieceType
	// MoveFEN adds the position after each move.
	MoveFEN bool
}

// GameToJSON replays game and converts it to JSON form. A game that fails
// to replay returns the error and no document.
func GameToJSON(game *record.Game, opts Options) (*JSONGame, error) {
	jg := &JSONGame{
		Tags:       copyTags(game.Tags),
		InitialFEN: game.StartFEN(),
		Moves:      make([]JSONMove, 0, len(game.Moves)),
	}

	prev, err := game.StartBoard()
	if err != nil {
		return nil, err
	}

	board, status, err := game.Replay(opts.Promotion, func(s record.Step) error {
		jm := convertMove(s, prev)
		if opts.MoveFEN {
			jm.FEN = engine.BoardToFEN(s.Board)
		}
		jg.Moves = append(jg.Moves, jm)
		prev = s.Board.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	jg.PlyCount = len(jg.Moves)
	jg.FinalFEN = engine.BoardToFEN(board)
	jg.Status = status.String()
	jg.Result = game.Result
	if jg.Result == "" || jg.Result == "?" {
		jg.Result = status.Result()
	}
	return jg, nil
}

// convertMove describes the move just played in s, using prev, the board
// before it, to find what was captured.
func convertMove(s record.Step, prev *chess.Board) JSONMove {
	last := s.Board.LastMove
	jm := JSONMove{
		SAN:    s.Move,
		Colour: strings.ToLower(last.Colour.String()),
		From:   last.From.String(),
		To:     last.To.String(),
		Piece:  last.Piece.String(),
		UCI:    last.From.String() + last.To.String(),
	}
	if last.Colour == chess.White {
		jm.MoveNumber = int(prev.MoveNumber)
	}

	if last.Castle != chess.NoCastle {
		jm.Castle = last.Castle.String()
	} else if victim := prev.Get(last.To); !victim.IsEmpty() {
		jm.Captured = victim.Type.String()
	} else if last.Piece == chess.Pawn && last.From.File() != last.To.File() {
		jm.Captured = chess.Pawn.String()
	}

	if placed := s.Board.Get(last.To); placed.Type != last.Piece {
		jm.Promotion = placed.Type.String()
		jm.UCI += strings.ToLower(string(placed.Type.Letter()))
	}

	switch s.Status.Check {
	case chess.Check:
		jm.Check = "check"
	case chess.Checkmate:
		jm.Check = "checkmate"
	case chess.Stalemate:
		jm.Check = "stalemate"
	}
	return jm
}

// copyTags copies game tags and ensures the seven tag roster has values.
func copyTags(tags map[string]string) map[string]string {
	result := make(map[string]string, len(tags)+len(sevenTagRoster))
	for k, v := range tags {
		result[k] = v
	}
	for _, tag := range sevenTagRoster {
		if _, ok := result[tag]; !ok {
			result[tag] = "?"
		}
	}
	return result
}
