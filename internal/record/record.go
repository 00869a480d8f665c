// Package record reads recorded games: tag pairs followed by movetext.
package record

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game is one recorded game.
type Game struct {
	Tags      map[string]string
	Moves     []string // Move text with numbers, comments and variations removed
	Result    string   // "1-0", "0-1", "1/2-1/2", "*" or empty
	StartLine int
	EndLine   int
}

// NewGame creates an empty game.
func NewGame() *Game {
	return &Game{Tags: make(map[string]string)}
}

// Tag returns the value of the named tag, or "" if absent.
func (g *Game) Tag(name string) string {
	return g.Tags[name]
}

// TagNames returns the tag names in sorted order.
func (g *Game) TagNames() []string {
	names := maps.Keys(g.Tags)
	slices.Sort(names)
	return names
}

// StartFEN returns the FEN tag, or "" when the game starts from the
// initial position.
func (g *Game) StartFEN() string {
	return g.Tags["FEN"]
}

// Options controls how movetext is read.
type Options struct {
	French bool   // Piece letters are T, F, C, D and R
	File   string // Name used in error messages
}

var (
	tagPattern        = regexp.MustCompile(`^\[(\w+)\s+"(.*)"\]$`)
	moveNumberPattern = regexp.MustCompile(`^\d+\.+`)
	nagPattern        = regexp.MustCompile(`^\$\d+$`)
)

var frenchPieces = strings.NewReplacer("T", "R", "F", "B", "C", "N", "D", "Q", "R", "K")

// TranslateFrench rewrites French piece letters to English ones.
func TranslateFrench(move string) string {
	return frenchPieces.Replace(move)
}

// IsResult reports whether token is a game termination marker.
func IsResult(token string) bool {
	switch token {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}

// Reader reads successive games from a text stream.
type Reader struct {
	scanner   *bufio.Scanner
	opts      Options
	line      int
	pending   string
	hasLine   bool
	inComment bool
	depth     int
	commentAt int
}

// maxLineLength bounds a single input line. Exports often put a whole
// game's movetext on one line.
const maxLineLength = 16 << 20

// NewReader creates a Reader for r.
func NewReader(r io.Reader, opts Options) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)
	return &Reader{
		scanner: scanner,
		opts:    opts,
	}
}

// nextLine returns the next input line, honouring a pushed-back line.
func (r *Reader) nextLine() (string, bool) {
	if r.hasLine {
		r.hasLine = false
		return r.pending, true
	}
	if !r.scanner.Scan() {
		return "", false
	}
	r.line++
	return strings.TrimSpace(r.scanner.Text()), true
}

func (r *Reader) unread(line string) {
	r.pending = line
	r.hasLine = true
}

func (r *Reader) parseError(expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		File:     r.opts.File,
		Line:     r.line,
		Expected: expected,
		Got:      got,
	}
}

// ReadGame reads the next game. It returns nil, nil when the input is
// exhausted.
func (r *Reader) ReadGame() (*Game, error) {
	var game *Game
	for {
		line, ok := r.nextLine()
		if !ok {
			break
		}
		if line == "" || (strings.HasPrefix(line, "%") && !r.inComment) {
			continue
		}

		if strings.HasPrefix(line, "[") && !r.inComment && r.depth == 0 {
			if game != nil && len(game.Moves) > 0 {
				// Tags after movetext open the next game.
				r.unread(line)
				game.EndLine = r.line - 1
				return game, nil
			}
			if game == nil {
				game = NewGame()
				game.StartLine = r.line
			}
			m := tagPattern.FindStringSubmatch(line)
			if m == nil {
				return nil, r.parseError(`[Name "value"]`, line)
			}
			game.Tags[m[1]] = m[2]
			if m[1] == "Result" {
				game.Result = m[2]
			}
			continue
		}

		if game == nil {
			game = NewGame()
			game.StartLine = r.line
		}
		if r.scanMovetext(line, game) {
			game.EndLine = r.line
			return game, nil
		}
	}

	if err := r.scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading game record")
	}
	if r.inComment {
		r.inComment = false
		r.line = r.commentAt
		return nil, r.parseError("}", "end of input")
	}
	if game == nil {
		return nil, nil
	}
	game.EndLine = r.line
	return game, nil
}

// scanMovetext appends the moves found on line to game. It reports
// whether a termination marker ended the game.
func (r *Reader) scanMovetext(line string, game *Game) bool {
	var tok strings.Builder
	flush := func() bool {
		if tok.Len() == 0 {
			return false
		}
		done := r.addToken(tok.String(), game)
		tok.Reset()
		return done
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case r.inComment:
			if c == '}' {
				r.inComment = false
			}
		case c == '{':
			if flush() {
				return true
			}
			r.inComment = true
			r.commentAt = r.line
		case c == ';':
			return flush()
		case c == '(':
			if flush() {
				return true
			}
			r.depth++
		case c == ')':
			if r.depth > 0 {
				r.depth--
			}
		case r.depth > 0:
		case c == ' ' || c == '\t':
			if flush() {
				return true
			}
		default:
			tok.WriteByte(c)
		}
	}
	return flush()
}

// addToken records one movetext token. It reports whether the token
// terminated the game.
func (r *Reader) addToken(token string, game *Game) bool {
	if IsResult(token) {
		if game.Result == "" || game.Result == "?" {
			game.Result = token
		}
		r.depth = 0
		return true
	}
	token = moveNumberPattern.ReplaceAllString(token, "")
	if token == "" || nagPattern.MatchString(token) {
		return false
	}
	if r.opts.French {
		token = TranslateFrench(token)
	}
	game.Moves = append(game.Moves, token)
	return false
}

// ReadAll reads every game from the input.
func (r *Reader) ReadAll() ([]*Game, error) {
	games := make([]*Game, 0, 16)
	for {
		game, err := r.ReadGame()
		if err != nil {
			return games, err
		}
		if game == nil {
			return games, nil
		}
		games = append(games, game)
	}
}

// ReadAll reads every game from rd.
func ReadAll(rd io.Reader, opts Options) ([]*Game, error) {
	return NewReader(rd, opts).ReadAll()
}

// SplitMoves extracts the moves from a single movetext string.
func SplitMoves(movetext string, french bool) []string {
	r := &Reader{opts: Options{French: french}}
	game := NewGame()
	for _, line := range strings.Split(movetext, "\n") {
		if r.scanMovetext(strings.TrimSpace(line), game) {
			break
		}
	}
	return game.Moves
}
