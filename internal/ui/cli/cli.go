// Package cli implements a command-line UI for the games.
package cli

import (
	"bufio"
	"fmt"
	"github.com/charmbracelet/lipgloss"
	. "github.com/janpfeifer/shibumiGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"io"
	"os"
	"strings"
	"unicode"
)

// ErrQuit is returned by ReadCommand when the user asks to leave the match.
var ErrQuit = errors.New("user quit the match")

// defaultTerminalWidth is used when the output is not a terminal.
const defaultTerminalWidth = 80

// maxReadErrors is the number of invalid commands accepted in a row before giving up.
const maxReadErrors = 3

var (
	pieceStyles = [NumPieces]lipgloss.Style{
		Black: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("0")),
		White: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")),
		Red:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")),
	}
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	drawStyle   = lipgloss.NewStyle().Background(lipgloss.Color("13")).Foreground(lipgloss.Color("0")).Padding(1, 2)
	winnerStyle = lipgloss.NewStyle().Bold(true).Border(lipgloss.RoundedBorder()).Padding(0, 2)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("5"))
)

// UI reads the moves of human players and prints the boards.
type UI struct {
	color, clearScreen bool
	reader             *bufio.Reader
	out                io.Writer
}

// New creates a UI reading from the standard input and printing to the standard output.
func New(color bool, clearScreen bool) *UI {
	return NewWithIO(os.Stdin, os.Stdout, color, clearScreen)
}

// NewWithIO creates a UI reading commands from in, and printing to out.
func NewWithIO(in io.Reader, out io.Writer, color bool, clearScreen bool) *UI {
	return &UI{
		color:       color,
		clearScreen: clearScreen,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

func (ui *UI) terminalWidth() int {
	f, ok := ui.out.(*os.File)
	if !ok {
		return defaultTerminalWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}

func (ui *UI) printCentered(block string) {
	block = strings.TrimRight(block, "\n")
	blockWidth := lipgloss.Width(block)
	indent := max((ui.terminalWidth()-blockWidth)/2, 0)
	for _, line := range strings.Split(block, "\n") {
		if len(line) == 0 {
			_, _ = fmt.Fprintln(ui.out)
			continue
		}
		_, _ = fmt.Fprintf(ui.out, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

func (ui *UI) render(style lipgloss.Style, text string) string {
	if !ui.color {
		return text
	}
	return style.Render(text)
}

// RunNextMove reads the move of the human player and returns the board after it.
func (ui *UI) RunNextMove(board *Board) (*Board, error) {
	ui.Print(board, true)
	_, _ = fmt.Fprintln(ui.out)
	for numErrs := 0; ; numErrs++ {
		move, err := ui.ReadCommand(board)
		if err != nil {
			return board, err
		}
		newBoard, err := board.Act(move)
		if err == nil {
			return newBoard, nil
		}
		if !errors.Is(err, ErrIllegalMove) || numErrs+1 >= maxReadErrors {
			return board, err
		}
		// Some moves of Spargo are only found illegal when played.
		_, _ = fmt.Fprintln(ui.out, ui.render(errorStyle, fmt.Sprintf("    * %s", err)))
	}
}

// Run plays the match on the UI, with all moves read from the user, until it is finished.
func (ui *UI) Run(board *Board) (*Board, error) {
	for !board.IsFinished() {
		var err error
		board, err = ui.RunNextMove(board)
		if err != nil {
			return board, err
		}
	}
	ui.Print(board, false)
	ui.PrintWinner(board)
	return board, nil
}

// PrintWinner prints the result of a finished match.
func (ui *UI) PrintWinner(b *Board) {
	_, _ = fmt.Fprintln(ui.out)
	if b.Draw() {
		ui.printCentered(ui.render(drawStyle, fmt.Sprintf("*** DRAW: %s! ***", b.FinishReason())))
	} else {
		winner := b.Winner()
		ui.printCentered(ui.render(winnerStyle.Inherit(pieceStyles[winner]),
			fmt.Sprintf("*** %s PLAYER WINS!! Congratulations! ***", strings.ToUpper(winner.String()))))
	}
	_, _ = fmt.Fprintln(ui.out)
}

// ReadCommand reads the next move of the player to move on b.
//
// Besides moves, it accepts "moves" (or "?") to list the valid moves, and "quit" (or "exit"),
// in which case it returns ErrQuit.
func (ui *UI) ReadCommand(b *Board) (move int, err error) {
	for numErrs := 0; numErrs < maxReadErrors; {
		_, _ = fmt.Fprint(ui.out, "    ")
		ui.PrintPlayer(b)
		_, _ = fmt.Fprint(ui.out, ui.render(promptStyle, " move >")+" ")

		var text string
		text, err = ui.reader.ReadString('\n')
		if err != nil && (err != io.EOF || text == "") {
			err = errors.Wrap(err, "failed to read command")
			return
		}
		text = strings.TrimSpace(text)
		switch strings.ToLower(text) {
		case "quit", "exit":
			return 0, ErrQuit
		case "moves", "?":
			ui.printActions(b)
			continue
		}

		move, err = b.ParseMove(text)
		if err == nil {
			return
		}
		_, _ = fmt.Fprintln(ui.out, ui.render(errorStyle, fmt.Sprintf("    * %s Type \"moves\" to list them.", err)))
		numErrs++
	}
	err = errors.Errorf("failed to read a valid move %d times", maxReadErrors)
	return
}

// Print the board, and optionally the list of valid moves.
func (ui *UI) Print(board *Board, includeAvailableActions bool) {
	if ui.clearScreen {
		_, _ = fmt.Fprint(ui.out, "\033c")
	}
	_, _ = fmt.Fprintf(ui.out, "\n%s\n\n", ui.render(titleStyle, fmt.Sprintf("%s - Move #%d", board.Variant, board.MoveNumber)))
	ui.PrintBoard(board)
	_, _ = fmt.Fprintln(ui.out)

	if !board.IsFinished() {
		if includeAvailableActions {
			ui.PrintPlayer(board)
			_, _ = fmt.Fprintln(ui.out, " turn to play")
			ui.printActions(board)
		} else {
			_, _ = fmt.Fprint(ui.out, "\tTurn to play: ")
			ui.PrintPlayer(board)
			_, _ = fmt.Fprintln(ui.out)
		}
	}
}

// PrintPlayer prints the name of the player to move.
func (ui *UI) PrintPlayer(board *Board) {
	player := board.ActivePlayer()
	if player == Empty {
		_, _ = fmt.Fprint(ui.out, "Any Player")
		return
	}
	_, _ = fmt.Fprint(ui.out, ui.render(pieceStyles[player], fmt.Sprintf(" %s Player ", player)))
}

// PrintBoard prints the board centered in the terminal, with the pieces in colour.
func (ui *UI) PrintBoard(board *Board) {
	lines := strings.Split(strings.TrimRight(board.String(), "\n"), "\n")
	for ii, line := range lines {
		lines[ii] = ui.colourRow(line)
	}
	ui.printCentered(strings.Join(lines, "\n"))
}

// colourRow returns the line with the pieces in colour, if it is a row of cells: a row label,
// followed by the cells and the row label again.
func (ui *UI) colourRow(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	if !ui.color || trimmed == "" || !unicode.IsDigit(rune(trimmed[0])) {
		return line
	}
	start := len(line) - len(trimmed) + strings.Index(trimmed, " ")
	end := strings.LastIndex(line, " ")
	if start >= end {
		return line
	}
	var sb strings.Builder
	sb.WriteString(line[:start])
	for _, r := range line[start:end] {
		piece, found := LetterToPiece[byte(r)]
		if found && piece.IsColour() {
			sb.WriteString(pieceStyles[piece].Render(string(r)))
		} else {
			sb.WriteRune(r)
		}
	}
	sb.WriteString(line[end:])
	return sb.String()
}

func (ui *UI) printActions(b *Board) {
	actions := b.Actions()
	if len(actions) == 0 {
		_, _ = fmt.Fprintln(ui.out, "- No moves available.")
		return
	}
	names := make([]string, len(actions))
	for ii, action := range actions {
		names[ii] = b.DisplayMove(action)
	}
	_, _ = fmt.Fprintf(ui.out, "- Available moves: [%s]\n", strings.Join(names, ", "))
	_, _ = fmt.Fprintf(ui.out, "    Example: type '%s' to play it.\n", names[0])
}
