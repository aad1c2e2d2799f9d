// shibumi plays one match of any of the Shibumi games on the terminal: human vs AI,
// human vs human (-hotseat) or AI vs AI (-watch).
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/janpfeifer/shibumiGo/internal/parameters"
	"github.com/janpfeifer/shibumiGo/internal/players"
	_ "github.com/janpfeifer/shibumiGo/internal/players/default"
	"github.com/janpfeifer/shibumiGo/internal/profilers"
	. "github.com/janpfeifer/shibumiGo/internal/state"
	"github.com/janpfeifer/shibumiGo/internal/ui/cli"
	"github.com/janpfeifer/shibumiGo/internal/ui/spinning"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"math/rand/v2"
	"os"
	"strings"
	"time"
)

var (
	flagGame      = flag.String("game", "spline", "Game to play, one of: spline, spargo, margo, spaiji, sparks, spire, sploof, spook, sandbox.")
	flagSize      = flag.Int("size", 0, "Number of levels of the pyramid. Defaults to the game's usual size.")
	flagBoard     = flag.String("board", "", "Path to a file with the board text to start from, instead of the start of the match.")
	flagHotseat   = flag.Bool("hotseat", false, "Hotseat match: human vs human")
	flagWatch     = flag.Bool("watch", false, "Watch mode: AI vs AI playing")
	flagFirst     = flag.String("first", "", "Who plays first: human or ai. Default is random.")
	flagAIConfig  = flag.String("config", "", "AI configuration against which to play. It can be a preset \"@name\" of -players_file.")
	flagAIConfig2 = flag.String("config2", "", "Second AI configuration, if playing AI vs AI with --watch")
	flagPlayers   = flag.String("players_file", "", "YAML file with named AI configurations (presets), see -config.")
	flagMaxMoves  = flag.Int(
		"max_moves", DefaultMaxMoves, "Max moves before game is considered a draw.")
	flagQuiet = flag.Bool("quiet", false, "Quiet mode for when watching AI play, only the moves and the last board position is printed.")

	// aiPlayers: if missing, it's a human playing.
	aiPlayers = make(map[Piece]players.Player)

	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagMaxMoves <= 0 {
		klog.Fatalf("Invalid --max_moves=%d", *flagMaxMoves)
	}

	// Capture Control+C
	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	profilers.Setup(globalCtx)
	defer profilers.OnQuit()

	// Create board, players and UI.
	board := must.M1(loadBoard())
	board.MaxMoves = *flagMaxMoves
	must.M(createPlayers(board.Variant))
	ui := cli.New(true, false)

	// Loop over match.
	for !board.IsFinished() {
		if globalCtx.Err() != nil {
			klog.Exitf("Interrupted: %v", globalCtx.Err())
		}
		if board.NumActions() == 0 {
			// Only happens if the board was loaded in a position without moves.
			klog.Exitf("No moves available to %s at move #%d", board.ActivePlayer(), board.MoveNumber)
		}
		aiPlayer, isAI := aiPlayers[board.ActivePlayer()]
		if !isAI {
			newBoard, err := ui.RunNextMove(board)
			if errors.Is(err, cli.ErrQuit) {
				fmt.Println("Bye!")
				return
			}
			if err != nil {
				klog.Exitf("Failed to run match: %+v", err)
			}
			board = newBoard
			continue
		}

		// AI plays.
		if *flagWatch && !*flagQuiet {
			ui.Print(board, false)
			fmt.Printf("\tAI playing: ")
		} else {
			ui.PrintPlayer(board)
			fmt.Print(" AI: ")
		}
		s := spinning.New(globalCtx)
		move, newBoard, score, _, err := aiPlayer.Play(board)
		s.Done()
		if err != nil {
			klog.Exitf("AI failed: %+v", err)
		}
		fmt.Printf(" %s (score=%.3f)\n\n", board.DisplayMove(move), score)
		board = newBoard
	}

	ui.Print(board, false)
	ui.PrintWinner(board)
	for _, p := range aiPlayers {
		p.Finalize()
	}
}

// loadBoard creates the starting board of the match, from -game, -size and -board.
func loadBoard() (board *Board, err error) {
	variant, err := VariantFromName(*flagGame)
	if err != nil {
		return nil, err
	}
	size := *flagSize
	if size == 0 {
		size = variant.DefaultSize()
	}
	var text string
	if *flagBoard != "" {
		content, err := os.ReadFile(*flagBoard)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read -board=%q", *flagBoard)
		}
		text = string(content)
	}
	// Invalid sizes panic.
	var parseErr error
	err = exceptions.TryCatch[error](func() {
		if text == "" {
			board = NewBoardWithSize(variant, size)
			return
		}
		board, parseErr = ParseBoardWithSize(variant, size, text)
	})
	if err != nil {
		return nil, err
	}
	if parseErr != nil {
		return nil, errors.WithMessagef(parseErr, "failed to parse -board=%q", *flagBoard)
	}
	return board, nil
}

// resolveConfig resolves "@preset" configurations using -players_file.
func resolveConfig(config string) (string, error) {
	if *flagPlayers == "" {
		return config, nil
	}
	presets, err := parameters.LoadPresets(*flagPlayers)
	if err != nil {
		return "", err
	}
	return presets.Resolve(config)
}

// createPlayers in aiPlayers.
func createPlayers(variant Variant) error {
	if *flagHotseat && *flagWatch {
		return errors.New("--hotseat and --watch cannot be used together")
	}
	sides := variant.Players()
	if *flagHotseat || len(sides) == 0 {
		// Both players are human, nothing to do.
		return nil
	}

	// Create AI player:
	var aiSide int
	switch strings.ToLower(*flagFirst) {
	case "human":
		aiSide = 1
	case "ai":
		aiSide = 0
	case "":
		aiSide = rand.IntN(2)
	default:
		return errors.Errorf("invalid --first=%q, only valid values are \"human\" or \"ai\"", *flagFirst)
	}
	if *flagWatch {
		aiSide = 0
	}
	configs := []string{*flagAIConfig, *flagAIConfig2}
	for ii := range 2 {
		if ii == 1 && !*flagWatch {
			break
		}
		side := sides[(aiSide+ii)%2]
		config, err := resolveConfig(configs[ii])
		if err != nil {
			return err
		}
		player, err := players.New(variant, config)
		if err != nil {
			return err
		}
		klog.V(1).Infof("%s played by AI %q", side, player.Config)
		aiPlayers[side] = player
	}
	return nil
}
