// compare plays a number of matches between two AI configurations, alternating who plays
// first, and reports the results.
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/google/uuid"
	"github.com/janpfeifer/must"
	"github.com/janpfeifer/shibumiGo/internal/parameters"
	"github.com/janpfeifer/shibumiGo/internal/players"
	_ "github.com/janpfeifer/shibumiGo/internal/players/default"
	"github.com/janpfeifer/shibumiGo/internal/profilers"
	"github.com/janpfeifer/shibumiGo/internal/state"
	"github.com/janpfeifer/shibumiGo/internal/ui/cli"
	"github.com/janpfeifer/shibumiGo/internal/ui/spinning"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	flagGame          = flag.String("game", "spline", "Game to play, one of: spline, spargo, margo, spaiji, sparks, spire, sploof, spook.")
	flagSize          = flag.Int("size", 0, "Number of levels of the pyramid. Defaults to the game's usual size.")
	flagPlayer1Config = flag.String("ai1", "", "1st player configuration.")
	flagPlayer2Config = flag.String("ai2", "", "2nd player configuration.")
	flagPlayers       = flag.String("players_file", "", "YAML file with named AI configurations (presets), used as -ai1=@name.")
	flagNumMatches    = flag.Int("num_matches", 100, "Number of matches to play.")
	flagParallelism   = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and play "+
		"these many matches simultaneously.")
	flagPrintSteps = flag.Bool("print_steps", false, "Print board at each step. "+
		"Very verbose, and you probably want to set flagParallelism to 1.")
	flagMaxMoves = flag.Int(
		"max_moves", state.DefaultMaxMoves, "Max moves before game is assumed to be a draw.")
)

// Globals
var (
	// globalCtx used everywhere. It is cancelled when the program is about to exit either by
	// an interrupt (ctrl+C) or by reaching the end.
	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *flagPlayer1Config == "" || *flagPlayer2Config == "" {
		klog.Fatal("You must configure both players to compare with flags -ai1 and -ai2")
	}

	// Capture Control+C
	var globalCancel func()
	globalCtx, globalCancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(globalCancel, 5*time.Second)
	defer globalCancel()

	// Profilers: HTTP profiler server and CPU profile.
	profilers.Setup(globalCtx)
	defer profilers.OnQuit()

	variant := must.M1(state.VariantFromName(*flagGame))
	if len(variant.Players()) != 2 {
		klog.Fatalf("%s has no players to compare", variant)
	}
	configs := must.M1(resolveConfigs())
	// Check the configurations before starting.
	for _, config := range configs {
		must.M1(players.New(variant, config))
	}
	must.M(runMatches(globalCtx, variant, configs))
}

// resolveConfigs returns the configurations of the two AIs, with presets resolved.
func resolveConfigs() (configs [2]string, err error) {
	configs = [2]string{*flagPlayer1Config, *flagPlayer2Config}
	if *flagPlayers == "" {
		return
	}
	presets, err := parameters.LoadPresets(*flagPlayers)
	if err != nil {
		return
	}
	for ii, config := range configs {
		configs[ii], err = presets.Resolve(config)
		if err != nil {
			return
		}
	}
	return
}

// Results of the matches played so far, indexed by AI (0 for -ai1, 1 for -ai2).
type Results struct {
	mu                   sync.Mutex
	start                time.Time
	winsAs1st, winsAs2nd [2]int
	draws                [2]int
	played, total        int
}

func (r *Results) String() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Played %d of %d: ", r.played, r.total))
	for aiIdx := range 2 {
		parts = append(parts,
			fmt.Sprintf("AI-%d: %d Wins (1st: %d, 2nd: %d) / ",
				aiIdx+1, r.winsAs1st[aiIdx]+r.winsAs2nd[aiIdx],
				r.winsAs1st[aiIdx], r.winsAs2nd[aiIdx]))
	}
	parts = append(parts, fmt.Sprintf("%d draws (%d AI-1 as 1st, %d AI-2 as 1st) - ",
		r.draws[0]+r.draws[1], r.draws[0], r.draws[1]))
	parts = append(parts, time.Since(r.start).Round(time.Millisecond).String())
	return strings.Join(parts, "")
}

// Record the result of a match: first is the AI that played first, and winner the AI that won or -1 for a draw.
func (r *Results) Record(first, winner int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case winner < 0:
		r.draws[first]++
	case winner == first:
		r.winsAs1st[winner]++
	default:
		r.winsAs2nd[winner]++
	}
	r.played++
}

func runMatches(ctx context.Context, variant state.Variant, configs [2]string) error {
	r := &Results{
		start: time.Now(),
		total: *flagNumMatches,
	}
	bar := progressbar.NewOptions(r.total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("matches"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionClearOnFinish())

	var wg errgroup.Group
	wg.SetLimit(getParallelism())
	for matchIdx := range r.total {
		wg.Go(func() error {
			// Alternate the AI that plays first.
			first := matchIdx % 2
			winner, err := runMatch(ctx, variant, matchIdx, first, configs)
			if err != nil || ctx.Err() != nil {
				return err
			}
			r.Record(first, winner)
			_ = bar.Add(1)
			return nil
		})
	}
	err := wg.Wait()
	_ = bar.Finish()
	fmt.Println(r)
	if ctx.Err() != nil {
		fmt.Printf("Interrupted: %s\n", ctx.Err())
		return nil
	}
	return err
}

var (
	stepUI   = cli.New(true, false)
	muStepUI sync.Mutex
)

// runMatch plays one match, and returns the index of the AI that won, or -1 for a draw.
// Players are created for each match, since searchers are not safe for concurrent use.
func runMatch(ctx context.Context, variant state.Variant, matchNum, first int, configs [2]string) (winner int, err error) {
	if ctx.Err() != nil {
		// Already interrupted.
		return -1, nil
	}
	matchName := fmt.Sprintf("Match-%05d-%s", matchNum, uuid.NewString()[:8])
	if klog.V(1).Enabled() {
		klog.Infof("Starting %s", matchName)
		defer klog.Infof("Finished %s", matchName)
	}
	board := state.NewBoard(variant)
	if *flagSize > 0 {
		board = state.NewBoardWithSize(variant, *flagSize)
	}
	board.MaxMoves = *flagMaxMoves

	// aiOf maps each side to the AI index playing it.
	sides := variant.Players()
	aiOf := map[state.Piece]int{sides[0]: first, sides[1]: 1 - first}
	var aiPlayers [2]players.Player
	for aiIdx, config := range configs {
		aiPlayers[aiIdx], err = players.New(variant, config)
		if err != nil {
			return -1, err
		}
	}
	defer func() {
		for _, p := range aiPlayers {
			if p != nil {
				p.Finalize()
			}
		}
	}()

	// Run match.
	for !board.IsFinished() {
		if ctx.Err() != nil {
			klog.V(1).Infof("%s interrupted: %s", matchName, ctx.Err())
			return -1, nil
		}
		side := board.ActivePlayer()
		player := aiPlayers[aiOf[side]]
		if klog.V(2).Enabled() {
			klog.Infof("%s: %s at move #%d (#valid moves=%d)", matchName, side, board.MoveNumber, board.NumActions())
		}
		move, nextBoard, score, _, err := player.Play(board)
		if err != nil {
			return -1, errors.WithMessagef(err, "%s failed", matchName)
		}
		if *flagPrintSteps {
			muStepUI.Lock()
			fmt.Printf("%s, move #%d: %s plays %s (score=%.3f)\n\n", matchName, board.MoveNumber, side, board.DisplayMove(move), score)
			stepUI.PrintBoard(nextBoard)
			fmt.Println()
			fmt.Println("------------------")
			muStepUI.Unlock()
		}
		board = nextBoard
	}

	if winnerSide := board.Winner(); winnerSide != state.Empty {
		return aiOf[winnerSide], nil
	}
	return -1, nil
}

// getParallelism returns the parallelism.
func getParallelism() (parallelism int) {
	parallelism = runtime.GOMAXPROCS(0)
	if *flagParallelism > 0 {
		parallelism = *flagParallelism
	}
	return
}
