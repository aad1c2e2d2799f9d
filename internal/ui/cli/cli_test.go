package cli_test

import (
	"bytes"
	"github.com/janpfeifer/shibumiGo/internal/ui/cli"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"

	. "github.com/janpfeifer/shibumiGo/internal/state"
)

func TestReadCommand(t *testing.T) {
	var out bytes.Buffer
	ui := cli.NewWithIO(strings.NewReader("9Z\nmoves\n3E\n"), &out, false, false)
	b := NewBoard(Spline)
	move, err := ui.ReadCommand(b)
	require.NoError(t, err)
	want, err := b.ParseMove("3E")
	require.NoError(t, err)
	assert.Equal(t, want, move)
	assert.Contains(t, out.String(), "Invalid move")
	assert.Contains(t, out.String(), "Available moves: [1A, 1C,")

	// Quit.
	ui = cli.NewWithIO(strings.NewReader("quit\n"), &out, false, false)
	_, err = ui.ReadCommand(b)
	assert.True(t, errors.Is(err, cli.ErrQuit))

	// Too many errors.
	ui = cli.NewWithIO(strings.NewReader("x\ny\nz\n3E\n"), &out, false, false)
	_, err = ui.ReadCommand(b)
	require.Error(t, err)

	// End of input.
	ui = cli.NewWithIO(strings.NewReader(""), &out, false, false)
	_, err = ui.ReadCommand(b)
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	ui := cli.NewWithIO(strings.NewReader("1A\n3A\n1C\n3C\n1E\n3E\n1G\n"), &out, false, false)
	b, err := ui.Run(NewBoard(Spline))
	require.NoError(t, err)
	assert.True(t, b.IsWin(Black))
	assert.Contains(t, out.String(), "BLACK PLAYER WINS")
}

func TestPrintBoard(t *testing.T) {
	b := NewBoard(Spook)
	var out bytes.Buffer
	ui := cli.NewWithIO(strings.NewReader(""), &out, false, false)
	ui.PrintBoard(b)
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		assert.Contains(t, out.String(), line)
	}

	// With colours the pieces are styled, but the labels are kept.
	out.Reset()
	ui = cli.NewWithIO(strings.NewReader(""), &out, true, false)
	ui.Print(b, true)
	assert.Contains(t, out.String(), "Move #1")
	assert.Contains(t, out.String(), "A C E G")
}
