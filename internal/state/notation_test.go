package state_test

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"

	. "github.com/janpfeifer/shibumiGo/internal/state"
)

func TestLabels(t *testing.T) {
	assert.Equal(t, "1", RowName(0, 0))
	assert.Equal(t, "7", RowName(0, 3))
	assert.Equal(t, "2", RowName(1, 0))
	assert.Equal(t, "4", RowName(3, 0))
	assert.Equal(t, byte('A'), ColumnName(0, 0))
	assert.Equal(t, byte('G'), ColumnName(0, 3))
	assert.Equal(t, byte('D'), ColumnName(3, 0))
	assert.Equal(t, "4D", PositionName(Pos{3, 0, 0}))
	assert.Equal(t, "3C", PositionName(Pos{0, 1, 1}))
	assert.Equal(t, "3C", PositionName(Pos{2, 0, 0}))
}

func TestParseMove(t *testing.T) {
	b := NewBoard(Spline)
	for _, text := range []string{"", "A", "1", "5D", "9A", "1I", "0A", "Q1A", "-1A"} {
		_, err := b.ParseMove(text)
		require.Errorf(t, err, "move %q", text)
		assert.Truef(t, errors.Is(err, ErrInvalidMove), "move %q: %v", text, err)
		var coordErr *CoordinateError
		assert.True(t, errors.As(err, &coordErr))
	}

	move, err := b.ParseMove(" 3c ")
	require.NoError(t, err)
	assert.Equal(t, 5, move)

	// 2B is not supported yet.
	_, err = b.ParseMove("2B")
	require.Error(t, err)

	_, err = b.Act(-1)
	assert.True(t, errors.Is(err, ErrInvalidMove))
	_, err = b.Act(30)
	assert.True(t, errors.Is(err, ErrInvalidMove))
	var coordErr *CoordinateError
	require.True(t, errors.As(err, &coordErr))
	assert.Equal(t, 30, coordErr.Index)
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		name, text   string
		line, column int
		char         rune
	}{
		{"bad letter", `  A C E G
7 . . . . 7

5 . . . . 5

3 . Z . . 3
`, 6, 5, 'Z'},
		{"space in a cell", `  A C E G
7 .   . . 7
`, 2, 5, ' '},
		{"upper level", `  A C E G
7 B B B B 7

5 B B B B 5

3 B B B B 3

1 B B B B 1
  A C E G
   B D F
 6 . . . 6

 4 . . . 4

 2 . . ? 2
   B D F
`, 15, 8, '?'},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseBoard(Spline, tc.text)
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "got %v", err)
			assert.Equal(t, tc.line, parseErr.Line)
			assert.Equal(t, tc.column, parseErr.Column)
			assert.Equal(t, tc.char, parseErr.Char)
		})
	}
}

func TestParseWindowsLines(t *testing.T) {
	text := `  A C E G
7 . . . . 7

5 . . . . 5

3 . . . . 3

1 W . . B 1
  A C E G
>B
`
	b, err := ParseBoard(Spargo, strings.ReplaceAll(text, "\n", "\r\n"))
	require.NoError(t, err)
	assert.Equal(t, text, b.String())
}

func TestVariantNames(t *testing.T) {
	for _, variant := range Variants {
		got, err := VariantFromName(strings.ToLower(variant.String()))
		require.NoError(t, err)
		assert.Equal(t, variant, got)
	}
	assert.Len(t, Variants, int(NumVariants))
	_, err := VariantFromName("hive")
	assert.Error(t, err)
	assert.Equal(t, "Variant(20)", Variant(20).String())
	assert.Panics(t, func() { NewBoard(Variant(20)) })
}
