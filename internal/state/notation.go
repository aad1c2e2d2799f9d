package state

// This file holds the text notation of the pyramid: one block per level, from the
// base up, with the rows listed from the last to the first, like a chess diagram.
//
//	  A C E G
//	7 . . . . 7
//
//	5 . . . . 5
//
//	3 . . . . 3
//
//	1 B . . . 1
//	  A C E G
//
// Rows and columns are named so that a piece on a level above is labelled in
// between the labels of the pieces supporting it. Levels above the base are only
// listed up to the first empty one.

import (
	"fmt"
	"strconv"
	"strings"
)

// rowLabelWidth is the width of the row labels: 1 for the usual sizes, 2 once rows
// reach two digits.
func (g Geometry) rowLabelWidth() int {
	return len(strconv.Itoa(2*g.Size - 1))
}

// RowName returns the label of row r at height h.
func RowName(h, r int) string {
	return strconv.Itoa(2*r + 1 + h)
}

// ColumnName returns the label of column c at height h.
func ColumnName(h, c int) byte {
	return byte('A' + h + 2*c)
}

// String returns the text notation of the pyramid, always ending with a new line.
func (p *Pyramid) String() string {
	var sb strings.Builder
	width := p.rowLabelWidth()
	for h := range p.Size {
		if h > 0 && p.IsLevelEmpty(h) {
			break
		}
		levelSize := p.LevelSize(h)
		columns := make([]string, levelSize)
		for c := range levelSize {
			columns[c] = string(ColumnName(h, c))
		}
		header := strings.Repeat(" ", h+width+1) + strings.Join(columns, " ")
		sb.WriteString(header)
		sb.WriteByte('\n')
		for r := levelSize - 1; r >= 0; r-- {
			rowName := RowName(h, r)
			fmt.Fprintf(&sb, "%s%*s", strings.Repeat(" ", h), width, rowName)
			for c := range levelSize {
				sb.WriteByte(' ')
				sb.WriteByte(p.AtHRC(h, r, c).Letter())
			}
			sb.WriteByte(' ')
			sb.WriteString(rowName)
			sb.WriteByte('\n')
			if r > 0 {
				sb.WriteByte('\n')
			}
		}
		sb.WriteString(header)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParsePyramid parses the levels of a pyramid of the given size from the lines of
// its text notation (see Pyramid.String). Headers, labels and anything outside the
// cells positions are ignored. Missing cells, either because the lines are short or
// because the text ends early, are left empty.
//
// It returns a *ParseError if a cell holds anything other than a piece letter or '.'.
func ParsePyramid(size int, lines []string) (*Pyramid, error) {
	p := NewPyramid(size)
	width := p.rowLabelWidth()
	lineOffset := 0
	for h := range size {
		levelSize := p.LevelSize(h)
		for r := levelSize - 1; r >= 0; r-- {
			lineIdx := lineOffset + (levelSize-1-r)*2 + 1
			if lineIdx >= len(lines) {
				return p, nil
			}
			line := []rune(lines[lineIdx])
			for c := range levelSize {
				charIdx := 2*c + width + 1 + h
				char := '.'
				if charIdx < len(line) {
					char = line[charIdx]
				}
				piece, found := LetterToPiece[byte(char)]
				if !found || char > 0x7f || piece == Unusable {
					return nil, &ParseError{Line: lineIdx + 1, Column: charIdx + 1, Char: char}
				}
				if piece != Empty {
					p.Set(Pos{int8(h), int8(r), int8(c)}, piece)
				}
			}
		}
		lineOffset += levelSize*2 + 1
	}
	return p, nil
}

// splitLines splits text in lines, dropping a trailing end of line and carriage returns.
func splitLines(text string) []string {
	text = strings.TrimRight(text, " \t\r\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for ii, line := range lines {
		lines[ii] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
