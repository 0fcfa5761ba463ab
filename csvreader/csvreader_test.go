package csvreader

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	r := New(strings.NewReader("one,two,three\nfour,five,six"))

	tokens, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, tokens)

	tokens, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []string{"four", "five", "six"}, tokens)

	_, err = r.ReadLine()
	assert.Equal(t, io.EOF, err)
}

func TestReadLineDifferingLengths(t *testing.T) {
	r := New(strings.NewReader("one,two\nthree,four,five\nsix,seven"))

	tokens, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, tokens)

	tokens, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []string{"three", "four", "five"}, tokens)

	tokens, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []string{"six", "seven"}, tokens)

	_, err = r.ReadLine()
	assert.Equal(t, io.EOF, err)
}

func TestReadLineSkipsBlankLines(t *testing.T) {
	r := New(strings.NewReader("one,two\n   \nthree,four,five\n  \nsix,seven"))

	tokens, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, tokens)

	tokens, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []string{"three", "four", "five"}, tokens)

	tokens, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []string{"six", "seven"}, tokens)

	_, err = r.ReadLine()
	assert.Equal(t, io.EOF, err)
}

func TestReadLinePreservesTokenWhitespace(t *testing.T) {
	r := New(strings.NewReader("one  , two,thr  ee\n four ,   five,six"))

	tokens, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []string{"one  ", " two", "thr  ee"}, tokens)

	tokens, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []string{" four ", "   five", "six"}, tokens)
}

func TestReadLineTrimmed(t *testing.T) {
	r := New(strings.NewReader("one  , two,thr  ee\n four ,   five,six"))

	tokens, err := r.ReadLineTrimmed()
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "thr  ee"}, tokens)

	tokens, err = r.ReadLineTrimmed()
	require.NoError(t, err)
	assert.Equal(t, []string{"four", "five", "six"}, tokens)

	_, err = r.ReadLineTrimmed()
	assert.Equal(t, io.EOF, err)
}

func TestComments(t *testing.T) {
	r := New(strings.NewReader("#column 1, column 2, column 3\none,two,three\nfour,five,six"))

	tokens, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, tokens)

	tokens, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []string{"four", "five", "six"}, tokens)

	_, err = r.ReadLine()
	assert.Equal(t, io.EOF, err)
}

func TestSetCommentChar(t *testing.T) {
	r := New(strings.NewReader("$column 1, column 2\n#one,two\nthree,four"))
	r.SetCommentChar('$')

	// '#' is no longer the comment char, so the second line is data.
	tokens, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []string{"#one", "two"}, tokens)

	tokens, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []string{"three", "four"}, tokens)
}

func TestCommentAfterLeadingWhitespace(t *testing.T) {
	r := New(strings.NewReader("   # indented comment\na,b"))

	tokens, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tokens)
}

func TestSpaceDelimiter(t *testing.T) {
	r := New(strings.NewReader("start\n  circle\n centerlla 25.1  58.2 0.\nend"))
	r.SetDelimiterChar(' ')

	tokens, err := r.ReadLineTrimmed()
	require.NoError(t, err)
	assert.Equal(t, []string{"start"}, tokens)

	tokens, err = r.ReadLineTrimmed()
	require.NoError(t, err)
	assert.Equal(t, []string{"circle"}, tokens)

	// consecutive delimiters collapse; no empty tokens
	tokens, err = r.ReadLineTrimmed()
	require.NoError(t, err)
	assert.Equal(t, []string{"centerlla", "25.1", "58.2", "0."}, tokens)

	tokens, err = r.ReadLineTrimmed()
	require.NoError(t, err)
	assert.Equal(t, []string{"end"}, tokens)

	_, err = r.ReadLineTrimmed()
	assert.Equal(t, io.EOF, err)
}

func TestLineNumber(t *testing.T) {
	r := New(strings.NewReader("# header\n\na,b\nc,d"))
	assert.Equal(t, 0, r.LineNumber())

	_, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, 3, r.LineNumber())

	_, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, 4, r.LineNumber())
}
