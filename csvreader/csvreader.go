// Package csvreader provides a line-oriented delimited-text tokenizer with
// comment-line support.
//
// Unlike encoding/csv, the reader skips blank and comment lines, allows the
// comment character to be changed between reads, and never coalesces or
// quotes tokens: a line is split on the delimiter exactly as written, with
// token-internal whitespace preserved. ReadLineTrimmed additionally strips
// leading and trailing whitespace from each token. Rows may have differing
// token counts.
package csvreader

import (
	"bufio"
	"io"
	"strings"
)

// Reader tokenizes an input stream line by line.
type Reader struct {
	scanner     *bufio.Scanner
	commentChar rune
	delimiter   rune
	lineNumber  int
}

// New creates a Reader for the given stream with the default comment
// character '#' and delimiter ','.
func New(r io.Reader) *Reader {
	return &Reader{
		scanner:     bufio.NewScanner(r),
		commentChar: '#',
		delimiter:   ',',
	}
}

// SetCommentChar changes the comment character. The change applies to all
// subsequent reads.
func (r *Reader) SetCommentChar(c rune) {
	r.commentChar = c
}

// SetDelimiterChar changes the token delimiter. The change applies to all
// subsequent reads.
func (r *Reader) SetDelimiterChar(c rune) {
	r.delimiter = c
}

// LineNumber returns the 1-based line number of the most recently read line,
// or 0 if nothing has been read.
func (r *Reader) LineNumber() int {
	return r.lineNumber
}

// ReadLine returns the tokens of the next non-blank, non-comment line.
// Consecutive delimiters produce no empty tokens. Returns io.EOF when the
// stream is exhausted.
func (r *Reader) ReadLine() ([]string, error) {
	for {
		line, err := r.nextLine()
		if err != nil {
			return nil, err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if []rune(trimmed)[0] == r.commentChar {
			continue
		}

		var tokens []string
		for _, tok := range strings.Split(line, string(r.delimiter)) {
			if tok == "" {
				continue
			}
			tokens = append(tokens, tok)
		}
		if len(tokens) == 0 {
			continue
		}
		return tokens, nil
	}
}

// ReadLineTrimmed behaves like ReadLine but trims leading and trailing
// whitespace from each token, dropping tokens that trim to nothing.
func (r *Reader) ReadLineTrimmed() ([]string, error) {
	tokens, err := r.ReadLine()
	if err != nil {
		return nil, err
	}
	trimmed := tokens[:0]
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		trimmed = append(trimmed, tok)
	}
	if len(trimmed) == 0 {
		// Every token was pure whitespace; treat like a blank line.
		return r.ReadLineTrimmed()
	}
	return trimmed, nil
}

func (r *Reader) nextLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	r.lineNumber++
	return strings.TrimSuffix(r.scanner.Text(), "\r"), nil
}
