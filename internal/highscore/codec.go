// Package highscore keeps the persisted top-5 score ledger.
//
// The on-disk format is plain text: five decimal integers, one per line,
// highest first, no header. Reading is forgiving: anything that cannot be
// used is replaced by 0 and reported, never fatal.
package highscore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Size is the number of entries in the ledger.
const Size = 5

// Scores is the ledger content, highest first.
type Scores [Size]int

// ErrMalformed is wrapped when stored data had to be repaired while decoding.
var ErrMalformed = errors.New("malformed highscore data")

// maxLineLen bounds one ledger line; longer lines are skipped as malformed.
const maxLineLen = 64

// Decode reads a ledger. Missing lines count as 0 and extra lines are ignored.
// Lines that are not non-negative integers are replaced by 0, and an out of
// order ledger is re-sorted; both cases return the repaired scores together
// with an error wrapping ErrMalformed.
func Decode(r io.Reader) (Scores, error) {
	var (
		s   Scores
		bad []string
		br  = bufio.NewReaderSize(r, maxLineLen)
	)

	for line := 0; line < Size; line++ {
		text, tooLong, err := readLine(br)
		if err != nil && !errors.Is(err, io.EOF) {
			return Scores{}, fmt.Errorf("highscore: read: %w", err)
		}
		if errors.Is(err, io.EOF) && text == "" && !tooLong {
			break
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(text))
		switch {
		case tooLong:
			bad = append(bad, fmt.Sprintf("line %d too long", line+1))
		case convErr != nil || n < 0:
			bad = append(bad, fmt.Sprintf("line %d %q", line+1, strings.TrimSpace(text)))
		default:
			s[line] = n
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}

	if !s.Sorted() {
		s.sort()
		bad = append(bad, "entries out of order")
	}

	if len(bad) > 0 {
		return s, fmt.Errorf("%w: %s", ErrMalformed, strings.Join(bad, ", "))
	}
	return s, nil
}

// readLine returns the next line without its newline. A line that does not
// fit the reader's buffer is consumed entirely and reported as too long.
func readLine(br *bufio.Reader) (string, bool, error) {
	chunk, err := br.ReadSlice('\n')
	if !errors.Is(err, bufio.ErrBufferFull) {
		return strings.TrimSuffix(string(chunk), "\n"), false, err
	}
	for errors.Is(err, bufio.ErrBufferFull) {
		_, err = br.ReadSlice('\n')
	}
	return "", true, err
}

// Encode writes the ledger in the newline-delimited text format.
func Encode(w io.Writer, s Scores) error {
	bw := bufio.NewWriter(w)
	for _, v := range s {
		if _, err := fmt.Fprintf(bw, "%d\n", v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Insert places score at the first position it exceeds, shifting lower
// entries down and dropping the last one. It returns the new ledger and the
// 0-based rank, or the unchanged ledger and -1 if score does not qualify.
func (s Scores) Insert(score int) (Scores, int) {
	for i, v := range s {
		if score > v {
			copy(s[i+1:], s[i:Size-1])
			s[i] = score
			return s, i
		}
	}
	return s, -1
}

// Sorted reports whether the entries are in descending order.
func (s Scores) Sorted() bool {
	for i := 1; i < Size; i++ {
		if s[i] > s[i-1] {
			return false
		}
	}
	return true
}

// Normalized returns the entries in descending order.
func (s Scores) Normalized() Scores {
	s.sort()
	return s
}

// Best returns the top entry.
func (s Scores) Best() int {
	return s[0]
}

func (s *Scores) sort() {
	sort.Sort(sort.Reverse(sort.IntSlice(s[:])))
}
