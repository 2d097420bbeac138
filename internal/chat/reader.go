package chat

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LineReader yields newline-terminated lines from a stream, one per call,
// with the terminator stripped. Lines longer than max are dropped in full
// and reported as ErrLineTooLong; the next call starts at the following line.
type LineReader struct {
	r   *bufio.Reader
	max int
}

func NewLineReader(src io.Reader, max int) *LineReader {
	if max <= 0 {
		max = 1024
	}
	return &LineReader{r: bufio.NewReader(src), max: max}
}

func (lr *LineReader) ReadLine() (string, error) {
	var buf []byte
	for {
		chunk, err := lr.r.ReadSlice('\n')
		buf = append(buf, chunk...)
		switch err {
		case nil:
			line := strings.TrimRight(string(buf), "\r\n")
			if len(line) > lr.max {
				return "", ErrLineTooLong
			}
			return line, nil
		case bufio.ErrBufferFull:
			if len(buf) > lr.max {
				if derr := lr.discardLine(); derr != nil {
					return "", derr
				}
				return "", ErrLineTooLong
			}
		case io.EOF:
			if len(buf) == 0 {
				return "", io.EOF
			}
			// last line without newline
			line := strings.TrimRight(string(buf), "\r\n")
			if len(line) > lr.max {
				return "", ErrLineTooLong
			}
			return line, nil
		default:
			return "", fmt.Errorf("read line: %w", err)
		}
	}
}

// discardLine consumes input up to and including the next newline.
func (lr *LineReader) discardLine() error {
	for {
		_, err := lr.r.ReadSlice('\n')
		switch err {
		case nil:
			return nil
		case bufio.ErrBufferFull:
			continue
		default:
			return err
		}
	}
}
