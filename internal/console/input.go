package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrInputClosed = errors.New("input closed")

type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// ReadLine devuelve la siguiente línea sin espacios en los extremos.
// Una última línea sin '\n' también vale; después, ErrInputClosed.
func (l *lineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrInputClosed
			}
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("read line: %w", err)
	}
	return strings.TrimSpace(line), nil
}
