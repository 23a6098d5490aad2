package common

import (
	"bufio"
	"io"
)

// ReadLine returns the first line of r including the trailing newline, if any.
// At most maxLen bytes are consumed. io.EOF is returned if r yields no data.
func ReadLine(r io.Reader, maxLen int64) (string, error) {
	line, err := bufio.NewReader(io.LimitReader(r, maxLen)).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if line == "" {
		return "", io.EOF
	}
	return line, nil
}
