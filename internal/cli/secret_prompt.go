package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

var errStdinUnavailable = errors.New("stdin unavailable")

// readLine reads one line from r without its line ending. A final line
// without a newline is accepted.
func readLine(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

func readPasswordNoEcho(stdin *os.File) ([]byte, error) {
	if stdin == nil {
		return nil, errStdinUnavailable
	}

	var value []byte
	err := withEchoDisabled(stdin, func() error {
		line, err := readLine(stdin)
		value = line
		return err
	})
	return value, err
}
