// Package input reads player commands from a terminal or any line-oriented stream.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"lightbot/pkg/engine/terminal"
)

// Reader reads commands one line at a time. When it wraps a terminal, arrow
// keys are returned immediately without Enter.
type Reader struct {
	r    *bufio.Reader
	tty  *os.File
	echo io.Writer
}

// NewReader reads lines from r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// NewTerminalReader reads from f, switching it to raw mode for every read
// when it is a terminal. echo receives the characters typed in raw mode.
func NewTerminalReader(f *os.File, echo io.Writer) *Reader {
	rd := NewReader(f)
	if terminal.IsTerminal(f) {
		rd.tty = f
		rd.echo = echo
	}
	return rd
}

// Read returns the next command. It returns io.EOF once the input is exhausted.
func (rd *Reader) Read() (string, error) {
	if rd.tty != nil {
		return rd.readRaw()
	}
	return rd.ReadLine()
}

// ReadLine reads a line of input, trimmed of surrounding whitespace
func (rd *Reader) ReadLine() (string, error) {
	line, err := rd.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readByte reads a single byte from the terminal in raw mode
func (rd *Reader) readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := rd.tty.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code if successful, empty string otherwise.
func (rd *Reader) tryReadArrowKey(first byte) string {
	if first != 0x1b {
		return ""
	}

	b2, err := rd.readByte()
	if err != nil {
		return ""
	}

	// Both CSI (ESC [) and SS3 (ESC O) sequences
	if b2 != '[' && b2 != 'O' {
		return ""
	}
	b3, err := rd.readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

func (rd *Reader) print(a ...any) {
	if rd.echo != nil {
		fmt.Fprint(rd.echo, a...)
	}
}

// readRaw reads an arrow key or a line typed in raw mode. Ctrl+C and Ctrl+D
// read as "quit".
func (rd *Reader) readRaw() (string, error) {
	fd := int(rd.tty.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	b, err := rd.readByte()
	if err != nil {
		return "", err
	}

	var input []byte
	for {
		switch {
		case b == 3 || b == 4:
			rd.print("\r\n")
			return "quit", nil
		case b == '\n' || b == '\r':
			rd.print("\r\n")
			return strings.TrimSpace(string(input)), nil
		case b == 0x1b:
			// arrow keys only count on an empty line
			if arrow := rd.tryReadArrowKey(b); arrow != "" && len(input) == 0 {
				rd.print("\r\n")
				return arrow, nil
			}
		case b == 127 || b == 8:
			if len(input) > 0 {
				input = input[:len(input)-1]
				rd.print("\b \b")
			}
		case b >= 32 && b < 127:
			input = append(input, b)
			rd.print(string(b))
		}

		if b, err = rd.readByte(); err != nil {
			return "", err
		}
	}
}
