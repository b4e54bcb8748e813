// Package input turns keyboard and command-line input into game intents.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

// QuitCode is returned by the readers on Ctrl+C or end of input
const QuitCode = "quit"

var stdinReader *bufio.Reader

// GetInput reads a line of input from stdin
func GetInput() string {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	line, err := stdinReader.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return QuitCode
	}
	if err != nil && !errors.Is(err, io.EOF) {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	return strings.TrimRight(line, "\r\n")
}

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code ("arrow_up", ...) if successful, empty string otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return ""
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}
	return arrowCode(b3)
}

// arrowCode maps the final byte of an arrow key escape sequence to its code
func arrowCode(b byte) string {
	switch b {
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

// GetInputWithArrows reads input with support for arrow keys.
// Arrow keys return immediately without needing Enter.
// For text input, user types and presses Enter as normal.
// When stdin is not a terminal it falls back to GetInput.
func GetInputWithArrows() string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return GetInput()
	}

	// Reset the buffered reader to avoid conflicts with raw mode
	stdinReader = nil

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(fd, oldState)

	b1, err := readByte()
	if err != nil {
		return QuitCode
	}

	if arrowKey := tryReadArrowKey(b1); arrowKey != "" {
		fmt.Print("\r\n")
		return arrowKey
	}

	// Handle Ctrl+C and Ctrl+D
	if b1 == 3 || b1 == 4 {
		fmt.Print("\r\n")
		return QuitCode
	}

	if b1 == '\n' || b1 == '\r' {
		fmt.Print("\r\n")
		return ""
	}

	var input []byte
	if b1 >= 32 && b1 < 127 {
		input = append(input, b1)
		fmt.Print(string(b1))
	}

	for {
		b, err := readByte()
		if err != nil {
			break
		}

		// Arrow keys pressed during text entry are discarded
		if b == 0x1b {
			tryReadArrowKey(b)
			continue
		}

		if b == 127 || b == 8 {
			if len(input) > 0 {
				input = input[:len(input)-1]
				fmt.Print("\b \b")
			}
			continue
		}

		if b == '\n' || b == '\r' {
			fmt.Print("\r\n")
			break
		}

		if b == 3 {
			fmt.Print("\r\n")
			return QuitCode
		}

		if b >= 32 && b < 127 {
			input = append(input, b)
			fmt.Print(string(b))
		}
	}

	return string(input)
}

// ReadIntent reads one command from the terminal and maps it to an Intent
func ReadIntent() Intent {
	raw := RawInput{
		Device: DeviceTerminal,
		Code:   GetInputWithArrows(),
	}
	return MapToIntent(NewDebouncedInput(raw))
}
