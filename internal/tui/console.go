package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// readLine returns the next input line without its line terminator. A final
// line without a terminator is returned before io.EOF.
func (t *TUI) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func isInputClosed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

func (t *TUI) print(s string) {
	_, _ = io.WriteString(t.out, s)
}

func (t *TUI) println(s string) {
	_, _ = io.WriteString(t.out, s+"\n")
}

func (t *TUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(t.out, format, args...)
}

// printBlock prints msg between two "---" rules.
func (t *TUI) printBlock(msg string) {
	t.println("---")
	t.println(msg)
	t.println("---")
}
