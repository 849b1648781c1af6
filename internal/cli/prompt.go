package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/lexmem/lexmem/internal/session"
	"github.com/lexmem/lexmem/internal/vocab"
)

// terminalUI implements session.UI on a real terminal. When stdin is a
// TTY, choices are read as single keypresses in raw mode; otherwise it
// falls back to line input so the review loop stays scriptable.
type terminalUI struct {
	in  *os.File
	out io.Writer
	err io.Writer

	// line buffers non-TTY input. bufio reads ahead, so the reader must
	// survive across Choose calls or pending lines are lost with it.
	line *bufio.Reader
}

// Compile-time interface check.
var _ session.UI = (*terminalUI)(nil)

func newTerminalUI() *terminalUI {
	return &terminalUI{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

func (u *terminalUI) Present(w vocab.Word, hintLevel int) {
	fmt.Fprintf(u.out, "\n  %s\n", w.Word)
	if hintLevel >= 1 && w.Example != "" {
		fmt.Fprintf(u.out, "    hint: %s\n", w.Example)
	}
	if hintLevel >= 2 && w.Related != "" {
		fmt.Fprintf(u.out, "    related: %s\n", w.Related)
	}

	opts := make([]string, 0, 5)
	if hintLevel == 0 {
		opts = append(opts, "[p]erfect")
	}
	opts = append(opts, "[k]now")
	if hintLevel < 2 {
		opts = append(opts, "[h]int")
	}
	opts = append(opts, "[n]o idea", "[q]uit")
	fmt.Fprintf(u.out, "  %s > ", strings.Join(opts, "  "))
}

func (u *terminalUI) Reveal(w vocab.Word) {
	fmt.Fprintf(u.out, "\n  %s — %s\n", w.Word, w.Meaning)
	if w.Example != "" {
		fmt.Fprintf(u.out, "    %s\n", w.Example)
	}
	if w.Related != "" {
		fmt.Fprintf(u.out, "    related: %s\n", w.Related)
	}
}

func (u *terminalUI) Choose() (session.Choice, error) {
	fd := int(u.in.Fd())
	if !term.IsTerminal(fd) {
		return u.chooseLine()
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return u.chooseLine()
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	buf := make([]byte, 1)
	for {
		if _, err := u.in.Read(buf); err != nil {
			return session.ChoiceQuit, fmt.Errorf("read key: %w", err)
		}
		if c, ok := keyChoice(buf[0]); ok {
			// Echo the accepted key; raw mode suppressed it.
			fmt.Fprintf(u.out, "%c\r\n", buf[0])
			return c, nil
		}
	}
}

// chooseLine reads a whole line and maps its first byte, for non-TTY input.
func (u *terminalUI) chooseLine() (session.Choice, error) {
	if u.line == nil {
		u.line = bufio.NewReader(u.in)
	}
	for {
		line, err := u.line.ReadString('\n')
		if err != nil && line == "" {
			return session.ChoiceQuit, fmt.Errorf("read choice: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if c, ok := keyChoice(line[0]); ok {
			return c, nil
		}
		u.Warnf("Unknown choice %q.", line)
	}
}

// keyChoice maps one key to a choice token. Ctrl-C and Escape quit.
func keyChoice(b byte) (session.Choice, bool) {
	switch b {
	case 'p', 'P':
		return session.ChoicePerfect, true
	case 'k', 'K', ' ', '\r', '\n':
		return session.ChoiceKnow, true
	case 'h', 'H':
		return session.ChoiceHint, true
	case 'n', 'N':
		return session.ChoiceNo, true
	case 'q', 'Q', 0x03, 0x1b:
		return session.ChoiceQuit, true
	}
	return session.ChoiceQuit, false
}

func (u *terminalUI) Infof(format string, args ...any) {
	fmt.Fprintf(u.out, format+"\n", args...)
}

func (u *terminalUI) Warnf(format string, args ...any) {
	fmt.Fprintf(u.err, "Warning: "+format+"\n", args...)
}
