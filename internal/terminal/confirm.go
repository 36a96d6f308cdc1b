package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin is attached to a terminal.
// Non-interactive runs (CI, piped input) skip confirmation prompts.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Confirm asks a yes/no question on stdin and returns the answer.
// Empty input defaults to yes.
func Confirm(question string) bool {
	return confirmFrom(bufio.NewReader(os.Stdin), question)
}

func confirmFrom(r *bufio.Reader, question string) bool {
	fmt.Printf("%s [Y/n]: ", question)
	answer, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "" || answer == "y" || answer == "yes"
}
