package cmdutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Stdin represents Stdin
var Stdin io.Reader = os.Stdin

// IsInteractive returns false when Stdin is a file that is not a terminal, e.g.
// when input is redirected. Readers that are not files count as interactive.
func IsInteractive() bool {
	f, ok := Stdin.(*os.File)
	if !ok {
		return true
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// InputParser represents a parser that parses input
// passed into Prompt.
type InputParser = func(string) (interface{}, error)

// YesOrNoP parses input representing confirmation. confirmed (bool) is
// true if the input starts with "y" or "Y". An empty answer is a no.
var YesOrNoP InputParser = func(input string) (confirmed interface{}, err error) {
	confirmed = len(input) > 0 && (input[0] == 'y' || input[0] == 'Y')
	return
}

// Prompt prints the supplied message on stderr, reads a line from Stdin,
// then passes the trimmed line over to the supplied parser. The actual
// prompt displayed to the user is "{msg} ".
func Prompt(msg string, parser InputParser) (interface{}, error) {
	stderrMux.Lock()
	defer stderrMux.Unlock()

	fmt.Fprintf(Stderr, "%s ", msg)
	input, err := bufio.NewReader(Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	return parser(strings.TrimSpace(input))
}
