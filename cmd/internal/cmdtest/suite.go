// Package cmdtest helps testing accfind subcommands.
package cmdtest

import (
	"bytes"
	"io"
	"strings"

	cmdutil "github.com/puppetlabs/accfind/cmd/util"
	"github.com/stretchr/testify/suite"
)

// Suite represents a type that tests accfind subcommands
type Suite struct {
	suite.Suite
	stdout           *bytes.Buffer
	stderr           *bytes.Buffer
	oldStdout        io.Writer
	oldStderr        io.Writer
	oldColoredStderr io.Writer
	oldStdin         io.Reader
}

// SetupTest mocks Stdout/Stderr/ColoredStderr/Stdin
func (s *Suite) SetupTest() {
	s.stdout, s.stderr = &bytes.Buffer{}, &bytes.Buffer{}
	s.oldStdout, s.oldStderr, s.oldColoredStderr = cmdutil.Stdout, cmdutil.Stderr, cmdutil.ColoredStderr
	cmdutil.Stdout, cmdutil.Stderr, cmdutil.ColoredStderr = s.stdout, s.stderr, s.stderr
	s.oldStdin = cmdutil.Stdin
	cmdutil.Stdin = strings.NewReader("")
}

// TearDownTest resets Stdout/Stderr/ColoredStderr/Stdin
func (s *Suite) TearDownTest() {
	s.stdout, s.stderr = nil, nil
	cmdutil.Stdout, cmdutil.Stderr, cmdutil.ColoredStderr = s.oldStdout, s.oldStderr, s.oldColoredStderr
	s.oldStdout, s.oldStderr, s.oldColoredStderr = nil, nil, nil
	cmdutil.Stdin = s.oldStdin
	s.oldStdin = nil
}

// SetStdin makes the command read input from stdin
func (s *Suite) SetStdin(input string) {
	cmdutil.Stdin = strings.NewReader(input)
}

// Stdout returns stdout's content
func (s *Suite) Stdout() string {
	return s.stdout.String()
}

// Stderr returns stderr's content
func (s *Suite) Stderr() string {
	return s.stderr.String()
}
