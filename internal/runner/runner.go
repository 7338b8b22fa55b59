// Package runner executes external commands and reports whether they succeeded.
package runner

import (
	"os/exec"
	"strings"

	"reqcheck/internal/logger"
)

// Command is a program name plus its argument vector.
// Arguments are passed to the process as-is; no shell is involved.
type Command struct {
	Name string
	Args []string
}

// Cmd builds a Command from a name and arguments.
func Cmd(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// String renders the command for log output.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner runs commands. Run reports success iff the process exited with status 0;
// a missing binary and a non-zero exit are both reported as false.
type Runner interface {
	Run(cmd Command) bool
	Output(cmd Command) (string, error)
}

// Exec runs commands as child processes of the current one.
// Calls block until the child exits; there is no timeout.
type Exec struct{}

// Run executes cmd and discards its output unless debug logging is on.
func (Exec) Run(cmd Command) bool {
	c := exec.Command(cmd.Name, cmd.Args...)
	logger.Debug("[DEBUG] Running command: %s\n", cmd)
	output, err := c.CombinedOutput()
	if len(output) > 0 {
		logger.Debug("[DEBUG] Output of %s:\n%s\n", cmd.Name, output)
	}
	if err != nil {
		logger.Debug("[DEBUG] Command %s failed: %v\n", cmd, err)
		return false
	}
	return true
}

// Output executes cmd and returns its trimmed combined output.
func (Exec) Output(cmd Command) (string, error) {
	c := exec.Command(cmd.Name, cmd.Args...)
	logger.Debug("[DEBUG] Running command: %s\n", cmd)
	output, err := c.CombinedOutput()
	return strings.TrimSpace(string(output)), err
}

// RunAll runs cmds in order and stops at the first failure.
// An empty list is a failure.
func RunAll(r Runner, cmds []Command) bool {
	if len(cmds) == 0 {
		return false
	}
	for _, cmd := range cmds {
		if !r.Run(cmd) {
			return false
		}
	}
	return true
}
