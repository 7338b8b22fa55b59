package runner

import "fmt"

// Recorder is an in-memory Runner for tests. It records every command it
// receives and answers from Results, keyed by Command.String(). Commands with
// no entry succeed.
type Recorder struct {
	Results map[string]bool
	Outputs map[string]string
	Calls   []Command
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Results: make(map[string]bool),
		Outputs: make(map[string]string),
	}
}

// Fail makes cmd report failure from now on.
func (r *Recorder) Fail(cmd Command) {
	r.Results[cmd.String()] = false
}

// Succeed makes cmd report success from now on.
func (r *Recorder) Succeed(cmd Command) {
	r.Results[cmd.String()] = true
}

func (r *Recorder) Run(cmd Command) bool {
	r.Calls = append(r.Calls, cmd)
	ok, found := r.Results[cmd.String()]
	return !found || ok
}

func (r *Recorder) Output(cmd Command) (string, error) {
	r.Calls = append(r.Calls, cmd)
	if ok, found := r.Results[cmd.String()]; found && !ok {
		return r.Outputs[cmd.String()], fmt.Errorf("%s: exit status 1", cmd.Name)
	}
	return r.Outputs[cmd.String()], nil
}

// Called reports how many times cmd was run.
func (r *Recorder) Called(cmd Command) int {
	n := 0
	for _, c := range r.Calls {
		if c.String() == cmd.String() {
			n++
		}
	}
	return n
}
