// Package clienttest provides a scripted client.Runner for tests.
package clienttest

import (
	"context"
	"io"

	"github.com/parthshah1/tzc/client"
)

// Fake records every command and answers with Handler. A result with a
// nonzero exit code is returned together with an *client.ExternalCommandError.
type Fake struct {
	Calls   []client.Command
	Handler func(cmd client.Command) client.Result
}

func (f *Fake) Run(_ context.Context, cmd client.Command) (client.Result, error) {
	f.Calls = append(f.Calls, cmd)

	var res client.Result
	if f.Handler != nil {
		res = f.Handler(cmd)
	}
	if res.ExitCode != 0 {
		return res, &client.ExternalCommandError{Command: cmd, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return res, nil
}

func (f *Fake) Stream(ctx context.Context, cmd client.Command, stdout, stderr io.Writer) error {
	res, err := f.Run(ctx, cmd)
	io.WriteString(stdout, res.Stdout)
	io.WriteString(stderr, res.Stderr)
	return err
}

// Strings renders the recorded calls.
func (f *Fake) Strings() []string {
	out := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		out = append(out, c.String())
	}
	return out
}
