package registry

import (
	"fmt"
	"strings"
)

// NotFoundError reports an alias missing from a registry or bundle, along
// with the names that do exist.
type NotFoundError struct {
	What  string
	Name  string
	Known []string
}

func (e *NotFoundError) Error() string {
	what := e.What
	if what == "" {
		what = "alias"
	}
	if len(e.Known) == 0 {
		return fmt.Sprintf("no such %s %q", what, e.Name)
	}
	return fmt.Sprintf("no such %s %q, do you mean one of: %s", what, e.Name, strings.Join(e.Known, ", "))
}

// ParseError reports a registry or bundle file that is not valid JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
