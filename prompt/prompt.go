// Package prompt collects interactive input with tab completion.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("aborted")

// Prompter asks the user one question at a time.
type Prompter interface {
	// Ask reads a line, completing from choices.
	Ask(label string, choices []string) (string, error)
	// AskPath reads a line, completing filesystem paths.
	AskPath(label string) (string, error)
}

// AskInt asks again until the answer parses as an integer.
func AskInt(p Prompter, label string) (int64, error) {
	for {
		answer, err := p.Ask(label, nil)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(answer, 10, 64)
		if err == nil {
			return n, nil
		}
	}
}

// Confirm asks a y/n question.
func Confirm(p Prompter, label string) (bool, error) {
	answer, err := p.Ask(label, []string{"y", "n"})
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// Readline prompts on the terminal.
type Readline struct {
	Stdin  io.ReadCloser
	Stdout io.Writer
}

func (r *Readline) readLine(label string, completer readline.AutoCompleter) (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          label,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           r.Stdin,
		Stdout:          r.Stdout,
	})
	if err != nil {
		return "", fmt.Errorf("failed to start prompt: %w", err)
	}
	defer rl.Close()

	line, err := rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", ErrAborted
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (r *Readline) Ask(label string, choices []string) (string, error) {
	var completer readline.AutoCompleter
	if len(choices) > 0 {
		items := make([]readline.PrefixCompleterInterface, 0, len(choices))
		for _, c := range choices {
			items = append(items, readline.PcItem(c))
		}
		completer = readline.NewPrefixCompleter(items...)
	}
	return r.readLine(label, completer)
}

func (r *Readline) AskPath(label string) (string, error) {
	return r.readLine(label, readline.NewPrefixCompleter(readline.PcItemDynamic(completePath)))
}

func completePath(line string) []string {
	matches, _ := filepath.Glob(line + "*")
	return matches
}

// Scripted answers from a fixed list, for tests and piped input.
type Scripted struct {
	Answers []string
	Labels  []string
}

func (s *Scripted) next(label string) (string, error) {
	s.Labels = append(s.Labels, label)
	if len(s.Answers) == 0 {
		return "", ErrAborted
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}

func (s *Scripted) Ask(label string, _ []string) (string, error) { return s.next(label) }

func (s *Scripted) AskPath(label string) (string, error) { return s.next(label) }
