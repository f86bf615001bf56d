package prompt

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScripted(t *testing.T) {
	s := &Scripted{Answers: []string{"alice", "12"}}

	a, err := s.Ask("From: ", []string{"alice", "bob"})
	require.NoError(t, err)
	require.Equal(t, "alice", a)

	n, err := AskInt(s, "Amount: ")
	require.NoError(t, err)
	require.Equal(t, int64(12), n)

	_, err = s.Ask("More: ", nil)
	require.True(t, errors.Is(err, ErrAborted))
	require.Equal(t, []string{"From: ", "Amount: ", "More: "}, s.Labels)
}

func TestAskIntRetries(t *testing.T) {
	s := &Scripted{Answers: []string{"ten", "", "10"}}
	n, err := AskInt(s, "Token ID: ")
	require.NoError(t, err)
	require.Equal(t, int64(10), n)
	require.Len(t, s.Labels, 3)
}

func TestAskIntRunsOut(t *testing.T) {
	s := &Scripted{Answers: []string{"ten"}}
	_, err := AskInt(s, "Token ID: ")
	require.ErrorIs(t, err, ErrAborted)
}

func TestConfirm(t *testing.T) {
	s := &Scripted{Answers: []string{"y", "N", "Y"}}
	for _, want := range []bool{true, false, true} {
		got, err := Confirm(s, "Again? ")
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestCompletePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fa2.py"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fa2_lib.py"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.py"), nil, 0644))

	got := completePath(filepath.Join(dir, "fa2"))
	require.ElementsMatch(t, []string{filepath.Join(dir, "fa2.py"), filepath.Join(dir, "fa2_lib.py")}, got)
}
