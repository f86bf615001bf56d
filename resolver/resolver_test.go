package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parthshah1/tzc/registry"
)

func entries() []registry.AliasEntry {
	return []registry.AliasEntry{
		registry.NewEntry("a", "addr1"),
		registry.NewEntry("b", "addr2"),
	}
}

func TestResolve(t *testing.T) {
	e, err := Resolve("a", entries())
	require.NoError(t, err)
	addr, err := e.Text()
	require.NoError(t, err)
	require.Equal(t, "addr1", addr)
}

func TestResolveNotFound(t *testing.T) {
	_, err := Resolve("c", entries())
	var nf *registry.NotFoundError
	require.True(t, errors.As(err, &nf))
	require.Equal(t, "c", nf.Name)
	require.Equal(t, []string{"a", "b"}, nf.Known)
	require.Contains(t, err.Error(), "a, b")
}

func TestResolveFirstMatchWins(t *testing.T) {
	dup := append(entries(), registry.NewEntry("a", "addr3"))
	addr, err := ResolveAddress("a", dup)
	require.NoError(t, err)
	require.Equal(t, "addr1", addr)
}

func TestResolveEmptyRegistry(t *testing.T) {
	_, err := Resolve("a", nil)
	var nf *registry.NotFoundError
	require.True(t, errors.As(err, &nf))
	require.Empty(t, nf.Known)
}

func TestResolveAddressOrLiteral(t *testing.T) {
	addr, err := ResolveAddressOrLiteral("b", entries())
	require.NoError(t, err)
	require.Equal(t, "addr2", addr)

	addr, err = ResolveAddressOrLiteral("tz1literal", entries())
	require.NoError(t, err)
	require.Equal(t, "tz1literal", addr)
}

func TestParseKnownContracts(t *testing.T) {
	out := "fa2: KT1Hkg5qeNhfwpKW4fXvq7HGZB9z2EnmCCA9\n" +
		"alice: tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb\r\n" +
		"Warning: something odd: here\n" +
		"\n" +
		"bob: tz1aSkwEot3L2kmUvcoxzjMomb9mvBNuzFK6\n"

	parsed := ParseKnownContracts(out)
	require.Equal(t, []string{"fa2", "alice", "bob"}, registry.Names(parsed))

	addr, err := ResolveAddress("alice", parsed)
	require.NoError(t, err)
	require.Equal(t, "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb", addr)
}
