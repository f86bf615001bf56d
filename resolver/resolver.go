package resolver

import (
	"bufio"
	"errors"
	"strings"

	"github.com/parthshah1/tzc/registry"
)

// Resolve returns the first entry named name. Duplicate names are not an
// error; the earliest entry wins.
func Resolve(name string, entries []registry.AliasEntry) (registry.AliasEntry, error) {
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return registry.AliasEntry{}, &registry.NotFoundError{
		What:  "account",
		Name:  name,
		Known: registry.Names(entries),
	}
}

// ResolveAddress resolves name and returns its value as an address string.
func ResolveAddress(name string, entries []registry.AliasEntry) (string, error) {
	entry, err := Resolve(name, entries)
	if err != nil {
		return "", err
	}
	return entry.Text()
}

// ResolveAddressOrLiteral maps a known alias to its address and passes any
// other input through unchanged as a literal address.
func ResolveAddressOrLiteral(input string, entries []registry.AliasEntry) (string, error) {
	addr, err := ResolveAddress(input, entries)
	var nf *registry.NotFoundError
	if errors.As(err, &nf) {
		return input, nil
	}
	return addr, err
}

// ParseKnownContracts reads the "name: address" lines printed by
// `tezos-client list known contracts`. Lines of any other shape are ignored.
func ParseKnownContracts(out string) []registry.AliasEntry {
	var entries []registry.AliasEntry
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		parts := strings.Split(strings.TrimRight(sc.Text(), "\r"), ": ")
		if len(parts) != 2 {
			continue
		}
		entries = append(entries, registry.NewEntry(parts[0], parts[1]))
	}
	return entries
}
