package registry

import (
	"encoding/json"
	"fmt"
)

// Kind identifies one of the four tezos-client alias registries
type Kind string

const (
	Contracts      Kind = "contracts"
	PublicKeyHashs Kind = "public_key_hashs"
	PublicKeys     Kind = "public_keys"
	SecretKeys     Kind = "secret_keys"
)

// Kinds lists the registries in import order.
var Kinds = []Kind{Contracts, PublicKeyHashs, PublicKeys, SecretKeys}

// AliasEntry is one row of a registry file. Value is kept raw so a
// round-trip through the export bundle never reshapes what the client wrote.
type AliasEntry struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// NewEntry builds an entry whose value is a plain string.
func NewEntry(name, value string) AliasEntry {
	raw, _ := json.Marshal(value)
	return AliasEntry{Name: name, Value: raw}
}

// Text returns the value as a string. Addresses, contract hashes and
// secret key URIs are stored this way.
func (e AliasEntry) Text() (string, error) {
	var s string
	if err := json.Unmarshal(e.Value, &s); err != nil {
		return "", fmt.Errorf("value of %q is not a string: %w", e.Name, err)
	}
	return s, nil
}

// Locator returns value.locator, the form public keys are stored in.
func (e AliasEntry) Locator() (string, error) {
	var v struct {
		Locator string `json:"locator"`
	}
	if err := json.Unmarshal(e.Value, &v); err != nil {
		return "", fmt.Errorf("value of %q has no locator: %w", e.Name, err)
	}
	if v.Locator == "" {
		return "", fmt.Errorf("value of %q has an empty locator", e.Name)
	}
	return v.Locator, nil
}

// Names returns the entry names in order.
func Names(entries []AliasEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}
