package registry

import (
	"errors"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ExportedAccount is the snapshot of one alias across the four registries.
// A field is present only if the alias was found in that registry.
type ExportedAccount struct {
	Contract      *AliasEntry `json:"contract,omitempty"`
	PublicKeyHash *AliasEntry `json:"public_key_hash,omitempty"`
	PublicKey     *AliasEntry `json:"public_key,omitempty"`
	SecretKey     *AliasEntry `json:"secret_key,omitempty"`
}

// Field returns the entry stored for kind, or nil.
func (a ExportedAccount) Field(kind Kind) *AliasEntry {
	switch kind {
	case Contracts:
		return a.Contract
	case PublicKeyHashs:
		return a.PublicKeyHash
	case PublicKeys:
		return a.PublicKey
	case SecretKeys:
		return a.SecretKey
	}
	return nil
}

// SetField stores entry under kind.
func (a *ExportedAccount) SetField(kind Kind, entry *AliasEntry) {
	switch kind {
	case Contracts:
		a.Contract = entry
	case PublicKeyHashs:
		a.PublicKeyHash = entry
	case PublicKeys:
		a.PublicKey = entry
	case SecretKeys:
		a.SecretKey = entry
	}
}

// ExportBundle maps an alias to its exported account, in insertion order.
type ExportBundle = orderedmap.OrderedMap[string, ExportedAccount]

// NFTTemplate maps attribute names to values in the order they appear in the file.
type NFTTemplate = orderedmap.OrderedMap[string, string]

// NFTBundle maps an NFT alias to its template.
type NFTBundle = orderedmap.OrderedMap[string, *NFTTemplate]

func NewExportBundle() *ExportBundle {
	return orderedmap.New[string, ExportedAccount]()
}

func NewNFTBundle() *NFTBundle {
	return orderedmap.New[string, *NFTTemplate]()
}

// LoadExportBundle reads the export bundle. Malformed content is a *ParseError.
func LoadExportBundle(path string) (*ExportBundle, error) {
	bundle := NewExportBundle()
	if err := ReadObject(path, bundle); err != nil {
		return nil, err
	}
	return bundle, nil
}

// LoadExportBundleLenient reads the export bundle before a rewrite. Content
// that does not decode is treated as an empty bundle and will be overwritten.
func LoadExportBundleLenient(path string) (*ExportBundle, error) {
	bundle, err := LoadExportBundle(path)
	var perr *ParseError
	if errors.As(err, &perr) {
		return NewExportBundle(), nil
	}
	return bundle, err
}

func SaveExportBundle(path string, bundle *ExportBundle) error {
	return WriteObject(path, bundle)
}

// BundleNames lists the aliases of an ordered bundle.
func BundleNames[V any](bundle *orderedmap.OrderedMap[string, V]) []string {
	names := make([]string, 0, bundle.Len())
	for pair := bundle.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// LookupExported returns the exported account stored under alias.
func LookupExported(bundle *ExportBundle, alias string) (ExportedAccount, error) {
	account, ok := bundle.Get(alias)
	if !ok {
		return ExportedAccount{}, &NotFoundError{What: "exported account", Name: alias, Known: BundleNames(bundle)}
	}
	return account, nil
}

// LoadNFTBundle reads the NFT template bundle.
func LoadNFTBundle(path string) (*NFTBundle, error) {
	bundle := NewNFTBundle()
	if err := ReadObject(path, bundle); err != nil {
		return nil, err
	}
	return bundle, nil
}

// LookupNFT returns the template stored under name.
func LookupNFT(bundle *NFTBundle, name string) (*NFTTemplate, error) {
	nft, ok := bundle.Get(name)
	if !ok || nft == nil {
		return nil, &NotFoundError{What: "nft", Name: name, Known: BundleNames(bundle)}
	}
	return nft, nil
}
