package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExportBundleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "account.tzc.json")

	pkh := NewEntry("bob", "tz1bob")
	sk := NewEntry("bob", "unencrypted:edskbob")

	bundle := NewExportBundle()
	bundle.Set("zed", ExportedAccount{PublicKeyHash: &pkh})
	bundle.Set("bob", ExportedAccount{PublicKeyHash: &pkh, SecretKey: &sk})
	require.NoError(t, SaveExportBundle(path, bundle))

	loaded, err := LoadExportBundle(path)
	require.NoError(t, err)
	require.Equal(t, []string{"zed", "bob"}, BundleNames(loaded))

	bob, err := LookupExported(loaded, "bob")
	require.NoError(t, err)
	require.Nil(t, bob.Contract)
	require.Nil(t, bob.PublicKey)
	require.Equal(t, "bob", bob.SecretKey.Name)

	value, err := bob.Field(SecretKeys).Text()
	require.NoError(t, err)
	require.Equal(t, "unencrypted:edskbob", value)

	_, err = LookupExported(loaded, "carol")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	require.Equal(t, []string{"zed", "bob"}, nf.Known)
}

func TestLoadExportBundleStrictAndLenient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "account.tzc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"bob": {`), 0600))

	_, err := LoadExportBundle(path)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))

	bundle, err := LoadExportBundleLenient(path)
	require.NoError(t, err)
	require.Equal(t, 0, bundle.Len())
}

func TestLoadExportBundleMissing(t *testing.T) {
	bundle, err := LoadExportBundle(filepath.Join(t.TempDir(), "account.tzc.json"))
	require.NoError(t, err)
	require.Equal(t, 0, bundle.Len())
}

func TestNFTBundleKeepsAttributeOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nft.tzc.json")
	content := `{
  "cat": {"name": "Cat", "symbol": "CAT", "decimals": "0", "artifactUri": "ipfs://cat"},
  "dog": {"zeta": "z", "alpha": "a"}
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	bundle, err := LoadNFTBundle(path)
	require.NoError(t, err)
	require.Equal(t, []string{"cat", "dog"}, BundleNames(bundle))

	cat, err := LookupNFT(bundle, "cat")
	require.NoError(t, err)
	require.Equal(t, []string{"name", "symbol", "decimals", "artifactUri"}, BundleNames(cat))

	dog, err := LookupNFT(bundle, "dog")
	require.NoError(t, err)
	require.Equal(t, []string{"zeta", "alpha"}, BundleNames(dog))
	v, ok := dog.Get("alpha")
	require.True(t, ok)
	require.Equal(t, "a", v)

	_, err = LookupNFT(bundle, "bird")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	require.Equal(t, "bird", nf.Name)
}
