// Package account exports tezos-client aliases into the tzc bundle and
// replays bundles back into the client.
package account

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/parthshah1/tzc/client"
	"github.com/parthshah1/tzc/config"
	"github.com/parthshah1/tzc/registry"
	"github.com/parthshah1/tzc/resolver"
)

// RejectedError is returned when an export would overwrite an existing
// bundle entry without force.
type RejectedError struct {
	Alias string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("account %q has already been exported, use --force to overwrite the existing export", e.Alias)
}

// Collect looks alias up in each of the four registries. Registries that
// do not know the alias are left out of the result.
func Collect(store *registry.Store, alias string) (registry.ExportedAccount, error) {
	var account registry.ExportedAccount
	for _, kind := range registry.Kinds {
		entries, err := store.Registry(kind)
		if err != nil {
			return registry.ExportedAccount{}, err
		}
		entry, err := resolver.Resolve(alias, entries)
		if err != nil {
			continue
		}
		account.SetField(kind, &entry)
	}
	return account, nil
}

// Export snapshots alias into the export bundle. Without force an alias
// already in the bundle is rejected and the file is not touched.
func Export(store *registry.Store, alias string, force bool) (registry.ExportedAccount, error) {
	account, err := Collect(store, alias)
	if err != nil {
		return registry.ExportedAccount{}, err
	}

	path := store.Paths().ExportBundle
	bundle, err := registry.LoadExportBundleLenient(path)
	if err != nil {
		return registry.ExportedAccount{}, err
	}

	_, exists := bundle.Get(alias)
	if exists && !force {
		return registry.ExportedAccount{}, &RejectedError{Alias: alias}
	}

	bundle.Set(alias, account)
	if err := registry.SaveExportBundle(path, bundle); err != nil {
		return registry.ExportedAccount{}, err
	}

	config.AssertSometimes(exists && force, "export overwrote an existing alias", map[string]any{"alias": alias})
	return account, nil
}

// Step is one import command together with the registry field it restores.
// DecodeErr is set instead of Command when the bundle value could not be decoded.
type Step struct {
	Kind      registry.Kind
	Command   client.Command
	DecodeErr error
}

// ImportSteps builds the client invocations restoring alias from bundle,
// in the order contract, public key hash, public key, secret key. Fields
// missing from the bundle produce no step. A malformed field yields a step
// carrying its decode error so the other fields are still restored.
func ImportSteps(tz *client.Tezos, bundle *registry.ExportBundle, alias string, force bool) ([]Step, error) {
	account, err := registry.LookupExported(bundle, alias)
	if err != nil {
		return nil, err
	}

	var steps []Step
	for _, kind := range registry.Kinds {
		entry := account.Field(kind)
		if entry == nil {
			continue
		}
		steps = append(steps, importStep(tz, kind, entry, alias, force))
	}

	config.AssertAlways(stepsOrdered(steps), "import steps follow registry order", map[string]any{
		"alias": alias,
		"steps": len(steps),
	})
	return steps, nil
}

func importStep(tz *client.Tezos, kind registry.Kind, entry *registry.AliasEntry, alias string, force bool) Step {
	var value string
	var err error
	if kind == registry.PublicKeys {
		value, err = entry.Locator()
	} else {
		value, err = entry.Text()
	}
	if err != nil {
		return Step{Kind: kind, DecodeErr: fmt.Errorf("bad %s entry for %q: %w", kind, alias, err)}
	}

	var cmd client.Command
	switch kind {
	case registry.Contracts:
		cmd = tz.RememberContract(alias, value, force)
	case registry.PublicKeyHashs:
		cmd = tz.AddAddress(alias, value, force)
	case registry.PublicKeys:
		cmd = tz.ImportPublicKey(alias, value, force)
	case registry.SecretKeys:
		cmd = tz.ImportSecretKey(alias, value, force)
	}
	return Step{Kind: kind, Command: cmd}
}

// stepsOrdered reports whether steps appear in registry.Kinds order with no repeats.
func stepsOrdered(steps []Step) bool {
	next := 0
	for _, s := range steps {
		for next < len(registry.Kinds) && registry.Kinds[next] != s.Kind {
			next++
		}
		if next == len(registry.Kinds) {
			return false
		}
		next++
	}
	return true
}

// StepResult is the outcome of one import step. Err is nil on success.
type StepResult struct {
	Step
	Result client.Result
	Err    error
}

// Import runs every step of ImportSteps. A failing step does not stop the
// ones after it and nothing is rolled back; the returned error combines
// all step failures, decode failures included.
func Import(ctx context.Context, tz *client.Tezos, bundle *registry.ExportBundle, alias string, force bool) ([]StepResult, error) {
	steps, err := ImportSteps(tz, bundle, alias, force)
	if err != nil {
		return nil, err
	}

	results := make([]StepResult, 0, len(steps))
	var errs error
	for _, step := range steps {
		if step.DecodeErr != nil {
			results = append(results, StepResult{Step: step, Err: step.DecodeErr})
			errs = multierr.Append(errs, step.DecodeErr)
			continue
		}
		res, err := tz.Runner.Run(ctx, step.Command)
		results = append(results, StepResult{Step: step, Result: res, Err: err})
		errs = multierr.Append(errs, err)
	}
	return results, errs
}
