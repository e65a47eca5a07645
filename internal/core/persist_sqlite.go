//go:build sqlite

package core

import (
	"sync"

	"github.com/cwbudde/lispgo/internal/atomstore"
	"github.com/cwbudde/lispgo/internal/printer"
	"github.com/cwbudde/lispgo/internal/reader"
	"github.com/cwbudde/lispgo/internal/runtime"
)

const persistDBPath = "lispgo-atoms.db"

type persistedBinding struct {
	store *atomstore.Store
	name  string
}

var (
	persistedMu       sync.Mutex
	persisted         = map[*runtime.AtomValue]persistedBinding{}
	persistSharedOpen *atomstore.Store
)

func init() {
	persistHook = func(a *runtime.AtomValue) {
		persistedMu.Lock()
		binding, ok := persisted[a]
		persistedMu.Unlock()
		if !ok {
			return
		}
		binding.store.Save(binding.name, printer.Print(a.Value, true))
	}
}

// registerPersistAtom binds persist-atom, an additive core builtin beyond
// the base language: (persist-atom "name" initial) returns an Atom whose
// current value was loaded from a SQLite row if one existed, and which
// mirrors every reset!/swap! mutation back into that row.
func registerPersistAtom(env *runtime.Env) {
	def(env, "persist-atom", func(args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(args, 2); err != nil {
			return nil, err
		}
		name, err := asStr(args[0])
		if err != nil {
			return nil, err
		}

		store, err := sharedStore()
		if err != nil {
			return nil, runtime.Throwf("%s", err.Error())
		}

		initial := args[1]
		if text, ok, loadErr := store.Load(name); loadErr != nil {
			return nil, runtime.Throwf("%s", loadErr.Error())
		} else if ok {
			if v, readOK, readErr := reader.Read(text); readErr == nil && readOK {
				initial = v
			}
		}

		if err := store.Save(name, printer.Print(initial, true)); err != nil {
			return nil, runtime.Throwf("%s", err.Error())
		}

		atom := runtime.NewAtom(initial)
		persistedMu.Lock()
		persisted[atom] = persistedBinding{store: store, name: name}
		persistedMu.Unlock()
		return atom, nil
	})
}

func sharedStore() (*atomstore.Store, error) {
	persistedMu.Lock()
	defer persistedMu.Unlock()
	if persistSharedOpen != nil {
		return persistSharedOpen, nil
	}
	store, err := atomstore.Open(persistDBPath)
	if err != nil {
		return nil, err
	}
	persistSharedOpen = store
	return store, nil
}
