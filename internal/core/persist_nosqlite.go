//go:build !sqlite

package core

import "github.com/cwbudde/lispgo/internal/runtime"

// registerPersistAtom is a no-op in the default build: persist-atom is
// only available when built with -tags sqlite, so without that tag
// calling it surfaces the ordinary "'persist-atom' not found" error.
func registerPersistAtom(env *runtime.Env) {}
