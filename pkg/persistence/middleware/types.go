// Package middleware provides composable wrappers around a FlowStore.
package middleware

import "github.com/caue-mor/saas-solar/pkg/ports"

// Middleware allows wrapping a FlowStore to add behavior.
type Middleware func(ports.FlowStore) ports.FlowStore

// Chain applies middlewares right-to-left, so the first middleware in the
// list is the outermost wrapper.
func Chain(store ports.FlowStore, mws ...Middleware) ports.FlowStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
