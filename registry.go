package uigfx

import (
	"fmt"
	"slices"
	"sync"
)

// HandlerFunc creates the FactoryHandler of a registered backend.
type HandlerFunc func() FactoryHandler

var (
	registryMu sync.RWMutex
	handlers   = make(map[string]HandlerFunc)
)

// RegisterHandler makes a backend available by name. It is typically
// called from init() in backend packages, following the database/sql
// driver pattern:
//
//	func init() {
//	    uigfx.RegisterHandler("raster", func() uigfx.FactoryHandler {
//	        return NewHandler()
//	    })
//	}
//
// RegisterHandler panics if fn is nil or the name is already taken.
func RegisterHandler(name string, fn HandlerFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if fn == nil {
		panic("uigfx: RegisterHandler func is nil")
	}
	if _, dup := handlers[name]; dup {
		panic("uigfx: RegisterHandler called twice for " + name)
	}
	handlers[name] = fn
}

// UnregisterHandler removes a backend from the registry. It is mainly
// useful in tests. Unknown names are ignored.
func UnregisterHandler(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(handlers, name)
}

// Handlers returns the sorted names of the registered backends.
func Handlers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// OpenFactory creates a Factory for the backend registered under name.
//
//	import _ "github.com/gogpu/uigfx/backend/raster"
//
//	factory, err := uigfx.OpenFactory("raster")
func OpenFactory(name string, opts ...Option) (*Factory, error) {
	registryMu.RLock()
	fn, ok := handlers[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("uigfx: unknown backend %q (forgotten import?)", name)
	}
	return NewFactory(fn(), opts...), nil
}
