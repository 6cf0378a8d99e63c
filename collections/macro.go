package collections

import (
	"fmt"
	"log/slog"
	"sync"
)

// MacroFunc is the function signature for a registered macro.
//
// The collection is passed as an any so that macros can be registered once
// and used across any Collection[T] instantiation. Type-assert inside the
// macro to the concrete *Collection[YourType] and return an error when the
// assertion or the arguments do not fit.
type MacroFunc func(collection any, args ...any) (any, error)

// macroRegistry is the package-level, goroutine-safe macro store.
var macroRegistry = struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}{macros: map[string]MacroFunc{}}

// RegisterMacro adds a named macro to the global registry.
// If a macro with that name already exists it is replaced.
//
//	collections.RegisterMacro("evens", func(col any, _ ...any) (any, error) {
//	    c, ok := col.(*collections.Collection[int])
//	    if !ok {
//	        return nil, fmt.Errorf("evens: want *Collection[int], got %T", col)
//	    }
//	    return c.Filter(func(n int, _ kv.Key) bool { return n%2 == 0 }), nil
//	})
//
//	res, _ := collections.New(1, 2, 3, 4, 5).Macro("evens") // [2 4]
func RegisterMacro(name string, fn MacroFunc) {
	macroRegistry.mu.Lock()
	_, replaced := macroRegistry.macros[name]
	macroRegistry.macros[name] = fn
	macroRegistry.mu.Unlock()
	slog.Debug("collections: macro registered", slog.String("name", name), slog.Bool("replaced", replaced))
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	_, ok := macroRegistry.macros[name]
	return ok
}

// FlushMacros removes all registered macros.
// Intended for use in tests.
func FlushMacros() {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros = map[string]MacroFunc{}
}

// CallMacro calls the named macro with the supplied collection and args.
// An unknown name fails with an error wrapping [ErrMacroNotFound]; errors
// from the macro itself are returned wrapped with its name.
func CallMacro(name string, collection any, args ...any) (any, error) {
	macroRegistry.mu.RLock()
	fn, ok := macroRegistry.macros[name]
	macroRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	out, err := fn(collection, args...)
	if err != nil {
		return nil, fmt.Errorf("collections: macro %q: %w", name, err)
	}
	return out, nil
}

// Macro calls the named registered macro on c, forwarding args.
// This is a convenience wrapper around the package-level [CallMacro].
func (c *Collection[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, c, args...)
}
