// Package userhook loads a user-supplied JavaScript function and applies it
// as the final step of text post-processing.
//
// It replaces the original tool's approach of executing an arbitrary Python
// module defining a prism_dictation_process(text) function: Go programs
// can't load and call arbitrary Go source at runtime, so the hook is
// expressed in JavaScript and run with an embedded interpreter instead. The
// contract (a single text-in, text-out function, reloadable on demand) is
// kept identical.
package userhook

import (
	"fmt"
	"os"

	"github.com/dop251/goja"
)

const entryPoint = "prismDictationProcess"

// Hook wraps a loaded script and the function it exposes.
type Hook struct {
	path string
	vm   *goja.Runtime
	fn   goja.Callable
}

// Load reads and evaluates the script at path, then resolves its
// prismDictationProcess function. An error here is fatal to the caller on
// first load (there is no previous hook to fall back to).
func Load(path string) (*Hook, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading user hook %q: %w", path, err)
	}

	vm := goja.New()
	if _, err := vm.RunString(string(src)); err != nil {
		return nil, fmt.Errorf("evaluating user hook %q: %w", path, err)
	}

	value := vm.Get(entryPoint)
	if value == nil || goja.IsUndefined(value) {
		return nil, fmt.Errorf("user hook %q has no %s function", path, entryPoint)
	}

	fn, ok := goja.AssertFunction(value)
	if !ok {
		return nil, fmt.Errorf("user hook %q: %s is not a function", path, entryPoint)
	}

	return &Hook{path: path, vm: vm, fn: fn}, nil
}

// Reload re-reads and re-evaluates the script. On failure the previous Hook
// is left usable and unchanged, mirroring the original tool's "reload
// failed, continuing with previous configuration" behavior on SIGHUP.
func Reload(path string, previous *Hook) (*Hook, error) {
	next, err := Load(path)
	if err != nil {
		return previous, err
	}
	return next, nil
}

// Process calls the hook's function with text, returning an error if it
// throws or returns anything other than a string.
func (h *Hook) Process(text string) (string, error) {
	result, err := h.fn(goja.Undefined(), h.vm.ToValue(text))
	if err != nil {
		return "", fmt.Errorf("running user hook %q: %w", h.path, err)
	}

	if _, ok := result.Export().(string); !ok {
		return "", fmt.Errorf("user hook %q: %s returned %T, expected string", h.path, entryPoint, result.Export())
	}

	return result.String(), nil
}
