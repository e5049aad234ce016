// SPDX-License-Identifier: MPL-2.0

package coreutil

import "sync"

type (
	// Entry pairs a registered Command with its dispatch metadata.
	Entry struct {
		// Command is the registered implementation.
		Command Command
		// OnlyUnix marks commands that rely on Unix-only facilities
		// (signals, syslog, chroot, ...) and must not be dispatched on
		// Windows.
		OnlyUnix bool
	}

	// Registry maps command names to their implementations. It is safe for
	// concurrent use. Commands are registered explicitly by a constructor
	// such as BuildDefaultRegistry; nothing registers itself behind the
	// caller's back. The zero value is not usable, construct with
	// NewRegistry.
	Registry struct {
		mu      sync.RWMutex
		entries map[string]*Entry
		order   []string
	}
)

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Register adds cmd under its own name, available on every platform.
// A nil command, an empty name, or a name that is already taken fails with
// a typed error and leaves the registry unchanged.
func (r *Registry) Register(cmd Command) error {
	return r.register(Entry{Command: cmd})
}

// RegisterUnixOnly adds cmd like Register and marks it unavailable on
// Windows.
func (r *Registry) RegisterUnixOnly(cmd Command) error {
	return r.register(Entry{Command: cmd, OnlyUnix: true})
}

func (r *Registry) register(entry Entry) error {
	if entry.Command == nil || entry.Command.Name() == "" {
		return &EmptyCommandNameError{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := entry.Command.Name()
	if _, exists := r.entries[name]; exists {
		return &DuplicateCommandError{Name: name}
	}
	r.entries[name] = &entry
	r.order = append(r.order, name)
	return nil
}

// Lookup retrieves the entry registered under name.
// Returns nil, false if the command is not registered.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	return entry, ok
}

// Names returns all registered command names in registration order, each
// name exactly once.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}
