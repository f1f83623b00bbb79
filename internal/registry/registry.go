package registry

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"lcwatch/internal/log"
)

// Registry is the set of tracked usernames, backed by a single text file of
// whitespace-separated names.  The file is read in full on construction and
// rewritten in full on every mutation.  A mutex serializes the
// read-modify-write cycle; the store itself still assumes a single writing
// process.
type Registry struct {
	path  string
	mu    sync.Mutex
	users map[string]struct{}
}

// New creates a Registry backed by the file at path and loads it.  A missing
// or empty store is not an error; tracking just starts from an empty set.
func New(path string) (*Registry, error) {
	r := &Registry{
		path:  path,
		users: make(map[string]struct{}),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info("No username store found, starting with an empty set", "path", path)
			return r, nil
		}
		return nil, fmt.Errorf("unable to read username store: %w", err)
	}

	for _, name := range strings.Fields(string(data)) {
		r.users[name] = struct{}{}
	}

	log.Info("Loaded username store", "path", path, "count", len(r.users))
	return r, nil
}

// Add inserts a username and persists the store.  Returns false without
// touching the store when the name is already tracked.
func (r *Registry) Add(username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; ok {
		return false, nil
	}

	r.users[username] = struct{}{}
	if err := r.save(); err != nil {
		// Keep memory and disk in sync even on failure
		delete(r.users, username)
		return false, err
	}

	log.Info("Added user to registry", "username", username, "count", len(r.users))
	return true, nil
}

// Remove deletes a username and persists the store.  Returns false without
// touching the store when the name is not tracked.
func (r *Registry) Remove(username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; !ok {
		return false, nil
	}

	delete(r.users, username)
	if err := r.save(); err != nil {
		r.users[username] = struct{}{}
		return false, err
	}

	log.Info("Removed user from registry", "username", username, "count", len(r.users))
	return true, nil
}

// Contains reports whether the username is tracked.
func (r *Registry) Contains(username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[username]
	return ok
}

// List returns the tracked usernames sorted alphabetically.  The store itself
// is unordered; sorting here keeps display output deterministic.
func (r *Registry) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.users))
	for name := range r.users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of tracked usernames.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// save rewrites the backing file.  Each name is followed by a single space,
// matching the store format older deployments already have on disk.
// Callers must hold r.mu.
func (r *Registry) save() error {
	var sb strings.Builder
	for name := range r.users {
		sb.WriteString(name)
		sb.WriteString(" ")
	}

	if err := os.WriteFile(r.path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("unable to write username store: %w", err)
	}
	return nil
}
