// Package modes resolves game modes by name and starts them.
package modes

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// Survival is the name the survival mode is registered under.
const Survival = "survival"

var (
	// ErrUnknownMode is returned when no loader is registered for a name.
	ErrUnknownMode = errors.New("mode not found")
	// ErrNoEntryPoint is returned when a loader succeeds but yields nothing to start.
	ErrNoEntryPoint = errors.New("mode has no entry point")
)

// Starter is the entry point of a loaded mode.
type Starter interface {
	Start()
}

// LoadFunc prepares a mode on demand and returns its entry point.
type LoadFunc func() (Starter, error)

// Registry maps mode names to their loaders.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]LoadFunc
	logger  *log.Logger
}

// NewRegistry creates an empty registry. A nil logger uses log.Default().
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		loaders: make(map[string]LoadFunc),
		logger:  logger.WithPrefix("modes"),
	}
}

// Register adds or replaces the loader for name.
func (r *Registry) Register(name string, load LoadFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[name] = load
}

// Names returns the registered mode names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.loaders))
	for name := range r.loaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Launch loads the named mode and starts it. Failures are logged and returned;
// nothing is started when an error is returned.
func (r *Registry) Launch(name string) error {
	r.mu.RLock()
	load, ok := r.loaders[name]
	r.mu.RUnlock()

	if !ok || load == nil {
		err := fmt.Errorf("launch %q: %w", name, ErrUnknownMode)
		r.logger.Error("failed to load mode", "mode", name, "available", r.Names(), "err", err)
		return err
	}

	starter, err := load()
	if err != nil {
		err = fmt.Errorf("launch %q: %w", name, err)
		r.logger.Error("failed to load mode", "mode", name, "err", err)
		return err
	}
	if starter == nil {
		err := fmt.Errorf("launch %q: %w", name, ErrNoEntryPoint)
		r.logger.Error("mode entry point not found", "mode", name, "err", err)
		return err
	}

	r.logger.Debug("starting mode", "mode", name)
	starter.Start()
	return nil
}
