package generator

import (
	"sync"

	"pipegen/pkg/detector"
)

var (
	registry = make(map[detector.Framework]Factory)
	mu       sync.RWMutex
)

// Factory is a function that creates a new Generator instance
type Factory func() Generator

// Register adds a generator to the registry.
// Generators call this in their init() function.
func Register(framework detector.Framework, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	registry[framework] = factory
}

// ForFramework retrieves the generator registered for a framework.
// There is deliberately no fallback for unknown frameworks.
func ForFramework(framework detector.Framework) (Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	factory, exists := registry[framework]
	if !exists {
		return nil, &UnsupportedFrameworkError{Framework: string(framework)}
	}
	return factory(), nil
}

// Registered returns the frameworks with a registered generator, in
// detection rule order (registration order is init order and not stable).
func Registered() []string {
	mu.RLock()
	defer mu.RUnlock()

	var names []string
	for _, name := range detector.Frameworks() {
		if _, ok := registry[detector.Framework(name)]; ok {
			names = append(names, name)
		}
	}
	return names
}
