package rsvg

// Option configures a Factory during creation.
// Use functional options to customize Factory behavior.
//
// Example:
//
//	// Default native-first backend selection
//	f := rsvg.NewFactory()
//
//	// Force a specific backend (dependency injection)
//	f := rsvg.NewFactory(rsvg.WithBackend(myBackend))
type Option func(*factoryOptions)

// factoryOptions holds optional configuration for Factory creation.
type factoryOptions struct {
	backend Backend
}

// defaultFactoryOptions returns the default factory options.
func defaultFactoryOptions() factoryOptions {
	return factoryOptions{
		backend: nil, // native-first selection with registered fallback
	}
}

// WithBackend forces a specific backend for every document the factory
// creates, bypassing the native-first selection. Intended for tests and
// for embedding a custom toolkit binding.
func WithBackend(b Backend) Option {
	return func(o *factoryOptions) {
		o.backend = b
	}
}
