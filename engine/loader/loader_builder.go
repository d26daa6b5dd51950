package loader

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithZUpToYUp remaps every position from a Z-up source into the viewer's Y-up world:
// (x, y, z) becomes (-x, z, -y).
//
// Parameters:
//   - enabled: true to apply the remap
//
// Returns:
//   - LoaderBuilderOption: a function that applies the option to a loader
func WithZUpToYUp(enabled bool) LoaderBuilderOption {
	return func(l *loader) {
		l.zUpToYUp = enabled
	}
}

// WithWorkers sets how many primitives are converted in parallel. Values below 1 mean 1.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - LoaderBuilderOption: a function that applies the option to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		l.workers = n
	}
}
