// Package options implements the generic functional options used by lzw constructors.
package options

// Option configures a target of type T, typically a pointer to a config struct.
type Option[T any] interface {
	apply(T) error
}

// Func is an Option backed by a plain function.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New wraps a fallible setter as an Option.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError wraps a setter that cannot fail as an Option.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Join bundles several options into one, applied in order.
func Join[T any](opts ...Option[T]) Func[T] {
	return func(target T) error {
		return Apply(target, opts...)
	}
}

// ApplyAll applies every option in opts, even after one fails, and returns
// the first error. Constructors use it so that an option configuring error
// reporting takes effect wherever it appears in opts.
func ApplyAll[T any](target T, opts ...Option[T]) error {
	var firstErr error
	for _, opt := range opts {
		if err := Apply(target, opt); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// Apply applies opts to target in order and stops at the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
