// Package circular provides an array which can be rotated in constant time.
//
// The array never moves its values when rotated; it keeps track of the
// physical position of the logical first value instead, and maps logical
// indexes to physical ones on lookups.
package circular

const (
	// DefaultCapacity is the default capacity of the backing storage of arrays
	// created with New.
	DefaultCapacity = 8
)

// Config carries the configuration of circular arrays.
type Config struct {
	Capacity int
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{
		Capacity: DefaultCapacity,
	}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// Array instances.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// Capacity is a configuration option setting the number of values that the
// array can hold before its backing storage needs to grow. Negative values are
// treated as zero.
//
// Default: 8
func Capacity(n int) Option {
	return option(func(config *Config) { config.Capacity = n })
}

// Array is an append-only sequence of values of type T which supports rotation
// of its logical start.
//
// The zero-value is a valid, empty array.
type Array[T any] struct {
	values []T
	start  int
}

// New constructs a new empty Array, using the list of options passed as
// arguments to configure it.
func New[T any](options ...Option) *Array[T] {
	config := DefaultConfig()
	config.Apply(options...)
	return NewWithConfig[T](config)
}

// NewWithConfig is like New but uses a Config instance to pass the array
// configuration instead of a list of options.
func NewWithConfig[T any](config *Config) *Array[T] {
	capacity := config.Capacity
	if capacity < 0 {
		capacity = 0
	}
	return &Array[T]{values: make([]T, 0, capacity)}
}

// Of constructs an Array holding the values passed as arguments, in order.
func Of[T any](values ...T) *Array[T] {
	a := New[T](Capacity(len(values)))
	for _, v := range values {
		a.Add(v)
	}
	return a
}

// Len returns the number of values in the array.
func (a *Array[T]) Len() int { return len(a.values) }

// Add appends v to the backing storage of the array. The logical start is left
// unchanged, so v is found at the logical index which maps to the last
// physical slot: Len()-1 when the array has not been rotated.
//
// Complexity: O(1) amortized
func (a *Array[T]) Add(v T) {
	a.values = append(a.values, v)
}

// Rotate moves the logical start of the array by the given number of steps.
// Positive steps rotate toward higher indexes, so the value previously found at
// index steps becomes the value at index zero; negative steps rotate backward.
// Rotating an empty array is a no-op.
//
// Complexity: O(1)
func (a *Array[T]) Rotate(steps int) {
	n := len(a.values)
	if n == 0 {
		return
	}
	a.start = (a.start + steps%n) % n
	if a.start < 0 {
		a.start += n
	}
}

// At returns the value at the given logical index of the array. The boolean is
// false if the index is negative or not lower than the array length, in which
// case the zero-value of T is returned.
//
// Complexity: O(1)
func (a *Array[T]) At(index int) (value T, found bool) {
	n := len(a.values)
	if index < 0 || index >= n {
		return value, false
	}
	return a.values[(a.start+index)%n], true
}

// Values returns a slice holding the values of the array, in logical order.
func (a *Array[T]) Values() []T {
	n := len(a.values)
	values := make([]T, 0, n)
	values = append(values, a.values[a.start:]...)
	values = append(values, a.values[:a.start]...)
	return values
}
