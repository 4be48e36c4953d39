// Package container declares the errors and type constraints shared by the
// linked containers of this module.
//
// The containers in the sub-packages are not safe to use concurrently from
// multiple goroutines; programs that share them must provide their own
// synchronization.
package container

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrEmpty is returned when removing a value from a container which holds
	// no values.
	ErrEmpty = errors.New("container is empty")

	// ErrIndexOutOfRange is returned by indexed accessors and mutators when
	// the index falls outside of the range accepted by the operation.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Number is the constraint satisfied by the value types that containers can
// compute averages of.
type Number interface {
	constraints.Integer | constraints.Float
}

// OutOfRange returns an error wrapping ErrIndexOutOfRange which reports the
// index and the length of the container that rejected it.
func OutOfRange(index, length int) error {
	return fmt.Errorf("%w: index=%d length=%d", ErrIndexOutOfRange, index, length)
}
