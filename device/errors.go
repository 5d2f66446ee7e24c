package device

import (
	"errors"
	"fmt"
)

// Error kinds raised by lifecycle and size operations. Callers classify
// them with errors.Is or the predicates below; every raised error names
// the device so batched operations can attribute failures.
var (
	ErrNotCreated    = errors.New("device has not been created")
	ErrAlreadyExists = errors.New("device has already been created")
	ErrNotLeaf       = errors.New("cannot destroy non-leaf device")
	ErrActiveFormat  = errors.New("cannot replace active format")
	ErrTooLarge      = errors.New("device size above maximum")
	ErrTooSmall      = errors.New("device size below minimum")
	ErrUnaligned     = errors.New("size violates alignment requirements")
	ErrNotResizable  = errors.New("device type is not resizable")
	ErrInvalidName   = errors.New("invalid device name")
)

func newDeviceError(name string, kind error) error {
	return fmt.Errorf("device '%s': %w", name, kind)
}

func IsNotCreated(err error) bool    { return errors.Is(err, ErrNotCreated) }
func IsAlreadyExists(err error) bool { return errors.Is(err, ErrAlreadyExists) }
func IsNotLeaf(err error) bool       { return errors.Is(err, ErrNotLeaf) }
func IsActiveFormat(err error) bool  { return errors.Is(err, ErrActiveFormat) }
func IsSizeOutOfBounds(err error) bool {
	return errors.Is(err, ErrTooLarge) || errors.Is(err, ErrTooSmall)
}
func IsUnaligned(err error) bool    { return errors.Is(err, ErrUnaligned) }
func IsNotResizable(err error) bool { return errors.Is(err, ErrNotResizable) }
