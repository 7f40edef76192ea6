package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic checking via errors.Is().
var (
	// ErrDuplicateName indicates a router or path name already present in its collection.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrUnknownRouter indicates a reference to a router that is not a member of the network.
	ErrUnknownRouter = errors.New("unknown router")

	// ErrInvalidLength indicates a link length that is not > 0.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidBandwidth indicates a path bandwidth that is not > 0.
	ErrInvalidBandwidth = errors.New("invalid bandwidth")

	// ErrInvalidFidelity indicates a path fidelity outside (0, +Inf).
	ErrInvalidFidelity = errors.New("invalid fidelity")
)

// DuplicateNameError is returned when adding an entity whose name is taken.
type DuplicateNameError struct {
	Kind string // "router" or "path"
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s: %s %q already exists", ErrDuplicateName.Error(), e.Kind, e.Name)
}

func (e *DuplicateNameError) Unwrap() error { return ErrDuplicateName }

// UnknownRouterError is returned when an endpoint name does not resolve to a
// router of the expected network.
type UnknownRouterError struct {
	Role string // which reference failed, e.g. "router-1" or "end-point-2"
	Name string
}

func (e *UnknownRouterError) Error() string {
	if e.Role == "" {
		return fmt.Sprintf("%s: %q", ErrUnknownRouter.Error(), e.Name)
	}
	return fmt.Sprintf("%s: %s %q is not a router in the network", ErrUnknownRouter.Error(), e.Role, e.Name)
}

func (e *UnknownRouterError) Unwrap() error { return ErrUnknownRouter }

// InvalidLengthError is returned for a link length <= 0.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("%s: link length %d must be > 0", ErrInvalidLength.Error(), e.Length)
}

func (e *InvalidLengthError) Unwrap() error { return ErrInvalidLength }

// InvalidBandwidthError is returned for a path bandwidth <= 0.
type InvalidBandwidthError struct {
	Bandwidth int
}

func (e *InvalidBandwidthError) Error() string {
	return fmt.Sprintf("%s: requested bandwidth %d must be > 0", ErrInvalidBandwidth.Error(), e.Bandwidth)
}

func (e *InvalidBandwidthError) Unwrap() error { return ErrInvalidBandwidth }

// InvalidFidelityError is returned for a path fidelity that is not a finite value > 0.
type InvalidFidelityError struct {
	Fidelity float64
}

func (e *InvalidFidelityError) Error() string {
	return fmt.Sprintf("%s: requested fidelity %g must be > 0", ErrInvalidFidelity.Error(), e.Fidelity)
}

func (e *InvalidFidelityError) Unwrap() error { return ErrInvalidFidelity }
