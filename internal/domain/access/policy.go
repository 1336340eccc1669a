package access

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated = errors.New("access: caller not authenticated")
	ErrForbidden       = errors.New("access: caller not allowed")
)

// Gate decides whether a capability may perform an action. owner is the user
// whose data is touched, or zero when the action is not user-scoped.
type Gate interface {
	Authorize(ctx context.Context, capability Capability, action Action, owner uint) error
}

// OpenGate lets every call through.
type OpenGate struct{}

func (OpenGate) Authorize(context.Context, Capability, Action, uint) error {
	return nil
}

// OwnerGate requires an authenticated caller, and for user-scoped actions
// the caller must own the data or hold the admin role.
type OwnerGate struct{}

func (OwnerGate) Authorize(_ context.Context, capability Capability, action Action, owner uint) error {
	if !capability.Authenticated() {
		return ErrUnauthenticated
	}
	if !UserScoped(action) || capability.Role == RoleAdmin {
		return nil
	}
	if capability.Subject != owner {
		return fmt.Errorf("%w: %s on user %d", ErrForbidden, action, owner)
	}
	return nil
}

func NewGate(mode string) (Gate, error) {
	switch mode {
	case "", "open":
		return OpenGate{}, nil
	case "owner":
		return OwnerGate{}, nil
	default:
		return nil, fmt.Errorf("access: unknown gate mode %q", mode)
	}
}
