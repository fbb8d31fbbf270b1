// Package access resolves the authenticated actor placed in the request
// context by the auth middleware and checks it against required roles.
package access

import (
	"context"
	"slices"

	"hotel/shared/constant"
	"hotel/shared/failure"
)

type Actor struct {
	ID    string
	Email string
	Role  string
}

func (a Actor) IsAdmin() bool {
	return a.Role == constant.RoleAdmin
}

// WithActor stores actor in ctx the same way the auth middleware does.
func WithActor(ctx context.Context, actor Actor) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, actor.ID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, actor.Email)

	return context.WithValue(ctx, constant.ContextKeyUserRole, actor.Role)
}

// FromContext returns the actor, or an Unauthorized failure when the request
// carried no verified credential.
func FromContext(ctx context.Context) (Actor, error) {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if id == "" {
		return Actor{}, failure.Unauthorized("Access denied. No token provided.")
	}

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return Actor{ID: id, Email: email, Role: role}, nil
}

// Authorize requires an authenticated actor holding one of roles. With no
// roles any authenticated actor passes.
func Authorize(ctx context.Context, roles ...string) (Actor, error) {
	actor, err := FromContext(ctx)
	if err != nil {
		return Actor{}, err
	}

	if len(roles) > 0 && !slices.Contains(roles, actor.Role) {
		if slices.Equal(roles, []string{constant.RoleAdmin}) {
			return Actor{}, failure.Forbidden("Access denied. Admin privileges required.")
		}

		return Actor{}, failure.ForbiddenError
	}

	return actor, nil
}

// Username returns the actor id for audit columns, or guest when anonymous.
func Username(ctx context.Context) string {
	actor, err := FromContext(ctx)
	if err != nil {
		return constant.ContextGuest
	}

	return actor.ID
}
