// Package requestctx carries the authenticated actor through request context.
// Identity verification happens upstream; services here trust the actor.
package requestctx

import "context"

// Role is the verified role of an authenticated actor.
type Role string

const (
	// RoleStudent identifies a student actor.
	RoleStudent Role = "student"
	// RoleFaculty identifies a faculty actor.
	RoleFaculty Role = "faculty"
)

// Actor is an authenticated principal with a numeric identity and a role.
type Actor struct {
	ID   int64
	Role Role
}

// IsStudent reports whether the actor carries the student role.
func (a Actor) IsStudent() bool {
	return a.Role == RoleStudent
}

// IsFaculty reports whether the actor carries the faculty role.
func (a Actor) IsFaculty() bool {
	return a.Role == RoleFaculty
}

// actorContextKey is the context key for the authenticated actor.
type actorContextKey struct{}

// WithActor stores an authenticated actor in context.
func WithActor(ctx context.Context, actor Actor) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext returns the actor stored in context, if any.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	if ctx == nil {
		return Actor{}, false
	}
	actor, ok := ctx.Value(actorContextKey{}).(Actor)
	return actor, ok
}
