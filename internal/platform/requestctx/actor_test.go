package requestctx

import (
	"context"
	"testing"
)

func TestActorRoundTrip(t *testing.T) {
	ctx := WithActor(context.Background(), Actor{ID: 42, Role: RoleStudent})

	actor, ok := ActorFromContext(ctx)
	if !ok {
		t.Fatal("expected actor in context")
	}
	if actor.ID != 42 {
		t.Fatalf("actor id = %d, want 42", actor.ID)
	}
	if !actor.IsStudent() {
		t.Fatal("expected student role")
	}
	if actor.IsFaculty() {
		t.Fatal("did not expect faculty role")
	}
}

func TestActorFromContextMissing(t *testing.T) {
	if _, ok := ActorFromContext(context.Background()); ok {
		t.Fatal("expected no actor in empty context")
	}
}
