package ports

import (
	"context"

	"shoplist/internal/core/domain/model/actor"
)

// IdentityProvider is the external collaborator that authenticates requests.
// It hands the workflow an Actor with a stable identifier, a role tag, and
// an active flag; the workflow trusts these claims without re-validating
// credentials. Implementations must treat a missing or inactive principal
// as unauthenticated.
type IdentityProvider interface {
	// CurrentActor resolves the authenticated principal for the request
	// carried by ctx.
	CurrentActor(ctx context.Context) (actor.Actor, error)
}
