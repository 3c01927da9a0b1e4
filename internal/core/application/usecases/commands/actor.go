package commands

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// authorizeActor loads the acting user and fails with a CapabilityError unless it is
// active and its role grants capability. Unknown actors are refused the same way.
func authorizeActor(
	ctx context.Context,
	users ports.UserRepository,
	actorID kernel.UUID,
	capability identity.Capability,
) (*identity.User, error) {
	actor, err := getActor(ctx, users, actorID, capability.String())
	if err != nil {
		return nil, err
	}
	if err = actor.Authorize(capability); err != nil {
		return nil, err
	}
	return actor, nil
}

// loadActiveActor is authorizeActor for operations open to every role.
func loadActiveActor(ctx context.Context, users ports.UserRepository, actorID kernel.UUID) (*identity.User, error) {
	actor, err := getActor(ctx, users, actorID, "act")
	if err != nil {
		return nil, err
	}
	if err = actor.EnsureActive(); err != nil {
		return nil, err
	}
	return actor, nil
}

func getActor(ctx context.Context, users ports.UserRepository, actorID kernel.UUID, capability string) (*identity.User, error) {
	actor, err := users.Get(ctx, actorID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewCapabilityErrorWithReason(actorID.String(), capability, "account does not exist")
	}
	if err != nil {
		return nil, err
	}
	return actor, nil
}
