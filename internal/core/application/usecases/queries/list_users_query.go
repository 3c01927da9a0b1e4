package queries

import (
	"errors"
	"strings"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// UserFilter narrows a user listing. Zero fields do not filter.
type UserFilter struct {
	Role   identity.Role
	Active *bool
	// Search matches name or email, ignoring case.
	Search string
}

// ListUsersQuery pages through users ordered by name. Only actors that may manage
// users can run it.
type ListUsersQuery struct {
	actorID kernel.UUID
	filter  UserFilter
	page    PageRequest

	guard guard.ConstructorGuard
}

func NewListUsersQuery(actorID kernel.UUID, filter UserFilter, page PageRequest) (ListUsersQuery, error) {
	if err := actorID.Validate(); err != nil {
		return ListUsersQuery{}, err
	}
	if filter.Role != identity.UnknownRole {
		if err := filter.Role.Validate(); err != nil {
			return ListUsersQuery{}, err
		}
	}
	filter.Search = strings.TrimSpace(filter.Search)

	return ListUsersQuery{
		actorID: actorID,
		filter:  filter,
		page:    NewPageRequest(page.Page, page.PerPage),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListUsersQuery) ActorID() kernel.UUID {
	return q.actorID
}

func (q ListUsersQuery) Filter() UserFilter {
	return q.filter
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}
