package queries

import (
	"errors"
	"strings"

	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/pkg/guard"
)

var ErrListCostEstimatesQueryIsNotConstructed = errors.New(
	"ListCostEstimatesQuery must be created via NewListCostEstimatesQuery constructor",
)

// CostEstimateFilter narrows a cost estimate listing. Zero fields do not filter.
type CostEstimateFilter struct {
	Status costestimate.Status
	Type   costestimate.Type
	// Search matches ce_number or title of the estimate, or po_number or title of
	// its purchase order.
	Search string
}

// ListCostEstimatesQuery pages through estimates, newest first.
type ListCostEstimatesQuery struct {
	filter CostEstimateFilter
	page   PageRequest
	sort   SortOrder

	guard guard.ConstructorGuard
}

func NewListCostEstimatesQuery(filter CostEstimateFilter, page PageRequest, sort SortOrder) (ListCostEstimatesQuery, error) {
	if filter.Status != costestimate.Unknown {
		if err := filter.Status.Validate(); err != nil {
			return ListCostEstimatesQuery{}, err
		}
	}
	if filter.Type != costestimate.UnknownType {
		if err := filter.Type.Validate(); err != nil {
			return ListCostEstimatesQuery{}, err
		}
	}
	filter.Search = strings.TrimSpace(filter.Search)

	return ListCostEstimatesQuery{
		filter: filter,
		page:   NewPageRequest(page.Page, page.PerPage),
		sort:   sort,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListCostEstimatesQuery) Filter() CostEstimateFilter {
	return q.filter
}

func (q ListCostEstimatesQuery) Page() PageRequest {
	return q.page
}

func (q ListCostEstimatesQuery) Validate() error {
	return q.guard.Validate(ErrListCostEstimatesQueryIsNotConstructed)
}
