package queries

import (
	"errors"
	"strings"

	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/guard"
)

var ErrListPurchaseOrdersQueryIsNotConstructed = errors.New(
	"ListPurchaseOrdersQuery must be created via NewListPurchaseOrdersQuery constructor",
)

// PurchaseOrderFilter narrows a purchase order listing. Zero fields do not filter.
type PurchaseOrderFilter struct {
	Status   purchaseorder.Status
	Priority purchaseorder.Priority
	// Search matches po_number, title or description, ignoring case.
	Search string
}

// ListPurchaseOrdersQuery pages through purchase orders, newest first unless Sort
// names another column.
type ListPurchaseOrdersQuery struct {
	filter PurchaseOrderFilter
	page   PageRequest
	sort   SortOrder

	guard guard.ConstructorGuard
}

func NewListPurchaseOrdersQuery(filter PurchaseOrderFilter, page PageRequest, sort SortOrder) (ListPurchaseOrdersQuery, error) {
	if filter.Status != purchaseorder.Unknown {
		if err := filter.Status.Validate(); err != nil {
			return ListPurchaseOrdersQuery{}, err
		}
	}
	if filter.Priority != purchaseorder.UnknownPriority {
		if err := filter.Priority.Validate(); err != nil {
			return ListPurchaseOrdersQuery{}, err
		}
	}
	filter.Search = strings.TrimSpace(filter.Search)

	return ListPurchaseOrdersQuery{
		filter: filter,
		page:   NewPageRequest(page.Page, page.PerPage),
		sort:   sort,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListPurchaseOrdersQuery) Filter() PurchaseOrderFilter {
	return q.filter
}

func (q ListPurchaseOrdersQuery) Page() PageRequest {
	return q.page
}

func (q ListPurchaseOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListPurchaseOrdersQueryIsNotConstructed)
}
