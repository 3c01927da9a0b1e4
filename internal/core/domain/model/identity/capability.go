package identity

// Capability is a role-derived permission to perform one class of operation.
type Capability int

const (
	ManageUsers Capability = iota + 1
	ValidatePurchaseOrders
	ApproveCostEstimates
	CreateCostEstimates
	CompletePurchaseOrders
)

func getCapabilityNames() map[Capability]string {
	return map[Capability]string{
		ManageUsers:            "manage users",
		ValidatePurchaseOrders: "validate purchase orders",
		ApproveCostEstimates:   "approve cost estimates",
		CreateCostEstimates:    "create cost estimates",
		CompletePurchaseOrders: "complete purchase orders",
	}
}

// grants is the complete role to capability table.
//
//nolint:exhaustive // roles without capabilities are omitted
var grants = map[Role][]Capability{
	Superadmin: {ManageUsers, ValidatePurchaseOrders, ApproveCostEstimates, CreateCostEstimates, CompletePurchaseOrders},
	Admin:      {ValidatePurchaseOrders, ApproveCostEstimates, CreateCostEstimates, CompletePurchaseOrders},
	BSP:        {ValidatePurchaseOrders, CreateCostEstimates},
	DAU:        {ApproveCostEstimates},
}

// Capabilities returns every capability in declaration order.
func Capabilities() []Capability {
	return []Capability{ManageUsers, ValidatePurchaseOrders, ApproveCostEstimates, CreateCostEstimates, CompletePurchaseOrders}
}

func (c Capability) String() string {
	if name, ok := getCapabilityNames()[c]; ok {
		return name
	}
	return "unknown capability"
}

// Can reports whether the role grants the capability.
func (r Role) Can(c Capability) bool {
	for _, granted := range grants[r] {
		if granted == c {
			return true
		}
	}
	return false
}

// Capabilities lists what the role grants, in declaration order. The slice is a copy.
func (r Role) Capabilities() []Capability {
	return append([]Capability(nil), grants[r]...)
}

func (r Role) CanManageUsers() bool { return r.Can(ManageUsers) }

func (r Role) CanValidatePurchaseOrders() bool { return r.Can(ValidatePurchaseOrders) }

func (r Role) CanApproveCostEstimates() bool { return r.Can(ApproveCostEstimates) }

func (r Role) CanCreateCostEstimates() bool { return r.Can(CreateCostEstimates) }

func (r Role) CanCompletePurchaseOrders() bool { return r.Can(CompletePurchaseOrders) }
