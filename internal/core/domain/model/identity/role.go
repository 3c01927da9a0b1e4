package identity

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Role is the business classification of a user. It is used only to look up
// capabilities.
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota
	Superadmin
	Admin
	UnitKerja
	BSP
	KKF
	DAU
)

type roleInfo struct {
	code        string
	displayName string
}

func getRoleInfo() map[Role]roleInfo {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]roleInfo{
		Superadmin: {code: "superadmin", displayName: "Super Administrator"},
		Admin:      {code: "admin", displayName: "Administrator"},
		UnitKerja:  {code: "unit_kerja", displayName: "Unit Kerja"},
		BSP:        {code: "bsp", displayName: "BSP"},
		KKF:        {code: "kkf", displayName: "KKF"},
		DAU:        {code: "dau", displayName: "DAU"},
	}
}

// Roles returns every valid role in declaration order.
func Roles() []Role {
	return []Role{Superadmin, Admin, UnitKerja, BSP, KKF, DAU}
}

// RoleFromCode parses the persisted code of a role, e.g. "unit_kerja".
func RoleFromCode(code string) (Role, error) {
	for role, info := range getRoleInfo() {
		if info.code == code {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", code))
}

// Validate rejects UnknownRole and out-of-range values.
func (r Role) Validate() error {
	if _, ok := getRoleInfo()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the persisted code of the role.
func (r Role) String() string {
	if info, ok := getRoleInfo()[r]; ok {
		return info.code
	}
	return "unknown"
}

// DisplayName returns the human-readable label, e.g. "Super Administrator".
func (r Role) DisplayName() string {
	if info, ok := getRoleInfo()[r]; ok {
		return info.displayName
	}
	return "Unknown"
}
