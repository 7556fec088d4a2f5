package model

const (
	RoleMaster     = "master"
	RoleWorker     = "worker"
	RoleViewer     = "viewer"
	RoleSuperadmin = "superadmin"
)

// Actor is the authenticated caller of an engine operation, decoded from the
// session token by the transport layer.
type Actor struct {
	ID              string `json:"id"`
	Role            string `json:"role"`
	DistributorID   string `json:"distributorId,omitempty"`
	CanManageOrders bool   `json:"canManageOrders"`
}

// CanSee reports whether the actor may read the order. Superadmins read
// across all distributors, operators are scoped to their own distributor,
// and viewers only see orders they placed themselves.
func (a Actor) CanSee(o Order) bool {
	switch a.Role {
	case RoleSuperadmin:
		return true
	case RoleViewer:
		return a.DistributorID == o.DistributorID && a.ID == o.ViewerID
	default:
		return a.DistributorID == o.DistributorID
	}
}
