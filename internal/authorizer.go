package internal

import (
	"github.com/waxline/waxmart/internal/model"
)

// Allows reports whether the actor may request a status transition at all.
// It only looks at role and permission flags; distributor scoping is checked
// by the service against the loaded order.
//
// masters transition freely within their distributor, workers only with the
// manage-orders permission, viewers never, and superadmins are observational
// only across all distributors.
func Allows(actor model.Actor, requestedStatus string) bool {
	switch actor.Role {
	case model.RoleMaster:
		return true
	case model.RoleWorker:
		return actor.CanManageOrders
	default:
		return false
	}
}
