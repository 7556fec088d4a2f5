package test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/waxline/waxmart/internal"
	"github.com/waxline/waxmart/internal/model"
)

var _ = Describe("TransitionAuthorizer", func() {
	Context("Allows", func() {
		It("master may request every transition", func() {
			actor := model.Actor{Role: model.RoleMaster, DistributorID: "dist-1"}
			for _, status := range []string{
				model.OrderStatusPaid,
				model.OrderStatusProcessing,
				model.OrderStatusShipped,
				model.OrderStatusCancelled,
			} {
				Expect(internal.Allows(actor, status)).Should(BeTrue())
			}
		})
		It("worker depends on the manage-orders permission", func() {
			actor := model.Actor{Role: model.RoleWorker, DistributorID: "dist-1", CanManageOrders: true}
			Expect(internal.Allows(actor, model.OrderStatusPaid)).Should(BeTrue())

			actor.CanManageOrders = false
			Expect(internal.Allows(actor, model.OrderStatusPaid)).Should(BeFalse())
		})
		It("viewer never transitions", func() {
			actor := model.Actor{Role: model.RoleViewer, DistributorID: "dist-1"}
			Expect(internal.Allows(actor, model.OrderStatusCancelled)).Should(BeFalse())
		})
		It("superadmin is observational only", func() {
			actor := model.Actor{Role: model.RoleSuperadmin}
			Expect(internal.Allows(actor, model.OrderStatusPaid)).Should(BeFalse())
		})
	})
	Context("Actor scoping", func() {
		It("superadmin reads across distributors", func() {
			actor := model.Actor{Role: model.RoleSuperadmin}
			Expect(actor.CanSee(model.Order{DistributorID: "dist-1"})).Should(BeTrue())
			Expect(actor.CanSee(model.Order{DistributorID: "dist-2"})).Should(BeTrue())
		})
		It("operators are scoped to their own distributor", func() {
			actor := model.Actor{Role: model.RoleMaster, DistributorID: "dist-1"}
			Expect(actor.CanSee(model.Order{DistributorID: "dist-1"})).Should(BeTrue())
			Expect(actor.CanSee(model.Order{DistributorID: "dist-2"})).Should(BeFalse())
		})
		It("viewer reads only the orders they placed", func() {
			actor := model.Actor{ID: "viewer-7", Role: model.RoleViewer, DistributorID: "dist-1"}
			Expect(actor.CanSee(model.Order{DistributorID: "dist-1", ViewerID: "viewer-7"})).Should(BeTrue())
			Expect(actor.CanSee(model.Order{DistributorID: "dist-1", ViewerID: "viewer-8"})).Should(BeFalse())
			Expect(actor.CanSee(model.Order{DistributorID: "dist-2", ViewerID: "viewer-7"})).Should(BeFalse())
		})
	})
})
