package test

import (
	"context"
	"database/sql/driver"
	"errors"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/waxline/waxmart/internal"
	"github.com/waxline/waxmart/internal/model"
)

var orderColumns = []string{
	"id", "order_number", "distributor_id", "viewer_id", "customer_name", "viewer_email",
	"phone_number", "shipping_address", "billing_address", "items", "total_amount", "total_weight",
	"status", "payment_status", "platform_fee_amount", "stripe_checkout_session_id",
	"stripe_payment_intent_id", "carrier", "tracking_number", "tracking_url",
	"created_at", "updated_at", "paid_at", "shipped_at",
}

func orderRow(t time.Time) []driverValue {
	items := []byte(`[{"recordId":"rec-1","title":"Blue Train","artist":"John Coltrane","quantity":2,"priceAtTimeOfOrder":"150.00"},` +
		`{"recordId":"rec-2","title":"Kind of Blue","artist":"Miles Davis","quantity":1,"priceAtTimeOfOrder":"200.00"}]`)
	return []driverValue{
		"ord-1", int64(1042), "dist-1", "viewer-7", "Jo Reim", "jo@example.com",
		nil, "12 Canal St", nil, items, "500.00", int64(900),
		model.OrderStatusPaid, model.PaymentStatusPaid, "20.00", "cs_test_1",
		nil, nil, nil, nil,
		t, t, t, nil,
	}
}

type driverValue = driver.Value

var _ = Describe("Repository", func() {
	var (
		repo internal.IRepository
		mock sqlmock.Sqlmock
	)
	BeforeEach(func() {
		db, m, err := sqlmock.New()
		Expect(err).ShouldNot(HaveOccurred())

		mock = m
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		repo = internal.Repository{
			Conn:   db,
			Logger: logger.Sugar(),
		}
	})
	AfterEach(func() {
		err := mock.ExpectationsWereMet()
		Expect(err).ShouldNot(HaveOccurred())
	})
	Context("Repository tests", func() {
		It("GetOrderByID without error", func() {
			t := time.Now()

			expectedRows := sqlmock.NewRows(orderColumns).AddRow(orderRow(t)...)

			mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
				WithArgs("ord-1").WillReturnRows(expectedRows).RowsWillBeClosed()

			order, err := repo.GetOrderByID(context.Background(), "ord-1")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(order.ID).Should(Equal("ord-1"))
			Expect(order.Items).Should(HaveLen(2))
			Expect(order.TotalAmount.StringFixed(2)).Should(Equal("500.00"))
			Expect(order.PlatformFeeAmount).ShouldNot(BeNil())
			Expect(order.PlatformFeeAmount.StringFixed(2)).Should(Equal("20.00"))
			Expect(order.ShippedAt).Should(BeNil())
		})
		It("GetOrderByID translates no rows to not found", func() {
			mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
				WithArgs("missing").WillReturnRows(sqlmock.NewRows(orderColumns))

			_, err := repo.GetOrderByID(context.Background(), "missing")
			Expect(err).Should(Equal(internal.ErrOrderNotFound))
		})
		It("GetOrderByID with error", func() {
			mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
				WithArgs("ord-1").WillReturnError(errors.New("some error"))

			_, err := repo.GetOrderByID(context.Background(), "ord-1")
			Expect(err).Should(HaveOccurred())
		})
		It("GetOrders without error", func() {
			t := time.Now()

			expectedRows := sqlmock.NewRows(orderColumns).AddRow(orderRow(t)...)

			mock.ExpectQuery("SELECT (.+) FROM orders WHERE distributor_id = \\$1 ORDER BY created_at DESC").
				WithArgs("dist-1").WillReturnRows(expectedRows).RowsWillBeClosed()

			orders, err := repo.GetOrders(context.Background(), "dist-1")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(orders).Should(HaveLen(1))
		})
		It("UpdateOrder without error", func() {
			t := time.Now()
			fee := decimal.RequireFromString("20.00")
			order := model.Order{
				ID:                "ord-1",
				Status:            model.OrderStatusProcessing,
				UpdatedAt:         t,
				PlatformFeeAmount: &fee,
				PaidAt:            &t,
			}

			mock.ExpectExec("UPDATE orders").
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := repo.UpdateOrder(context.Background(), order, model.OrderStatusPaid)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("UpdateOrder with a stale read status is a conflict", func() {
			order := model.Order{ID: "ord-1", Status: model.OrderStatusCancelled, UpdatedAt: time.Now()}

			mock.ExpectExec("UPDATE orders").
				WillReturnResult(sqlmock.NewResult(0, 0))

			err := repo.UpdateOrder(context.Background(), order, model.OrderStatusPaid)
			Expect(err).Should(Equal(internal.ErrTransitionConflict))
		})
		It("GetDistributorByID without error", func() {
			expectedRows := sqlmock.NewRows([]string{"id", "name", "contact_email", "stripe_connect_account_id"}).
				AddRow("dist-1", "Crate Records", "sales@crate.example", nil)

			mock.ExpectQuery("SELECT (.+) FROM distributors WHERE id = \\$1").
				WithArgs("dist-1").WillReturnRows(expectedRows).RowsWillBeClosed()

			d, err := repo.GetDistributorByID(context.Background(), "dist-1")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(d.Name).Should(Equal("Crate Records"))
			Expect(d.PayoutEnabled()).Should(BeFalse())
		})
		It("GetDistributorByID translates no rows to not found", func() {
			mock.ExpectQuery("SELECT (.+) FROM distributors WHERE id = \\$1").
				WithArgs("missing").WillReturnRows(sqlmock.NewRows([]string{"id", "name", "contact_email", "stripe_connect_account_id"}))

			_, err := repo.GetDistributorByID(context.Background(), "missing")
			Expect(err).Should(Equal(internal.ErrDistributorNotFound))
		})
	})
})
