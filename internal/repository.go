package internal

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/waxline/waxmart/internal/model"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const (
	orderFields       = "id, order_number, distributor_id, viewer_id, customer_name, viewer_email, phone_number, shipping_address, billing_address, items, total_amount, total_weight, status, payment_status, platform_fee_amount, stripe_checkout_session_id, stripe_payment_intent_id, carrier, tracking_number, tracking_url, created_at, updated_at, paid_at, shipped_at"
	distributorFields = "id, name, contact_email, stripe_connect_account_id"
)

type IRepository interface {
	GetOrderByID(context.Context, string) (model.Order, error)
	GetOrders(context.Context, string) ([]model.Order, error)
	UpdateOrder(context.Context, model.Order, string) error
	GetDistributorByID(context.Context, string) (model.Distributor, error)
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	if err = conn.Ping(); err != nil {
		return nil, err
	}

	goose.SetBaseFS(embedMigrations)
	if err = goose.Up(conn, "migrations"); err != nil {
		return nil, err
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

func (r Repository) GetOrderByID(ctx context.Context, id string) (model.Order, error) {
	row := r.Conn.QueryRowContext(ctx, "SELECT "+orderFields+" FROM orders WHERE id = $1", id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r Repository) GetOrders(ctx context.Context, distributorID string) ([]model.Order, error) {
	rows, err := r.Conn.QueryContext(ctx,
		"SELECT "+orderFields+" FROM orders WHERE distributor_id = $1 ORDER BY created_at DESC", distributorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateOrder persists a transitioned order. The write is conditional on the
// status observed when the order was read: if a concurrent operator got
// there first, zero rows match and the caller sees ErrTransitionConflict
// instead of a silently lost update.
func (r Repository) UpdateOrder(ctx context.Context, o model.Order, readStatus string) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	var fee decimal.NullDecimal
	if o.PlatformFeeAmount != nil {
		fee = decimal.NullDecimal{Decimal: *o.PlatformFeeAmount, Valid: true}
	}

	res, err := r.Conn.ExecContext(ctx, `UPDATE orders
		SET status = $1, updated_at = $2, platform_fee_amount = $3, paid_at = $4, shipped_at = $5,
		    carrier = NULLIF($6, ''), tracking_number = NULLIF($7, ''), tracking_url = NULLIF($8, ''),
		    items = $9
		WHERE id = $10 AND status = $11`,
		o.Status, o.UpdatedAt, fee, o.PaidAt, o.ShippedAt,
		o.Carrier, o.TrackingNumber, o.TrackingURL, items, o.ID, readStatus)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTransitionConflict
	}
	return nil
}

func (r Repository) GetDistributorByID(ctx context.Context, id string) (model.Distributor, error) {
	var d model.Distributor
	var stripeAccount sql.NullString

	row := r.Conn.QueryRowContext(ctx, "SELECT "+distributorFields+" FROM distributors WHERE id = $1", id)
	err := row.Scan(&d.ID, &d.Name, &d.ContactEmail, &stripeAccount)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Distributor{}, ErrDistributorNotFound
	}
	if err != nil {
		return model.Distributor{}, err
	}

	d.StripeConnectAccountID = stripeAccount.String
	return d, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (model.Order, error) {
	var (
		o              model.Order
		items          []byte
		phone          sql.NullString
		billing        sql.NullString
		paymentStatus  sql.NullString
		fee            decimal.NullDecimal
		checkout       sql.NullString
		intent         sql.NullString
		carrier        sql.NullString
		trackingNumber sql.NullString
		trackingURL    sql.NullString
		paidAt         sql.NullTime
		shippedAt      sql.NullTime
	)

	err := row.Scan(&o.ID, &o.OrderNumber, &o.DistributorID, &o.ViewerID, &o.CustomerName,
		&o.ViewerEmail, &phone, &o.ShippingAddress, &billing, &items, &o.TotalAmount,
		&o.TotalWeight, &o.Status, &paymentStatus, &fee, &checkout, &intent,
		&carrier, &trackingNumber, &trackingURL, &o.CreatedAt, &o.UpdatedAt, &paidAt, &shippedAt)
	if err != nil {
		return model.Order{}, err
	}

	if err = json.Unmarshal(items, &o.Items); err != nil {
		return model.Order{}, err
	}

	o.PhoneNumber = phone.String
	o.BillingAddress = billing.String
	o.PaymentStatus = paymentStatus.String
	o.StripeCheckoutSessionID = checkout.String
	o.StripePaymentIntentID = intent.String
	o.Carrier = carrier.String
	o.TrackingNumber = trackingNumber.String
	o.TrackingURL = trackingURL.String
	if fee.Valid {
		f := fee.Decimal
		o.PlatformFeeAmount = &f
	}
	if paidAt.Valid {
		t := paidAt.Time
		o.PaidAt = &t
	}
	if shippedAt.Valid {
		t := shippedAt.Time
		o.ShippedAt = &t
	}

	return o, nil
}
