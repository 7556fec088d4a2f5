package model

// Distributor is referenced read-only by the order engine. The presence of
// StripeConnectAccountID is the sole signal that a payout can actually be
// transferred.
type Distributor struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	ContactEmail           string `json:"contactEmail"`
	StripeConnectAccountID string `json:"stripeConnectAccountId,omitempty"`
}

// PayoutEnabled reports whether payouts to this distributor are transferable.
func (d Distributor) PayoutEnabled() bool {
	return d.StripeConnectAccountID != ""
}
