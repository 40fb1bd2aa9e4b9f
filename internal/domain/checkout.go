package domain

// PaymentStatus is the payment provider's session state vocabulary.
// Anything outside the known values maps to PaymentStatusUnknown,
// which reconciliation treats as "no transition".
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusUnknown PaymentStatus = "unknown"
)

func ToPaymentStatus(s string) PaymentStatus {
	switch PaymentStatus(s) {
	case PaymentStatusPaid:
		return PaymentStatusPaid
	case PaymentStatusUnpaid:
		return PaymentStatusUnpaid
	default:
		return PaymentStatusUnknown
	}
}

// CheckoutSession is the subset of the provider's session record
// the reconciliation path cares about.
type CheckoutSession struct {
	ID              string
	PaymentStatus   PaymentStatus
	PaymentIntentID string
}
