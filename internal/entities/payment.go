package entities

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentSuccess   PaymentStatus = "Success"
	PaymentCancelled PaymentStatus = "Cancelled"
	PaymentFailed    PaymentStatus = "Failed"
)

const (
	ResultCodeSuccess         = 0
	ResultCodeCancelledByUser = 1032
)

// Terminal статусы не меняются повторными callback'ами.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentSuccess || s == PaymentCancelled || s == PaymentFailed
}

func PaymentStatusFromResultCode(code int) PaymentStatus {
	switch code {
	case ResultCodeSuccess:
		return PaymentSuccess
	case ResultCodeCancelledByUser:
		return PaymentCancelled
	default:
		return PaymentFailed
	}
}
