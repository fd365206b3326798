package valueobjects

import "fmt"

// PaymentType distinguishes bills backed by an uploaded receipt from bills
// paid through the payment gateway.
type PaymentType string

const (
	PaymentTypeUploadBill PaymentType = "upload_bill"
	PaymentTypePayNow     PaymentType = "pay_now"
)

func NewPaymentType(value string) (PaymentType, error) {
	pt := PaymentType(value)
	if !pt.IsValid() {
		return "", fmt.Errorf("invalid payment type: %s", value)
	}
	return pt, nil
}

func (p PaymentType) String() string {
	return string(p)
}

func (p PaymentType) IsValid() bool {
	return p == PaymentTypeUploadBill || p == PaymentTypePayNow
}

// RequiresGateway reports whether the bill depends on payment gateway
// verification before its content can be submitted.
func (p PaymentType) RequiresGateway() bool {
	return p == PaymentTypePayNow
}
