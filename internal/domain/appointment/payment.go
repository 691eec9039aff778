package appointment

import "github.com/VidaPediatria/clinic-api/internal/httperr"

// ===============================
// Payment / Billing
// ===============================

const (
	PaymentCash         = "cash"
	PaymentDebitCard    = "debit_card"
	PaymentCreditCard   = "credit_card"
	PaymentPix          = "pix"
	PaymentBankTransfer = "bank_transfer"
)

const (
	InsuranceParticular = "particular"
	InsuranceConvenio   = "convenio"
)

func ValidatePaymentMethod(method string) error {
	switch method {
	case PaymentCash, PaymentDebitCard, PaymentCreditCard, PaymentPix, PaymentBankTransfer:
		return nil
	}
	return httperr.ErrBusiness("invalid_payment_method")
}

func ValidateInsuranceType(insurance string) error {
	switch insurance {
	case InsuranceParticular, InsuranceConvenio:
		return nil
	}
	return httperr.ErrBusiness("invalid_insurance_type")
}
