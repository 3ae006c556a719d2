package domain

import "time"

// Withdrawals are granular to 10,000-point units; the unit is also the
// minimum amount. Payouts are subject to Korean withholding tax at 22%.
const (
	WithdrawalUnit     int64 = 10000
	withholdingRatePct int64 = 22
)

// WithdrawalStatus is the lifecycle state of a withdrawal request. All
// transitions out of requested are administrator-only.
type WithdrawalStatus string

const (
	WithdrawalRequested WithdrawalStatus = "requested"
	WithdrawalApproved  WithdrawalStatus = "approved"
	WithdrawalRejected  WithdrawalStatus = "rejected"
	WithdrawalPaid      WithdrawalStatus = "paid"
)

// KYC holds the tax-reporting information required with every withdrawal
// request. Images are opaque references into external storage.
type KYC struct {
	RealName              string
	ResidentNumberPartial string // first six digits of the resident registration number
	ContactPhone          string
	IDCardImage           string
	BankbookImage         string
	PrivacyConsent        bool
}

// Validate checks that every required KYC field is present.
func (k KYC) Validate() error {
	if k.RealName == "" {
		return Invalid("real_name", "real name is required")
	}
	if !isSixDigits(k.ResidentNumberPartial) {
		return Invalid("resident_number_partial", "first six digits of the resident number are required")
	}
	if k.ContactPhone == "" {
		return Invalid("contact_phone", "contact phone is required")
	}
	if k.IDCardImage == "" {
		return Invalid("id_card_image", "identity document image is required")
	}
	if k.BankbookImage == "" {
		return Invalid("bankbook_image", "bank-book image is required")
	}
	if !k.PrivacyConsent {
		return Invalid("privacy_consent", "consent to personal data collection is required")
	}
	return nil
}

func isSixDigits(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// WithdrawalRequest is an influencer's request to cash out sphere points.
type WithdrawalRequest struct {
	ID           int64
	Reference    string // opaque token identifying the request externally
	InfluencerID int64

	Amount         int64
	WithholdingTax int64
	NetPayout      int64

	BankName      string
	AccountNumber string
	AccountHolder string
	KYC

	Status          WithdrawalStatus
	RejectionReason string
	RequestedAt     time.Time
	ReviewedAt      *time.Time
	PaidAt          *time.Time
}

// WithholdingTax returns the tax withheld from a payout of amount points,
// floored to a whole point.
func WithholdingTax(amount int64) int64 {
	return amount * withholdingRatePct / 100
}

// ValidateWithdrawalAmount checks the unit and minimum constraints on a
// requested amount against the influencer's available balance.
func ValidateWithdrawalAmount(amount, balance int64) error {
	if amount < WithdrawalUnit {
		return Invalid("amount", "minimum withdrawal is 10,000 points")
	}
	if amount%WithdrawalUnit != 0 {
		return Invalid("amount", "withdrawals must be in 10,000-point units")
	}
	if balance < amount {
		return Invalid("amount", "insufficient point balance")
	}
	return nil
}
