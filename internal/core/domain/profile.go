package domain

// InfluencerProfile is the settlement-relevant slice of an influencer's
// profile. Social handles and the rest of the profile live outside this
// core and are managed by the profile service.
type InfluencerProfile struct {
	UserID            int64
	AccountHolderName string
	BankName          string
	AccountNumber     string
	ContactPhone      string
	SpherePoints      int64 // available point balance
}

// HasBankAccount reports whether the bank fields required for a payout
// are present on the profile.
func (p InfluencerProfile) HasBankAccount() bool {
	return p.BankName != "" && p.AccountNumber != "" && p.AccountHolderName != ""
}
