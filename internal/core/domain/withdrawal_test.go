package domain

import (
	"errors"
	"testing"
)

func validKYC() KYC {
	return KYC{
		RealName:              "Kim Jiwoo",
		ResidentNumberPartial: "950315",
		ContactPhone:          "010-1234-5678",
		IDCardImage:           "kyc/id-card.jpg",
		BankbookImage:         "kyc/bankbook.jpg",
		PrivacyConsent:        true,
	}
}

func TestWithholdingTax(t *testing.T) {
	tests := []struct {
		amount int64
		want   int64
	}{
		{10000, 2200},
		{30000, 6600},
		{50000, 11000},
		{0, 0},
	}
	for _, tt := range tests {
		if got := WithholdingTax(tt.amount); got != tt.want {
			t.Errorf("WithholdingTax(%d) = %d, want %d", tt.amount, got, tt.want)
		}
	}
}

func TestValidateWithdrawalAmount(t *testing.T) {
	if err := ValidateWithdrawalAmount(30000, 50000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		amount  int64
		balance int64
	}{
		{"below the minimum", 5000, 50000},
		{"not a whole unit", 15000, 50000},
		{"over the balance", 30000, 20000},
		{"zero amount", 0, 50000},
		{"negative amount", -10000, 50000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWithdrawalAmount(tt.amount, tt.balance)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestKYCValidate(t *testing.T) {
	if err := validKYC().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		mod   func(*KYC)
		field string
	}{
		{"missing name", func(k *KYC) { k.RealName = "" }, "real_name"},
		{"resident number too short", func(k *KYC) { k.ResidentNumberPartial = "9503" }, "resident_number_partial"},
		{"resident number not numeric", func(k *KYC) { k.ResidentNumberPartial = "95O315" }, "resident_number_partial"},
		{"missing phone", func(k *KYC) { k.ContactPhone = "" }, "contact_phone"},
		{"missing id card image", func(k *KYC) { k.IDCardImage = "" }, "id_card_image"},
		{"missing bankbook image", func(k *KYC) { k.BankbookImage = "" }, "bankbook_image"},
		{"no privacy consent", func(k *KYC) { k.PrivacyConsent = false }, "privacy_consent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := validKYC()
			tt.mod(&k)
			err := k.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Fatalf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}
