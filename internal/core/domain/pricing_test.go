package domain

import "testing"

func feeConfig() FeeConfig {
	return FeeConfig{
		FixedFees: map[PricingType]int64{
			PricingPointsOnly:        10000,
			PricingProductWithPoints: 10000,
			PricingProductOnly:       20000,
		},
		PointsFeeRatePct: 30,
	}
}

func TestCalculatePlatformFee(t *testing.T) {
	tests := []struct {
		name         string
		pt           PricingType
		spherePoints int64
		wantFixed    int64
		wantPoints   int64
	}{
		{"points fee is a floored percentage", PricingProductWithPoints, 10000, 10000, 3000},
		{"points fee floors odd amounts", PricingPointsOnly, 99, 10000, 29},
		{"zero points charge no points fee", PricingProductOnly, 0, 20000, 0},
		{"unconfigured type falls back to the default fixed fee", PricingVoucherOnly, 0, 10000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePlatformFee(feeConfig(), tt.pt, tt.spherePoints)
			if got.FixedFee != tt.wantFixed {
				t.Fatalf("FixedFee = %d, want %d", got.FixedFee, tt.wantFixed)
			}
			if got.PointsFee != tt.wantPoints {
				t.Fatalf("PointsFee = %d, want %d", got.PointsFee, tt.wantPoints)
			}
			if got.TotalFee != tt.wantFixed+tt.wantPoints {
				t.Fatalf("TotalFee = %d, want %d", got.TotalFee, tt.wantFixed+tt.wantPoints)
			}
		})
	}
}

func TestCalculateFullPricing(t *testing.T) {
	calc := CalculateFullPricing(feeConfig(), PricingProductWithPoints, 50000, 10000)

	if calc.FixedFee != 10000 {
		t.Fatalf("FixedFee = %d, want 10000", calc.FixedFee)
	}
	if calc.PointsFee != 3000 {
		t.Fatalf("PointsFee = %d, want 3000", calc.PointsFee)
	}
	if calc.PlatformFee != 13000 {
		t.Fatalf("PlatformFee = %d, want 13000", calc.PlatformFee)
	}
	if calc.TotalValue != 60000 {
		t.Fatalf("TotalValue = %d, want 60000", calc.TotalValue)
	}
	if calc.TotalCost != 73000 {
		t.Fatalf("TotalCost = %d, want 73000", calc.TotalCost)
	}
	if calc.InfluencerGets.ProductOrVoucher != 50000 || calc.InfluencerGets.Points != 10000 {
		t.Fatalf("InfluencerGets = %+v", calc.InfluencerGets)
	}
}

func TestCalculateFullPricingTotalValue(t *testing.T) {
	tests := []struct {
		pt   PricingType
		want int64
	}{
		{PricingPointsOnly, 10000},
		{PricingPurchaseWithPoints, 60000},
		{PricingProductOnly, 50000},
		{PricingProductWithPoints, 60000},
		{PricingVoucherOnly, 50000},
		{PricingVoucherWithPoints, 60000},
	}
	for _, tt := range tests {
		t.Run(string(tt.pt), func(t *testing.T) {
			calc := CalculateFullPricing(feeConfig(), tt.pt, 50000, 10000)
			if calc.TotalValue != tt.want {
				t.Fatalf("TotalValue = %d, want %d", calc.TotalValue, tt.want)
			}
			// The advertiser charge includes product, points and fee for
			// every pricing type.
			wantCost := 50000 + 10000 + calc.PlatformFee
			if calc.TotalCost != wantCost {
				t.Fatalf("TotalCost = %d, want %d", calc.TotalCost, wantCost)
			}
		})
	}
}

func TestFeeConfigDefaults(t *testing.T) {
	var cfg FeeConfig

	if got := cfg.FixedFee(PricingPointsOnly); got != 10000 {
		t.Fatalf("default FixedFee = %d, want 10000", got)
	}
	if got := cfg.PointsFeeRatePercent(); got != 30 {
		t.Fatalf("default PointsFeeRatePercent = %d, want 30", got)
	}

	calc := CalculateFullPricing(cfg, PricingPointsOnly, 0, 20000)
	if calc.PlatformFee != 16000 {
		t.Fatalf("PlatformFee with defaults = %d, want 16000", calc.PlatformFee)
	}
}
