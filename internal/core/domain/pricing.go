package domain

// PricingType selects the fulfillment model of a campaign. Each variant
// carries its own administrator-configurable fixed fee so different
// fulfillment models can be priced independently.
type PricingType string

const (
	PricingPointsOnly         PricingType = "points_only"
	PricingPurchaseWithPoints PricingType = "purchase_with_points"
	PricingProductOnly        PricingType = "product_only"
	PricingProductWithPoints  PricingType = "product_with_points"
	PricingVoucherOnly        PricingType = "voucher_only"
	PricingVoucherWithPoints  PricingType = "voucher_with_points"
)

// PricingTypes lists every known pricing type, in settings-key order.
var PricingTypes = []PricingType{
	PricingPointsOnly,
	PricingPurchaseWithPoints,
	PricingProductOnly,
	PricingProductWithPoints,
	PricingVoucherOnly,
	PricingVoucherWithPoints,
}

// ValidPricingType reports whether pt is a known pricing type.
func ValidPricingType(pt PricingType) bool {
	for _, known := range PricingTypes {
		if pt == known {
			return true
		}
	}
	return false
}

// Fallbacks used when the operator has not configured a fee setting.
const (
	defaultFixedFee         int64 = 10000
	defaultPointsFeeRatePct int64 = 30
)

// FeeConfig carries the platform-wide fee settings, adjustable by an
// administrator at runtime and loaded from the settings store per request.
// Unset entries fall back to the platform defaults.
type FeeConfig struct {
	// FixedFees maps each pricing type to its flat per-campaign charge.
	FixedFees map[PricingType]int64
	// PointsFeeRatePct is the percentage of a campaign's sphere points
	// charged as the points fee, applied only when points are rewarded.
	PointsFeeRatePct int64
}

// FixedFee returns the configured flat fee for the pricing type, or the
// platform default when unset.
func (f FeeConfig) FixedFee(pt PricingType) int64 {
	if fee, ok := f.FixedFees[pt]; ok && fee > 0 {
		return fee
	}
	return defaultFixedFee
}

// PointsFeeRatePercent returns the configured points fee percentage, or
// the platform default when unset.
func (f FeeConfig) PointsFeeRatePercent() int64 {
	if f.PointsFeeRatePct > 0 {
		return f.PointsFeeRatePct
	}
	return defaultPointsFeeRatePct
}

// FeeBreakdown itemizes the platform charge for one campaign.
type FeeBreakdown struct {
	FixedFee  int64
	PointsFee int64
	TotalFee  int64
}

// CalculatePlatformFee computes the platform charge for a campaign: the
// flat fee for its pricing type plus a percentage of the sphere points,
// floored, when points are rewarded.
func CalculatePlatformFee(cfg FeeConfig, pt PricingType, spherePoints int64) FeeBreakdown {
	fixed := cfg.FixedFee(pt)
	var pointsFee int64
	if spherePoints > 0 {
		pointsFee = spherePoints * cfg.PointsFeeRatePercent() / 100
	}
	return FeeBreakdown{
		FixedFee:  fixed,
		PointsFee: pointsFee,
		TotalFee:  fixed + pointsFee,
	}
}

// InfluencerShare is what a selected influencer receives from a campaign.
type InfluencerShare struct {
	ProductOrVoucher int64
	Points           int64
}

// PricingCalculation is the full charge sheet shown to administrators and
// advertisers when a campaign is created or edited.
type PricingCalculation struct {
	PricingType  PricingType
	ProductValue int64
	SpherePoints int64

	// TotalValue is the value delivered to the influencer side.
	TotalValue int64

	FixedFee    int64
	PointsFee   int64
	PlatformFee int64

	// TotalCost is the amount the advertiser is charged: product value
	// plus points plus the platform fee, for every pricing type. Note
	// product_only and voucher_only still charge the product value even
	// though the advertiser supplies the item directly; this matches the
	// billing behavior in production and is pending clarification.
	TotalCost int64

	InfluencerGets InfluencerShare
}

// CalculateFullPricing computes the complete charge sheet for a campaign.
func CalculateFullPricing(cfg FeeConfig, pt PricingType, productValue, spherePoints int64) PricingCalculation {
	fees := CalculatePlatformFee(cfg, pt, spherePoints)

	var totalValue int64
	switch pt {
	case PricingPointsOnly:
		totalValue = spherePoints
	case PricingPurchaseWithPoints, PricingProductWithPoints, PricingVoucherWithPoints:
		totalValue = productValue + spherePoints
	default:
		totalValue = productValue
	}

	return PricingCalculation{
		PricingType:  pt,
		ProductValue: productValue,
		SpherePoints: spherePoints,
		TotalValue:   totalValue,
		FixedFee:     fees.FixedFee,
		PointsFee:    fees.PointsFee,
		PlatformFee:  fees.TotalFee,
		TotalCost:    productValue + spherePoints + fees.TotalFee,
		InfluencerGets: InfluencerShare{
			ProductOrVoucher: productValue,
			Points:           spherePoints,
		},
	}
}
