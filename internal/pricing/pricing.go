package pricing

// Defaults applied when a rate is absent from the settings store. An
// explicitly configured zero is a valid rate and is never replaced.
const (
	DefaultTaxRate        = 0.13
	DefaultServiceFeeRate = 0.04
)

// RateConfig holds the configured surcharge rates as fractions of the base
// fare. Nil means "not configured, use the default".
type RateConfig struct {
	TaxRate        *float64 `json:"tax_rate"`
	ServiceFeeRate *float64 `json:"service_fee_rate"`
}

func (c RateConfig) EffectiveTaxRate() float64 {
	if c.TaxRate == nil {
		return DefaultTaxRate
	}
	return *c.TaxRate
}

func (c RateConfig) EffectiveServiceFeeRate() float64 {
	if c.ServiceFeeRate == nil {
		return DefaultServiceFeeRate
	}
	return *c.ServiceFeeRate
}

type Breakdown struct {
	BasePrice        float64 `json:"base_price"`
	TaxAmount        float64 `json:"tax_amount"`
	ServiceFeeAmount float64 `json:"service_fee_amount"`
	TotalPrice       float64 `json:"total_price"`
}

// ComputeTotal derives the displayed price from a base fare and the configured
// rates. A negative base fare is clamped to 0. Amounts keep full float
// precision; rounding to two decimals is left to presentation.
func ComputeTotal(basePrice float64, rates RateConfig) Breakdown {
	if basePrice < 0 {
		basePrice = 0
	}
	tax := basePrice * rates.EffectiveTaxRate()
	fee := basePrice * rates.EffectiveServiceFeeRate()
	return Breakdown{
		BasePrice:        basePrice,
		TaxAmount:        tax,
		ServiceFeeAmount: fee,
		TotalPrice:       basePrice + tax + fee,
	}
}
