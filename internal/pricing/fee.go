package pricing

// PaymentMethod identifies how a customer pays.
type PaymentMethod string

const (
	// PaymentMethodCard is a credit or debit card payment.
	PaymentMethodCard PaymentMethod = "card"
	// PaymentMethodCheck is a paper check payment.
	PaymentMethodCheck PaymentMethod = "check"
	// PaymentMethodACH is a bank transfer payment.
	PaymentMethodACH PaymentMethod = "ach"
)

// FeeBreakdown is the result of a payment fee calculation.
type FeeBreakdown struct {
	BaseAmount    float64 `json:"baseAmount"`
	ProcessingFee float64 `json:"processingFee"`
	CustomerPays  float64 `json:"customerPays"`
	Total         float64 `json:"total"`
}

// CalculatePaymentFee computes the processing fee breakdown for an amount
// paid with the given method. An empty method defaults to card.
//
// Checks bypass processing fees entirely regardless of the configured rates.
// Card and ACH share the same formula: the fee is a percentage of the amount
// plus a flat fee, and only the configured share of that fee is passed on to
// the customer.
func CalculatePaymentFee(cfg PaymentProcessing, amount float64, method PaymentMethod) FeeBreakdown {
	if method == "" {
		method = PaymentMethodCard
	}

	if method == PaymentMethodCheck {
		return FeeBreakdown{
			BaseAmount:    amount,
			ProcessingFee: 0,
			CustomerPays:  0,
			Total:         amount,
		}
	}

	processingFee := amount*cfg.CardPercentage/100 + cfg.CardFlatFee
	customerPays := processingFee * cfg.PassToCustomerPercentage / 100

	return FeeBreakdown{
		BaseAmount:    amount,
		ProcessingFee: processingFee,
		CustomerPays:  customerPays,
		Total:         amount + customerPays,
	}
}
