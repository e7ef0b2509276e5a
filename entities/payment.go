package entities

import "github.com/shippinglabs/cdek/pkg/validation"

// Payment is the cash-on-delivery value attached to an item.
type Payment struct {
	Value    int `json:"value"`
	Currency int `json:"currency"`
}

var paymentRules = validation.RuleSet{
	{Attribute: "value", Kind: validation.Int, Required: true, Positive: true},
	{Attribute: "currency", Kind: validation.Int, Required: true},
}

// NewPayment builds a validated payment. The currency accepts either an
// ISO-style string code ("RUB") or an already-mapped carrier integer code.
func NewPayment(value int, currency any) (*Payment, error) {
	code, err := CurrencyCode(currency)
	if err != nil {
		return nil, err
	}
	p := &Payment{Value: value, Currency: code}
	if err := validation.Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Payment) ValidationRules() validation.RuleSet { return paymentRules }

func (p *Payment) Attributes() map[string]any {
	return map[string]any{"value": p.Value, "currency": p.Currency}
}
