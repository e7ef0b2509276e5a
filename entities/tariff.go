package entities

import "github.com/shippinglabs/cdek/pkg/validation"

// Tariff is the payload for tariff calculation requests.
type Tariff struct {
	Type         int        `json:"type"`
	Currency     int        `json:"currency"`
	TariffCode   int        `json:"tariff_code"`
	FromLocation *Location  `json:"from_location"`
	ToLocation   *Location  `json:"to_location"`
	Packages     []*Package `json:"packages"`
}

var tariffRules = validation.RuleSet{
	{Attribute: "type", Kind: validation.Int, Required: true},
	{Attribute: "currency", Kind: validation.Int, Required: true},
	{Attribute: "tariff_code", Kind: validation.Int, Required: true},
	{Attribute: "from_location", Kind: validation.Object, Required: true},
	{Attribute: "to_location", Kind: validation.Object, Required: true},
	{Attribute: "packages", Kind: validation.Array, Required: true},
}

// NewTariff validates a filled tariff request. The currency argument accepts
// an ISO-style string code or a carrier integer code and overrides t.Currency.
func NewTariff(t Tariff, currency any) (*Tariff, error) {
	code, err := CurrencyCode(currency)
	if err != nil {
		return nil, err
	}
	t.Currency = code
	if err := validation.Validate(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tariff) ValidationRules() validation.RuleSet { return tariffRules }

func (t *Tariff) Attributes() map[string]any {
	return map[string]any{
		"type":          t.Type,
		"currency":      t.Currency,
		"tariff_code":   t.TariffCode,
		"from_location": t.FromLocation,
		"to_location":   t.ToLocation,
		"packages":      t.Packages,
	}
}
