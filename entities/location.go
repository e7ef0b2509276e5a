package entities

import "github.com/shippinglabs/cdek/pkg/validation"

// Location identifies a shipment origin or destination by carrier city code,
// optionally refined with a city name and street address.
type Location struct {
	Code    int    `json:"code"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
}

var locationRules = validation.RuleSet{
	{Attribute: "code", Kind: validation.Int, Required: true},
	{Attribute: "city", Kind: validation.String},
	{Attribute: "address", Kind: validation.String},
}

// NewLocation builds a validated location. City and address may be empty.
func NewLocation(code int, city, address string) (*Location, error) {
	l := &Location{Code: code, City: city, Address: address}
	if err := validation.Validate(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Location) ValidationRules() validation.RuleSet { return locationRules }

func (l *Location) Attributes() map[string]any {
	return map[string]any{"code": l.Code, "city": l.City, "address": l.Address}
}
