package entities

import "github.com/shippinglabs/cdek/pkg/validation"

// Order is the payload for creating a shipment order. The full entity graph
// (locations, recipient, sender, packages with their items and payments) is
// validated recursively on construction.
type Order struct {
	Type          int        `json:"type"`
	Number        string     `json:"number"`
	TariffCode    int        `json:"tariff_code"`
	Comment       string     `json:"comment,omitempty"`
	ShipmentPoint string     `json:"shipment_point,omitempty"`
	DeliveryPoint string     `json:"delivery_point,omitempty"`
	FromLocation  *Location  `json:"from_location"`
	ToLocation    *Location  `json:"to_location"`
	Recipient     *Recipient `json:"recipient"`
	Sender        *Sender    `json:"sender"`
	Services      []*Service `json:"services,omitempty"`
	Packages      []*Package `json:"packages"`
}

var orderRules = validation.RuleSet{
	{Attribute: "type", Kind: validation.Int, Required: true},
	{Attribute: "number", Kind: validation.String, Required: true},
	{Attribute: "tariff_code", Kind: validation.Int, Required: true},
	{Attribute: "from_location", Kind: validation.Object, Required: true},
	{Attribute: "to_location", Kind: validation.Object, Required: true},
	{Attribute: "recipient", Kind: validation.Object, Required: true},
	{Attribute: "sender", Kind: validation.Object, Required: true},
	{Attribute: "packages", Kind: validation.Array, Required: true},
	{Attribute: "comment", Kind: validation.String},
}

// NewOrder validates a filled order graph and returns it, or the first
// violated constraints naming the failing attributes.
func NewOrder(o Order) (*Order, error) {
	if err := validation.Validate(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (o *Order) ValidationRules() validation.RuleSet { return orderRules }

func (o *Order) Attributes() map[string]any {
	return map[string]any{
		"type":          o.Type,
		"number":        o.Number,
		"tariff_code":   o.TariffCode,
		"comment":       o.Comment,
		"from_location": o.FromLocation,
		"to_location":   o.ToLocation,
		"recipient":     o.Recipient,
		"sender":        o.Sender,
		"packages":      o.Packages,
	}
}
