package entities

import "github.com/shippinglabs/cdek/pkg/validation"

// Agreement is the payload for arranging a delivery time window with the
// recipient of an existing order.
type Agreement struct {
	CdekNumber    string         `json:"cdek_number"`
	Date          string         `json:"date"`
	TimeFrom      string         `json:"time_from"`
	TimeTo        string         `json:"time_to"`
	Comment       string         `json:"comment,omitempty"`
	DeliveryPoint string         `json:"delivery_point,omitempty"`
	ToLocation    map[string]any `json:"to_location,omitempty"`
}

var agreementRules = validation.RuleSet{
	{Attribute: "cdek_number", Kind: validation.String, Required: true},
	{Attribute: "date", Kind: validation.String, Required: true},
	{Attribute: "time_from", Kind: validation.String, Required: true},
	{Attribute: "time_to", Kind: validation.String, Required: true},
	{Attribute: "comment", Kind: validation.String},
	{Attribute: "delivery_point", Kind: validation.String},
	{Attribute: "to_location", Kind: validation.Hash},
}

// NewAgreement validates a filled delivery agreement.
func NewAgreement(a Agreement) (*Agreement, error) {
	if err := validation.Validate(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (a *Agreement) ValidationRules() validation.RuleSet { return agreementRules }

func (a *Agreement) Attributes() map[string]any {
	return map[string]any{
		"cdek_number":    a.CdekNumber,
		"date":           a.Date,
		"time_from":      a.TimeFrom,
		"time_to":        a.TimeTo,
		"comment":        a.Comment,
		"delivery_point": a.DeliveryPoint,
		"to_location":    a.ToLocation,
	}
}
