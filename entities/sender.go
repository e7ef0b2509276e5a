package entities

import "github.com/shippinglabs/cdek/pkg/validation"

// Sender is the shipping party on an order.
type Sender struct {
	Name   string           `json:"name"`
	Phones []map[string]any `json:"phones"`
	Email  string           `json:"email"`
}

var senderRules = validation.RuleSet{
	{Attribute: "name", Kind: validation.String, Required: true},
	{Attribute: "phones", Kind: validation.Array, Required: true, Items: &validation.Rule{
		Kind:   validation.Hash,
		Schema: phoneSchema,
	}},
	{Attribute: "email", Kind: validation.String, Required: true},
}

// NewSender builds a validated sender.
func NewSender(name, email string, phones []map[string]any) (*Sender, error) {
	s := &Sender{Name: name, Phones: phones, Email: email}
	if err := validation.Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sender) ValidationRules() validation.RuleSet { return senderRules }

func (s *Sender) Attributes() map[string]any {
	return map[string]any{"name": s.Name, "phones": s.Phones, "email": s.Email}
}
