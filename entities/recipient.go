package entities

import "github.com/shippinglabs/cdek/pkg/validation"

// Recipient is the receiving party on an order.
type Recipient struct {
	Name   string           `json:"name"`
	Phones []map[string]any `json:"phones"`
	Email  string           `json:"email"`
}

var recipientRules = validation.RuleSet{
	{Attribute: "name", Kind: validation.String, Required: true},
	{Attribute: "phones", Kind: validation.Array, Required: true, Items: &validation.Rule{
		Kind:   validation.Hash,
		Schema: phoneSchema,
	}},
	{Attribute: "email", Kind: validation.String, Required: true},
}

var phoneSchema = validation.RuleSet{
	{Attribute: "number", Kind: validation.String, Required: true},
}

// Phones builds the phone list shape the carrier expects from plain numbers.
func Phones(numbers ...string) []map[string]any {
	out := make([]map[string]any, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, map[string]any{"number": n})
	}
	return out
}

// NewRecipient builds a validated recipient.
func NewRecipient(name, email string, phones []map[string]any) (*Recipient, error) {
	r := &Recipient{Name: name, Phones: phones, Email: email}
	if err := validation.Validate(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Recipient) ValidationRules() validation.RuleSet { return recipientRules }

func (r *Recipient) Attributes() map[string]any {
	return map[string]any{"name": r.Name, "phones": r.Phones, "email": r.Email}
}
