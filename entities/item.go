package entities

import "github.com/shippinglabs/cdek/pkg/validation"

// Item is a single ware inside a package.
type Item struct {
	WareKey string   `json:"ware_key"`
	Payment *Payment `json:"payment"`
	Name    string   `json:"name"`
	Cost    int      `json:"cost"`
	Amount  int      `json:"amount"`
	Weight  int      `json:"weight"`
	URL     string   `json:"url,omitempty"`
}

var itemRules = validation.RuleSet{
	{Attribute: "ware_key", Kind: validation.String, Required: true},
	{Attribute: "payment", Kind: validation.Object, Required: true},
	{Attribute: "name", Kind: validation.String, Required: true},
	{Attribute: "cost", Kind: validation.Int, Required: true},
	{Attribute: "amount", Kind: validation.Int, Required: true},
	{Attribute: "weight", Kind: validation.Int, Required: true},
}

// NewItem validates a filled item, recursing into its payment.
func NewItem(i Item) (*Item, error) {
	if err := validation.Validate(&i); err != nil {
		return nil, err
	}
	return &i, nil
}

func (i *Item) ValidationRules() validation.RuleSet { return itemRules }

func (i *Item) Attributes() map[string]any {
	return map[string]any{
		"ware_key": i.WareKey,
		"payment":  i.Payment,
		"name":     i.Name,
		"cost":     i.Cost,
		"amount":   i.Amount,
		"weight":   i.Weight,
		"url":      i.URL,
	}
}
