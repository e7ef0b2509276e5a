package entities

import "github.com/shippinglabs/cdek/pkg/validation"

// Package is one physical parcel on an order with its dimensions and items.
type Package struct {
	Number  string  `json:"number"`
	Comment string  `json:"comment,omitempty"`
	Height  int     `json:"height"`
	Length  int     `json:"length"`
	Weight  int     `json:"weight"`
	Width   int     `json:"width"`
	Items   []*Item `json:"items"`
}

var packageRules = validation.RuleSet{
	{Attribute: "number", Kind: validation.String, Required: true},
	{Attribute: "height", Kind: validation.Int, Required: true},
	{Attribute: "length", Kind: validation.Int, Required: true},
	{Attribute: "weight", Kind: validation.Int, Required: true},
	{Attribute: "width", Kind: validation.Int, Required: true},
	{Attribute: "items", Kind: validation.Array, Required: true},
}

// NewPackage validates a filled package, recursing into each item.
func NewPackage(p Package) (*Package, error) {
	if err := validation.Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Package) ValidationRules() validation.RuleSet { return packageRules }

func (p *Package) Attributes() map[string]any {
	return map[string]any{
		"number": p.Number,
		"height": p.Height,
		"length": p.Length,
		"weight": p.Weight,
		"width":  p.Width,
		"items":  p.Items,
	}
}
