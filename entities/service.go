package entities

import "github.com/shippinglabs/cdek/pkg/validation"

// Service is an additional carrier service attached to an order.
type Service struct {
	Code  string `json:"code"`
	Price int    `json:"price"`
	Name  string `json:"name"`
}

var serviceRules = validation.RuleSet{
	{Attribute: "code", Kind: validation.String, Required: true},
	{Attribute: "price", Kind: validation.Int, Required: true},
	{Attribute: "name", Kind: validation.String, Required: true},
}

// NewService builds a validated additional service.
func NewService(code, name string, price int) (*Service, error) {
	s := &Service{Code: code, Price: price, Name: name}
	if err := validation.Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) ValidationRules() validation.RuleSet { return serviceRules }

func (s *Service) Attributes() map[string]any {
	return map[string]any{"code": s.Code, "price": s.Price, "name": s.Name}
}
