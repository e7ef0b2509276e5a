package entities

import (
	"errors"
	"net/url"

	"github.com/shippinglabs/cdek/pkg/validation"
)

// Check is the query payload for retrieving cash register receipts. Both
// fields are optional filters; at least one should be set for a meaningful
// query, but the carrier accepts either alone.
type Check struct {
	CdekNumber string `json:"cdek_number,omitempty"`
	Date       string `json:"date,omitempty"`
}

var checkRules = validation.RuleSet{
	{Attribute: "cdek_number", Kind: validation.String},
	{Attribute: "date", Kind: validation.String},
}

// NewCheck builds a receipt query. Empty values are simply omitted.
func NewCheck(cdekNumber, date string) (*Check, error) {
	c := &Check{CdekNumber: cdekNumber, Date: date}
	if err := validation.Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Check) ValidationRules() validation.RuleSet { return checkRules }

func (c *Check) Attributes() map[string]any {
	return map[string]any{"cdek_number": c.CdekNumber, "date": c.Date}
}

// ValidateCustom deviates from the default walker: absent fields skip every
// check, present fields still go through their type rules.
func (c *Check) ValidateCustom() error {
	var errs validation.Errors
	attrs := c.Attributes()
	for _, rule := range checkRules {
		value := attrs[rule.Attribute]
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		single := &singleRulePayload{rule: rule, value: value}
		if err := validation.Validate(single); err != nil {
			var fieldErrs validation.Errors
			if errors.As(err, &fieldErrs) {
				errs = append(errs, fieldErrs...)
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ToQuery renders the set filters as URL query parameters.
func (c *Check) ToQuery() url.Values {
	q := url.Values{}
	if c.CdekNumber != "" {
		q.Set("cdek_number", c.CdekNumber)
	}
	if c.Date != "" {
		q.Set("date", c.Date)
	}
	return q
}

type singleRulePayload struct {
	rule  validation.Rule
	value any
}

func (p *singleRulePayload) ValidationRules() validation.RuleSet {
	return validation.RuleSet{p.rule}
}

func (p *singleRulePayload) Attributes() map[string]any {
	return map[string]any{p.rule.Attribute: p.value}
}
