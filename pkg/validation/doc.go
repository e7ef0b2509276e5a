// Package validation provides a declarative, schema-driven validation engine
// for typed API payloads with nested objects, hashes, and collections.
//
// Every payload type declares a fixed, ordered RuleSet, one Rule per
// attribute, built once at package init and never mutated at runtime. The
// engine walks a value's attributes against its RuleSet, recursing into
// nested Validatable values, hash-shaped maps, and array elements.
//
// # Core building blocks
//
//   - Rule      – per-attribute constraint: kind, presence, positivity,
//     element rule for arrays, field schema for hashes
//   - RuleSet   – ordered rule table owned by one payload type
//   - FieldError / Errors – field-level failures implementing the error
//     interface; failures accumulate in declaration order
//
// # Usage
//
//	type Payment struct {
//	    Value    int `json:"value"`
//	    Currency int `json:"currency"`
//	}
//
//	var paymentRules = validation.RuleSet{
//	    {Attribute: "value", Kind: validation.Int, Required: true, Positive: true},
//	    {Attribute: "currency", Kind: validation.Int, Required: true},
//	}
//
//	func (p *Payment) ValidationRules() validation.RuleSet { return paymentRules }
//	func (p *Payment) Attributes() map[string]any {
//	    return map[string]any{"value": p.Value, "currency": p.Currency}
//	}
//
//	if err := validation.Validate(p); err != nil {
//	    // err names the first failing attribute and the violated constraint
//	}
//
// Types that need to deviate from the default walker (for example query
// parameter payloads where every field is optional) implement the
// CustomValidator interface; Validate dispatches to it instead of walking
// the rule table.
//
// # Error handling
//
// Validate returns an Errors slice collecting every violation in rule
// declaration order, so the first declared violation is always element zero.
// Errors implements the error interface and unwraps with errors.As.
package validation
