package validation

// Kind identifies the expected shape of an attribute value.
type Kind int

const (
	// String expects a string value.
	String Kind = iota + 1
	// Int expects a signed or unsigned integer value.
	Int
	// Float expects any numeric value, integer or floating point.
	Float
	// Bool expects a boolean value.
	Bool
	// Array expects an ordered sequence; elements are checked against the
	// rule's Items rule, their own RuleSet, or the Items schema.
	Array
	// Object expects a nested Validatable value validated against its own
	// declared rules.
	Object
	// Hash expects a map[string]any validated field-by-field against the
	// rule's Schema.
	Hash
)

func (k Kind) String() string {
	switch k {
	case String:
		return "String"
	case Int:
		return "Integer"
	case Float:
		return "Number"
	case Bool:
		return "Boolean"
	case Array:
		return "Array"
	case Object:
		return "Object"
	case Hash:
		return "Hash"
	default:
		return "Unknown"
	}
}

// Rule is a single attribute constraint. Rules are value types assembled into
// per-payload RuleSet tables at package init; they are never mutated afterwards.
type Rule struct {
	// Attribute is the wire-format name of the attribute the rule applies to.
	Attribute string
	// Kind is the expected value shape.
	Kind Kind
	// Required rejects absent values (nil, typed nil, or blank strings).
	Required bool
	// Positive additionally rejects integer values <= 0.
	Positive bool
	// OneOf restricts a string value to a fixed set of allowed values.
	OneOf []string
	// Items holds the rule applied to each element of an Array attribute.
	// Elements that are themselves Validatable ignore Items and recurse into
	// their own rules; map-shaped elements are checked against Items.Schema.
	Items *Rule
	// Schema holds the ordered field rules for a Hash attribute.
	Schema RuleSet
}

// RuleSet is the ordered rule table for one payload type. Declaration order
// is significant: violations are reported in this order.
type RuleSet []Rule

// Validatable is implemented by payload types that own a rule table.
type Validatable interface {
	// ValidationRules returns the type's fixed rule table.
	ValidationRules() RuleSet
	// Attributes returns the current attribute values keyed by wire name.
	// Absent optional values must be reported as nil.
	Attributes() map[string]any
}

// CustomValidator overrides the default rule walker for types whose
// validation deviates from the standard contract (for example all-optional
// query payloads that skip absent fields entirely).
type CustomValidator interface {
	ValidateCustom() error
}
