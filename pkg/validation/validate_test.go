package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shippinglabs/cdek/pkg/validation"
)

type contact struct {
	Name   string
	Phones []map[string]any
}

var contactRules = validation.RuleSet{
	{Attribute: "name", Kind: validation.String, Required: true},
	{Attribute: "phones", Kind: validation.Array, Required: true, Items: &validation.Rule{
		Kind: validation.Hash,
		Schema: validation.RuleSet{
			{Attribute: "number", Kind: validation.String, Required: true},
		},
	}},
}

func (c *contact) ValidationRules() validation.RuleSet { return contactRules }

func (c *contact) Attributes() map[string]any {
	return map[string]any{"name": c.Name, "phones": c.Phones}
}

type parcel struct {
	Number string
	Weight int
	Owner  *contact
	Tags   []string
}

var parcelRules = validation.RuleSet{
	{Attribute: "number", Kind: validation.String, Required: true},
	{Attribute: "weight", Kind: validation.Int, Required: true, Positive: true},
	{Attribute: "owner", Kind: validation.Object, Required: true},
	{Attribute: "tags", Kind: validation.Array, Items: &validation.Rule{
		Attribute: "tags", Kind: validation.String, Required: true,
	}},
}

func (p *parcel) ValidationRules() validation.RuleSet { return parcelRules }

func (p *parcel) Attributes() map[string]any {
	return map[string]any{
		"number": p.Number,
		"weight": p.Weight,
		"owner":  p.Owner,
		"tags":   p.Tags,
	}
}

type lenientQuery struct {
	Date string
}

func (q *lenientQuery) ValidationRules() validation.RuleSet { return nil }
func (q *lenientQuery) Attributes() map[string]any          { return map[string]any{"date": q.Date} }
func (q *lenientQuery) ValidateCustom() error               { return nil }

func validContact() *contact {
	return &contact{
		Name:   "Jane Doe",
		Phones: []map[string]any{{"number": "+79990001122"}},
	}
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	p := &parcel{
		Number: "PKG-1",
		Weight: 500,
		Owner:  validContact(),
		Tags:   []string{"fragile"},
	}
	assert.NoError(t, validation.Validate(p))
}

func TestValidate_Presence(t *testing.T) {
	t.Parallel()

	p := &parcel{Weight: 500, Owner: validContact()}
	err := validation.Validate(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "number is required")
}

func TestValidate_PositiveInteger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		weight  int
		wantErr string
	}{
		{name: "zero", weight: 0, wantErr: "must be a positive number"},
		{name: "negative", weight: -5, wantErr: "must be a positive number"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &parcel{Number: "PKG-1", Weight: tt.weight, Owner: validContact()}
			err := validation.Validate(p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_TypeChecks(t *testing.T) {
	t.Parallel()

	c := &contact{
		Name:   "Jane Doe",
		Phones: []map[string]any{{"number": 123456}},
	}
	err := validation.Validate(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "number must be a String")
}

func TestValidate_HashFieldMissing(t *testing.T) {
	t.Parallel()

	c := &contact{
		Name:   "Jane Doe",
		Phones: []map[string]any{{"extension": "12"}},
	}
	err := validation.Validate(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "number is required")
}

func TestValidate_NestedObject(t *testing.T) {
	t.Parallel()

	p := &parcel{
		Number: "PKG-1",
		Weight: 500,
		Owner:  &contact{Phones: []map[string]any{{"number": "+79990001122"}}},
	}
	err := validation.Validate(p)
	require.Error(t, err)
	// The nested contact's own violation surfaces, not a generic wrapper.
	assert.Contains(t, err.Error(), "name is required")
}

func TestValidate_NilArrayElement(t *testing.T) {
	t.Parallel()

	// A typed-nil nested value inside a slice still satisfies the Validatable
	// interface; the walker must report it, not dereference it.
	c := validContact()
	err := validation.Validate(&contactWithBadPhones{
		contact: c,
		phones:  []*contact{nil},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phones is required")
}

func TestValidate_ScalarArrayItems(t *testing.T) {
	t.Parallel()

	p := &parcel{
		Number: "PKG-1",
		Weight: 500,
		Owner:  validContact(),
		Tags:   []string{"ok"},
	}
	require.NoError(t, validation.Validate(p))

	bad := &parcel{
		Number: "PKG-1",
		Weight: 500,
		Owner:  validContact(),
	}
	bad.Tags = nil // optional array may be absent
	require.NoError(t, validation.Validate(bad))

	blank := &parcel{
		Number: "PKG-1",
		Weight: 500,
		Owner:  validContact(),
		Tags:   []string{""},
	}
	err := validation.Validate(blank)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tags is required")
}

func TestValidate_ArrayKindMismatch(t *testing.T) {
	t.Parallel()

	c := validContact()
	err := validation.Validate(&contactWithBadPhones{contact: c, phones: "not-an-array"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phones must be an Array")
}

// contactWithBadPhones overrides the phones attribute to simulate a
// wrongly-shaped value reaching the walker.
type contactWithBadPhones struct {
	*contact
	phones any
}

func (c *contactWithBadPhones) Attributes() map[string]any {
	attrs := c.contact.Attributes()
	attrs["phones"] = c.phones
	return attrs
}

func TestValidate_DeclarationOrder(t *testing.T) {
	t.Parallel()

	p := &parcel{Weight: -1}
	err := validation.Validate(p)
	require.Error(t, err)

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	first, ok := errs.First()
	require.True(t, ok)
	assert.Equal(t, "number", first.Field)
	assert.True(t, errs.Has("weight"))
	assert.True(t, errs.Has("owner"))
}

func TestValidate_CustomValidator(t *testing.T) {
	t.Parallel()

	// The custom hook runs instead of the rule walker, so an all-optional
	// payload passes even with every field blank.
	assert.NoError(t, validation.Validate(&lenientQuery{}))
}

func TestValidate_OneOf(t *testing.T) {
	t.Parallel()

	r := validation.Rule{Attribute: "format", Kind: validation.String, OneOf: []string{"A4", "A5", "A6"}}

	err := validation.Validate(&singleAttr{rule: r, value: "A3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")

	assert.NoError(t, validation.Validate(&singleAttr{rule: r, value: "A5"}))
}

type singleAttr struct {
	rule  validation.Rule
	value any
}

func (s *singleAttr) ValidationRules() validation.RuleSet { return validation.RuleSet{s.rule} }
func (s *singleAttr) Attributes() map[string]any {
	return map[string]any{s.rule.Attribute: s.value}
}
