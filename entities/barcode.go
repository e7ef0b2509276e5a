package entities

import "github.com/shippinglabs/cdek/pkg/validation"

// Print formats accepted for barcode documents.
const (
	FormatA4 = "A4"
	FormatA5 = "A5"
	FormatA6 = "A6"
)

// Barcode is the payload for requesting barcode documents for one or more
// orders. Orders are referenced either by order UUID or by carrier number.
type Barcode struct {
	Orders    []map[string]any `json:"orders"`
	CopyCount int              `json:"copy_count,omitempty"`
	Type      string           `json:"type,omitempty"`
	Format    string           `json:"format,omitempty"`
	Lang      string           `json:"lang,omitempty"`
}

var barcodeRules = validation.RuleSet{
	{Attribute: "orders", Kind: validation.Array, Required: true, Items: &validation.Rule{
		Kind:     validation.Hash,
		Required: true,
	}},
	{Attribute: "copy_count", Kind: validation.Int},
	{Attribute: "type", Kind: validation.String},
	{Attribute: "format", Kind: validation.String, OneOf: []string{FormatA4, FormatA5, FormatA6}},
	{Attribute: "lang", Kind: validation.String},
}

// NewBarcode validates a filled barcode request, defaulting the copy count
// to 1 and the format to A4.
func NewBarcode(b Barcode) (*Barcode, error) {
	if b.CopyCount == 0 {
		b.CopyCount = 1
	}
	if b.Format == "" {
		b.Format = FormatA4
	}
	if err := validation.Validate(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// BarcodeForOrders builds a barcode request referencing orders by UUID.
func BarcodeForOrders(orderUUIDs ...string) (*Barcode, error) {
	orders := make([]map[string]any, 0, len(orderUUIDs))
	for _, id := range orderUUIDs {
		orders = append(orders, map[string]any{"order_uuid": id})
	}
	return NewBarcode(Barcode{Orders: orders})
}

// BarcodeForNumbers builds a barcode request referencing orders by carrier
// number.
func BarcodeForNumbers(cdekNumbers ...string) (*Barcode, error) {
	orders := make([]map[string]any, 0, len(cdekNumbers))
	for _, n := range cdekNumbers {
		orders = append(orders, map[string]any{"cdek_number": n})
	}
	return NewBarcode(Barcode{Orders: orders})
}

func (b *Barcode) ValidationRules() validation.RuleSet { return barcodeRules }

func (b *Barcode) Attributes() map[string]any {
	return map[string]any{
		"orders":     b.Orders,
		"copy_count": b.CopyCount,
		"type":       b.Type,
		"format":     b.Format,
		"lang":       b.Lang,
	}
}
