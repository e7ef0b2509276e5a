package entities

import "github.com/shippinglabs/cdek/pkg/validation"

// Invoice is the payload for requesting invoice documents for one or more
// orders.
type Invoice struct {
	Orders    []map[string]any `json:"orders"`
	CopyCount int              `json:"copy_count,omitempty"`
	Type      string           `json:"type,omitempty"`
}

var invoiceRules = validation.RuleSet{
	{Attribute: "orders", Kind: validation.Array, Required: true, Items: &validation.Rule{
		Kind:     validation.Hash,
		Required: true,
	}},
	{Attribute: "copy_count", Kind: validation.Int},
	{Attribute: "type", Kind: validation.String},
}

// NewInvoice validates a filled invoice request, defaulting the copy count
// to 1.
func NewInvoice(i Invoice) (*Invoice, error) {
	if i.CopyCount == 0 {
		i.CopyCount = 1
	}
	if err := validation.Validate(&i); err != nil {
		return nil, err
	}
	return &i, nil
}

// InvoiceForOrders builds an invoice request referencing orders by UUID.
func InvoiceForOrders(orderUUIDs ...string) (*Invoice, error) {
	orders := make([]map[string]any, 0, len(orderUUIDs))
	for _, id := range orderUUIDs {
		orders = append(orders, map[string]any{"order_uuid": id})
	}
	return NewInvoice(Invoice{Orders: orders})
}

// InvoiceForNumbers builds an invoice request referencing orders by carrier
// number.
func InvoiceForNumbers(cdekNumbers ...string) (*Invoice, error) {
	orders := make([]map[string]any, 0, len(cdekNumbers))
	for _, n := range cdekNumbers {
		orders = append(orders, map[string]any{"cdek_number": n})
	}
	return NewInvoice(Invoice{Orders: orders})
}

func (i *Invoice) ValidationRules() validation.RuleSet { return invoiceRules }

func (i *Invoice) Attributes() map[string]any {
	return map[string]any{
		"orders":     i.Orders,
		"copy_count": i.CopyCount,
		"type":       i.Type,
	}
}
