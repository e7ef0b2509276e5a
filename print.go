package cdek

import (
	"context"
	"net/http"

	"github.com/shippinglabs/cdek/entities"
)

// PrintService groups the barcode and invoice document endpoints.
type PrintService struct {
	client *Client
}

// CreateBarcode requests barcode document generation for one or more orders.
func (s *PrintService) CreateBarcode(ctx context.Context, barcode *entities.Barcode) (any, error) {
	return s.client.request(ctx, http.MethodPost, "print/barcodes", barcode, nil)
}

// Barcode fetches barcode document metadata by its UUID.
func (s *PrintService) Barcode(ctx context.Context, barcodeUUID string) (any, error) {
	if err := validateUUID(barcodeUUID); err != nil {
		return nil, err
	}
	return s.client.request(ctx, http.MethodGet, "print/barcodes/"+barcodeUUID, nil, nil)
}

// BarcodePDF fetches the rendered barcode document by its UUID.
func (s *PrintService) BarcodePDF(ctx context.Context, barcodeUUID string) ([]byte, error) {
	if err := validateUUID(barcodeUUID); err != nil {
		return nil, err
	}
	return s.client.requestRaw(ctx, http.MethodGet, "print/barcodes/"+barcodeUUID+".pdf")
}

// CreateInvoice requests invoice document generation for one or more orders.
func (s *PrintService) CreateInvoice(ctx context.Context, invoice *entities.Invoice) (any, error) {
	return s.client.request(ctx, http.MethodPost, "print/orders", invoice, nil)
}

// Invoice fetches invoice document metadata by its UUID.
func (s *PrintService) Invoice(ctx context.Context, invoiceUUID string) (any, error) {
	if err := validateUUID(invoiceUUID); err != nil {
		return nil, err
	}
	return s.client.request(ctx, http.MethodGet, "print/orders/"+invoiceUUID, nil, nil)
}

// InvoicePDF fetches the rendered invoice document by its UUID.
func (s *PrintService) InvoicePDF(ctx context.Context, invoiceUUID string) ([]byte, error) {
	if err := validateUUID(invoiceUUID); err != nil {
		return nil, err
	}
	return s.client.requestRaw(ctx, http.MethodGet, "print/orders/"+invoiceUUID+".pdf")
}
