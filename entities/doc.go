// Package entities defines the typed request and response payloads for the
// CDEK carrier API, together with the currency code mapping the carrier's
// wire format requires.
//
// Every payload is valid by construction: the New* constructors run the
// declarative rule tables from pkg/validation synchronously and return an
// error instead of a usable value when any rule is violated. There is no
// invalid-but-held state; treat constructed values as immutable.
//
//	payment, err := entities.NewPayment(100, "RUB")
//	if err != nil {
//	    // err names the violated attribute, e.g. "value must be a positive number"
//	}
//
// Larger aggregates take a filled struct value and validate the whole graph,
// recursing through nested entities:
//
//	order, err := entities.NewOrder(entities.Order{
//	    Type:       1,
//	    Number:     "ORDER-1",
//	    TariffCode: 136,
//	    FromLocation: from, ToLocation: to,
//	    Recipient: recipient, Sender: sender,
//	    Packages: []*entities.Package{pkg},
//	})
package entities
