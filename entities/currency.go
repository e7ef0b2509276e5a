package entities

import "fmt"

// currencyCodes maps ISO-style currency codes to the integer codes the
// carrier expects on the wire. The table is bijective; unknown codes fail
// lookup in both directions.
var currencyCodes = map[string]int{
	"RUB": 1,
	"KZT": 2,
	"USD": 3,
	"EUR": 4,
	"GBP": 5,
	"CNY": 6,
	"BYR": 7,
	"UAH": 8,
	"KGS": 9,
	"AMD": 10,
	"TRY": 11,
	"THB": 12,
	"KRW": 13,
	"AED": 14,
	"UZS": 15,
	"MNT": 16,
	"PLN": 17,
	"AZN": 18,
	"GEL": 19,
	"JPY": 55,
}

// CurrencyCode converts a currency into the carrier's integer code. A known
// integer code passes through unchanged; a known string code is mapped.
// Anything else fails with an invalid currency code error. Pure lookup, no
// side effects.
func CurrencyCode(currency any) (int, error) {
	switch c := currency.(type) {
	case int:
		for _, code := range currencyCodes {
			if code == c {
				return c, nil
			}
		}
	case string:
		if code, ok := currencyCodes[c]; ok {
			return code, nil
		}
	}
	return 0, fmt.Errorf("invalid currency code: %v", currency)
}
