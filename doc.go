// Package cdek is a client library for the CDEK shipping carrier REST API,
// covering authentication, order lifecycle, tariff calculation, location
// lookup, webhook registration, courier intake, document printing, and
// payment reporting.
//
// The client authenticates once at construction via an OAuth2
// client-credentials exchange and reuses the bearer token for its lifetime.
// Request payloads are typed entities validated at construction time (see
// the entities package). Every remote failure (network error, non-2xx
// status, unparsable body, or an embedded error object in a 2xx response)
// is normalized into a single *APIError shape so calling code has one thing
// to branch on.
//
// Basic Usage:
//
//	cfg, err := cdek.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := cdek.New(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err) // authentication failure
//	}
//
//	order, err := entities.NewOrder(entities.Order{ /* ... */ })
//	if err != nil {
//	    // invalid input: fix and reconstruct
//	}
//	result, err := client.Order.Create(ctx, order)
//	if err != nil {
//	    var apiErr *cdek.APIError
//	    if errors.As(err, &apiErr) {
//	        // the remote call did not succeed
//	    }
//	}
//
// Error Taxonomy:
//
//   - entity construction returns validation errors naming the attribute and
//     the violated rule, before any network I/O
//   - New returns *AuthError when the token exchange fails
//   - UUID-keyed operations return ErrInvalidUUID-wrapped errors for
//     malformed identifiers, before any request is sent
//   - every other remote failure is returned as *APIError; raw transport or
//     parser errors never leak through
//
// The client performs no retries, no token refresh, and no re-authentication
// on 401 responses; expired tokens surface as normalized API errors.
package cdek
