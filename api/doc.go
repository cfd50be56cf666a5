// Package api provides the low-level HTTP client for the Grocy REST API.
//
// The package maps every Grocy endpoint to a typed method on Client and every
// server payload shape to a response model that validates required fields,
// normalizes empty strings to absent values, and rejects unknown enum values.
// Most users should use the grocy package instead, which layers domain models
// and managers on top of this client.
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	client, err := api.NewClient("https://demo.grocy.info", "demo_mode",
//		api.WithPort(443),
//		api.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	stock, err := client.Stock(context.Background())
//
// # Error Handling
//
// Two failure classes exist:
//
//   - *RequestError: any HTTP status >= 400, carrying the status code and the
//     raw response body. Never retried.
//   - ErrInvalidResponse: a success response whose body does not satisfy the
//     expected shape (missing required field, unparseable date, unrecognized
//     enum value). Returned wrapped, so test with errors.Is.
//
// Some Grocy endpoints answer a missing resource with 400, others with 404,
// others with an empty success body. The client does not paper over that:
// callers distinguish by inspecting RequestError.StatusCode, and methods
// return a nil result without error only where the server itself sends an
// empty success body.
package api
