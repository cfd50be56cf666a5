// Package grocy provides a typed client for the Grocy home-inventory ERP
// HTTP API: stock, chores, tasks, batteries, equipment, recipes, meal plans,
// shopping lists, users, and the generic object CRUD surface.
//
// # Architecture
//
// The package is organized in three layers:
//
//   - api.Client: the low-level transport that maps endpoints to typed
//     response models (see the api subpackage)
//   - Domain models: Product, Chore, ChoreLog, Task, Battery, Equipment and
//     friends, assembled from one or more response models
//   - Managers: one facade per domain area (Stock, Chores, Tasks, ...),
//     reachable from Client
//
// # Usage
//
//	client, err := grocy.New("https://grocy.example.com", "your-api-key",
//		api.WithPort(443),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	stock, err := client.Stock().Current(ctx)
//
// # Summary vs. details
//
// List endpoints return lightweight summaries. Types whose cheap shape omits
// related data expose FetchDetails, a second synchronous round trip that
// fills the object in place. Passing Details on a list call runs FetchDetails
// on every item: that is one request for the list plus one per item, issued
// sequentially in list order. The library never parallelizes; callers who
// want concurrent hydration do it themselves.
//
// # Consistency
//
// Every call is a single stateless round trip. A multi-call FetchDetails can
// observe partially updated server state if someone mutates the server
// between calls; the library offers no isolation, retries, or caching.
package grocy
