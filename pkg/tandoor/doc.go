// Package tandoor is a minimal client for the Tandoor recipe manager REST API.
//
// The client fetches single recipes and exchanges user credentials for an API
// token. Requests are paced with a token bucket limiter and tagged with a
// unique X-Request-Id header. Failures are returned as structured errors:
//
//   - UNAUTHORIZED: rejected credentials, HTTP 401 or 403
//   - NOT_FOUND: HTTP 404
//   - SERVICE_UNAVAILABLE: network failures and any other HTTP status
//   - MALFORMED_DATA: a response body that does not decode into the model
//
// Usage:
//
//	c, err := tandoor.NewClient("https://recipes.example.com",
//	    tandoor.WithToken(os.Getenv("TANDOOR_TOKEN")))
//	if err != nil {
//	    return err
//	}
//	r, err := c.GetRecipe(ctx, 12)
//
// Requests are never retried.
package tandoor
