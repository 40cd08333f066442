// Package boundary projects results onto plain shapes that can leave the
// process or reach a user: ErrorResponse for API/UI payloads and status
// strings for status lines. Concrete error types do not cross the boundary,
// only messages do.
package boundary
