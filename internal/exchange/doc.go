// Package exchange provides the HTTP implementation of the
// domain.ExchangeClient interface used by envseal.
//
// The exchange endpoint accepts the client's ephemeral public key and
// answers with the server's public key and a session identifier. Two
// response shapes exist in the wild: the fields at the top level, or the
// same fields nested under "data" (older deployments). Both are accepted
// and normalized into a single domain.ExchangeResult.
//
// Requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as *StatusError carrying the
// status code and response body text to aid diagnostics. The client never
// retries on its own; IsRetryable helps callers decide whether to.
package exchange
