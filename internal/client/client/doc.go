// Package client contains client-side building blocks for authcore.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the authcore backend: Register, Login, CurrentUser, Logout, Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the session token via an interceptor, drops the
//     cached token when the server reports expiry, and maps gRPC status
//     codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrSessionExpired,
// ErrEmailTaken, ErrInvalidInput.
//
// Concurrency & Contexts
//
// GRPCClient is intended for a single interactive session and is not safe
// for concurrent use. All operations accept context.Context and honor
// cancellation/timeouts.
package client
