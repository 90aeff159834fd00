package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the session
// token on requests to protected methods.
const AccessTokenHeaderName = "access_token"

// SessionExpiredMessage is the wire-level status message sent when a session
// token has expired. The client matches on it to tell expiry apart from other
// authentication failures.
const SessionExpiredMessage = "session expired, please log in again"
