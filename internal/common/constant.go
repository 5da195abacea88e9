package common

// AuthorizationHeaderName is the gRPC metadata key that carries the bearer
// credential on calls requiring authentication.
const AuthorizationHeaderName = "authorization"

// BearerPrefix precedes the token value in the authorization metadata entry.
const BearerPrefix = "Bearer "
