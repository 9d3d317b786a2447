package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// outbound requests to the TerraBond services.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName tags every outbound request with a client-generated
// correlation id.
const RequestIDHeaderName = "X-Request-Id"

// BearerPrefix is prepended to the session token in the Authorization header.
const BearerPrefix = "Bearer "
