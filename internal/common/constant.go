package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// requests to protected endpoints.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token value in the Authorization header.
const BearerPrefix = "Bearer "
