package common

// AccessTokenHeaderName is the HTTP header used to carry the access token on
// authenticated API requests.
const AccessTokenHeaderName = "Authorization"

// BearerPrefix is the expected scheme prefix on the access token header.
const BearerPrefix = "Bearer "
