package apierror

// Error type URIs following the urn:easyliving:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:easyliving:error:validation"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:easyliving:error:bad_request"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:easyliving:error:not_found"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:easyliving:error:unauthorized"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:easyliving:error:internal"

	// TypeUpstreamUnavailable indicates a dependency (store or ML service)
	// failed while handling the request (502)
	TypeUpstreamUnavailable = "urn:easyliving:error:upstream_unavailable"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation          = "Validation Error"
	TitleBadRequest          = "Bad Request"
	TitleNotFound            = "Resource Not Found"
	TitleUnauthorized        = "Authentication Required"
	TitleInternal            = "Internal Server Error"
	TitleUpstreamUnavailable = "Upstream Service Unavailable"
)
