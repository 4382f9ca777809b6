package medium

import (
	"errors"

	"github.com/mediumkit/medium-go/medium/internal/apierr"
)

// APIError is the error returned for any API response with a non-2xx status.
// Transport-level failures (connection refused, timeout) are not translated;
// they surface as the underlying HTTP client error.
type APIError = apierr.APIError

// IsAPIError reports whether err is an API-level failure, as opposed to a
// transport error.
func IsAPIError(err error) bool {
	var ae *apierr.APIError
	return errors.As(err, &ae)
}
