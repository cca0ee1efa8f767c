package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/privyhq/privy/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusTooManyRequests:
		return mapRateLimited(resp.Body())
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServerUnavailable, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// mapRateLimited decodes the structured 429 body so callers can show the
// caller how far over the identity-creation cap they are. A body that does
// not parse still yields a RateLimitedError, just without counts.
func mapRateLimited(body []byte) error {
	var rl models.RateLimitedResponse
	if err := json.Unmarshal(body, &rl); err != nil {
		return &RateLimitedError{}
	}
	return &RateLimitedError{Count: rl.Count, Limit: rl.Limit}
}
