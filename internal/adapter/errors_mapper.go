package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/eddieoz/openxrypt/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrUnprocessable, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorMessage extracts the message of a control-channel error envelope,
// falling back to the raw body when it is not one.
func errorMessage(body []byte) string {
	var cr models.ControlResponse
	if err := json.Unmarshal(body, &cr); err == nil && cr.Message != "" {
		return cr.Message
	}
	return strings.TrimSpace(string(body))
}
