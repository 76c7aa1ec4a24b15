package response

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/feedbackloop/feedback-service/internal/domain"
)

// DecodeJSON decodes a JSON request body into dst. Any decode failure is a
// validation error, never a 500.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return domain.ErrInvalidJSON(nil)
	}
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		return domain.ErrInvalidJSON(err)
	}
	return nil
}
