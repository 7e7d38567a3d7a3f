package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/saylorsolutions/segroute/route"
)

const (
	HeaderContentType = "Content-Type"
)

var (
	ContentTypeJSON = "application/json" // This can be used to customize the content type reported to the client.
)

// JSONHandler produces the value to send as a JSON response for a routed request.
type JSONHandler[R any] func(r *http.Request, c *route.Context) (*R, error)

// HandleJSON produces a [HandlerFunc] that serializes the result of handler as JSON.
// Errors from handler are returned unchanged for the [Mux]'s error policy, and serialization errors wrap [ErrServerError].
func HandleJSON[R any](handler JSONHandler[R]) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, c *route.Context) error {
		resp, err := handler(r, c)
		if err != nil {
			return err
		}
		out, err := json.Marshal(resp)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrServerError, err)
		}
		w.Header().Set(HeaderContentType, ContentTypeJSON)
		if _, err := w.Write(out); err != nil {
			// The status has already been sent, so this can only be logged by the policy.
			return fmt.Errorf("%w: %v", ErrServerError, err)
		}
		return nil
	}
}
