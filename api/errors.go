package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ezforum-cli/auth"
	"ezforum-cli/shared"
)

const (
	toastLoginRequired = "Please log in first"
	toastNetworkError  = "Network error"
)

// handleErrorResponse maps a non-2xx response. 401 always clears the
// session, whatever the body says.
func (t *Transport) handleErrorResponse(r *http.Response, errBody []byte) *shared.ApiError {
	if r.StatusCode == http.StatusUnauthorized {
		return t.handleUnauthorized()
	}

	msg := errorMessage(errBody)
	log.Printf("Request failed with status %d: %s\n", r.StatusCode, msg)

	t.notifier.Toast(msg)

	return &shared.ApiError{
		Type:   shared.ApiErrorTypeRequestFailed,
		Status: r.StatusCode,
		Msg:    msg,
	}
}

func (t *Transport) handleUnauthorized() *shared.ApiError {
	err := auth.ClearSession(t.store)
	if err != nil {
		log.Printf("Error clearing session: %v\n", err)
	}

	t.notifier.Toast(toastLoginRequired)

	notifier, route := t.notifier, t.loginRoute
	time.AfterFunc(t.redirectDelay, func() {
		notifier.NavigateTo(route)
	})

	return &shared.ApiError{
		Type:   shared.ApiErrorTypeUnauthorized,
		Status: http.StatusUnauthorized,
		Msg:    shared.MsgUnauthorized,
	}
}

func (t *Transport) networkError(err error) *shared.ApiError {
	log.Printf("Request failed: %v\n", err)

	t.notifier.Toast(toastNetworkError)

	return &shared.ApiError{
		Type: shared.ApiErrorTypeNetwork,
		Err:  err,
	}
}

// errorMessage pulls the envelope's message field out of an error body.
// Falsy messages (missing, null, "", 0, false) and empty lists give the
// generic message;
// anything else is shown the way a browser would stringify it: numbers
// as-is, lists comma-joined.
func errorMessage(errBody []byte) string {
	var body struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(errBody, &body); err != nil {
		return shared.MsgRequestFailed
	}

	switch msg := body.Message.(type) {
	case nil:
		return shared.MsgRequestFailed
	case string:
		if msg == "" {
			return shared.MsgRequestFailed
		}
	case float64:
		if msg == 0 {
			return shared.MsgRequestFailed
		}
	case bool:
		if !msg {
			return shared.MsgRequestFailed
		}
	case []any:
		if len(msg) == 0 {
			return shared.MsgRequestFailed
		}
	}
	return displayValue(body.Message)
}

func displayValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = displayValue(item)
		}
		return strings.Join(parts, ",")
	default:
		// objects: compact json reads better than a placeholder
		b, err := json.Marshal(v)
		if err != nil {
			return shared.MsgRequestFailed
		}
		return string(b)
	}
}
