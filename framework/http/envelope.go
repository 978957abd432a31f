package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/km-arc/go-locator/framework/container"
)

// Envelope is the body of every response. RequestID echoes the id assigned
// by the router middleware, so a log line can be matched to its response.
type Envelope struct {
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// Writer sends Envelopes for one request.
type Writer struct {
	rw        http.ResponseWriter
	requestID string
}

// NewWriter binds a Writer to rw and the request id stored in req's context.
func NewWriter(rw http.ResponseWriter, req *http.Request) *Writer {
	return &Writer{rw: rw, requestID: middleware.GetReqID(req.Context())}
}

// OK sends 200 with data.
func (w *Writer) OK(data any) {
	w.send(http.StatusOK, Envelope{Data: data})
}

// Fail sends status with a message and no data.
func (w *Writer) Fail(status int, message string) {
	w.send(status, Envelope{Message: message})
}

// Err sends err with the status chosen by StatusOf.
func (w *Writer) Err(err error) {
	w.Fail(StatusOf(err), err.Error())
}

func (w *Writer) send(status int, body Envelope) {
	body.RequestID = w.requestID
	w.rw.Header().Set("Content-Type", "application/json")
	w.rw.WriteHeader(status)
	_ = json.NewEncoder(w.rw).Encode(body)
}

// StatusOf maps a resolution error to an HTTP status: 404 when no scope
// binds the type, 500 for a cyclic singleton or anything else.
func StatusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, container.ErrNotRegistered):
		return http.StatusNotFound
	default:
		// container.ErrCyclicDependency included
		return http.StatusInternalServerError
	}
}
