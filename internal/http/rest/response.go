package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pooller/pooller-api/util"
	"github.com/pooller/pooller-api/util/tracing"
)

type ServerResponse struct {
	Message    string      `json:"message"`
	Status     string      `json:"status"`
	StatusCode int         `json:"-"`
	Data       interface{} `json:"data,omitempty"`
}

// respondWithError logs the underlying error against the request id and
// returns a response carrying only the user-facing message.
func respondWithError(err error, message string, status string, tc *tracing.Context) *ServerResponse {
	if err != nil {
		requestID := ""
		if tc != nil {
			requestID = tc.RequestID
		}
		log.Printf("[%s] %s: %v", requestID, message, err)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func writeErrorResponse(w http.ResponseWriter, err error, status string, message string) {
	if err != nil {
		log.Println(message, err)
	}

	resp := ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}

	respByte, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		http.Error(w, message, http.StatusInternalServerError)
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

func writeJSONResponse(w http.ResponseWriter, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		log.Println("error writing response body", err)
	}
}
