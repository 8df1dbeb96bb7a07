// Package response writes the JSON envelope shared by every endpoint:
//
//	{"status":200,"message":"...","data":...,"errors":{...}}
package response

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/ordermanager/pkg/apperr"
	"github.com/shashiranjanraj/ordermanager/pkg/orm"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Page is the data of a paginated list.
type Page struct {
	Items      interface{}    `json:"items"`
	Pagination orm.Pagination `json:"pagination"`
}

// Write sends body with status.
func Write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 JSON response with data.
func Success(w http.ResponseWriter, data interface{}) {
	Write(w, http.StatusOK, Envelope{Status: http.StatusOK, Data: data})
}

// Created sends a 201 JSON response with data.
func Created(w http.ResponseWriter, data interface{}) {
	Write(w, http.StatusCreated, Envelope{Status: http.StatusCreated, Data: data})
}

// NoContent sends a bare 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error sends a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	Write(w, status, Envelope{Status: status, Message: message})
}

// ValidationError sends a 400 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	Write(w, http.StatusBadRequest, Envelope{
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// Paginated sends a 200 response with data and pagination metadata.
func Paginated(w http.ResponseWriter, data interface{}, pagination orm.Pagination) {
	Success(w, Page{Items: data, Pagination: pagination})
}

// Fail writes err using its apperr status. Unknown errors become a generic
// 500 without detail.
func Fail(w http.ResponseWriter, err error) {
	e := apperr.From(err)
	body := Envelope{Status: e.StatusCode, Message: e.Message}
	if len(e.Fields) > 0 {
		body.Errors = e.Fields
	}
	Write(w, e.StatusCode, body)
}

func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(w http.ResponseWriter) {
	Error(w, http.StatusForbidden, "Forbidden")
}

func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "Not found")
}
