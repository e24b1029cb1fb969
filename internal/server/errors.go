// Package server provides the HTTP REST API for the readability analyzer.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/readability-analyzer/internal/registry"
)

// SessionNotFoundError indicates the requested session does not exist.
type SessionNotFoundError struct {
	ID uuid.UUID
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *registry.BlankZoneError, *registry.UnknownCategoryError:
		return http.StatusBadRequest
	case *registry.PositionError:
		return http.StatusNotFound
	case *SessionNotFoundError:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
