package api

import (
	"github.com/ksemonis/advisor/pkg/domain"
)

// Handler provides HTTP handlers for the catalog API
type Handler struct {
	session domain.CatalogSession
}

// NewHandler creates a new API handler with dependency injection
func NewHandler(session domain.CatalogSession) *Handler {
	return &Handler{
		session: session,
	}
}
