package handlers

import (
	"github.com/sol1corejz/invoicedash/internal/actions"
	"github.com/sol1corejz/invoicedash/internal/cache"
	"github.com/sol1corejz/invoicedash/internal/storage"
)

// Handler carries the store and cache into the route handlers so tests can
// swap in mocks.
type Handler struct {
	store   *storage.Store
	cache   *cache.ListCache
	actions *actions.Actions
}

func New(store *storage.Store, listCache *cache.ListCache) *Handler {
	return &Handler{
		store:   store,
		cache:   listCache,
		actions: actions.New(store, listCache),
	}
}
