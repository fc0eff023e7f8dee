package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MriyaDevelopment/pumba-server/storage"
)

type StorageHandler struct {
	store storage.Store
}

func NewStorageHandler(store storage.Store) *StorageHandler {
	return &StorageHandler{store: store}
}

// GET /storage/:filename
func (h *StorageHandler) Get(c echo.Context) error {
	data, err := h.store.Get(c.Param("filename"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return sendFailure(c, "/storage", err)
	}

	return c.Blob(http.StatusOK, http.DetectContentType(data), data)
}
