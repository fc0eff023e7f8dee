package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/MriyaDevelopment/pumba-server/storage"
)

// atoiOr converts s to int, falling back to def.
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func isEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// bindBody decodes the JSON body into dst and also returns the raw field map
// for rule validation. An empty body counts as an empty object.
func bindBody(c echo.Context, dst any) (map[string]any, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return map[string]any{}, nil
	}

	raw := map[string]any{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if dst != nil {
		if err := json.Unmarshal(body, dst); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

const pngDataURIPrefix = "data:image/png;base64,"

// uploader stores incoming image fields.
type uploader struct {
	store storage.Store
}

// uploadImage accepts a base64 payload (optionally carrying the PNG data-URI
// marker), writes it under a timestamp-derived name and returns that name.
// A value that does not decode as base64 is an already-stored filename and is
// returned untouched. No deduplication, no content inspection.
func (u uploader) uploadImage(value string) (string, error) {
	payload := strings.TrimPrefix(value, pngDataURIPrefix)
	payload = strings.ReplaceAll(payload, " ", "+")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return value, nil
	}

	name := fmt.Sprintf("%d-%s.png", time.Now().Unix(), uuid.NewString()[:8])
	if err := u.store.Put(name, data); err != nil {
		return "", err
	}
	return name, nil
}
