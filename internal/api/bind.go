package api

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/thenoetrevino/kanban/internal/models"
)

// decodeBody validates the request body against the named schema and then
// decodes it into dst.
func (h *handlers) decodeBody(c echo.Context, schemaName string, dst any) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		// The body limit reports an oversized stream as a 413.
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return models.NewValidationError("body", "could not read request body")
	}

	var doc any
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return models.NewValidationError("body", "must be a JSON object")
	}

	if err := h.schemas[schemaName].Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			field, msg := firstSchemaError(ve)
			return models.NewValidationError(field, "%s", msg)
		}
		return models.NewValidationError("body", "%v", err)
	}

	dec := sonic.ConfigStd.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(dst); err != nil {
		return models.NewValidationError("body", "%v", err)
	}
	return nil
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, models.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}
