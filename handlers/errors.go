package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"RealEstateAPI/utils"

	"github.com/labstack/echo/v4"
)

const maxErrorMessage = 200

// respondError is the single place where internal error kinds meet the
// wire. Validation failures keep their field list; every other kind
// becomes the same generic 500.
func respondError(c echo.Context, logger *slog.Logger, err error) error {
	var verr *utils.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	}

	logger.Error("Request failed", "kind", utils.KindOf(err).String(), "path", c.Path(), "error", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": utils.Truncate(err.Error(), maxErrorMessage),
	})
}
