package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"RealEstateAPI/database"
	"RealEstateAPI/models"
	"RealEstateAPI/utils"

	"github.com/labstack/echo/v4"
)

const propertyCachePrefix = "properties"

type PropertyController struct {
	store     DocumentStore
	validator *utils.Validator
	cache     *utils.Cache
	logger    *slog.Logger
}

// NewPropertyController wires the listing endpoints. cache may be nil.
func NewPropertyController(store DocumentStore, validator *utils.Validator, cache *utils.Cache, logger *slog.Logger) *PropertyController {
	return &PropertyController{
		store:     store,
		validator: validator,
		cache:     cache,
		logger:    logger.With("component", "properties"),
	}
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return respondError(c, pc.logger, err)
	}

	var property models.Property
	if err := pc.validator.Validate(models.PropertySchema, body, &property); err != nil {
		return respondError(c, pc.logger, err)
	}

	ctx := c.Request().Context()
	id, err := pc.store.CreateDocument(ctx, models.PropertyCollection, property)
	if err != nil {
		return respondError(c, pc.logger, err)
	}

	if pc.cache != nil {
		if err := pc.cache.BumpGeneration(ctx, propertyCachePrefix); err != nil {
			pc.logger.Warn("Failed to invalidate listing cache", "error", err)
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id})
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	filter, err := parsePropertyFilter(c)
	if err != nil {
		return respondError(c, pc.logger, err)
	}

	ctx := c.Request().Context()
	cacheKey := pc.listCacheKey(ctx, c.QueryParam("city"), filter)

	if cacheKey != "" {
		var cached []map[string]interface{}
		hit, err := pc.cache.GetCached(ctx, cacheKey, &cached)
		if err != nil {
			pc.logger.Warn("Listing cache read failed", "error", err)
		} else if hit {
			return c.JSON(http.StatusOK, cached)
		}
	}

	docs, err := pc.store.GetDocuments(ctx, models.PropertyCollection, filter.Document(), filter.Limit)
	if err != nil {
		return respondError(c, pc.logger, err)
	}
	if docs == nil {
		docs = []database.Document{}
	}

	if cacheKey != "" {
		if err := pc.cache.SetCached(ctx, cacheKey, docs); err != nil {
			pc.logger.Warn("Listing cache write failed", "error", err)
		}
	}
	return c.JSON(http.StatusOK, docs)
}

// listCacheKey is read before the store query so a create landing during the
// query moves later readers to a fresh key. Empty means skip the cache.
func (pc *PropertyController) listCacheKey(ctx context.Context, city string, filter models.PropertyFilter) string {
	if pc.cache == nil {
		return ""
	}
	gen, err := pc.cache.Generation(ctx, propertyCachePrefix)
	if err != nil {
		pc.logger.Warn("Listing cache generation read failed", "error", err)
		return ""
	}
	return utils.GenerateQueryCacheKey(propertyCachePrefix, map[string]string{
		"generation": strconv.FormatInt(gen, 10),
		"city":       city,
		"featured":   formatOptionalBool(filter.Featured),
		"limit":      strconv.FormatInt(filter.Limit, 10),
	})
}

// parsePropertyFilter reads city, featured and limit, reporting every
// malformed parameter at once.
func parsePropertyFilter(c echo.Context) (models.PropertyFilter, error) {
	filter := models.PropertyFilter{Limit: models.DefaultPropertyLimit}
	var fields []utils.FieldError

	if city := c.QueryParam("city"); city != "" {
		filter.City = &city
	}

	if raw := c.QueryParam("featured"); raw != "" {
		featured, ok := parseQueryBool(raw)
		if !ok {
			fields = append(fields, utils.FieldError{Field: "featured", Reason: utils.ReasonWrongType, Message: "featured must be a boolean"})
		} else {
			filter.Featured = &featured
		}
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		switch {
		case err != nil:
			fields = append(fields, utils.FieldError{Field: "limit", Reason: utils.ReasonWrongType, Message: "limit must be an integer"})
		case limit < 0:
			// MongoDB treats a negative limit as its absolute value.
			filter.Limit = -limit
		default:
			filter.Limit = limit
		}
	}

	if len(fields) > 0 {
		return filter, &utils.ValidationError{Fields: fields}
	}
	return filter, nil
}

// parseQueryBool accepts the usual spellings of a boolean, ignoring case.
func parseQueryBool(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, true
	case "0", "f", "false", "n", "no", "off":
		return false, true
	}
	return false, false
}

func formatOptionalBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}
