package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"RealEstateAPI/models"
	"RealEstateAPI/utils"

	"github.com/labstack/echo/v4"
)

type InquiryController struct {
	store     DocumentStore
	validator *utils.Validator
	logger    *slog.Logger
}

func NewInquiryController(store DocumentStore, validator *utils.Validator, logger *slog.Logger) *InquiryController {
	return &InquiryController{
		store:     store,
		validator: validator,
		logger:    logger.With("component", "inquiries"),
	}
}

// CreateInquiry stores a lead. The property reference is not looked up.
func (ic *InquiryController) CreateInquiry(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return respondError(c, ic.logger, err)
	}

	var inquiry models.Inquiry
	if err := ic.validator.Validate(models.InquirySchema, body, &inquiry); err != nil {
		return respondError(c, ic.logger, err)
	}

	id, err := ic.store.CreateDocument(c.Request().Context(), models.InquiryCollection, inquiry)
	if err != nil {
		return respondError(c, ic.logger, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id})
}
