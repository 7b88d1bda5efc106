package handlers

import (
	"net/http"

	"RealEstateAPI/utils"

	"github.com/labstack/echo/v4"
)

const maxCollectionsReported = 10

type DiagnosticResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	Cache            string   `json:"cache"`
}

type HealthController struct {
	store           StatusReporter
	cache           *utils.Cache
	databaseURLSet  bool
	databaseNameSet bool
}

// NewHealthController takes only whether the storage settings are present,
// never their values.
func NewHealthController(store StatusReporter, cache *utils.Cache, databaseURLSet, databaseNameSet bool) *HealthController {
	return &HealthController{
		store:           store,
		cache:           cache,
		databaseURLSet:  databaseURLSet,
		databaseNameSet: databaseNameSet,
	}
}

func (hc *HealthController) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Real Estate API is running"})
}

// Diagnostics never fails; storage and cache problems are reported in the
// body.
func (hc *HealthController) Diagnostics(c echo.Context) error {
	ctx := c.Request().Context()
	resp := DiagnosticResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      setLabel(hc.databaseURLSet),
		DatabaseName:     setLabel(hc.databaseNameSet),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
		Cache:            "Disabled",
	}

	if hc.store != nil && hc.store.Available() {
		resp.Database = "✅ Available"
		resp.ConnectionStatus = "Connected"
		names, err := hc.store.ListCollectionNames(ctx)
		if err != nil {
			resp.Database = "⚠️  Connected but Error: " + utils.Truncate(err.Error(), 50)
		} else {
			if len(names) > maxCollectionsReported {
				names = names[:maxCollectionsReported]
			}
			resp.Collections = names
			resp.Database = "✅ Connected & Working"
		}
	} else if hc.databaseURLSet && hc.databaseNameSet {
		resp.Database = "⚠️  Available but not initialized"
	}

	if hc.cache != nil {
		if err := hc.cache.Ping(ctx); err != nil {
			resp.Cache = "⚠️  Error: " + utils.Truncate(err.Error(), 50)
		} else {
			resp.Cache = "✅ Connected"
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func setLabel(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}
