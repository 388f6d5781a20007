package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"placefinder/internal/config"
	"placefinder/internal/googlemaps"
	"placefinder/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// db may be nil when the search history store is disabled.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.SearchService, cfg *config.AppConfig) {
	app.Get("/", FormPage(svc, cfg))
	app.Get("/search", SearchPage(svc, cfg))

	app.Get("/api/search", SearchAPI(svc, cfg))
	app.Get("/api/history", HistoryAPI(svc))

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
}

// FormPage renders the search form. When the Google API key is missing the
// page shows a configuration error and the form is withheld.
func FormPage(svc service.SearchService, cfg *config.AppConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v := formView{ConfigError: cfg.GoogleAPIKey == ""}
		// Recent searches are decoration; ignore lookup failures.
		if recent, err := svc.Recent(c.UserContext(), 5); err == nil {
			v.Recent = recent
		}
		return renderForm(c, fiber.StatusOK, v)
	}
}

// SearchPage runs the search pipeline and renders the map and table, or the
// form again with the appropriate message.
func SearchPage(svc service.SearchService, cfg *config.AppConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		address := c.Query("address")
		keyword := c.Query("keyword")
		placeType := normalizePlaceType(c.Query("type"))

		base := formView{Address: address, Keyword: keyword, PlaceType: placeType}

		if cfg.GoogleAPIKey == "" {
			base.ConfigError = true
			return renderForm(c, fiber.StatusServiceUnavailable, base)
		}

		res, err := svc.Search(c.UserContext(), service.Query{
			Address:   address,
			Keyword:   keyword,
			PlaceType: placeType,
		})
		if err != nil {
			base.MessageKind = "error"
			switch {
			case errors.Is(err, service.ErrAddressRequired):
				base.Message = "Please enter an address to search."
				return renderForm(c, fiber.StatusBadRequest, base)
			}
			var apiErr *googlemaps.APIError
			if errors.As(err, &apiErr) {
				base.Message = apiErr.Message
				return renderForm(c, fiber.StatusUnprocessableEntity, base)
			}
			base.Message = "Search failed: " + err.Error()
			return renderForm(c, fiber.StatusBadGateway, base)
		}

		if len(res.Venues) == 0 {
			base.Message = fmt.Sprintf("No venues rated %.1f or higher matched your search.", cfg.Search.MinRating)
			base.MessageKind = "info"
			return renderForm(c, fiber.StatusOK, base)
		}

		venuesJSON, err := json.Marshal(res.Venues)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError)
		}

		return renderResults(c, resultsView{
			Address:    address,
			Center:     res.Center,
			Zoom:       cfg.Search.MapZoom,
			Venues:     res.Venues,
			VenuesJSON: template.JS(venuesJSON),
		})
	}
}

// searchResponse is the JSON body of a successful /api/search call.
type searchResponse struct {
	Center struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"center"`
	Venues []searchVenue `json:"venues"`
	Count  int           `json:"count"`
}

type searchVenue struct {
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// SearchAPI is the JSON counterpart of SearchPage.
//
// @Summary Search venues near an address
// @Param address query string true "Free-text address to geocode"
// @Param keyword query string false "Keyword filter"
// @Param type query string false "Place category filter"
// @Success 200 {object} searchResponse
// @Router /api/search [get]
func SearchAPI(svc service.SearchService, cfg *config.AppConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.GoogleAPIKey == "" {
			return writeError(c, fiber.StatusServiceUnavailable, "NOT_CONFIGURED", "google api key is not configured")
		}

		res, err := svc.Search(c.UserContext(), service.Query{
			Address:   c.Query("address"),
			Keyword:   c.Query("keyword"),
			PlaceType: normalizePlaceType(c.Query("type")),
		})
		if err != nil {
			if errors.Is(err, service.ErrAddressRequired) {
				return writeError(c, fiber.StatusBadRequest, "ADDRESS_REQUIRED", "address is required")
			}
			var apiErr *googlemaps.APIError
			if errors.As(err, &apiErr) {
				code := "GEOCODE_FAILED"
				if apiErr.Op == "nearby_search" {
					code = "PLACES_FAILED"
				}
				return writeError(c, fiber.StatusUnprocessableEntity, code, apiErr.Message)
			}
			return writeError(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "search failed: "+err.Error())
		}

		out := searchResponse{Count: len(res.Venues)}
		out.Center.Lat = res.Center.Lat
		out.Center.Lng = res.Center.Lng
		out.Venues = make([]searchVenue, 0, len(res.Venues))
		for _, v := range res.Venues {
			out.Venues = append(out.Venues, searchVenue(v))
		}
		return c.JSON(out)
	}
}

// HistoryAPI lists recent searches. With the history store disabled it
// returns an empty list rather than an error.
func HistoryAPI(svc service.SearchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limitStr := c.Query("limit", "10")
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}

		recs, err := svc.Recent(c.UserContext(), limit)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"data": recs})
	}
}

// HealthCheck reports readiness. It pings the database only when one is
// configured; without a database there is no hard dependency to check.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
