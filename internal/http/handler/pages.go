package handler

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"placefinder/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// PlaceTypes is the fixed category list offered by the search form. Values are
// Google Places types; the form adds a leading "None" sentinel meaning no filter.
var PlaceTypes = []string{
	"restaurant",
	"cafe",
	"bar",
	"bakery",
	"meal_takeaway",
	"shopping_mall",
	"clothing_store",
	"book_store",
	"electronics_store",
	"furniture_store",
	"movie_theater",
	"museum",
	"night_club",
	"park",
	"spa",
	"hospital",
	"pharmacy",
	"school",
	"library",
	"police",
	"airport",
	"bus_station",
	"subway_station",
	"taxi_stand",
	"train_station",
}

const placeTypeNone = "None"

// normalizePlaceType maps the form's "None" sentinel (and absence) to "".
func normalizePlaceType(v string) string {
	if v == placeTypeNone {
		return ""
	}
	return v
}

// formView is the data for the search form page, including validation and
// empty-state messages.
type formView struct {
	ConfigError bool
	Message     string
	MessageKind string // "error" or "info"
	Address     string
	Keyword     string
	PlaceType   string
	PlaceTypes  []string
	Recent      []model.SearchRecord
}

// resultsView is the data for the map-and-table results page.
type resultsView struct {
	Address    string
	Center     model.Coordinates
	Zoom       int
	Venues     []model.Venue
	VenuesJSON template.JS
}

func renderForm(c *fiber.Ctx, status int, v formView) error {
	v.PlaceTypes = PlaceTypes
	return renderPage(c, status, "form.html", v)
}

func renderResults(c *fiber.Ctx, v resultsView) error {
	return renderPage(c, fiber.StatusOK, "results.html", v)
}

func renderPage(c *fiber.Ctx, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error rendering template")
	}
	c.Type("html")
	return c.Status(status).Send(buf.Bytes())
}
