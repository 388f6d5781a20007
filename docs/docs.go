// Package docs holds the Swagger specification served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/search": {
            "get": {
                "produces": ["application/json"],
                "summary": "Search venues near an address",
                "parameters": [
                    {"type": "string", "name": "address", "in": "query", "required": true, "description": "Free-text address to geocode"},
                    {"type": "string", "name": "keyword", "in": "query", "description": "Keyword filter"},
                    {"type": "string", "name": "type", "in": "query", "description": "Place category filter"}
                ],
                "responses": {
                    "200": {"description": "Qualifying venues and the geocoded center"},
                    "400": {"description": "Address missing"},
                    "422": {"description": "Geocoding or places lookup rejected by the upstream API"},
                    "502": {"description": "Transport failure talking to the upstream API"},
                    "503": {"description": "Google API key not configured"}
                }
            }
        },
        "/api/history": {
            "get": {
                "produces": ["application/json"],
                "summary": "List recent searches",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query", "description": "Maximum entries to return (default 10)"}
                ],
                "responses": {
                    "200": {"description": "Recent search log entries, newest first"},
                    "400": {"description": "Invalid limit"}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Service healthy"},
                    "503": {"description": "Dependency unavailable"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Place Finder API",
	Description:      "Geocodes an address and lists highly rated venues nearby.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
