// Package swagger holds the generated OpenAPI document served at /swagger/*.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@placement-microservice.de"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/facilities/search": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Facilities"],
                "summary": "Search facilities",
                "description": "Applies the filter criteria to the whole catalog and returns matching facilities. With an \"umkreis\" block the results are annotated with the distance in km and sorted nearest first.",
                "parameters": [
                    {
                        "description": "Filter criteria; omitted fields are inactive",
                        "name": "criteria",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/facilities/options": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Facilities"],
                "summary": "Get filter options",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Comma-separated region names",
                        "name": "bundeslaender",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/facilities/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Facilities"],
                "summary": "Get facility details",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Facility ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/navigation": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Navigation"],
                "summary": "Get navigation state",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session id; defaults to a shared session",
                        "name": "X-Session-ID",
                        "in": "header"
                    }
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/navigation/select": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Navigation"],
                "summary": "Open a facility detail page",
                "description": "Moves the session to the detail view of the given facility. When the facility does not exist the session stays on the overview and \"found\" is false.",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session id; defaults to a shared session",
                        "name": "X-Session-ID",
                        "in": "header"
                    },
                    {
                        "description": "Facility to open",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/navigation/back": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Navigation"],
                "summary": "Return to the overview",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session id; defaults to a shared session",
                        "name": "X-Session-ID",
                        "in": "header"
                    }
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/inquiries": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Inquiries"],
                "summary": "Submit a facility inquiry",
                "description": "Validates and accepts a contact inquiry. The inquiry is acknowledged and queued for internal notification; no message is sent to the facility.",
                "parameters": [
                    {
                        "description": "Inquiry form; name, email and message are required",
                        "name": "inquiry",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Statistics"],
                "summary": "Get catalog statistics",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Placement Microservice API",
	Description:      "Verzeichnisdienst für Jugendhilfe-Einrichtungen: durchsuchbarer Katalog stationärer Plätze mit Filterung, Umkreissuche und Kontaktanfragen.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
