// Package docs registers the OpenAPI description of the HTTP API with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/export": {
            "get": {
                "produces": ["application/json", "text/csv", "application/yaml"],
                "tags": ["exchange"],
                "summary": "Export the inventory",
                "parameters": [
                    {"type": "string", "description": "Export format (csv, json or yaml)", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Unknown format", "schema": {"type": "string"}}
                }
            }
        },
        "/import": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["exchange"],
                "summary": "Import items from a CSV file",
                "parameters": [
                    {"type": "file", "description": "CSV file with item and quantity columns", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "Import mode (add or replace)", "name": "mode", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ImportItemsResult"}},
                    "400": {"description": "Invalid file", "schema": {"type": "string"}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "List all items in insertion order",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ItemsResult"}}
                }
            }
        },
        "/items/{item}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Get the stock of an item",
                "parameters": [
                    {"type": "string", "description": "Item name", "name": "item", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ItemResponse"}}
                }
            }
        },
        "/items/{item}/add": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Add stock to an item",
                "parameters": [
                    {"type": "string", "description": "Item name", "name": "item", "in": "path", "required": true},
                    {"description": "Quantity to add", "name": "quantity", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.QuantityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ItemResponse"}},
                    "400": {"description": "Invalid input", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.ValidationError"}}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/items/{item}/remove": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Remove stock from an item",
                "parameters": [
                    {"type": "string", "description": "Item name", "name": "item", "in": "path", "required": true},
                    {"description": "Quantity to remove", "name": "quantity", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.QuantityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ItemResponse"}},
                    "400": {"description": "Invalid input", "schema": {"type": "string"}},
                    "404": {"description": "Item not found", "schema": {"type": "string"}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/items/{item}/movements": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movements"],
                "summary": "Get item movement logs",
                "parameters": [
                    {"type": "string", "description": "Item name", "name": "item", "in": "path", "required": true},
                    {"type": "string", "description": "Filter movements from this timestamp (RFC3339)", "name": "since", "in": "query"},
                    {"type": "string", "description": "Filter movements until this timestamp (RFC3339)", "name": "until", "in": "query"},
                    {"type": "integer", "description": "Offset for pagination", "name": "offset", "in": "query"},
                    {"type": "integer", "description": "Limit for pagination", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MovementsSearchResult"}},
                    "400": {"description": "Invalid input", "schema": {"type": "string"}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/items/{item}/movements/export": {
            "get": {
                "produces": ["text/csv", "application/json"],
                "tags": ["movements"],
                "summary": "Export item movement logs",
                "parameters": [
                    {"type": "string", "description": "Item name", "name": "item", "in": "path", "required": true},
                    {"type": "string", "description": "Export format (csv or json)", "name": "format", "in": "query", "required": true},
                    {"type": "string", "description": "Filter from timestamp (RFC3339)", "name": "since", "in": "query"},
                    {"type": "string", "description": "Filter until timestamp (RFC3339)", "name": "until", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Invalid input", "schema": {"type": "string"}}
                }
            }
        },
        "/low-stock": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "List items below a threshold",
                "parameters": [
                    {"type": "integer", "description": "Exclusive upper bound", "name": "threshold", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.LowStockResult"}},
                    "400": {"description": "Invalid threshold", "schema": {"type": "string"}}
                }
            }
        },
        "/metrics/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["metrics"],
                "summary": "Dashboard metrics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/repo.Metrics"}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "exchange.RowError": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "line": {"type": "integer"}
            }
        },
        "handlers.ImportItemsResult": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"$ref": "#/definitions/exchange.RowError"}},
                "imported": {"type": "integer"}
            }
        },
        "handlers.ItemResponse": {
            "type": "object",
            "properties": {
                "item": {"type": "string"},
                "low_stock": {"type": "boolean"},
                "quantity": {"type": "integer"}
            }
        },
        "handlers.ItemsResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/handlers.ItemResponse"}},
                "meta": {"$ref": "#/definitions/handlers.Meta"}
            }
        },
        "handlers.LowStockResult": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"type": "string"}},
                "threshold": {"type": "integer"}
            }
        },
        "handlers.Meta": {
            "type": "object",
            "properties": {
                "total_count": {"type": "integer"}
            }
        },
        "handlers.MovementResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "delta": {"type": "integer"},
                "id": {"type": "integer"},
                "item": {"type": "string"}
            }
        },
        "handlers.MovementsSearchResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/handlers.MovementResponse"}},
                "meta": {"$ref": "#/definitions/handlers.Meta"}
            }
        },
        "handlers.QuantityRequest": {
            "type": "object",
            "properties": {
                "quantity": {"type": "integer"}
            }
        },
        "handlers.ValidationError": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "field": {"type": "string"}
            }
        },
        "repo.Metrics": {
            "type": "object",
            "properties": {
                "low_stock_count": {"type": "integer"},
                "low_stock_threshold": {"type": "integer"},
                "most_moved_item": {"$ref": "#/definitions/repo.MostMovedItem"},
                "total_items": {"type": "integer"},
                "total_movements": {"type": "integer"},
                "total_units": {"type": "integer"}
            }
        },
        "repo.MostMovedItem": {
            "type": "object",
            "properties": {
                "movement_count": {"type": "integer"},
                "name": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Inventory Store API",
	Description:      "REST API for an item stock list persisted to a JSON file.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
