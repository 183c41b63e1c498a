package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Rostering API",
        "description": "Weekly availability and bulk busy-schedule management",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Availability", "description": "Weekly availability matrix"},
        {"name": "Persons", "description": "Roster listings"},
        {"name": "Imports", "description": "Two-phase bulk busy-schedule import"},
        {"name": "Busy", "description": "Batch busy-set edits"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unavailable"}
                }
            }
        },
        "/api/v1/availability/grid": {
            "get": {
                "tags": ["Availability"],
                "summary": "Availability grid for a week",
                "parameters": [
                    {"name": "weekId", "in": "query", "type": "string", "required": true},
                    {"name": "group", "in": "query", "type": "string", "description": "Comma-separated person ids to intersect"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "A group member is not on the roster"}
                }
            }
        },
        "/api/v1/availability/roster": {
            "get": {
                "tags": ["Availability"],
                "summary": "Roster entries with completion classification",
                "parameters": [
                    {"name": "weekId", "in": "query", "type": "string", "required": true},
                    {"name": "kind", "in": "query", "type": "string", "enum": ["user", "teacher"]},
                    {"name": "incomplete", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/persons": {
            "get": {
                "tags": ["Persons"],
                "summary": "List roster persons",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "kind", "in": "query", "type": "string", "enum": ["user", "teacher"]},
                    {"name": "active", "in": "query", "type": "boolean"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/imports/preview": {
            "post": {
                "tags": ["Imports"],
                "summary": "Parse bulk-import text into a reviewable preview",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ImportPreviewRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload"}
                }
            }
        },
        "/api/v1/imports/{id}/commit": {
            "post": {
                "tags": ["Imports"],
                "summary": "Write the error-free rows of a preview",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Preview not found or expired"},
                    "422": {"description": "No error-free rows to submit"}
                }
            }
        },
        "/api/v1/imports/{id}/report": {
            "get": {
                "tags": ["Imports"],
                "summary": "Download a preview's row report as CSV",
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "CSV content"},
                    "404": {"description": "Preview not found or expired"}
                }
            }
        },
        "/api/v1/busy/batch": {
            "put": {
                "tags": ["Busy"],
                "summary": "Apply an editing session's cell toggles",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BatchUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload"}
                }
            }
        }
    },
    "definitions": {
        "ImportPreviewRequest": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["student", "teacher"]},
                "weekId": {"type": "string"},
                "text": {"type": "string"}
            },
            "required": ["kind", "weekId", "text"]
        },
        "SlotToggle": {
            "type": "object",
            "properties": {
                "key": {"type": "string", "description": "Person email"},
                "slot": {"type": "integer", "minimum": 1, "maximum": 42},
                "busy": {"type": "boolean"}
            },
            "required": ["key", "slot"]
        },
        "BatchUpdateRequest": {
            "type": "object",
            "properties": {
                "weekId": {"type": "string"},
                "toggles": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/SlotToggle"}
                }
            },
            "required": ["weekId", "toggles"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_items": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
