// Package docs serves the OpenAPI description of the REST API.
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
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Create an account", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/api.RegisterRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/api.AuthResponse"}}, "400": {"description": "Bad Request"}, "404": {"description": "Support account not found"}, "409": {"description": "Email in use"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Sign in", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/api.LoginRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.AuthResponse"}}, "403": {"description": "Wrong password"}, "404": {"description": "Unknown email"}}}},
        "/auth/password-reset": {"post": {"tags": ["auth"], "summary": "Email a password reset link", "responses": {"202": {"description": "Accepted"}}}},
        "/auth/password-reset/confirm": {"post": {"tags": ["auth"], "summary": "Set a new password with a reset token", "responses": {"204": {"description": "No Content"}, "410": {"description": "Token expired"}}}},
        "/me": {"get": {"tags": ["account"], "security": [{"Bearer": []}], "summary": "Current account", "responses": {"200": {"description": "OK"}}}},
        "/me/link": {
            "put": {"tags": ["account"], "security": [{"Bearer": []}], "summary": "Link to a support account", "responses": {"204": {"description": "No Content"}}},
            "delete": {"tags": ["account"], "security": [{"Bearer": []}], "summary": "Remove the link", "responses": {"204": {"description": "No Content"}}}
        },
        "/tasks": {
            "get": {"tags": ["tasks"], "security": [{"Bearer": []}], "summary": "List own tasks", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["tasks"], "security": [{"Bearer": []}], "summary": "Create a task", "responses": {"201": {"description": "Created"}}}
        },
        "/tasks/{id}": {
            "patch": {"tags": ["tasks"], "security": [{"Bearer": []}], "summary": "Edit a task", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["tasks"], "security": [{"Bearer": []}], "summary": "Delete a task", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/tasks/{id}/completion": {"put": {"tags": ["tasks"], "security": [{"Bearer": []}], "summary": "Mark a task done or not done", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}},
        "/moods": {
            "get": {"tags": ["moods"], "security": [{"Bearer": []}], "summary": "List own mood entries", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["moods"], "security": [{"Bearer": []}], "summary": "Record a mood", "responses": {"201": {"description": "Created"}}}
        },
        "/partners": {"get": {"tags": ["partners"], "security": [{"Bearer": []}], "summary": "Stats of every linked partner", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/entity.PartnerStats"}}, "403": {"description": "Not a support account"}}}},
        "/partners/ids": {"get": {"tags": ["partners"], "security": [{"Bearer": []}], "summary": "Ids of linked partners", "responses": {"200": {"description": "OK"}}}},
        "/partners/stream": {"get": {"tags": ["partners"], "security": [{"Bearer": []}], "summary": "Live partner stats as server-sent stats events", "produces": ["text/event-stream"], "responses": {"200": {"description": "OK"}}}},
        "/partners/{id}": {"get": {"tags": ["partners"], "security": [{"Bearer": []}], "summary": "Summary of one linked partner", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Not linked"}}}},
        "/widgets/order": {
            "get": {"tags": ["widgets"], "security": [{"Bearer": []}], "summary": "Home screen widget order", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["widgets"], "security": [{"Bearer": []}], "summary": "Save widget order", "responses": {"204": {"description": "No Content"}}}
        },
        "/widgets/photo": {
            "get": {"tags": ["widgets"], "security": [{"Bearer": []}], "summary": "Latest photo with a download url", "responses": {"200": {"description": "OK"}, "404": {"description": "No photo"}}},
            "post": {"tags": ["widgets"], "security": [{"Bearer": []}], "summary": "Create a photo and an upload url", "responses": {"201": {"description": "Created"}}}
        }
    },
    "definitions": {
        "api.RegisterRequest": {"type": "object", "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}, "role": {"type": "string", "enum": ["partner", "support"]}, "linked_to": {"type": "string"}}},
        "api.LoginRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "api.AuthResponse": {"type": "object", "properties": {"uid": {"type": "string"}, "role": {"type": "string"}, "token": {"type": "string"}}},
        "entity.PartnerSummary": {"type": "object", "properties": {"uid": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}, "last_active": {"type": "string"}, "completion_percent": {"type": "integer"}, "mood_count": {"type": "integer"}}},
        "entity.PartnerStats": {"type": "object", "properties": {"loading": {"type": "boolean"}, "error": {"type": "string"}, "partners": {"type": "array", "items": {"$ref": "#/definitions/entity.PartnerSummary"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "BabieCloud API",
	Description:      "API of the BabieCloud companion app",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
