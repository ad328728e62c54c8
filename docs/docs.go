// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init` after changing the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Create an account and get a token", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Exchange credentials for a token", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/auth/me": {"get": {"tags": ["auth"], "security": [{"BearerAuth": []}], "summary": "The authenticated user", "responses": {"200": {"description": "OK"}}}},
        "/users/{id}": {
            "get": {"tags": ["users"], "summary": "Public profile of a user", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["users"], "security": [{"BearerAuth": []}], "summary": "Delete your own account", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}, "409": {"description": "Conflict"}}}
        },
        "/posts": {
            "get": {"tags": ["posts"], "summary": "List posts", "parameters": [{"name": "limit", "in": "query", "type": "integer"}, {"name": "offset", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["posts"],
                "security": [{"BearerAuth": []}],
                "summary": "Create a post",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "title", "in": "formData", "required": true, "type": "string"},
                    {"name": "content", "in": "formData", "required": true, "type": "string"},
                    {"name": "image", "in": "formData", "type": "file", "description": "Allowed: JPG, PNG, GIF (max 10MB)"},
                    {"name": "video", "in": "formData", "type": "file", "description": "Allowed: MP4, MOV (max 50MB)"}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/posts/{id}": {
            "get": {"tags": ["posts"], "summary": "Get a post with its comments", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["posts"], "security": [{"BearerAuth": []}], "summary": "Update a post (owner only)", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["posts"], "security": [{"BearerAuth": []}], "summary": "Delete a post and its comments (owner only)", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        },
        "/posts/{id}/comments": {
            "get": {"tags": ["comments"], "summary": "List a post's comments", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "post": {"tags": ["comments"], "security": [{"BearerAuth": []}], "summary": "Comment on a post", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}}
        },
        "/posts/{id}/comments/{commentId}": {
            "get": {"tags": ["comments"], "summary": "Get one comment", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "commentId", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["comments"], "security": [{"BearerAuth": []}], "summary": "Edit a comment (author only)", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "commentId", "in": "path", "required": true, "type": "integer"}], "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["comments"], "security": [{"BearerAuth": []}], "summary": "Delete a comment (author only)", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "commentId", "in": "path", "required": true, "type": "integer"}], "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        },
        "/feed/ws": {"get": {"tags": ["feed"], "summary": "Live feed of post and comment events", "responses": {"101": {"description": "Switching Protocols"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Blog API",
	Description:      "Posts with image and video attachments, comments, and bearer token authentication.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
