// Package docs publica el documento OpenAPI en /swagger/*.
// La info general sale de las anotaciones de cmd/api/main.go y las rutas de
// los godoc de cada handler; mantener ambos en sync al tocar rutas.
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
        "/dogs": {
            "get": {
                "description": "Concatena las razas del catálogo externo y las creadas localmente. Con ?name= filtra por nombre.",
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Lista razas",
                "parameters": [
                    {"type": "string", "description": "substring del nombre (sin dígitos)", "name": "name", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dogs.dogResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dogs.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dogs.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/dogs.errorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Crea una raza local",
                "parameters": [
                    {"description": "raza", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dogs.dogRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dogs.dogResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dogs.errorResponse"}}
                }
            }
        },
        "/dogs/{dogID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Detalle de raza",
                "parameters": [
                    {"type": "string", "description": "id del catálogo (entero) o UUID local", "name": "dogID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dogs.dogResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dogs.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/dogs.errorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Reemplaza una raza local",
                "parameters": [
                    {"type": "string", "description": "UUID local", "name": "dogID", "in": "path", "required": true},
                    {"description": "raza", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dogs.dogRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dogs.dogResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dogs.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dogs.errorResponse"}}
                }
            },
            "delete": {
                "tags": ["dogs"],
                "summary": "Borra una raza local",
                "parameters": [
                    {"type": "string", "description": "UUID local", "name": "dogID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dogs.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dogs.errorResponse"}}
                }
            }
        },
        "/temperaments": {
            "get": {
                "description": "Sincroniza los temperamentos del catálogo externo y devuelve todos los persistidos.",
                "produces": ["application/json"],
                "tags": ["temperaments"],
                "summary": "Lista temperamentos",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/temperaments.temperamentResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/temperaments.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/temperaments.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dogs.dogRequest": {
            "type": "object",
            "properties": {
                "height_max": {"type": "number"},
                "height_min": {"type": "number"},
                "image": {"type": "string"},
                "name": {"type": "string"},
                "temperaments": {"type": "array", "items": {"type": "string"}},
                "weight_max": {"type": "number"},
                "weight_min": {"type": "number"},
                "years_life": {"type": "string"}
            }
        },
        "dogs.dogResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "created_in_db": {"type": "boolean"},
                "height_max": {"type": "number"},
                "height_min": {"type": "number"},
                "id": {"type": "string"},
                "image": {"type": "string"},
                "name": {"type": "string"},
                "temperaments": {"type": "string"},
                "updated_at": {"type": "string"},
                "weight_max": {"type": "number"},
                "weight_min": {"type": "number"},
                "years_life": {"type": "string"}
            }
        },
        "dogs.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "temperaments.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "temperaments.temperamentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
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
	Title:            "dogs-catalog API",
	Description:      "Razas de perro agregadas desde The Dog API y la base local.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
