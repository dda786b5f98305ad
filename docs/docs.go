// Package docs holds the Swagger document served under /swagger. It mirrors
// the swag annotations on the handlers and main; `swag init -g cmd/server/main.go`
// rebuilds it after an annotation change.
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
        "/api/admin/changes": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "text/event-stream"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Live profile changes",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ProfileChange"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/admin/schema/membership-column": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Register the membership column",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Privileged service key",
                        "name": "X-Service-Key",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.columnsResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/admin/schema/profile-columns": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Register the dietary and health profile columns",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Privileged service key",
                        "name": "X-Service-Key",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.columnsResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/admin/stats": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Dashboard statistics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.AdminStats"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/admin/users": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "List user profiles",
                "parameters": [
                    {
                        "type": "string",
                        "description": "basic, pro or ultimate",
                        "name": "membership",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Health goal tag",
                        "name": "goal",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Partial name or email",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum rows (default 50, max 200)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.usersResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.loginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.sessionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Logout",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/auth/session": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Current session",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.sessionResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/generate-meal": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "meals"
                ],
                "summary": "Generate a single meal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Public client key",
                        "name": "apikey",
                        "in": "header"
                    },
                    {
                        "description": "Meal preferences",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.generateMealRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Meal"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "502": {
                        "description": "Provider error, verbatim",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/generate-meal-image": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "meals"
                ],
                "summary": "Generate a picture of a meal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Public client key",
                        "name": "apikey",
                        "in": "header"
                    },
                    {
                        "description": "Meal to picture",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.generateImageRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.imageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "502": {
                        "description": "Provider error, verbatim",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/generate-meal-plan": {
            "post": {
                "description": "Days default to 7 (1..7) and meals per day to 3 (1..6). Daily\ntotals are computed from the meals.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "meals"
                ],
                "summary": "Generate a multi-day meal plan",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Public client key",
                        "name": "apikey",
                        "in": "header"
                    },
                    {
                        "description": "Plan parameters",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.generatePlanRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.WeeklyPlan"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "502": {
                        "description": "Provider error, verbatim",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/profile": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Get my profile",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Profile"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Replace my profile",
                "parameters": [
                    {
                        "description": "Profile attributes",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.profileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Profile"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/register/wizard": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "register"
                ],
                "summary": "Start a registration wizard",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.wizardResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/register/wizard/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "register"
                ],
                "summary": "Get a registration wizard",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Wizard id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.wizardResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "register"
                ],
                "summary": "Change draft fields",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Wizard id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Changed fields",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.wizardPatchRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.wizardResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "register"
                ],
                "summary": "Discard a registration wizard",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Wizard id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/register/wizard/{id}/back": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "register"
                ],
                "summary": "Return to the previous step",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Wizard id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.wizardResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/register/wizard/{id}/next": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "register"
                ],
                "summary": "Validate the current step and advance",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Wizard id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.wizardResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "422": {
                        "description": "Step has invalid fields",
                        "schema": {
                            "$ref": "#/definitions/handler.wizardResponse"
                        }
                    }
                }
            }
        },
        "/api/register/wizard/{id}/resume": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "register"
                ],
                "summary": "Reopen a failed registration on step 1",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Wizard id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.wizardResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/register/wizard/{id}/submit": {
            "post": {
                "description": "Re-validates the whole draft. A rejected registration returns the\nfailed wizard with its user-facing submitError; the draft is kept.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "register"
                ],
                "summary": "Create the account",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Wizard id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.wizardResponse"
                        }
                    },
                    "409": {
                        "description": "Account already exists",
                        "schema": {
                            "$ref": "#/definitions/handler.wizardResponse"
                        }
                    },
                    "422": {
                        "description": "Invalid fields or email rejected",
                        "schema": {
                            "$ref": "#/definitions/handler.wizardResponse"
                        }
                    },
                    "429": {
                        "description": "Too many sign-up attempts",
                        "schema": {
                            "$ref": "#/definitions/handler.wizardResponse"
                        }
                    },
                    "502": {
                        "description": "Account could not be created",
                        "schema": {
                            "$ref": "#/definitions/handler.wizardResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ops"
                ],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ops"
                ],
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.readinessResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.readinessResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Account": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "domain.ActivityLevel": {
            "type": "string",
            "enum": [
                "sedentary",
                "light",
                "moderate",
                "active",
                "very_active"
            ],
            "x-enum-varnames": [
                "ActivitySedentary",
                "ActivityLight",
                "ActivityModerate",
                "ActivityActive",
                "ActivityVeryActive"
            ]
        },
        "domain.AdminStats": {
            "type": "object",
            "properties": {
                "byActivityLevel": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.CountBy"
                    }
                },
                "byMembership": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.CountBy"
                    }
                },
                "generationsByKind": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.CountBy"
                    }
                },
                "newUsersLast7d": {
                    "type": "integer"
                },
                "topHealthGoals": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.CountBy"
                    }
                },
                "totalUsers": {
                    "type": "integer"
                }
            }
        },
        "domain.ChangeOperation": {
            "type": "string",
            "enum": [
                "insert",
                "update",
                "replace",
                "delete"
            ],
            "x-enum-varnames": [
                "ChangeInsert",
                "ChangeUpdate",
                "ChangeReplace",
                "ChangeDelete"
            ]
        },
        "domain.ColumnResult": {
            "type": "object",
            "properties": {
                "column": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/domain.ColumnStatus"
                }
            }
        },
        "domain.ColumnStatus": {
            "type": "string",
            "enum": [
                "added",
                "exists",
                "error"
            ],
            "x-enum-varnames": [
                "ColumnAdded",
                "ColumnExists",
                "ColumnError"
            ]
        },
        "domain.CountBy": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "key": {
                    "type": "string"
                }
            }
        },
        "domain.DayPlan": {
            "type": "object",
            "properties": {
                "day": {
                    "type": "integer"
                },
                "label": {
                    "type": "string"
                },
                "meals": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Meal"
                    }
                },
                "totals": {
                    "$ref": "#/definitions/domain.Nutrition"
                }
            }
        },
        "domain.Direction": {
            "type": "string",
            "enum": [
                "forward",
                "backward"
            ],
            "x-enum-varnames": [
                "DirectionForward",
                "DirectionBackward"
            ]
        },
        "domain.FieldErrors": {
            "type": "object",
            "additionalProperties": {
                "type": "string"
            }
        },
        "domain.Meal": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "difficulty": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "ingredients": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "mealType": {
                    "$ref": "#/definitions/domain.MealType"
                },
                "nutrition": {
                    "$ref": "#/definitions/domain.Nutrition"
                },
                "prepTime": {
                    "type": "string"
                },
                "servings": {
                    "type": "integer"
                },
                "steps": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "domain.MealType": {
            "type": "string",
            "enum": [
                "breakfast",
                "lunch",
                "dinner",
                "snack"
            ],
            "x-enum-varnames": [
                "MealBreakfast",
                "MealLunch",
                "MealDinner",
                "MealSnack"
            ]
        },
        "domain.MembershipTier": {
            "type": "string",
            "enum": [
                "basic",
                "pro",
                "ultimate"
            ],
            "x-enum-varnames": [
                "TierBasic",
                "TierPro",
                "TierUltimate"
            ]
        },
        "domain.Nutrition": {
            "type": "object",
            "properties": {
                "calories": {
                    "type": "number"
                },
                "carbs": {
                    "type": "number"
                },
                "fat": {
                    "type": "number"
                },
                "protein": {
                    "type": "number"
                }
            }
        },
        "domain.Profile": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string"
                },
                "activityLevel": {
                    "$ref": "#/definitions/domain.ActivityLevel"
                },
                "allergies": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "createdAt": {
                    "type": "string"
                },
                "currentWeight": {
                    "type": "number"
                },
                "dietaryRestrictions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "dislikedIngredients": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "email": {
                    "type": "string"
                },
                "firstName": {
                    "type": "string"
                },
                "healthGoals": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "lastName": {
                    "type": "string"
                },
                "membership": {
                    "$ref": "#/definitions/domain.MembershipTier"
                },
                "targetWeight": {
                    "type": "number"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "domain.ProfileChange": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string"
                },
                "at": {
                    "type": "string"
                },
                "operation": {
                    "$ref": "#/definitions/domain.ChangeOperation"
                },
                "profile": {
                    "$ref": "#/definitions/domain.Profile"
                }
            }
        },
        "domain.WeeklyPlan": {
            "type": "object",
            "properties": {
                "averageDailyCalories": {
                    "type": "number"
                },
                "dailyCalorieTarget": {
                    "type": "number"
                },
                "days": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.DayPlan"
                    }
                }
            }
        },
        "domain.WizardState": {
            "type": "string",
            "enum": [
                "step_1",
                "step_2",
                "step_3",
                "step_4",
                "step_5",
                "submitting",
                "success",
                "failed"
            ],
            "x-enum-varnames": [
                "StateStep1",
                "StateStep2",
                "StateStep3",
                "StateStep4",
                "StateStep5",
                "StateSubmitting",
                "StateSuccess",
                "StateFailed"
            ]
        },
        "handler.columnsResponse": {
            "type": "object",
            "properties": {
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ColumnResult"
                    }
                }
            }
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "handler.draftResponse": {
            "type": "object",
            "properties": {
                "activityLevel": {
                    "type": "string"
                },
                "allergies": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "currentWeight": {
                    "type": "string"
                },
                "dietaryRestrictions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "dislikedIngredients": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "email": {
                    "type": "string"
                },
                "firstName": {
                    "type": "string"
                },
                "hasPassword": {
                    "type": "boolean"
                },
                "healthGoals": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "lastName": {
                    "type": "string"
                },
                "membership": {
                    "type": "string"
                },
                "targetWeight": {
                    "type": "string"
                }
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "handler.generateImageRequest": {
            "type": "object",
            "required": [
                "title"
            ],
            "properties": {
                "description": {
                    "type": "string",
                    "maxLength": 1000
                },
                "title": {
                    "type": "string",
                    "maxLength": 200
                }
            }
        },
        "handler.generateMealRequest": {
            "type": "object",
            "properties": {
                "allergies": {
                    "type": "string",
                    "maxLength": 500
                },
                "calorieTarget": {
                    "type": "number",
                    "maximum": 10000,
                    "minimum": 0
                },
                "dietaryPreference": {
                    "type": "string",
                    "maxLength": 200
                },
                "dislikedIngredients": {
                    "type": "string",
                    "maxLength": 500
                },
                "healthGoal": {
                    "type": "string",
                    "maxLength": 200
                },
                "mealType": {
                    "type": "string",
                    "enum": [
                        "breakfast",
                        "lunch",
                        "dinner",
                        "snack"
                    ]
                }
            }
        },
        "handler.generatePlanRequest": {
            "type": "object",
            "properties": {
                "allergies": {
                    "type": "string",
                    "maxLength": 500
                },
                "calorieTarget": {
                    "type": "number",
                    "maximum": 10000,
                    "minimum": 0
                },
                "dailyCalorieTarget": {
                    "type": "number",
                    "maximum": 20000,
                    "minimum": 0
                },
                "days": {
                    "type": "integer",
                    "maximum": 7,
                    "minimum": 1
                },
                "dietaryPreference": {
                    "type": "string",
                    "maxLength": 200
                },
                "dislikedIngredients": {
                    "type": "string",
                    "maxLength": 500
                },
                "healthGoal": {
                    "type": "string",
                    "maxLength": 200
                },
                "mealType": {
                    "type": "string",
                    "enum": [
                        "breakfast",
                        "lunch",
                        "dinner",
                        "snack"
                    ]
                },
                "mealsPerDay": {
                    "type": "integer",
                    "maximum": 6,
                    "minimum": 1
                }
            }
        },
        "handler.imageResponse": {
            "type": "object",
            "properties": {
                "imageUrl": {
                    "type": "string"
                }
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": [
                "email",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "handler.profileRequest": {
            "type": "object",
            "required": [
                "firstName",
                "lastName"
            ],
            "properties": {
                "activityLevel": {
                    "type": "string",
                    "enum": [
                        "sedentary",
                        "light",
                        "moderate",
                        "active",
                        "very_active"
                    ]
                },
                "allergies": {
                    "type": "array",
                    "maxItems": 50,
                    "items": {
                        "type": "string"
                    }
                },
                "currentWeight": {
                    "type": "number"
                },
                "dietaryRestrictions": {
                    "type": "array",
                    "maxItems": 50,
                    "items": {
                        "type": "string"
                    }
                },
                "dislikedIngredients": {
                    "type": "array",
                    "maxItems": 50,
                    "items": {
                        "type": "string"
                    }
                },
                "firstName": {
                    "type": "string",
                    "maxLength": 100
                },
                "healthGoals": {
                    "type": "array",
                    "maxItems": 20,
                    "items": {
                        "type": "string"
                    }
                },
                "lastName": {
                    "type": "string",
                    "maxLength": 100
                },
                "membership": {
                    "type": "string",
                    "enum": [
                        "basic",
                        "pro",
                        "ultimate"
                    ]
                },
                "targetWeight": {
                    "type": "number"
                }
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "dependencies": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/handler.dependencyStatus"
                    }
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "handler.sessionResponse": {
            "type": "object",
            "properties": {
                "accessToken": {
                    "type": "string"
                },
                "account": {
                    "$ref": "#/definitions/domain.Account"
                },
                "expiresAt": {
                    "type": "string"
                }
            }
        },
        "handler.usersResponse": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "users": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Profile"
                    }
                }
            }
        },
        "handler.wizardPatchRequest": {
            "type": "object",
            "properties": {
                "activityLevel": {
                    "type": "string",
                    "enum": [
                        "sedentary",
                        "light",
                        "moderate",
                        "active",
                        "very_active"
                    ]
                },
                "allergies": {
                    "type": "array",
                    "maxItems": 50,
                    "items": {
                        "type": "string"
                    }
                },
                "confirmPassword": {
                    "type": "string",
                    "maxLength": 72
                },
                "currentWeight": {
                    "type": "string",
                    "maxLength": 16
                },
                "dietaryRestrictions": {
                    "type": "array",
                    "maxItems": 50,
                    "items": {
                        "type": "string"
                    }
                },
                "dislikedIngredients": {
                    "type": "array",
                    "maxItems": 50,
                    "items": {
                        "type": "string"
                    }
                },
                "email": {
                    "type": "string",
                    "maxLength": 254
                },
                "firstName": {
                    "type": "string",
                    "maxLength": 100
                },
                "healthGoals": {
                    "type": "array",
                    "maxItems": 20,
                    "items": {
                        "type": "string"
                    }
                },
                "lastName": {
                    "type": "string",
                    "maxLength": 100
                },
                "membership": {
                    "type": "string",
                    "maxLength": 32
                },
                "password": {
                    "type": "string",
                    "maxLength": 72
                },
                "targetWeight": {
                    "type": "string",
                    "maxLength": 16
                }
            }
        },
        "handler.wizardResponse": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "direction": {
                    "$ref": "#/definitions/domain.Direction"
                },
                "draft": {
                    "$ref": "#/definitions/handler.draftResponse"
                },
                "errors": {
                    "$ref": "#/definitions/domain.FieldErrors"
                },
                "id": {
                    "type": "string"
                },
                "state": {
                    "$ref": "#/definitions/domain.WizardState"
                },
                "step": {
                    "type": "integer"
                },
                "submitError": {
                    "type": "string"
                },
                "totalSteps": {
                    "type": "integer"
                },
                "updatedAt": {
                    "type": "string"
                }
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
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Meal Planner API",
	Description:      "Registration wizard, profiles, meal generation and admin statistics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
