package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SGCD Panel API",
        "description": "Session and roster panel for the academic workload system",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {"name": "Authentication", "description": "Session lifecycle"},
        {"name": "Data", "description": "Session collection snapshots"},
        {"name": "Professors", "description": "Roster management"},
        {"name": "Comments", "description": "Audit trail"},
        {"name": "Academic", "description": "Faculty, discipline and subject reference lists"},
        {"name": "Assignments", "description": "Teaching load bindings"},
        {"name": "Users", "description": "Account administration"},
        {"name": "Reports", "description": "Downloadable roster reports"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "responses": {
                    "200": {"description": "Session opened"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register account",
                "responses": {
                    "201": {"description": "Session opened"},
                    "409": {"description": "Account exists"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Logout current session",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "Session closed"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Get current user",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Identity and permissions"}
                }
            }
        },
        "/data": {
            "get": {
                "tags": ["Data"],
                "summary": "Get session data snapshot",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Collections and load state"}
                }
            }
        },
        "/data/load": {
            "post": {
                "tags": ["Data"],
                "summary": "Load session data",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Collections after load"}
                }
            }
        },
        "/data/refresh": {
            "post": {
                "tags": ["Data"],
                "summary": "Refresh session data",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Collections after reload"}
                }
            }
        },
        "/professors": {
            "get": {
                "tags": ["Professors"],
                "summary": "List professors",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Roster"}
                }
            },
            "post": {
                "tags": ["Professors"],
                "summary": "Add professor",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/professors/{id}": {
            "put": {
                "tags": ["Professors"],
                "summary": "Update professor",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Updated"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Professors"],
                "summary": "Delete professor",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/professors/stats": {
            "get": {
                "tags": ["Professors"],
                "summary": "Roster statistics",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Headcounts by faculty, discipline and subject"}
                }
            }
        },
        "/comments": {
            "get": {
                "tags": ["Comments"],
                "summary": "List comments",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Audit trail"}
                }
            },
            "post": {
                "tags": ["Comments"],
                "summary": "Add comment",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created"}
                }
            }
        },
        "/reports/roster": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download roster report",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "CSV or PDF document"}
                }
            }
        },
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
                    "200": {"description": "Ready"}
                }
            }
        }
    },
    "definitions": {
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
