// Package swagger - OpenAPI описание HTTP API, регистрируется в swag и отдаётся через /swagger/*
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "MediPlus Platform Team",
            "email": "platform@mediplus.fr"
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
        "/api/v1/health": {
            "get": {
                "description": "Состояние сервиса и его зависимостей. Overpass не проверяется: его отказ не делает сервис недоступным.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/v1/establishments/nearby": {
            "get": {
                "description": "Возвращает больницы, клиники, аптеки, лаборатории, стоматологов, врачей и кинезитерапевтов в радиусе от точки, отсортированные по расстоянию. Отказ источника данных дает пустой список.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Establishments"
                ],
                "summary": "Поиск учреждений рядом с точкой",
                "parameters": [
                    {
                        "type": "number",
                        "description": "Широта",
                        "name": "lat",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Долгота",
                        "name": "lon",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Радиус в метрах",
                        "name": "radius",
                        "in": "query",
                        "default": 5000
                    },
                    {
                        "type": "string",
                        "description": "Фильтр по названию, специальности или типу",
                        "name": "q",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/utils.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.EstablishmentSearchResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/establishments/search": {
            "get": {
                "description": "Ищет учреждения в расширенном радиусе и оставляет те, чье название, специальность или тип содержит name",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Establishments"
                ],
                "summary": "Поиск учреждений по названию",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Название (минимум 2 символа)",
                        "name": "name",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Широта",
                        "name": "lat",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Долгота",
                        "name": "lon",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Радиус в метрах",
                        "name": "radius",
                        "in": "query",
                        "default": 10000
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/utils.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.EstablishmentSearchResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/establishments/{kind}/{id}": {
            "get": {
                "description": "Возвращает элемент Overpass (node или way) без нормализации",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Establishments"
                ],
                "summary": "Сырой элемент OSM по идентификатору",
                "parameters": [
                    {
                        "enum": [
                            "node",
                            "way"
                        ],
                        "type": "string",
                        "description": "Вид элемента",
                        "name": "kind",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Идентификатор OSM",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/utils.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.RawElement"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/establishment-types": {
            "get": {
                "description": "Возвращает типы учреждений с подписью, иконкой, цветом и соответствующими тегами OSM",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Establishments"
                ],
                "summary": "Типы учреждений",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/utils.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.EstablishmentTypeDTO"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/distance": {
            "post": {
                "description": "Расстояние по большому кругу в километрах",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Establishments"
                ],
                "summary": "Расстояние между двумя точками",
                "parameters": [
                    {
                        "description": "Две точки",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.DistanceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/utils.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.DistanceResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/stats": {
            "get": {
                "description": "Агрегаты по журналу поиска: число поисков, отказы источника, пустые результаты, учреждения по типам",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Statistics"
                ],
                "summary": "Search statistics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/utils.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.Statistics"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/utils.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.ElementCenter": {
            "type": "object",
            "properties": {
                "lat": {
                    "type": "number"
                },
                "lon": {
                    "type": "number"
                }
            }
        },
        "domain.RawElement": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "lat": {
                    "type": "number"
                },
                "lon": {
                    "type": "number"
                },
                "center": {
                    "$ref": "#/definitions/domain.ElementCenter"
                },
                "tags": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.TypeInfo": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                }
            }
        },
        "domain.EstablishmentType": {
            "type": "string",
            "enum": [
                "hospital",
                "clinic",
                "pharmacy",
                "laboratory",
                "dentist",
                "doctor",
                "physiotherapist"
            ]
        },
        "domain.Establishment": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "type": {
                    "$ref": "#/definitions/domain.EstablishmentType"
                },
                "type_info": {
                    "$ref": "#/definitions/domain.TypeInfo"
                },
                "lat": {
                    "type": "number"
                },
                "lon": {
                    "type": "number"
                },
                "address": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                },
                "opening_hours": {
                    "type": "string"
                },
                "operator": {
                    "type": "string"
                },
                "wheelchair": {
                    "type": "boolean"
                },
                "distance": {
                    "type": "number",
                    "description": "km"
                },
                "speciality": {
                    "type": "string"
                },
                "tags": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.Statistics": {
            "type": "object",
            "properties": {
                "total_searches": {
                    "type": "integer"
                },
                "upstream_failed": {
                    "type": "integer"
                },
                "empty_results": {
                    "type": "integer"
                },
                "avg_result_count": {
                    "type": "number"
                },
                "by_type": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "by_operation": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "last_updated": {
                    "type": "string"
                }
            }
        },
        "dto.EstablishmentSearchResponse": {
            "type": "object",
            "properties": {
                "establishments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Establishment"
                    }
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "dto.EstablishmentTypeDTO": {
            "type": "object",
            "properties": {
                "type": {
                    "$ref": "#/definitions/domain.EstablishmentType"
                },
                "label": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.PointDTO": {
            "type": "object",
            "required": [
                "lat",
                "lon"
            ],
            "properties": {
                "lat": {
                    "type": "number",
                    "maximum": 90,
                    "minimum": -90
                },
                "lon": {
                    "type": "number",
                    "maximum": 180,
                    "minimum": -180
                }
            }
        },
        "dto.DistanceRequest": {
            "type": "object",
            "required": [
                "from",
                "to"
            ],
            "properties": {
                "from": {
                    "$ref": "#/definitions/dto.PointDTO"
                },
                "to": {
                    "$ref": "#/definitions/dto.PointDTO"
                }
            }
        },
        "dto.DistanceResponse": {
            "type": "object",
            "properties": {
                "distance_km": {
                    "type": "number"
                }
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "details": {
                    "type": "object",
                    "additionalProperties": true
                }
            }
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "time_ms": {
                    "type": "number"
                }
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {
                    "$ref": "#/definitions/utils.Meta"
                }
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "$ref": "#/definitions/errors.AppError"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "MediPlus Geo-Search API",
	Description:      "Поиск медицинских учреждений рядом с пациентом по данным OpenStreetMap через Overpass API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
