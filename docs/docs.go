// Package docs описание API для Swagger UI.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/admin": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.AdminView"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "204": {
                        "description": "Администраторов нет"
                    },
                    "401": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    },
                    "403": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Список администраторов",
                "tags": [
                    "Admin"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.AdminView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    },
                    "409": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Создать администратора",
                "tags": [
                    "Admin"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Администратор",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.AdminCreateRequest"
                        }
                    }
                ]
            }
        },
        "/admin/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.AdminView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Администратор по ID",
                "tags": [
                    "Admin"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID администратора",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.AdminView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    },
                    "409": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Изменить администратора",
                "tags": [
                    "Admin"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID администратора",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Новые данные",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.AdminUpdateRequest"
                        }
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Удалить администратора",
                "description": "Планы, которые он последним изменял, остаются без автора.",
                "tags": [
                    "Admin"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID администратора",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/admin/email": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.AdminView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Администратор по email",
                "tags": [
                    "Admin"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Email",
                        "name": "email",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/admin/{id}/password": {
            "patch": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Сменить пароль администратора",
                "tags": [
                    "Admin"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID администратора",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Пароли",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.PasswordUpdateRequest"
                        }
                    }
                ]
            }
        },
        "/auth/login": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.LoginResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    },
                    "401": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    },
                    "429": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Вход",
                "description": "Проверяет email и пароль администратора или участника и выдаёт JWT.",
                "tags": [
                    "Auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Учётные данные",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.LoginRequest"
                        }
                    }
                ]
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "503": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "summary": "Состояние сервиса",
                "tags": [
                    "Health"
                ]
            }
        },
        "/member": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.MemberView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    },
                    "404": {
                        "description": "План не найден",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    },
                    "409": {
                        "description": "Email занят",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Регистрация участника",
                "description": "Создаёт участника и его абонемент в одной транзакции.",
                "tags": [
                    "Member"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Участник и выбранный план",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.MemberCreateRequest"
                        }
                    }
                ]
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.MemberView"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "204": {
                        "description": "OK"
                    }
                },
                "summary": "Список участников",
                "tags": [
                    "Member"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.MemberView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "409": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Изменить свои данные",
                "tags": [
                    "Member"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Новые данные",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.MemberUpdateRequest"
                        }
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    }
                },
                "summary": "Удалить свою учётную запись",
                "description": "Абонемент участника удаляется вместе с ним.",
                "tags": [
                    "Member"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "patch": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Сменить свой пароль",
                "tags": [
                    "Member"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Пароли",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.PasswordUpdateRequest"
                        }
                    }
                ]
            }
        },
        "/member/myInfo": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.MemberView"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "Профиль текущего участника",
                "tags": [
                    "Member"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/member/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.MemberView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "403": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Участник по ID",
                "description": "Участник может запросить только себя.",
                "tags": [
                    "Member"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID участника",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/member/membership": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.MemberView"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "Участник по абонементу",
                "tags": [
                    "Member"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID абонемента",
                        "name": "membershipId",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/member/email": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.MemberView"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "Участник по email",
                "tags": [
                    "Member"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Email",
                        "name": "email",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/membership": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.MembershipView"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "204": {
                        "description": "OK"
                    }
                },
                "summary": "Список абонементов",
                "tags": [
                    "Membership"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.MembershipView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Абонемент ещё действует",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Продлить свой абонемент",
                "description": "Стоимость и дата окончания рассчитываются по цене плана и длительности.",
                "tags": [
                    "Membership"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "План и длительность",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.MembershipUpdateRequest"
                        }
                    }
                ]
            }
        },
        "/membership/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.MembershipView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "403": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Абонемент по ID",
                "description": "Участник может запросить только свой абонемент.",
                "tags": [
                    "Membership"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID абонемента",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/membership/{id}/paid": {
            "patch": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Отметить оплату абонемента",
                "tags": [
                    "Membership"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID абонемента",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/membershipPlan": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.PlanView"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "204": {
                        "description": "OK"
                    }
                },
                "summary": "Список планов",
                "tags": [
                    "MembershipPlan"
                ]
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.PlanView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    },
                    "409": {
                        "description": "Имя занято",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Создать план",
                "tags": [
                    "MembershipPlan"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "План",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.PlanCreateRequest"
                        }
                    }
                ]
            }
        },
        "/membershipPlan/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.PlanView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "План по ID",
                "tags": [
                    "MembershipPlan"
                ],
                "parameters": [
                    {
                        "description": "ID плана",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.PlanView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    },
                    "409": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Изменить план",
                "tags": [
                    "MembershipPlan"
                ],
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID плана",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Новые данные",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.PlanUpdateRequest"
                        }
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    },
                    "409": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Удалить план",
                "description": "План должен быть помечен на удаление и не иметь действующих абонементов.",
                "tags": [
                    "MembershipPlan"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID плана",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/membershipPlan/setForDeletion/{id}": {
            "patch": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Пометить план на удаление",
                "tags": [
                    "MembershipPlan"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID плана",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/membershipPlan/resetForDeletion/{id}": {
            "patch": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/response.Problem"
                        }
                    }
                },
                "summary": "Снять пометку на удаление",
                "tags": [
                    "MembershipPlan"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "ID плана",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        }
    },
    "definitions": {
        "models.MembershipView": {
            "type": "object",
            "properties": {
                "membership_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "membership_from": {
                    "type": "string",
                    "format": "date-time"
                },
                "membership_to": {
                    "type": "string",
                    "format": "date-time"
                },
                "plan_duration": {
                    "type": "integer",
                    "enum": [
                        1,
                        3,
                        6,
                        12
                    ]
                },
                "membership_fee": {
                    "type": "number"
                },
                "is_fee_paid": {
                    "type": "boolean"
                },
                "membership_plan_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "membership_plan": {
                    "$ref": "#/definitions/models.PlanView"
                }
            }
        },
        "models.MembershipCreateRequest": {
            "type": "object",
            "properties": {
                "plan_duration": {
                    "type": "integer",
                    "enum": [
                        1,
                        3,
                        6,
                        12
                    ]
                },
                "membership_plan_id": {
                    "type": "string",
                    "format": "uuid"
                }
            },
            "required": [
                "plan_duration",
                "membership_plan_id"
            ]
        },
        "models.MembershipUpdateRequest": {
            "type": "object",
            "properties": {
                "plan_duration": {
                    "type": "integer",
                    "enum": [
                        1,
                        3,
                        6,
                        12
                    ]
                },
                "membership_plan_id": {
                    "type": "string",
                    "format": "uuid"
                }
            },
            "required": [
                "plan_duration",
                "membership_plan_id"
            ]
        },
        "models.AdminView": {
            "type": "object",
            "properties": {
                "admin_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "admin_name": {
                    "type": "string"
                },
                "admin_surname": {
                    "type": "string"
                },
                "admin_email": {
                    "type": "string"
                },
                "admin_phone": {
                    "type": "string"
                }
            }
        },
        "models.AdminCreateRequest": {
            "type": "object",
            "properties": {
                "admin_name": {
                    "type": "string"
                },
                "admin_surname": {
                    "type": "string"
                },
                "admin_email": {
                    "type": "string"
                },
                "admin_phone": {
                    "type": "string"
                },
                "admin_password": {
                    "type": "string"
                }
            },
            "required": [
                "admin_name",
                "admin_surname",
                "admin_email",
                "admin_phone",
                "admin_password"
            ]
        },
        "models.AdminUpdateRequest": {
            "type": "object",
            "properties": {
                "admin_name": {
                    "type": "string"
                },
                "admin_surname": {
                    "type": "string"
                },
                "admin_email": {
                    "type": "string"
                },
                "admin_phone": {
                    "type": "string"
                }
            },
            "required": [
                "admin_name",
                "admin_surname",
                "admin_email",
                "admin_phone"
            ]
        },
        "models.PasswordUpdateRequest": {
            "type": "object",
            "properties": {
                "current_password": {
                    "type": "string"
                },
                "new_password": {
                    "type": "string"
                },
                "confirm_new_password": {
                    "type": "string"
                }
            },
            "required": [
                "current_password",
                "new_password",
                "confirm_new_password"
            ]
        },
        "models.MemberView": {
            "type": "object",
            "properties": {
                "member_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "member_name": {
                    "type": "string"
                },
                "member_surname": {
                    "type": "string"
                },
                "member_email": {
                    "type": "string"
                },
                "member_phone": {
                    "type": "string"
                },
                "membership_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "membership": {
                    "$ref": "#/definitions/models.MembershipView"
                }
            }
        },
        "models.MemberCreateRequest": {
            "type": "object",
            "properties": {
                "member_name": {
                    "type": "string"
                },
                "member_surname": {
                    "type": "string"
                },
                "member_email": {
                    "type": "string"
                },
                "member_phone": {
                    "type": "string"
                },
                "member_password": {
                    "type": "string"
                },
                "membership": {
                    "$ref": "#/definitions/models.MembershipCreateRequest"
                }
            },
            "required": [
                "member_name",
                "member_surname",
                "member_email",
                "member_phone",
                "member_password"
            ]
        },
        "models.MemberUpdateRequest": {
            "type": "object",
            "properties": {
                "member_name": {
                    "type": "string"
                },
                "member_surname": {
                    "type": "string"
                },
                "member_email": {
                    "type": "string"
                },
                "member_phone": {
                    "type": "string"
                }
            },
            "required": [
                "member_name",
                "member_surname",
                "member_email"
            ]
        },
        "models.PlanView": {
            "type": "object",
            "properties": {
                "plan_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "plan_name": {
                    "type": "string"
                },
                "plan_description": {
                    "type": "string"
                },
                "plan_price": {
                    "type": "number"
                },
                "for_deletion": {
                    "type": "boolean"
                },
                "admin_id": {
                    "type": "string",
                    "format": "uuid"
                },
                "admin": {
                    "$ref": "#/definitions/models.AdminView"
                }
            }
        },
        "models.PlanCreateRequest": {
            "type": "object",
            "properties": {
                "plan_name": {
                    "type": "string"
                },
                "plan_description": {
                    "type": "string"
                },
                "plan_price": {
                    "type": "number"
                }
            },
            "required": [
                "plan_name",
                "plan_description",
                "plan_price"
            ]
        },
        "models.PlanUpdateRequest": {
            "type": "object",
            "properties": {
                "plan_name": {
                    "type": "string"
                },
                "plan_description": {
                    "type": "string"
                },
                "plan_price": {
                    "type": "number"
                }
            },
            "required": [
                "plan_name"
            ]
        },
        "models.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password"
            ]
        },
        "models.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "data": {}
            }
        },
        "response.Problem": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                },
                "detail": {
                    "type": "string"
                },
                "instance": {
                    "type": "string"
                },
                "errors": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo метаданные API, подставляемые в шаблон.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Gym Membership API",
	Description:      "API для учёта участников, абонементов и планов фитнес-клуба",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
