// Package swagger registers the OpenAPI document served at /swagger/*. It
// mirrors the @Router annotations on the feature handlers; docs_test.go fails
// when a route is added or removed without updating it.
package swagger

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
        "/catalog/export": {
            "post": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Export Catalog",
                "responses": {
                    "200": {"description": "Exported counts", "schema": {"$ref": "#/definitions/catalog.ImportResult"}},
                    "404": {"description": "Bucket not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/catalog/import": {
            "post": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Import Catalog",
                "responses": {
                    "200": {"description": "Imported counts", "schema": {"$ref": "#/definitions/catalog.ImportResult"}},
                    "400": {"description": "Invalid catalog", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Bucket or file not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/catalog/items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List Items",
                "parameters": [
                    {"type": "string", "description": "Rarity tag", "name": "rarity", "in": "query"},
                    {"type": "string", "description": "Slot tag", "name": "slot", "in": "query"},
                    {"type": "boolean", "description": "Only tradeable items", "name": "tradeable", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Items", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Item"}}}
                }
            }
        },
        "/catalog/prices": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List Prices",
                "responses": {
                    "200": {"description": "Prices", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Price"}}}
                }
            }
        },
        "/inventory": {
            "get": {
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Get Inventory",
                "parameters": [
                    {"type": "string", "description": "Acting user id", "name": "X-User-ID", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "Inventory", "schema": {"$ref": "#/definitions/models.Inventory"}},
                    "404": {"description": "No inventory synced", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Replace Inventory",
                "parameters": [
                    {"type": "string", "description": "Acting user id", "name": "X-User-ID", "in": "header", "required": true},
                    {"description": "Inventory snapshot", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/inventory.ReplaceRequest"}}
                ],
                "responses": {
                    "200": {"description": "Inventory", "schema": {"$ref": "#/definitions/models.Inventory"}},
                    "400": {"description": "Invalid snapshot", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/market": {
            "get": {
                "produces": ["application/json"],
                "tags": ["markets"],
                "summary": "Get Own Market",
                "parameters": [
                    {"type": "string", "description": "Acting user id", "name": "X-User-ID", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "Market", "schema": {"$ref": "#/definitions/models.Market"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["markets"],
                "summary": "Update Market Notes",
                "parameters": [
                    {"type": "string", "description": "Acting user id", "name": "X-User-ID", "in": "header", "required": true},
                    {"description": "Notes", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/markets.UpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "Market", "schema": {"$ref": "#/definitions/models.Market"}},
                    "400": {"description": "Invalid notes", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/market/wishes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["markets"],
                "summary": "Create Wish",
                "parameters": [
                    {"type": "string", "description": "Acting user id", "name": "X-User-ID", "in": "header", "required": true},
                    {"description": "Wish", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/markets.WishRequest"}}
                ],
                "responses": {
                    "201": {"description": "Wish", "schema": {"$ref": "#/definitions/models.Wish"}},
                    "400": {"description": "Duplicate wish", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/market/wishes/{id}": {
            "delete": {
                "tags": ["markets"],
                "summary": "Delete Wish",
                "parameters": [
                    {"type": "string", "description": "Acting user id", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "integer", "description": "Wish id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "401": {"description": "Not the owner", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/markets/{userId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["markets"],
                "summary": "Get Market",
                "parameters": [
                    {"type": "string", "description": "Owner id", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Market", "schema": {"$ref": "#/definitions/models.Market"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/notifications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "List Notifications",
                "parameters": [
                    {"type": "string", "description": "Acting user id", "name": "X-User-ID", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "Notifications", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Notification"}}}
                }
            }
        },
        "/notifications/{id}": {
            "delete": {
                "tags": ["notifications"],
                "summary": "Dismiss Notification",
                "parameters": [
                    {"type": "string", "description": "Acting user id", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "integer", "description": "Notification id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/offers": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["offers"],
                "summary": "Create Offer",
                "parameters": [
                    {"type": "string", "description": "Acting user id", "name": "X-User-ID", "in": "header", "required": true},
                    {"description": "Offer", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/offers.CreateOfferRequest"}}
                ],
                "responses": {
                    "201": {"description": "Offer", "schema": {"$ref": "#/definitions/models.Offer"}},
                    "400": {"description": "Invalid offer", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["offers"],
                "summary": "Delete All Offers",
                "parameters": [
                    {"type": "string", "description": "Acting user id", "name": "X-User-ID", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deleted count", "schema": {"$ref": "#/definitions/offers.DeleteAllResult"}}
                }
            }
        },
        "/offers/sync": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["offers"],
                "summary": "Sync Offers",
                "parameters": [
                    {"type": "string", "description": "Acting user id", "name": "X-User-ID", "in": "header", "required": true},
                    {"description": "Sync parameters", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/offers.SyncRequest"}}
                ],
                "responses": {
                    "200": {"description": "Sync result", "schema": {"$ref": "#/definitions/offers.SyncResult"}},
                    "400": {"description": "Invalid parameters", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/offers/sync/plan": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["offers"],
                "summary": "Plan Offer Sync",
                "parameters": [
                    {"type": "string", "description": "Acting user id", "name": "X-User-ID", "in": "header", "required": true},
                    {"description": "Sync parameters", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/offers.SyncRequest"}}
                ],
                "responses": {
                    "200": {"description": "Plan", "schema": {"$ref": "#/definitions/reconcile.Plan"}}
                }
            }
        },
        "/offers/sync/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["offers"],
                "summary": "Get Sync Settings",
                "parameters": [
                    {"type": "string", "description": "Acting user id", "name": "X-User-ID", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "Settings", "schema": {"$ref": "#/definitions/models.SyncSettings"}},
                    "404": {"description": "Never synced", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/offers/{id}": {
            "delete": {
                "tags": ["offers"],
                "summary": "Delete Offer",
                "parameters": [
                    {"type": "string", "description": "Acting user id", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "integer", "description": "Offer id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "401": {"description": "Not the owner", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["offers"],
                "summary": "Edit Offer",
                "parameters": [
                    {"type": "string", "description": "Acting user id", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "integer", "description": "Offer id", "name": "id", "in": "path", "required": true},
                    {"description": "Offer", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/offers.EditOfferRequest"}}
                ],
                "responses": {
                    "200": {"description": "Offer", "schema": {"$ref": "#/definitions/models.Offer"}},
                    "401": {"description": "Not the owner", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register User",
                "parameters": [
                    {"description": "User", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Registered user", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "Invalid or taken username", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/users/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get Current User",
                "parameters": [
                    {"type": "string", "description": "Acting user id", "name": "X-User-ID", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "User", "schema": {"$ref": "#/definitions/models.User"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get User",
                "parameters": [
                    {"type": "string", "description": "User id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "User", "schema": {"$ref": "#/definitions/models.User"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "catalog.ImportResult": {
            "type": "object",
            "properties": {
                "items": {"type": "integer"},
                "prices": {"type": "integer"}
            }
        },
        "inventory.Entry": {
            "type": "object",
            "required": ["itemId"],
            "properties": {
                "amount": {"type": "integer", "minimum": 0},
                "itemId": {"type": "string"}
            }
        },
        "inventory.ReplaceRequest": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/inventory.Entry"}}
            }
        },
        "markets.UpdateRequest": {
            "type": "object",
            "properties": {
                "offerlistNote": {"type": "string", "maxLength": 200},
                "wishlistNote": {"type": "string", "maxLength": 200}
            }
        },
        "markets.WishRequest": {
            "type": "object",
            "required": ["itemId"],
            "properties": {
                "itemId": {"type": "string"}
            }
        },
        "models.Inventory": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.InventoryItem"}},
                "syncedAt": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "models.InventoryItem": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer"},
                "item": {"$ref": "#/definitions/models.Item"},
                "itemId": {"type": "string"}
            }
        },
        "models.Item": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "tagCharacter": {"type": "string"},
                "tagEvent": {"type": "string"},
                "tagRarity": {"type": "string"},
                "tagSlot": {"type": "string"},
                "tradeable": {"type": "boolean"}
            }
        },
        "models.Market": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "lastUpdated": {"type": "string"},
                "offerlistNote": {"type": "string"},
                "offers": {"type": "array", "items": {"$ref": "#/definitions/models.Offer"}},
                "userId": {"type": "string"},
                "wishes": {"type": "array", "items": {"$ref": "#/definitions/models.Wish"}},
                "wishlistNote": {"type": "string"}
            }
        },
        "models.Notification": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "id": {"type": "integer"},
                "sourceUser": {"$ref": "#/definitions/models.User"},
                "sourceUserId": {"type": "string"},
                "targetItem": {"$ref": "#/definitions/models.Item"},
                "targetItemId": {"type": "string"},
                "targetUserId": {"type": "string"}
            }
        },
        "models.Offer": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "id": {"type": "integer"},
                "item": {"$ref": "#/definitions/models.Item"},
                "itemId": {"type": "string"},
                "mainPrice": {"$ref": "#/definitions/models.Price"},
                "mainPriceAmount": {"type": "integer"},
                "mainPriceId": {"type": "integer"},
                "marketId": {"type": "integer"},
                "quantity": {"type": "integer"},
                "secondaryPrice": {"$ref": "#/definitions/models.Price"},
                "secondaryPriceAmount": {"type": "integer"},
                "secondaryPriceId": {"type": "integer"},
                "wantsBoth": {"type": "boolean"}
            }
        },
        "models.Price": {
            "type": "object",
            "properties": {
                "canBeMain": {"type": "boolean"},
                "forOffers": {"type": "boolean"},
                "forWishes": {"type": "boolean"},
                "id": {"type": "integer"},
                "orderId": {"type": "integer"},
                "priceKey": {"type": "string"},
                "withAmount": {"type": "boolean"}
            }
        },
        "models.SyncSettings": {
            "type": "object",
            "properties": {
                "ignoreList": {"type": "array", "items": {"type": "string"}},
                "ignoreWishlistItems": {"type": "boolean"},
                "keepItem": {"type": "integer"},
                "keepRecipe": {"type": "integer"},
                "mainPriceAmountItem": {"type": "integer"},
                "mainPriceAmountRecipe": {"type": "integer"},
                "mainPriceItemId": {"type": "integer"},
                "mainPriceRecipeId": {"type": "integer"},
                "mode": {"type": "string"},
                "rarity": {"type": "integer"},
                "removeNoneOnStock": {"type": "boolean"},
                "secondaryPriceAmountItem": {"type": "integer"},
                "secondaryPriceAmountRecipe": {"type": "integer"},
                "secondaryPriceItemId": {"type": "integer"},
                "secondaryPriceRecipeId": {"type": "integer"},
                "updatedAt": {"type": "string"},
                "wantsBothItem": {"type": "boolean"},
                "wantsBothRecipe": {"type": "boolean"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "id": {"type": "string"},
                "market": {"$ref": "#/definitions/models.Market"},
                "username": {"type": "string"}
            }
        },
        "models.Wish": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "id": {"type": "integer"},
                "item": {"$ref": "#/definitions/models.Item"},
                "itemId": {"type": "string"},
                "marketId": {"type": "integer"}
            }
        },
        "offers.CreateOfferRequest": {
            "type": "object",
            "required": ["itemId", "mainPriceId"],
            "properties": {
                "itemId": {"type": "string", "maxLength": 64},
                "mainPriceAmount": {"type": "integer", "minimum": 0},
                "mainPriceId": {"type": "integer"},
                "quantity": {"type": "integer", "minimum": 0},
                "secondaryPriceAmount": {"type": "integer", "minimum": 0},
                "secondaryPriceId": {"type": "integer"},
                "wantsBoth": {"type": "boolean"}
            }
        },
        "offers.DeleteAllResult": {
            "type": "object",
            "properties": {
                "deleted": {"type": "integer"}
            }
        },
        "offers.EditOfferRequest": {
            "type": "object",
            "required": ["mainPriceId"],
            "properties": {
                "mainPriceAmount": {"type": "integer", "minimum": 0},
                "mainPriceId": {"type": "integer"},
                "quantity": {"type": "integer", "minimum": 0},
                "secondaryPriceAmount": {"type": "integer", "minimum": 0},
                "secondaryPriceId": {"type": "integer"},
                "wantsBoth": {"type": "boolean"}
            }
        },
        "offers.SyncRequest": {
            "type": "object",
            "required": ["mainPriceItemId", "mainPriceRecipeId", "mode"],
            "properties": {
                "ignoreList": {"type": "array", "items": {"type": "string"}},
                "ignoreWishlistItems": {"type": "boolean"},
                "keepItem": {"type": "integer", "minimum": 0},
                "keepRecipe": {"type": "integer", "minimum": 0},
                "mainPriceAmountItem": {"type": "integer", "minimum": 0},
                "mainPriceAmountRecipe": {"type": "integer", "minimum": 0},
                "mainPriceItemId": {"type": "integer"},
                "mainPriceRecipeId": {"type": "integer"},
                "mode": {"type": "string", "enum": ["new", "existing", "both"]},
                "rarity": {"type": "integer", "maximum": 31, "minimum": 0},
                "removeNoneOnStock": {"type": "boolean"},
                "secondaryPriceAmountItem": {"type": "integer", "minimum": 0},
                "secondaryPriceAmountRecipe": {"type": "integer", "minimum": 0},
                "secondaryPriceItemId": {"type": "integer"},
                "secondaryPriceRecipeId": {"type": "integer"},
                "wantsBothItem": {"type": "boolean"},
                "wantsBothRecipe": {"type": "boolean"}
            }
        },
        "offers.SyncResult": {
            "type": "object",
            "properties": {
                "created": {"type": "array", "items": {"type": "integer"}},
                "deleted": {"type": "array", "items": {"type": "integer"}},
                "deletedOffers": {"type": "integer"},
                "newOffers": {"type": "integer"},
                "settingsSaved": {"type": "boolean"},
                "skippedItems": {"type": "integer"},
                "updated": {"type": "array", "items": {"$ref": "#/definitions/offers.UpdatedOffer"}},
                "updatedOffers": {"type": "integer"}
            }
        },
        "offers.UpdatedOffer": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "itemId": {"type": "string"},
                "newQuantity": {"type": "integer"},
                "oldQuantity": {"type": "integer"}
            }
        },
        "reconcile.Plan": {
            "type": "object",
            "properties": {
                "actions": {"type": "array", "items": {"type": "object"}},
                "create": {"type": "array", "items": {"$ref": "#/definitions/models.Offer"}},
                "delete": {"type": "array", "items": {"$ref": "#/definitions/models.Offer"}},
                "summary": {"$ref": "#/definitions/reconcile.PlanSummary"},
                "update": {"type": "array", "items": {"type": "object"}}
            }
        },
        "reconcile.PlanSummary": {
            "type": "object",
            "properties": {
                "created": {"type": "integer"},
                "deleted": {"type": "integer"},
                "skipped": {"type": "integer"},
                "updated": {"type": "integer"}
            }
        },
        "users.RegisterRequest": {
            "type": "object",
            "required": ["username"],
            "properties": {
                "username": {"type": "string", "maxLength": 64, "minLength": 3}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "WitchTrade API",
	Description:      "Marketplace backend for trading Witch It items.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
