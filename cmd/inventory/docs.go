package main

// @title Inventory Information Service API
// @version 1.0
// @description Inventory items, physical attributes, cached inventory levels and risk, shipping and storage analysis.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/inventory-information
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/tair/inventory-information/blob/main/LICENSE

// @host localhost:8082
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. Required on write endpoints when JWT_SECRET is set.

// @tag.name Inventory
// @tag.description Inventory item endpoints

// @tag.name Attributes
// @tag.description Dimensions, weight and packaging of items

// @tag.name Levels
// @tag.description Inventory levels per location and their change history

// @tag.name Risk
// @tag.description Risk assessment and handling requirements

// @tag.name Shipping
// @tag.description Shipment arrangement, loading sequence and cost estimates

// @tag.name Storage
// @tag.description Storage optimization and pallet arrangement

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
