// Package docs Cultural Sites Service API.
//
// REST backend for a map-based cultural-sites directory. Exposes CRUD
// endpoints for cultural sites imported from an OpenStreetMap GeoJSON
// export, user registration and login with JWT sessions, and per-user
// favorites.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer_token:
//
//	SecurityDefinitions:
//	bearer_token:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
