// Package auth issues and verifies the HS256 access tokens that carry a
// caller's id, role and email through the REST API.
package auth
