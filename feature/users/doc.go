// Package users registers marketplace users. Every user owns exactly one
// market, created together with the user.
package users
