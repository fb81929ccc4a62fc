// Package model provides data types for pb-spec: the fixed skill catalog
// and the identifiers of the supported platforms.
package model
