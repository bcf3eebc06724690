package model

// Package model contains domain models/data structures shared across layers.
// Recipe and user documents are intentionally schema-less (bson.M): callers
// control their shape and the store persists them as-is.
