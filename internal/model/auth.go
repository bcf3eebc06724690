package model

import "go.mongodb.org/mongo-driver/bson"

// LoginResult carries a signed token and the authenticated user document.
// User is the stored document with the password hash stripped out.
type LoginResult struct {
	Token string `json:"token"`
	User  bson.M `json:"loginuser"`
}
