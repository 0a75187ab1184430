package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// CreatedAtLayout is the format of User.CreatedAt (server local time)
const CreatedAtLayout = "2006-01-02 15:04:05"

// User represents a registered account
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProfilePicture string             `bson:"profile_picture" json:"profile_picture"`
	FirstName      string             `bson:"firstname" json:"firstname"`
	LastName       string             `bson:"lastname" json:"lastname"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password" json:"-"` // bcrypt hash, never exposed
	Admin          bool               `bson:"admin" json:"admin"`
	CreatedAt      string             `bson:"created_at" json:"created_at"`
}

// RegisterRequest carries the registration form fields
type RegisterRequest struct {
	FirstName string `json:"firstname" form:"firstname"`
	LastName  string `json:"lastname" form:"lastname"`
	Email     string `json:"email" form:"email"`
	Password  string `json:"password" form:"password"`
}

// LoginRequest carries the login form fields
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// UserSummary is the public view of a user returned on login
type UserSummary struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
