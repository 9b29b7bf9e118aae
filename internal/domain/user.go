package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account. Password always holds a bcrypt hash,
// never plaintext, and is excluded from JSON output.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nombre    string             `bson:"nombre" json:"nombre"`
	Apellido  string             `bson:"apellido" json:"apellido"`
	Email     string             `bson:"email" json:"email"`
	Telefono  string             `bson:"telefono" json:"telefono"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// UserSummary is the public view of a user returned by login.
type UserSummary struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// Summary builds the public view of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID.Hex(),
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Email:    u.Email,
		Telefono: u.Telefono,
	}
}

// RegistrationInput carries the fields accepted at registration.
type RegistrationInput struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Password string `json:"password"`
}

// Validate checks the fields required at registration time.
func (in *RegistrationInput) Validate() error {
	switch {
	case in.Nombre == "":
		return &ValidationError{Field: "nombre", Message: "es obligatorio"}
	case in.Apellido == "":
		return &ValidationError{Field: "apellido", Message: "es obligatorio"}
	case in.Email == "":
		return &ValidationError{Field: "email", Message: "es obligatorio"}
	case in.Telefono == "":
		return &ValidationError{Field: "telefono", Message: "es obligatorio"}
	case in.Password == "":
		return &ValidationError{Field: "password", Message: "es obligatorio"}
	}
	return nil
}

// UserFields is the allow-list of searchable user fields. The password hash
// and creation timestamp are deliberately not queryable.
var UserFields = FieldSet{
	"nombre":   {Column: "nombre"},
	"apellido": {Column: "apellido"},
	"email":    {Column: "email"},
	"telefono": {Column: "telefono"},
}

// UserUpdateFields is the allow-list applied to update bodies. The password
// is writable but the service re-hashes it before it reaches the store;
// createdAt stays immutable.
var UserUpdateFields = merged(UserFields, FieldSet{
	"password": {Column: "password"},
})
