package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRegistrationInputValidate(t *testing.T) {
	in := RegistrationInput{
		Nombre:   "Juan",
		Apellido: "Pérez",
		Email:    "juan.perez@gmail.com",
		Telefono: "5551234567",
		Password: "12345678",
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in.Password = ""
	if err := in.Validate(); err == nil {
		t.Fatalf("expected error for missing password")
	}
}

func TestUserJSON_NeverExposesPasswordHash(t *testing.T) {
	user := User{
		ID:       primitive.NewObjectID(),
		Nombre:   "Juan",
		Apellido: "Pérez",
		Email:    "juan.perez@gmail.com",
		Password: "$2a$10$abcdefghijklmnopqrstuv",
	}
	out, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "$2a$") {
		t.Fatalf("password hash leaked into JSON: %s", out)
	}
}

func TestUserSummary(t *testing.T) {
	id := primitive.NewObjectID()
	user := User{ID: id, Nombre: "Juan", Apellido: "Pérez", Email: "j@x.com", Telefono: "555"}
	summary := user.Summary()
	if summary.ID != id.Hex() {
		t.Fatalf("expected id %s, got %s", id.Hex(), summary.ID)
	}
	if summary.Nombre != "Juan" || summary.Apellido != "Pérez" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
