package services

import (
	"errors"
	"testing"

	"github.com/IsMarshev/we-site/dto"
	"github.com/IsMarshev/we-site/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	regist := &RegistService{DB: db}
	auth := &AuthService{DB: db}

	user, err := regist.RegisterUser(dto.RegisterUserDTO{
		Username: "traveler",
		Email:    "traveler@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != "user" {
		t.Fatalf("new user role = %q, want user", user.Role)
	}

	token, err := auth.AuthenticateUser(dto.LoginDTO{Username: "traveler", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token.TokenType != "bearer" {
		t.Fatalf("token_type = %q", token.TokenType)
	}

	// Выданный токен разрешается обратно в того же пользователя
	subject, err := utils.ValidateToken(token.AccessToken)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if subject != "traveler" {
		t.Fatalf("token subject = %q, want traveler", subject)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	db := newTestDB(t)
	regist := &RegistService{DB: db}

	input := dto.RegisterUserDTO{
		Username: "traveler",
		Email:    "traveler@example.com",
		Password: "secret123",
	}
	if _, err := regist.RegisterUser(input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := regist.RegisterUser(input); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate username must conflict, got %v", err)
	}

	// Дубль только по email тоже конфликт
	input.Username = "someone-else"
	if _, err := regist.RegisterUser(input); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate email must conflict, got %v", err)
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	db := newTestDB(t)
	regist := &RegistService{DB: db}
	auth := &AuthService{DB: db}

	if _, err := regist.RegisterUser(dto.RegisterUserDTO{
		Username: "traveler",
		Email:    "traveler@example.com",
		Password: "secret123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPassword := auth.AuthenticateUser(dto.LoginDTO{Username: "traveler", Password: "wrong"})
	if !errors.Is(wrongPassword, ErrUnauthenticated) {
		t.Fatalf("wrong password: %v", wrongPassword)
	}
	_, unknownUser := auth.AuthenticateUser(dto.LoginDTO{Username: "ghost", Password: "wrong"})
	if !errors.Is(unknownUser, ErrUnauthenticated) {
		t.Fatalf("unknown user: %v", unknownUser)
	}

	// Сообщение не раскрывает, существует ли аккаунт
	if wrongPassword.Error() != unknownUser.Error() {
		t.Fatalf("error messages differ: %q vs %q", wrongPassword, unknownUser)
	}
}
