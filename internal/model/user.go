package model

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID       string
	Name     string
	Email    string
	Password string
}

// Profile - публичная часть пользователя.
// Signature хранит имя выигранного приза, nil - пользователь ещё не крутил колесо
type Profile struct {
	UserID    string
	Name      string
	Role      string
	Signature *string
}

type UserClaims struct {
	jwt.RegisteredClaims
}

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
