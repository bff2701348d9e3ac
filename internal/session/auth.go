package session

import "github.com/golang-jwt/jwt/v5"

type Authenticator interface {
	GenerateToken(user User) (string, error)
	ValidateToken(token string) (*jwt.Token, error)
	UserFromToken(token string) (*User, error)
}
