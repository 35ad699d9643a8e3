package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID       int64
	Name     string
	Login    string
	Password string
	Balance  int64
}

type UserClaims struct {
	jwt.RegisteredClaims
}
