package jwt

import (
	"time"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	// GenerateAccessToken issues an HS256 access token carrying the caller
	// identity claims consumed by the auth middleware.
	GenerateAccessToken(userID, employeeCode string, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessExpiration string
	tokenAuth        *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessExpiration string) Service {
	return &JWTService{
		accessExpiration: accessExpiration,
		tokenAuth:        jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID, employeeCode string, role user.Role) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.accessExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id":       userID,
		"employee_code": employeeCode,
		"role":          string(role),
		"type":          "access",
		"exp":           expiresAt,
	})
	return tokenString, expiresAt, err
}
