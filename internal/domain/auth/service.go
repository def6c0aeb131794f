package auth

import "context"

// AuthService issues identities. Everything past the login boundary trusts
// the Identity extracted from the token.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
}
