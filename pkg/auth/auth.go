package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
)

// JWTKey signs session tokens. Overridden from config at startup.
var JWTKey = []byte("openbookmanager-dev-key")

type Claims struct {
	Profile struct {
		Username string `json:"username"`
	} `json:"profile"`
	jwt.RegisteredClaims
}

type principalKey struct{}

// Principal is the authenticated user of the current request. The original
// application read this from ambient session state; here it travels
// explicitly with the request context.
type Principal struct {
	Username string
}

func SetAuthContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, principalKey{}, Principal{Username: username})
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
