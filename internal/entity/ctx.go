package entity

import (
	"context"
)

type CtxKey int

const (
	CtxKeyUser CtxKey = iota
	CtxKeyJWT
)

// CtxWithUser attaches the acting principal to ctx. Every service call reads
// the principal from here, never from process-wide state.
func CtxWithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, CtxKeyUser, user)
}

// UserFromCtx returns user from context or ErrUnauthenticated if user is not found.
func UserFromCtx(ctx context.Context) (User, error) {
	user, ok := ctx.Value(CtxKeyUser).(User)
	if !ok || user.ID.IsNil() {
		return User{}, ErrUnauthenticated
	}

	return user, nil
}

func CtxWithJWT(ctx context.Context, jwt string) context.Context {
	return context.WithValue(ctx, CtxKeyJWT, jwt)
}

// JWTFromCtx returns JWT from context or empty string if JWT is not found.
func JWTFromCtx(ctx context.Context) string {
	jwt, _ := ctx.Value(CtxKeyJWT).(string)
	return jwt
}
