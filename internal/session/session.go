package session

import "context"

// User is the signed-in viewer. A nil *User means the viewer is anonymous.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type userKey struct{}
type tokenKey struct{}

func WithUser(ctx context.Context, user *User, token string) context.Context {
	ctx = context.WithValue(ctx, userKey{}, user)
	return context.WithValue(ctx, tokenKey{}, token)
}

func FromContext(ctx context.Context) *User {
	if user, ok := ctx.Value(userKey{}).(*User); ok {
		return user
	}
	return nil
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
