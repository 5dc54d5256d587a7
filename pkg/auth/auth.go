package auth

import (
	"context"

	"github.com/pkg/errors"
)

const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"
	XUserIDHeader   = "X-User-Id"

	RoleAdmin      = "Admin"
	RoleSuperAdmin = "Super Admin"
)

type ctxKey int

const (
	userNameKey ctxKey = iota + 1
	userRoleKey
	userIDKey
)

func SetAuthContext(ctx context.Context, userName, userRole string) context.Context {
	ctx = context.WithValue(ctx, userNameKey, userName)
	return context.WithValue(ctx, userRoleKey, userRole)
}

func SetUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func GetUserName(ctx context.Context) (string, error) {
	name, ok := ctx.Value(userNameKey).(string)
	if !ok || name == "" {
		return "", errors.New("user name is empty")
	}
	return name, nil
}

// UserID returns the borrower id forwarded by the kiosk/front-end, if any.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok && id > 0
}

func IsAdmin(ctx context.Context) bool {
	role, _ := ctx.Value(userRoleKey).(string)
	return role == RoleAdmin || role == RoleSuperAdmin
}

// Actor is the name recorded on audit rows; falls back to "system".
func Actor(ctx context.Context) string {
	if name, err := GetUserName(ctx); err == nil {
		return name
	}
	return "system"
}
