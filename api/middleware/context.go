package middleware

import (
	"foundercompass/internal/entity"

	"github.com/labstack/echo/v4"
)

const contextUserKey = "auth_user"

func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(contextUserKey, user)
}

func CurrentUser(c echo.Context) (*entity.User, bool) {
	value := c.Get(contextUserKey)
	user, ok := value.(*entity.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
