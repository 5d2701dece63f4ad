package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const uidCookie = "GARDEN_UID"

// DevLogin assigns a stable user id via cookie. Real identity lives in
// the hosted auth provider; this mirrors it for local development.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(uidCookie); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					c.SetCookie(&http.Cookie{Name: uidCookie, Value: q, Path: "/"})
					uid = q
				} else {
					uid = "U_DEV_DEFAULT"
					c.SetCookie(&http.Cookie{Name: uidCookie, Value: uid, Path: "/"})
				}
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
