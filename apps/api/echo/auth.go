package echoapi

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trackmycredits/backend/core"
	"github.com/trackmycredits/backend/core/user"
)

const (
	sessionCookieName   = "tmc_session"
	userTokenContextKey = "userToken"
)

// Claims represents the session claims transmitted via a signed JWT cookie.
type Claims struct {
	jwt.StandardClaims
	Email string `json:"email,omitempty"`
}

type sessionAuth struct {
	conf *core.Config
	key  []byte
}

func newSessionAuth(conf *core.Config) *sessionAuth {
	return &sessionAuth{
		conf: conf,
		key:  []byte(conf.SecretKey),
	}
}

// sessionMiddleware returns the session auth middleware. onError decides the
// surface-appropriate response (redirect vs JSON) for a missing/invalid session.
func (a *sessionAuth) sessionMiddleware(onError func(error, echo.Context) error) echo.MiddlewareFunc {
	return middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey:              a.key,
		SigningMethod:           middleware.AlgorithmHS256,
		ContextKey:              userTokenContextKey,
		TokenLookup:             "cookie:" + sessionCookieName,
		Claims:                  new(Claims),
		ErrorHandlerWithContext: onError,
	})
}

func (a *sessionAuth) GetUserClaims(usr user.User) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    a.conf.AppName,
			Subject:   usr.ID,
			ExpiresAt: now.Add(a.conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Email: usr.Email,
	}
}

// GenerateToken generates a signed JWT token string representing the session Claims.
func (a *sessionAuth) GenerateToken(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.GetSigningMethod(middleware.AlgorithmHS256), claims)
	ss, err := token.SignedString(a.key)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

func (a *sessionAuth) setSessionCookie(ctx echo.Context, token string) {
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(a.conf.Server.JWTExpirationDelta),
		HttpOnly: true,
		Secure:   !a.conf.Debug,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *sessionAuth) clearSessionCookie(ctx echo.Context) {
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(userTokenContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

// redirectToLogin is the browser-surface response to a missing session.
func redirectToLogin(_ error, ctx echo.Context) error {
	return ctx.Redirect(http.StatusSeeOther, "/login")
}

// jsonNotLoggedIn is the JSON-surface response to a missing session.
func jsonNotLoggedIn(_ error, ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, MutationResponse{Success: false, Error: "not logged in"})
}
