package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trackmycredits/backend/core"
	"github.com/trackmycredits/backend/core/user"
)

type userApi struct {
	svc      *user.Service
	auth     *sessionAuth
	validate *validator.Validate
}

func registerUserAPI(app *echo.Echo, auth *sessionAuth, svc *user.Service, validate *validator.Validate) {
	api := userApi{
		svc:      svc,
		auth:     auth,
		validate: validate,
	}

	// TODO: rate limit `/login` & `/register`
	app.GET("/register", api.registerForm)
	app.POST("/register", api.register)
	app.GET("/login", api.loginForm)
	app.POST("/login", api.login)
	app.GET("/logout", api.logout)
}

// Handlers

func (api *userApi) registerForm(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		"detail": "POST {email, password, password_confirm} to register",
	})
}

func (api *userApi) register(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	rctx := ctx.Request().Context()
	if err := data.Validate(rctx, api.validate, api.svc); err != nil {
		return err
	}

	usr, err := api.svc.Register(rctx, data)
	if err != nil {
		return errors.Wrap(err, "registering user")
	}

	return ctx.JSON(http.StatusCreated, usr)
}

func (api *userApi) loginForm(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		"detail": "POST {email, password} to log in",
	})
}

func (api *userApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := api.svc.Authenticate(ctx.Request().Context(), data.Email, data.Password)
	if err != nil {
		if errors.Cause(err) == user.ErrAuthenticationFailed {
			// no distinction between unknown email and wrong password
			return errAuthenticationFailed
		}
		return errors.Wrap(err, "authenticating")
	}

	token, err := api.auth.GenerateToken(api.auth.GetUserClaims(usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	api.auth.setSessionCookie(ctx, token)

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

func (api *userApi) logout(ctx echo.Context) error {
	api.auth.clearSessionCookie(ctx)
	return ctx.Redirect(http.StatusSeeOther, "/")
}

type (
	LoginRequest struct {
		Email    string `json:"email" form:"email" validate:"required"`
		Password string `json:"password" form:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}
)

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	return validate.Struct(lr)
}
