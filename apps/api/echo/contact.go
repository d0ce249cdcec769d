package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trackmycredits/backend/core/contact"
)

type contactApi struct {
	svc      *contact.Service
	validate *validator.Validate
}

func registerContactAPI(app *echo.Echo, svc *contact.Service, validate *validator.Validate) {
	api := contactApi{
		svc:      svc,
		validate: validate,
	}

	app.GET("/contact", api.contactForm)
	app.POST("/contact", api.submit)
}

func (api *contactApi) contactForm(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		"detail": "POST {name, batch, branch, email, contact, feedback} to submit feedback",
	})
}

func (api *contactApi) submit(ctx echo.Context) error {
	var data contact.NewMessage
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMessage")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if _, err := api.svc.Submit(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "submitting feedback")
	}

	return ctx.JSON(http.StatusCreated, SuccessResponse{Success: "Feedback submitted successfully!"})
}
