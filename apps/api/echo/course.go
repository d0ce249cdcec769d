package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trackmycredits/backend/core"
	"github.com/trackmycredits/backend/core/course"
)

type courseApi struct {
	svc      *course.Service
	validate *validator.Validate
}

func registerCourseAPI(app *echo.Echo, auth *sessionAuth, svc *course.Service, validate *validator.Validate) {
	api := courseApi{
		svc:      svc,
		validate: validate,
	}

	// browser surface: missing session redirects to /login
	web := app.Group("", auth.sessionMiddleware(redirectToLogin))
	web.GET("/personalized", api.personalized)
	web.POST("/add_course", api.addCourse)

	// JSON surface: missing session answers in the response contract
	jsn := app.Group("", auth.sessionMiddleware(jsonNotLoggedIn))
	jsn.POST("/delete_course", api.deleteCourse)
}

// Handlers

func (api *courseApi) personalized(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	report, err := api.svc.Progress(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "computing progress")
	}

	return ctx.JSON(http.StatusOK, PersonalizedResponse{Email: claims.Email, Report: report})
}

func (api *courseApi) addCourse(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data course.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return core.NewValidationError(nil, core.FieldError{Field: "course_credits", Error: "invalid value"})
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	crs, err := api.svc.Add(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "adding course")
	}

	return ctx.JSON(http.StatusCreated, crs)
}

func (api *courseApi) deleteCourse(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data DeleteCourseRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to DeleteCourseRequest")
	}

	err = api.svc.Delete(ctx.Request().Context(), claims.Subject, data.Category, data.CourseName)
	if errors.Cause(err) == course.ErrNotFound {
		return ctx.JSON(http.StatusOK, MutationResponse{Success: false, Error: course.ErrNotFound.Error()})
	}
	if err != nil {
		return errors.Wrap(err, "deleting course")
	}

	return ctx.JSON(http.StatusOK, MutationResponse{Success: true})
}

type (
	PersonalizedResponse struct {
		Email string `json:"email"`
		course.Report
	}

	DeleteCourseRequest struct {
		Category   string `json:"category"`
		CourseName string `json:"course_name"`
	}

	MutationResponse struct {
		Success bool   `json:"success"`
		Error   string `json:"error,omitempty"`
	}
)
