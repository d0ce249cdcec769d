package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/trackmycredits/backend/apps/api/echo"
	"github.com/trackmycredits/backend/core/course"
	testutil "github.com/trackmycredits/backend/tests"
)

func Test_courseApi_personalized(t *testing.T) {
	app := setup(t)

	usr := testutil.CreateUser(t, usrRepo, "hero@test.cd", "S3cur3-Pass!", true)
	session := logIn(t, app, usr.Email, "S3cur3-Pass!")

	t.Run("no session", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/personalized")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusSeeOther, wantLocation: "/login"}, rec)
	})

	t.Run("no courses", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/personalized", session)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp echoapi.PersonalizedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, usr.Email, resp.Email)
		require.Len(t, resp.Categories, 8)

		wantCodes := []string{"ec", "ee", "fc", "ho", "mi", "pc", "pe", "ue"}
		for i, cat := range resp.Categories {
			assert.Equal(t, wantCodes[i], cat.Code)
			assert.Zero(t, cat.Earned)
			assert.Equal(t, cat.TotalRequired, cat.Remaining)
			assert.Zero(t, cat.Percent)
			assert.Empty(t, cat.Courses)
		}
		assert.Zero(t, resp.TotalEarned)
		assert.Equal(t, 200, resp.TotalRemaining)
		assert.Zero(t, resp.PercentComplete)
	})

	t.Run("with courses", func(t *testing.T) {
		testutil.CreateCourse(t, courseRepo, usr.ID, "fc", "Algorithms", 4, "A")
		testutil.CreateCourse(t, courseRepo, usr.ID, "fc", "Operating Systems", 4, "B+")
		testutil.CreateCourse(t, courseRepo, usr.ID, "pc", "Compilers", 6, "")

		req, rec := newAuthRequest(http.MethodGet, "/personalized", session)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp echoapi.PersonalizedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Categories, 8)

		var fc, pc course.CategoryReport
		for _, cat := range resp.Categories {
			switch cat.Code {
			case "fc":
				fc = cat
			case "pc":
				pc = cat
			}
		}

		assert.Equal(t, 8, fc.Earned)
		assert.Equal(t, 36, fc.Remaining)
		assert.Equal(t, 18, fc.Percent)
		assert.Len(t, fc.Courses, 2)

		assert.Equal(t, 6, pc.Earned)
		assert.Equal(t, 46, pc.Remaining)
		assert.Equal(t, 12, pc.Percent)
		assert.Len(t, pc.Courses, 1)

		assert.Equal(t, 14, resp.TotalEarned)
		assert.Equal(t, 186, resp.TotalRemaining)
		assert.Equal(t, 7, resp.PercentComplete)
	})

	t.Run("other users' courses excluded", func(t *testing.T) {
		other := testutil.CreateUser(t, usrRepo, "other@test.cd", "S3cur3-Pass!", true)
		testutil.CreateCourse(t, courseRepo, other.ID, "mi", "Sneaky", 20, "")

		req, rec := newAuthRequest(http.MethodGet, "/personalized", session)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp echoapi.PersonalizedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 14, resp.TotalEarned)
	})
}

func Test_courseApi_addCourse(t *testing.T) {
	app := setup(t)

	usr := testutil.CreateUser(t, usrRepo, "hero@test.cd", "S3cur3-Pass!", true)
	session := logIn(t, app, usr.Email, "S3cur3-Pass!")

	type courseForm struct {
		Category string `json:"category_code"`
		Name     string `json:"course_name"`
		Credits  int    `json:"course_credits"`
		Grade    string `json:"course_grade,omitempty"`
	}
	type fieldErrs map[string]string

	tests := []httpTest{
		{name: "no session", wantCode: http.StatusSeeOther, wantLocation: "/login"},
		{
			name: "required fields", session: session, wantCode: http.StatusBadRequest, body: []byte(`{}`),
			wantData: marchallObj(t, fieldErrs{"category_code": "this field is required", "course_name": "this field is required"}),
		},
		{
			name: "unknown category", session: session, wantCode: http.StatusBadRequest,
			body:     marchallObj(t, courseForm{Category: "lol", Name: "Algorithms", Credits: 4}),
			wantData: marchallObj(t, fieldErrs{"category_code": "unknown credit category"}),
		},
		{
			name: "negative credits", session: session, wantCode: http.StatusBadRequest,
			body:     marchallObj(t, courseForm{Category: "fc", Name: "Algorithms", Credits: -1}),
			wantData: marchallObj(t, fieldErrs{"course_credits": "credits cannot be negative"}),
		},
		{
			name: "malformed credits", session: session, wantCode: http.StatusBadRequest,
			body:     []byte(`{"category_code":"fc","course_name":"Algorithms","course_credits":"four"}`),
			wantData: marchallObj(t, fieldErrs{"course_credits": "invalid value"}),
		},
		{
			name: "course added", session: session, wantCode: http.StatusCreated,
			body: marchallObj(t, courseForm{Category: "FC ", Name: " Algorithms ", Credits: 4, Grade: "A"}),
		},
		{
			name: "zero credits allowed", session: session, wantCode: http.StatusCreated,
			body: marchallObj(t, courseForm{Category: "ho", Name: "Seminar", Credits: 0}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/add_course"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.session, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantCode == http.StatusCreated {
				require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

				var crs course.Course
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &crs))
				assert.NotZero(t, crs.ID)

				stored, err := courseRepo.QueryCoursesByUser(context.Background(), usr.ID)
				require.NoError(t, err)
				last := stored[len(stored)-1]
				assert.Equal(t, crs.ID, last.ID)
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}

	// category & name are cleaned before storage
	stored, err := courseRepo.QueryCoursesByUser(context.Background(), usr.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "fc", stored[0].Category)
	assert.Equal(t, "Algorithms", stored[0].Name)
	assert.Equal(t, "A", stored[0].Grade)
}

func Test_courseApi_deleteCourse(t *testing.T) {
	app := setup(t)

	usr := testutil.CreateUser(t, usrRepo, "hero@test.cd", "S3cur3-Pass!", true)
	session := logIn(t, app, usr.Email, "S3cur3-Pass!")

	first := testutil.CreateCourse(t, courseRepo, usr.ID, "fc", "Algorithms", 4, "A")
	second := testutil.CreateCourse(t, courseRepo, usr.ID, "fc", "Algorithms", 4, "B") // duplicate entry
	other := testutil.CreateUser(t, usrRepo, "other@test.cd", "S3cur3-Pass!", true)
	testutil.CreateCourse(t, courseRepo, other.ID, "fc", "Algorithms", 4, "")

	tests := []httpTest{
		{
			name: "no session", wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, echoapi.MutationResponse{Success: false, Error: "not logged in"}),
		},
		{
			name: "course not found", session: session, wantCode: http.StatusOK,
			body:     marchallObj(t, echoapi.DeleteCourseRequest{Category: "fc", CourseName: "lol"}),
			wantData: marchallObj(t, echoapi.MutationResponse{Success: false, Error: "course not found"}),
		},
		{
			name: "first match deleted", session: session, wantCode: http.StatusOK,
			body:     marchallObj(t, echoapi.DeleteCourseRequest{Category: "fc", CourseName: "Algorithms"}),
			wantData: marchallObj(t, echoapi.MutationResponse{Success: true}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/delete_course"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.session, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	// the lowest ID goes first; the duplicate survives
	stored, err := courseRepo.QueryCoursesByUser(context.Background(), usr.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, second.ID, stored[0].ID)
	assert.NotEqual(t, first.ID, stored[0].ID)

	// the other user's identical course is untouched
	otherStored, err := courseRepo.QueryCoursesByUser(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Len(t, otherStored, 1)
}
