package tests

import (
	"net/http"
	"testing"

	echoapi "github.com/trackmycredits/backend/apps/api/echo"
	"github.com/trackmycredits/backend/core/contact"
)

func Test_contactApi_submit(t *testing.T) {
	app := setup(t)

	successData := marchallObj(t, echoapi.SuccessResponse{Success: "Feedback submitted successfully!"})

	tests := []httpTest{
		{
			name: "required fields", wantCode: http.StatusBadRequest, body: []byte(`{}`),
			wantData: marchallObj(t, map[string]string{"feedback": "this field is required"}),
		},
		{
			name: "invalid email", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, contact.NewMessage{Email: "lol", Feedback: "Nice app!"}),
			wantData: marchallObj(t, map[string]string{"email": "email must be a valid email address"}),
		},
		{
			name: "feedback only", wantCode: http.StatusCreated,
			body:     marchallObj(t, contact.NewMessage{Feedback: "Nice app!"}),
			wantData: successData,
		},
		{
			name: "all fields", wantCode: http.StatusCreated,
			body: marchallObj(t, contact.NewMessage{
				Name:     "Hero",
				Batch:    "2023",
				Branch:   "CSE",
				Email:    "hero@test.cd",
				Contact:  "+243123456789",
				Feedback: "Add dark mode please.",
			}),
			wantData: successData,
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/contact"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
