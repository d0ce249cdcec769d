package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/trackmycredits/backend/apps/api/echo"
	"github.com/trackmycredits/backend/core"
	"github.com/trackmycredits/backend/core/contact"
	"github.com/trackmycredits/backend/core/course"
	"github.com/trackmycredits/backend/core/user"
	emailsvc "github.com/trackmycredits/backend/services/email"
	inmemdb "github.com/trackmycredits/backend/storage/database/inmem"
)

var (
	usrRepo    user.Repository
	courseRepo course.Repository
)

func setup(t *testing.T) *echoapi.Server {
	conf := &core.Config{
		TestMode:        true,
		Env:             "TEST",
		AppName:         "Track My Credits",
		SecretKey:       "s3cret-t3st-k3y",
		FrontendBaseURL: "http://localhost:3000",
		DefaultFromEmail: mail.Address{
			Name:    "Track My Credits",
			Address: "noreply@localhost",
		},
		Server: core.ServerConfig{
			JWTExpirationDelta: 1 * time.Hour,
		},
	}

	// set up DB & repos
	db := inmemdb.NewDB()
	usrRepo = inmemdb.NewUserRepository(db)
	courseRepo = inmemdb.NewCourseRepository(db)

	// set up services
	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	usrSvc := user.NewService(usrRepo, mailSvc, conf)
	courseSvc := course.NewService(courseRepo)
	contactSvc := contact.NewService(inmemdb.NewContactRepository(db))

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	course.InitValidators(validate, translator)

	core.ParseEmailTemplates(conf, nopLogger{})

	// set up server
	return echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     nopLogger{},
			UserSvc:    usrSvc,
			CourseSvc:  courseSvc,
			ContactSvc: contactSvc,
			Validate:   validate,
			Translator: translator,
		},
	)
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name         string
	method       string
	path         string
	body         []byte
	session      *http.Cookie
	wantCode     int
	wantData     []byte
	wantLocation string
	extra        interface{}
}

func newAuthRequest(method, path string, session *http.Cookie, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if session != nil {
		req.AddCookie(session)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, nil, data...)
}

// logIn authenticates usr via the login endpoint and returns the session cookie.
func logIn(t *testing.T, app *echoapi.Server, email, pwd string) *http.Cookie {
	body := marchallObj(t, echoapi.LoginRequest{Email: email, Password: pwd})
	req, rec := newRequest(http.MethodPost, "/login", body)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("logIn() failed: code = %v; body = %s", rec.Code, rec.Body.String())
	}
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "tmc_session" {
			return cookie
		}
	}
	t.Fatal("logIn() failed: no session cookie set")
	return nil
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantLocation != "" {
		if loc := rec.Header().Get("Location"); loc != tt.wantLocation {
			t.Errorf("failed! location = %v; wantLocation %v", loc, tt.wantLocation)
		}
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
