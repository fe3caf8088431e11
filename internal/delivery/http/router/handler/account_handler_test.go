package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appmiddleware "signon/internal/delivery/http/middleware"
	"signon/internal/delivery/http/validator"
	domainerrors "signon/internal/domain/errors"
	"signon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccountUsecase lets each test script the workflow outcome.
type stubAccountUsecase struct {
	signupFn func(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error)
	loginFn  func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
}

func (s *stubAccountUsecase) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	return s.signupFn(ctx, input)
}

func (s *stubAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginFn(ctx, input)
}

// newTestServer wires the handler into an echo instance with the same
// validator and error handler the real server uses.
func newTestServer(uc usecase.AccountUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = appmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAccountHandler(uc, logger)
	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)
	e.GET("/health", HealthCheck)

	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAccountHandler_Signup_Success(t *testing.T) {
	uc := &stubAccountUsecase{
		signupFn: func(_ context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
			assert.Equal(t, "alice", input.UserName)
			assert.Equal(t, "P@ss1", input.Password)
			assert.Equal(t, []string{"a@x.com"}, input.EmailAddresses)

			return &usecase.SignupOutput{
				UserName:       input.UserName,
				EmailAddresses: input.EmailAddresses,
			}, nil
		},
	}

	rec := postJSON(newTestServer(uc), "/signup",
		`{"userName":"alice","password":"P@ss1","emailAddress":["a@x.com"]}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"userName":"alice"`)
	assert.Contains(t, body, `"a@x.com"`)
	// Secret material never appears in a success payload.
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "P@ss1")
}

func TestAccountHandler_Signup_DuplicateUserName(t *testing.T) {
	uc := &stubAccountUsecase{
		signupFn: func(_ context.Context, _ *usecase.SignupInput) (*usecase.SignupOutput, error) {
			return nil, domainerrors.ErrDuplicateUser.WrapMessage("signup pre-check found existing user")
		},
	}

	rec := postJSON(newTestServer(uc), "/signup",
		`{"userName":"alice","password":"P@ss1","emailAddress":["a@x.com"]}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username is already in use.")
}

func TestAccountHandler_Signup_StoreFault(t *testing.T) {
	uc := &stubAccountUsecase{
		signupFn: func(_ context.Context, _ *usecase.SignupInput) (*usecase.SignupOutput, error) {
			return nil, domainerrors.NewStoreExecuteError(errors.New("connection refused"), "failed to create user")
		},
	}

	rec := postJSON(newTestServer(uc), "/signup",
		`{"userName":"alice","password":"P@ss1","emailAddress":["a@x.com"]}`)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Contains(t, rec.Body.String(), "STORE_EXECUTE_FAILED")
}

func TestAccountHandler_Signup_MissingFields(t *testing.T) {
	uc := &stubAccountUsecase{
		signupFn: func(_ context.Context, _ *usecase.SignupInput) (*usecase.SignupOutput, error) {
			t.Fatal("workflow must not run on invalid input")

			return nil, nil
		},
	}
	e := newTestServer(uc)

	for name, body := range map[string]string{
		"no userName":        `{"password":"P@ss1","emailAddress":["a@x.com"]}`,
		"no password":        `{"userName":"alice","emailAddress":["a@x.com"]}`,
		"no emailAddress":    `{"userName":"alice","password":"P@ss1"}`,
		"empty emailAddress": `{"userName":"alice","password":"P@ss1","emailAddress":[]}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := postJSON(e, "/signup", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
		})
	}
}

func TestAccountHandler_Signup_MalformedBody(t *testing.T) {
	uc := &stubAccountUsecase{
		signupFn: func(_ context.Context, _ *usecase.SignupInput) (*usecase.SignupOutput, error) {
			t.Fatal("workflow must not run on malformed input")

			return nil, nil
		},
	}

	rec := postJSON(newTestServer(uc), "/signup", `{"userName":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccountHandler_Login_Success(t *testing.T) {
	uc := &stubAccountUsecase{
		loginFn: func(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			assert.Equal(t, "alice", input.UserName)

			return &usecase.LoginOutput{UserName: input.UserName}, nil
		},
	}

	rec := postJSON(newTestServer(uc), "/login", `{"userName":"alice","password":"P@ss1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User logged in")
}

func TestAccountHandler_Login_InvalidCredentialsBranchesMatch(t *testing.T) {
	// Wrong password and unknown user must yield byte-identical denials.
	uc := &stubAccountUsecase{
		loginFn: func(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		},
	}
	e := newTestServer(uc)

	wrongPass := postJSON(e, "/login", `{"userName":"alice","password":"wrong"}`)
	unknownUser := postJSON(e, "/login", `{"userName":"bob","password":"anything"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPass.Body.String(), unknownUser.Body.String())
	assert.Contains(t, wrongPass.Body.String(), "Invalid username and/or password")
}

func TestAccountHandler_Login_MissingFields(t *testing.T) {
	uc := &stubAccountUsecase{
		loginFn: func(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
			t.Fatal("workflow must not run on invalid input")

			return nil, nil
		},
	}

	rec := postJSON(newTestServer(uc), "/login", `{"userName":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestHealthCheck(t *testing.T) {
	uc := &stubAccountUsecase{}
	e := newTestServer(uc)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
