package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"fintrack/internal/backend"
	"fintrack/internal/errors"
)

type BearerPassthroughTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *BearerPassthroughTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestBearerPassthroughTestSuite(t *testing.T) {
	suite.Run(t, new(BearerPassthroughTestSuite))
}

func (s *BearerPassthroughTestSuite) run(authHeader string) (*httptest.ResponseRecorder, string) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	var forwarded string
	handler := BearerPassthrough()(func(c echo.Context) error {
		token, err := backend.ContextTokenProvider{}.Token(c.Request().Context())
		if err == nil {
			forwarded = token
		}
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	return rec, forwarded
}

func (s *BearerPassthroughTestSuite) TestForwardsBearerToken() {
	rec, forwarded := s.run("Bearer abc.def.ghi")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("abc.def.ghi", forwarded)
}

func (s *BearerPassthroughTestSuite) TestLowercaseSchemeAccepted() {
	rec, forwarded := s.run("bearer opaque-token")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("opaque-token", forwarded)
}

func (s *BearerPassthroughTestSuite) TestMissingHeader() {
	rec, _ := s.run("")

	s.Equal(http.StatusUnauthorized, rec.Code)

	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(errors.AuthMissingToken), response.Error.Code)
}

func (s *BearerPassthroughTestSuite) TestMalformedHeader() {
	tests := []struct {
		name   string
		header string
	}{
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "no token", header: "Bearer "},
		{name: "scheme only", header: "Bearer"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec, _ := s.run(tt.header)
			s.Equal(http.StatusUnauthorized, rec.Code)

			var response errors.ErrorResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
			s.Equal(string(errors.AuthInvalidTokenFormat), response.Error.Code)
		})
	}
}
