package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"medstat/internal/pkg/constants"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	httpErrorHandler(err, c)
	return rec
}

func TestHTTPErrorHandler_CodedError(t *testing.T) {
	rec := recordError(t, constants.ErrDBNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found")
}

func TestHTTPErrorHandler_WrappedCodedError(t *testing.T) {
	wrapped := fmt.Errorf("hospital summary: %w", constants.ErrDBNotFound)
	rec := recordError(t, wrapped)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "hospital summary")
}

func TestHTTPErrorHandler_UnknownErrorIs500(t *testing.T) {
	rec := recordError(t, errors.New("connection refused"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
