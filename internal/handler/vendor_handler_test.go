package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vendorhub/internal/auth"
	apperrors "vendorhub/internal/errors"
	"vendorhub/internal/model"
	"vendorhub/internal/response"
	"vendorhub/internal/service"
)

const testTokenHeader = "x-access-token"

// MockVendorService is a mock implementation of service.VendorService.
type MockVendorService struct {
	mock.Mock
}

func (m *MockVendorService) Add(ctx context.Context, in service.VendorInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockVendorService) Update(ctx context.Context, in service.VendorInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockVendorService) List(ctx context.Context, skip, limit int) ([]model.Vendor, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vendor), args.Error(1)
}

// MockTokenValidator is a mock implementation of auth.TokenValidator.
type MockTokenValidator struct {
	mock.Mock
}

func (m *MockTokenValidator) Validate(ctx context.Context, token string) (*auth.Result, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Result), args.Error(1)
}

func newRequest(method, target, body, token string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(testTokenHeader, token)
	}
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestVendorHandler_MissingToken(t *testing.T) {
	vendors := new(MockVendorService)
	tokens := new(MockTokenValidator)
	h := NewVendorHandler(vendors, tokens, testTokenHeader)

	for _, run := range []func(echo.Context) error{h.Add, h.Update, h.List} {
		rec, c := newRequest(http.MethodPost, "/", `{"name":"Acme"}`, "")
		require.NoError(t, run(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, response.CodeFailure, env.Code)
		assert.Equal(t, response.MsgInvalidToken, env.Message)
	}

	// Nothing downstream may run without a token.
	tokens.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
	vendors.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	vendors.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	vendors.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestVendorHandler_RejectedToken(t *testing.T) {
	vendors := new(MockVendorService)
	tokens := new(MockTokenValidator)
	tokens.On("Validate", mock.Anything, "bad").Return(nil, errors.New("expired"))
	h := NewVendorHandler(vendors, tokens, testTokenHeader)

	rec, c := newRequest(http.MethodPost, "/", `{"name":"Acme"}`, "bad")
	require.NoError(t, h.Add(c))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, response.CodeFailure, env.Code)
	assert.Equal(t, response.MsgInvalidToken, env.Message)
	vendors.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestVendorHandler_RefreshedTokenEchoedOnResponse(t *testing.T) {
	vendors := new(MockVendorService)
	vendors.On("Add", mock.Anything, mock.Anything).Return(nil)
	tokens := new(MockTokenValidator)
	tokens.On("Validate", mock.Anything, "old").Return(&auth.Result{RefreshedToken: "fresh"}, nil)
	h := NewVendorHandler(vendors, tokens, testTokenHeader)

	rec, c := newRequest(http.MethodPost, "/", `{"name":"Acme","image":"x"}`, "old")
	require.NoError(t, h.Add(c))

	assert.Equal(t, "fresh", rec.Header().Get(testTokenHeader))
}

func TestVendorHandler_AddSuccess(t *testing.T) {
	vendors := new(MockVendorService)
	vendors.On("Add", mock.Anything, mock.MatchedBy(func(in service.VendorInput) bool {
		return in.Name == "Acme" && in.Image == "data:image/png;base64,AAAA" &&
			in.Email != nil && *in.Email == "a@b.co"
	})).Return(nil)
	tokens := new(MockTokenValidator)
	tokens.On("Validate", mock.Anything, "tok").Return(&auth.Result{}, nil)
	h := NewVendorHandler(vendors, tokens, testTokenHeader)

	body := `{"name":"Acme","image":"data:image/png;base64,AAAA","email":"a@b.co"}`
	rec, c := newRequest(http.MethodPost, "/", body, "tok")
	require.NoError(t, h.Add(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, response.CodeSuccess, env.Code)
	assert.Equal(t, response.MsgVendorAdded, env.Message)
	vendors.AssertExpectations(t)
}

func TestVendorHandler_AddDuplicateEmail(t *testing.T) {
	vendors := new(MockVendorService)
	vendors.On("Add", mock.Anything, mock.Anything).Return(apperrors.ErrEmailAlreadyRegistered)
	tokens := new(MockTokenValidator)
	tokens.On("Validate", mock.Anything, "tok").Return(&auth.Result{}, nil)
	h := NewVendorHandler(vendors, tokens, testTokenHeader)

	rec, c := newRequest(http.MethodPost, "/", `{"name":"Acme","image":"x","email":"a@b.co"}`, "tok")
	require.NoError(t, h.Add(c))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, response.CodeFailure, env.Code)
	assert.Equal(t, response.MsgEmailAlreadyRegistered, env.Message)
}

func TestVendorHandler_AddValidationError(t *testing.T) {
	vendors := new(MockVendorService)
	vendors.On("Add", mock.Anything, mock.Anything).Return(apperrors.ErrInvalidName)
	tokens := new(MockTokenValidator)
	tokens.On("Validate", mock.Anything, "tok").Return(&auth.Result{}, nil)
	h := NewVendorHandler(vendors, tokens, testTokenHeader)

	rec, c := newRequest(http.MethodPost, "/", `{"name":"Acme1","image":"x"}`, "tok")
	require.NoError(t, h.Add(c))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, response.CodeFailure, env.Code)
	assert.Equal(t, response.MsgInvalidName, env.Message)
}

func TestVendorHandler_UpdateReusesAddedMessage(t *testing.T) {
	vendors := new(MockVendorService)
	vendors.On("Update", mock.Anything, mock.Anything).Return(nil)
	tokens := new(MockTokenValidator)
	tokens.On("Validate", mock.Anything, "tok").Return(&auth.Result{}, nil)
	h := NewVendorHandler(vendors, tokens, testTokenHeader)

	rec, c := newRequest(http.MethodPut, "/", `{"name":"Acme","image":"x","email":"a@b.co"}`, "tok")
	require.NoError(t, h.Update(c))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, response.CodeSuccess, env.Code)
	assert.Equal(t, response.MsgVendorAdded, env.Message)
}

func TestVendorHandler_UpdateStoreFailureKeepsCodeZero(t *testing.T) {
	vendors := new(MockVendorService)
	vendors.On("Update", mock.Anything, mock.Anything).Return(apperrors.ErrUpdateFailed)
	tokens := new(MockTokenValidator)
	tokens.On("Validate", mock.Anything, "tok").Return(&auth.Result{}, nil)
	h := NewVendorHandler(vendors, tokens, testTokenHeader)

	rec, c := newRequest(http.MethodPut, "/", `{"name":"Acme","image":"x","email":"a@b.co"}`, "tok")
	require.NoError(t, h.Update(c))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, response.CodeSuccess, env.Code)
	assert.Equal(t, response.MsgUnableToProcess, env.Message)
}

func TestVendorHandler_ListDefaults(t *testing.T) {
	vendors := new(MockVendorService)
	vendors.On("List", mock.Anything, 0, 20).Return([]model.Vendor{}, nil)
	tokens := new(MockTokenValidator)
	tokens.On("Validate", mock.Anything, "tok").Return(&auth.Result{}, nil)
	h := NewVendorHandler(vendors, tokens, testTokenHeader)

	rec, c := newRequest(http.MethodGet, "/", "", "tok")
	require.NoError(t, h.List(c))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, response.CodeSuccess, env.Code)
	vendors.AssertExpectations(t)
}

func TestVendorHandler_ListLimitSharesSkipParam(t *testing.T) {
	// skip and limit both read the skip parameter; limit clamps at 20.
	vendors := new(MockVendorService)
	vendors.On("List", mock.Anything, 100, 20).Return([]model.Vendor{}, nil)
	tokens := new(MockTokenValidator)
	tokens.On("Validate", mock.Anything, "tok").Return(&auth.Result{}, nil)
	h := NewVendorHandler(vendors, tokens, testTokenHeader)

	rec, c := newRequest(http.MethodGet, "/?skip=100", "", "tok")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	vendors.AssertExpectations(t)
}

func TestVendorHandler_ListSmallValueUnclamped(t *testing.T) {
	vendors := new(MockVendorService)
	vendors.On("List", mock.Anything, 5, 5).Return([]model.Vendor{}, nil)
	tokens := new(MockTokenValidator)
	tokens.On("Validate", mock.Anything, "tok").Return(&auth.Result{}, nil)
	h := NewVendorHandler(vendors, tokens, testTokenHeader)

	_, c := newRequest(http.MethodGet, "/?skip=5", "", "tok")
	require.NoError(t, h.List(c))

	vendors.AssertExpectations(t)
}

func TestVendorHandler_ListNegativeSkipFallsBackToDefaults(t *testing.T) {
	// A negative value must not reach the store: gorm drops the LIMIT
	// clause for negatives, which would return every active row.
	vendors := new(MockVendorService)
	vendors.On("List", mock.Anything, 0, 20).Return([]model.Vendor{}, nil)
	tokens := new(MockTokenValidator)
	tokens.On("Validate", mock.Anything, "tok").Return(&auth.Result{}, nil)
	h := NewVendorHandler(vendors, tokens, testTokenHeader)

	_, c := newRequest(http.MethodGet, "/?skip=-1", "", "tok")
	require.NoError(t, h.List(c))

	vendors.AssertExpectations(t)
}

func TestVendorHandler_ListStoreFailure(t *testing.T) {
	vendors := new(MockVendorService)
	vendors.On("List", mock.Anything, 0, 20).Return(nil, errors.New("find failed"))
	tokens := new(MockTokenValidator)
	tokens.On("Validate", mock.Anything, "tok").Return(&auth.Result{}, nil)
	h := NewVendorHandler(vendors, tokens, testTokenHeader)

	rec, c := newRequest(http.MethodGet, "/", "", "tok")
	require.NoError(t, h.List(c))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, response.CodeFailure, env.Code)
	assert.Equal(t, "find failed", env.Message)
}
