package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/customer_ledger_app/internal/apperrors"
	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/customer_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_app/internal/dto"
	"github.com/SscSPs/customer_ledger_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockUserService     *MockUserService
	mockTokenService    *MockTokenService
	mockCustomerService *MockCustomerService
	mockEntryService    *MockEntryService
	userID              string
	token               string
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.mockUserService = new(MockUserService)
	suite.mockTokenService = new(MockTokenService)
	suite.mockCustomerService = new(MockCustomerService)
	suite.mockEntryService = new(MockEntryService)

	container := &portssvc.ServiceContainer{
		User:     suite.mockUserService,
		Token:    suite.mockTokenService,
		Customer: suite.mockCustomerService,
		Entry:    suite.mockEntryService,
	}

	suite.router = gin.New()
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, testConfig(), container, nil))

	suite.userID = uuid.NewString()
	suite.token = generateTestToken(suite.userID)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func decodeError(suite *HandlerTestSuite, body []byte) handlers.ErrorResponse {
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(body, &resp))
	return resp
}

// --- Health ---
func (suite *HandlerTestSuite) TestHealth() {
	w := doRequest(suite.router, http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

// --- Auth ---
func (suite *HandlerTestSuite) TestRegister_Success() {
	req := dto.RegisterRequest{Username: "alice", Password: "pw"}
	suite.mockUserService.On("RegisterUser", mock.Anything, req).
		Return(&domain.User{UserID: suite.userID, Username: "alice", PasswordHash: "hash"}, nil).Once()

	w := doRequest(suite.router, http.MethodPost, "/app/register/", "", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(map[string]any{"id": suite.userID, "username": "alice"}, resp)
}

func (suite *HandlerTestSuite) TestRegister_Duplicate() {
	req := dto.RegisterRequest{Username: "alice", Password: "pw"}
	suite.mockUserService.On("RegisterUser", mock.Anything, req).
		Return(nil, apperrors.NewFieldError("username", "A user with that username already exists.")).Once()

	w := doRequest(suite.router, http.MethodPost, "/app/register/", "", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(decodeError(suite, w.Body.Bytes()).Fields, "username")
}

func (suite *HandlerTestSuite) TestRegister_MissingPassword() {
	w := doRequest(suite.router, http.MethodPost, "/app/register/", "", map[string]string{"username": "alice"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(decodeError(suite, w.Body.Bytes()).Fields, "password")
	suite.mockUserService.AssertNotCalled(suite.T(), "RegisterUser", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestObtainToken() {
	suite.mockTokenService.On("ObtainTokenPair", mock.Anything, "alice", "pw").Return("a", "r", nil).Once()
	suite.mockTokenService.On("ObtainTokenPair", mock.Anything, "alice", "bad").Return("", "", apperrors.ErrUnauthorized).Once()

	w := doRequest(suite.router, http.MethodPost, "/api/token/", "", dto.TokenObtainRequest{Username: "alice", Password: "pw"})
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"access":"a","refresh":"r"}`, w.Body.String())

	w = doRequest(suite.router, http.MethodPost, "/api/token/", "", dto.TokenObtainRequest{Username: "alice", Password: "bad"})
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestRefreshToken() {
	suite.mockTokenService.On("RefreshAccessToken", mock.Anything, "good").Return("new-access", nil).Once()
	suite.mockTokenService.On("RefreshAccessToken", mock.Anything, "stale").Return("", apperrors.ErrUnauthorized).Once()

	w := doRequest(suite.router, http.MethodPost, "/api/token/refresh/", "", dto.TokenRefreshRequest{Refresh: "good"})
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"access":"new-access"}`, w.Body.String())

	w = doRequest(suite.router, http.MethodPost, "/api/token/refresh/", "", dto.TokenRefreshRequest{Refresh: "stale"})
	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Authentication ---
func (suite *HandlerTestSuite) TestAppRoutesRequireToken() {
	for _, path := range []string{"/app/customers/", "/app/entries/", "/app/customers/" + uuid.NewString() + "/summary/"} {
		w := doRequest(suite.router, http.MethodGet, path, "", nil)
		suite.Equal(http.StatusUnauthorized, w.Code, path)
	}

	w := doRequest(suite.router, http.MethodGet, "/app/customers/", "garbage", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Customers ---
func (suite *HandlerTestSuite) TestListCustomers() {
	address := "1 Main St"
	suite.mockCustomerService.On("ListCustomers", mock.Anything, suite.userID).Return([]domain.Customer{
		{CustomerID: "c1", UserID: suite.userID, Name: "Acme", Phone: "555", Address: &address},
		{CustomerID: "c2", UserID: suite.userID, Name: "Bolt", Phone: "556"},
	}, nil).Once()

	w := doRequest(suite.router, http.MethodGet, "/app/customers/", suite.token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[
		{"id":"c1","name":"Acme","phone":"555","address":"1 Main St"},
		{"id":"c2","name":"Bolt","phone":"556","address":null}
	]`, w.Body.String())
}

func (suite *HandlerTestSuite) TestCreateCustomer() {
	req := dto.CreateCustomerRequest{Name: "Acme", Phone: "555"}
	suite.mockCustomerService.On("CreateCustomer", mock.Anything, suite.userID, req).
		Return(&domain.Customer{CustomerID: "c1", UserID: suite.userID, Name: "Acme", Phone: "555"}, nil).Once()

	w := doRequest(suite.router, http.MethodPost, "/app/customers/", suite.token, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.JSONEq(`{"id":"c1","name":"Acme","phone":"555","address":null}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestCreateCustomer_ValidationError() {
	w := doRequest(suite.router, http.MethodPost, "/app/customers/", suite.token, map[string]string{"phone": "555"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("This field is required.", decodeError(suite, w.Body.Bytes()).Fields["name"])
	suite.mockCustomerService.AssertNotCalled(suite.T(), "CreateCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetCustomer_NotFound() {
	customerID := uuid.NewString()
	suite.mockCustomerService.On("GetCustomerByID", mock.Anything, suite.userID, customerID).Return(nil, apperrors.ErrNotFound).Once()

	w := doRequest(suite.router, http.MethodGet, "/app/customers/"+customerID+"/", suite.token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestReplaceCustomer_SendsEveryField() {
	customerID := uuid.NewString()
	suite.mockCustomerService.On("UpdateCustomer", mock.Anything, suite.userID, customerID, mock.MatchedBy(func(req dto.UpdateCustomerRequest) bool {
		return req.Name != nil && *req.Name == "New" && req.Phone != nil && *req.Phone == "777"
	})).Return(&domain.Customer{CustomerID: customerID, Name: "New", Phone: "777"}, nil).Once()

	w := doRequest(suite.router, http.MethodPut, "/app/customers/"+customerID+"/", suite.token, map[string]string{"name": "New", "phone": "777"})
	suite.Equal(http.StatusOK, w.Code)

	// PUT is a full update.
	w = doRequest(suite.router, http.MethodPut, "/app/customers/"+customerID+"/", suite.token, map[string]string{"name": "Only"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCustomerService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestPatchCustomer_Partial() {
	customerID := uuid.NewString()
	suite.mockCustomerService.On("UpdateCustomer", mock.Anything, suite.userID, customerID, mock.MatchedBy(func(req dto.UpdateCustomerRequest) bool {
		return req.Name == nil && req.Phone != nil && *req.Phone == "777"
	})).Return(&domain.Customer{CustomerID: customerID, Name: "Kept", Phone: "777"}, nil).Once()

	w := doRequest(suite.router, http.MethodPatch, "/app/customers/"+customerID+"/", suite.token, map[string]string{"phone": "777"})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockCustomerService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestDeleteCustomer() {
	customerID := uuid.NewString()
	suite.mockCustomerService.On("DeleteCustomer", mock.Anything, suite.userID, customerID).Return(nil).Once()

	w := doRequest(suite.router, http.MethodDelete, "/app/customers/"+customerID+"/", suite.token, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())
}

func (suite *HandlerTestSuite) TestCustomerSummary() {
	customerID := uuid.NewString()
	summary := domain.NewCustomerSummary(customerID, decimal.RequireFromString("200"), decimal.RequireFromString("50"))
	suite.mockCustomerService.On("GetCustomerSummary", mock.Anything, suite.userID, customerID).Return(&summary, nil).Once()

	w := doRequest(suite.router, http.MethodGet, "/app/customers/"+customerID+"/summary/", suite.token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"total_credit":"200.00","total_debit":"50.00","balance":"150.00"}`, w.Body.String())
}

// --- Entries ---
func (suite *HandlerTestSuite) TestCreateEntry() {
	customerID := uuid.NewString()
	entry := &domain.LedgerEntry{
		EntryID:    "e1",
		UserID:     suite.userID,
		CustomerID: customerID,
		Type:       domain.Credit,
		Amount:     decimal.RequireFromString("200"),
		EntryDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	suite.mockEntryService.On("CreateEntry", mock.Anything, suite.userID, mock.MatchedBy(func(req dto.CreateEntryRequest) bool {
		return req.Customer == customerID && req.Amount != nil && req.Amount.Equal(decimal.RequireFromString("200"))
	})).Return(entry, nil).Once()

	w := doRequest(suite.router, http.MethodPost, "/app/entries/", suite.token, map[string]any{
		"customer":   customerID,
		"type":       "credit",
		"amount":     "200.00",
		"entry_date": "2024-01-15",
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.JSONEq(`{"id":"e1","customer":"`+customerID+`","type":"credit","amount":"200.00","note":null,"entry_date":"2024-01-15"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestCreateEntry_BindingErrors() {
	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"bad type", map[string]any{"customer": uuid.NewString(), "type": "refund", "amount": "1", "entry_date": "2024-01-01"}, "type"},
		{"too precise", map[string]any{"customer": uuid.NewString(), "type": "debit", "amount": "1.234", "entry_date": "2024-01-01"}, "amount"},
		{"zero", map[string]any{"customer": uuid.NewString(), "type": "debit", "amount": 0, "entry_date": "2024-01-01"}, "amount"},
		{"bad date", map[string]any{"customer": uuid.NewString(), "type": "debit", "amount": "1", "entry_date": "01/02/2024"}, "entry_date"},
		{"missing customer", map[string]any{"type": "debit", "amount": "1", "entry_date": "2024-01-01"}, "customer"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := doRequest(suite.router, http.MethodPost, "/app/entries/", suite.token, tt.body)
			suite.Equal(http.StatusBadRequest, w.Code)
			suite.Contains(decodeError(suite, w.Body.Bytes()).Fields, tt.field)
		})
	}
	suite.mockEntryService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateEntry_ForeignCustomer() {
	suite.mockEntryService.On("CreateEntry", mock.Anything, suite.userID, mock.AnythingOfType("dto.CreateEntryRequest")).
		Return(nil, apperrors.NewFieldError("customer", "Invalid pk - object does not exist.")).Once()

	w := doRequest(suite.router, http.MethodPost, "/app/entries/", suite.token, map[string]any{
		"customer": uuid.NewString(), "type": "debit", "amount": 5, "entry_date": "2024-01-01",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(decodeError(suite, w.Body.Bytes()).Fields, "customer")
}

func (suite *HandlerTestSuite) TestListEntries_PassesFilters() {
	params := dto.ListEntriesParams{Customer: "c1", Type: "debit", StartDate: "2024-01-01", EndDate: "2024-01-31"}
	suite.mockEntryService.On("ListEntries", mock.Anything, suite.userID, params).Return([]domain.LedgerEntry{}, nil).Once()

	w := doRequest(suite.router, http.MethodGet, "/app/entries/?customer=c1&type=debit&start_date=2024-01-01&end_date=2024-01-31", suite.token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *HandlerTestSuite) TestListEntries_InvalidFilter() {
	suite.mockEntryService.On("ListEntries", mock.Anything, suite.userID, dto.ListEntriesParams{Type: "refund"}).
		Return(nil, apperrors.NewFieldError("type", "Select a valid choice.")).Once()

	w := doRequest(suite.router, http.MethodGet, "/app/entries/?type=refund", suite.token, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestEntry_NotFoundAndInternalError() {
	missing := uuid.NewString()
	broken := uuid.NewString()
	suite.mockEntryService.On("GetEntryByID", mock.Anything, suite.userID, missing).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEntryService.On("GetEntryByID", mock.Anything, suite.userID, broken).Return(nil, assert.AnError).Once()

	w := doRequest(suite.router, http.MethodGet, "/app/entries/"+missing+"/", suite.token, nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = doRequest(suite.router, http.MethodGet, "/app/entries/"+broken+"/", suite.token, nil)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to retrieve entry", decodeError(suite, w.Body.Bytes()).Error)
}

func (suite *HandlerTestSuite) TestDeleteEntry() {
	entryID := uuid.NewString()
	suite.mockEntryService.On("DeleteEntry", mock.Anything, suite.userID, entryID).Return(nil).Once()

	w := doRequest(suite.router, http.MethodDelete, "/app/entries/"+entryID+"/", suite.token, nil)

	suite.Equal(http.StatusNoContent, w.Code)
}
