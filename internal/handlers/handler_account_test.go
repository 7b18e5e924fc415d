package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/harborbytes/booklion/internal/apperrors"
	"github.com/harborbytes/booklion/internal/core/domain"
	portssvc "github.com/harborbytes/booklion/internal/core/ports/services"
	"github.com/harborbytes/booklion/internal/dto"
	"github.com/harborbytes/booklion/internal/middleware"
	"github.com/harborbytes/booklion/internal/utils"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, userID string, nameFilter string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, userID, nameFilter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) NextAccountNumber(ctx context.Context, userID string, accountType domain.AccountType) (string, error) {
	args := m.Called(ctx, userID, accountType)
	return args.String(0), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, userID string, accountID string) error {
	args := m.Called(ctx, userID, accountID)
	return args.Error(0)
}

func (m *MockAccountService) AccountsOverview(ctx context.Context, userID string) ([]domain.AccountOverviewByType, []domain.IndividualAccountOverview, error) {
	args := m.Called(ctx, userID)
	var byType []domain.AccountOverviewByType
	if args.Get(0) != nil {
		byType = args.Get(0).([]domain.AccountOverviewByType)
	}
	var byAccount []domain.IndividualAccountOverview
	if args.Get(1) != nil {
		byAccount = args.Get(1).([]domain.IndividualAccountOverview)
	}
	return byType, byAccount, args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	jwtSecret          string
	userID             string
}

// generateTestToken creates a JWT the auth middleware accepts.
func (suite *AccountHandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.jwtSecret, time.Hour, "booklion-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterCustomValidators())
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockAccountService = new(MockAccountService)
	v1 := suite.router.Group("/api/v1")
	registerAccountRoutes(v1, suite.mockAccountService)
}

func (suite *AccountHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	account := &domain.Account{
		AccountID:   uuid.NewString(),
		Number:      "512",
		Name:        "Groceries",
		AccountType: domain.Expenses,
	}

	suite.mockAccountService.On("CreateAccount",
		mock.Anything,
		suite.userID,
		mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
			return req.Number == "512" && req.Name == "Groceries"
		}),
	).Return(account, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/accounts", dto.CreateAccountRequest{Number: "512", Name: "Groceries"})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(account.AccountID, resp.AccountID)
	suite.Equal(domain.Expenses, resp.AccountType)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()

	suite.mockAccountService.On("GetAccountByID", mock.Anything, suite.userID, accountID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestListAccounts_Defaults() {
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), Number: "101", Name: "Checking", AccountType: domain.Assets},
		{AccountID: uuid.NewString(), Number: "512", Name: "Groceries", AccountType: domain.Expenses},
	}

	suite.mockAccountService.On("ListAccounts", mock.Anything, suite.userID, "", 20, 0).Return(accounts, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/accounts", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Accounts, 2)
	suite.Equal("101", resp.Accounts[0].Number)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestNextAccountNumber() {
	suite.mockAccountService.On("NextAccountNumber", mock.Anything, suite.userID, domain.Expenses).Return("513", nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/accounts/next-number?accountType=EXPENSES", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.NextAccountNumberResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("513", resp.Number)
}

func (suite *AccountHandlerTestSuite) TestNextAccountNumber_BadType() {
	w := suite.doRequest(http.MethodGet, "/api/v1/accounts/next-number?accountType=SAVINGS", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "NextAccountNumber")
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_Conflict() {
	accountID := uuid.NewString()

	suite.mockAccountService.On("DeleteAccount", mock.Anything, suite.userID, accountID).
		Return(apperrors.ErrConflict).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_Success() {
	accountID := uuid.NewString()

	suite.mockAccountService.On("DeleteAccount", mock.Anything, suite.userID, accountID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
