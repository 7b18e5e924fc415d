package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/harborbytes/booklion/internal/apperrors"
	"github.com/harborbytes/booklion/internal/core/domain"
	portsrepo "github.com/harborbytes/booklion/internal/core/ports/repositories"
	portssvc "github.com/harborbytes/booklion/internal/core/ports/services"
	"github.com/harborbytes/booklion/internal/core/services"
	"github.com/harborbytes/booklion/internal/dto"
)

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo     *MockAccountRepository
	mockTransactionRepo *MockTransactionRepository
	mockLedgerRepo      *MockLedgerRepository
	service             portssvc.AccountSvcFacade
	userID              string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockTransactionRepo, suite.mockLedgerRepo)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Number: "512", Name: "Groceries"}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.AccountID)
	suite.Equal("512", created.Number)
	suite.Equal("Groceries", created.Name)
	suite.Equal(domain.Expenses, created.AccountType)
	suite.Equal(suite.userID, created.CreatedBy)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_BadNumber() {
	ctx := context.Background()

	for _, number := range []string{"012", "612", "51", "5123", "5a2", ""} {
		created, err := suite.service.CreateAccount(ctx, suite.userID, dto.CreateAccountRequest{Number: number, Name: "Whatever"})
		suite.Require().Error(err, "number %q should be rejected", number)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(created)
	}

	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateNumber() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Number: "101", Name: "Checking"}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()

	created, err := suite.service.CreateAccount(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(created)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestNextAccountNumber_FirstOfCategory() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindHighestAccountNumber", ctx, suite.userID, "4").Return(nil, nil).Once()

	number, err := suite.service.NextAccountNumber(ctx, suite.userID, domain.Revenue)

	suite.Require().NoError(err)
	suite.Equal("400", number)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestNextAccountNumber_Increments() {
	ctx := context.Background()
	highest := "512"

	suite.mockAccountRepo.On("FindHighestAccountNumber", ctx, suite.userID, "5").Return(&highest, nil).Once()

	number, err := suite.service.NextAccountNumber(ctx, suite.userID, domain.Expenses)

	suite.Require().NoError(err)
	suite.Equal("513", number)
}

func (suite *AccountServiceTestSuite) TestNextAccountNumber_CategoryExhausted() {
	ctx := context.Background()
	highest := "199"

	suite.mockAccountRepo.On("FindHighestAccountNumber", ctx, suite.userID, "1").Return(&highest, nil).Once()

	number, err := suite.service.NextAccountNumber(ctx, suite.userID, domain.Assets)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Empty(number)
}

func (suite *AccountServiceTestSuite) TestNextAccountNumber_UnknownType() {
	ctx := context.Background()

	number, err := suite.service.NextAccountNumber(ctx, suite.userID, domain.AccountType("SAVINGS"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Empty(number)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindHighestAccountNumber")
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NameOnly() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID:   accountID,
		Number:      "101",
		Name:        "Checking",
		AccountType: domain.Assets,
	}
	newName := "Main checking"

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, accountID).Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == newName && a.Number == "101"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, suite.userID, accountID, dto.UpdateAccountRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal(domain.Assets, updated.AccountType)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_EmptyPatch() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{AccountID: accountID, Number: "101", Name: "Checking", AccountType: domain.Assets}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, accountID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, suite.userID, accountID, dto.UpdateAccountRequest{})

	suite.Require().NoError(err)
	suite.Equal("Checking", updated.Name)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount")
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_WithLines() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockTransactionRepo.On("CountLinesByAccountID", ctx, suite.userID, accountID).Return(3, nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.userID, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeleteAccount")
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockTransactionRepo.On("CountLinesByAccountID", ctx, suite.userID, accountID).Return(0, nil).Once()
	suite.mockAccountRepo.On("DeleteAccount", ctx, suite.userID, accountID).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.userID, accountID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestAccountsOverview() {
	ctx := context.Background()
	now := time.Now().UTC()
	accounts := []domain.Account{
		{AccountID: "a1", Number: "101", Name: "Checking", AccountType: domain.Assets},
		{AccountID: "a2", Number: "512", Name: "Groceries", AccountType: domain.Expenses},
		{AccountID: "a3", Number: "401", Name: "Salary", AccountType: domain.Revenue},
	}
	lines := []domain.LedgerLine{
		{Date: now, AccountType: domain.Assets, AccountNumber: "101", AccountName: "Checking", Debit: decimal.NewFromInt(500), Credit: decimal.Zero},
		{Date: now, AccountType: domain.Revenue, AccountNumber: "401", AccountName: "Salary", Debit: decimal.Zero, Credit: decimal.NewFromInt(500)},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.userID, "", 1000, 0).Return(accounts, nil).Once()
	suite.mockLedgerRepo.On("FindLedgerLines", ctx, suite.userID, portsrepo.LedgerFilter{}).Return(lines, nil).Once()

	byType, byAccount, err := suite.service.AccountsOverview(ctx, suite.userID)

	suite.Require().NoError(err)

	// All five type rows are present, in chart order.
	suite.Require().Len(byType, 5)
	suite.Equal(domain.Assets, byType[0].Type)
	suite.True(byType[0].Balance.Equal(decimal.NewFromInt(500)))
	suite.Equal(1, byType[0].TransactionCount)
	suite.Equal(domain.Equity, byType[2].Type)
	suite.True(byType[2].Balance.IsZero())
	suite.Zero(byType[2].TransactionCount)
	suite.Nil(byType[2].DateLastTransaction)

	// Accounts are sorted by number, and the inactive one has zero balance.
	suite.Require().Len(byAccount, 3)
	suite.Equal("101", byAccount[0].Number)
	suite.True(byAccount[0].Balance.Equal(decimal.NewFromInt(500)))
	suite.Equal("401", byAccount[1].Number)
	suite.Equal("512", byAccount[2].Number)
	suite.True(byAccount[2].Balance.IsZero())
	suite.Zero(byAccount[2].TransactionCount)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
