package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/harborbytes/booklion/internal/core/domain"
	portsrepo "github.com/harborbytes/booklion/internal/core/ports/repositories"
	portssvc "github.com/harborbytes/booklion/internal/core/ports/services"
	"github.com/harborbytes/booklion/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockLedgerRepo  *MockLedgerRepository
	service         portssvc.ReportingService
	userID          string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewReportingService(suite.mockAccountRepo, suite.mockLedgerRepo)
	suite.userID = uuid.NewString()
}

func (suite *ReportingServiceTestSuite) chart() []domain.Account {
	return []domain.Account{
		{AccountID: "a1", Number: "101", Name: "Checking", AccountType: domain.Assets},
		{AccountID: "a2", Number: "102", Name: "Savings", AccountType: domain.Assets},
		{AccountID: "a3", Number: "201", Name: "Credit card", AccountType: domain.Liabilities},
		{AccountID: "a4", Number: "301", Name: "Opening balance", AccountType: domain.Equity},
		{AccountID: "a5", Number: "401", Name: "Salary", AccountType: domain.Revenue},
		{AccountID: "a6", Number: "512", Name: "Groceries", AccountType: domain.Expenses},
	}
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet() {
	ctx := context.Background()
	date := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	lines := []domain.LedgerLine{
		// Salary of 1000 into checking.
		{Date: date, AccountType: domain.Assets, AccountNumber: "101", AccountName: "Checking", Debit: decimal.NewFromInt(1000), Credit: decimal.Zero},
		{Date: date, AccountType: domain.Revenue, AccountNumber: "401", AccountName: "Salary", Debit: decimal.Zero, Credit: decimal.NewFromInt(1000)},
		// 200 of groceries on the credit card.
		{Date: date, AccountType: domain.Expenses, AccountNumber: "512", AccountName: "Groceries", Debit: decimal.NewFromInt(200), Credit: decimal.Zero},
		{Date: date, AccountType: domain.Liabilities, AccountNumber: "201", AccountName: "Credit card", Debit: decimal.Zero, Credit: decimal.NewFromInt(200)},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.userID, "", 1000, 0).Return(suite.chart(), nil).Once()
	suite.mockLedgerRepo.On("FindLedgerLines", ctx, suite.userID, portsrepo.LedgerFilter{}).Return(lines, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, suite.userID, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(report.Assets, 2)
	suite.Equal("101", report.Assets[0].Number)
	suite.True(report.Assets[0].Balance.Equal(decimal.NewFromInt(1000)))
	// Savings had no activity but still appears, zero-balanced.
	suite.Equal("102", report.Assets[1].Number)
	suite.True(report.Assets[1].Balance.IsZero())

	suite.Require().Len(report.Liabilities, 1)
	suite.True(report.Liabilities[0].Balance.Equal(decimal.NewFromInt(200)))

	suite.Require().Len(report.Equity, 1)
	suite.True(report.Equity[0].Balance.IsZero())
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_Window() {
	ctx := context.Background()
	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	lines := []domain.LedgerLine{
		{Date: from.AddDate(0, 0, 9), AccountType: domain.Revenue, AccountNumber: "401", AccountName: "Salary", Debit: decimal.Zero, Credit: decimal.NewFromInt(1000)},
		{Date: from.AddDate(0, 0, 12), AccountType: domain.Expenses, AccountNumber: "512", AccountName: "Groceries", Debit: decimal.NewFromInt(200), Credit: decimal.Zero},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.userID, "", 1000, 0).Return(suite.chart(), nil).Once()
	suite.mockLedgerRepo.On("FindLedgerLines", ctx, suite.userID, mock.MatchedBy(func(f portsrepo.LedgerFilter) bool {
		return f.From != nil && f.From.Equal(from) && f.To != nil && f.To.Equal(to) && f.AccountID == nil
	})).Return(lines, nil).Once()

	report, err := suite.service.IncomeStatement(ctx, suite.userID, &from, &to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Revenue, 1)
	suite.True(report.Revenue[0].Balance.Equal(decimal.NewFromInt(1000)))
	suite.Require().Len(report.Expenses, 1)
	suite.True(report.Expenses[0].Balance.Equal(decimal.NewFromInt(200)))

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_EmptyChart() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.userID, "", 1000, 0).Return([]domain.Account{}, nil).Once()
	suite.mockLedgerRepo.On("FindLedgerLines", ctx, suite.userID, portsrepo.LedgerFilter{}).Return([]domain.LedgerLine{}, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, suite.userID, nil, nil)

	suite.Require().NoError(err)
	suite.Empty(report.Assets)
	suite.Empty(report.Liabilities)
	suite.Empty(report.Equity)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
