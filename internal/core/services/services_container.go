package services

import (
	portsrepo "github.com/harborbytes/booklion/internal/core/ports/repositories"
	portssvc "github.com/harborbytes/booklion/internal/core/ports/services"
	"github.com/harborbytes/booklion/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo, repos.TransactionRepo, repos.LedgerRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.LedgerRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.AccountRepo, repos.LedgerRepo)
	container.Reporting = NewReportingService(repos.AccountRepo, repos.LedgerRepo)
	container.User = NewUserService(repos.UserRepo)

	container.Token = NewTokenService(cfg)
	container.Auth = NewAuthService(cfg, container.User, container.Token)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
