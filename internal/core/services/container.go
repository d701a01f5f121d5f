package services

import (
	portsrepo "github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/ports/repositories"
	portssvc "github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/ports/services"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/pkg/config"
)

// NewContainer wires every service with its repository dependencies.
func NewContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Reporting = NewReportingService(repos.TransactionRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.TransactionRepo)
	container.Goal = NewGoalService(repos.GoalRepo)
	container.Advice = NewAdviceService(cfg, container.Reporting, container.Budget)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
