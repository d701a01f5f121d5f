package repositories

// RepositoryProvider bundles every repository implementation so wiring code
// can hand services a single dependency.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryFacade
	BudgetRepo      BudgetRepositoryFacade
	GoalRepo        GoalRepositoryFacade
	UserRepo        UserRepositoryFacade
}
