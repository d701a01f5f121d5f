package services

// ServiceContainer bundles every service facade for handler wiring.
type ServiceContainer struct {
	User        UserSvcFacade
	Transaction TransactionSvcFacade
	Reporting   ReportingSvcFacade
	Budget      BudgetSvcFacade
	Goal        GoalSvcFacade
	Advice      AdviceSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthHandlerSvcFacade
}
