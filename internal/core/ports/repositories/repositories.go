package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	VendorRepo        VendorRepositoryFacade
	MappingRepo       MappingRepositoryFacade
	PurchaseOrderRepo PurchaseOrderRepositoryFacade
	TransactionRepo   CCTransactionRepositoryFacade
	OverrideRepo      OverrideRepositoryFacade
	DeductionRepo     DeductionRepositoryFacade
	RunRepo           ReconciliationRunRepositoryFacade
}
