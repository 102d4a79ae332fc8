package services

import (
	portsrepo "github.com/SscSPs/cc_reco_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cc_reco_app/internal/core/ports/services"
	"github.com/SscSPs/cc_reco_app/internal/platform/config"
	"github.com/SscSPs/cc_reco_app/internal/recon"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	engineCfg := recon.Config{
		GraceDays:           cfg.GraceDays,
		AutoAssignThreshold: cfg.AutoAssignThreshold,
		AutoAssignChannel:   cfg.AutoAssignChannel,
	}

	return &portssvc.ServiceContainer{
		Vendor:         NewVendorService(repos.VendorRepo),
		Mapping:        NewMappingService(repos.MappingRepo, repos.VendorRepo),
		PurchaseOrder:  NewPurchaseOrderService(repos.PurchaseOrderRepo, repos.DeductionRepo),
		Transaction:    NewTransactionService(repos.TransactionRepo),
		Reconciliation: NewReconciliationService(repos, engineCfg),
		Deduction:      NewDeductionService(repos.DeductionRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.VendorSvcFacade         = (*vendorService)(nil)
	_ portssvc.MappingSvcFacade        = (*mappingService)(nil)
	_ portssvc.PurchaseOrderSvcFacade  = (*purchaseOrderService)(nil)
	_ portssvc.TransactionSvcFacade    = (*transactionService)(nil)
	_ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)
	_ portssvc.DeductionSvcFacade      = (*deductionService)(nil)
)
