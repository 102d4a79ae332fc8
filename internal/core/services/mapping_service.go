package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cc_reco_app/internal/apperrors"
	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cc_reco_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cc_reco_app/internal/core/ports/services"
)

type mappingService struct {
	BaseService
	mappingRepo portsrepo.MappingRepositoryFacade
	vendorRepo  portsrepo.VendorReader
}

func NewMappingService(mappingRepo portsrepo.MappingRepositoryFacade, vendorRepo portsrepo.VendorReader) portssvc.MappingSvcFacade {
	return &mappingService{mappingRepo: mappingRepo, vendorRepo: vendorRepo}
}

func (s *mappingService) ListMappings(ctx context.Context) ([]domain.DescriptionMapping, error) {
	mappings, err := s.mappingRepo.ListMappings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings in service: %w", err)
	}
	if mappings == nil {
		return []domain.DescriptionMapping{}, nil
	}
	return mappings, nil
}

// AssignVendor appends a mapping to a prefix that exists in the vendor master.
func (s *mappingService) AssignVendor(ctx context.Context, description, prefix, creatorUserID string) (*domain.DescriptionMapping, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperrors.NewValidationError("description is required")
	}
	normalized, err := NormalizePrefix(prefix)
	if err != nil {
		return nil, err
	}

	vendors, err := s.vendorRepo.FindVendorsByPrefix(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to look up vendor %s: %w", normalized, err)
	}
	if len(vendors) == 0 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("vendor prefix %s is not in the vendor master", normalized))
	}

	saved, err := s.mappingRepo.SaveMapping(ctx, domain.DescriptionMapping{
		Description: description,
		Prefix:      normalized,
		AuditFields: auditFields(creatorUserID, time.Now()),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save description mapping", slog.String("prefix", normalized))
		return nil, fmt.Errorf("failed to save mapping in service: %w", err)
	}

	s.LogInfo(ctx, "Description mapped", slog.String("description", description), slog.String("prefix", normalized), slog.Int64("seq", saved.Seq))
	return saved, nil
}
