package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/SscSPs/cc_reco_app/internal/apperrors"
	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cc_reco_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cc_reco_app/internal/core/ports/services"
	"github.com/SscSPs/cc_reco_app/internal/dto"
	"github.com/SscSPs/cc_reco_app/internal/recon"
	"github.com/shopspring/decimal"
)

var prefixPattern = regexp.MustCompile(`^[A-Z0-9 ]+$`)

type vendorService struct {
	BaseService
	vendorRepo portsrepo.VendorRepositoryFacade
}

func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade) portssvc.VendorSvcFacade {
	return &vendorService{vendorRepo: vendorRepo}
}

// NormalizePrefix upper-cases a vendor prefix and collapses its whitespace.
func NormalizePrefix(prefix string) (string, error) {
	p := recon.NormalizeKey(prefix)
	if p == "" {
		return "", apperrors.NewValidationError("vendor prefix is required")
	}
	if !prefixPattern.MatchString(p) {
		return "", apperrors.NewValidationError(fmt.Sprintf("vendor prefix %q may only contain letters, digits and spaces", prefix))
	}
	return p, nil
}

// buildVendor validates a vendor row and fills the channel implied by its category.
func buildVendor(req dto.CreateVendorRequest, audit domain.AuditFields) (domain.VendorMasterEntry, error) {
	prefix, err := NormalizePrefix(req.Prefix)
	if err != nil {
		return domain.VendorMasterEntry{}, err
	}

	vendor := domain.VendorMasterEntry{
		Prefix:      prefix,
		VendorName:  strings.TrimSpace(req.VendorName),
		Category:    domain.Category(strings.ToUpper(strings.TrimSpace(req.Category))),
		CCFeeRate:   req.CCFeeRate,
		AuditFields: audit,
	}
	if vendor.VendorName == "" {
		return vendor, apperrors.NewValidationError("vendor name is required")
	}
	if !vendor.Category.Valid() {
		return vendor, apperrors.NewValidationError(fmt.Sprintf("unknown category %q", req.Category))
	}

	if req.Channel != "" {
		ch, ok := domain.ParseChannel(req.Channel)
		if !ok {
			return vendor, apperrors.NewValidationError(fmt.Sprintf("unknown channel %q", req.Channel))
		}
		vendor.Channel = ch
	}

	switch vendor.Category {
	case domain.CategoryOnlyA, domain.CategoryOnlyM:
		want := domain.ChannelA
		if vendor.Category == domain.CategoryOnlyM {
			want = domain.ChannelM
		}
		if vendor.Channel == "" {
			vendor.Channel = want
		}
		if vendor.Channel != want {
			return vendor, apperrors.NewValidationError(fmt.Sprintf("category %s requires channel %s", vendor.Category, want))
		}
	case domain.CategoryNotAvailable:
		vendor.Channel = ""
	}

	// Rows carrying a channel need payment terms; marker rows do not.
	if vendor.Channel != "" {
		days, err := recon.ParsePaymentTerms(req.PaymentTerms)
		if err != nil {
			return vendor, apperrors.NewValidationError(err.Error())
		}
		vendor.PaymentTermsDays = &days
	}
	if vendor.CCFeeRate.IsNegative() || vendor.CCFeeRate.GreaterThan(decimal.NewFromInt(1)) {
		return vendor, apperrors.NewValidationError("cc fee rate must be between 0 and 1")
	}
	return vendor, nil
}

func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.VendorMasterEntry, error) {
	vendor, err := buildVendor(req, auditFields(creatorUserID, time.Now()))
	if err != nil {
		return nil, err
	}
	prefix := vendor.Prefix

	existing, err := s.vendorRepo.FindVendorsByPrefix(ctx, prefix)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up vendor prefix", slog.String("prefix", prefix))
		return nil, fmt.Errorf("failed to look up vendor %s: %w", prefix, err)
	}
	for _, row := range existing {
		if row.Channel == vendor.Channel {
			return nil, fmt.Errorf("vendor %s channel %q: %w", prefix, vendor.Channel, apperrors.ErrDuplicate)
		}
	}

	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save vendor", slog.String("prefix", prefix))
		}
		return nil, fmt.Errorf("failed to create vendor in service: %w", err)
	}

	s.LogInfo(ctx, "Vendor created", slog.String("prefix", prefix), slog.String("channel", string(vendor.Channel)))
	return &vendor, nil
}

// UpdateVendor edits the row identified by prefix and channel. An empty channel addresses
// the prefix's channel-less row. The channel itself is the row's identity and never changes.
func (s *vendorService) UpdateVendor(ctx context.Context, prefix, channel string, req dto.UpdateVendorRequest, updaterUserID string) (*domain.VendorMasterEntry, error) {
	var ch domain.Channel
	if channel != "" {
		parsed, ok := domain.ParseChannel(channel)
		if !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown channel %q", channel))
		}
		ch = parsed
	}

	now := time.Now()
	vendor, err := buildVendor(dto.CreateVendorRequest{
		Prefix:       prefix,
		VendorName:   req.VendorName,
		Category:     req.Category,
		Channel:      string(ch),
		PaymentTerms: req.PaymentTerms,
		CCFeeRate:    req.CCFeeRate,
	}, domain.AuditFields{LastUpdatedAt: now, LastUpdatedBy: updaterUserID})
	if err != nil {
		return nil, err
	}
	if vendor.Channel != ch {
		return nil, apperrors.NewValidationError(fmt.Sprintf("category %s cannot be set on the channel %q row of %s", vendor.Category, ch, vendor.Prefix))
	}

	updated, err := s.vendorRepo.UpdateVendor(ctx, vendor)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update vendor", slog.String("prefix", vendor.Prefix))
		}
		return nil, fmt.Errorf("failed to update vendor in service: %w", err)
	}

	s.LogInfo(ctx, "Vendor updated", slog.String("prefix", vendor.Prefix), slog.String("channel", string(ch)))
	return updated, nil
}

func (s *vendorService) ListVendors(ctx context.Context) ([]domain.VendorMasterEntry, error) {
	vendors, err := s.vendorRepo.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors in service: %w", err)
	}
	if vendors == nil {
		return []domain.VendorMasterEntry{}, nil
	}
	return vendors, nil
}
