package service

import (
	"context"

	apperrors "vendorhub/internal/errors"
	"vendorhub/internal/model"
	"vendorhub/internal/repository"
	"vendorhub/internal/storage"
	"vendorhub/internal/validation"
)

// VendorInput carries the raw vendor fields from a request. Optional
// fields are pointers so present-but-empty can be told apart from absent.
type VendorInput struct {
	Name        string
	Image       string
	Email       *string
	Website     *string
	Description *string
}

// VendorService implements the vendor registration workflow.
type VendorService interface {
	Add(ctx context.Context, in VendorInput) error
	Update(ctx context.Context, in VendorInput) error
	List(ctx context.Context, skip, limit int) ([]model.Vendor, error)
}

type vendorService struct {
	repo    repository.VendorRepository
	images  storage.ImageStore
	baseURL string
}

// NewVendorService creates a new vendor service. baseURL prefixes stored
// image paths on list responses.
func NewVendorService(repo repository.VendorRepository, images storage.ImageStore, baseURL string) VendorService {
	return &vendorService{repo: repo, images: images, baseURL: baseURL}
}

// validateFields runs the field checks in fixed order; the first failure
// wins and nothing is aggregated.
func validateFields(in VendorInput) error {
	if !validation.IsNameValid(in.Name) {
		return apperrors.ErrInvalidName
	}
	if in.Email != nil && !validation.IsEmailValid(*in.Email) {
		return apperrors.ErrInvalidEmail
	}
	if in.Image == "" {
		return apperrors.ErrInvalidImage
	}
	if in.Description != nil && *in.Description == "" {
		return apperrors.ErrInvalidDescription
	}
	if in.Website != nil && *in.Website == "" {
		return apperrors.ErrInvalidWebsite
	}
	return nil
}

// buildRecord assembles the vendor record and resolves the image field: on
// a successful write it becomes the stored path, on failure nil. An image
// write failure never fails the request.
func (s *vendorService) buildRecord(in VendorInput) *model.Vendor {
	vendor := &model.Vendor{
		Name:        in.Name,
		Email:       in.Email,
		Website:     in.Website,
		Description: in.Description,
		Status:      true,
	}
	if in.Image != "" {
		if path, err := s.images.Save(in.Image); err == nil {
			vendor.Image = &path
		}
	}
	return vendor
}

// Add registers a new vendor keyed by email. An existing email leaves the
// stored record untouched.
func (s *vendorService) Add(ctx context.Context, in VendorInput) error {
	if err := validateFields(in); err != nil {
		return err
	}

	vendor := s.buildRecord(in)
	inserted, err := s.repo.AddIfAbsent(ctx, vendor)
	if err != nil {
		return err
	}
	if !inserted {
		return apperrors.ErrEmailAlreadyRegistered
	}
	return nil
}

// Update overwrites all fields of the vendor matching the email. No record
// is created when none matches; that still counts as success.
func (s *vendorService) Update(ctx context.Context, in VendorInput) error {
	if err := validateFields(in); err != nil {
		return err
	}

	vendor := s.buildRecord(in)
	if err := s.repo.UpdateByEmail(ctx, vendor); err != nil {
		return apperrors.ErrUpdateFailed
	}
	return nil
}

// List returns active vendors with image paths rewritten to absolute URLs.
func (s *vendorService) List(ctx context.Context, skip, limit int) ([]model.Vendor, error) {
	vendors, err := s.repo.ListActive(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	for i := range vendors {
		if vendors[i].Image != nil {
			full := s.baseURL + "/" + *vendors[i].Image
			vendors[i].Image = &full
		}
	}
	return vendors, nil
}
