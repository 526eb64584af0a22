package service

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/errors"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	repository "github.com/aaravmahajanofficial/pos-admin/internal/repositories"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/google/uuid"
)

// MasterService maintains the lookup tables: brands, categories, units,
// containers and branches.
type MasterService interface {
	CreateMaster(ctx context.Context, kind models.MasterKind, req *models.CreateMasterRequest) (*models.MasterRecord, error)
	GetMaster(ctx context.Context, kind models.MasterKind, id uuid.UUID) (*models.MasterRecord, error)
	UpdateMaster(ctx context.Context, kind models.MasterKind, id uuid.UUID, req *models.UpdateMasterRequest) (*models.MasterRecord, error)
	SetMasterActive(ctx context.Context, kind models.MasterKind, id uuid.UUID, active bool) (*models.MasterRecord, error)
	ListMasters(ctx context.Context, kind models.MasterKind, filter models.ListFilter) ([]*models.MasterRecord, int, error)
	ListActiveMasters(ctx context.Context, kind models.MasterKind) ([]*models.MasterRecord, error)
}

type masterService struct {
	repo repository.MasterRepository
}

func NewMasterService(repo repository.MasterRepository) MasterService {
	return &masterService{repo: repo}
}

func checkKind(kind models.MasterKind) error {
	if !kind.Valid() {
		return errors.BadRequestError("Unknown master resource: " + string(kind))
	}
	return nil
}

func (s *masterService) CreateMaster(ctx context.Context, kind models.MasterKind, req *models.CreateMasterRequest) (*models.MasterRecord, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	record := &models.MasterRecord{
		Kind:        kind,
		Code:        utils.Sanitize(req.Code),
		Name:        utils.Sanitize(req.Name),
		Description: utils.Sanitize(req.Description),
		Active:      true,
	}

	if err := s.repo.CreateMaster(ctx, record); err != nil {
		return nil, repoError(err, "Record", "create "+string(kind)+" record")
	}

	return record, nil
}

func (s *masterService) GetMaster(ctx context.Context, kind models.MasterKind, id uuid.UUID) (*models.MasterRecord, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	record, err := s.repo.GetMasterByID(ctx, kind, id)
	if err != nil {
		return nil, repoError(err, "Record", "fetch "+string(kind)+" record")
	}

	return record, nil
}

func (s *masterService) UpdateMaster(ctx context.Context, kind models.MasterKind, id uuid.UUID, req *models.UpdateMasterRequest) (*models.MasterRecord, error) {
	record, err := s.GetMaster(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		record.Code = utils.Sanitize(*req.Code)
	}
	if req.Name != nil {
		record.Name = utils.Sanitize(*req.Name)
	}
	if req.Description != nil {
		record.Description = utils.Sanitize(*req.Description)
	}

	if err := s.repo.UpdateMaster(ctx, record); err != nil {
		return nil, repoError(err, "Record", "update "+string(kind)+" record")
	}

	return record, nil
}

func (s *masterService) SetMasterActive(ctx context.Context, kind models.MasterKind, id uuid.UUID, active bool) (*models.MasterRecord, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	if err := s.repo.SetMasterActive(ctx, kind, id, active); err != nil {
		return nil, repoError(err, "Record", "change "+string(kind)+" status")
	}

	return s.GetMaster(ctx, kind, id)
}

func (s *masterService) ListMasters(ctx context.Context, kind models.MasterKind, filter models.ListFilter) ([]*models.MasterRecord, int, error) {
	if err := checkKind(kind); err != nil {
		return nil, 0, err
	}

	records, total, err := s.repo.ListMasters(ctx, kind, filter)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch " + string(kind)).WithError(err)
	}

	return records, total, nil
}

func (s *masterService) ListActiveMasters(ctx context.Context, kind models.MasterKind) ([]*models.MasterRecord, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	records, err := s.repo.ListActiveMasters(ctx, kind)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch " + string(kind)).WithError(err)
	}

	return records, nil
}
