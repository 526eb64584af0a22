package service

import (
	"context"

	"github.com/aaravmahajanofficial/pos-admin/internal/errors"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	repository "github.com/aaravmahajanofficial/pos-admin/internal/repositories"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/google/uuid"
)

type PartyService interface {
	CreateParty(ctx context.Context, kind models.PartyKind, req *models.CreatePartyRequest) (*models.Party, error)
	GetParty(ctx context.Context, kind models.PartyKind, id uuid.UUID) (*models.Party, error)
	UpdateParty(ctx context.Context, kind models.PartyKind, id uuid.UUID, req *models.UpdatePartyRequest) (*models.Party, error)
	SetPartyActive(ctx context.Context, kind models.PartyKind, id uuid.UUID, active bool) (*models.Party, error)
	ListParties(ctx context.Context, kind models.PartyKind, filter models.ListFilter) ([]*models.Party, int, error)
	ListActiveParties(ctx context.Context, kind models.PartyKind) ([]*models.Party, error)
}

type partyService struct {
	repo repository.PartyRepository
}

func NewPartyService(repo repository.PartyRepository) PartyService {
	return &partyService{repo: repo}
}

func partyEntity(kind models.PartyKind) string {
	if kind == models.PartySupplier {
		return "Supplier"
	}
	return "Customer"
}

func checkPartyKind(kind models.PartyKind) error {
	if !kind.Valid() {
		return errors.BadRequestError("Unknown party resource: " + string(kind))
	}
	return nil
}

func (s *partyService) CreateParty(ctx context.Context, kind models.PartyKind, req *models.CreatePartyRequest) (*models.Party, error) {
	if err := checkPartyKind(kind); err != nil {
		return nil, err
	}

	party := &models.Party{
		Kind:    kind,
		Name:    utils.Sanitize(req.Name),
		Phone:   utils.Sanitize(req.Phone),
		Email:   req.Email,
		Address: utils.Sanitize(req.Address),
		Active:  true,
	}

	if err := s.repo.CreateParty(ctx, party); err != nil {
		return nil, repoError(err, partyEntity(kind), "create "+string(kind)+" record")
	}

	return party, nil
}

func (s *partyService) GetParty(ctx context.Context, kind models.PartyKind, id uuid.UUID) (*models.Party, error) {
	if err := checkPartyKind(kind); err != nil {
		return nil, err
	}

	party, err := s.repo.GetPartyByID(ctx, kind, id)
	if err != nil {
		return nil, repoError(err, partyEntity(kind), "fetch "+string(kind)+" record")
	}

	return party, nil
}

func (s *partyService) UpdateParty(ctx context.Context, kind models.PartyKind, id uuid.UUID, req *models.UpdatePartyRequest) (*models.Party, error) {
	party, err := s.GetParty(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		party.Name = utils.Sanitize(*req.Name)
	}
	if req.Phone != nil {
		party.Phone = utils.Sanitize(*req.Phone)
	}
	if req.Email != nil {
		party.Email = *req.Email
	}
	if req.Address != nil {
		party.Address = utils.Sanitize(*req.Address)
	}

	if err := s.repo.UpdateParty(ctx, party); err != nil {
		return nil, repoError(err, partyEntity(kind), "update "+string(kind)+" record")
	}

	return party, nil
}

func (s *partyService) SetPartyActive(ctx context.Context, kind models.PartyKind, id uuid.UUID, active bool) (*models.Party, error) {
	if err := checkPartyKind(kind); err != nil {
		return nil, err
	}

	if err := s.repo.SetPartyActive(ctx, kind, id, active); err != nil {
		return nil, repoError(err, partyEntity(kind), "change "+string(kind)+" status")
	}

	return s.GetParty(ctx, kind, id)
}

func (s *partyService) ListParties(ctx context.Context, kind models.PartyKind, filter models.ListFilter) ([]*models.Party, int, error) {
	if err := checkPartyKind(kind); err != nil {
		return nil, 0, err
	}

	parties, total, err := s.repo.ListParties(ctx, kind, filter)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch " + string(kind)).WithError(err)
	}

	return parties, total, nil
}

func (s *partyService) ListActiveParties(ctx context.Context, kind models.PartyKind) ([]*models.Party, error) {
	if err := checkPartyKind(kind); err != nil {
		return nil, err
	}

	parties, err := s.repo.ListActiveParties(ctx, kind)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch " + string(kind)).WithError(err)
	}

	return parties, nil
}
