package handlers_test

import (
	"net/http"
	"testing"

	"github.com/aaravmahajanofficial/pos-admin/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/pos-admin/internal/errors"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/aaravmahajanofficial/pos-admin/internal/services/mocks"
	"github.com/aaravmahajanofficial/pos-admin/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMasterHandler(t *testing.T) {
	t.Run("Create - kind is fixed by the handler", func(t *testing.T) {
		// Arrange
		svc := mocks.NewMasterService(t)
		h := handlers.NewMasterHandler(svc, models.MasterBrand)
		req := models.CreateMasterRequest{Code: "TATA", Name: "Tata"}
		svc.On("CreateMaster", mock.Anything, models.MasterBrand, &req).
			Return(&models.MasterRecord{ID: uuid.New(), Kind: models.MasterBrand, Code: "TATA", Name: "Tata", Active: true}, nil).Once()

		// Act
		rr := serve(h.Create(), testutils.CreateTestRequestWithoutContext(http.MethodPost, "/brands", jsonBody(t, req), nil))

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		var got models.MasterRecord
		decodeData(t, rr, &got)
		assert.Equal(t, models.MasterBrand, got.Kind)
		assert.True(t, got.Active)
	})

	t.Run("Create - validation error", func(t *testing.T) {
		svc := mocks.NewMasterService(t)
		h := handlers.NewMasterHandler(svc, models.MasterUnit)

		rr := serve(h.Create(), testutils.CreateTestRequestWithoutContext(http.MethodPost, "/units", jsonBody(t, models.CreateMasterRequest{Name: "K"}), nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, decodeError(t, rr).Code)
	})

	t.Run("Create - duplicate code", func(t *testing.T) {
		svc := mocks.NewMasterService(t)
		h := handlers.NewMasterHandler(svc, models.MasterCategory)
		svc.On("CreateMaster", mock.Anything, models.MasterCategory, mock.Anything).Return(nil, appErrors.DuplicateEntryError("Code already exists")).Once()

		rr := serve(h.Create(), testutils.CreateTestRequestWithoutContext(http.MethodPost, "/categories", jsonBody(t, models.CreateMasterRequest{Code: "GR", Name: "Grocery"}), nil))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Get - not found", func(t *testing.T) {
		svc := mocks.NewMasterService(t)
		h := handlers.NewMasterHandler(svc, models.MasterBranch)
		id := uuid.New()
		svc.On("GetMaster", mock.Anything, models.MasterBranch, id).Return(nil, appErrors.NotFoundError("branches record not found")).Once()

		rr := serve(h.Get(), testutils.CreateTestRequestWithoutContext(http.MethodGet, "/branches/"+id.String(), nil, map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Update - partial", func(t *testing.T) {
		svc := mocks.NewMasterService(t)
		h := handlers.NewMasterHandler(svc, models.MasterContainer)
		id := uuid.New()
		svc.On("UpdateMaster", mock.Anything, models.MasterContainer, id, mock.MatchedBy(func(req *models.UpdateMasterRequest) bool {
			return req.Name != nil && *req.Name == "Jar" && req.Code == nil
		})).Return(&models.MasterRecord{ID: id, Name: "Jar"}, nil).Once()

		rr := serve(h.Update(), testutils.CreateTestRequestWithoutContext(http.MethodPut, "/containers/"+id.String(), jsonBody(t, `{"name":"Jar"}`), map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("SetActive - deactivate", func(t *testing.T) {
		svc := mocks.NewMasterService(t)
		h := handlers.NewMasterHandler(svc, models.MasterBrand)
		id := uuid.New()
		svc.On("SetMasterActive", mock.Anything, models.MasterBrand, id, false).Return(&models.MasterRecord{ID: id}, nil).Once()

		rr := serve(h.SetActive(false), testutils.CreateTestRequestWithoutContext(http.MethodPatch, "/brands/"+id.String()+"/deactivate", nil, map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("List - paginated", func(t *testing.T) {
		svc := mocks.NewMasterService(t)
		h := handlers.NewMasterHandler(svc, models.MasterBrand)
		svc.On("ListMasters", mock.Anything, models.MasterBrand, models.ListFilter{Page: 1, PageSize: 10}).
			Return([]*models.MasterRecord{{ID: uuid.New()}}, 1, nil).Once()

		rr := serve(h.List(), testutils.CreateTestRequestWithoutContext(http.MethodGet, "/brands", nil, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("ListActive", func(t *testing.T) {
		svc := mocks.NewMasterService(t)
		h := handlers.NewMasterHandler(svc, models.MasterUnit)
		svc.On("ListActiveMasters", mock.Anything, models.MasterUnit).Return([]*models.MasterRecord{}, nil).Once()

		rr := serve(h.ListActive(), testutils.CreateTestRequestWithoutContext(http.MethodGet, "/units/active/list", nil, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestPartyHandler(t *testing.T) {
	t.Run("Create supplier", func(t *testing.T) {
		svc := mocks.NewPartyService(t)
		h := handlers.NewPartyHandler(svc, models.PartySupplier)
		req := models.CreatePartyRequest{Name: "Annapurna Traders", Phone: "9876543210", Email: "sales@annapurna.in"}
		svc.On("CreateParty", mock.Anything, models.PartySupplier, &req).
			Return(&models.Party{ID: uuid.New(), Kind: models.PartySupplier, Name: req.Name, Active: true}, nil).Once()

		rr := serve(h.Create(), testutils.CreateTestRequestWithoutContext(http.MethodPost, "/suppliers", jsonBody(t, req), nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var got models.Party
		decodeData(t, rr, &got)
		assert.Equal(t, models.PartySupplier, got.Kind)
	})

	t.Run("Create - bad e-mail", func(t *testing.T) {
		svc := mocks.NewPartyService(t)
		h := handlers.NewPartyHandler(svc, models.PartyCustomer)

		rr := serve(h.Create(), testutils.CreateTestRequestWithoutContext(http.MethodPost, "/customers", jsonBody(t, models.CreatePartyRequest{Name: "Ravi", Email: "ravi"}), nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		errBody := decodeError(t, rr)
		assert.Contains(t, errBody.Details[0], "Email")
	})

	t.Run("Get customer", func(t *testing.T) {
		svc := mocks.NewPartyService(t)
		h := handlers.NewPartyHandler(svc, models.PartyCustomer)
		id := uuid.New()
		svc.On("GetParty", mock.Anything, models.PartyCustomer, id).Return(&models.Party{ID: id, Name: "Ravi"}, nil).Once()

		rr := serve(h.Get(), testutils.CreateTestRequestWithoutContext(http.MethodGet, "/customers/"+id.String(), nil, map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Activate - not found", func(t *testing.T) {
		svc := mocks.NewPartyService(t)
		h := handlers.NewPartyHandler(svc, models.PartyCustomer)
		id := uuid.New()
		svc.On("SetPartyActive", mock.Anything, models.PartyCustomer, id, true).Return(nil, appErrors.NotFoundError("Customer not found")).Once()

		rr := serve(h.SetActive(true), testutils.CreateTestRequestWithoutContext(http.MethodPatch, "/customers/"+id.String()+"/activate", nil, map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("List - search", func(t *testing.T) {
		svc := mocks.NewPartyService(t)
		h := handlers.NewPartyHandler(svc, models.PartySupplier)
		svc.On("ListParties", mock.Anything, models.PartySupplier, models.ListFilter{Page: 1, PageSize: 20, Query: "anna"}).
			Return([]*models.Party{{ID: uuid.New()}}, 1, nil).Once()

		rr := serve(h.List(), testutils.CreateTestRequestWithoutContext(http.MethodGet, "/suppliers?q=anna&pageSize=20", nil, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("ListActive - service error", func(t *testing.T) {
		svc := mocks.NewPartyService(t)
		h := handlers.NewPartyHandler(svc, models.PartySupplier)
		svc.On("ListActiveParties", mock.Anything, models.PartySupplier).Return(nil, appErrors.DatabaseError("Failed to list suppliers")).Once()

		rr := serve(h.ListActive(), testutils.CreateTestRequestWithoutContext(http.MethodGet, "/suppliers/active/list", nil, nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
