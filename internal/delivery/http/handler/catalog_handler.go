package handler

import (
	"net/http"

	"doctors-portal-server/internal/delivery/dto"
	"doctors-portal-server/internal/domain/entity"
	"doctors-portal-server/internal/usecase"
	"doctors-portal-server/pkg/response"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

// ListServices returns every service record.
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogUsecase.ListServices(r.Context())
	if err != nil {
		response.InternalServerError(w, "failed to fetch services")
		return
	}
	if services == nil {
		services = []entity.Service{}
	}
	response.JSON(w, http.StatusOK, services)
}

// ListSpecialties returns services projected to their names.
func (h *CatalogHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.catalogUsecase.ListSpecialties(r.Context())
	if err != nil {
		response.InternalServerError(w, "failed to fetch specialties")
		return
	}
	if specialties == nil {
		specialties = []dto.SpecialtyResponse{}
	}
	response.JSON(w, http.StatusOK, specialties)
}

// Availability returns services with their slot lists reduced to the
// slots still open on the requested date.
func (h *CatalogHandler) Availability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required")
		return
	}

	services, err := h.catalogUsecase.Availability(r.Context(), date)
	if err != nil {
		response.InternalServerError(w, "failed to compute availability")
		return
	}
	if services == nil {
		services = []entity.Service{}
	}
	response.JSON(w, http.StatusOK, services)
}
