package handlers

import (
	"log"
	"net/http"

	"delivery-ops-service/internal/api/dto"
	"delivery-ops-service/internal/domain"
	"delivery-ops-service/internal/ports"
)

// DriverHandler exposes driver CRUD endpoints.
type DriverHandler struct {
	Repo ports.DriverRepository
}

func driverResponse(d *domain.Driver) dto.DriverResponse {
	return dto.DriverResponse{
		ID:                d.ID,
		Name:              d.Name,
		CurrentShiftHours: d.CurrentShiftHours,
		Past7DayHours:     d.Past7DayHours,
	}
}

func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.Repo.ListDrivers(r.Context())
	if err != nil {
		log.Printf("list drivers failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch drivers")
		return
	}

	res := make([]dto.DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		res = append(res, driverResponse(d))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *DriverHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	d, err := h.Repo.GetDriver(r.Context(), id)
	if err != nil {
		log.Printf("get driver failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch driver")
		return
	}
	if d == nil {
		writeError(w, r, http.StatusNotFound, "Driver not found")
		return
	}

	writeJSON(w, r, http.StatusOK, driverResponse(d))
}

func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDriverRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	d := &domain.Driver{
		Name:              req.Name,
		CurrentShiftHours: req.CurrentShiftHours,
		Past7DayHours:     req.Past7DayHours,
	}
	id, err := h.Repo.CreateDriver(r.Context(), d)
	if err != nil {
		log.Printf("create driver failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to create driver")
		return
	}
	d.ID = id

	writeJSON(w, r, http.StatusOK, driverResponse(d))
}

func (h *DriverHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	var req dto.UpdateDriverRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	d, err := h.Repo.GetDriver(r.Context(), id)
	if err != nil {
		log.Printf("update driver failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to update driver")
		return
	}
	if d == nil {
		writeError(w, r, http.StatusNotFound, "Driver not found")
		return
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.CurrentShiftHours != nil {
		d.CurrentShiftHours = *req.CurrentShiftHours
	}
	if req.Past7DayHours != nil {
		d.Past7DayHours = *req.Past7DayHours
	}

	if err := h.Repo.UpdateDriver(r.Context(), d); err != nil {
		log.Printf("update driver failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to update driver")
		return
	}

	writeJSON(w, r, http.StatusOK, driverResponse(d))
}

func (h *DriverHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.Repo.DeleteDriver(r.Context(), id); err != nil {
		log.Printf("delete driver failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to delete driver")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"message": "Driver deleted"})
}
