package handlers

import (
	"log"
	"net/http"

	"delivery-ops-service/internal/api/dto"
	"delivery-ops-service/internal/domain"
	"delivery-ops-service/internal/ports"
)

// RouteHandler exposes route CRUD endpoints.
type RouteHandler struct {
	Repo ports.RouteRepository
}

func routeResponse(rt *domain.Route) dto.RouteResponse {
	return dto.RouteResponse{
		ID:              rt.ID,
		RouteID:         rt.RouteID,
		DistanceKm:      rt.DistanceKm,
		TrafficLevel:    rt.TrafficLevel,
		BaseTimeMinutes: rt.BaseTimeMinutes,
	}
}

func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	routes, err := h.Repo.ListRoutes(r.Context())
	if err != nil {
		log.Printf("list routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch routes")
		return
	}

	res := make([]dto.RouteResponse, 0, len(routes))
	for _, rt := range routes {
		res = append(res, routeResponse(rt))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	rt, err := h.Repo.GetRoute(r.Context(), id)
	if err != nil {
		log.Printf("get route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch route")
		return
	}
	if rt == nil {
		writeError(w, r, http.StatusNotFound, "Route not found")
		return
	}

	writeJSON(w, r, http.StatusOK, routeResponse(rt))
}

func (h *RouteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRouteRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.RouteID == "" {
		writeError(w, r, http.StatusBadRequest, "routeId is required")
		return
	}

	rt := &domain.Route{
		RouteID:         req.RouteID,
		DistanceKm:      req.DistanceKm,
		TrafficLevel:    req.TrafficLevel,
		BaseTimeMinutes: req.BaseTimeMinutes,
	}
	id, err := h.Repo.CreateRoute(r.Context(), rt)
	if err != nil {
		log.Printf("create route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to create route")
		return
	}
	rt.ID = id

	writeJSON(w, r, http.StatusOK, routeResponse(rt))
}

func (h *RouteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	var req dto.UpdateRouteRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	rt, err := h.Repo.GetRoute(r.Context(), id)
	if err != nil {
		log.Printf("update route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to update route")
		return
	}
	if rt == nil {
		writeError(w, r, http.StatusNotFound, "Route not found")
		return
	}

	if req.RouteID != nil {
		rt.RouteID = *req.RouteID
	}
	if req.DistanceKm != nil {
		rt.DistanceKm = *req.DistanceKm
	}
	if req.TrafficLevel != nil {
		rt.TrafficLevel = *req.TrafficLevel
	}
	if req.BaseTimeMinutes != nil {
		rt.BaseTimeMinutes = *req.BaseTimeMinutes
	}

	if err := h.Repo.UpdateRoute(r.Context(), rt); err != nil {
		log.Printf("update route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to update route")
		return
	}

	writeJSON(w, r, http.StatusOK, routeResponse(rt))
}

func (h *RouteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.Repo.DeleteRoute(r.Context(), id); err != nil {
		log.Printf("delete route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to delete route")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"message": "Route deleted"})
}
