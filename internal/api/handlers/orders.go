package handlers

import (
	"log"
	"net/http"

	"delivery-ops-service/internal/api/dto"
	"delivery-ops-service/internal/domain"
	"delivery-ops-service/internal/ports"
)

// OrderHandler exposes order CRUD endpoints.
type OrderHandler struct {
	Repo ports.OrderRepository
}

func orderResponse(o *domain.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:       o.ID,
		OrderID:  o.OrderID,
		ValueRs:  o.ValueRs,
		RouteID:  o.RouteID,
		DriverID: o.DriverID,
	}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Repo.ListOrdersWithRoutes(r.Context())
	if err != nil {
		log.Printf("list orders failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	res := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, orderResponse(o))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	o, err := h.Repo.GetOrder(r.Context(), id)
	if err != nil {
		log.Printf("get order failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch order")
		return
	}
	if o == nil {
		writeError(w, r, http.StatusNotFound, "Order not found")
		return
	}

	writeJSON(w, r, http.StatusOK, orderResponse(o))
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.OrderID == "" {
		writeError(w, r, http.StatusBadRequest, "orderId is required")
		return
	}

	o := &domain.Order{
		OrderID:  req.OrderID,
		ValueRs:  req.ValueRs,
		RouteID:  req.RouteID,
		DriverID: req.DriverID,
	}
	id, err := h.Repo.CreateOrder(r.Context(), o)
	if err != nil {
		log.Printf("create order failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to create order")
		return
	}
	o.ID = id

	writeJSON(w, r, http.StatusOK, orderResponse(o))
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	var req dto.UpdateOrderRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	o, err := h.Repo.GetOrder(r.Context(), id)
	if err != nil {
		log.Printf("update order failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to update order")
		return
	}
	if o == nil {
		writeError(w, r, http.StatusNotFound, "Order not found")
		return
	}

	if req.OrderID != nil {
		o.OrderID = *req.OrderID
	}
	if req.ValueRs != nil {
		o.ValueRs = *req.ValueRs
	}
	if req.RouteID != nil {
		o.RouteID = req.RouteID
	}
	if req.DriverID != nil {
		o.DriverID = req.DriverID
	}

	if err := h.Repo.UpdateOrder(r.Context(), o); err != nil {
		log.Printf("update order failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to update order")
		return
	}

	writeJSON(w, r, http.StatusOK, orderResponse(o))
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.Repo.DeleteOrder(r.Context(), id); err != nil {
		log.Printf("delete order failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"message": "Order deleted"})
}
