package handlers

import (
	"errors"
	"log"
	"math"
	"net/http"

	"delivery-ops-service/internal/api/dto"
	"delivery-ops-service/internal/domain"
	"delivery-ops-service/internal/platform/obs"
	"delivery-ops-service/internal/ports"
	"delivery-ops-service/internal/services"
)

// SimulationHandler runs delivery simulations and serves the latest KPIs.
type SimulationHandler struct {
	Drivers ports.DriverRepository
	Orders  ports.OrderRepository
	History ports.HistoryRepository
	Cache   ports.HistoryCache // optional
}

// Run validates the request, executes one simulation and returns the KPI
// response. Validation and capacity problems are the caller's fault (400);
// everything else, including a failed history append, is a 500. A run
// that was not recorded is not reported as successful.
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req dto.SimulationRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	params, err := services.ValidateRequest(req.DriversCount, req.StartTime, req.MaxHours)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var runErr error
	defer obs.Time(r.Context(), "simulation.run")(&runErr)

	result, runErr := services.RunSimulation(r.Context(), params, h.Drivers, h.Orders, h.History)
	if runErr != nil {
		var capErr *services.CapacityError
		if errors.As(runErr, &capErr) {
			writeError(w, r, http.StatusBadRequest, capErr.Error())
			return
		}

		log.Printf("simulation failed: req_id=%s err=%v", obs.RequestID(r.Context()), runErr)

		var persistErr *services.PersistenceError
		if errors.As(runErr, &persistErr) {
			writeJSON(w, r, http.StatusInternalServerError, map[string]string{
				"error":   "Simulation failed",
				"details": "could not record simulation history",
			})
			return
		}

		writeError(w, r, http.StatusInternalServerError, "Simulation failed")
		return
	}

	h.cacheLatest(r, result, params.StartTime)

	writeJSON(w, r, http.StatusOK, simulationResponse(result))
}

// Latest returns the KPIs of the most recent run, preferring the cache
// when one is wired. Cache failures degrade to a database read.
func (h *SimulationHandler) Latest(w http.ResponseWriter, r *http.Request) {
	if h.Cache != nil {
		snap, err := h.Cache.GetLatest(r.Context())
		if err != nil {
			log.Printf("history cache read failed: %v", err)
		} else if snap != nil {
			writeJSON(w, r, http.StatusOK, latestResponse(snap))
			return
		}
	}

	snap, err := h.History.LatestSnapshot(r.Context())
	if err != nil {
		log.Printf("latest simulation failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to fetch latest simulation")
		return
	}
	if snap == nil {
		writeError(w, r, http.StatusNotFound, "No simulation history found")
		return
	}

	if h.Cache != nil {
		if err := h.Cache.PutLatest(r.Context(), snap); err != nil {
			log.Printf("history cache backfill failed: %v", err)
		}
	}

	writeJSON(w, r, http.StatusOK, latestResponse(snap))
}

// cacheLatest writes the run's snapshot through to the cache. Failures are
// logged only: the run is already durably recorded.
func (h *SimulationHandler) cacheLatest(r *http.Request, result *domain.SimulationResult, startTime string) {
	if h.Cache == nil {
		return
	}

	snap := &domain.HistorySnapshot{
		ID:              result.SavedHistoryID,
		StartTime:       startTime,
		TotalProfit:     result.TotalProfit,
		EfficiencyScore: result.EfficiencyScore,
		OnTimeCount:     result.OnTimeCount,
		LateCount:       result.LateCount,
		FuelCostHigh:    result.FuelCostHigh,
		FuelCostLow:     result.FuelCostLow,
	}
	if err := h.Cache.PutLatest(r.Context(), snap); err != nil {
		log.Printf("history cache write failed: %v", err)
	}
}

func simulationResponse(result *domain.SimulationResult) dto.SimulationResponse {
	orders := make([]dto.OrderOutcomeResponse, 0, len(result.Orders))
	for _, o := range result.Orders {
		orders = append(orders, dto.OrderOutcomeResponse{
			OrderID:      o.OrderID,
			AssignedTo:   o.AssignedTo,
			DriverName:   o.DriverName,
			Reason:       o.Reason,
			DeliveryTime: math.Round(o.DeliveryTime*100) / 100,
			BaseTimeMin:  o.BaseTimeMin,
			IsLate:       o.IsLate,
			Penalty:      o.Penalty,
			Bonus:        o.Bonus,
			FuelCost:     o.FuelCost,
			OrderProfit:  o.Profit,
		})
	}

	return dto.SimulationResponse{
		TotalProfit:     result.TotalProfit,
		EfficiencyScore: result.EfficiencyScore,
		OnTimeCount:     result.OnTimeCount,
		LateCount:       result.LateCount,
		TotalDeliveries: result.TotalDeliveries,
		AssignedCount:   result.AssignedCount,
		FuelBreakdown: dto.FuelBreakdownResponse{
			HighTraffic: result.FuelCostHigh,
			LowTraffic:  result.FuelCostLow,
		},
		SavedHistoryID: result.SavedHistoryID,
		Orders:         orders,
	}
}

func latestResponse(snap *domain.HistorySnapshot) dto.LatestSimulationResponse {
	return dto.LatestSimulationResponse{
		TotalProfit:     snap.TotalProfit,
		EfficiencyScore: snap.EfficiencyScore,
		OnTimeCount:     snap.OnTimeCount,
		LateCount:       snap.LateCount,
		FuelBreakdown: dto.FuelBreakdownResponse{
			HighTraffic: snap.FuelCostHigh,
			LowTraffic:  snap.FuelCostLow,
		},
	}
}
