package adapthttp

import (
	"net/http"
	"time"

	"healthtracker/internal/domain"
)

func (s *Server) handleWaterList(w http.ResponseWriter, r *http.Request) {
	items, err := s.water.GetAll(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleWaterCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Litres         float64   `json:"litres"`
		DateOfDrinking time.Time `json:"dateofdrinking"`
		UserID         int64     `json:"userid"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	wt, err := s.water.Create(r.Context(), domain.Water{
		Litres:         body.Litres,
		DateOfDrinking: body.DateOfDrinking,
		UserID:         body.UserID,
	})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, wt)
}

func (s *Server) handleWaterGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	wt, err := s.water.GetByID(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wt)
}

func (s *Server) handleWaterListByUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	items, err := s.water.GetByUserID(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleWaterUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	var patch domain.WaterPatch
	if err := parseJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	wt, err := s.water.Update(r.Context(), id, patch)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wt)
}

func (s *Server) handleWaterDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if err := s.water.Delete(r.Context(), id); err != nil {
		writeFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
