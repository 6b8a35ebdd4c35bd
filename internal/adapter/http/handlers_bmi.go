package adapthttp

import (
	"net/http"
	"time"

	"healthtracker/internal/domain"
)

func (s *Server) handleBmiList(w http.ResponseWriter, r *http.Request) {
	items, err := s.bmi.GetAll(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleBmiCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Weight    float64   `json:"weight"`
		Height    float64   `json:"height"`
		Timestamp time.Time `json:"timestamp"`
		UserID    int64     `json:"userId"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	b, err := s.bmi.Create(r.Context(), domain.Bmi{
		Weight:    body.Weight,
		Height:    body.Height,
		Timestamp: body.Timestamp,
		UserID:    body.UserID,
	})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) handleBmiGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	b, err := s.bmi.GetByID(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleBmiListByUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	items, err := s.bmi.GetByUserID(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleBmiUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	var patch domain.BmiPatch
	if err := parseJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	b, err := s.bmi.Update(r.Context(), id, patch)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleBmiDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if err := s.bmi.Delete(r.Context(), id); err != nil {
		writeFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
