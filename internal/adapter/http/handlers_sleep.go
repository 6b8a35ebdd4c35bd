package adapthttp

import (
	"net/http"
	"time"

	"healthtracker/internal/domain"
)

func (s *Server) handleSleepList(w http.ResponseWriter, r *http.Request) {
	items, err := s.sleep.GetAll(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleSleepCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Duration float64   `json:"duration"`
		Date     time.Time `json:"date"`
		UserID   int64     `json:"userid"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sl, err := s.sleep.Create(r.Context(), domain.Sleep{
		Duration: body.Duration,
		Date:     body.Date,
		UserID:   body.UserID,
	})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sl)
}

func (s *Server) handleSleepGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	sl, err := s.sleep.GetByID(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sl)
}

func (s *Server) handleSleepListByUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	items, err := s.sleep.GetByUserID(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleSleepUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	var patch domain.SleepPatch
	if err := parseJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sl, err := s.sleep.Update(r.Context(), id, patch)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sl)
}

func (s *Server) handleSleepDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if err := s.sleep.Delete(r.Context(), id); err != nil {
		writeFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
