package adapthttp

import "net/http"

func (s *Server) handleTipList(w http.ResponseWriter, r *http.Request) {
	items, err := s.tips.GetAll(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleTipCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tips string `json:"tips"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	t, err := s.tips.Create(r.Context(), body.Tips)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleTipGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	t, err := s.tips.GetByID(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleTipRandom(w http.ResponseWriter, r *http.Request) {
	t, err := s.tips.GetRandom(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleTipUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	// Clients may echo the record id in the body; the path id wins.
	var patch struct {
		ID   int64   `json:"id"`
		Tips *string `json:"tips"`
	}
	if err := parseJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	t, err := s.tips.Update(r.Context(), id, patch.Tips)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleTipDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if err := s.tips.Delete(r.Context(), id); err != nil {
		writeFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
