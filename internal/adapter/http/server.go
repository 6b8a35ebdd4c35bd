// Package adapthttp is the driving HTTP adapter: it routes requests to the
// application services and maps their results to status codes.
package adapthttp

import (
	"net/http"

	"healthtracker/internal/app"
)

// Server routes requests to the application services.
type Server struct {
	users *app.UserService
	bmi   *app.BmiService
	sleep *app.SleepService
	water *app.WaterService
	tips  *app.HealthTipService
}

// New creates a Server wired to the given application services.
func New(us *app.UserService, bs *app.BmiService, ss *app.SleepService, ws *app.WaterService, ts *app.HealthTipService) *Server {
	return &Server{users: us, bmi: bs, sleep: ss, water: ws, tips: ts}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	mux.HandleFunc("GET /api/users", s.handleUserList)
	mux.HandleFunc("POST /api/users", s.handleUserCreate)
	mux.HandleFunc("GET /api/users/{id}", s.handleUserGet)
	mux.HandleFunc("GET /api/users/email/{email}", s.handleUserGetByEmail)
	mux.HandleFunc("PATCH /api/users/{id}", s.handleUserUpdate)
	mux.HandleFunc("DELETE /api/users/{id}", s.handleUserDelete)

	mux.HandleFunc("GET /api/bmi", s.handleBmiList)
	mux.HandleFunc("POST /api/bmi", s.handleBmiCreate)
	mux.HandleFunc("GET /api/bmi/{id}", s.handleBmiGet)
	mux.HandleFunc("GET /api/bmi/users/{id}", s.handleBmiListByUser)
	mux.HandleFunc("PATCH /api/bmi/{id}", s.handleBmiUpdate)
	mux.HandleFunc("DELETE /api/bmi/{id}", s.handleBmiDelete)

	mux.HandleFunc("GET /api/sleep", s.handleSleepList)
	mux.HandleFunc("POST /api/sleep", s.handleSleepCreate)
	mux.HandleFunc("GET /api/sleep/{id}", s.handleSleepGet)
	mux.HandleFunc("GET /api/sleep/users/{id}", s.handleSleepListByUser)
	mux.HandleFunc("PATCH /api/sleep/{id}", s.handleSleepUpdate)
	mux.HandleFunc("DELETE /api/sleep/{id}", s.handleSleepDelete)

	mux.HandleFunc("GET /api/water", s.handleWaterList)
	mux.HandleFunc("POST /api/water", s.handleWaterCreate)
	mux.HandleFunc("GET /api/water/{id}", s.handleWaterGet)
	mux.HandleFunc("GET /api/water/users/{id}", s.handleWaterListByUser)
	mux.HandleFunc("PATCH /api/water/{id}", s.handleWaterUpdate)
	mux.HandleFunc("DELETE /api/water/{id}", s.handleWaterDelete)

	mux.HandleFunc("GET /api/healthTips", s.handleTipList)
	mux.HandleFunc("POST /api/healthTips", s.handleTipCreate)
	mux.HandleFunc("GET /api/healthTips/random", s.handleTipRandom)
	mux.HandleFunc("GET /api/healthTips/{id}", s.handleTipGet)
	mux.HandleFunc("PATCH /api/healthTips/{id}", s.handleTipUpdate)
	mux.HandleFunc("DELETE /api/healthTips/{id}", s.handleTipDelete)

	return s.loggingMiddleware(mux)
}
