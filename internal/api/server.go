package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/labstack/gommon/log"
	"github.com/vmihailenco/msgpack/v5"

	"radar-atc/internal/game/command"
	"radar-atc/internal/game/simulation"
	"radar-atc/pkg/types"
)

type Server struct {
	runner *Runner
}

// New constructs the HTTP router wired to the runner.
func New(runner *Runner) http.Handler {
	s := &Server{runner: runner}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/state", s.handleState)
	r.Post("/select", s.handleSelect)
	r.Post("/command", s.handleCommand)
	r.Post("/digit", s.handleDigit)
	r.Post("/enter", s.handleEnter)
	r.Post("/cancel", s.handleCancel)
	r.Post("/point", s.handlePoint)
	r.Post("/spawn", s.handleSpawn)
	r.Post("/pause", s.handlePause)
	r.Post("/speed", s.handleSpeed)

	return r
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	st := s.runner.State()
	if strings.EqualFold(r.URL.Query().Get("format"), "msgpack") {
		w.Header().Set("Content-Type", "application/msgpack")
		if err := msgpack.NewEncoder(w).Encode(st); err != nil {
			log.Errorf("encoding state: %v", err)
		}
		return
	}
	writeState(w, st)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Callsign string `json:"callsign"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}

	found := true
	s.runner.Do(func(sim *simulation.Simulation) {
		if req.Callsign == "" {
			sim.ClearSelection()
			return
		}
		found = sim.SelectAircraft(types.Callsign(strings.ToUpper(req.Callsign)))
	})
	if !found {
		writeJSONError(w, http.StatusNotFound, "unknown aircraft "+req.Callsign)
		return
	}
	writeState(w, s.runner.State())
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind string `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	kind := command.ParseKind(req.Kind)
	s.runner.Do(func(sim *simulation.Simulation) {
		sim.Command(kind)
	})
	writeState(w, s.runner.State())
}

func (s *Server) handleDigit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Digit *int `json:"digit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Digit == nil || *req.Digit < 0 || *req.Digit > 9 {
		writeJSONError(w, http.StatusBadRequest, "digit must be 0-9")
		return
	}
	s.runner.Do(func(sim *simulation.Simulation) {
		sim.Digit(*req.Digit)
	})
	writeState(w, s.runner.State())
}

func (s *Server) handleEnter(w http.ResponseWriter, r *http.Request) {
	s.runner.Do(func(sim *simulation.Simulation) {
		sim.Enter()
	})
	writeState(w, s.runner.State())
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	s.runner.Do(func(sim *simulation.Simulation) {
		sim.CancelCommand()
	})
	writeState(w, s.runner.State())
}

func (s *Server) handlePoint(w http.ResponseWriter, r *http.Request) {
	var req types.Vec2
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	s.runner.Do(func(sim *simulation.Simulation) {
		sim.Click(req)
	})
	writeState(w, s.runner.State())
}

func (s *Server) handleSpawn(w http.ResponseWriter, r *http.Request) {
	ok := false
	s.runner.Do(func(sim *simulation.Simulation) {
		ok = sim.SpawnAircraft()
	})
	if !ok {
		writeJSONError(w, http.StatusConflict, "no free callsign")
		return
	}
	writeState(w, s.runner.State())
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	s.runner.Do(func(sim *simulation.Simulation) {
		sim.TogglePause()
	})
	writeState(w, s.runner.State())
}

func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Speed float64 `json:"speed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Speed <= 0 {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}
	s.runner.Do(func(sim *simulation.Simulation) {
		sim.SetSpeed(req.Speed)
	})
	writeState(w, s.runner.State())
}

// ===== helpers =====

func writeState(w http.ResponseWriter, st simulation.State) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(st)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debugf("%s %s %d %v", r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
