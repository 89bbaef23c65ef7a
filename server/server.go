package server

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"alpaca_dashboard/config"
	"alpaca_dashboard/dashboard"
	"alpaca_dashboard/interfaces"
	"alpaca_dashboard/logger"

	"github.com/gorilla/mux"
)

// Server hosts the dashboard page and its JSON API. Every request re-fetches
// the account state and rebuilds the view-model from scratch; nothing is
// cached between renders.
type Server struct {
	cfg   *config.Config
	gw    interfaces.Gateway
	store interfaces.SnapshotStore
	http  *http.Server
	tmpl  *template.Template
}

// New wires the router and template. store may be nil when the snapshot
// recorder is disabled; /api/snapshots then reports no data.
func New(cfg *config.Config, gw interfaces.Gateway, store interfaces.SnapshotStore) *Server {
	s := &Server{
		cfg:   cfg,
		gw:    gw,
		store: store,
		tmpl:  template.Must(template.New("dashboard").Parse(pageTemplate)),
	}

	r := mux.NewRouter()
	r.HandleFunc("/", s.handlePage).Methods(http.MethodGet)
	r.HandleFunc("/api/dashboard", s.handleDashboard).Methods(http.MethodGet)
	r.HandleFunc("/api/snapshots", s.handleSnapshots).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	s.http = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start blocks serving HTTP until the listener fails or Stop is called.
func (s *Server) Start() error {
	logger.Infof("Dashboard listening on %s", s.http.Addr)
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop shuts the listener down, letting in-flight renders finish.
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// filterFromQuery maps the four dropdown selections onto a Filter. "All" and
// absence both mean no filter on that dimension.
func filterFromQuery(r *http.Request) dashboard.Filter {
	q := r.URL.Query()
	pick := func(key string) string {
		v := q.Get(key)
		if v == "All" {
			return ""
		}
		return v
	}
	return dashboard.Filter{
		Type:   pick("activity_type"),
		Symbol: pick("symbol"),
		Side:   pick("side"),
		Date:   pick("date"),
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	vm := dashboard.Build(r.Context(), s.gw, s.cfg, filterFromQuery(r))

	charts, err := json.Marshal(vm.Charts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		*dashboard.ViewModel
		ChartJSON template.JS
	}{vm, template.JS(charts)}
	if err := s.tmpl.Execute(w, data); err != nil {
		logger.Errorf("render page: %v", err)
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	vm := dashboard.Build(r.Context(), s.gw, s.cfg, filterFromQuery(r))
	writeJSON(w, vm)
}

func (s *Server) handleSnapshots(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, []struct{}{})
		return
	}
	snaps, err := s.store.RecentSnapshots(1000)
	if err != nil {
		logger.Errorf("read snapshots: %v", err)
		http.Error(w, "snapshot store unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, snaps)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("encode response: %v", err)
	}
}
