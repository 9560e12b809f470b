package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pulseguard/hub/api/middleware"
	"github.com/pulseguard/hub/api/resources"
	"github.com/pulseguard/hub/internal/hubservice"
	nuts "github.com/vaudience/go-nuts"
)

type Router struct {
	router    *mux.Router
	logging   *middleware.RequestLogger
	resources *resources.Resources
}

func NewRouter(svc *hubservice.HubService) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		logging:   middleware.NewRequestLogger(),
		resources: resources.NewResources(svc),
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	// API prefix
	api := r.router.PathPrefix("/api").Subrouter()
	api.Use(r.logging.Handler)

	api.HandleFunc("/health", r.handleHealth).Methods(http.MethodGet)

	// Vitals
	api.HandleFunc("/vitals", r.resources.Monitor.GetVitals).Methods(http.MethodGet)
	api.HandleFunc("/vitals", r.resources.Monitor.PostVitals).Methods(http.MethodPost)
	api.HandleFunc("/vitals/history", r.resources.Monitor.GetVitalsHistory).Methods(http.MethodGet)
	api.HandleFunc("/dht", r.resources.Monitor.PostDHT).Methods(http.MethodPost)

	// Alarm / reminder
	api.HandleFunc("/alarm", r.resources.Monitor.GetAlarm).Methods(http.MethodGet)
	api.HandleFunc("/alarm", r.resources.Monitor.PostAlarm).Methods(http.MethodPost)
	api.HandleFunc("/alarm/trigger", r.resources.Monitor.GetAlarmTrigger).Methods(http.MethodGet)
	api.HandleFunc("/alarm/trigger", r.resources.Monitor.PostAlarmTrigger).Methods(http.MethodPost)

	// Emergency / doctor / disease
	api.HandleFunc("/emergency", r.resources.Monitor.GetEmergency).Methods(http.MethodGet)
	api.HandleFunc("/emergency", r.resources.Monitor.PostEmergency).Methods(http.MethodPost)
	api.HandleFunc("/doctor/status", r.resources.Monitor.GetDoctorStatus).Methods(http.MethodGet)
	api.HandleFunc("/doctor/status", r.resources.Monitor.PostDoctorStatus).Methods(http.MethodPost)
	api.HandleFunc("/disease", r.resources.Monitor.GetDisease).Methods(http.MethodGet)
	api.HandleFunc("/disease", r.resources.Monitor.PostDisease).Methods(http.MethodPost)

	// Appointments
	api.HandleFunc("/appointment", r.resources.Appointments.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointment", r.resources.Appointments.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointment", r.resources.Appointments.ApproveAppointment).Methods(http.MethodPut)

	// Destination collaborator stand-in
	api.HandleFunc("/destination", r.resources.Destination.ReceiveAppointment).Methods(http.MethodPost)
}

func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok","version":"` + nuts.GetVersion() + `"}`))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
