package app

import (
	"github.com/gorilla/mux"
	"github.com/slotbook/slotbook/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Slot generation
	r.HandleFunc("/api/slots", deps.AvailabilityHandler.GenerateSlots).Methods("GET")

	// Weekly availability
	r.HandleFunc("/api/availability", deps.AvailabilityHandler.ListWeekly).Methods("GET")
	r.HandleFunc("/api/availability/slots", deps.AvailabilityHandler.GetDaySlots).Methods("GET")
	r.HandleFunc("/api/availability/week", deps.AvailabilityHandler.GetWeekPreview).Methods("GET")
	r.HandleFunc("/api/availability/month", deps.AvailabilityHandler.GetOpenDates).Methods("GET")

	// Custom availability
	r.HandleFunc("/api/custom-availability/month", deps.AvailabilityHandler.GetCustomForMonth).Methods("GET")
}
