package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/slotbook/slotbook/internal/config"
	"github.com/slotbook/slotbook/internal/utils"
	"github.com/slotbook/slotbook/pkg/availability"
	"github.com/slotbook/slotbook/pkg/slot"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	AvailabilityRepo    *availability.MemoryRepository
	AvailabilityService *availability.ServiceImpl
	AvailabilityHandler *availability.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	defaultFormat, err := slot.ParseFormat(cfg.Slots.DefaultFormat)
	if err != nil {
		return nil, fmt.Errorf("slots.defaultformat: %w", err)
	}
	if cfg.Slots.DefaultDuration <= 0 {
		return nil, fmt.Errorf("slots.defaultduration: %w", slot.ErrInvalidSlotDuration)
	}

	location, err := availability.LocationFromConfig(cfg.Availability)
	if err != nil {
		return nil, err
	}
	weekFirstDay, err := availability.WeekFirstDayFromConfig(cfg.Availability)
	if err != nil {
		return nil, fmt.Errorf("availability.weekfirstday: %w", err)
	}
	weekly, custom, err := availability.RulesFromConfig(cfg.Availability, location)
	if err != nil {
		return nil, err
	}
	log.Infof("Loaded %d weekly and %d custom availability rule(s)", len(weekly), len(custom))

	deps.Clock = &utils.SystemClock{}
	deps.AvailabilityRepo = availability.NewMemoryRepository(weekly, custom)
	deps.AvailabilityService = availability.NewService(deps.AvailabilityRepo, deps.Clock, location, weekFirstDay)
	deps.AvailabilityHandler = availability.NewHandler(deps.AvailabilityService, defaultFormat, cfg.Slots.DefaultDuration)

	return deps, nil
}
