package availability

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/slotbook/slotbook/internal/rest"
	"github.com/slotbook/slotbook/pkg/slot"
)

type WeeklyAvailabilityDTO struct {
	Id           string   `json:"id"`
	DaysOfWeek   []string `json:"dayOfWeek"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	SlotDuration int      `json:"slotDuration"`
	MaxCount     int      `json:"maxCount"`
	ScheduleType string   `json:"scheduleType"`
	Period       string   `json:"period"`
}

type CustomAvailabilityDTO struct {
	Id           string `json:"id"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	Reason       string `json:"reason,omitempty"`
	StartTime    string `json:"startTime,omitempty"`
	EndTime      string `json:"endTime,omitempty"`
	SlotDuration int    `json:"slotDuration,omitempty"`
	MaxCount     int    `json:"maxCount,omitempty"`
	ScheduleType string `json:"scheduleType,omitempty"`
}

type BookableSlotDTO struct {
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Type              string `json:"type"`
	AvailableCapacity int    `json:"availableCapacity"`
}

type DayPreviewDTO struct {
	Date    string            `json:"date"`
	Weekday string            `json:"weekday"`
	Slots   []BookableSlotDTO `json:"slots"`
}

type DaySummaryDTO struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	SlotCount int    `json:"slotCount"`
	Capacity  int    `json:"capacity"`
}

type Handler struct {
	service         Service
	defaultFormat   slot.Format
	defaultDuration int
}

func NewHandler(service Service, defaultFormat slot.Format, defaultDuration int) *Handler {
	return &Handler{
		service:         service,
		defaultFormat:   defaultFormat,
		defaultDuration: defaultDuration,
	}
}

// GenerateSlots godoc
// @Summary Generate slots for a time window
// @Description Tile [start, end) with fixed-duration slots; a trailing remainder is dropped
// @Tags Slots
// @Produce json
// @Param start query string true "Start time, HH:MM"
// @Param end query string true "End time, HH:MM"
// @Param duration query int false "Slot duration in minutes"
// @Param format query string false "clock or raw"
// @Success 200 {array} string
// @Failure 400 {object} rest.ErrorResponse "Invalid time, duration or format"
// @Router /api/slots [get]
func (h *Handler) GenerateSlots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	duration := h.defaultDuration
	if durationString := query.Get("duration"); durationString != "" {
		parsed, err := strconv.Atoi(durationString)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "Invalid duration format", "Parameter duration must be a number of minutes")
			return
		}
		duration = parsed
	}

	format := h.defaultFormat
	if formatString := query.Get("format"); formatString != "" {
		parsed, err := slot.ParseFormat(formatString)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "Invalid format", err.Error())
			return
		}
		format = parsed
	}

	slots, err := h.service.GenerateSlots(r.Context(), query.Get("start"), query.Get("end"), duration, format)
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrInvalidTimeFormat):
			rest.WriteError(w, http.StatusBadRequest, "Incorrect time format", err.Error())
		case errors.Is(err, slot.ErrInvalidSlotDuration):
			rest.WriteError(w, http.StatusBadRequest, "Invalid slot duration", err.Error())
		case errors.Is(err, slot.ErrUnknownFormat):
			rest.WriteError(w, http.StatusBadRequest, "Invalid format", err.Error())
		default:
			log.Errorf("failed to generate slots: %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	rest.WriteJSON(w, slots)
}

// ListWeekly godoc
// @Summary List weekly availability
// @Tags Availability
// @Produce json
// @Success 200 {array} WeeklyAvailabilityDTO
// @Router /api/availability [get]
func (h *Handler) ListWeekly(w http.ResponseWriter, r *http.Request) {
	rules, err := h.service.GetWeekly(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rulesDTO := make([]WeeklyAvailabilityDTO, 0, len(rules))
	for _, group := range GroupByPeriod(rules) {
		for _, rule := range group.Rules {
			rulesDTO = append(rulesDTO, weeklyToDTO(rule, group.Period))
		}
	}
	rest.WriteJSON(w, rulesDTO)
}

// GetDaySlots godoc
// @Summary Bookable slots of a date
// @Tags Availability
// @Produce json
// @Param date query string false "Date, YYYY-MM-DD (defaults to today)"
// @Success 200 {array} BookableSlotDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid date format"
// @Router /api/availability/slots [get]
func (h *Handler) GetDaySlots(w http.ResponseWriter, r *http.Request) {
	date, ok := h.dateParam(w, r)
	if !ok {
		return
	}
	slots, err := h.service.DaySlots(r.Context(), date)
	if err != nil {
		log.Errorf("failed to get slots for %s: %v", date.Format(DateLayout), err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, slotsToDTO(slots))
}

// GetWeekPreview godoc
// @Summary Weekly availability preview
// @Tags Availability
// @Produce json
// @Param date query string false "Any date of the week, YYYY-MM-DD (defaults to today)"
// @Success 200 {array} DayPreviewDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid date format"
// @Router /api/availability/week [get]
func (h *Handler) GetWeekPreview(w http.ResponseWriter, r *http.Request) {
	date, ok := h.dateParam(w, r)
	if !ok {
		return
	}
	days, err := h.service.WeekPreview(r.Context(), date)
	if err != nil {
		log.Errorf("failed to preview week of %s: %v", date.Format(DateLayout), err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	daysDTO := make([]DayPreviewDTO, 0, len(days))
	for _, day := range days {
		daysDTO = append(daysDTO, DayPreviewDTO{
			Date:    day.Date.Format(DateLayout),
			Weekday: strings.ToUpper(day.Date.Weekday().String()),
			Slots:   slotsToDTO(day.Slots),
		})
	}
	rest.WriteJSON(w, daysDTO)
}

// GetCustomForMonth godoc
// @Summary Custom availability exceptions of a month
// @Tags Availability
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month, 1-12"
// @Success 200 {array} CustomAvailabilityDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid year or month"
// @Router /api/custom-availability/month [get]
func (h *Handler) GetCustomForMonth(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(w, r)
	if !ok {
		return
	}

	exceptions, err := h.service.CustomForMonth(r.Context(), year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	exceptionsDTO := make([]CustomAvailabilityDTO, 0, len(exceptions))
	for _, e := range exceptions {
		exceptionsDTO = append(exceptionsDTO, customToDTO(e))
	}
	rest.WriteJSON(w, exceptionsDTO)
}

// GetOpenDates godoc
// @Summary Open dates of a month
// @Description Dates with at least one bookable slot, for the booking calendar
// @Tags Availability
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month, 1-12"
// @Success 200 {array} DaySummaryDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid year or month"
// @Router /api/availability/month [get]
func (h *Handler) GetOpenDates(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthParams(w, r)
	if !ok {
		return
	}

	days, err := h.service.OpenDates(r.Context(), year, month)
	if err != nil {
		log.Errorf("failed to list open dates of %d-%02d: %v", year, month, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	daysDTO := make([]DaySummaryDTO, 0, len(days))
	for _, day := range days {
		daysDTO = append(daysDTO, DaySummaryDTO{
			Date:      day.Date.Format(DateLayout),
			Weekday:   strings.ToUpper(day.Date.Weekday().String()),
			SlotCount: day.SlotCount,
			Capacity:  day.Capacity,
		})
	}
	rest.WriteJSON(w, daysDTO)
}

func monthParams(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid year format", "Parameter year must be a number")
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		rest.WriteError(w, http.StatusBadRequest, "Invalid month format", "Parameter month must be a number between 1 and 12")
		return 0, 0, false
	}
	return year, time.Month(month), true
}

func (h *Handler) dateParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	dateString := r.URL.Query().Get("date")
	if dateString == "" {
		return h.service.Today(), true
	}
	date, err := time.ParseInLocation(DateLayout, dateString, h.service.Location())
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Incorrect date format", "Date must be in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return date, true
}

func weeklyToDTO(rule WeeklyAvailability, period Period) WeeklyAvailabilityDTO {
	days := make([]string, 0, len(rule.DaysOfWeek))
	for _, d := range rule.DaysOfWeek {
		days = append(days, strings.ToUpper(d.String()))
	}
	return WeeklyAvailabilityDTO{
		Id:           rule.Id.String(),
		DaysOfWeek:   days,
		StartTime:    rule.StartTime,
		EndTime:      rule.EndTime,
		SlotDuration: rule.SlotDuration,
		MaxCount:     rule.MaxCount,
		ScheduleType: string(rule.ScheduleType),
		Period:       string(period),
	}
}

func customToDTO(e CustomAvailability) CustomAvailabilityDTO {
	return CustomAvailabilityDTO{
		Id:           e.Id.String(),
		Date:         e.Date.Format(DateLayout),
		Status:       string(e.Status),
		Reason:       e.Reason,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		SlotDuration: e.SlotDuration,
		MaxCount:     e.MaxCount,
		ScheduleType: string(e.ScheduleType),
	}
}

func slotsToDTO(slots []BookableSlot) []BookableSlotDTO {
	out := make([]BookableSlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, BookableSlotDTO{
			StartTime:         s.StartTime,
			EndTime:           s.EndTime,
			Type:              string(s.Type),
			AvailableCapacity: s.AvailableCapacity,
		})
	}
	return out
}
