// Package schedule resolves the clinic day: the fixed slot grid reconciled
// against booked appointments.
package schedule

import (
	"context"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
	"github.com/spqrod/dr-watson-dashboard-server/internal/repository"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/apperror"
)

const (
	dateLayout = "2006-01-02"

	// The grid is fixed at deploy time, so one load serves the process.
	gridCacheKey = "slot_grid"
)

type Service struct {
	slots        repository.SlotRepository
	appointments repository.AppointmentRepository
	cache        *cache.Cache
}

func NewService(slots repository.SlotRepository, appointments repository.AppointmentRepository) *Service {
	return &Service{
		slots:        slots,
		appointments: appointments,
		cache:        cache.New(cache.NoExpiration, cache.NoExpiration),
	}
}

// Grid returns the full ordered slot grid, loading it once and serving the
// cached copy afterwards. An empty configuration is a valid, empty grid.
func (s *Service) Grid(ctx context.Context) ([]model.TimeSlot, error) {
	if cached, ok := s.cache.Get(gridCacheKey); ok {
		return cached.([]model.TimeSlot), nil
	}

	slots, err := s.slots.AllSlots(ctx)
	if err != nil {
		return nil, apperror.Fetch("failed to load slot grid", err)
	}

	s.cache.Set(gridCacheKey, slots, cache.NoExpiration)
	return slots, nil
}

// ResolveAvailability merges the appointments booked for date against the slot
// grid. The result contains every appointment plus every grid slot whose
// time-of-day is not booked, all stamped with date and ordered ascending by
// time. With zero appointments the result is exactly the full grid.
func (s *Service) ResolveAvailability(ctx context.Context, date string) ([]model.ScheduleEntry, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	appointments, err := s.appointments.ListForDate(ctx, date)
	if err != nil {
		return nil, apperror.Fetch("failed to fetch appointments", err)
	}

	grid, err := s.Grid(ctx)
	if err != nil {
		return nil, err
	}

	// Index booked times once instead of deleting matched slots from the
	// grid while walking it.
	booked := make(map[string]struct{}, len(appointments))
	entries := make([]model.ScheduleEntry, 0, len(appointments)+len(grid))

	for i := range appointments {
		apt := appointments[i]
		apt.Date = date
		booked[apt.Time] = struct{}{}
		entries = append(entries, model.ScheduleEntry{
			Date:        date,
			Time:        apt.Time,
			Appointment: &apt,
		})
	}

	for _, slot := range grid {
		if _, taken := booked[slot.Time]; taken {
			continue
		}
		entries = append(entries, model.ScheduleEntry{
			Date:            date,
			Time:            slot.Time,
			IsEmptyTimeSlot: true,
		})
	}

	// Zero-padded HH:MM compares correctly as a string. The stable sort keeps
	// appointments ahead of leftover slots should a time ever collide.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})

	return entries, nil
}

// TakenTimes returns the booked HH:MM times for a date, for the booking form.
func (s *Service) TakenTimes(ctx context.Context, date string) ([]string, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	times, err := s.appointments.TakenTimes(ctx, date)
	if err != nil {
		return nil, apperror.Fetch("failed to fetch taken time slots", err)
	}
	if times == nil {
		times = []string{}
	}
	return times, nil
}

func validateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return apperror.Input("invalid date %q, expected YYYY-MM-DD", date)
	}
	return nil
}
