package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
)

func (r *slotRepository) AllSlots(ctx context.Context) ([]model.TimeSlot, error) {
	query := "SELECT id, time, isEmptyTimeSlot FROM timeSlots ORDER BY time"

	var slots []model.TimeSlot
	start := time.Now()
	err := r.db.SelectContext(ctx, &slots, query)
	r.m.ObserveQuery("slot_all", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get time slots: %w", err)
	}
	return slots, nil
}
