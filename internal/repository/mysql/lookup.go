package mysql

import (
	"context"
	"fmt"
	"time"
)

func (r *lookupRepository) Doctors(ctx context.Context) ([]string, error) {
	return r.list(ctx, "lookup_doctors", "SELECT doctor FROM doctors")
}

func (r *lookupRepository) Treatments(ctx context.Context) ([]string, error) {
	return r.list(ctx, "lookup_treatments", "SELECT treatment FROM treatments")
}

func (r *lookupRepository) Payments(ctx context.Context) ([]string, error) {
	return r.list(ctx, "lookup_payments", "SELECT payment FROM payments")
}

func (r *lookupRepository) list(ctx context.Context, operation, query string) ([]string, error) {
	var values []string
	start := time.Now()
	err := r.db.SelectContext(ctx, &values, query)
	r.m.ObserveQuery(operation, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", operation, err)
	}
	return values, nil
}
