package controllers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"record-api/httpx"
	"record-api/logger"
	"record-api/models"
)

// fail logs err with the operation context and writes the mapped response.
func fail(ctx context.Context, log logger.Logger, w http.ResponseWriter, op, id string, err error) {
	status := httpx.StatusFor(err)
	args := []any{"op", op, "status", status, "error", err}
	if id != "" {
		args = append(args, "id", id)
	}
	if status >= http.StatusInternalServerError {
		log.ErrorContext(ctx, "request failed", args...)
	} else {
		log.WarnContext(ctx, "request rejected", args...)
	}
	httpx.WriteError(w, err)
}

// detach keeps request-scoped values but drops cancellation: a client that
// disconnects does not abort a store operation already in flight.
func detach(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

// queryParams collects typed query values and per-field parse errors.
// Empty values are treated as absent.
type queryParams struct {
	values url.Values
	errs   map[string]string
}

func newQueryParams(values url.Values) *queryParams {
	return &queryParams{values: values, errs: map[string]string{}}
}

func (q *queryParams) String(key string) *string {
	v := q.values.Get(key)
	if v == "" {
		return nil
	}
	return &v
}

func (q *queryParams) Int(key string) *int {
	v := q.values.Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.errs[key] = "Must be an integer"
		return nil
	}
	return &n
}

func (q *queryParams) Date(key string) *models.Date {
	v := q.values.Get(key)
	if v == "" {
		return nil
	}
	d, err := models.ParseDate(v)
	if err != nil {
		q.errs[key] = "Must be a date in YYYY-MM-DD format"
		return nil
	}
	return &d
}

var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Datetime parses RFC 3339 or a zone-less timestamp, which is taken as UTC.
func (q *queryParams) Datetime(key string) *time.Time {
	v := q.values.Get(key)
	if v == "" {
		return nil
	}
	if strings.Contains(v, "T") {
		// A literal "+" in the offset arrives as a space after query decoding.
		v = strings.ReplaceAll(v, " ", "+")
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			t = t.UTC()
			return &t
		}
	}
	q.errs[key] = "Must be an ISO 8601 datetime"
	return nil
}
