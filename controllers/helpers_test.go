package controllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"record-api/controllers"
	"record-api/logger"
	"record-api/routes"
	"record-api/services"
	"record-api/store/storetest"
)

type fixture struct {
	handler  http.Handler
	items    *storetest.MockCollection
	clockIns *storetest.MockCollection
}

// newFixture wires the real router and services over mocked collections.
// A nil clock keeps the services on time.Now.
func newFixture(now func() time.Time) *fixture {
	f := &fixture{
		items:    &storetest.MockCollection{CollectionName: "Items"},
		clockIns: &storetest.MockCollection{CollectionName: "clock_in_records"},
	}
	log := logger.Discard()
	itemSvc := services.NewItemService(f.items, log)
	clockSvc := services.NewClockInService(f.clockIns, log)
	if now != nil {
		itemSvc.WithClock(now)
		clockSvc.WithClock(now)
	}
	f.handler = routes.SetupRoutes(routes.Options{
		Items:              controllers.NewItemController(itemSvc, log),
		ClockIns:           controllers.NewClockInController(clockSvc, log),
		Logger:             log,
		CORSAllowedOrigins: "*",
	})
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader = http.NoBody
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	return rr
}

func decodeObject(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m), rr.Body.String())
	return m
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var l []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &l), rr.Body.String())
	return l
}
