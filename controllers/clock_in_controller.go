package controllers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"record-api/httpx"
	"record-api/logger"
	"record-api/models"
	"record-api/validator"
)

// ClockInManager is the clock-in lifecycle used by ClockInController.
type ClockInManager interface {
	Create(ctx context.Context, in models.ClockInCreate) (*models.ClockIn, error)
	Get(ctx context.Context, id string) (*models.ClockIn, error)
	Filter(ctx context.Context, f models.ClockInFilter) ([]models.ClockIn, error)
	Update(ctx context.Context, id string, u models.ClockInUpdate) (*models.ClockIn, error)
	Delete(ctx context.Context, id string) error
}

type ClockInController struct {
	records ClockInManager
	log     logger.Logger
}

func NewClockInController(records ClockInManager, log logger.Logger) *ClockInController {
	return &ClockInController{records: records, log: log.With("resource", "clock_in")}
}

func (c *ClockInController) CreateClockIn(w http.ResponseWriter, r *http.Request) {
	in, ok := validator.ValidateRequest[models.ClockInCreate](w, r)
	if !ok {
		return
	}
	ctx := detach(r)
	rec, err := c.records.Create(ctx, *in)
	if err != nil {
		fail(ctx, c.log, w, "create", "", err)
		return
	}
	c.log.InfoContext(ctx, "clock-in recorded", "id", rec.ID)
	httpx.JSON(w, http.StatusOK, rec)
}

func (c *ClockInController) GetClockIn(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ctx := detach(r)
	rec, err := c.records.Get(ctx, id)
	if err != nil {
		fail(ctx, c.log, w, "get", id, err)
		return
	}
	httpx.JSON(w, http.StatusOK, rec)
}

func (c *ClockInController) FilterClockIns(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r.URL.Query())
	f := models.ClockInFilter{
		Email:         q.String("email"),
		Location:      q.String("location"),
		AfterDatetime: q.Datetime("after_datetime"),
	}
	if len(q.errs) > 0 {
		validator.WriteValidationError(w, q.errs)
		return
	}
	ctx := detach(r)
	recs, err := c.records.Filter(ctx, f)
	if err != nil {
		fail(ctx, c.log, w, "filter", "", err)
		return
	}
	httpx.JSON(w, http.StatusOK, recs)
}

func (c *ClockInController) UpdateClockIn(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	u, ok := validator.ValidateRequest[models.ClockInUpdate](w, r)
	if !ok {
		return
	}
	ctx := detach(r)
	rec, err := c.records.Update(ctx, id, *u)
	if err != nil {
		fail(ctx, c.log, w, "update", id, err)
		return
	}
	httpx.JSON(w, http.StatusOK, rec)
}

func (c *ClockInController) DeleteClockIn(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ctx := detach(r)
	if err := c.records.Delete(ctx, id); err != nil {
		fail(ctx, c.log, w, "delete", id, err)
		return
	}
	c.log.InfoContext(ctx, "clock-in record deleted", "id", id)
	httpx.Message(w, "Clock In record deleted successfully")
}
