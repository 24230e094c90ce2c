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

// ItemManager is the item lifecycle used by ItemController.
type ItemManager interface {
	Create(ctx context.Context, in models.ItemCreate) (*models.Item, error)
	Get(ctx context.Context, id string) (*models.Item, error)
	Filter(ctx context.Context, f models.ItemFilter) ([]models.Item, error)
	Update(ctx context.Context, id string, u models.ItemUpdate) (*models.Item, error)
	Delete(ctx context.Context, id string) error
}

type ItemController struct {
	items ItemManager
	log   logger.Logger
}

func NewItemController(items ItemManager, log logger.Logger) *ItemController {
	return &ItemController{items: items, log: log.With("resource", "item")}
}

func (c *ItemController) CreateItem(w http.ResponseWriter, r *http.Request) {
	in, ok := validator.ValidateRequest[models.ItemCreate](w, r)
	if !ok {
		return
	}
	ctx := detach(r)
	item, err := c.items.Create(ctx, *in)
	if err != nil {
		fail(ctx, c.log, w, "create", "", err)
		return
	}
	c.log.InfoContext(ctx, "item created", "id", item.ID)
	httpx.JSON(w, http.StatusOK, item)
}

func (c *ItemController) GetItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ctx := detach(r)
	item, err := c.items.Get(ctx, id)
	if err != nil {
		fail(ctx, c.log, w, "get", id, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (c *ItemController) FilterItems(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r.URL.Query())
	f := models.ItemFilter{
		Email:      q.String("email"),
		ExpiryDate: q.Date("expiry_date"),
		InsertDate: q.Date("insert_date"),
		Quantity:   q.Int("quantity"),
	}
	if len(q.errs) > 0 {
		validator.WriteValidationError(w, q.errs)
		return
	}
	if err := validator.Validate(&f); err != nil {
		validator.WriteValidationError(w, validator.FormatValidationErrors(err))
		return
	}
	ctx := detach(r)
	items, err := c.items.Filter(ctx, f)
	if err != nil {
		fail(ctx, c.log, w, "filter", "", err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (c *ItemController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	u, ok := validator.ValidateRequest[models.ItemUpdate](w, r)
	if !ok {
		return
	}
	ctx := detach(r)
	item, err := c.items.Update(ctx, id, *u)
	if err != nil {
		fail(ctx, c.log, w, "update", id, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (c *ItemController) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ctx := detach(r)
	if err := c.items.Delete(ctx, id); err != nil {
		fail(ctx, c.log, w, "delete", id, err)
		return
	}
	c.log.InfoContext(ctx, "item deleted", "id", id)
	httpx.Message(w, "Item deleted successfully")
}
