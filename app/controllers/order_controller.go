package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/ordertrack/app/services"
	"github.com/shashiranjanraj/ordertrack/app/stats"
	"github.com/shashiranjanraj/ordertrack/pkg/bind"
	"github.com/shashiranjanraj/ordertrack/pkg/logger"
	"github.com/shashiranjanraj/ordertrack/pkg/orm"
	"github.com/shashiranjanraj/ordertrack/pkg/response"
)

// OrderController serves the order listing and writes. Writes accept either
// plain JSON or multipart (JSON under "payload" plus an "attachment" file).
type OrderController struct {
	service *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{service: services.NewOrderService()}
}

// Index lists orders matching the query-string filters, plus the distinct
// dates driving the date dropdown.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := stats.Filter{
		Tab:    q.Get("tab"),
		Status: q.Get("status"),
		Date:   q.Get("date"),
		Query:  q.Get("q"),
	}

	orders, err := c.service.List(f)
	if err != nil {
		logger.WithCtx(r.Context()).Error("list orders", "error", err)
		response.Error(w, http.StatusInternalServerError, "Could not load orders")
		return
	}

	dates, err := c.service.Dates()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list dates", "error", err)
		response.Error(w, http.StatusInternalServerError, "Could not load orders")
		return
	}

	response.Success(w, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
		"dates":  dates,
	})
}

// Store creates a new order.
func (c *OrderController) Store(w http.ResponseWriter, r *http.Request) {
	c.save(w, r, 0)
}

// Update modifies an existing order.
func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	c.save(w, r, id)
}

func (c *OrderController) save(w http.ResponseWriter, r *http.Request, id uint) {
	var in services.OrderInput
	var attachment *services.Attachment

	if bind.IsMultipart(r) {
		file, errs, err := bind.Multipart(r, &in, "attachment")
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Malformed request body")
			return
		}
		if len(errs) > 0 {
			response.ValidationError(w, errs)
			return
		}
		if file != nil {
			attachment = &services.Attachment{
				Name:        file.Name,
				ContentType: file.ContentType,
				Data:        file.Data,
			}
		}
	} else {
		errs, err := bind.JSON(r, &in)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Malformed request body")
			return
		}
		if len(errs) > 0 {
			response.ValidationError(w, errs)
			return
		}
	}

	order, err := c.service.Save(id, in, attachment)
	if err != nil {
		if orm.IsNotFound(err) {
			response.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		logger.WithCtx(r.Context()).Error("save order", "id", id, "error", err)
		if errors.Is(err, services.ErrUploadFailed) {
			response.Error(w, http.StatusBadGateway, "Attachment upload failed")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Could not save order")
		return
	}

	if id == 0 {
		response.Created(w, order)
		return
	}
	response.Success(w, order)
}

// Destroy deletes an order.
func (c *OrderController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	if err := c.service.Delete(id); err != nil {
		if orm.IsNotFound(err) {
			response.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		logger.WithCtx(r.Context()).Error("delete order", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "Could not delete order")
		return
	}

	response.NoContent(w)
}

func orderID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.Error(w, http.StatusBadRequest, "Invalid order id")
		return 0, false
	}
	return uint(id), true
}
