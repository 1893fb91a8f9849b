package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/sales-api/internal/core/domain"
	"github.com/salesdesk/sales-api/internal/core/ports"
)

type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type createOrderRequest struct {
	OrdNum         int64      `json:"ordNum" validate:"required,gt=0"`
	OrdAmount      float64    `json:"ordAmount" validate:"gte=0"`
	AdvanceAmount  float64    `json:"advanceAmount" validate:"gte=0"`
	OrdDate        *time.Time `json:"ordDate"`
	CustCode       string     `json:"custCode" validate:"required,max=6"`
	AgentCode      string     `json:"agentCode" validate:"required,max=6"`
	OrdDescription string     `json:"ordDescription" validate:"max=60"`
}

type updateOrderRequest struct {
	OrdAmount      *float64 `json:"ordAmount" validate:"omitempty,gte=0"`
	AdvanceAmount  *float64 `json:"advanceAmount" validate:"omitempty,gte=0"`
	CustCode       *string  `json:"custCode" validate:"omitempty,max=6"`
	AgentCode      *string  `json:"agentCode" validate:"omitempty,max=6"`
	OrdDescription *string  `json:"ordDescription" validate:"omitempty,max=60"`
}

// Create godoc
//
// @Summary   Place order
// @Tags      orders
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     body  body      createOrderRequest  true  "Order"
// @Success   201   {object}  domain.Order
// @Failure   400   {object}  errorResponse
// @Failure   404   {object}  errorResponse
// @Failure   409   {object}  errorResponse
// @Router    /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	o := &domain.Order{
		Number:        req.OrdNum,
		Amount:        req.OrdAmount,
		AdvanceAmount: req.AdvanceAmount,
		CustomerCode:  req.CustCode,
		AgentCode:     req.AgentCode,
		Description:   req.OrdDescription,
	}
	if req.OrdDate != nil {
		o.Date = req.OrdDate.UTC()
	}

	created, err := h.orders.Create(c.Request().Context(), o)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// List godoc
//
// @Summary   List orders
// @Tags      orders
// @Security  BearerAuth
// @Produce   json
// @Param     page   query     int  false  "Page, from 1"
// @Param     limit  query     int  false  "Page size, at most 100"
// @Success   200    {object}  ports.OrderList
// @Router    /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	page, err := intQuery(c, "page")
	if err != nil {
		return err
	}
	limit, err := intQuery(c, "limit")
	if err != nil {
		return err
	}

	res, err := h.orders.List(c.Request().Context(), ports.Page{Page: page, Limit: limit})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Get godoc
//
// @Summary   Get order
// @Tags      orders
// @Security  BearerAuth
// @Produce   json
// @Param     ordNum  path      int  true  "Order number"
// @Success   200     {object}  domain.Order
// @Failure   404     {object}  errorResponse
// @Router    /orders/{ordNum} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	num, err := orderNumberParam(c)
	if err != nil {
		return err
	}
	o, err := h.orders.Get(c.Request().Context(), num)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, o)
}

// Update godoc
//
// @Summary   Update order
// @Tags      orders
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     ordNum  path      int                 true  "Order number"
// @Param     body    body      updateOrderRequest  true  "Fields to change"
// @Success   200     {object}  domain.Order
// @Failure   404     {object}  errorResponse
// @Router    /orders/{ordNum} [patch]
func (h *OrderHandler) Update(c echo.Context) error {
	num, err := orderNumberParam(c)
	if err != nil {
		return err
	}
	var req updateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	o, err := h.orders.Update(c.Request().Context(), num, ports.OrderUpdate{
		Amount:        req.OrdAmount,
		AdvanceAmount: req.AdvanceAmount,
		CustomerCode:  req.CustCode,
		AgentCode:     req.AgentCode,
		Description:   req.OrdDescription,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, o)
}

// Delete godoc
//
// @Summary   Delete order
// @Tags      orders
// @Security  BearerAuth
// @Produce   json
// @Param     ordNum  path      int  true  "Order number"
// @Success   200     {object}  affectedResponse
// @Failure   404     {object}  errorResponse
// @Router    /orders/{ordNum} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	num, err := orderNumberParam(c)
	if err != nil {
		return err
	}
	n, err := h.orders.Delete(c.Request().Context(), num)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, affectedResponse{Affected: n})
}

// TotalByCustomer godoc
//
// @Summary   Order amount per customer
// @Tags      orders
// @Security  BearerAuth
// @Produce   json
// @Param     limit  query  int  false  "Rows to return (default 10)"
// @Success   200    {array}  domain.AmountTotal
// @Router    /orders/total-amount-by-customer [get]
func (h *OrderHandler) TotalByCustomer(c echo.Context) error {
	return h.totals(c, h.orders.TotalByCustomer)
}

// TotalByAgent godoc
//
// @Summary   Order amount per agent
// @Tags      orders
// @Security  BearerAuth
// @Produce   json
// @Param     limit  query  int  false  "Rows to return (default 10)"
// @Success   200    {array}  domain.AmountTotal
// @Router    /orders/total-amount-by-agent [get]
func (h *OrderHandler) TotalByAgent(c echo.Context) error {
	return h.totals(c, h.orders.TotalByAgent)
}

// TotalByCountry godoc
//
// @Summary   Order amount per customer country
// @Tags      orders
// @Security  BearerAuth
// @Produce   json
// @Param     limit  query  int  false  "Rows to return (default 10)"
// @Success   200    {array}  domain.AmountTotal
// @Router    /orders/total-amount-by-country [get]
func (h *OrderHandler) TotalByCountry(c echo.Context) error {
	return h.totals(c, h.orders.TotalByCountry)
}

type totalsFunc func(ctx context.Context, limit int) ([]domain.AmountTotal, error)

func (h *OrderHandler) totals(c echo.Context, fn totalsFunc) error {
	limit, err := intQuery(c, "limit")
	if err != nil {
		return err
	}
	rows, err := fn(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}
