package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/sales-api/internal/core/domain"
	"github.com/salesdesk/sales-api/internal/core/ports"
)

type CustomerHandler struct {
	customers ports.CustomerService
}

func NewCustomerHandler(customers ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

type createCustomerRequest struct {
	CustCode       string  `json:"custCode" validate:"required,max=6"`
	CustName       string  `json:"custName" validate:"required,max=40"`
	CustCity       string  `json:"custCity" validate:"max=35"`
	WorkingArea    string  `json:"workingArea" validate:"required,max=35"`
	CustCountry    string  `json:"custCountry" validate:"required,max=20"`
	Grade          int     `json:"grade" validate:"gte=0"`
	OpeningAmt     float64 `json:"openingAmt" validate:"gte=0"`
	ReceiveAmt     float64 `json:"receiveAmt" validate:"gte=0"`
	PaymentAmt     float64 `json:"paymentAmt" validate:"gte=0"`
	OutstandingAmt float64 `json:"outstandingAmt" validate:"gte=0"`
	PhoneNo        string  `json:"phoneNo" validate:"required,max=17"`
	AgentCode      string  `json:"agentCode" validate:"required,max=6"`
}

type updateCustomerRequest struct {
	CustName       *string  `json:"custName" validate:"omitempty,max=40"`
	CustCity       *string  `json:"custCity" validate:"omitempty,max=35"`
	WorkingArea    *string  `json:"workingArea" validate:"omitempty,max=35"`
	CustCountry    *string  `json:"custCountry" validate:"omitempty,max=20"`
	Grade          *int     `json:"grade" validate:"omitempty,gte=0"`
	OpeningAmt     *float64 `json:"openingAmt" validate:"omitempty,gte=0"`
	ReceiveAmt     *float64 `json:"receiveAmt" validate:"omitempty,gte=0"`
	PaymentAmt     *float64 `json:"paymentAmt" validate:"omitempty,gte=0"`
	OutstandingAmt *float64 `json:"outstandingAmt" validate:"omitempty,gte=0"`
	PhoneNo        *string  `json:"phoneNo" validate:"omitempty,max=17"`
	AgentCode      *string  `json:"agentCode" validate:"omitempty,max=6"`
}

// Create godoc
//
// @Summary   Create customer
// @Tags      customers
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     body  body      createCustomerRequest  true  "Customer"
// @Success   201   {object}  domain.Customer
// @Failure   400   {object}  errorResponse
// @Failure   404   {object}  errorResponse
// @Failure   409   {object}  errorResponse
// @Router    /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cust, err := h.customers.Create(c.Request().Context(), &domain.Customer{
		Code:           req.CustCode,
		Name:           req.CustName,
		City:           req.CustCity,
		WorkingArea:    req.WorkingArea,
		Country:        req.CustCountry,
		Grade:          req.Grade,
		OpeningAmt:     req.OpeningAmt,
		ReceiveAmt:     req.ReceiveAmt,
		PaymentAmt:     req.PaymentAmt,
		OutstandingAmt: req.OutstandingAmt,
		PhoneNo:        req.PhoneNo,
		AgentCode:      req.AgentCode,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cust)
}

// List godoc
//
// @Summary   List customers
// @Tags      customers
// @Security  BearerAuth
// @Produce   json
// @Success   200  {array}  domain.Customer
// @Router    /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.customers.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Get godoc
//
// @Summary   Get customer
// @Tags      customers
// @Security  BearerAuth
// @Produce   json
// @Param     code  path      string  true  "Customer code"
// @Success   200   {object}  domain.Customer
// @Failure   404   {object}  errorResponse
// @Router    /customers/{code} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	cust, err := h.customers.Get(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cust)
}

// Update godoc
//
// @Summary   Update customer
// @Tags      customers
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     code  path      string                 true  "Customer code"
// @Param     body  body      updateCustomerRequest  true  "Fields to change"
// @Success   200   {object}  domain.Customer
// @Failure   404   {object}  errorResponse
// @Router    /customers/{code} [patch]
func (h *CustomerHandler) Update(c echo.Context) error {
	var req updateCustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cust, err := h.customers.Update(c.Request().Context(), c.Param("code"), ports.CustomerUpdate{
		Name:           req.CustName,
		City:           req.CustCity,
		WorkingArea:    req.WorkingArea,
		Country:        req.CustCountry,
		Grade:          req.Grade,
		OpeningAmt:     req.OpeningAmt,
		ReceiveAmt:     req.ReceiveAmt,
		PaymentAmt:     req.PaymentAmt,
		OutstandingAmt: req.OutstandingAmt,
		PhoneNo:        req.PhoneNo,
		AgentCode:      req.AgentCode,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cust)
}

// Delete godoc
//
// @Summary   Delete customer
// @Tags      customers
// @Security  BearerAuth
// @Produce   json
// @Param     code  path      string  true  "Customer code"
// @Success   200   {object}  affectedResponse
// @Failure   404   {object}  errorResponse
// @Router    /customers/{code} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	n, err := h.customers.Delete(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, affectedResponse{Affected: n})
}
