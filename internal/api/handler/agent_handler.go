package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/sales-api/internal/core/domain"
	"github.com/salesdesk/sales-api/internal/core/ports"
)

type AgentHandler struct {
	agents ports.AgentService
}

func NewAgentHandler(agents ports.AgentService) *AgentHandler {
	return &AgentHandler{agents: agents}
}

type createAgentRequest struct {
	AgentCode   string  `json:"agentCode" validate:"required,max=6"`
	AgentName   string  `json:"agentName" validate:"required,max=40"`
	WorkingArea string  `json:"workingArea" validate:"max=35"`
	Commission  float64 `json:"commission" validate:"gte=0,lte=1"`
	PhoneNo     string  `json:"phoneNo" validate:"max=15"`
	Country     string  `json:"country" validate:"max=25"`
}

type updateAgentRequest struct {
	AgentName   *string  `json:"agentName" validate:"omitempty,max=40"`
	WorkingArea *string  `json:"workingArea" validate:"omitempty,max=35"`
	Commission  *float64 `json:"commission" validate:"omitempty,gte=0,lte=1"`
	PhoneNo     *string  `json:"phoneNo" validate:"omitempty,max=15"`
	Country     *string  `json:"country" validate:"omitempty,max=25"`
}

// Create godoc
//
// @Summary   Create agent
// @Tags      agents
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     body  body      createAgentRequest  true  "Agent"
// @Success   201   {object}  domain.Agent
// @Failure   400   {object}  errorResponse
// @Failure   409   {object}  errorResponse
// @Router    /agents [post]
func (h *AgentHandler) Create(c echo.Context) error {
	var req createAgentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	a, err := h.agents.Create(c.Request().Context(), &domain.Agent{
		Code:        req.AgentCode,
		Name:        req.AgentName,
		WorkingArea: req.WorkingArea,
		Commission:  req.Commission,
		PhoneNo:     req.PhoneNo,
		Country:     req.Country,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

// List godoc
//
// @Summary   List agents
// @Tags      agents
// @Security  BearerAuth
// @Produce   json
// @Success   200  {array}  domain.Agent
// @Router    /agents [get]
func (h *AgentHandler) List(c echo.Context) error {
	agents, err := h.agents.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, agents)
}

// Get godoc
//
// @Summary   Get agent
// @Tags      agents
// @Security  BearerAuth
// @Produce   json
// @Param     code  path      string  true  "Agent code"
// @Success   200   {object}  domain.Agent
// @Failure   404   {object}  errorResponse
// @Router    /agents/{code} [get]
func (h *AgentHandler) Get(c echo.Context) error {
	a, err := h.agents.Get(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// Update godoc
//
// @Summary   Update agent
// @Tags      agents
// @Security  BearerAuth
// @Accept    json
// @Produce   json
// @Param     code  path      string              true  "Agent code"
// @Param     body  body      updateAgentRequest  true  "Fields to change"
// @Success   200   {object}  domain.Agent
// @Failure   404   {object}  errorResponse
// @Router    /agents/{code} [patch]
func (h *AgentHandler) Update(c echo.Context) error {
	var req updateAgentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	a, err := h.agents.Update(c.Request().Context(), c.Param("code"), ports.AgentUpdate{
		Name:        req.AgentName,
		WorkingArea: req.WorkingArea,
		Commission:  req.Commission,
		PhoneNo:     req.PhoneNo,
		Country:     req.Country,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// Delete godoc
//
// @Summary   Delete agent
// @Tags      agents
// @Security  BearerAuth
// @Produce   json
// @Param     code  path      string  true  "Agent code"
// @Success   200   {object}  affectedResponse
// @Failure   404   {object}  errorResponse
// @Router    /agents/{code} [delete]
func (h *AgentHandler) Delete(c echo.Context) error {
	n, err := h.agents.Delete(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, affectedResponse{Affected: n})
}
