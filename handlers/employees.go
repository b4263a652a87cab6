package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/staffdesk/internal/employees"
	"github.com/staffdesk/staffdesk/pkg/logger"
	"github.com/staffdesk/staffdesk/pkg/metrics"
)

// EmployeeHandler serves the protected /employees routes.
type EmployeeHandler struct {
	svc *employees.Service
}

func NewEmployeeHandler(svc *employees.Service) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// Register routes under /employees; every route goes through the supplied
// auth middleware.
func (h *EmployeeHandler) Register(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	g := rg.Group("/employees", auth)
	g.GET("", h.List)
	g.POST("", h.Create)
	g.DELETE("", h.BulkDelete)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *EmployeeHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("list employees: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.EmployeeOps.WithLabelValues("list").Inc()
	out := make([]map[string]interface{}, 0, len(rows))
	for _, e := range rows {
		out = append(out, e.Public())
	}
	c.JSON(http.StatusOK, out)
}

// Create accepts either a single employee object or an array of them.
func (h *EmployeeHandler) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data format. Expected JSON object or list."})
		return
	}

	if s := strings.TrimSpace(string(body)); s == "" || s == "null" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data format. Expected JSON object or list."})
		return
	}

	var items []employees.Input
	if err := json.Unmarshal(body, &items); err != nil {
		var single employees.Input
		if err := json.Unmarshal(body, &single); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data format. Expected JSON object or list."})
			return
		}
		items = []employees.Input{single}
	}

	res := h.svc.CreateMany(c.Request.Context(), items)
	metrics.EmployeeOps.WithLabelValues("create").Inc()

	switch {
	case res.Inserted > 0 && len(res.Errors) == 0:
		c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("%d employee(s) added successfully.", res.Inserted)})
	case res.Inserted > 0:
		c.JSON(http.StatusMultiStatus, gin.H{
			"message": fmt.Sprintf("Partially successful: %d added.", res.Inserted),
			"errors":  res.Errors,
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to add any employees.", "errors": res.Errors})
	}
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	e, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	metrics.EmployeeOps.WithLabelValues("get").Inc()
	c.JSON(http.StatusOK, e.Public())
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	// a malformed or empty body yields a zero update set, which the service
	// rejects as "no fields to update"
	var in employees.Input
	_ = c.ShouldBindJSON(&in)

	e, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	metrics.EmployeeOps.WithLabelValues("update").Inc()
	c.JSON(http.StatusOK, e.Public())
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteOne(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	metrics.EmployeeOps.WithLabelValues("delete").Inc()
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// BulkDelete expects a JSON array of employee id strings.
func (h *EmployeeHandler) BulkDelete(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expected a list of employee IDs in the request body."})
		return
	}
	var ids []string
	if err := json.Unmarshal(body, &ids); err != nil || ids == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expected a list of employee IDs in the request body."})
		return
	}

	deleted, requested, err := h.svc.DeleteMany(c.Request.Context(), ids)
	if err != nil {
		h.fail(c, err)
		return
	}
	metrics.EmployeeOps.WithLabelValues("bulk_delete").Inc()
	c.JSON(http.StatusOK, gin.H{
		"status":              "deleted",
		"deleted_count":       deleted,
		"requested_ids_count": requested,
	})
}

// fail maps service errors onto HTTP statuses.
func (h *EmployeeHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, employees.ErrInvalidID),
		errors.Is(err, employees.ErrNoFields),
		errors.Is(err, employees.ErrNoIDs),
		errors.Is(err, employees.ErrEmptyName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, employees.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Errorf("employee store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
