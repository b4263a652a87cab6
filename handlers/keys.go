package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/staffdesk/internal/apikeys"
	"github.com/staffdesk/staffdesk/pkg/logger"
	"github.com/staffdesk/staffdesk/pkg/metrics"
)

// GenerateKeyRequest is the optional body of POST /generate_key.
type GenerateKeyRequest struct {
	Name      string `json:"name"`
	DaysValid int    `json:"days_valid"`
}

// KeyHandler serves the public key-issuance routes.
type KeyHandler struct {
	svc *apikeys.Service
}

func NewKeyHandler(svc *apikeys.Service) *KeyHandler {
	return &KeyHandler{svc: svc}
}

// Register routes; key issuance is deliberately unauthenticated.
func (h *KeyHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/", h.Index)
	rg.POST("/generate_key", h.GenerateKey)
}

func (h *KeyHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "Employee API with MongoDB. Use /generate_key first."})
}

// GenerateKey issues a new API key. Name defaults to "client" and validity
// to 30 days when the body omits them; a missing or malformed body is
// treated as empty.
func (h *KeyHandler) GenerateKey(c *gin.Context) {
	var req GenerateKeyRequest
	_ = c.ShouldBindJSON(&req)

	raw, created, expires, err := h.svc.Create(c.Request.Context(), req.Name, req.DaysValid)
	if err != nil {
		logger.Errorf("key issuance failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate key"})
		return
	}
	metrics.KeysIssued.Inc()
	logger.Infof("issued API key %q valid until %s", req.Name, expires.Format(time.RFC3339))

	c.JSON(http.StatusOK, gin.H{
		"api_key":    raw,
		"created_at": created.Format(time.RFC3339Nano),
		"expires_at": expires.Format(time.RFC3339Nano),
		"note":       "Save this key now. It will not be shown again.",
	})
}
