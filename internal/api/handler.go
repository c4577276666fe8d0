package api

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/karpovich/webcore/internal/middleware"
	"github.com/karpovich/webcore/pkg/accounts"
	"github.com/karpovich/webcore/pkg/httperr"
	"github.com/karpovich/webcore/pkg/platform"
)

// Handler exposes the public REST API.
type Handler struct {
	directory *accounts.Directory
	issuer    *middleware.TokenIssuer
	username  string
	password  string
	userID    string
}

// Credentials configures the login endpoint.
type Credentials struct {
	Username string
	Password string
	UserID   string
}

// NewHandler creates the API handler.
func NewHandler(directory *accounts.Directory, issuer *middleware.TokenIssuer, creds Credentials) *Handler {
	return &Handler{
		directory: directory,
		issuer:    issuer,
		username:  strings.TrimSpace(creds.Username),
		password:  creds.Password,
		userID:    creds.UserID,
	}
}

// RegisterRoutes mounts the API routes on the given group.
func RegisterRoutes(group *gin.RouterGroup, handler *Handler) {
	group.POST("/login", handler.login)
	group.GET("/me", handler.me)
	group.GET("/accounts/:id", handler.getAccount)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("invalid login payload: %w", err))
		return
	}
	if !h.matchCredential(req.Username, req.Password) {
		respondError(c, fmt.Errorf("%w: unknown credential", middleware.ErrNotAuthenticated))
		return
	}
	token, err := h.issuer.Issue(h.userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "Bearer"})
}

func (h *Handler) me(c *gin.Context) {
	userID, err := middleware.UserIDFromRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":  userID,
		"platform": platform.Detect(c.Request),
	})
}

func (h *Handler) getAccount(c *gin.Context) {
	id, err := accounts.ParseAccountID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	account, err := h.directory.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *Handler) matchCredential(username, password string) bool {
	if h.username == "" || h.password == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(h.username)) != 1 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(h.password)) == 1
}

// respondError writes the error as JSON with its status selected by httperr.
// Handlers never choose status codes from error text themselves.
func respondError(c *gin.Context, err error) {
	c.JSON(httperr.Status(err), gin.H{"error": err.Error()})
}
