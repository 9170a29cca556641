package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"careerpath/internal/assessment"
	"careerpath/internal/auth"
	"careerpath/internal/domain"
	"careerpath/internal/guidance"
	"careerpath/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users       service.UserService
	predictions service.PredictionService
	guidance    *guidance.Service
	jwtSecret   []byte
	tokenTTL    time.Duration
}

func NewHandler(users service.UserService, predictions service.PredictionService, guide *guidance.Service, jwtSecret string, tokenTTL time.Duration) *Handler {
	return &Handler{
		users:       users,
		predictions: predictions,
		guidance:    guide,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)
		api.GET("/roles", h.listRoles)
		api.GET("/roles/:role/related", h.relatedCareers)
		api.GET("/guidance/:role", h.getGuidance)
	}

	// prediction works anonymously (demo mode) but resolves a token when present
	api.POST("/predictions", auth.Optional(h.jwtSecret), h.predict)

	authed := api.Group("", auth.Required(h.jwtSecret))
	{
		authed.POST("/auth/logout", h.logout)
		authed.GET("/me", h.me)
		authed.GET("/predictions", h.history)
		authed.GET("/dashboard", h.dashboard)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	CreatedAt string `json:"created_at"`
}

type PredictionRecordResponse struct {
	ID        int64  `json:"id"`
	Result    string `json:"prediction_result"`
	InputData string `json:"input_data"`
	CreatedAt string `json:"created_at"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateIdentity) {
			c.JSON(http.StatusConflict, gin.H{"error": "username or email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, userToResponse(user))
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// unknown user and wrong password get the same response
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := auth.GenerateToken(user.ID, h.jwtSecret, h.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userToResponse(user),
	})
}

// logout acknowledges the session transition; tokens are stateless, the
// client discards its copy.
func (h *Handler) logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func (h *Handler) me(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *Handler) predict(c *gin.Context) {
	var a assessment.Assessment
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := auth.UserIDFromContext(c)
	result, err := h.predictions.Predict(c.Request.Context(), a, userID)
	if err != nil {
		if errors.Is(err, assessment.ErrUnknownOption) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":      result.Role,
		"related":   result.Related,
		"persisted": userID > 0,
	})
}

func (h *Handler) history(c *gin.Context) {
	limit := service.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	records, err := h.predictions.History(c.Request.Context(), auth.UserIDFromContext(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]PredictionRecordResponse, len(records))
	for i := range records {
		resp[i] = recordToResponse(records[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) dashboard(c *gin.Context) {
	userID := auth.UserIDFromContext(c)

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	records, err := h.predictions.History(c.Request.Context(), userID, service.DefaultHistoryLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]PredictionRecordResponse, len(records))
	for i := range records {
		resp[i] = recordToResponse(records[i])
	}
	c.JSON(http.StatusOK, gin.H{
		"user":               userToResponse(user),
		"total_predictions":  len(records),
		"recent_predictions": resp,
	})
}

func (h *Handler) listRoles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"roles": domain.JobRoles})
}

func (h *Handler) relatedCareers(c *gin.Context) {
	role := c.Param("role")
	related, ok := domain.RelatedCareers[role]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown job role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role, "related": related})
}

func (h *Handler) getGuidance(c *gin.Context) {
	role := c.Param("role")
	if role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role is required"})
		return
	}

	kind, err := guidance.ParseKind(c.DefaultQuery("kind", string(guidance.KindRoadmap)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.guidance.Get(c.Request.Context(), role, kind)
	c.JSON(http.StatusOK, gin.H{
		"role":    result.Role,
		"kind":    result.Kind,
		"content": result.Content,
		"source":  result.Source,
	})
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func recordToResponse(record domain.PredictionRecord) PredictionRecordResponse {
	return PredictionRecordResponse{
		ID:        record.ID,
		Result:    record.Result,
		InputData: record.InputData,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
	}
}
