package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/paquirobles/cuadros-reserve/internal/domain"
	"github.com/paquirobles/cuadros-reserve/internal/ports"
	"github.com/paquirobles/cuadros-reserve/pkg/httpx"
)

// Handler — HTTP-хендлеры поверх движка резервирования.
type Handler struct {
	service ports.CartService
	log     ports.Logger
}

// NewHandler — конструктор Handler.
func NewHandler(service ports.CartService, log ports.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// NewRouter — собирает gin-роутер: служебные эндпоинты без авторизации,
// всё остальное — за OwnerIDMiddleware (владельца проставляет шлюз).
func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// доступность товара — публичные чтения каталога, владелец не нужен
	r.GET("/products/:id/availability", h.productAvailability)
	r.GET("/products/sold", h.soldProducts)

	cart := r.Group("/cart", httpx.OwnerIDMiddleware())
	{
		cart.GET("", h.getCart)
		cart.DELETE("", h.clearCart)
		cart.POST("/items", h.addProduct)
		cart.DELETE("/items/:id", h.removeProduct)
	}

	return r
}

type addProductRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

func (h *Handler) addProduct(c *gin.Context) {
	owner, ok := httpx.OwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing owner id"})
		return
	}

	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}

	res, err := h.service.AddProduct(c.Request.Context(), owner, req.ProductID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) removeProduct(c *gin.Context) {
	owner, ok := httpx.OwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing owner id"})
		return
	}

	lineID := c.Param("id")
	if lineID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty line id"})
		return
	}

	if err := h.service.RemoveProduct(c.Request.Context(), owner, lineID); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

func (h *Handler) clearCart(c *gin.Context) {
	owner, ok := httpx.OwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing owner id"})
		return
	}

	if err := h.service.ClearCart(c.Request.Context(), owner); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (h *Handler) getCart(c *gin.Context) {
	owner, ok := httpx.OwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing owner id"})
		return
	}

	cart, err := h.service.GetCart(c.Request.Context(), owner)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) productAvailability(c *gin.Context) {
	productID := c.Param("id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty product id"})
		return
	}

	status, err := h.service.ProductAvailability(c.Request.Context(), productID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *Handler) soldProducts(c *gin.Context) {
	ids, err := h.service.SoldProducts(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"product_ids": ids})
}

// writeError — единая трансляция ошибок движка в HTTP-статусы.
// 409 — стоит повторить позже или поправить корзину; 410 — терминально,
// повторять бессмысленно; 503 — хранилище недоступно, ретрай уместен.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrLimitReached),
		errors.Is(err, domain.ErrHighDemand),
		errors.Is(err, domain.ErrDuplicateInCart):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAlreadySold):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrBackendUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "order store unavailable"})
	default:
		h.log.Errorf(c.Request.Context(), "unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
