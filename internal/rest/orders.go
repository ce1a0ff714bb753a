package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"souqStore/domain"
	"souqStore/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	OrdersHandler struct {
		validate      *validator.Validate
		ordersService OrdersService
		timeout       time.Duration
	}

	OrdersService interface {
		CreateOrder(ctx context.Context, userID uint64, items []domain.OrderItem) (domain.Order, error)
		GetAllOrders(ctx context.Context) ([]domain.Order, error)
		GetOrder(ctx context.Context, id uint64) (domain.Order, error)
	}

	OrderItemInput struct {
		ProductID uint64 `json:"product_id" validate:"required"`
		Quantity  int    `json:"quantity" validate:"required,gt=0"`
	}

	CreateOrderInput struct {
		UserID uint64           `json:"user_id" validate:"required"`
		Items  []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		validate:      validator.New(),
		ordersService: ordersService,
		timeout:       10 * time.Second,
	}
}

func (h *OrdersHandler) CreateOrder(c echo.Context) error {
	var request CreateOrderInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate order request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	items := make([]domain.OrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.CreateOrder(ctx, request.UserID, items)
	if err != nil {
		logger.Error("Failed to create order", err)
		return c.JSON(http.StatusInternalServerError, newServerError(err))
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(order))
}

func (h *OrdersHandler) GetAllOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.ordersService.GetAllOrders(ctx)
	if err != nil {
		logger.Error("Failed to get all orders", err)
		return c.JSON(http.StatusInternalServerError, newServerError(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(orders))
}

func (h *OrdersHandler) GetOrderByID(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("Invalid order id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.GetOrder(ctx, orderID)
	if err != nil {
		if err.Error() == "order not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to get order by id", err)
		return c.JSON(http.StatusInternalServerError, newServerError(err))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}
