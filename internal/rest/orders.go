package rest

import (
	"context"
	"net/http"
	"strconv"

	"plateRank/domain"
	"plateRank/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	OrdersHandler struct {
		validate      *validator.Validate
		ordersService OrdersService
	}

	OrdersService interface {
		CreateOrder(ctx context.Context, data domain.Order) (domain.Order, error)
		GetAllOrders(ctx context.Context) ([]domain.Order, error)
		GetOrder(ctx context.Context, orderID int) (domain.Order, error)
		GetOrderStatus(ctx context.Context, status string, userID int) (domain.Order, error)
		UpdateOrder(ctx context.Context, data domain.Order) error
		DeleteOrder(ctx context.Context, orderID int) error
	}

	OrdersInput struct {
		ItemID   uint64 `json:"item_id" validate:"required"`
		Quantity int    `json:"quantity" validate:"required"`
	}

	UpdateInput struct {
		Quantity int `json:"quantity" validate:"required"`
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		validate:      validator.New(),
		ordersService: ordersService,
	}
}

func (h *OrdersHandler) CreateOrderItem(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var request OrdersInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate order input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	orderItem, err := h.ordersService.CreateOrder(c.Request().Context(), domain.Order{
		UserID:   int(userID),
		ItemID:   request.ItemID,
		Quantity: request.Quantity,
	})
	if err != nil {
		logger.Error("Failed to create order", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(orderItem))
}

func (h *OrdersHandler) GetAllOrders(c echo.Context) error {
	orders, err := h.ordersService.GetAllOrders(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get all orders", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(orders))
}

func (h *OrdersHandler) GetOrderByID(c echo.Context) error {
	id := c.Param("id")
	orderID, _ := strconv.Atoi(id)

	order, err := h.ordersService.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		logger.Error("Failed to get order by id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

func (h *OrdersHandler) UpdateOrder(c echo.Context) error {
	id := c.Param("id")
	orderID, _ := strconv.Atoi(id)

	userID := c.Get("user_id").(uint)

	var request UpdateInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate order input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	err := h.ordersService.UpdateOrder(c.Request().Context(), domain.Order{
		ID:       orderID,
		UserID:   int(userID),
		Quantity: request.Quantity,
	})
	if err != nil {
		logger.Error("Failed to update order", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Order updated successfully"))
}

func (h *OrdersHandler) DeleteOrder(c echo.Context) error {
	id := c.Param("id")
	orderID, _ := strconv.Atoi(id)
	err := h.ordersService.DeleteOrder(c.Request().Context(), orderID)
	if err != nil {
		logger.Error("Failed to delete order", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Order deleted successfully"))
}
