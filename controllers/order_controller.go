package controllers

import (
	"strconv"

	"bistro-backend/models"
	"bistro-backend/services"
	"bistro-backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{orderService: services.NewOrderService()}
}

// @Summary Place order
// @Description Place a new pickup or delivery order
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) PlaceOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	order, err := ctrl.orderService.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(201, models.Response{Success: true, Message: "Order created successfully", Data: order})
}

// @Summary Track order
// @Description Look up an order by order number and email
// @Tags Orders
// @Produce json
// @Param order_number query string true "Order number"
// @Param email query string true "Customer email"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/track [get]
func (ctrl *OrderController) TrackOrder(c *gin.Context) {
	number := c.Query("order_number")
	email := c.Query("email")

	fields := []models.FieldError{}
	if number == "" {
		fields = append(fields, models.FieldError{Field: "order_number", Message: "is required"})
	}
	if email == "" {
		fields = append(fields, models.FieldError{Field: "email", Message: "is required"})
	}
	if len(fields) > 0 {
		respondError(c, utils.ValidationError(fields...))
		return
	}

	order, err := ctrl.orderService.TrackOrder(c.Request.Context(), number, email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Order retrieved successfully", Data: order})
}

// @Summary Cancel order
// @Description Cancel an order by order number and email; restores any reserved stock
// @Tags Orders
// @Accept json
// @Produce json
// @Param cancellation body models.CancelOrderRequest true "Order number and email"
// @Success 200 {object} models.Response
// @Failure 422 {object} models.ErrorResponse
// @Router /orders/cancel [post]
func (ctrl *OrderController) CancelOrder(c *gin.Context) {
	var req models.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	order, err := ctrl.orderService.CancelOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Order cancelled successfully", Data: order})
}

// @Summary Get all orders
// @Description Get all orders with pagination (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Param search query string false "Search by order number"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit := getPaginationParams(c, 10)
	status := c.Query("status")
	search := c.Query("search")

	orders, total, err := ctrl.orderService.ListOrders(c.Request.Context(), status, search, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, buildPaginatedResponse(c, "Orders retrieved successfully", orders, page, limit, total))
}

// @Summary Get order by ID
// @Description Get order details (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, utils.ValidationError(models.FieldError{Field: "id", Message: "must be a positive integer"}))
		return
	}

	order, err := ctrl.orderService.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Order retrieved successfully", Data: order})
}

// @Summary Update order status
// @Description Move an order through its status lifecycle (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param status body models.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} models.Response
// @Failure 422 {object} models.ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, utils.ValidationError(models.FieldError{Field: "id", Message: "must be a positive integer"}))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	order, err := ctrl.orderService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Order status updated successfully", Data: order})
}
