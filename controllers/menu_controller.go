package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"bistro-backend/models"
	"bistro-backend/services"
	"bistro-backend/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menuService *services.MenuService
}

func NewMenuController() *MenuController {
	return &MenuController{menuService: services.NewMenuService()}
}

func menuCacheKey(category string, page, limit int) string {
	return fmt.Sprintf("menu_list_%s_p%d_l%d", category, page, limit)
}

func invalidateMenuCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "menu_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// @Summary Get menu
// @Description Get paginated menu, optionally filtered by category
// @Tags Menu
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param category query string false "Filter by category"
// @Success 200 {object} models.PaginatedResponse
// @Router /menu [get]
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	page, limit := getPaginationParams(c, 10)
	category := c.Query("category")

	cacheKey := menuCacheKey(category, page, limit)
	ctx := c.Request.Context()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	response, err := ctrl.menuService.GetAllItems(ctx, category, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Get menu item
// @Description Get a single menu item by ID
// @Tags Menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /menu/{id} [get]
func (ctrl *MenuController) GetMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, utils.ValidationError(models.FieldError{Field: "id", Message: "must be a positive integer"}))
		return
	}

	item, err := ctrl.menuService.GetItemByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Menu item retrieved successfully", Data: item})
}

// @Summary Create menu item
// @Description Create a new menu item (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param item body models.CreateMenuItemRequest true "Menu item data"
// @Success 201 {object} models.Response
// @Router /admin/menu [post]
func (ctrl *MenuController) CreateMenuItem(c *gin.Context) {
	var req models.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	item, err := ctrl.menuService.CreateItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateMenuCache()
	c.JSON(201, models.Response{Success: true, Message: "Menu item created successfully", Data: item})
}

// @Summary Update menu item
// @Description Update an existing menu item (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param item body models.UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Router /admin/menu/{id} [patch]
func (ctrl *MenuController) UpdateMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, utils.ValidationError(models.FieldError{Field: "id", Message: "must be a positive integer"}))
		return
	}

	var req models.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	item, err := ctrl.menuService.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateMenuCache()
	c.JSON(200, models.Response{Success: true, Message: "Menu item updated successfully", Data: item})
}

// @Summary Delete menu item
// @Description Mark a menu item unavailable (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.Response
// @Router /admin/menu/{id} [delete]
func (ctrl *MenuController) DeleteMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, utils.ValidationError(models.FieldError{Field: "id", Message: "must be a positive integer"}))
		return
	}

	if err := ctrl.menuService.DeleteItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	invalidateMenuCache()
	c.JSON(200, models.Response{Success: true, Message: "Menu item deleted successfully", Data: gin.H{"id": id}})
}
