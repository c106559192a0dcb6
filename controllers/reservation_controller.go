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

type ReservationController struct {
	reservationService *services.ReservationService
}

func NewReservationController() *ReservationController {
	return &ReservationController{reservationService: services.NewReservationService()}
}

// The grid for a date is cached under a per-date version; any write to
// that date bumps the version instead of hunting down every guests
// variant of the key.
func availabilityCacheKey(ctx context.Context, date string, guests int) string {
	version := "0"
	if v, err := models.RedisClient.Get(ctx, "availability_ver_"+date).Result(); err == nil {
		version = v
	}
	return fmt.Sprintf("availability_%s_g%d_v%s", date, guests, version)
}

func bumpAvailabilityVersion(date string) {
	if models.RedisClient == nil {
		return
	}
	models.RedisClient.Incr(context.Background(), "availability_ver_"+date)
}

// @Summary Query availability
// @Description Get the full slot grid for a date and party size
// @Tags Reservations
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param guests query int true "Party size"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /reservations/availability [get]
func (ctrl *ReservationController) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	guests, _ := strconv.Atoi(c.DefaultQuery("guests", "2"))
	ctx := c.Request.Context()

	var cacheKey string
	if models.RedisClient != nil {
		cacheKey = availabilityCacheKey(ctx, date, guests)
		if cached, err := models.RedisClient.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	availability, err := ctrl.reservationService.Availability(ctx, date, guests)
	if err != nil {
		respondError(c, err)
		return
	}

	response := models.Response{Success: true, Message: "Availability retrieved successfully", Data: availability}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Create reservation
// @Description Book a table for a date and time slot
// @Tags Reservations
// @Accept json
// @Produce json
// @Param reservation body models.CreateReservationRequest true "Reservation data"
// @Success 201 {object} models.Response
// @Failure 422 {object} models.ErrorResponse
// @Router /reservations [post]
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var req models.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	reservation, err := ctrl.reservationService.CreateReservation(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	bumpAvailabilityVersion(reservation.Date)
	c.JSON(201, models.Response{Success: true, Message: "Reservation created successfully", Data: reservation})
}

// @Summary Track reservation
// @Description Look up a reservation by its code
// @Tags Reservations
// @Produce json
// @Param code query string true "Reservation code"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /reservations/track [get]
func (ctrl *ReservationController) TrackReservation(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		respondError(c, utils.ValidationError(models.FieldError{Field: "code", Message: "is required"}))
		return
	}

	reservation, err := ctrl.reservationService.TrackReservation(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Reservation retrieved successfully", Data: reservation})
}

// @Summary Cancel reservation
// @Description Cancel a reservation by code and email
// @Tags Reservations
// @Accept json
// @Produce json
// @Param cancellation body models.CancelReservationRequest true "Code and email"
// @Success 200 {object} models.Response
// @Failure 422 {object} models.ErrorResponse
// @Router /reservations/cancel [post]
func (ctrl *ReservationController) CancelReservation(c *gin.Context) {
	var req models.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	reservation, err := ctrl.reservationService.CancelReservation(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	bumpAvailabilityVersion(reservation.Date)
	c.JSON(200, models.Response{Success: true, Message: "Reservation cancelled successfully", Data: reservation})
}

// @Summary Get all reservations
// @Description Get reservations with pagination (Admin)
// @Tags Admin - Reservations
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param date query string false "Filter by date"
// @Param status query string false "Filter by status"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/reservations [get]
func (ctrl *ReservationController) GetAllReservations(c *gin.Context) {
	page, limit := getPaginationParams(c, 10)
	date := c.Query("date")
	status := c.Query("status")

	reservations, total, err := ctrl.reservationService.ListReservations(c.Request.Context(), date, status, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, buildPaginatedResponse(c, "Reservations retrieved successfully", reservations, page, limit, total))
}

// @Summary Update reservation status
// @Description Move a reservation through its status lifecycle (Admin)
// @Tags Admin - Reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param status body models.UpdateReservationStatusRequest true "Target status"
// @Success 200 {object} models.Response
// @Failure 422 {object} models.ErrorResponse
// @Router /admin/reservations/{id}/status [patch]
func (ctrl *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, utils.ValidationError(models.FieldError{Field: "id", Message: "must be a positive integer"}))
		return
	}

	var req models.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	reservation, err := ctrl.reservationService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	bumpAvailabilityVersion(reservation.Date)
	c.JSON(200, models.Response{Success: true, Message: "Reservation status updated successfully", Data: reservation})
}
