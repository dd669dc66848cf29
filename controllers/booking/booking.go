package booking

import (
	"fmt"
	"strconv"
	"time"

	"unique-travel/logger"
	"unique-travel/middleware"
	bookingModel "unique-travel/models/booking"
	"unique-travel/types"
	bookingTypes "unique-travel/types/booking"
	"unique-travel/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewBookingController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{DB: db, Logger: asyncLogger}
}

// Store handles POST /booking. The tourist identity comes from the verified
// claims, never from the body.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	tourDate, err := time.Parse("2006-01-02", req.TourDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "tourDate must be YYYY-MM-DD",
		})
	}
	// Tours run per calendar day; normalize whatever time part came in.
	tourDate = now.With(tourDate).BeginningOfDay()

	b := bookingModel.Booking{
		TouristEmail: middleware.ClaimsEmail(c),
		TouristName:  req.TouristName,
		GuideEmail:   req.GuideEmail,
		PackageID:    req.PackageID,
		PackageTitle: req.PackageTitle,
		TourDate:     tourDate,
		Price:        req.Price,
		Status:       bookingModel.StatusPending,
	}

	if err := bc.DB.Create(&b).Error; err != nil {
		logger.Error("Failed to create booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save booking",
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	bc.Logger.Log(logEntry)

	logger.Success(fmt.Sprintf("Booking created successfully with ID: %d", b.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data:    b,
	})
}

// ByTourist handles GET /bookings/:email
func (bc *BookingController) ByTourist(c *fiber.Ctx) error {
	email := c.Params("email")

	var bookings []bookingModel.Booking
	if err := bc.DB.Where("tourist_email = ?", email).Find(&bookings).Error; err != nil {
		logger.Error("Failed to list bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(bookings)
}

// ByGuide handles GET /guide-bookings/:email
func (bc *BookingController) ByGuide(c *fiber.Ctx) error {
	email := c.Params("email")

	var bookings []bookingModel.Booking
	if err := bc.DB.Where("guide_email = ?", email).Find(&bookings).Error; err != nil {
		logger.Error("Failed to list guide bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(bookings)
}

// Index handles GET /bookings (admin)
func (bc *BookingController) Index(c *fiber.Ctx) error {
	var bookings []bookingModel.Booking
	if err := bc.DB.Find(&bookings).Error; err != nil {
		logger.Error("Failed to list bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(bookings)
}

// UpdateStatus handles PATCH /booking-status/:id: a guide's accept/reject
// decision. Only Pending bookings can be decided.
func (bc *BookingController) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
		})
	}

	var req bookingTypes.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if !bookingModel.IsGuideDecision(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "status must be Accepted or Rejected",
		})
	}

	var b bookingModel.Booking
	if err := bc.DB.First(&b, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Booking not found",
			})
		}
		logger.Error("Failed to find booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	if !bookingModel.CanTransition(b.Status, req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: fmt.Sprintf("cannot move booking from %s to %s", b.Status, req.Status),
		})
	}

	if err := bc.DB.Model(&b).Update("status", req.Status).Error; err != nil {
		logger.Error("Failed to update booking status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update booking status",
		})
	}

	logger.Success(fmt.Sprintf("Booking %d moved to %s", b.ID, req.Status))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking status updated successfully",
		Data:    b,
	})
}

// Destroy handles DELETE /booking/:id
func (bc *BookingController) Destroy(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
		})
	}

	result := bc.DB.Delete(&bookingModel.Booking{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete booking", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete booking",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Booking not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking deleted successfully",
	})
}
