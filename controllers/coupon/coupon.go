package coupon

import (
	"strconv"
	"time"

	"unique-travel/logger"
	couponModel "unique-travel/models/coupon"
	"unique-travel/types"
	couponTypes "unique-travel/types/coupon"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// CouponController handles discount-code requests
type CouponController struct {
	DB *gorm.DB
}

func NewCouponController(db *gorm.DB) *CouponController {
	return &CouponController{DB: db}
}

// Store handles POST /coupon (admin)
func (cc *CouponController) Store(c *fiber.Ctx) error {
	var req couponTypes.CouponCreateRequest
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

	expiry, err := time.Parse("2006-01-02", req.ExpiresAt)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "expiresAt must be YYYY-MM-DD",
		})
	}
	// Coupons stay valid through the whole expiry day.
	expiry = now.With(expiry).EndOfDay()

	coupon := couponModel.Coupon{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		ExpiresAt:       expiry,
	}
	if err := cc.DB.Create(&coupon).Error; err != nil {
		logger.Error("Failed to create coupon", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create coupon",
		})
	}

	logger.Success("Coupon created: " + coupon.Code)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Coupon created successfully",
		Data:    coupon,
	})
}

// Index handles GET /coupons
func (cc *CouponController) Index(c *fiber.Ctx) error {
	var coupons []couponModel.Coupon
	if err := cc.DB.Find(&coupons).Error; err != nil {
		logger.Error("Failed to list coupons", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(coupons)
}

// Validate handles POST /validate-coupon: code lookup plus expiry check.
func (cc *CouponController) Validate(c *fiber.Ctx) error {
	var req couponTypes.ValidateCouponRequest
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

	var coupon couponModel.Coupon
	if err := cc.DB.Where("code = ?", req.Code).First(&coupon).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Coupon not found",
			})
		}
		logger.Error("Failed to find coupon", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	if coupon.ExpiresAt.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Coupon has expired",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Coupon is valid",
		Data:    coupon,
	})
}

// Destroy handles DELETE /coupon/:id (admin)
func (cc *CouponController) Destroy(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid coupon id",
		})
	}

	result := cc.DB.Delete(&couponModel.Coupon{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete coupon", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete coupon",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Coupon not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Coupon deleted successfully",
	})
}
