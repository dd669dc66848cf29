package dashboard

import (
	"unique-travel/logger"
	bookingModel "unique-travel/models/booking"
	paymentModel "unique-travel/models/payment"
	storyModel "unique-travel/models/story"
	packageModel "unique-travel/models/tourpackage"
	userModel "unique-travel/models/user"
	"unique-travel/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DashboardController serves aggregate counts for the admin dashboard
type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// Stats handles GET /admin-stats (admin)
func (dc *DashboardController) Stats(c *fiber.Ctx) error {
	var users, packages, stories, bookings int64
	var revenue float64

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&userModel.User{}, &users},
		{&packageModel.Package{}, &packages},
		{&storyModel.Story{}, &stories},
		{&bookingModel.Booking{}, &bookings},
	}
	for _, q := range counts {
		if err := dc.DB.Model(q.model).Count(q.dest).Error; err != nil {
			logger.Error("Failed to count rows", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Internal server error",
			})
		}
	}

	err := dc.DB.Model(&paymentModel.Payment{}).
		Where("status = ?", paymentModel.StatusSuccess).
		Select("COALESCE(SUM(amount), 0)").Scan(&revenue).Error
	if err != nil {
		logger.Error("Failed to sum revenue", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"totalUsers":    users,
		"totalPackages": packages,
		"totalStories":  stories,
		"totalBookings": bookings,
		"totalRevenue":  revenue,
	})
}
