package guide

import (
	"unique-travel/logger"
	guideModel "unique-travel/models/guide"
	"unique-travel/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GuideController serves the tour-guide catalog
type GuideController struct {
	DB *gorm.DB
}

func NewGuideController(db *gorm.DB) *GuideController {
	return &GuideController{DB: db}
}

// Featured handles GET /guides: a random sample of 6 for the home page.
func (gc *GuideController) Featured(c *fiber.Ctx) error {
	var guides []guideModel.Guide
	if err := gc.DB.Order("RANDOM()").Limit(6).Find(&guides).Error; err != nil {
		logger.Error("Failed to sample guides", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(guides)
}

// Index handles GET /allGuides
func (gc *GuideController) Index(c *fiber.Ctx) error {
	var guides []guideModel.Guide
	if err := gc.DB.Find(&guides).Error; err != nil {
		logger.Error("Failed to list guides", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(guides)
}
