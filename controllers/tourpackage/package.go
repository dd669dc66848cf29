package tourpackage

import (
	"strconv"

	"unique-travel/logger"
	storyModel "unique-travel/models/story"
	packageModel "unique-travel/models/tourpackage"
	"unique-travel/types"
	packageTypes "unique-travel/types/tourpackage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PackageController handles tour-package catalog requests
type PackageController struct {
	DB *gorm.DB
}

func NewPackageController(db *gorm.DB) *PackageController {
	return &PackageController{DB: db}
}

// Featured handles GET /threePackages: a random sample of 3 for the
// landing page.
func (pc *PackageController) Featured(c *fiber.Ctx) error {
	var packages []packageModel.Package
	if err := pc.DB.Order("RANDOM()").Limit(3).Find(&packages).Error; err != nil {
		logger.Error("Failed to sample packages", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(packages)
}

// Index handles GET /packages
func (pc *PackageController) Index(c *fiber.Ctx) error {
	var packages []packageModel.Package
	if err := pc.DB.Find(&packages).Error; err != nil {
		logger.Error("Failed to list packages", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(packages)
}

// Show handles GET /package/:id
func (pc *PackageController) Show(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid package id",
		})
	}

	var pkg packageModel.Package
	if err := pc.DB.First(&pkg, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Package not found",
			})
		}
		logger.Error("Failed to find package", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(pkg)
}

// Store handles POST /package (admin)
func (pc *PackageController) Store(c *fiber.Ctx) error {
	var req packageTypes.PackageCreateRequest
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

	pkg := packageModel.Package{
		Title:    req.Title,
		TripType: req.TripType,
		Price:    req.Price,
		About:    req.About,
		Photos:   storyModel.StringSlice(req.Photos),
	}
	if err := pc.DB.Create(&pkg).Error; err != nil {
		logger.Error("Failed to create package", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create package",
		})
	}

	logger.Success("Package created: " + pkg.Title)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Package created successfully",
		Data:    pkg,
	})
}
