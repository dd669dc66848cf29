package application

import (
	"errors"
	"fmt"
	"strconv"

	"unique-travel/logger"
	"unique-travel/middleware"
	applicationModel "unique-travel/models/application"
	guideModel "unique-travel/models/guide"
	applicationService "unique-travel/services/application"
	"unique-travel/types"
	applicationTypes "unique-travel/types/application"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Approver carries out the transactional approval sequence.
type Approver interface {
	Approve(id uint64) (*guideModel.Guide, error)
}

// ApplicationController handles tour-guide candidacy requests
type ApplicationController struct {
	DB      *gorm.DB
	Service Approver
}

func NewApplicationController(db *gorm.DB, svc Approver) *ApplicationController {
	return &ApplicationController{DB: db, Service: svc}
}

// Store handles POST /application
func (ac *ApplicationController) Store(c *fiber.Ctx) error {
	var req applicationTypes.ApplicationCreateRequest
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

	app := applicationModel.Application{
		ApplicantEmail: middleware.ClaimsEmail(c),
		ApplicantName:  req.Name,
		PhotoURL:       req.PhotoURL,
		Title:          req.Title,
		Reason:         req.Reason,
		CVLink:         req.CVLink,
	}
	if err := ac.DB.Create(&app).Error; err != nil {
		logger.Error("Failed to create application", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save application",
		})
	}

	logger.Success("Application submitted by " + app.ApplicantEmail)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Application submitted successfully",
		Data:    app,
	})
}

// Index handles GET /applications (admin)
func (ac *ApplicationController) Index(c *fiber.Ctx) error {
	var apps []applicationModel.Application
	if err := ac.DB.Find(&apps).Error; err != nil {
		logger.Error("Failed to list applications", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(apps)
}

// Approve handles PATCH /application-update/:id. Role promotion, guide
// insertion and application removal commit or roll back together, so a
// half-applied approval can never be observed. Approving the same id twice
// 404s because the first transaction deleted the application row.
func (ac *ApplicationController) Approve(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid application id",
		})
	}

	approved, err := ac.Service.Approve(id)
	if err != nil {
		if errors.Is(err, applicationService.ErrApplicationNotFound) ||
			errors.Is(err, applicationService.ErrApplicantNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Application or applicant not found",
			})
		}
		logger.Error("Failed to approve application", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to approve application",
		})
	}

	logger.Success(fmt.Sprintf("Application %d approved, guide %s added", id, approved.Email))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Application approved successfully",
		Data:    approved,
	})
}

// Destroy handles DELETE /application/:id (rejection)
func (ac *ApplicationController) Destroy(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid application id",
		})
	}

	result := ac.DB.Delete(&applicationModel.Application{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete application", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete application",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Application not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Application deleted successfully",
	})
}
