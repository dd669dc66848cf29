package user

import (
	"strconv"

	"unique-travel/constants"
	"unique-travel/logger"
	userModel "unique-travel/models/user"
	"unique-travel/services/role"
	"unique-travel/types"
	userTypes "unique-travel/types/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserController handles user-related HTTP requests
type UserController struct {
	DB    *gorm.DB
	Roles role.Directory
}

func NewUserController(db *gorm.DB, roles role.Directory) *UserController {
	return &UserController{DB: db, Roles: roles}
}

// Store handles POST /user: idempotent first-sign-in insert keyed by email.
// The unique index on email decides the race; ON CONFLICT DO NOTHING keeps
// concurrent sign-ins from erroring.
func (uc *UserController) Store(c *fiber.Ctx) error {
	var req userTypes.UpsertUserRequest
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

	newUser := userModel.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     req.Role,
	}

	result := uc.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&newUser)
	if result.Error != nil {
		logger.Error("Failed to create user", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create user",
		})
	}

	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Status:  fiber.StatusOK,
			Message: "user already exists",
		})
	}

	logger.Success("User created: " + newUser.Email)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "User created successfully",
		Data:    newUser,
	})
}

// Show handles GET /user/:email
func (uc *UserController) Show(c *fiber.Ctx) error {
	email := c.Params("email")

	var u userModel.User
	if err := uc.DB.Where("email = ?", email).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "User not found",
			})
		}
		logger.Error("Failed to find user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "User retrieved successfully",
		Data:    u,
	})
}

// Index handles GET /allUsers
func (uc *UserController) Index(c *fiber.Ctx) error {
	var users []userModel.User
	if err := uc.DB.Find(&users).Error; err != nil {
		logger.Error("Failed to list users", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Users retrieved successfully",
		Data:    users,
	})
}

// UpdateProfile handles PATCH /update-profile/:id
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user id",
		})
	}

	var req userTypes.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	result := uc.DB.Model(&userModel.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":      req.Name,
		"photo_url": req.PhotoURL,
	})
	if result.Error != nil {
		logger.Error("Failed to update profile", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update profile",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Profile updated successfully",
	})
}

// CheckAdmin handles GET /user/admin/:email
func (uc *UserController) CheckAdmin(c *fiber.Ctx) error {
	storedRole, err := uc.Roles.RoleOf(c.Params("email"))
	if err != nil {
		logger.Error("Failed to resolve role", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"admin": storedRole == constants.RoleAdmin,
	})
}

// CheckTourGuide handles GET /user/tourGuide/:email
func (uc *UserController) CheckTourGuide(c *fiber.Ctx) error {
	storedRole, err := uc.Roles.RoleOf(c.Params("email"))
	if err != nil {
		logger.Error("Failed to resolve role", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"tourGuide": storedRole == constants.RoleTourGuide,
	})
}
