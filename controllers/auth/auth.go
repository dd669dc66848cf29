package auth

import (
	"unique-travel/logger"
	"unique-travel/services/token"
	"unique-travel/types"
	userTypes "unique-travel/types/user"
	"unique-travel/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthController issues bearer tokens for signed-in users.
type AuthController struct {
	tokens         *token.Service
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(tokens *token.Service, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{tokens: tokens, loggerInstance: asyncLogger}
}

// IssueToken handles POST /jwt. The caller has already authenticated with
// the identity provider on the front end; the backend only vouches for the
// email it is handed by signing a short-lived token for it.
func (h *AuthController) IssueToken(c *fiber.Ctx) error {
	var req userTypes.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request payload",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	signed, err := h.tokens.Issue(req.Email)
	if err != nil {
		logger.Error("Failed to issue token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to issue token",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Token issued successfully",
		Status:  fiber.StatusOK,
		Token:   signed,
	})
}
