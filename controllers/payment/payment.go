package payment

import (
	"errors"
	"fmt"
	"os"

	"unique-travel/httpServices/sslcommerz"
	"unique-travel/logger"
	paymentModel "unique-travel/models/payment"
	paymentService "unique-travel/services/payment"
	"unique-travel/types"
	paymentTypes "unique-travel/types/payment"
	"unique-travel/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Orchestrator is the payment flow surface the controller drives.
type Orchestrator interface {
	Initiate(req paymentService.InitiateRequest) (string, *paymentModel.Payment, error)
	Confirm(trxID string) error
}

// PaymentController handles payment initiation and gateway callbacks
type PaymentController struct {
	DB           *gorm.DB
	Service      Orchestrator
	Logger       *logger.AsyncLogger
	frontendURL  string
	callbackBase string
}

func NewPaymentController(db *gorm.DB, svc Orchestrator, asyncLogger *logger.AsyncLogger) *PaymentController {
	return &PaymentController{
		DB:           db,
		Service:      svc,
		Logger:       asyncLogger,
		frontendURL:  os.Getenv("FRONTEND_URL"),
		callbackBase: os.Getenv("BACKEND_URL"),
	}
}

// Create handles POST /create-payment: opens a gateway session and returns
// the hosted page URL for the front end to redirect to.
func (pc *PaymentController) Create(c *fiber.Ctx) error {
	var req paymentTypes.CreatePaymentRequest
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

	gatewayURL, p, err := pc.Service.Initiate(paymentService.InitiateRequest{
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PackageTitle:  req.PackageTitle,
		SuccessURL:    pc.callbackBase + "/success-payment",
		FailURL:       pc.callbackBase + "/fail",
		CancelURL:     pc.callbackBase + "/cancle",
	})
	if err != nil {
		if errors.Is(err, paymentService.ErrGateway) {
			logger.Error("Gateway session failed", err)
			return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
				Status:  fiber.StatusBadGateway,
				Message: "Failed to reach the payment gateway",
			})
		}
		logger.Error("Failed to initiate payment", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to initiate payment",
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	pc.Logger.Log(logEntry)

	logger.Success(fmt.Sprintf("Payment %s initiated for booking %d", p.TrxID, p.BookingID))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"url":   gatewayURL,
		"trxId": p.TrxID,
	})
}

// Success handles the gateway's success callback. A non-VALID status gets an
// explicit failure redirect; an unknown tran_id is a 404, never a crash.
func (pc *PaymentController) Success(c *fiber.Ctx) error {
	status := c.FormValue("status")
	trxID := c.FormValue("tran_id")

	if trxID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "tran_id is required",
		})
	}

	if status != sslcommerz.CallbackStatusValid {
		logger.Warning("Success callback carried non-valid status: " + status)
		return c.Redirect(pc.frontendURL+"/payment-fail", fiber.StatusSeeOther)
	}

	err := pc.Service.Confirm(trxID)
	switch {
	case err == nil:
		// fall through to the success redirect
	case errors.Is(err, paymentService.ErrAlreadyProcessed):
		// Replayed callback; both target states are absorbing.
		logger.Info("Duplicate success callback for " + trxID)
	case errors.Is(err, paymentService.ErrPaymentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Payment not found for transaction " + trxID,
		})
	case errors.Is(err, paymentService.ErrBookingNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Booking not found for transaction " + trxID,
		})
	default:
		logger.Error("Failed to confirm payment", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to confirm payment",
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	pc.Logger.Log(logEntry)

	logger.Success("Payment confirmed: " + trxID)
	return c.Redirect(pc.frontendURL+"/payment-success", fiber.StatusSeeOther)
}

// Fail handles the gateway's fail callback: no state mutation.
func (pc *PaymentController) Fail(c *fiber.Ctx) error {
	return c.Redirect(pc.frontendURL+"/payment-fail", fiber.StatusSeeOther)
}

// Cancel handles the gateway's cancel callback: no state mutation.
func (pc *PaymentController) Cancel(c *fiber.Ctx) error {
	return c.Redirect(pc.frontendURL+"/payment-fail", fiber.StatusSeeOther)
}

// Index handles GET /payments (admin)
func (pc *PaymentController) Index(c *fiber.Ctx) error {
	var payments []paymentModel.Payment
	if err := pc.DB.Find(&payments).Error; err != nil {
		logger.Error("Failed to list payments", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(payments)
}
