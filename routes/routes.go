package routes

import (
	"os"

	applicationController "unique-travel/controllers/application"
	authController "unique-travel/controllers/auth"
	bookingController "unique-travel/controllers/booking"
	couponController "unique-travel/controllers/coupon"
	dashboardController "unique-travel/controllers/dashboard"
	guideController "unique-travel/controllers/guide"
	paymentController "unique-travel/controllers/payment"
	storyController "unique-travel/controllers/story"
	packageController "unique-travel/controllers/tourpackage"
	userController "unique-travel/controllers/user"
	"unique-travel/httpServices/sslcommerz"
	"unique-travel/logger"
	"unique-travel/middleware"
	applicationService "unique-travel/services/application"
	paymentService "unique-travel/services/payment"
	"unique-travel/services/role"
	"unique-travel/services/token"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires services, middleware and controllers onto the app.
func SetupRoutes(app *fiber.App, db *gorm.DB) error {
	tokens, err := token.NewService()
	if err != nil {
		return err
	}

	roles := role.NewGormDirectory(db)
	auth := middleware.NewAuth(tokens, roles)
	asyncLogger := logger.NewAsyncLogger(db)

	gateway := sslcommerz.NewClient(
		os.Getenv("SSLCZ_SESSION_URL"),
		os.Getenv("STORE_ID"),
		os.Getenv("STORE_PASSWD"),
	)
	payments := paymentService.NewService(paymentService.NewGormStore(db), gateway)
	approvals := applicationService.NewService(applicationService.NewGormStore(db))

	authCtrl := authController.NewAuthController(tokens, asyncLogger)
	userCtrl := userController.NewUserController(db, roles)
	packageCtrl := packageController.NewPackageController(db)
	bookingCtrl := bookingController.NewBookingController(db, asyncLogger)
	applicationCtrl := applicationController.NewApplicationController(db, approvals)
	storyCtrl := storyController.NewStoryController(db)
	guideCtrl := guideController.NewGuideController(db)
	couponCtrl := couponController.NewCouponController(db)
	paymentCtrl := paymentController.NewPaymentController(db, payments, asyncLogger)
	dashboardCtrl := dashboardController.NewDashboardController(db)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("tourism project running")
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	app.Post("/jwt", authCtrl.IssueToken)
	app.Post("/user", userCtrl.Store)

	app.Get("/threePackages", packageCtrl.Featured)
	app.Get("/packages", packageCtrl.Index)
	app.Get("/package/:id", packageCtrl.Show)

	app.Get("/stories", storyCtrl.Featured)
	app.Get("/allStories", storyCtrl.Index)
	app.Get("/story/:id", storyCtrl.Show)

	app.Get("/guides", guideCtrl.Featured)
	app.Get("/allGuides", guideCtrl.Index)

	app.Get("/coupons", couponCtrl.Index)

	// Gateway-initiated callbacks carry no bearer token.
	app.Post("/success-payment", paymentCtrl.Success)
	app.Post("/fail", paymentCtrl.Fail)
	app.Post("/cancle", paymentCtrl.Cancel)

	/*=============================================================================
	| Authenticated Routes
	===============================================================================*/
	app.Get("/user/admin/:email", auth.RequireAuth(), userCtrl.CheckAdmin)
	app.Get("/user/tourGuide/:email", auth.RequireAuth(), userCtrl.CheckTourGuide)
	app.Get("/user/:email", auth.RequireAuth(), userCtrl.Show)
	app.Patch("/update-profile/:id", auth.RequireAuth(), userCtrl.UpdateProfile)

	app.Post("/booking", auth.RequireAuth(), bookingCtrl.Store)
	app.Get("/bookings/:email", auth.RequireAuth(), bookingCtrl.ByTourist)
	app.Delete("/booking/:id", auth.RequireAuth(), bookingCtrl.Destroy)

	app.Post("/application", auth.RequireAuth(), applicationCtrl.Store)

	app.Get("/stories/:email", auth.RequireAuth(), storyCtrl.ByAuthor)
	app.Post("/addStory", auth.RequireAuth(), storyCtrl.Store)
	app.Put("/update-story/:id", auth.RequireAuth(), storyCtrl.Update)
	app.Delete("/story/:id", auth.RequireAuth(), storyCtrl.Destroy)

	app.Post("/validate-coupon", auth.RequireAuth(), couponCtrl.Validate)
	app.Post("/create-payment", auth.RequireAuth(), paymentCtrl.Create)

	/*=============================================================================
	| Tour Guide Routes
	===============================================================================*/
	app.Get("/guide-bookings/:email", auth.RequireTourGuide(), bookingCtrl.ByGuide)
	app.Patch("/booking-status/:id", auth.RequireTourGuide(), bookingCtrl.UpdateStatus)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	app.Get("/allUsers", auth.RequireAdmin(), userCtrl.Index)
	app.Get("/bookings", auth.RequireAdmin(), bookingCtrl.Index)
	app.Post("/package", auth.RequireAdmin(), packageCtrl.Store)
	app.Get("/applications", auth.RequireAdmin(), applicationCtrl.Index)
	app.Patch("/application-update/:id", auth.RequireAdmin(), applicationCtrl.Approve)
	app.Delete("/application/:id", auth.RequireAdmin(), applicationCtrl.Destroy)
	app.Post("/coupon", auth.RequireAdmin(), couponCtrl.Store)
	app.Delete("/coupon/:id", auth.RequireAdmin(), couponCtrl.Destroy)
	app.Get("/payments", auth.RequireAdmin(), paymentCtrl.Index)
	app.Get("/admin-stats", auth.RequireAdmin(), dashboardCtrl.Stats)

	return nil
}
