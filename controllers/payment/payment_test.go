package payment

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"unique-travel/logger"
	paymentModel "unique-travel/models/payment"
	paymentService "unique-travel/services/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrchestrator is a mock implementation of Orchestrator
type MockOrchestrator struct {
	mock.Mock
}

func (m *MockOrchestrator) Initiate(req paymentService.InitiateRequest) (string, *paymentModel.Payment, error) {
	args := m.Called(req)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*paymentModel.Payment), args.Error(2)
}

func (m *MockOrchestrator) Confirm(trxID string) error {
	args := m.Called(trxID)
	return args.Error(0)
}

func newTestApp(t *testing.T, svc Orchestrator) *fiber.App {
	t.Setenv("FRONTEND_URL", "https://front.example")
	t.Setenv("BACKEND_URL", "https://api.example")

	ctrl := NewPaymentController(nil, svc, logger.NewAsyncLogger(nil))

	app := fiber.New()
	app.Post("/create-payment", ctrl.Create)
	app.Post("/success-payment", ctrl.Success)
	app.Post("/fail", ctrl.Fail)
	app.Post("/cancle", ctrl.Cancel)
	return app
}

func postForm(app *fiber.App, target string, values url.Values) (int, string, error) {
	req := httptest.NewRequest("POST", target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		return 0, "", err
	}
	return resp.StatusCode, resp.Header.Get("Location"), nil
}

func TestCreatePaymentReturnsGatewayURL(t *testing.T) {
	svc := &MockOrchestrator{}
	svc.On("Initiate", mock.MatchedBy(func(r paymentService.InitiateRequest) bool {
		return r.BookingID == 5 && r.SuccessURL == "https://api.example/success-payment"
	})).Return("https://gateway.example/pay/abc", &paymentModel.Payment{
		TrxID: "T1", BookingID: 5, Status: paymentModel.StatusPending,
	}, nil)

	app := newTestApp(t, svc)

	body := `{"bookingId":5,"amount":100,"currency":"BDT","customerEmail":"a@x.com","customerPhone":"01700000000"}`
	req := httptest.NewRequest("POST", "/create-payment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestCreatePaymentMissingFields(t *testing.T) {
	svc := &MockOrchestrator{}
	app := newTestApp(t, svc)

	req := httptest.NewRequest("POST", "/create-payment", strings.NewReader(`{"amount":100}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "Initiate", mock.Anything)
}

func TestSuccessCallbackConfirmsAndRedirects(t *testing.T) {
	svc := &MockOrchestrator{}
	svc.On("Confirm", "T1").Return(nil)
	app := newTestApp(t, svc)

	status, location, err := postForm(app, "/success-payment", url.Values{
		"status":  {"VALID"},
		"tran_id": {"T1"},
	})
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, status)
	assert.Equal(t, "https://front.example/payment-success", location)
	svc.AssertExpectations(t)
}

func TestSuccessCallbackInvalidStatus(t *testing.T) {
	svc := &MockOrchestrator{}
	app := newTestApp(t, svc)

	status, location, err := postForm(app, "/success-payment", url.Values{
		"status":  {"FAILED"},
		"tran_id": {"T1"},
	})
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, status)
	assert.Equal(t, "https://front.example/payment-fail", location)
	svc.AssertNotCalled(t, "Confirm", mock.Anything)
}

func TestSuccessCallbackUnknownTransaction(t *testing.T) {
	svc := &MockOrchestrator{}
	svc.On("Confirm", "missing").Return(paymentService.ErrPaymentNotFound)
	app := newTestApp(t, svc)

	status, _, err := postForm(app, "/success-payment", url.Values{
		"status":  {"VALID"},
		"tran_id": {"missing"},
	})
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestSuccessCallbackReplayRedirectsToSuccess(t *testing.T) {
	svc := &MockOrchestrator{}
	svc.On("Confirm", "T1").Return(paymentService.ErrAlreadyProcessed)
	app := newTestApp(t, svc)

	status, location, err := postForm(app, "/success-payment", url.Values{
		"status":  {"VALID"},
		"tran_id": {"T1"},
	})
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, status)
	assert.Equal(t, "https://front.example/payment-success", location)
}

func TestSuccessCallbackMissingTranID(t *testing.T) {
	svc := &MockOrchestrator{}
	app := newTestApp(t, svc)

	status, _, err := postForm(app, "/success-payment", url.Values{"status": {"VALID"}})
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestFailAndCancelRedirectWithoutMutation(t *testing.T) {
	svc := &MockOrchestrator{}
	app := newTestApp(t, svc)

	for _, target := range []string{"/fail", "/cancle"} {
		status, location, err := postForm(app, target, url.Values{})
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, status)
		assert.Equal(t, "https://front.example/payment-fail", location)
	}
	svc.AssertNotCalled(t, "Confirm", mock.Anything)
}
