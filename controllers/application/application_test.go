package application

import (
	"net/http/httptest"
	"testing"

	guideModel "unique-travel/models/guide"
	applicationService "unique-travel/services/application"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockApprover is a mock implementation of Approver
type MockApprover struct {
	mock.Mock
}

func (m *MockApprover) Approve(id uint64) (*guideModel.Guide, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*guideModel.Guide), args.Error(1)
}

func newTestApp(approver Approver) *fiber.App {
	ctrl := NewApplicationController(nil, approver)
	app := fiber.New()
	app.Patch("/application-update/:id", ctrl.Approve)
	return app
}

func TestApproveReturnsGuide(t *testing.T) {
	approver := &MockApprover{}
	approver.On("Approve", uint64(5)).Return(&guideModel.Guide{
		ID: 1, Email: "guide@x.com",
	}, nil)
	app := newTestApp(approver)

	req := httptest.NewRequest("PATCH", "/application-update/5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	approver.AssertExpectations(t)
}

func TestApproveUnknownApplicationIs404(t *testing.T) {
	approver := &MockApprover{}
	approver.On("Approve", uint64(99)).Return(nil, applicationService.ErrApplicationNotFound)
	app := newTestApp(approver)

	req := httptest.NewRequest("PATCH", "/application-update/99", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestApproveMissingApplicantIs404(t *testing.T) {
	approver := &MockApprover{}
	approver.On("Approve", uint64(5)).Return(nil, applicationService.ErrApplicantNotFound)
	app := newTestApp(approver)

	req := httptest.NewRequest("PATCH", "/application-update/5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestApproveInvalidID(t *testing.T) {
	approver := &MockApprover{}
	app := newTestApp(approver)

	req := httptest.NewRequest("PATCH", "/application-update/abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	approver.AssertNotCalled(t, "Approve", mock.Anything)
}
