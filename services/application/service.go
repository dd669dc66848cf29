package application

import (
	"errors"

	"unique-travel/constants"
	applicationModel "unique-travel/models/application"
	guideModel "unique-travel/models/guide"
	userModel "unique-travel/models/user"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicantNotFound   = errors.New("applicant not found")
)

// Store is the persistence surface approval needs. InTransaction runs fn
// against a transaction-bound store and commits when fn returns nil.
type Store interface {
	ApplicationByID(id uint64) (*applicationModel.Application, error)
	UserByEmail(email string) (*userModel.User, error)
	UpdateUserRole(userID uint, role string) error
	CreateGuide(g *guideModel.Guide) error
	DeleteApplication(id uint) error
	InTransaction(fn func(Store) error) error
}

// Service carries out tour-guide approvals.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Approve promotes the applicant to tourGuide, inserts the denormalized guide
// row and removes the application, atomically. The application row is deleted
// inside the same transaction, so approving the same id again finds nothing
// and returns ErrApplicationNotFound; a duplicate guide row cannot appear.
func (s *Service) Approve(id uint64) (*guideModel.Guide, error) {
	var approved *guideModel.Guide
	err := s.store.InTransaction(func(tx Store) error {
		app, err := tx.ApplicationByID(id)
		if err != nil {
			return err
		}
		if app == nil {
			return ErrApplicationNotFound
		}

		applicant, err := tx.UserByEmail(app.ApplicantEmail)
		if err != nil {
			return err
		}
		if applicant == nil {
			return ErrApplicantNotFound
		}

		if err := tx.UpdateUserRole(applicant.ID, constants.RoleTourGuide); err != nil {
			return err
		}

		g := &guideModel.Guide{
			Email:    app.ApplicantEmail,
			Name:     app.ApplicantName,
			PhotoURL: app.PhotoURL,
			Title:    app.Title,
			Reason:   app.Reason,
			CVLink:   app.CVLink,
		}
		if err := tx.CreateGuide(g); err != nil {
			return err
		}
		if err := tx.DeleteApplication(app.ID); err != nil {
			return err
		}

		approved = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return approved, nil
}
