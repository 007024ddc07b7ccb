package user

import (
	"context"
	"errors"
	"fmt"

	"clinicore/models"
)

// CreatePatientProfile attaches a patient profile to an existing user account.
func (s *DefaultUserService) CreatePatientProfile(ctx context.Context, userID string, req models.RegisterPatientRequest) (*models.Patient, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.New("user not found")
	}
	if u.Role != models.RolePatient {
		return nil, fmt.Errorf("user %s is not a patient account", userID)
	}

	p := &models.Patient{
		UserID:      u.ID,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
	}
	if err := s.Patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// CreateDoctorProfile attaches a doctor profile to an existing user account.
func (s *DefaultUserService) CreateDoctorProfile(ctx context.Context, userID string, req models.RegisterDoctorRequest) (*models.Doctor, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.New("user not found")
	}
	if u.Role != models.RoleDoctor {
		return nil, fmt.Errorf("user %s is not a doctor account", userID)
	}

	d := &models.Doctor{
		UserID:         u.ID,
		Specialization: req.Specialization,
		Fee:            req.Fee,
		Bio:            req.Bio,
	}
	if err := s.Doctors.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
