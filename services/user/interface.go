package user

import (
	"context"

	doctorRepo "clinicore/database/repository/doctor"
	patientRepo "clinicore/database/repository/patient"
	userRepo "clinicore/database/repository/user"
	"clinicore/models"
)

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*AuthResponse, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	CreatePatientProfile(ctx context.Context, userID string, req models.RegisterPatientRequest) (*models.Patient, error)
	CreateDoctorProfile(ctx context.Context, userID string, req models.RegisterDoctorRequest) (*models.Doctor, error)
	ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Patients patientRepo.PatientRepository
	Doctors  doctorRepo.DoctorRepository
}

// AuthResponse contains the user's ID, token, and display details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}
