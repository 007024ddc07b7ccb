// Development data seeder: wipes and repopulates users, doctors, patients and
// availabilities with a week of bookable slots. Run against a local instance only.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"clinicore/config"
	"clinicore/database"
	"clinicore/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

var specializations = []string{"Cardiology", "Pediatrics", "Dermatology", "Orthopedics"}

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, coll := range []string{"users", "doctors", "patients", "availabilities", "appointments", "consultations"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}
	now := time.Now()

	var users []interface{}
	var doctors []interface{}
	var slots []interface{}

	// Two doctors per specialization, each with a week of 30-minute slots.
	counter := 1
	for _, spec := range specializations {
		for i := 0; i < 2; i++ {
			userID := uuid.New().String()
			users = append(users, models.User{
				ID:           userID,
				Name:         fmt.Sprintf("Dr. Seed %d", counter),
				Email:        fmt.Sprintf("doctor%d@clinicore.local", counter),
				PasswordHash: string(hash),
				Role:         models.RoleDoctor,
				CreatedAt:    now,
				UpdatedAt:    now,
			})

			doctorID := uuid.New().String()
			doctors = append(doctors, models.Doctor{
				ID:             doctorID,
				UserID:         userID,
				Specialization: spec,
				Fee:            3000 + 500*counter,
				CreatedAt:      now,
			})

			slots = append(slots, weekOfSlots(doctorID)...)
			counter++
		}
	}

	// A handful of patient accounts.
	patients := make([]interface{}, 0, 5)
	for i := 1; i <= 5; i++ {
		userID := uuid.New().String()
		users = append(users, models.User{
			ID:           userID,
			Name:         fmt.Sprintf("Patient Seed %d", i),
			Email:        fmt.Sprintf("patient%d@clinicore.local", i),
			PasswordHash: string(hash),
			Role:         models.RolePatient,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		patients = append(patients, models.Patient{
			ID:        uuid.New().String(),
			UserID:    userID,
			CreatedAt: now,
		})
	}

	// Admin account.
	users = append(users, models.User{
		ID:           uuid.New().String(),
		Name:         "Admin",
		Email:        "admin@clinicore.local",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	if _, err := db.Collection("users").InsertMany(ctx, users); err != nil {
		log.Fatalf("Failed to insert users: %v", err)
	}
	if _, err := db.Collection("doctors").InsertMany(ctx, doctors); err != nil {
		log.Fatalf("Failed to insert doctors: %v", err)
	}
	if _, err := db.Collection("patients").InsertMany(ctx, patients); err != nil {
		log.Fatalf("Failed to insert patients: %v", err)
	}
	if _, err := db.Collection("availabilities").InsertMany(ctx, slots); err != nil {
		log.Fatalf("Failed to insert availabilities: %v", err)
	}

	log.Printf("Seeded %d users, %d doctors, %d patients, %d slots",
		len(users), len(doctors), len(patients), len(slots))
}

// weekOfSlots builds 30-minute morning slots for the next 7 days.
func weekOfSlots(doctorID string) []interface{} {
	var out []interface{}
	today := time.Now()
	for d := 0; d < 7; d++ {
		day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local).AddDate(0, 0, d)
		for hour := 9; hour < 12; hour++ {
			for _, min := range []int{0, 30} {
				start := fmt.Sprintf("%02d:%02d", hour, min)
				endMin := min + 30
				endHour := hour
				if endMin == 60 {
					endMin = 0
					endHour++
				}
				out = append(out, models.Availability{
					ID:        uuid.New().String(),
					DoctorID:  doctorID,
					Date:      day,
					StartTime: start,
					EndTime:   fmt.Sprintf("%02d:%02d", endHour, endMin),
				})
			}
		}
	}
	return out
}
