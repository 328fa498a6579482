// Seeds the database with the Glamour Studio demo salon, its catalog, and a
// pair of demo accounts. Safe to run against an empty database.
package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"salonbook/config"
	"salonbook/database"
	catalogRepoPkg "salonbook/database/repository/catalog"
	userRepoPkg "salonbook/database/repository/user"
	"salonbook/models"
)

func main() {
	config.LoadConfig()
	database.InitDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	catRepo := catalogRepoPkg.NewMongoCatalogRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()

	salon := models.Salon{
		ID:          "glamour-studio",
		Slug:        "glamour-studio",
		Name:        "Glamour Studio",
		Description: "Tu destino principal para belleza y bienestar",
		Address:     "Av. José Pardo 123, Miraflores, Lima 15074, Perú",
		Phone:       "+51 1 555-4567",
		Email:       "hola@glamourstudio.pe",
		TaxRate:     0.18,
		Hours: models.OperatingHours{
			Open:        "09:00",
			Close:       "18:00",
			SlotMinutes: 30,
		},
		CreatedAt: time.Now(),
	}
	if err := catRepo.CreateSalon(ctx, salon); err != nil {
		log.Fatalf("seed: failed to create salon: %v", err)
	}
	log.Printf("seed: created salon %s", salon.Slug)

	services := []models.Service{
		{
			ID:          "haircut",
			Name:        "Corte de Cabello",
			Description: "Corte profesional adaptado a tu estilo. Incluye lavado, corte y secado.",
			Price:       30,
			Duration:    45,
			Category:    "Cortes",
			Featured:    true,
			Order:       1,
			Active:      true,
		},
		{
			ID:          "manicure",
			Name:        "Manicura",
			Description: "Manicura clásica con limado, cuidado de cutículas y esmaltado a tu elección.",
			Price:       25,
			Duration:    30,
			Category:    "Manicura",
			Featured:    true,
			Order:       2,
			Active:      true,
		},
		{
			ID:          "facial",
			Name:        "Facial",
			Description: "Tratamiento facial rejuvenecedor para limpiar, exfoliar e hidratar tu piel.",
			Price:       40,
			Duration:    60,
			Category:    "Faciales",
			Featured:    true,
			Order:       3,
			Active:      true,
		},
		{
			ID:          "eyebrow-shaping",
			Name:        "Diseño de Cejas",
			Description: "Diseño de cejas experto para enmarcar tu rostro perfectamente.",
			Price:       20,
			Duration:    20,
			Category:    "Cejas",
			Featured:    false,
			Order:       4,
			Active:      true,
		},
	}
	for _, svc := range services {
		if _, err := catRepo.CreateService(ctx, salon.ID, svc); err != nil {
			log.Fatalf("seed: failed to create service %s: %v", svc.ID, err)
		}
	}
	log.Printf("seed: created %d services", len(services))

	stylists := []models.Stylist{
		{
			ID:         "ava-bennett",
			Name:       "Ava Bennett",
			Specialty:  "Especialista en color y tratamientos",
			Bio:        "Ava tiene 8 años de experiencia en coloración y tratamientos capilares.",
			ServiceIDs: []string{"haircut", "hair-coloring"},
			Active:     true,
		},
		{
			ID:         "chloe-davis",
			Name:       "Chloe Davis",
			Specialty:  "Experta en extensiones de cabello",
			Bio:        "Chloe es una especialista certificada en extensiones de cabello con 5 años de experiencia.",
			ServiceIDs: []string{"haircut", "hair-coloring"},
			Active:     true,
		},
		{
			ID:         "isabella-clark",
			Name:       "Isabella Clark",
			Specialty:  "Maestra en cortes de precisión",
			Bio:        "Isabella se formó en París y se especializa en técnicas de corte de precisión.",
			ServiceIDs: []string{"haircut", "eyebrow-shaping"},
			Active:     true,
		},
	}
	for _, st := range stylists {
		if _, err := catRepo.CreateStylist(ctx, salon.ID, st); err != nil {
			log.Fatalf("seed: failed to create stylist %s: %v", st.ID, err)
		}
	}
	log.Printf("seed: created %d stylists", len(stylists))

	users := []struct {
		email    string
		name     string
		password string
		role     models.UserRole
		salons   []string
	}{
		{"customer@example.com", "Demo Customer", "password123", models.RoleCustomer, nil},
		{"admin@glamourstudio.pe", "Salon Admin", "password123", models.RoleSalonAdmin, []string{salon.ID}},
		{"super@salonbook.dev", "Super Admin", "password123", models.RoleSuperAdmin, nil},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("seed: failed to hash password: %v", err)
		}
		err = usrRepo.Create(ctx, models.User{
			ID:               u.email,
			Email:            u.email,
			Name:             u.name,
			PasswordHash:     string(hash),
			Role:             u.role,
			AssignedSalonIDs: u.salons,
			Active:           true,
			CreatedAt:        time.Now(),
		})
		if err != nil {
			log.Fatalf("seed: failed to create user %s: %v", u.email, err)
		}
	}
	log.Printf("seed: created %d users", len(users))

	log.Println("seed: done")
}
