package main

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/kunstnord/gallery-api/internal/config"
	"github.com/kunstnord/gallery-api/internal/database"
	"github.com/kunstnord/gallery-api/internal/models"
	"github.com/kunstnord/gallery-api/internal/utils"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg)
	database.Migrate()

	seedAdmin()
	seedCategories()
	seedNews()
	seedExhibitions()
}

func seedAdmin() {
	adminName := os.Getenv("ADMIN_NAME")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminName == "" || adminEmail == "" || adminPassword == "" {
		log.Fatal("Missing environment variables: ADMIN_NAME, ADMIN_EMAIL, ADMIN_PASSWORD")
	}

	// Check if admin with this email already exists
	var admin models.User
	result := database.DB.Where("email = ?", adminEmail).First(&admin)

	if result.Error == nil {
		log.Println("Admin user already exists:", admin.Email)
		return
	}

	passwordHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin = models.User{
		ID:           uuid.New(),
		Name:         adminName,
		Email:        adminEmail,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
	}

	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Println("Admin user created successfully:", admin.Email)
}

func seedCategories() {
	names := []string{"Öl", "Acryl", "Zeichnungen", "Skulpturen"}

	for _, name := range names {
		var existing models.Category
		if database.DB.Where("name = ?", name).First(&existing).Error == nil {
			continue
		}

		category := models.Category{
			ID:   uuid.New(),
			Name: name,
		}
		if err := database.DB.Create(&category).Error; err != nil {
			log.Fatal("Failed to seed category:", err)
		}
	}

	log.Println("Categories seeded")
}

func seedNews() {
	var count int64
	database.DB.Model(&models.News{}).Count(&count)
	if count > 0 {
		log.Println("News already seeded")
		return
	}

	for i, active := range []bool{true, true, true, false, false} {
		news := models.News{
			ID:          uuid.New(),
			Title:       "Neuigkeit " + string(rune('A'+i)),
			Description: "Aktuelles aus der Galerie.",
			Text:        "Ausführlicher Text folgt.",
			Date:        time.Now().AddDate(0, 0, -i),
			IsActive:    active,
		}
		if err := database.DB.Create(&news).Error; err != nil {
			log.Fatal("Failed to seed news:", err)
		}
	}

	log.Println("News seeded")
}

func seedExhibitions() {
	var count int64
	database.DB.Model(&models.Exhibition{}).Count(&count)
	if count > 0 {
		log.Println("Exhibitions already seeded")
		return
	}

	for i, active := range []bool{true, true, true, false, false} {
		exhibition := models.Exhibition{
			ID:          uuid.New(),
			Title:       "Ausstellung " + string(rune('A'+i)),
			Description: "Werkschau in der Galerie.",
			Text:        "Details zur Ausstellung folgen.",
			Date:        time.Now().AddDate(0, 1, i),
			IsActive:    active,
		}
		if err := database.DB.Create(&exhibition).Error; err != nil {
			log.Fatal("Failed to seed exhibition:", err)
		}
	}

	log.Println("Exhibitions seeded")
}
