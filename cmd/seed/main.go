// Seed tool: creates the schema and loads a starter data set.
// cmd/seed/main.go
package main

import (
	"log"
	"time"

	"eyedea-api/config"
	"eyedea-api/models"
	"eyedea-api/utils"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	// Create or update the schema
	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Idea{},
		&models.Comment{},
		&models.Pillar{},
		&models.Department{},
		&models.Team{},
		&models.TechPerson{},
	); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}
	log.Println("Schema migrated")

	// Skip seeding if data already exists
	var userCount int64
	if err := config.DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		log.Fatal("Failed to check existing users:", err)
	}
	if userCount > 0 {
		log.Println("Users already exist, skipping seed data")
		return
	}

	now := time.Now()

	seedTaxonomy(now)
	users := seedUsers(now)
	seedIdeas(now, users)

	log.Println("Seed completed!")
}

func seedTaxonomy(now time.Time) {
	pillars := []string{"GBS", "Technology", "Finance", "Human Resources"}
	for _, name := range pillars {
		pillar := models.Pillar{
			PillarID: uuid.NewString(),
			Name:     name,
			CreateAt: &now,
		}
		if err := config.DB.Create(&pillar).Error; err != nil {
			log.Printf("Failed to create pillar %s: %v\n", name, err)
		}
	}

	departments := []models.Department{
		{Name: "Order Management", Pillar: "GBS"},
		{Name: "Procurement", Pillar: "GBS"},
		{Name: "IT Operations", Pillar: "Technology"},
		{Name: "Accounts Payable", Pillar: "Finance"},
	}
	for i := range departments {
		departments[i].DepartmentID = uuid.NewString()
		departments[i].CreateAt = &now
		if err := config.DB.Create(&departments[i]).Error; err != nil {
			log.Printf("Failed to create department %s: %v\n", departments[i].Name, err)
		}
	}

	teams := []models.Team{
		{Name: "Order Entry", Pillar: "GBS", Department: "Order Management"},
		{Name: "Order Tracking", Pillar: "GBS", Department: "Order Management"},
		{Name: "Vendor Setup", Pillar: "GBS", Department: "Procurement"},
		{Name: "Service Desk", Pillar: "Technology", Department: "IT Operations"},
	}
	for i := range teams {
		teams[i].TeamID = uuid.NewString()
		teams[i].CreateAt = &now
		if err := config.DB.Create(&teams[i]).Error; err != nil {
			log.Printf("Failed to create team %s: %v\n", teams[i].Name, err)
		}
	}

	techPersons := []models.TechPerson{
		{Name: "Alex Rivera", Specialization: strPtr("RPA")},
		{Name: "Priya Nair", Specialization: strPtr("Data Engineering")},
	}
	for i := range techPersons {
		techPersons[i].TechPersonID = uuid.NewString()
		techPersons[i].CreateAt = &now
		if err := config.DB.Create(&techPersons[i]).Error; err != nil {
			log.Printf("Failed to create tech person %s: %v\n", techPersons[i].Name, err)
		}
	}

	log.Println("Taxonomy seeded")
}

func seedUsers(now time.Time) map[string]models.User {
	type seedUser struct {
		Username            string
		Email               string
		Password            string
		Role                string
		SubRole             *string
		Pillar              *string
		Department          *string
		ApprovedPillars     []string
		ApprovedDepartments []string
	}

	seeds := []seedUser{
		{
			Username: "admin",
			Email:    "admin@example.com",
			Password: "admin123",
			Role:     models.RoleAdmin,
		},
		{
			Username:        "approver1",
			Email:           "approver1@example.com",
			Password:        "approver123",
			Role:            models.RoleApprover,
			SubRole:         strPtr(models.SubRoleApprover),
			Pillar:          strPtr("GBS"),
			Department:      strPtr("Order Management"),
			ApprovedPillars: []string{"GBS"},
		},
		{
			Username:        "cie1",
			Email:           "cie1@example.com",
			Password:        "cie12345",
			Role:            models.RoleApprover,
			SubRole:         strPtr(models.SubRoleCIExcellence),
			Pillar:          strPtr("GBS"),
			ApprovedPillars: []string{"GBS", "Technology"},
		},
		{
			Username:   "user1",
			Email:      "user1@example.com",
			Password:   "user1234",
			Role:       models.RoleUser,
			Pillar:     strPtr("GBS"),
			Department: strPtr("Order Management"),
		},
	}

	created := make(map[string]models.User)
	for _, s := range seeds {
		hashed, err := utils.HashPassword(s.Password)
		if err != nil {
			log.Fatal("Failed to hash seed password:", err)
		}
		user := models.User{
			UserID:              uuid.NewString(),
			Username:            s.Username,
			Email:               s.Email,
			Password:            hashed,
			Role:                s.Role,
			SubRole:             s.SubRole,
			Pillar:              s.Pillar,
			Department:          s.Department,
			ApprovedPillars:     s.ApprovedPillars,
			ApprovedDepartments: s.ApprovedDepartments,
			CreateAt:            &now,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			log.Printf("Failed to create user %s: %v\n", s.Username, err)
			continue
		}
		created[s.Username] = user
		log.Printf("Created user %s (%s)\n", s.Username, s.Role)
	}
	return created
}

func seedIdeas(now time.Time, users map[string]models.User) {
	submitter, ok := users["user1"]
	if !ok {
		log.Println("Submitter missing, skipping idea seed")
		return
	}
	approver := users["approver1"]

	ideas := []models.Idea{
		{
			Title:             "Automate order confirmation emails",
			Pillar:            "GBS",
			ImprovementType:   "Automation",
			CurrentProcess:    "Confirmation emails are composed and sent by hand for each order.",
			SuggestedSolution: "Trigger templated emails from the order system on status change.",
			Benefits:          "Removes a repetitive manual step and shortens response time.",
			TargetCompletion:  "Q4 2026",
			Status:            "pending",
		},
		{
			Title:             "Single intake form for vendor changes",
			Pillar:            "GBS",
			ImprovementType:   "Standardization",
			CurrentProcess:    "Vendor change requests arrive over email, chat and phone.",
			SuggestedSolution: "Publish one intake form that feeds the vendor setup queue.",
			Benefits:          "Requests stop getting lost and turnaround becomes measurable.",
			TargetCompletion:  "Q1 2027",
			Status:            "pending",
		},
	}

	dept := submitter.Department
	for i := range ideas {
		ideas[i].IdeaID = uuid.NewString()
		ideas[i].IdeaNumber = models.FormatIdeaNumber(i + 1)
		ideas[i].Department = dept
		ideas[i].SubmittedBy = submitter.UserID
		ideas[i].SubmittedByUsername = submitter.Username
		if approver.UserID != "" {
			ideas[i].AssignedApprover = strPtr(approver.UserID)
			ideas[i].AssignedApproverUsername = strPtr(approver.Username)
		}
		ideas[i].CreateAt = &now
		if err := config.DB.Create(&ideas[i]).Error; err != nil {
			log.Printf("Failed to create idea %s: %v\n", ideas[i].Title, err)
			continue
		}
		log.Printf("Created idea %s\n", ideas[i].IdeaNumber)
	}
}

func strPtr(s string) *string { return &s }
