package db

import (
	"fmt"

	"github.com/Jaydip614/medisync/models"
	"github.com/Jaydip614/medisync/utils"
)

var doctorSpecializations = []string{
	"Cardiologist",
	"Dermatologist",
	"Endocrinologist",
	"Gastroenterologist",
	"Hematologist",
	"Nephrologist",
	"Neurologist",
	"Oncologist",
	"Ophthalmologist",
	"Otolaryngologist",
	"Pediatrician",
	"Pulmonologist",
	"Rheumatologist",
	"Urologist",
}

var defaultPlans = []models.SubscriptionPlan{
	{
		Name:         "Weekly Care",
		Description:  "Unlimited consultations for one week",
		DurationDays: 7,
		Price:        49900,
		Features:     `["Unlimited appointments","Chat with doctors","Video consultations"]`,
	},
	{
		Name:         "Monthly Care",
		Description:  "Unlimited consultations for one month",
		DurationDays: 30,
		Price:        149900,
		Features:     `["Unlimited appointments","Chat with doctors","Video consultations","Priority booking"]`,
	},
	{
		Name:         "Quarterly Care",
		Description:  "Unlimited consultations for three months",
		DurationDays: 90,
		Price:        399900,
		Features:     `["Unlimited appointments","Chat with doctors","Video consultations","Priority booking","Family sharing"]`,
	},
}

// Seed inserts the specialization and subscription plan catalogs if absent.
// Safe to run on every boot.
func Seed() error {
	for _, name := range doctorSpecializations {
		var existing models.Specialization
		err := DB.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		spec := models.Specialization{
			Name:        name,
			Description: fmt.Sprintf("The %s specializes in the diagnosis and treatment of conditions in their field.", name),
		}
		if err := DB.Create(&spec).Error; err != nil {
			utils.LogError(err, "Error seeding specialization "+name)
			return err
		}
	}

	for _, plan := range defaultPlans {
		var existing models.SubscriptionPlan
		err := DB.Where("name = ?", plan.Name).First(&existing).Error
		if err == nil {
			continue
		}
		plan.IsActive = true
		if err := DB.Create(&plan).Error; err != nil {
			utils.LogError(err, "Error seeding subscription plan "+plan.Name)
			return err
		}
	}

	utils.LogSuccess("Catalog data seeded")
	return nil
}
