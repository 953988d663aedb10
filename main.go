package main

import (
	"flag"
	"log"

	"github.com/Jaydip614/medisync/db"
	_ "github.com/Jaydip614/medisync/docs"
	"github.com/Jaydip614/medisync/realtime"
	"github.com/Jaydip614/medisync/routes"
	"github.com/Jaydip614/medisync/utils"

	"github.com/gin-gonic/gin"
)

// @title MediSync API
// @version 1.0
// @description Healthcare scheduling and telemedicine backend
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {
	seed := flag.Bool("seed", false, "insert catalog seed data and exit")
	flag.Parse()

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if *seed {
		if err := db.Seed(); err != nil {
			log.Fatal("Seeding failed:", err)
		}
		log.Println("Seed data inserted")
		return
	}

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("File uploads will not work correctly.")
	}

	if err := utils.InitRazorpay(); err != nil {
		log.Printf("Warning: Razorpay initialization failed: %v", err)
		log.Println("Payment order creation will not work correctly.")
	}

	if err := realtime.InitRedis(); err != nil {
		log.Printf("Warning: Redis initialization failed: %v", err)
		log.Println("Realtime chat and presence events will not be delivered.")
	}

	r := routes.SetupRouter()

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Error starting server:", err)
	}
}
