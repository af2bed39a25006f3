package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/blogline/blogline-be/config"
	"github.com/blogline/blogline-be/controllers"
	db2 "github.com/blogline/blogline-be/db"
	"github.com/blogline/blogline-be/db/memdb"
	"github.com/blogline/blogline-be/db/mysql"
	"github.com/blogline/blogline-be/routes"
	"github.com/blogline/blogline-be/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", err)
	}

	database, err := getDatabase(cfg)
	if err != nil {
		log.Fatal("Received err when attempting to connect to DB", err)
	}
	defer database.Close()

	if err := configureFirebaseCredentials(); err != nil {
		log.Fatal("an error occurred while configuring firebase credentials", err)
	}
	app, err := firebase.NewApp(context.Background(), nil)
	if err != nil {
		log.Fatalf("error initializing firebase: %v\n", err)
	}
	authClient, err := app.Auth(context.Background())
	if err != nil {
		log.Fatal("error initializing auth client", err)
	}

	var imageBucket *services.StorageBucket
	if cfg.ImageBucket != "" {
		imageBucket, err = services.NewStorageBucket(context.Background(), app, cfg.ImageBucket)
		if err != nil {
			log.Fatal("An error occurred while connecting to the image bucket", err)
		}
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.FrontendOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	routes.AddHealthCheckRoutes(&r.RouterGroup)
	routes.AddUserRoutes(&r.RouterGroup, database, authClient)
	routes.AddPostRoutes(&r.RouterGroup, database, controllers.NewPostController(database, imageBucket), authClient, cfg)
	routes.AddCommentRoutes(&r.RouterGroup, database, controllers.NewCommentController(database), authClient, cfg)
	routes.AddGroupRoutes(&r.RouterGroup, database, controllers.NewGroupController(database), authClient)
	routes.AddFollowRoutes(&r.RouterGroup, database, controllers.NewFollowController(database), authClient)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Error when attempting to run web server", err)
	}
}

func getDatabase(cfg *config.Config) (db2.Database, error) {
	if cfg.DBHost == "" {
		log.Println("DB_HOST not set, using the in-memory store")
		return memdb.GetDatabase(), nil
	}
	return mysql.GetDatabase(cfg.DSN(), cfg.DBMaxConns)
}

const (
	CredentialsPathEnvVar = "GOOGLE_APPLICATION_CREDENTIALS"
	CredentialsJsonEnvVar = "GOOGLE_APPLICATION_CREDENTIALS_JSON"
	TargetCredentialsFile = "./google-application-credentials.json"
)

func configureFirebaseCredentials() error {
	credentialsPath, hasCredentialsPath := os.LookupEnv(CredentialsPathEnvVar)
	if hasCredentialsPath {
		log.Printf("Credentials path detected in env. Expecting credentials to be at %v\n", credentialsPath)
		return nil
	}
	credentialsJson, hasCredentialsJson := os.LookupEnv(CredentialsJsonEnvVar)
	if hasCredentialsJson {
		log.Println("Credentials JSON string detected in env.")
		err := os.WriteFile(TargetCredentialsFile, []byte(credentialsJson), 0400)
		if err != nil {
			return fmt.Errorf("error writing credentials to temp file, %w", err)
		}
		err = os.Setenv(CredentialsPathEnvVar, TargetCredentialsFile)
		if err != nil {
			return fmt.Errorf("error setting %v env var %w", CredentialsPathEnvVar, err)
		}
		return nil
	}
	return fmt.Errorf("must specify either %v (a path)"+
		" or %v (credentials as JSON string)", CredentialsPathEnvVar, CredentialsJsonEnvVar)
}
