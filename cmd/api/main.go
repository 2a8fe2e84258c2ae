package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/staffpoint/presence-backend-go/internal/config"
	appHTTP "github.com/staffpoint/presence-backend-go/internal/handler/http"
	"github.com/staffpoint/presence-backend-go/internal/pkg/database"
	"github.com/staffpoint/presence-backend-go/internal/pkg/jwt"
	"github.com/staffpoint/presence-backend-go/internal/pkg/oauth"
	"github.com/staffpoint/presence-backend-go/internal/repository/postgresql"
	authService "github.com/staffpoint/presence-backend-go/internal/service/auth"
	employeeService "github.com/staffpoint/presence-backend-go/internal/service/employee"
	orgService "github.com/staffpoint/presence-backend-go/internal/service/org"
	presenceService "github.com/staffpoint/presence-backend-go/internal/service/presence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	teamRepo := postgresql.NewTeamRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	authSvc := authService.NewAuthService(employeeRepo, jwtService, googleService)
	presenceSvc := presenceService.NewPresenceService(eventRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, positionRepo, departmentRepo, teamRepo, projectRepo)
	orgSvc := orgService.NewOrgService(positionRepo, departmentRepo, teamRepo, projectRepo)

	var oauthHelper appHTTP.OAuthStateHelper
	if googleService != nil {
		oauthHelper = googleService
	}
	authHandler := appHTTP.NewAuthHandler(authSvc, oauthHelper, cfg.App.FrontendURL)
	presenceHandler := appHTTP.NewPresenceHandler(presenceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	orgHandler := appHTTP.NewOrgHandler(orgSvc)

	router := appHTTP.NewRouter(cfg, jwtService, authHandler, presenceHandler, employeeHandler, orgHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
