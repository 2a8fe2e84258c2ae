package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffpoint/presence-backend-go/internal/config"
	"github.com/staffpoint/presence-backend-go/internal/domain/auth"
	"github.com/staffpoint/presence-backend-go/internal/domain/employee"
	"github.com/staffpoint/presence-backend-go/internal/pkg/database"
	"github.com/staffpoint/presence-backend-go/internal/repository/postgresql"
)

// createadmin seeds the first administrator account directly in the database.
func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	fullName := flag.String("name", "System Administrator", "admin full name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := employeeRepo.GetByEmail(ctx, *email); err == nil {
		log.Fatalf("an employee with email %s already exists", *email)
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		log.Fatal("Error checking existing employee: ", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error hashing password: ", err)
	}

	admin, err := employeeRepo.Create(ctx, employee.Employee{
		FullName:     *fullName,
		Email:        *email,
		PasswordHash: string(hash),
		Role:         auth.RoleAdmin,
		WorkMode:     employee.WorkModeOffice,
		HireDate:     time.Now(),
	})
	if err != nil {
		log.Fatal("Error creating admin: ", err)
	}

	fmt.Printf("Admin created: %s (%s)\n", admin.Email, admin.ID)
}
