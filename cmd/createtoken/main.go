package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"pulsehr.com/pulsehr/security"
)

func main() {
	employeeID := flag.Int("employee", 1, "employee id")
	userName := flag.String("user", "dev", "unique name")
	role := flag.String("role", "employee", "role (employee, manager, admin)")
	email := flag.String("email", "", "email address")
	expires := flag.Int64("expires", 3600*8, "expiry in seconds")
	flag.Parse()

	secret := os.Getenv("PULSEHR_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("PULSEHR_SIGNING_SECRET is not set")
	}

	token, err := security.CreateIdentityToken(&security.PulseIdentity{
		EmployeeId: *employeeID,
		UserName:   *userName,
		Role:       *role,
		Email:      *email,
	}, secret, *expires)
	if err != nil {
		log.Fatalf("failed to create identity token: %v", err)
	}

	fmt.Println(token)
}
