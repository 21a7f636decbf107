package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"spendtrack/internal/config"
	"spendtrack/internal/database"
	"spendtrack/internal/models"
	"spendtrack/internal/repositories"
	"spendtrack/internal/services"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	expenseRepo := repositories.NewGORMExpenseRepository(db)

	lockout := services.NewLockoutService(userRepo, cfg.MaxLoginAttempts, cfg.LockoutDuration)
	authService := services.NewAuthService(userRepo, lockout)
	expenseService := services.NewExpenseService(expenseRepo)

	app := &cli{
		in:       bufio.NewScanner(os.Stdin),
		auth:     authService,
		expenses: expenseService,
	}
	app.run()
}

// cli is the interactive text-menu shell. It holds the current session (nil
// when logged out) and delegates every operation to the services.
type cli struct {
	in       *bufio.Scanner
	auth     *services.AuthService
	expenses *services.ExpenseService
	session  *models.Session
}

func (c *cli) run() {
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("    SECURE EXPENSE MANAGEMENT SYSTEM")
	fmt.Println(strings.Repeat("=", 50))

	for {
		if c.session == nil {
			if done := c.authMenu(); done {
				return
			}
		} else {
			if done := c.expenseMenu(); done {
				return
			}
		}
	}
}

func (c *cli) authMenu() (quit bool) {
	fmt.Println("\n--- Authentication Required ---")
	fmt.Println("1. Login")
	fmt.Println("2. Register")
	fmt.Println("3. Quit")

	switch c.prompt("\nChoose an option (1-3): ") {
	case "1":
		c.login()
	case "2":
		c.register()
	case "3":
		fmt.Println("\nGoodbye!")
		return true
	default:
		fmt.Println("\nInvalid choice. Please select 1, 2, or 3.")
	}
	return false
}

func (c *cli) expenseMenu() (quit bool) {
	fmt.Printf("\n--- Logged in as: %s ---\n", c.session.Username)
	fmt.Println("1. Add Expense")
	fmt.Println("2. View Expenses")
	fmt.Println("3. Update Expense")
	fmt.Println("4. Remove Expense")
	fmt.Println("5. Logout")
	fmt.Println("6. Quit")

	switch c.prompt("\nChoose an option (1-6): ") {
	case "1":
		c.addExpense()
	case "2":
		c.viewExpenses()
	case "3":
		c.updateExpense()
	case "4":
		c.removeExpense()
	case "5":
		c.logout()
		fmt.Println("\nLogged out successfully!")
	case "6":
		c.logout()
		fmt.Println("\nGoodbye!")
		return true
	default:
		fmt.Println("\nInvalid choice. Please select 1-6.")
	}
	return false
}

func (c *cli) login() {
	username := c.prompt("Enter username: ")
	password := c.promptPassword("Enter password: ")

	session, err := c.auth.Login(username, password)
	if err != nil {
		fmt.Printf("\nLogin failed: %v\n", err)
		return
	}
	c.session = session
	fmt.Printf("\nWelcome back, %s!\n", session.Username)
}

func (c *cli) register() {
	fmt.Println("\n--- Create New Account ---")
	fmt.Println("Password requirements:")
	fmt.Println("- At least 8 characters")
	fmt.Println("- At least one uppercase letter")
	fmt.Println("- At least one lowercase letter")
	fmt.Println("- At least one digit")
	fmt.Println()

	username := c.prompt("Enter username: ")
	password := c.promptPassword("Enter password: ")

	userID, err := c.auth.Register(username, password)
	if err != nil {
		fmt.Printf("\nRegistration failed: %v\n", err)
		return
	}
	fmt.Printf("\nAccount created successfully! User ID: %d\n", userID)
	fmt.Println("You can now login with your credentials.")
}

func (c *cli) logout() {
	c.auth.Logout(c.session)
	c.session = nil
}

func (c *cli) addExpense() {
	fmt.Println("\n--- Add New Expense ---")
	name := c.prompt("Expense name: ")
	amount := c.prompt("Amount ($): ")
	category := c.prompt("Category (optional): ")
	recurring := c.promptYesNo("Is this recurring? (y/n): ")
	var schedule string
	if recurring {
		schedule = c.prompt("Schedule (daily/weekly/monthly/yearly): ")
	}

	id, err := c.expenses.Add(c.session, name, amount, category, recurring, schedule)
	if err != nil {
		fmt.Printf("\nFailed to add expense: %v\n", err)
		return
	}
	fmt.Printf("\nExpense added successfully! ID: %d\n", id)
}

func (c *cli) viewExpenses() {
	fmt.Println("\n--- Your Expenses ---")
	expenses, err := c.expenses.List(c.session)
	if err != nil {
		fmt.Printf("\nFailed to get expenses: %v\n", err)
		return
	}
	if len(expenses) == 0 {
		fmt.Println("No expenses found.")
		return
	}

	fmt.Printf("%-5s %-20s %-10s %-15s %-10s %-10s\n", "ID", "Name", "Amount", "Category", "Recurring", "Schedule")
	fmt.Println(strings.Repeat("-", 80))
	for _, e := range expenses {
		recurring := "No"
		if e.Recurring {
			recurring = "Yes"
		}
		schedule := "-"
		if e.Schedule != nil {
			schedule = *e.Schedule
		}
		name := e.Name
		if len(name) > 19 {
			name = name[:19]
		}
		fmt.Printf("%-5d %-20s $%-9.2f %-15s %-10s %-10s\n", e.ID, name, e.Amount, e.Category, recurring, schedule)
	}
}

func (c *cli) updateExpense() {
	fmt.Println("\n--- Update Expense ---")
	id, ok := c.promptID("Enter expense ID to update: ")
	if !ok {
		return
	}
	name := c.prompt("New expense name: ")
	amount := c.prompt("New amount ($): ")
	category := c.prompt("New category (optional): ")
	recurring := c.promptYesNo("Is this recurring? (y/n): ")
	var schedule string
	if recurring {
		schedule = c.prompt("New schedule (daily/weekly/monthly/yearly): ")
	}

	if err := c.expenses.Update(c.session, id, name, amount, category, recurring, schedule); err != nil {
		fmt.Printf("\nFailed to update expense: %v\n", err)
		return
	}
	fmt.Println("\nExpense updated successfully!")
}

func (c *cli) removeExpense() {
	fmt.Println("\n--- Remove Expense ---")
	id, ok := c.promptID("Enter expense ID to remove: ")
	if !ok {
		return
	}
	if !c.promptYesNo(fmt.Sprintf("Are you sure you want to remove expense ID %d? (y/n): ", id)) {
		fmt.Println("\nOperation cancelled.")
		return
	}

	if err := c.expenses.Remove(c.session, id); err != nil {
		fmt.Printf("\nFailed to remove expense: %v\n", err)
		return
	}
	fmt.Println("\nExpense removed successfully!")
}

func (c *cli) prompt(label string) string {
	fmt.Print(label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

// promptPassword reads a password without echoing when stdin is a terminal,
// falling back to a plain line read for pipes.
func (c *cli) promptPassword(label string) string {
	fmt.Print(label)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			log.Printf("Failed to read password: %v", err)
			return ""
		}
		return string(password)
	}
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *cli) promptYesNo(label string) bool {
	answer := strings.ToLower(c.prompt(label))
	return answer == "y" || answer == "yes"
}

func (c *cli) promptID(label string) (uint, bool) {
	raw := c.prompt(label)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		fmt.Println("\nInvalid expense ID. Please enter a number.")
		return 0, false
	}
	return uint(id), true
}
