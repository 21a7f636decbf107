package models

import "time"

// Session identifies one authenticated user. It is an explicit value handed
// from the auth service to the expense ledger, so several independent sessions
// can coexist without shared mutable state.
type Session struct {
	Token      string    `json:"token"`
	UserID     uint      `json:"user_id"`
	Username   string    `json:"username"`
	LoggedInAt time.Time `json:"logged_in_at"`
}
