package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ExtractUserID extracts the user ID from a mention
func ExtractUserID(mention string) (string, error) {
	// Check if the mention is properly formatted
	if !strings.HasPrefix(mention, "<@") || !strings.HasSuffix(mention, ">") {
		return "", fmt.Errorf("invalid mention format")
	}

	// Extract the user ID
	userID := strings.TrimPrefix(strings.TrimSuffix(mention, ">"), "<@")

	// Remove the nickname exclamation mark if present
	userID = strings.TrimPrefix(userID, "!")

	// Validate that the user ID is a valid Snowflake (Discord ID)
	if _, err := strconv.ParseUint(userID, 10, 64); err != nil {
		return "", fmt.Errorf("invalid user ID")
	}

	return userID, nil
}

// ParseAmount parses a wager argument. "all" means the full balance;
// anything else must be a positive integer.
func ParseAmount(arg string, balance int64) (int64, error) {
	if strings.EqualFold(arg, "all") {
		return balance, nil
	}
	amount, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || amount <= 0 {
		return 0, fmt.Errorf("amount must be a positive number or 'all'")
	}
	return amount, nil
}

// FormatDuration renders a wait time as "N hour(s) N minute(s) N second(s)",
// dropping zero units.
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "a moment"
	}
	totalSeconds := int64(d / time.Second)
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour(s)", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minute(s)", minutes))
	}
	if seconds > 0 {
		parts = append(parts, fmt.Sprintf("%d second(s)", seconds))
	}
	if len(parts) == 0 {
		// Sub-second remainder still counts as a wait.
		return "1 second(s)"
	}
	return strings.Join(parts, " ")
}
