package mailing

import (
	"strings"
	"testing"

	"smart-pantry-backend/domain"

	"github.com/stretchr/testify/assert"
)

func TestExpirySubject(t *testing.T) {
	assert.Equal(t, "1 item expiring soon in your pantry", ExpirySubject(1))
	assert.Equal(t, "3 items expiring soon in your pantry", ExpirySubject(3))
}

func TestExpiryDigestBody(t *testing.T) {
	body := ExpiryDigestBody("alice", []domain.ExpiringItem{
		{Name: "Yogurt", Category: "dairy", DaysLeft: 0},
		{Name: "Milk", Category: "dairy", DaysLeft: 2},
	})

	assert.Contains(t, body, "Hello alice!")
	assert.Contains(t, body, "Yogurt")
	assert.Contains(t, body, "Expires today!")
	assert.Contains(t, body, "Expires in 2 days")
	// Today's items render with the most urgent accent color.
	assert.True(t, strings.Index(body, "#e74c3c") < strings.Index(body, "#f39c12"))
}

func TestWelcomeBody(t *testing.T) {
	body := WelcomeBody("alice")
	assert.Contains(t, body, "Hello alice!")
	assert.Contains(t, body, "Welcome to Smart Pantry!")
}
