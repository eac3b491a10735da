package mailing

import (
	"fmt"
	"strings"

	"smart-pantry-backend/domain"
	"smart-pantry-backend/internal/utils"
)

const WelcomeSubject = "Welcome to Smart Pantry!"

func WelcomeBody(username string) string {
	appURL := utils.GetConfig("APP_URL")

	var b strings.Builder
	b.WriteString(`<html><body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">`)
	b.WriteString(`<div style="background: #986533; padding: 30px; border-radius: 10px; text-align: center; color: white;">`)
	b.WriteString(`<h1 style="margin: 0;">Welcome to Smart Pantry!</h1></div>`)
	b.WriteString(`<div style="padding: 30px; background: #f6f1eb; border-radius: 10px; margin-top: 20px;">`)
	fmt.Fprintf(&b, `<h2 style="color: #7a3e2f;">Hello %s!</h2>`, username)
	b.WriteString(`<p>Thank you for joining Smart Pantry! We're excited to help you manage your kitchen inventory and reduce food waste.</p>`)
	b.WriteString(`<ul>`)
	b.WriteString(`<li>Track your pantry items and expiry dates</li>`)
	b.WriteString(`<li>Discover recipes based on available ingredients</li>`)
	b.WriteString(`<li>Get notifications before items expire</li>`)
	b.WriteString(`<li>Reduce food waste and save money</li>`)
	b.WriteString(`</ul>`)
	fmt.Fprintf(&b, `<div style="text-align: center; margin: 30px 0;"><a href="%s/api/v1/pantry" style="background: #986533; color: white; padding: 15px 30px; text-decoration: none; border-radius: 8px;">Start Managing Your Pantry</a></div>`, appURL)
	b.WriteString(`<p style="text-align: center; color: #666;">Happy cooking!<br>The Smart Pantry Team</p>`)
	b.WriteString(`</div></body></html>`)
	return b.String()
}

func ExpirySubject(count int) string {
	return fmt.Sprintf("%d item%s expiring soon in your pantry", count, plural(count))
}

func ExpiryDigestBody(username string, items []domain.ExpiringItem) string {
	appURL := utils.GetConfig("APP_URL")

	var b strings.Builder
	b.WriteString(`<html><body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">`)
	b.WriteString(`<div style="background: #e74c3c; padding: 30px; border-radius: 10px; text-align: center; color: white;">`)
	b.WriteString(`<h1 style="margin: 0; font-size: 24px;">Items Expiring Soon!</h1></div>`)
	b.WriteString(`<div style="padding: 30px; background: #f6f1eb; border-radius: 10px; margin-top: 20px;">`)
	fmt.Fprintf(&b, `<h2 style="color: #7a3e2f;">Hello %s!</h2>`, username)
	fmt.Fprintf(&b, `<p>You have <strong>%d item%s</strong> in your pantry that will expire soon. Take action now to avoid food waste!</p>`, len(items), plural(len(items)))
	b.WriteString(`<h3 style="color: #986533;">Items requiring attention:</h3>`)
	for _, item := range items {
		fmt.Fprintf(&b, `<div style="background: white; padding: 15px; margin: 10px 0; border-radius: 8px; border-left: 4px solid %s;">`, urgencyColor(item.DaysLeft))
		fmt.Fprintf(&b, `<h4 style="margin: 0; color: #333;">%s</h4>`, item.Name)
		fmt.Fprintf(&b, `<p style="margin: 5px 0; font-weight: bold;">%s</p>`, expiryLine(item.DaysLeft))
		fmt.Fprintf(&b, `<p style="margin: 5px 0; color: #666; font-size: 14px;">Category: %s</p>`, item.Category)
		b.WriteString(`</div>`)
	}
	fmt.Fprintf(&b, `<div style="text-align: center; margin: 30px 0;"><a href="%s/api/v1/pantry" style="background: #986533; color: white; padding: 15px 30px; text-decoration: none; border-radius: 8px;">View Your Pantry</a></div>`, appURL)
	b.WriteString(`<p style="text-align: center; color: #666;">Let's reduce food waste together!<br>The Smart Pantry Team</p>`)
	b.WriteString(`</div></body></html>`)
	return b.String()
}

func expiryLine(daysLeft int) string {
	if daysLeft == 0 {
		return "Expires today!"
	}
	return fmt.Sprintf("Expires in %d day%s", daysLeft, plural(daysLeft))
}

func urgencyColor(daysLeft int) string {
	switch {
	case daysLeft <= 1:
		return "#e74c3c"
	case daysLeft <= 2:
		return "#f39c12"
	default:
		return "#ff9800"
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
