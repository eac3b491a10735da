package domain

var (
	MessageSuccessTestNotification = "expiry notification triggered successfully"

	MessageFailedTestNotification = "failed to trigger expiry notification"
)
