package gateway

import (
	"context"
	"fmt"

	"github.com/careloop/careloop/internal/pkg/models"
	"github.com/careloop/careloop/internal/utils"
)

// NotifyOTP publishes an OTP verification message for out-of-band delivery.
// Fire-and-forget: the publish either lands on the broker or errors out;
// delivery status is never awaited.
func (g *AuthGW) NotifyOTP(ctx context.Context, mobileNo, code string, role models.Role) error {
	msg := models.NotificationMessage{
		TemplateName:  "otp_verification",
		MobileNumbers: []string{utils.FormatWithCountryCode(mobileNo)},
		Variables: map[string]string{
			"otp":      code,
			"app_name": fmt.Sprintf("%s App", role),
		},
	}
	return g.producer.Publish(models.TopicWhatsAppOTP, msg)
}

// NotifyWelcome publishes a welcome message for a newly registered user
func (g *AuthGW) NotifyWelcome(ctx context.Context, mobileNo, firstName string) error {
	msg := models.NotificationMessage{
		TemplateName:  "welcome_user",
		MobileNumbers: []string{utils.FormatWithCountryCode(mobileNo)},
		Variables: map[string]string{
			"first_name": firstName,
		},
	}
	return g.producer.Publish(models.TopicWhatsAppNotify, msg)
}
