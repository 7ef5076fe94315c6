package models

// Notification topics published to the WhatsApp bot service
const (
	TopicWhatsAppOTP    = "whatsapp-otp"
	TopicWhatsAppNotify = "whatsapp-notify"
)

// NotificationMessage is the fire-and-forget payload consumed by the
// notification service
type NotificationMessage struct {
	TemplateName  string            `json:"template_name"`
	MobileNumbers []string          `json:"mobile_numbers"`
	Variables     map[string]string `json:"variables,omitempty"`
}
