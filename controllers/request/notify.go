package requestControllers

import (
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/nahidn228/HostelMate-Server/models"
)

// notifyDelivered e-mails the requester once their meal is delivered.
// Best effort only: without SendGrid config it is skipped, and send
// failures never surface to the API caller.
func notifyDelivered(request models.MealRequest) {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if apiKey == "" || fromEmail == "" {
		return
	}

	subject := fmt.Sprintf("Your meal request for %q was delivered", request.MealTitle)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour requested meal %q has been delivered. Enjoy!\n\n- HostelMate",
		request.RequesterName, request.MealTitle,
	)

	from := mail.NewEmail("HostelMate", fromEmail)
	to := mail.NewEmail(request.RequesterName, request.RequesterEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(apiKey)
	if _, err := client.Send(message); err != nil {
		log.Printf("delivery email to %s failed: %v", request.RequesterEmail, err)
	}
}
