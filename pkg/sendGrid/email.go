package sendGrid

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
	"github.com/vortexgear/storefront/internal/models"
	"github.com/vortexgear/storefront/internal/utils"
)

type Email struct {
	To          string
	ToName      string
	Subject     string
	Content     string
	HTMLContent string
}

type EmailService interface {
	Send(ctx context.Context, email *Email) error
	GetSendGridClient() *sendgrid.Client
}

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) EmailService {
	return &emailService{client: sendgrid.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

// Send implements EmailService.
func (e *emailService) Send(ctx context.Context, email *Email) error {

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(e.fromName, e.fromEmail))

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(email.ToName, email.To))
	personalization.Subject = email.Subject
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", email.Content))
	if email.HTMLContent != "" {
		message.AddContent(mail.NewContent("text/html", email.HTMLContent))
	}

	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

// GetSendGridClient provides access to the internal sendgrid.Client.
func (e *emailService) GetSendGridClient() *sendgrid.Client {
	return e.client
}

// OrderConfirmation mails a receipt for a placed order.
type OrderConfirmation struct {
	email EmailService
}

func NewOrderConfirmation(email EmailService) *OrderConfirmation {
	return &OrderConfirmation{email: email}
}

func (o *OrderConfirmation) SendOrderConfirmation(ctx context.Context, to, name string, order *models.Order) error {

	var text, body strings.Builder

	fmt.Fprintf(&text, "Thanks for your order, %s!\n\nOrder #%s\n\n", name, order.ID)
	fmt.Fprintf(&body, "<h1>Thanks for your order, %s!</h1><p>Order #%s</p><ul>", html.EscapeString(name), html.EscapeString(order.ID))

	for _, item := range order.Items {
		line := utils.LineTotal(item.Price, item.Quantity).StringFixed(2)
		fmt.Fprintf(&text, "%d x %s  $%s\n", item.Quantity, item.Name, line)
		fmt.Fprintf(&body, "<li>%d x %s &mdash; $%s</li>", item.Quantity, html.EscapeString(item.Name), line)
	}

	total := decimal.NewFromFloat(order.Total).StringFixed(2)
	fmt.Fprintf(&text, "\nTotal: $%s\n", total)
	fmt.Fprintf(&body, "</ul><p><strong>Total: $%s</strong></p>", total)

	return o.email.Send(ctx, &Email{
		To:          to,
		ToName:      name,
		Subject:     fmt.Sprintf("Vortex order #%s confirmed", order.ID),
		Content:     text.String(),
		HTMLContent: body.String(),
	})
}
