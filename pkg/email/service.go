package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service
// If sendGridAPIKey is provided, emails will be sent via SendGrid
// Otherwise, emails will be logged to console (development mode)
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendWelcomeEmail sends a welcome email after account provisioning
func (s *Service) SendWelcomeEmail(toEmail, toName, planName string) error {
	subject := "Welcome to Tripfolio!"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to Tripfolio!</h2>
			<p>Hi %s,</p>
			<p>Your account is ready and your <strong>%s</strong> plan is active.</p>
			<h3>Get Started:</h3>
			<ul>
				<li>Build itineraries for your clients</li>
				<li>Invite your team members</li>
				<li>Manage your subscription from the dashboard</li>
			</ul>
			<p><a href="%s/dashboard" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Go to Dashboard</a></p>
			<p>Thanks,<br>The Tripfolio Team</p>
		</body>
		</html>
	`, toName, planName, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your account is ready and your %s plan is active.

Get Started:
- Build itineraries for your clients
- Invite your team members
- Manage your subscription from the dashboard

Visit your dashboard: %s/dashboard

Thanks,
The Tripfolio Team
	`, toName, planName, s.baseURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	// Development mode: log to console
	log.Printf("📧 [EMAIL] Welcome email to: %s <%s>", toName, toEmail)
	return nil
}

// SendTeamInviteEmail sends an invitation to join a team
func (s *Service) SendTeamInviteEmail(toEmail, teamName, inviterName, token string) error {
	acceptURL := fmt.Sprintf("%s/team/accept-invite/%s", s.baseURL, token)

	subject := fmt.Sprintf("You've been invited to join %s on Tripfolio", teamName)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Team Invitation</h2>
			<p>Hi,</p>
			<p><strong>%s</strong> has invited you to join <strong>%s</strong> on Tripfolio.</p>
			<p>Click the button below to accept the invitation:</p>
			<p><a href="%s" style="background-color: #4A90E2; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Accept Invitation</a></p>
			<p>Or copy and paste this link into your browser:</p>
			<p><a href="%s">%s</a></p>
			<p><strong>This invitation will expire in 7 days.</strong></p>
			<p>If you don't want to join, you can safely ignore this email.</p>
			<p>Thanks,<br>The Tripfolio Team</p>
		</body>
		</html>
	`, inviterName, teamName, acceptURL, acceptURL, acceptURL)

	plainText := fmt.Sprintf(`
Hi,

%s has invited you to join %s on Tripfolio.

Click the link below to accept the invitation:

%s

This invitation will expire in 7 days.

If you don't want to join, you can safely ignore this email.

Thanks,
The Tripfolio Team
	`, inviterName, teamName, acceptURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, "", subject, body, plainText)
	}

	// Development mode: log to console
	return s.logEmailToConsole(toEmail, "", subject, acceptURL)
}

// SendRawEmail sends an email with custom subject and body content.
// Uses SendGrid in production, logs to console in development.
func (s *Service) SendRawEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody)
	}

	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	return nil
}

// sendViaSendGrid sends email using SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)

	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}

// logEmailToConsole logs email details to console (development mode)
func (s *Service) logEmailToConsole(toEmail, toName, subject, actionURL string) error {
	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   Action URL: %s", actionURL)
	log.Printf("   ---")
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	log.Printf("   Set SENDGRID_API_KEY environment variable to enable email sending")
	log.Printf("   ---")
	return nil
}
