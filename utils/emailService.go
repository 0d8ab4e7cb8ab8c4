package utils

import (
	"encoding/base64"
	"fmt"
	"landcert/config"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// MailAttachment is a binary file attached to an outgoing mail.
type MailAttachment struct {
	Filename string
	MIMEType string
	Content  []byte
}

// SendMailFunc is the outbound mail transport. Tests swap it for a recorder.
var SendMailFunc = sendViaSMTP

// SendEmail sends an HTML email without attachments.
func SendEmail(to []string, subject string, htmlBody string) error {
	return SendMailFunc(to, subject, htmlBody, nil)
}

// sendViaSMTP delivers the message over plain SMTP, building the MIME
// envelope by hand. Attachments are base64-encoded parts of a multipart/mixed
// message.
func sendViaSMTP(to []string, subject string, htmlBody string, attachments []MailAttachment) error {
	smtpHost := config.AppConfig.SMTPHost
	smtpPort := config.AppConfig.SMTPPort

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	var msg strings.Builder
	msg.WriteString("MIME-version: 1.0;\r\n")
	msg.WriteString(fmt.Sprintf("From: Municipal Land-Use Office <%s>\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(to, ",")))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))

	if len(attachments) == 0 {
		msg.WriteString("Content-Type: text/html; charset=\"UTF-8\";\r\n\r\n")
		msg.WriteString(htmlBody)
	} else {
		boundary := "==LandCertMailBoundary=="
		msg.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=\"%s\"\r\n\r\n", boundary))

		msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		msg.WriteString(htmlBody)
		msg.WriteString("\r\n")

		for _, att := range attachments {
			msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
			msg.WriteString(fmt.Sprintf("Content-Type: %s; name=\"%s\"\r\n", att.MIMEType, att.Filename))
			msg.WriteString("Content-Transfer-Encoding: base64\r\n")
			msg.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=\"%s\"\r\n\r\n", att.Filename))

			encoded := base64.StdEncoding.EncodeToString(att.Content)
			// 76-char lines per MIME
			for len(encoded) > 76 {
				msg.WriteString(encoded[:76] + "\r\n")
				encoded = encoded[76:]
			}
			msg.WriteString(encoded + "\r\n")
		}
		msg.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	}

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg.String()))
	if err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

// HTML wrapper for outgoing office mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B3A2D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 22px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B3A2D; line-height: 1.6; }
			.content h2 { color: #1B3A2D; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0EA; padding: 15px; border-radius: 4px; border-left: 4px solid #C8A24B; margin: 20px 0; }
			.status-badge { display: inline-block; padding: 4px 8px; border-radius: 4px; font-size: 12px; font-weight: bold; color: white; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>MUNICIPAL LAND-USE OFFICE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message from the Municipal Land-Use Certification Office.<br>
				Please do not reply to this email.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) error {
	subject := "Welcome to the Land-Use Certification Portal"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your account on the <strong>Land-Use Certification Portal</strong> has been created.</p>
		<p>You can now submit certification requests, upload payment receipts and track the status of your applications online.</p>
	`, name)

	return SendEmail([]string{email}, subject, getEmailTemplate("Welcome!", body))
}

// 2. Submission confirmation (request created)
func SendSubmissionReceivedEmail(email, name, projectName string, requestID uint) error {
	subject := "Certification Request Received"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received your land-use certification request for <strong>%s</strong>.</p>
		<div class="info-box">
			<strong>Reference number:</strong> %d<br>
			<strong>Status:</strong> pending review
		</div>
		<p>Our staff will evaluate your submission. You will be notified by email when its status changes.</p>
	`, name, projectName, requestID)

	return SendEmail([]string{email}, subject, getEmailTemplate("Request Received", body))
}

// 3. Generic status change (dispatcher fallback mail)
func SendStatusChangeEmail(email, name, subject, statusType, oldStatus, newStatus string, requestID uint) error {
	transition := newStatus
	if oldStatus != "" {
		transition = oldStatus + " &rarr; " + newStatus
	}
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>The %s status of your certification request <strong>#%d</strong> has changed.</p>
		<div class="info-box">
			<strong>New status:</strong> %s
		</div>
		<p>Login to the portal to view full details.</p>
	`, name, statusType, requestID, transition)

	return SendEmail([]string{email}, subject, getEmailTemplate("Status Update", body))
}

// 4. Application approved (tailored, sent by the request controller)
func SendApplicationApprovedEmail(email, name, projectName string, requestID uint) error {
	subject := "Application Approved"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Good news! Your certification request for <strong>%s</strong> (ref #%d) has been <strong>APPROVED</strong>.</p>
		<p>Please pay the certification fee and upload your receipt so we can issue your certificate.</p>
	`, name, projectName, requestID)

	return SendEmail([]string{email}, subject, getEmailTemplate("Application Approved", body))
}

// 5. Application rejected (tailored)
func SendApplicationRejectedEmail(email, name, projectName, reason string, requestID uint) error {
	subject := "Application Rejected"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Unfortunately, your certification request for <strong>%s</strong> (ref #%d) was rejected.</p>
		<div style="color: #dc3545; font-weight: bold;">Reason: %s</div>
		<p>You may correct the issues noted above and submit a new request.</p>
	`, name, projectName, requestID, reason)

	return SendEmail([]string{email}, subject, getEmailTemplate("Application Rejected", body))
}

// 6. Payment verified (tailored, sent by the payment controller)
func SendPaymentVerifiedEmail(email, name string, amount float64, receiptNumber string) error {
	subject := "Payment Verified"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your payment of <strong>%.2f</strong> (receipt %s) has been verified.</p>
		<p>Your certificate will be generated shortly. We will notify you when it is ready.</p>
	`, name, amount, receiptNumber)

	return SendEmail([]string{email}, subject, getEmailTemplate("Payment Verified", body))
}

// 7. Payment rejected (tailored)
func SendPaymentRejectedEmail(email, name string, amount float64, notes string) error {
	subject := "Payment Could Not Be Verified"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We could not verify your payment of <strong>%.2f</strong>.</p>
		<div style="color: #dc3545; font-weight: bold;">Reason: %s</div>
		<p>Please upload a valid receipt or contact the office for assistance.</p>
	`, name, amount, notes)

	return SendEmail([]string{email}, subject, getEmailTemplate("Payment Rejected", body))
}

// 8. Certificate issued (tailored; attaches the PDF when a file exists)
func SendCertificateIssuedEmail(email, name, certificateNumber, filePath string) error {
	subject := "Your Land-Use Certificate Is Ready"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your land-use certificate has been issued.</p>
		<div class="info-box">
			<strong>Certificate number:</strong> %s
		</div>
		<p>You can collect the original at the municipal office during working hours.</p>
	`, name, certificateNumber)

	var attachments []MailAttachment
	if filePath != "" {
		content, err := os.ReadFile(filePath)
		if err != nil {
			log.Printf("Could not attach certificate file %s: %v (sending without attachment)", filePath, err)
		} else {
			attachments = append(attachments, MailAttachment{
				Filename: fmt.Sprintf("Certificate-%s.pdf", certificateNumber),
				MIMEType: "application/pdf",
				Content:  content,
			})
		}
	}

	return SendMailFunc([]string{email}, subject, getEmailTemplate("Certificate Issued", body), attachments)
}

// --- Reminder mails (sent by the sweep) ---

func SendPaymentDueReminderEmail(email, name, message string, requestID uint) error {
	subject := "Reminder: Certification Fee Payment Due"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>%s</p>
		<div class="info-box"><strong>Request reference:</strong> %d</div>
		<p>Please upload your payment receipt on the portal to avoid delays.</p>
	`, name, message, requestID)

	return SendEmail([]string{email}, subject, getEmailTemplate("Payment Reminder", body))
}

func SendDocumentPendingReminderEmail(email, name, message string, requestID uint) error {
	subject := "Reminder: Documents Pending"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>%s</p>
		<div class="info-box"><strong>Request reference:</strong> %d</div>
	`, name, message, requestID)

	return SendEmail([]string{email}, subject, getEmailTemplate("Document Reminder", body))
}

func SendCertificateExpiryReminderEmail(email, name, message string, certificateNumber string) error {
	subject := "Reminder: Certificate Expiring Soon"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>%s</p>
		<div class="info-box"><strong>Certificate number:</strong> %s</div>
		<p>Apply for renewal before the expiry date to keep your certification valid.</p>
	`, name, message, certificateNumber)

	return SendEmail([]string{email}, subject, getEmailTemplate("Certificate Expiry Reminder", body))
}
