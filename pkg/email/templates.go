package email

import (
	"fmt"
	"time"
)

// BuildOTPEmail creates an email-verification code message.
// language: "pt" for Brazilian Portuguese or "en" for English
func BuildOTPEmail(email string, code string, language string, expiryMinutes int) Message {
	const appName = "Ampara"

	var subject, greeting, line1, line2, line3, codeLabel, expires, closing string

	if language == "en" {
		subject = "Your Verification Code | Seu código de verificação"
		greeting = "Hi,"
		line1 = "You've requested to verify your email address for Ampara."
		line2 = "Please use the code below to confirm it's you:"
		line3 = "If you didn't request this, please ignore this email."
		codeLabel = "Verification Code:"
		expires = fmt.Sprintf("This code is valid for %d minutes.", expiryMinutes)
		closing = "The Ampara Team"
	} else {
		subject = "Seu código de verificação | Your Verification Code"
		greeting = "Olá,"
		line1 = "Recebemos um pedido para verificar seu endereço de e-mail no Ampara."
		line2 = "Use o código abaixo para confirmar que é você:"
		line3 = "Se você não fez esse pedido, ignore este e-mail."
		codeLabel = "Código de verificação:"
		expires = fmt.Sprintf("Este código é válido por %d minutos.", expiryMinutes)
		closing = "Equipe Ampara"
	}

	textBody := fmt.Sprintf(`%s

%s

%s

%s

%s

%s

%s

%s`, greeting, line1, line2, codeLabel, code, expires, line3, closing)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #0d9488;">%s</h2>
    <p>%s</p>
    <p>%s</p>
    <p style="text-align: center; margin: 30px 0; background-color: #f3f4f6; padding: 20px; border-radius: 6px;">
        <span style="font-size: 12px; color: #6b7280;">%s</span><br>
        <span style="font-size: 36px; font-weight: bold; font-family: monospace; color: #000; letter-spacing: 4px;">%s</span>
    </p>
    <p style="color: #ef4444; font-size: 14px; text-align: center;">%s</p>
    <p>%s</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px; border-top: 1px solid #e5e7eb; padding-top: 20px;">
        %s
    </p>
</body>
</html>`, greeting, line1, line2, codeLabel, code, expires, line3, closing)

	return Message{
		To:       []string{email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// CareLinkInviteData contains the data needed for the care-link invite email.
type CareLinkInviteData struct {
	Email            string
	PatientFirstName string
	PsychologistName string
	InviteCode       string
	AcceptURL        string
	ShareDiaryAsked  bool
	ShareMoodAsked   bool
}

// BuildCareLinkInviteEmail creates the invite a psychologist sends a patient
// asking for a care link (and the consent flags it proposes).
func BuildCareLinkInviteEmail(data CareLinkInviteData) Message {
	firstName := data.PatientFirstName
	if firstName == "" {
		firstName = "Olá"
	}

	var shared string
	switch {
	case data.ShareDiaryAsked && data.ShareMoodAsked:
		shared = "seu diário e seus registros de humor"
	case data.ShareDiaryAsked:
		shared = "seu diário"
	case data.ShareMoodAsked:
		shared = "seus registros de humor"
	default:
		shared = "nenhum dado adicional"
	}

	subject := fmt.Sprintf("%s convidou você para um vínculo de cuidado no Ampara", data.PsychologistName)

	textBody := fmt.Sprintf(`%s,

%s convidou você a estabelecer um vínculo de cuidado no Ampara.

O convite propõe compartilhar: %s. Você decide o que compartilhar ao aceitar — sua escolha prevalece sobre a proposta.

Código do convite: %s

Aceite pelo link:
%s

Se você não esperava este convite, ignore este e-mail.

Equipe Ampara`,
		firstName, data.PsychologistName, shared, data.InviteCode, data.AcceptURL)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #0d9488;">%s,</h2>
    <p><strong>%s</strong> convidou você a estabelecer um vínculo de cuidado no Ampara.</p>
    <p>O convite propõe compartilhar: <strong>%s</strong>. Você decide o que compartilhar ao aceitar.</p>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px; font-family: monospace; font-size: 16px;">%s</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #0d9488; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Responder ao convite</a>
    </p>
    <p style="color: #6b7280; font-size: 14px;">Se você não esperava este convite, ignore este e-mail.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Equipe Ampara</p>
</body>
</html>`,
		firstName, data.PsychologistName, shared, data.InviteCode, data.AcceptURL)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// SessionReminderData contains the data for a session reminder email.
type SessionReminderData struct {
	Email            string
	FirstName        string
	PsychologistName string
	ScheduledAt      time.Time
	Timezone         string
	DurationMinutes  int
}

// BuildSessionReminderEmail creates the day-before session reminder.
// Times are rendered in the recipient's own timezone.
func BuildSessionReminderEmail(data SessionReminderData) Message {
	loc, err := time.LoadLocation(data.Timezone)
	if err != nil {
		loc = time.UTC
	}
	local := data.ScheduledAt.In(loc)
	when := local.Format("02/01/2006 às 15:04")

	firstName := data.FirstName
	if firstName == "" {
		firstName = "Olá"
	}

	subject := fmt.Sprintf("Lembrete: sessão em %s", local.Format("02/01"))

	textBody := fmt.Sprintf(`%s,

Lembrete da sua sessão com %s:

Data: %s (%s)
Duração: %d minutos

Caso precise remarcar, faça isso com antecedência pelo aplicativo.

Equipe Ampara`,
		firstName, data.PsychologistName, when, data.Timezone, data.DurationMinutes)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #0d9488;">%s,</h2>
    <p>Lembrete da sua sessão com <strong>%s</strong>:</p>
    <p style="background-color: #f3f4f6; padding: 15px; border-radius: 6px;">
        <strong>Data:</strong> %s (%s)<br>
        <strong>Duração:</strong> %d minutos
    </p>
    <p style="color: #6b7280; font-size: 14px;">Caso precise remarcar, faça isso com antecedência pelo aplicativo.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Equipe Ampara</p>
</body>
</html>`,
		firstName, data.PsychologistName, when, data.Timezone, data.DurationMinutes)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
