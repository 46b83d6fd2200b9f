package mailer

import "fmt"

// ResetPasswordBody renders the password reset message.
func ResetPasswordBody(name, resetLink string) string {
	return fmt.Sprintf(`<p>Hello %s,</p>
<p>You requested a password reset. Click the link below to reset your password:</p>
<a href="%s" style="background:#007bff; padding:10px 15px; color:white; text-decoration:none; border-radius:5px;">Reset Password</a>
<p>This link expires in 15 minutes.</p>
<p>If you did not request this, please ignore this email.</p>`, name, resetLink)
}

// WelcomeBody renders the post-signup greeting.
func WelcomeBody(name string) string {
	return fmt.Sprintf(`<p>Hi %s,</p>
<p>Welcome to our platform! We are excited to have you.</p>
<p>Let us know if you need any help.</p>`, name)
}
