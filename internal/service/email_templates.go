package service

import "fmt"

func verificationEmailTemplate(username, verifyURL, appName string) (string, string) {
	subject := fmt.Sprintf("Verify your %s account", appName)
	body := fmt.Sprintf(`Hi %s,

Welcome to %s! Please verify your email by clicking the link below:
%s

This link can only be used once.

If you did not sign up, you can ignore this email.

Best,
The %s Team`, username, appName, verifyURL, appName)

	return subject, body
}
