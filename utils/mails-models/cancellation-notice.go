package mailsmodels

import (
	"fmt"

	"github.com/devalexsantos/advlink-sub000/utils"
)

// CancellationNotice forwards a cancellation request and its stated reason
// to the operations mailbox.
func CancellationNotice(adminEmail string, userEmail string, reason string, details string) {
	subject := "Subject: AdvLink subscription cancellation requested \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1A3C5A; width: 100%%; min-height: 200px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 200px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Cancellation requested</h1></td>
				</tr>
				<tr>
					<td style="padding: 0 30px 10px 30px;"><strong>Account:</strong> %s</td>
				</tr>
				<tr>
					<td style="padding: 0 30px 10px 30px;"><strong>Reason:</strong> %s</td>
				</tr>
				<tr>
					<td style="padding: 0 30px 30px 30px;"><strong>Details:</strong><br/>%s</td>
				</tr>
			</tbody>
		</table>
	</div>
`, userEmail, reason, details)

	message := []byte(subject + mime + body)

	utils.SendMail(adminEmail, message)
}
