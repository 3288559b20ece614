package mailsmodels

import (
	"fmt"

	"github.com/devalexsantos/advlink-sub000/models"
	"github.com/devalexsantos/advlink-sub000/utils"
)

// LeadNotification tells the page owner that someone submitted the contact
// form on their public page.
func LeadNotification(email string, lead models.Lead) {
	subject := "Subject: You received a new contact on AdvLink \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1A3C5A; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">New contact from your page</h1></td>
				</tr>
				<tr>
					<td style="padding: 0 30px 10px 30px;"><strong>Name:</strong> %s</td>
				</tr>
				<tr>
					<td style="padding: 0 30px 10px 30px;"><strong>Email:</strong> %s</td>
				</tr>
				<tr>
					<td style="padding: 0 30px 10px 30px;"><strong>Phone:</strong> %s</td>
				</tr>
				<tr>
					<td style="padding: 0 30px 30px 30px;"><strong>Message:</strong><br/>%s</td>
				</tr>
			</tbody>
		</table>
	</div>
`, lead.Name, lead.Email, lead.Phone, lead.Message)

	message := []byte(subject + mime + body)

	utils.SendMail(email, message)
}
