package mailsmodels

import (
	"fmt"
	"os"

	"github.com/devalexsantos/advlink-sub000/utils"
)

func ConfirmEmail(email string, code string) {
	subject := "Subject: Welcome to AdvLink \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	link := fmt.Sprintf("%s/valid-email/%s", os.Getenv("FRONTEND_URL"), code)
	body := fmt.Sprintf(`
	<div style="background-color: #1A3C5A; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Thank you for joining AdvLink</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">To finish your registration, please confirm your email by clicking the link below:</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<a href="%s" style="font-weight: bold; color: #1A3C5A; text-align:center;">Confirm my email</a>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, link)

	message := []byte(subject + mime + body)

	utils.SendMail(email, message)
}
