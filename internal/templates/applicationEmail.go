package templates

const newApplicationTmpl = `
<div>
	<p style="font-size:14px; color:#000000; margin:0 0 12px 0;">
		Hey {{CompanyName}},
	</p>
	<p style="font-size:14px; color:#000000; margin:0 0 12px 0;">
		{{CreatorName}} just applied to your bounty:
	</p>
	<p style="font-size:14px; color:#000000; margin:0 0 12px 0;">
		<table border="0" cellpadding="20" cellspacing="0" width="600" style="font-size:14px;">
		<tr>
			<th align="left">Bounty:</th>
			<th align="left">Platform:</th>
			<th align="left">Budget:</th>
		</tr>
		<tr>
			<td align="left" valign="middle">{{BountyTitle}}</td>
			<td align="left" valign="middle">{{Platform}}</td>
			<td align="left" valign="middle">${{Budget}}</td>
		</tr>
		</table>
	</p>
	{{# Pitch }}
	<p style="font-size:14px; color:#000000; margin:0 0 12px 0;">
		Their pitch: {{Pitch}}
	</p>
	{{/ Pitch }}
	<p style="font-size:14px; color:#000000; margin:0 0 12px 0;">
		Sign in to review the application.
	</p>
	<p style="font-size:14px; color:#000000; margin:0;">Kind regards,</p>
	<p style="font-size:14px; color:#000000; margin:0;">~ The Agora Team</p>
</div>
`

var NewApplication = MustacheMust(newApplicationTmpl)
