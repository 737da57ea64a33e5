package templates

const welcomeTmpl = `
<div>
	<p style="font-size:14px; color:#000000; margin:0 0 12px 0;">
		Hey {{Name}},
	</p>
	<p style="font-size:14px; color:#000000; margin:0 0 12px 0;">
		Welcome to Agora! Your account is ready to go.
	</p>
	{{# IsCreator }}
	<p style="font-size:14px; color:#000000; margin:0 0 12px 0;">
		Head over to the bounty board to find campaigns that fit your audience. Verifying your social handles in settings will help companies trust your applications.
	</p>
	{{/ IsCreator }}
	{{# IsCompany }}
	<p style="font-size:14px; color:#000000; margin:0 0 12px 0;">
		You can post your first bounty right away. Clear requirements and a realistic budget get the best applications.
	</p>
	{{/ IsCompany }}
	<p style="font-size:14px; color:#000000; margin:0;">Kind regards,</p>
	<p style="font-size:14px; color:#000000; margin:0;">~ The Agora Team</p>
</div>
`

var Welcome = MustacheMust(welcomeTmpl)
