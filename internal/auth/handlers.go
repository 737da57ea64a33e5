package auth

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/agorahq/agora/internal/templates"
	"github.com/agorahq/agora/misc"
)

func (a *Auth) setCookie(w http.ResponseWriter, name, value string, dur time.Duration) {
	misc.SetCookie(w, a.cfg.Host, name, value, !a.cfg.Sandbox, dur)
}

func (a *Auth) refreshCookie(w http.ResponseWriter, r *http.Request, name string, dur time.Duration) {
	misc.RefreshCookie(w, r, a.cfg.Host, name, dur)
}

func (a *Auth) VerifyUser(c *gin.Context) {
	var ri *reqInfo
	a.db.View(func(tx *bolt.Tx) error {
		ri = a.getReqInfoTx(tx, c.Request)
		return nil
	})
	if ri == nil || len(ri.hashedPass) == 0 || !VerifyMac(ri.oldMac, ri.hashedPass, ri.stoken, ri.user.Salt) {
		misc.AbortWithErr(c, 401, ErrUnauthorized)
		return
	}
	c.Set(gin.AuthUserKey, ri.user)
	if !ri.isApiKey {
		w, r := c.Writer, c.Request
		a.refreshCookie(w, r, "token", TokenAge)
		a.refreshCookie(w, r, "key", TokenAge)
		a.refreshToken(ri.stoken, TokenAge)
	}
}

// CheckScopes returns a gin handler that checks user access against the provided ScopeMap
func (a *Auth) CheckScopes(sm ScopeMap) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u := GetCtxUser(c); u != nil && sm.HasAccess(u.Type, c.Request.Method) {
			return
		}
		misc.AbortWithErr(c, 401, ErrUnauthorized)
	}
}

//	CheckOwnership returns a handler that checks the ownership of an item.
//	params:
//		- itemType (ex BountyItem)
//		- paramName from the route (ex :id)
func (a *Auth) CheckOwnership(itemType ItemType, paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, itemID := GetCtxUser(c), c.Param(paramName)
		if u == nil || itemID == "" {
			misc.AbortWithErr(c, 400, ErrInvalidRequest)
			return
		}
		if u.Type == AdminRole { // admin owns everything
			return
		}
		var ok bool
		a.db.View(func(tx *bolt.Tx) error {
			ok = a.IsOwnerTx(tx, itemType, itemID, u.ID)
			return nil
		})
		if !ok {
			misc.AbortWithErr(c, 403, ErrUnauthorized)
		}
	}
}

func (a *Auth) SignInHandler(c *gin.Context) {
	var li struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"pass" form:"pass"`
	}
	if err := c.Bind(&li); err != nil {
		misc.AbortWithErr(c, http.StatusBadRequest, err)
		return
	}
	var (
		login *Login
		salt  string
		tok   string
		err   error
	)
	a.db.Update(func(tx *bolt.Tx) (_ error) {
		if login, tok, err = a.SignInTx(tx, li.Email, li.Password); err != nil {
			return
		}
		u := a.GetUserTx(tx, login.UserID)
		if u == nil {
			err = ErrInvalidRequest // this should never ever ever happen
			return
		}
		salt = u.Salt
		return
	})

	if err != nil {
		misc.AbortWithErr(c, 401, err)
		return
	}

	mac := CreateMAC(login.Password, tok, salt)
	w := c.Writer
	a.setCookie(w, "token", tok, TokenAge)
	a.setCookie(w, "key", mac, TokenAge)
	c.JSON(200, misc.StatusOK(login.UserID))
}

func (a *Auth) SignOutHandler(c *gin.Context) {
	if stok := misc.GetCookie(c.Request, "token"); stok != "" {
		a.db.Update(func(tx *bolt.Tx) error {
			return a.SignOutTx(tx, stok)
		})
	}
	w := c.Writer
	misc.DeleteCookie(w, a.cfg.Host, "token", !a.cfg.Sandbox)
	misc.DeleteCookie(w, a.cfg.Host, "key", !a.cfg.Sandbox)
	c.JSON(200, misc.StatusOK(""))
}

func (a *Auth) SignupHandler(c *gin.Context) {
	var su SignupUser
	if err := misc.BindJSON(c, &su); err != nil {
		misc.AbortWithErr(c, 400, err)
		return
	}
	su.Type = ParseRole(string(su.Type))
	if !su.Type.IsOneOf(CompanyRole, CreatorRole) {
		misc.AbortWithErr(c, 400, ErrInvalidUserType)
		return
	}
	if su.Password != su.Password2 {
		misc.AbortWithErr(c, 400, ErrPasswordMismatch)
		return
	}
	if len(su.Password) < 8 {
		misc.AbortWithErr(c, 400, ErrShortPass)
		return
	}
	if err := a.db.Update(func(tx *bolt.Tx) error {
		return a.CreateUserTx(tx, &su.User, su.Password)
	}); err != nil {
		code := 400
		if err == ErrEmailExists {
			code = 409
		}
		misc.AbortWithErr(c, code, err)
		return
	}

	if !a.cfg.Sandbox {
		go a.sendWelcomeEmail(&su.User)
	}

	if c.Query("autologin") == "true" {
		a.db.Update(func(tx *bolt.Tx) (_ error) {
			l, tok, err := a.SignInTx(tx, su.Email, su.Password)
			if err != nil {
				return
			}
			w := c.Writer
			a.setCookie(w, "token", tok, TokenAge)
			a.setCookie(w, "key", CreateMAC(l.Password, tok, su.Salt), TokenAge)
			return
		})
	}

	c.JSON(201, misc.StatusOK(su.ID))
}

func (a *Auth) sendWelcomeEmail(u *User) {
	email := templates.Welcome.Render(struct {
		Name      string
		IsCreator bool
		IsCompany bool
	}{u.Name, u.Type == CreatorRole, u.Type == CompanyRole})
	if resp, err := a.ec.SendMessage(email, "Welcome to Agora", u.Email, u.Name, []string{"welcome"}); err != nil {
		log.Printf("welcome email failed: %v: %+v", err, resp)
	}
}

const resetPasswordUrl = "%s%s/resetPassword/%s"

func (a *Auth) ReqResetHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if misc.BindJSON(c, &req) != nil || len(req.Email) == 0 {
		misc.AbortWithErr(c, 400, ErrInvalidRequest)
		return
	}
	var (
		u    *User
		stok string
		err  error
	)
	a.db.Update(func(tx *bolt.Tx) error {
		u, stok, err = a.RequestResetPasswordTx(tx, req.Email)
		return nil
	})
	if err != nil {
		misc.AbortWithErr(c, 400, ErrInvalidRequest)
		return
	}
	if a.cfg.Sandbox {
		c.JSON(200, misc.StatusOK(""))
		return
	}
	tmplData := struct {
		Sandbox bool
		URL     string
	}{a.cfg.Sandbox, fmt.Sprintf(resetPasswordUrl, a.cfg.ServerURL, a.cfg.APIPath, stok)}

	email := templates.ResetPassword.Render(tmplData)
	if resp, err := a.ec.SendMessage(email, "Password Reset Request", req.Email, u.Name, []string{"reset password"}); err != nil || len(resp) != 1 || resp[0].RejectReason != "" {
		log.Printf("%v: %+v", err, resp)
		misc.AbortWithErr(c, 500, ErrUnexpected)
		return
	}
	c.JSON(200, misc.StatusOK(""))
}

func (a *Auth) ResetPasswordHandler(c *gin.Context) {
	var req struct {
		Email     string `json:"email"`
		Password  string `json:"pass"`
		Password2 string `json:"pass2"`
	}
	if misc.BindJSON(c, &req) != nil || len(req.Email) == 0 {
		misc.AbortWithErr(c, 400, ErrInvalidRequest)
		return
	}
	if req.Password != req.Password2 {
		misc.AbortWithErr(c, 400, ErrPasswordMismatch)
		return
	}
	if err := a.db.Update(func(tx *bolt.Tx) error {
		return a.ResetPasswordTx(tx, c.Param("token"), req.Email, req.Password)
	}); err != nil {
		misc.AbortWithErr(c, 400, err)
		return
	}
	c.JSON(200, misc.StatusOK(""))
}
