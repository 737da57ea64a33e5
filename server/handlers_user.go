package server

import (
	"strings"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/agorahq/agora/internal/auth"
	"github.com/agorahq/agora/misc"
	"github.com/agorahq/agora/platforms"
)

func getSettings(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, auth.GetCtxUser(c).Trim())
	}
}

func putSettings(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var upd auth.User
		if err := misc.BindJSON(c, &upd); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}

		u := auth.GetCtxUser(c)
		if err := s.db.Update(func(tx *bolt.Tx) error {
			// re-read inside the tx so we never clobber a concurrent change
			cur := s.auth.GetUserTx(tx, u.ID)
			if cur == nil {
				return auth.ErrInvalidUserID
			}
			if upd.Name != "" {
				cur.Update(&upd)
			}

			// the profile payload has to match the account's role
			switch cur.Type {
			case auth.CompanyRole:
				if upd.Company != nil {
					if err := upd.Company.Check(); err != nil {
						return err
					}
					upd.Company.LogoURL = cur.Company.LogoURL
					if err := auth.SetProfile(s.auth, upd.Company, cur); err != nil {
						return err
					}
				}
			case auth.CreatorRole:
				if upd.Creator != nil {
					if err := upd.Creator.Check(); err != nil {
						return err
					}
					upd.Creator.AvatarURL = cur.Creator.AvatarURL
					upd.Creator.Verified = cur.Creator.Verified
					if err := auth.SetProfile(s.auth, upd.Creator, cur); err != nil {
						return err
					}
				}
			}
			return cur.Store(s.auth, tx)
		}); err != nil {
			misc.AbortWithErr(c, 400, err)
			return
		}

		c.JSON(200, misc.StatusOK(u.ID))
	}
}

func putEmail(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"pass"`
		}
		if misc.BindJSON(c, &req) != nil || req.Email == "" {
			misc.AbortWithErr(c, 400, auth.ErrInvalidRequest)
			return
		}

		u := auth.GetCtxUser(c)
		if err := s.db.Update(func(tx *bolt.Tx) error {
			l := s.auth.GetLoginTx(tx, u.Email)
			if l == nil || !auth.CheckPassword(l.Password, req.Password) {
				return auth.ErrInvalidPass
			}
			cur := s.auth.GetUserTx(tx, u.ID)
			if cur == nil {
				return auth.ErrInvalidUserID
			}
			return s.auth.ChangeEmailTx(tx, cur, req.Email)
		}); err != nil {
			code := 400
			if err == auth.ErrEmailExists {
				code = 409
			} else if err == auth.ErrInvalidPass {
				code = 401
			}
			misc.AbortWithErr(c, code, err)
			return
		}

		c.JSON(200, misc.StatusOK(u.ID))
	}
}

func putPassword(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			OldPass   string `json:"oldPass"`
			Password  string `json:"pass"`
			Password2 string `json:"pass2"`
		}
		if misc.BindJSON(c, &req) != nil {
			misc.AbortWithErr(c, 400, auth.ErrInvalidRequest)
			return
		}
		if req.Password != req.Password2 {
			misc.AbortWithErr(c, 400, auth.ErrPasswordMismatch)
			return
		}

		u := auth.GetCtxUser(c)
		if err := s.db.Update(func(tx *bolt.Tx) error {
			return s.auth.ChangePasswordTx(tx, u.Email, req.OldPass, req.Password, false)
		}); err != nil {
			code := 400
			if err == auth.ErrInvalidPass {
				code = 401
			}
			misc.AbortWithErr(c, code, err)
			return
		}

		c.JSON(200, misc.StatusOK(u.ID))
	}
}

func uploadAvatar(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var img UploadImage
		if err := misc.BindJSON(c, &img); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		if !strings.HasPrefix(img.Data, "data:image/") {
			misc.AbortWithErr(c, 400, ErrInvalidImage)
			return
		}

		u := auth.GetCtxUser(c)
		filename, err := saveImageToDisk(s.Cfg.ImagesDir+u.ID, img.Data, u.ID, "", minImageSize, minImageSize)
		if err != nil {
			misc.AbortWithErr(c, 400, err)
			return
		}

		url := s.Cfg.ServerURL + s.Cfg.ImageUrlPath + filename
		if err := s.db.Update(func(tx *bolt.Tx) error {
			cur := s.auth.GetUserTx(tx, u.ID)
			if cur == nil {
				return auth.ErrInvalidUserID
			}
			switch cur.Type {
			case auth.CompanyRole:
				cur.Company.LogoURL = url
			case auth.CreatorRole:
				cur.Creator.AvatarURL = url
			}
			return cur.Store(s.auth, tx)
		}); err != nil {
			misc.AbortWithErr(c, 400, err)
			return
		}

		c.JSON(200, misc.StatusOK(url))
	}
}

func verifySocial(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Platform string `json:"platform"`
			Handle   string `json:"handle"`
			Code     string `json:"code"`
		}
		if misc.BindJSON(c, &req) != nil {
			misc.AbortWithErr(c, 400, auth.ErrInvalidRequest)
			return
		}
		req.Platform = strings.ToLower(strings.TrimSpace(req.Platform))
		if !platforms.IsValid(req.Platform) {
			misc.AbortWithErr(c, 400, platforms.ErrUnknownPlatform)
			return
		}

		status, err := s.verifier.Verify(req.Platform, req.Handle, req.Code)
		if err != nil {
			misc.AbortWithErr(c, 400, err)
			return
		}

		u := auth.GetCtxUser(c)
		if status == platforms.Verified {
			if err := s.db.Update(func(tx *bolt.Tx) error {
				cur := s.auth.GetUserTx(tx, u.ID)
				if cur == nil || cur.Creator == nil {
					return auth.ErrInvalidUserID
				}
				if cur.Creator.Verified == nil {
					cur.Creator.Verified = map[string]bool{}
				}
				if cur.Creator.Handles == nil {
					cur.Creator.Handles = map[string]string{}
				}
				cur.Creator.Handles[req.Platform] = req.Handle
				cur.Creator.Verified[req.Platform] = true
				return cur.Store(s.auth, tx)
			}); err != nil {
				misc.AbortWithErr(c, 400, err)
				return
			}
		}

		c.JSON(200, gin.H{"status": status})
	}
}
