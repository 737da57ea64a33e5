package server

import (
	"log"
	"time"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/agorahq/agora/internal/auth"
	"github.com/agorahq/agora/internal/common"
	"github.com/agorahq/agora/internal/templates"
	"github.com/agorahq/agora/misc"
)

func applyToBounty(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := auth.GetCtxUser(c)
		if u.Creator == nil {
			misc.AbortWithErr(c, 400, auth.ErrNoCreator)
			return
		}

		var app common.Application
		if err := misc.BindJSON(c, &app); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}

		app.BountyId = c.Params.ByName("id")
		app.CreatorId = u.ID
		app.AppliedAt = time.Now().UnixNano()

		var bounty *common.Bounty
		// the existence check and the insert share one write transaction,
		// so two racing applies for the same pair serialize and the loser
		// gets the duplicate error
		if err := s.db.Update(func(tx *bolt.Tx) error {
			if bounty = common.GetBountyTx(tx, s.Cfg, app.BountyId); bounty == nil {
				return common.ErrBountyNotFound
			}
			if !bounty.IsOpen() {
				return common.ErrBountyClosed
			}
			return common.CreateApplicationTx(tx, s.Cfg, &app)
		}); err != nil {
			var code int
			switch err {
			case common.ErrBountyNotFound:
				code = 404
			case common.ErrDuplicateApplication:
				code = 409
			default:
				code = 400
			}
			misc.AbortWithErr(c, code, err)
			return
		}

		if !s.Cfg.Sandbox {
			go s.notifyCompany(bounty, u, &app)
		}

		c.JSON(201, misc.StatusOK(app.Id))
	}
}

func (s *Server) notifyCompany(b *common.Bounty, creator *auth.User, app *common.Application) {
	owner := s.auth.GetUser(b.CompanyId)
	if owner == nil || owner.Company == nil {
		return
	}
	email := templates.NewApplication.Render(struct {
		CompanyName string
		CreatorName string
		BountyTitle string
		Platform    string
		Budget      int64
		Pitch       string
	}{owner.Company.Name, creator.Name, b.Title, b.Platform, b.Budget, app.Pitch})
	if resp, err := s.Cfg.MailClient().SendMessage(email, "New application: "+b.Title, owner.Email, owner.Name, []string{"new application"}); err != nil {
		log.Printf("application email failed: %v: %+v", err, resp)
	}
}

// checkApplication reports whether the current visitor already applied to
// the bounty. It never errors: anonymous callers, foreign roles and unknown
// bounties all read as not-applied.
func checkApplication(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var resp struct {
			Applied     bool                `json:"applied"`
			Application *common.Application `json:"application,omitempty"`
		}

		u := s.auth.GetReqUser(c.Request)
		if u == nil || u.Type != auth.CreatorRole {
			c.JSON(200, resp)
			return
		}

		s.db.View(func(tx *bolt.Tx) error {
			resp.Application = common.GetApplicationByPairTx(tx, s.Cfg, c.Params.ByName("id"), u.ID)
			return nil
		})
		resp.Applied = resp.Application != nil
		c.JSON(200, resp)
	}
}

func rescindApplication(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			u  = auth.GetCtxUser(c)
			id = c.Params.ByName("id")
		)
		if err := s.db.Update(func(tx *bolt.Tx) error {
			app := common.GetApplicationTx(tx, s.Cfg, id)
			if app == nil {
				return common.ErrApplicationNotFound
			}
			if app.CreatorId != u.ID {
				return common.ErrApplicationNotYours
			}
			if app.Status != common.ApplicationPending {
				return common.ErrApplicationNotPending
			}
			return common.DelApplicationTx(tx, s.Cfg, id)
		}); err != nil {
			var code int
			switch err {
			case common.ErrApplicationNotFound:
				code = 404
			case common.ErrApplicationNotYours:
				code = 403
			default:
				code = 400
			}
			misc.AbortWithErr(c, code, err)
			return
		}

		c.JSON(200, misc.StatusOK(id))
	}
}

type appWithBounty struct {
	*common.Application
	Bounty *common.BountySummary `json:"bounty,omitempty"`
}

func getMyApplications(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := auth.GetCtxUser(c)

		out := []*appWithBounty{}
		s.db.View(func(tx *bolt.Tx) error {
			return common.ForEachApplicationTx(tx, s.Cfg, func(app *common.Application) error {
				if app.CreatorId != u.ID {
					return nil
				}
				awb := &appWithBounty{Application: app}
				if b := common.GetBountyTx(tx, s.Cfg, app.BountyId); b != nil {
					awb.Bounty = b.Summary()
				}
				out = append(out, awb)
				return nil
			})
		})

		c.JSON(200, out)
	}
}

func getApplicationsForBounty(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Params.ByName("id")

		out := []*common.Application{}
		s.db.View(func(tx *bolt.Tx) error {
			return common.ForEachApplicationTx(tx, s.Cfg, func(app *common.Application) error {
				if app.BountyId == id {
					out = append(out, app)
				}
				return nil
			})
		})

		c.JSON(200, out)
	}
}

func setApplicationStatus(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status string `json:"status"`
		}
		if misc.BindJSON(c, &req) != nil ||
			(req.Status != common.ApplicationAccepted && req.Status != common.ApplicationRejected) {
			misc.AbortWithErr(c, 400, common.ErrInvalidAppStatus)
			return
		}

		var (
			u  = auth.GetCtxUser(c)
			id = c.Params.ByName("id")
		)
		if err := s.db.Update(func(tx *bolt.Tx) error {
			app := common.GetApplicationTx(tx, s.Cfg, id)
			if app == nil {
				return common.ErrApplicationNotFound
			}
			if !s.auth.IsOwnerTx(tx, auth.BountyItem, app.BountyId, u.ID) && u.Type != auth.AdminRole {
				return auth.ErrUnauthorized
			}
			if app.Status != common.ApplicationPending {
				return common.ErrApplicationNotPending
			}
			app.Status = req.Status
			return common.SaveApplicationTx(tx, s.Cfg, app)
		}); err != nil {
			var code int
			switch err {
			case common.ErrApplicationNotFound:
				code = 404
			case auth.ErrUnauthorized:
				code = 403
			default:
				code = 400
			}
			misc.AbortWithErr(c, code, err)
			return
		}

		c.JSON(200, misc.StatusOK(id))
	}
}
