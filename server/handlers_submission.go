package server

import (
	"strings"
	"time"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/agorahq/agora/internal/auth"
	"github.com/agorahq/agora/internal/common"
	"github.com/agorahq/agora/misc"
)

func createSubmission(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sub common.Submission
		if err := misc.BindJSON(c, &sub); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		sub.ContentURL = strings.TrimSpace(sub.ContentURL)
		if !strings.HasPrefix(sub.ContentURL, "http://") && !strings.HasPrefix(sub.ContentURL, "https://") {
			misc.AbortWithErr(c, 400, common.ErrInvalidContentURL)
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
			if app.CreatorId != u.ID {
				return common.ErrApplicationNotYours
			}
			if app.Status != common.ApplicationAccepted {
				return common.ErrNotAccepted
			}
			b := common.GetBountyTx(tx, s.Cfg, app.BountyId)
			if b == nil {
				return common.ErrBountyNotFound
			}

			sub.ApplicationId = app.Id
			sub.BountyId = app.BountyId
			sub.CreatorId = u.ID
			sub.SubmittedAt = time.Now().UnixNano()
			return common.CreateSubmissionTx(tx, s.Cfg, b, &sub)
		}); err != nil {
			var code int
			switch err {
			case common.ErrApplicationNotFound, common.ErrBountyNotFound:
				code = 404
			case common.ErrApplicationNotYours:
				code = 403
			default:
				code = 400
			}
			misc.AbortWithErr(c, code, err)
			return
		}

		c.JSON(201, misc.StatusOK(sub.Id))
	}
}

func getSubmissionsForBounty(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Params.ByName("id")

		out := []*common.Submission{}
		s.db.View(func(tx *bolt.Tx) error {
			return common.ForEachSubmissionTx(tx, s.Cfg, func(sub *common.Submission) error {
				if sub.BountyId == id {
					out = append(out, sub)
				}
				return nil
			})
		})

		c.JSON(200, out)
	}
}

func setSubmissionStatus(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status string `json:"status"`
		}
		if misc.BindJSON(c, &req) != nil ||
			(req.Status != common.SubmissionApproved && req.Status != common.SubmissionRejected) {
			misc.AbortWithErr(c, 400, common.ErrInvalidAppStatus)
			return
		}

		var (
			u  = auth.GetCtxUser(c)
			id = c.Params.ByName("id")
		)
		if err := s.db.Update(func(tx *bolt.Tx) error {
			sub := common.GetSubmissionTx(tx, s.Cfg, id)
			if sub == nil {
				return common.ErrSubmissionNotFound
			}
			if !s.auth.IsOwnerTx(tx, auth.BountyItem, sub.BountyId, u.ID) && u.Type != auth.AdminRole {
				return auth.ErrUnauthorized
			}
			if sub.Status != common.SubmissionSubmitted {
				return common.ErrInvalidAppStatus
			}
			sub.Status = req.Status
			if err := common.SaveSubmissionTx(tx, s.Cfg, sub); err != nil {
				return err
			}
			if req.Status == common.SubmissionApproved {
				b := common.GetBountyTx(tx, s.Cfg, sub.BountyId)
				if b == nil {
					return common.ErrBountyNotFound
				}
				// static bookkeeping row; there is no payment gateway
				if _, err := common.RecordPaymentTx(tx, s.Cfg, sub.BountyId, sub.CreatorId, b.Budget); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			var code int
			switch err {
			case common.ErrSubmissionNotFound, common.ErrBountyNotFound:
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
