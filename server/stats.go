package server

import (
	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/agorahq/agora/internal/auth"
	"github.com/agorahq/agora/internal/common"
)

type creatorStats struct {
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`

	Submissions int   `json:"submissions"`
	Earned      int64 `json:"earned"`
}

type companyStats struct {
	Bounties int `json:"bounties"`
	Open     int `json:"open"`

	Applications int `json:"applications"`

	Payments  int   `json:"payments"`
	TotalPaid int64 `json:"totalPaid"`

	Budget int64 `json:"budget"` // across open bounties
}

// getStats aggregates the caller's dashboard numbers in a single read
// transaction so they are mutually consistent.
func getStats(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := auth.GetCtxUser(c)

		switch u.Type {
		case auth.CreatorRole:
			var st creatorStats
			s.db.View(func(tx *bolt.Tx) error {
				common.ForEachApplicationTx(tx, s.Cfg, func(app *common.Application) error {
					if app.CreatorId != u.ID {
						return nil
					}
					st.Total++
					switch app.Status {
					case common.ApplicationPending:
						st.Pending++
					case common.ApplicationAccepted:
						st.Accepted++
					case common.ApplicationRejected:
						st.Rejected++
					}
					return nil
				})
				common.ForEachSubmissionTx(tx, s.Cfg, func(sub *common.Submission) error {
					if sub.CreatorId == u.ID {
						st.Submissions++
					}
					return nil
				})
				return common.ForEachPaymentTx(tx, s.Cfg, func(p *common.Payment) error {
					if p.CreatorId == u.ID {
						st.Earned += p.Amount
					}
					return nil
				})
			})
			c.JSON(200, &st)

		case auth.CompanyRole, auth.AdminRole:
			var (
				st   companyStats
				mine = map[string]bool{}
			)
			s.db.View(func(tx *bolt.Tx) error {
				common.ForEachBountyTx(tx, s.Cfg, func(b *common.Bounty) error {
					if b.CompanyId != u.ID && u.Type != auth.AdminRole {
						return nil
					}
					mine[b.Id] = true
					st.Bounties++
					if b.IsOpen() {
						st.Open++
						st.Budget += b.Budget
					}
					return nil
				})
				common.ForEachApplicationTx(tx, s.Cfg, func(app *common.Application) error {
					if mine[app.BountyId] {
						st.Applications++
					}
					return nil
				})
				return common.ForEachPaymentTx(tx, s.Cfg, func(p *common.Payment) error {
					if mine[p.BountyId] {
						st.Payments++
						st.TotalPaid += p.Amount
					}
					return nil
				})
			})
			c.JSON(200, &st)

		default:
			c.JSON(200, gin.H{})
		}
	}
}
