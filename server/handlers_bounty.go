package server

import (
	"log"
	"sort"
	"time"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/agorahq/agora/internal/auth"
	"github.com/agorahq/agora/internal/common"
	"github.com/agorahq/agora/internal/discovery"
	"github.com/agorahq/agora/misc"
	"github.com/agorahq/agora/platforms"
)

func getPlatforms(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, platforms.GetPlatforms())
	}
}

func getNiches(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, common.GetNiches())
	}
}

// loadOpenBounties reads every open bounty joined with its company, filtered
// by the optional platform/niche params. A read error comes back as a nil
// list so the caller can substitute the fallback catalog.
func loadOpenBounties(s *Server, platform, niche string) []*common.BountyWithCompany {
	var out []*common.BountyWithCompany
	if err := s.db.View(func(tx *bolt.Tx) error {
		return common.ForEachBountyTx(tx, s.Cfg, func(b *common.Bounty) error {
			if !b.IsOpen() {
				return nil
			}
			if platform != "" && b.Platform != platform {
				return nil
			}
			if niche != "" && b.Niche != niche {
				return nil
			}
			bwc := &common.BountyWithCompany{Bounty: b}
			if co := s.auth.GetCompanyTx(tx, b.CompanyId); co != nil {
				bwc.CompanyName, bwc.CompanyDescription = co.Name, co.Description
			}
			out = append(out, bwc)
			return nil
		})
	}); err != nil {
		log.Println("bounty scan failed:", err)
		return nil
	}
	return out
}

func getBounties(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			platform = c.Query("platform")
			niche    = c.Query("niche")
		)

		list := loadOpenBounties(s, platform, niche)
		if len(list) == 0 {
			// empty or unreachable store, serve the static catalog so the
			// board never renders blank
			list = common.FallbackBounties(platform, niche)
		}

		// newest-created first unless the caller asked for an order
		sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt > list[j].CreatedAt })

		filters, order := discovery.FromQuery(c.Request.URL.Query())
		list = discovery.Apply(list, filters)
		if order != "" {
			list = discovery.Order(list, order)
		}

		c.JSON(200, list)
	}
}

func getBounty(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Params.ByName("id")

		var bwc *common.BountyWithCompany
		s.db.View(func(tx *bolt.Tx) error {
			if b := common.GetBountyTx(tx, s.Cfg, id); b != nil {
				bwc = &common.BountyWithCompany{Bounty: b}
				if co := s.auth.GetCompanyTx(tx, b.CompanyId); co != nil {
					bwc.CompanyName, bwc.CompanyDescription = co.Name, co.Description
				}
			}
			return nil
		})

		if bwc == nil {
			bwc = common.GetFallbackBounty(id)
		}
		if bwc == nil {
			misc.AbortWithErr(c, 404, common.ErrBountyNotFound)
			return
		}
		c.JSON(200, bwc)
	}
}

func postBounty(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var b common.Bounty
		if err := misc.BindJSON(c, &b); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}
		if err := b.Check(true); err != nil {
			misc.AbortWithErr(c, 400, err)
			return
		}

		u := auth.GetCtxUser(c)
		b.CompanyId = u.ID
		b.Status = common.StatusOpen
		b.CreatedAt = time.Now().UnixNano()

		if err := s.db.Update(func(tx *bolt.Tx) (err error) {
			if b.Id, err = misc.GetNextIndex(tx, s.Cfg.Bucket.Bounty); err != nil {
				return
			}
			if err = s.auth.SetOwnerTx(tx, auth.BountyItem, b.Id, u.ID); err != nil {
				return
			}
			return saveBounty(s, tx, &b)
		}); err != nil {
			misc.AbortWithErr(c, 500, err)
			return
		}

		c.JSON(201, misc.StatusOK(b.Id))
	}
}

func putBounty(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var upd common.Bounty
		if err := misc.BindJSON(c, &upd); err != nil {
			c.JSON(400, misc.StatusErr("Error unmarshalling request body"))
			return
		}

		id := c.Params.ByName("id")
		if err := s.db.Update(func(tx *bolt.Tx) error {
			b := common.GetBountyTx(tx, s.Cfg, id)
			if b == nil {
				return common.ErrBountyNotFound
			}

			// mutable fields only; id, company and creation time stay
			b.Title = upd.Title
			b.Description = upd.Description
			b.Platform = upd.Platform
			b.ContentType = upd.ContentType
			b.Niche = upd.Niche
			b.Requirements = upd.Requirements
			b.Budget = upd.Budget
			b.PayPerImpression = upd.PayPerImpression
			b.MinFollowers = upd.MinFollowers
			b.CreatorSlots = upd.CreatorSlots
			b.Deadline = upd.Deadline
			b.AllowResubmission = upd.AllowResubmission
			if upd.Status == common.StatusOpen || upd.Status == common.StatusClosed {
				b.Status = upd.Status
			}

			if err := b.Check(false); err != nil {
				return err
			}
			return saveBounty(s, tx, b)
		}); err != nil {
			code := 400
			if err == common.ErrBountyNotFound {
				code = 404
			}
			misc.AbortWithErr(c, code, err)
			return
		}

		c.JSON(200, misc.StatusOK(id))
	}
}
