package server

import (
	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/agorahq/agora/config"
	"github.com/agorahq/agora/internal/auth"
	"github.com/agorahq/agora/misc"
	"github.com/agorahq/agora/platforms"
)

const (
	AdminEmail = "admin@agora.dev"
	adminPass  = "Rf1W9d86wQ"
)

type Server struct {
	Cfg *config.Config

	db   *bolt.DB
	auth *auth.Auth

	verifier platforms.Verifier

	r *gin.Engine
}

func New(cfg *config.Config, r *gin.Engine) (*Server, error) {
	db := misc.OpenDB(cfg.DBPath, cfg.DBName)
	if err := misc.InitBuckets(db, cfg.AllBuckets()...); err != nil {
		return nil, err
	}

	srv := &Server{
		Cfg:      cfg,
		db:       db,
		auth:     auth.New(db, cfg),
		verifier: platforms.SandboxVerifier{},
		r:        r,
	}

	if err := srv.initializeDB(); err != nil {
		return nil, err
	}
	srv.initializeRoutes(r.Group(cfg.APIPath))

	go srv.auth.PurgeInvalidTokens()

	return srv, nil
}

// initializeDB seeds the index counters and the built-in admin account on
// first run; both are no-ops on an existing store.
func (srv *Server) initializeDB() error {
	return srv.db.Update(func(tx *bolt.Tx) error {
		for _, b := range srv.Cfg.AllBuckets() {
			if b == srv.Cfg.Bucket.Index {
				continue
			}
			if err := misc.InitIndex(tx, b, 1); err != nil {
				return err
			}
		}

		if srv.auth.GetUserTx(tx, auth.AdminUserID) != nil {
			return nil
		}
		return srv.auth.CreateUserTx(tx, &auth.User{
			Name:  "Agora Admin",
			Email: AdminEmail,
			Type:  auth.AdminRole,
		}, adminPass)
	})
}

func (srv *Server) initializeRoutes(api *gin.RouterGroup) {
	a := srv.auth

	api.POST("/signUp", a.SignupHandler)
	api.POST("/signIn", a.SignInHandler)
	api.POST("/signOut", a.SignOutHandler)
	api.POST("/requestReset", a.ReqResetHandler)
	api.POST("/resetPassword/:token", a.ResetPasswordHandler)

	api.GET("/platforms", getPlatforms(srv))
	api.GET("/niches", getNiches(srv))

	// the discovery surface is public; it degrades to the fallback catalog
	// instead of erroring
	api.GET("/bounties", getBounties(srv))
	api.GET("/bounties/:id", getBounty(srv))
	api.GET("/bounties/:id/application", checkApplication(srv))

	companyOnly := a.CheckScopes(auth.ScopeMap{auth.CompanyRole: {Get: true, Put: true, Post: true, Delete: true}})
	creatorOnly := a.CheckScopes(auth.ScopeMap{auth.CreatorRole: {Get: true, Put: true, Post: true, Delete: true}})
	anyUser := a.CheckScopes(auth.ScopeMap{auth.AllRoles: {Get: true, Put: true, Post: true, Delete: true}})
	ownsBounty := a.CheckOwnership(auth.BountyItem, "id")

	api.POST("/bounties", a.VerifyUser, companyOnly, postBounty(srv))
	api.PUT("/bounties/:id", a.VerifyUser, companyOnly, ownsBounty, putBounty(srv))

	api.POST("/bounties/:id/apply", a.VerifyUser, creatorOnly, applyToBounty(srv))
	api.DELETE("/applications/:id", a.VerifyUser, creatorOnly, rescindApplication(srv))
	api.GET("/applications/mine", a.VerifyUser, creatorOnly, getMyApplications(srv))
	api.PUT("/applications/:id/status", a.VerifyUser, companyOnly, setApplicationStatus(srv))
	api.GET("/bounties/:id/applications", a.VerifyUser, companyOnly, ownsBounty, getApplicationsForBounty(srv))

	api.POST("/applications/:id/submission", a.VerifyUser, creatorOnly, createSubmission(srv))
	api.GET("/bounties/:id/submissions", a.VerifyUser, companyOnly, ownsBounty, getSubmissionsForBounty(srv))
	api.PUT("/submissions/:id/status", a.VerifyUser, companyOnly, setSubmissionStatus(srv))

	api.GET("/settings", a.VerifyUser, anyUser, getSettings(srv))
	api.PUT("/settings", a.VerifyUser, anyUser, putSettings(srv))
	api.PUT("/settings/email", a.VerifyUser, anyUser, putEmail(srv))
	api.PUT("/settings/password", a.VerifyUser, anyUser, putPassword(srv))
	api.POST("/profile/avatar", a.VerifyUser, anyUser, uploadAvatar(srv))
	api.POST("/profile/verify-social", a.VerifyUser, creatorOnly, verifySocial(srv))

	api.GET("/stats", a.VerifyUser, anyUser, getStats(srv))
}

func (srv *Server) Run() error {
	return srv.r.Run(srv.Cfg.Host + ":" + srv.Cfg.Port)
}

func (srv *Server) Close() error {
	return srv.db.Close()
}
