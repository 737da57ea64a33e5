package common

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/boltdb/bolt"

	"github.com/agorahq/agora/config"
	"github.com/agorahq/agora/misc"
)

const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("already applied to this bounty")
	ErrApplicationNotYours  = errors.New("application belongs to another creator")
	ErrApplicationNotPending = errors.New("only pending applications can be rescinded")
	ErrInvalidAppStatus     = errors.New("invalid application status")
)

// Application is a creator's request to fulfill a specific bounty. At most
// one exists per (bounty, creator) pair; CreateApplicationTx enforces that
// inside the caller's write transaction, which Bolt serializes, so the
// second of two racing applies always observes the first.
type Application struct {
	Id        string `json:"id"`
	BountyId  string `json:"bountyId"`
	CreatorId string `json:"creatorId"`

	Status string `json:"status"`

	Pitch         string `json:"pitch,omitempty"`
	ProposedRate  int64  `json:"proposedRate,omitempty"`
	PortfolioLink string `json:"portfolioLink,omitempty"`

	AppliedAt int64 `json:"appliedAt,omitempty"`
}

func GetApplicationTx(tx *bolt.Tx, cfg *config.Config, id string) *Application {
	var app Application
	if json.Unmarshal(tx.Bucket([]byte(cfg.Bucket.Application)).Get([]byte(id)), &app) != nil || app.Id == "" {
		return nil
	}
	return &app
}

func ForEachApplicationTx(tx *bolt.Tx, cfg *config.Config, fn func(*Application) error) error {
	return tx.Bucket([]byte(cfg.Bucket.Application)).ForEach(func(k, v []byte) error {
		var app Application
		if err := json.Unmarshal(v, &app); err != nil {
			log.Println("error when unmarshalling application", string(v))
			return nil
		}
		return fn(&app)
	})
}

// GetApplicationByPairTx returns the single application for the given
// (bounty, creator) pair, if any.
func GetApplicationByPairTx(tx *bolt.Tx, cfg *config.Config, bountyId, creatorId string) (found *Application) {
	ForEachApplicationTx(tx, cfg, func(app *Application) error {
		if app.BountyId == bountyId && app.CreatorId == creatorId {
			found = app
		}
		return nil
	})
	return
}

// CreateApplicationTx checks the pair uniqueness and persists the new row,
// assigning its id from the index bucket. Callers surface
// ErrDuplicateApplication as a conflict response.
func CreateApplicationTx(tx *bolt.Tx, cfg *config.Config, app *Application) (err error) {
	if dup := GetApplicationByPairTx(tx, cfg, app.BountyId, app.CreatorId); dup != nil {
		return ErrDuplicateApplication
	}
	if app.Id, err = misc.GetNextIndex(tx, cfg.Bucket.Application); err != nil {
		return
	}
	app.Status = ApplicationPending
	return misc.PutTxJson(tx, cfg.Bucket.Application, app.Id, app)
}

func SaveApplicationTx(tx *bolt.Tx, cfg *config.Config, app *Application) error {
	return misc.PutTxJson(tx, cfg.Bucket.Application, app.Id, app)
}

func DelApplicationTx(tx *bolt.Tx, cfg *config.Config, id string) error {
	return misc.DelBucketBytes(tx, cfg.Bucket.Application, id)
}
