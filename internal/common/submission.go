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
	SubmissionSubmitted = "submitted"
	SubmissionApproved  = "approved"
	SubmissionRejected  = "rejected"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrNotAccepted        = errors.New("application has not been accepted")
	ErrResubmission       = errors.New("this bounty does not allow resubmission")
	ErrInvalidContentURL  = errors.New("invalid or missing content url")
)

// Submission is a creator's delivered content for an accepted application.
type Submission struct {
	Id            string `json:"id"`
	ApplicationId string `json:"applicationId"`
	BountyId      string `json:"bountyId"`
	CreatorId     string `json:"creatorId"`

	ContentURL string `json:"contentUrl"`
	Note       string `json:"note,omitempty"`

	Status string `json:"status"`

	SubmittedAt int64 `json:"submittedAt,omitempty"`
}

func GetSubmissionTx(tx *bolt.Tx, cfg *config.Config, id string) *Submission {
	var sub Submission
	if json.Unmarshal(tx.Bucket([]byte(cfg.Bucket.Submission)).Get([]byte(id)), &sub) != nil || sub.Id == "" {
		return nil
	}
	return &sub
}

func ForEachSubmissionTx(tx *bolt.Tx, cfg *config.Config, fn func(*Submission) error) error {
	return tx.Bucket([]byte(cfg.Bucket.Submission)).ForEach(func(k, v []byte) error {
		var sub Submission
		if err := json.Unmarshal(v, &sub); err != nil {
			log.Println("error when unmarshalling submission", string(v))
			return nil
		}
		return fn(&sub)
	})
}

// CreateSubmissionTx persists a new submission after checking the bounty's
// resubmission policy: a second submission is only allowed when the bounty
// allows it or the previous one was rejected.
func CreateSubmissionTx(tx *bolt.Tx, cfg *config.Config, b *Bounty, sub *Submission) (err error) {
	var prior *Submission
	ForEachSubmissionTx(tx, cfg, func(s *Submission) error {
		if s.ApplicationId == sub.ApplicationId {
			prior = s
		}
		return nil
	})
	if prior != nil && prior.Status != SubmissionRejected && !b.AllowResubmission {
		return ErrResubmission
	}
	if sub.Id, err = misc.GetNextIndex(tx, cfg.Bucket.Submission); err != nil {
		return
	}
	sub.Status = SubmissionSubmitted
	return misc.PutTxJson(tx, cfg.Bucket.Submission, sub.Id, sub)
}

func SaveSubmissionTx(tx *bolt.Tx, cfg *config.Config, sub *Submission) error {
	return misc.PutTxJson(tx, cfg.Bucket.Submission, sub.Id, sub)
}
