package server

import (
	"encoding/json"

	"github.com/boltdb/bolt"

	"github.com/agorahq/agora/internal/common"
	"github.com/agorahq/agora/misc"
)

func saveBounty(s *Server, tx *bolt.Tx, b *common.Bounty) error {
	if b == nil || b.Id == "" {
		return common.ErrInvalidId
	}
	v, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return misc.PutBucketBytes(tx, s.Cfg.Bucket.Bounty, b.Id, v)
}
