package common

import (
	"encoding/json"
	"log"
	"time"

	"github.com/boltdb/bolt"

	"github.com/agorahq/agora/config"
	"github.com/agorahq/agora/misc"
)

// Payments are static records only. No gateway exists; nothing is ever
// charged or transferred.
const PaymentRecorded = "recorded"

type Payment struct {
	Id        string `json:"id"`
	BountyId  string `json:"bountyId"`
	CreatorId string `json:"creatorId"`

	Amount int64  `json:"amount"`
	Status string `json:"status"`

	CreatedAt int64 `json:"createdAt,omitempty"`
}

// RecordPaymentTx writes the static payment row created when a company
// approves a submission.
func RecordPaymentTx(tx *bolt.Tx, cfg *config.Config, bountyId, creatorId string, amount int64) (p *Payment, err error) {
	p = &Payment{
		BountyId:  bountyId,
		CreatorId: creatorId,
		Amount:    amount,
		Status:    PaymentRecorded,
		CreatedAt: time.Now().UnixNano(),
	}
	if p.Id, err = misc.GetNextIndex(tx, cfg.Bucket.Payment); err != nil {
		return
	}
	return p, misc.PutTxJson(tx, cfg.Bucket.Payment, p.Id, p)
}

func ForEachPaymentTx(tx *bolt.Tx, cfg *config.Config, fn func(*Payment) error) error {
	return tx.Bucket([]byte(cfg.Bucket.Payment)).ForEach(func(k, v []byte) error {
		var p Payment
		if err := json.Unmarshal(v, &p); err != nil {
			log.Println("error when unmarshalling payment", string(v))
			return nil
		}
		return fn(&p)
	})
}
