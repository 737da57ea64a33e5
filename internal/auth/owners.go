package auth

import (
	"github.com/boltdb/bolt"
	"github.com/agorahq/agora/misc"
)

type ItemType string

// update this as we add new item types
const (
	BountyItem ItemType = "bounty"
)

func (a *Auth) SetOwnerTx(tx *bolt.Tx, itemType ItemType, itemID, userID string) error {
	b := misc.GetBucket(tx, a.cfg.Bucket.Ownership)
	return b.Put(getOwnersKey(itemType, itemID), []byte(userID))
}

func (a *Auth) IsOwnerTx(tx *bolt.Tx, itemType ItemType, itemID, userID string) bool {
	return a.GetOwnerTx(tx, itemType, itemID) == userID
}

func (a *Auth) GetOwnerTx(tx *bolt.Tx, itemType ItemType, itemID string) string {
	b := misc.GetBucket(tx, a.cfg.Bucket.Ownership)
	return string(b.Get(getOwnersKey(itemType, itemID)))
}

func (a *Auth) DelOwnedItem(tx *bolt.Tx, itemType ItemType, itemID string) error {
	b := misc.GetBucket(tx, a.cfg.Bucket.Ownership)
	return b.Delete(getOwnersKey(itemType, itemID))
}
