package entity

import "time"

// Product is a stock item owned by a single user. Identity within one owner's
// inventory is the business code PCode, not the name: a buy under an existing
// code updates that document in place, it never creates a second one.
type Product struct {
	PID     string    `firestore:"pid" json:"pid"`         // Document id.
	PName   string    `firestore:"pName" json:"pName"`     // Display name, last-writer-wins under the same code.
	PQty    int64     `firestore:"pQty" json:"pQty"`       // On-hand quantity, never negative.
	PExpire time.Time `firestore:"pExpire" json:"pExpire"` // Expiry date supplied at purchase.
	PCode   int64     `firestore:"pCode" json:"pCode"`     // Business code, unique per owner by query-before-insert.
	UID     string    `firestore:"uid" json:"uid"`         // Owning user.
}

// ProductDelta is a partial product update. Nil fields are left unchanged.
type ProductDelta struct {
	PName   *string
	PQty    *int64
	PExpire *time.Time
	PCode   *int64
}

// ApplyTo writes the set fields of the delta onto the product.
func (d *ProductDelta) ApplyTo(p *Product) {
	if d == nil || p == nil {
		return
	}
	if d.PName != nil {
		p.PName = *d.PName
	}
	if d.PQty != nil {
		p.PQty = *d.PQty
	}
	if d.PExpire != nil {
		p.PExpire = *d.PExpire
	}
	if d.PCode != nil {
		p.PCode = *d.PCode
	}
}
