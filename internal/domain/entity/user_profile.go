// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// UserProfile is the account document owned by a business user. Besides the
// identity fields it carries three denormalized reference lists so the UI can
// render "my employees / products / transactions" without a secondary query.
// The lists are append-only from this module's perspective.
type UserProfile struct {
	UID          string   `firestore:"uid" json:"uid"`                       // Document id, assigned once at signup.
	Fullname     string   `firestore:"fullname" json:"fullname"`             // Display name, editable.
	Email        string   `firestore:"email" json:"email"`                   // Login identifier, not edited by this module.
	PfpURL       string   `firestore:"pfpURL" json:"pfpURL,omitempty"`       // Profile picture URL, optional.
	Employees    []string `firestore:"employees" json:"employees"`           // Employee document ids owned by this user.
	Products     []string `firestore:"products" json:"products"`             // Product document ids owned by this user.
	Transactions []string `firestore:"transactions" json:"transactions"`     // Transaction document ids owned by this user.
}

// Clone returns a deep copy so callers can mutate without aliasing the
// cached instance.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Employees = append([]string(nil), p.Employees...)
	clone.Products = append([]string(nil), p.Products...)
	clone.Transactions = append([]string(nil), p.Transactions...)

	return &clone
}

// ProfileDelta is a partial profile edit. Nil fields are "leave unchanged".
// It is the unit of the pending-write envelope: deltas merge field by field,
// last writer wins per field, never per envelope.
type ProfileDelta struct {
	Fullname *string `json:"fullname,omitempty"`
	PfpURL   *string `json:"pfpURL,omitempty"`
}

// IsZero reports whether the delta changes nothing.
func (d *ProfileDelta) IsZero() bool {
	return d == nil || (d.Fullname == nil && d.PfpURL == nil)
}

// ApplyTo writes the set fields of the delta onto the profile.
func (d *ProfileDelta) ApplyTo(p *UserProfile) {
	if d == nil || p == nil {
		return
	}
	if d.Fullname != nil {
		p.Fullname = *d.Fullname
	}
	if d.PfpURL != nil {
		p.PfpURL = *d.PfpURL
	}
}

// MergeFrom folds a newer delta into this one, field-level last-write-wins.
func (d *ProfileDelta) MergeFrom(newer *ProfileDelta) {
	if newer == nil {
		return
	}
	if newer.Fullname != nil {
		d.Fullname = newer.Fullname
	}
	if newer.PfpURL != nil {
		d.PfpURL = newer.PfpURL
	}
}

// Without returns a copy of the delta with the fields that applied also
// sets removed. Once a newer value for a field has landed remotely, the
// stashed value for that field is obsolete and must not be re-applied.
func (d *ProfileDelta) Without(applied *ProfileDelta) *ProfileDelta {
	if d == nil {
		return nil
	}
	remainder := *d
	if applied == nil {
		return &remainder
	}
	if applied.Fullname != nil {
		remainder.Fullname = nil
	}
	if applied.PfpURL != nil {
		remainder.PfpURL = nil
	}

	return &remainder
}

// ProfileRefs is a batch of reference-list appends destined for a profile's
// denormalized lists. Appends are set-unions: re-appending an id that is
// already present is a no-op.
type ProfileRefs struct {
	Employees    []string
	Products     []string
	Transactions []string
}

// IsZero reports whether the batch appends nothing.
func (r *ProfileRefs) IsZero() bool {
	return r == nil || (len(r.Employees) == 0 && len(r.Products) == 0 && len(r.Transactions) == 0)
}

// ApplyTo unions the batch into the profile's reference lists.
func (r *ProfileRefs) ApplyTo(p *UserProfile) {
	if r == nil || p == nil {
		return
	}
	p.Employees = unionAppend(p.Employees, r.Employees)
	p.Products = unionAppend(p.Products, r.Products)
	p.Transactions = unionAppend(p.Transactions, r.Transactions)
}

func unionAppend(existing, incoming []string) []string {
	if len(incoming) == 0 {
		return existing
	}
	seen := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		seen[id] = struct{}{}
	}
	for _, id := range incoming {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		existing = append(existing, id)
	}

	return existing
}
