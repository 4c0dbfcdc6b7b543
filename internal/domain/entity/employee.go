package entity

import "time"

// Employee is a staff record belonging to one employer. Creation is
// two-phase: the id is allocated first, then the document is written under
// it, so a failed write leaves no record behind.
//
// Password is carried as an opaque string exactly as supplied. This module
// neither hashes nor interprets it.
type Employee struct {
	EID         string    `firestore:"eid" json:"eid"` // Document id, allocated before the write.
	FirstName   string    `firestore:"firstName" json:"firstName"`
	LastName    string    `firestore:"lastName" json:"lastName"`
	Email       string    `firestore:"email" json:"email"`
	EmployerID  string    `firestore:"employerId" json:"employerId"` // Owning user.
	Department  string    `firestore:"department" json:"department"`
	JoiningDate time.Time `firestore:"joiningDate" json:"joiningDate"`
	Password    string    `firestore:"password" json:"-"` // Opaque, stored as-is; never serialized outward.
}
