package models

// Snapshot is the full persisted state: every user with their history, the
// offer catalog with its id counter, and the open reconciliation queue. It is
// stored as a single JSON document and always written as a whole.
type Snapshot struct {
	Users           []User           `json:"users"`
	Offers          []Offer          `json:"offers"`
	NextOfferID     int64            `json:"next_offer_id"`
	Reconciliations []Reconciliation `json:"reconciliations,omitempty"`
}

// Clone returns a deep copy, so callers can hand snapshots out without
// exposing the store's internal state to mutation.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{NextOfferID: s.NextOfferID}
	if s.Users != nil {
		out.Users = make([]User, len(s.Users))
		for i, u := range s.Users {
			out.Users[i] = u.Clone()
		}
	}
	if s.Offers != nil {
		out.Offers = make([]Offer, len(s.Offers))
		copy(out.Offers, s.Offers)
	}
	if s.Reconciliations != nil {
		out.Reconciliations = make([]Reconciliation, len(s.Reconciliations))
		copy(out.Reconciliations, s.Reconciliations)
	}
	return out
}

// FindUser returns a pointer into the snapshot's user slice, or nil.
func (s *Snapshot) FindUser(id int64) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// FindOffer returns a pointer into the snapshot's offer slice, or nil.
func (s *Snapshot) FindOffer(id int64) *Offer {
	for i := range s.Offers {
		if s.Offers[i].ID == id {
			return &s.Offers[i]
		}
	}
	return nil
}
