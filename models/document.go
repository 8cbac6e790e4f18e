package models

// Document is the aggregate root: the four collections persisted together
// as one JSON blob under a fixed storage key. All collections keep
// insertion order and there is no foreign-key enforcement between them.
type Document struct {
	Properties []Property      `json:"properties"`
	Interests  []BuyerInterest `json:"interests"`
	Matches    []LeadMatch     `json:"matches"`
	Users      []User          `json:"users"`
}
