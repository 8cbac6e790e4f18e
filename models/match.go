package models

// MatchStatus tracks a lead through its lifecycle: PENDING on creation,
// then CONTACTED and CLOSED as staff work it.
type MatchStatus string

const (
	MatchPending   MatchStatus = "PENDING"
	MatchContacted MatchStatus = "CONTACTED"
	MatchClosed    MatchStatus = "CLOSED"
)

// Valid reports whether s is a known lifecycle state.
func (s MatchStatus) Valid() bool {
	switch s {
	case MatchPending, MatchContacted, MatchClosed:
		return true
	}
	return false
}

// LeadMatch records a buyer's expressed interest in one specific property.
// PropertyID is a reference, not ownership: the listing may be removed
// later, orphaning the match. Only the status field is mutable.
type LeadMatch struct {
	ID           string      `json:"id"`
	PropertyID   string      `json:"propertyId"`
	BuyerID      string      `json:"buyerId"`
	BuyerName    string      `json:"buyerName"`
	BuyerContact string      `json:"buyerContact"`
	Status       MatchStatus `json:"status"`
	CreatedAt    int64       `json:"createdAt"`
}
