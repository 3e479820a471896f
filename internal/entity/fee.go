package entity

// TotalBps is the basis point scale. 10000 = 100%.
const TotalBps uint32 = 10000

// Fee is the immutable payment split for a token, recorded once when the
// collectible is created and never overwritten.
type Fee struct {
	CommissionBps uint32    `json:"commissionBps"`
	RoyaltyBps    uint32    `json:"royaltyBps"`
	Creators      []Address `json:"creators"`
	CreatorShares []uint32  `json:"creatorShares"`
}

// HasCreator reports whether addr is one of the fee's creators.
func (f Fee) HasCreator(addr Address) bool {
	for _, creator := range f.Creators {
		if creator.Equals(addr) {
			return true
		}
	}

	return false
}
