package entity

// ListingStatus is the outcome of the page's single doctor fetch.
type ListingStatus int

const (
	ListingPending ListingStatus = iota
	ListingReady
	ListingFailed
)

func (s ListingStatus) String() string {
	switch s {
	case ListingReady:
		return "ready"
	case ListingFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Listing is the loaded directory. The zero value is pending.
type Listing struct {
	Status      ListingStatus
	Doctors     []Doctor
	Specialties []string
	Err         error
}

func ReadyListing(doctors []Doctor, specialties []string) Listing {
	return Listing{Status: ListingReady, Doctors: doctors, Specialties: specialties}
}

func FailedListing(err error) Listing {
	return Listing{Status: ListingFailed, Err: err}
}
