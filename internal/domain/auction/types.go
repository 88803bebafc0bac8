package auction

type Status string

const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
	StatusSold   Status = "sold"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusEnded, StatusSold:
		return true
	default:
		return false
	}
}

// IsClosed reports whether the stored status forbids further bids. Note the
// stored status never flips on its own when the time window elapses; expiry
// is derived from the start time and duration at read time.
func (s Status) IsClosed() bool {
	return s == StatusEnded || s == StatusSold
}
