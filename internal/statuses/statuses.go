package statuses

// Match lifecycle states as stored and served.
const (
	StatusActive   = "active"
	StatusFinished = "finished"
)
