package progress

// Record is the durable, per-topic serialization of a session's
// navigational and answer state. Records are written wholesale: a save
// replaces the topic's entire entry, never individual fields.
type Record struct {
	TopicID         string         `json:"topic"`
	CurrentIndex    int            `json:"currentIndex"`
	Answers         map[int]string `json:"answers"`
	MarkedForReview []int          `json:"markedForReview"`

	// TimeSpent is reserved for per-question duration tracking.
	// It is always written empty; the stopwatch stays ephemeral.
	TimeSpent map[int]int `json:"timeSpent"`
}

// NewRecord returns an empty record for a topic with initialized maps.
func NewRecord(topicID string) Record {
	return Record{
		TopicID:         topicID,
		Answers:         make(map[int]string),
		MarkedForReview: []int{},
		TimeSpent:       map[int]int{},
	}
}
