package queuevalues

// Queue names for the ids accepted as a match list filter.
var QueueNames = map[int]string{
	400:  "NORMAL_DRAFT",
	420:  "RANKED_SOLO_5x5",
	430:  "NORMAL_BLIND",
	440:  "RANKED_FLEX_SR",
	450:  "ARAM",
	490:  "QUICKPLAY",
	700:  "CLASH",
	900:  "URF",
	1700: "ARENA",
}

// IsKnownQueue reports if the queue id can be used as a filter.
// Zero means no filter.
func IsKnownQueue(queueId int) bool {
	if queueId == 0 {
		return true
	}
	_, ok := QueueNames[queueId]
	return ok
}
