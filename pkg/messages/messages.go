package messages

const (
	AnalysisInProgress   = "analysis already in progress"
	BadStatusCodeMsg     = "API returned status code %d on URL %s"
	EmptyRows            = "can't aggregate an empty match list"
	FailedToParseMsg     = "failed to parse API response"
	InvalidPageDirection = "direction must be next or prev"
	MatchRecordMissing   = "match record is missing"
	MissingApiKey        = "can't do a authenticated request without the API key"
	NoMatchesFound       = "no matches found"
	PleaseWait           = "please wait"
	PlayerNotFound       = "player not found"
	ProfileUnavailable   = "couldn't retrieve the summoner profile"
	ReferenceNotFound    = "rank reference not found"
	RequestFailedMsg     = "API request failed on URL %s"
	RetryIn              = "try again in %d seconds"
	SessionNotFound      = "analysis session not found or expired"
	UnknownRegion        = "the region %s doesn't exist"
)
