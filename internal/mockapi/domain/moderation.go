package domain

import "time"

const (
	RiskPass   = "PASS"
	RiskReject = "REJECT"
	RiskReview = "REVIEW"
)

// RiskLog is a recorded hit of a sensitive list.
type RiskLog struct {
	ID             string
	AppID          string
	ChannelID      string
	RiskType       int
	MatchRule      int
	HitText        string
	Suggestion     string
	ContentPreview string
	CreatedAt      time.Time
}

// RiskLogFilter narrows a risk log listing. Zero values match everything.
type RiskLogFilter struct {
	AppID    string
	RiskType int
}

// Submission is the part of a text check the engine looks at.
type Submission struct {
	AppID     string
	Channel   string
	Text      string
	Nickname  string
	IP        string
	AccountID string
	Language  string
}

// Verdict is the outcome of a text check.
type Verdict struct {
	RequestID string
	RiskLevel string
	Detail    string
	Score     int
	HitList   string
	HitText   string
	RiskType  int
}
