package domain

import "time"

// App is a tenant application. Its AccessKey authorizes text checks.
type App struct {
	ID        int64
	AppID     string
	Name      string
	AccessKey string
	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Channel is a distribution channel name lists can be scoped to.
type Channel struct {
	ID        int64
	Name      string
	Memo      string
	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
