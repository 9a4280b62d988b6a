package models

import "time"

// CommitPerson is the author or committer of a commit
type CommitPerson struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}

// Commit is a commit summary as returned by the commit-history API
type Commit struct {
	ID           string       `json:"id"`
	Author       CommitPerson `json:"author"`
	Committer    CommitPerson `json:"committer"`
	Message      string       `json:"message"`
	URL          string       `json:"url"`
	CommentCount int          `json:"comment_count"`
	AvatarURL    string       `json:"avatar_url"`
}

// CommitQuery identifies the repository whose history is requested
type CommitQuery struct {
	Username string `json:"username" form:"username" url:"username"`
	Repo     string `json:"repo" form:"repo" url:"repo"`
}
