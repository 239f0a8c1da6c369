package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	JoinDate       time.Time `json:"join_date"`
	TotalReviews   int       `json:"total_reviews"`
}
