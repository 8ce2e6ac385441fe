package domain

import "time"

type User struct {
	Id        UserId
	Username  Username
	Email     Email
	PassHash  string
	CreatedAt time.Time
}

type Credentials struct {
	Email    Email
	Password Password
}

type SignupData struct {
	Username Username
	Email    Email
	Password Password
}
