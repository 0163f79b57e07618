package dto

import "time"

type EnterInput struct {
	Name string
}

type UserOutput struct {
	Name      string
	Email     string
	CreatedAt time.Time
}

type EnterOutput struct {
	User    UserOutput
	Entered bool
}
