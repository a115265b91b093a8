package account

import "time"

type AccountDB struct {
	ID           int64
	Handle       string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AccountModifyDB struct {
	ID           *int64
	Handle       *string
	Email        *string
	PasswordHash *string
	Role         *string
}
