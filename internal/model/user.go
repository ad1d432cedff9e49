package model

import "time"

// User represents a row of the `users` table.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name.
//  Email     – contact email address.
//  CreatedAt – timestamp of creation.
type User struct {
    ID        uint64    `json:"id"`         // users.id
    Name      string    `json:"name"`       // users.name
    Email     string    `json:"email"`      // users.email
    CreatedAt time.Time `json:"created_at"` // users.created_at
}
