package repository

import (
	"github.com/userdir/userdir/internal/model"
)

var seedRows = []struct {
	id, name, email, createdAt string
}{
	{"1", "João", "joao@email.com", "2024-01-01T10:00:00"},
	{"2", "Maria", "maria@email.com", "2024-01-02T11:30:00"},
	{"3", "Pedro", "pedro@email.com", "2024-01-03T14:15:00"},
}

// SeedUsers returns the users present at process start.
func SeedUsers() []model.User {
	users := make([]model.User, 0, len(seedRows))
	for _, row := range seedRows {
		createdAt, err := model.ParseTimestamp(row.createdAt)
		if err != nil {
			panic(err)
		}
		users = append(users, model.User{
			ID:        row.id,
			Name:      row.name,
			Email:     row.email,
			CreatedAt: createdAt,
		})
	}
	return users
}
