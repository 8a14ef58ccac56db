package persistence

import (
	"time"

	"pronet/internal/domains/post"
	"pronet/internal/domains/user"
)

// SeedSnapshot returns the fixed demo dataset written on first run:
// two mutually connected members and two posts, one already liked.
// The demo credentials satisfy the password policy so they can be used
// to log in.
func SeedSnapshot(now time.Time) *Snapshot {
	return &Snapshot{
		Users: []user.User{
			{
				Username:  "joao_silva",
				Name:      "Joao Silva",
				Email:     "joao@example.com",
				Password:  "Demo123",
				Title:     "Software Developer",
				Bio:       "Passionate about programming",
				Followers: []string{"maria_santos"},
				Following: []string{"maria_santos"},
				CreatedAt: now,
			},
			{
				Username:  "maria_santos",
				Name:      "Maria Santos",
				Email:     "maria@example.com",
				Password:  "Demo123",
				Title:     "UX/UI Designer",
				Bio:       "Crafting great experiences",
				Followers: []string{"joao_silva"},
				Following: []string{"joao_silva"},
				CreatedAt: now,
			},
		},
		Connections: map[string][]string{
			"joao_silva":   {"maria_santos"},
			"maria_santos": {"joao_silva"},
		},
		// Newest first: maria's post was published after joao's.
		Posts: []post.Post{
			{
				ID:             2,
				AuthorUsername: "maria_santos",
				AuthorName:     "Maria Santos",
				Content:        "Loving this new professional network!",
				CreatedAt:      now,
				Likes:          []string{"joao_silva"},
				Comments:       []post.Comment{},
			},
			{
				ID:             1,
				AuthorUsername: "joao_silva",
				AuthorName:     "Joao Silva",
				Content:        "Welcome to ProNet!",
				CreatedAt:      now,
				Likes:          []string{},
				Comments:       []post.Comment{},
			},
		},
	}
}
