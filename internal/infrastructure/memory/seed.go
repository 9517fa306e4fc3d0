package memory

import (
	"time"

	"github.com/oksasatya/skatetube/internal/domain/entity"
)

// DemoUsers returns the accounts the store starts with. Only the admin has a
// password; adminHash must already be a bcrypt hash.
func DemoUsers(adminHash string) []entity.User {
	now := time.Now()
	return []entity.User{
		{
			ID:              "1",
			Username:        "admin",
			Email:           "admin@skatetube.com",
			Password:        adminHash,
			Bio:             "SkateTube Administrator - Passionate about skateboarding and building the ultimate video platform for extreme sports enthusiasts.",
			SubscriberCount: 1250,
			Role:            entity.RoleAdmin,
			CreatedAt:       time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:       now,
		},
		{
			ID:              "2",
			Username:        "skater_pro",
			Email:           "pro@skatetube.com",
			Bio:             "Professional skateboarder from California. Sharing tricks, tutorials, and street skating adventures. Follow for daily skateboarding content!",
			SubscriberCount: 5420,
			Role:            entity.RoleUser,
			CreatedAt:       time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:       now,
		},
	}
}
