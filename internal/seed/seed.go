package seed

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/sid2487/Instagram-Clone/internal/models"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	DryRun      bool
	// SkipBcrypt stores plaintext passwords; only sensible in dev.
	SkipBcrypt bool
	// MaxDays spreads post timestamps over the given number of days.
	MaxDays int
}

// Seed populates the database with demo users, posts and a social mesh
// of follows, likes, comments, bookmarks and conversations.
func Seed(db *gorm.DB, opts Options) error {
	return SeedWithPreset(db, opts, DefaultPreset())
}

// SeedWithPreset seeds using an explicit content preset.
func SeedWithPreset(db *gorm.DB, opts Options, preset *Preset) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = preset.Users
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = preset.Posts
	}
	log.Printf("Seeding database with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("warning: could not clear all existing data, continuing anyway")
		}
	}

	factory := NewFactory(db, opts)

	users, err := createUsers(factory, opts.NumUsers, preset)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users", len(users))

	posts, err := createPosts(factory, users, opts.NumPosts, preset)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	if opts.DryRun {
		log.Println("dry run complete, skipping social mesh")
		return nil
	}

	if err := seedSocialMesh(factory, users, posts, preset); err != nil {
		return fmt.Errorf("failed to seed social mesh: %w", err)
	}

	log.Println("database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("clearing existing data...")
	sql := `TRUNCATE TABLE messages, conversations, bookmarks, likes, follows, comments, posts, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(factory *Factory, count int, preset *Preset) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	// Fixed accounts keep local logins predictable across re-seeds.
	for _, name := range preset.BaseUsers {
		if len(users) >= count {
			break
		}
		username := name
		user, err := factory.CreateUser(func(u *models.User) {
			u.Username = username
			u.Email = fmt.Sprintf("%s@example.com", username)
			u.Bio = "One of the originals."
			u.Avatar = fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username)
		})
		if err != nil {
			log.Printf("failed to create base user %s: %v", username, err)
			continue
		}
		users = append(users, user)
	}

	for i := len(users); i < count; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			log.Printf("failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("created %d users...", i)
		}
	}

	return users, nil
}

func createPosts(factory *Factory, users []*models.User, count int, preset *Preset) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		user := users[factory.rng.Intn(len(users))]
		post := factory.BuildPost(user, func(p *models.Post) {
			if caption, ok := preset.RandomCaption(factory.rng); ok {
				p.Caption = caption
			}
		})
		posts = append(posts, post)
	}

	// Chunked batch inserts keep large seeds fast.
	const chunk = 200
	for start := 0; start < len(posts); start += chunk {
		end := start + chunk
		if end > len(posts) {
			end = len(posts)
		}
		batch := posts[start:end]
		if err := factory.CreatePostsBatch(batch); err != nil {
			return nil, err
		}
	}

	return posts, nil
}

// seedSocialMesh wires users together: follows, likes, comments,
// bookmarks and a handful of conversations with messages.
func seedSocialMesh(factory *Factory, users []*models.User, posts []*models.Post, preset *Preset) error {
	rng := factory.rng

	for _, follower := range users {
		n := rng.Intn(preset.MaxFollowsPerUser + 1)
		for i := 0; i < n; i++ {
			followee := users[rng.Intn(len(users))]
			if followee.ID == follower.ID {
				continue
			}
			// Duplicate edges hit the unique index; ignore them.
			_ = factory.CreateFollow(follower, followee)
		}
	}

	for _, post := range posts {
		likes := rng.Intn(preset.MaxLikesPerPost + 1)
		for i := 0; i < likes; i++ {
			_ = factory.CreateLike(users[rng.Intn(len(users))], post)
		}

		comments := rng.Intn(preset.MaxCommentsPerPost + 1)
		for i := 0; i < comments; i++ {
			if _, err := factory.CreateComment(users[rng.Intn(len(users))], post); err != nil {
				return err
			}
		}

		if rng.Float32() < preset.BookmarkChance {
			_ = factory.CreateBookmark(users[rng.Intn(len(users))], post)
		}
	}

	// A conversation per adjacent user pair with a short exchange.
	for i := 0; i+1 < len(users) && i < preset.MaxConversations*2; i += 2 {
		a, b := users[i], users[i+1]
		conversation, err := factory.CreateConversation(a, b)
		if err != nil {
			return err
		}
		turns := rng.Intn(6) + 2
		for t := 0; t < turns; t++ {
			sender := a
			if t%2 == 1 {
				sender = b
			}
			if _, err := factory.CreateMessage(conversation, sender); err != nil {
				return err
			}
		}
	}

	return nil
}
