package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sid2487/Instagram-Clone/internal/config"
	"github.com/sid2487/Instagram-Clone/internal/middleware"
	"github.com/sid2487/Instagram-Clone/internal/models"
	"github.com/sid2487/Instagram-Clone/internal/notifications"
	"github.com/sid2487/Instagram-Clone/internal/repository"
	"github.com/sid2487/Instagram-Clone/internal/service"
	"github.com/sid2487/Instagram-Clone/internal/storage"
)

// newTestServer builds a Server on an in-memory sqlite DB with no Redis
// and wires its routes into a fresh Fiber app. The Prometheus route
// middleware is left off so repeated test servers do not re-register
// collectors.
func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:    "test-secret-key-for-handlers-0123456789",
		Port:         "0",
		Env:          "test",
		MediaDir:     t.TempDir(),
		MediaBaseURL: "/media",
	}
	middleware.InitMiddleware(cfg)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Bookmark{},
		&models.Follow{},
		&models.Conversation{},
		&models.Message{},
	))

	blobs, err := storage.NewLocalBlobStore(cfg.MediaDir)
	require.NoError(t, err)

	s := &Server{
		config:      cfg,
		db:          db,
		userRepo:    repository.NewUserRepository(db),
		postRepo:    repository.NewPostRepository(db),
		commentRepo: repository.NewCommentRepository(db),
		socialRepo:  repository.NewSocialRepository(db),
		chatRepo:    repository.NewChatRepository(db),
		media:       storage.NewMediaStore(blobs, cfg.MediaBaseURL),
		notifier:    notifications.NewNotifier(nil),
		hub:         notifications.NewHub(),
	}
	s.postService = service.NewPostService(s.postRepo, s.userRepo)
	s.commentService = service.NewCommentService(s.commentRepo, s.postRepo)
	s.socialService = service.NewSocialService(s.socialRepo, s.userRepo)
	s.messageService = service.NewMessageService(s.chatRepo, s.userRepo)
	s.userService = service.NewUserService(s.userRepo, s.socialRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.SetupRoutes(app)

	return s, app, db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("SecurePass12!@"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: string(hashed),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, userID uint, caption string) *models.Post {
	t.Helper()

	post := &models.Post{
		Caption:  caption,
		ImageURL: "/media/test.jpg",
		UserID:   userID,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func authHeader(t *testing.T, s *Server, user *models.User) string {
	t.Helper()

	token, err := s.generateToken(user.ID, user.Username)
	require.NoError(t, err)
	return "Bearer " + token
}

func itoa(id uint) string {
	return fmt.Sprintf("%d", id)
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}
