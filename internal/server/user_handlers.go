package server

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sid2487/Instagram-Clone/internal/models"
	"github.com/sid2487/Instagram-Clone/internal/service"
	"github.com/sid2487/Instagram-Clone/internal/storage"
	"github.com/sid2487/Instagram-Clone/internal/validation"
)

// UpdateProfileRequest carries the editable profile fields. Absent
// fields leave the stored value untouched.
type UpdateProfileRequest struct {
	Username *string `json:"username"`
	Bio      *string `json:"bio"`
	Gender   *string `json:"gender"`
}

// GetMyProfile returns the requesting user's profile with recent posts
// and follow counts.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetProfile(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// GetUserProfile returns another user's profile by ID.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return models.RespondError(c, err)
	}

	following, err := s.socialService.IsFollowing(c.Context(), currentUserID(c), userID)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"user":      user,
		"following": following,
	})
}

// UpdateMyProfile updates the requesting user's profile. It accepts
// either a JSON body or a multipart form; the multipart form may carry
// an "avatar" image file.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)
	input := service.UpdateProfileInput{UserID: userID}

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid multipart form"))
		}
		if v, ok := formValue(form, "username"); ok {
			input.Username = &v
		}
		if v, ok := formValue(form, "bio"); ok {
			input.Bio = &v
		}
		if v, ok := formValue(form, "gender"); ok {
			input.Gender = &v
		}

		if headers := form.File["avatar"]; len(headers) > 0 {
			avatarURL, err := s.saveAvatar(headers[0])
			if err != nil {
				return models.RespondError(c, err)
			}
			input.Avatar = &avatarURL
		}
	} else {
		var req UpdateProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
		input.Username = req.Username
		input.Bio = req.Bio
		input.Gender = req.Gender
	}

	if input.Username != nil {
		if err := validation.ValidateUsername(strings.TrimSpace(*input.Username)); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
	}

	user, err := s.userService.UpdateProfile(c.Context(), input)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

func formValue(form *multipart.Form, field string) (string, bool) {
	values := form.Value[field]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (s *Server) saveAvatar(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > storage.MaxUploadSizeBytes {
		return "", models.NewValidationError("Avatar exceeds the upload size limit")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", models.NewValidationError("Could not read uploaded avatar")
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(io.LimitReader(file, storage.MaxUploadSizeBytes+1))
	if err != nil {
		return "", models.NewValidationError("Could not read uploaded avatar")
	}

	saved, err := s.media.SaveImage(storage.SaveImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		return "", err
	}
	return saved.URL, nil
}

// GetSuggestedUsers returns accounts the requesting user does not
// follow yet.
func (s *Server) GetSuggestedUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	users, err := s.userService.SuggestedUsers(c.Context(), currentUserID(c), limit)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetAllUsers returns a paginated listing of all accounts.
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	users, err := s.userService.ListUsers(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}
