package story

import (
	"strconv"

	"unique-travel/logger"
	"unique-travel/middleware"
	storyModel "unique-travel/models/story"
	"unique-travel/types"
	storyTypes "unique-travel/types/story"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StoryController handles tourist-story requests
type StoryController struct {
	DB *gorm.DB
}

func NewStoryController(db *gorm.DB) *StoryController {
	return &StoryController{DB: db}
}

// Featured handles GET /stories: a random sample of 4 for the home page.
func (sc *StoryController) Featured(c *fiber.Ctx) error {
	var stories []storyModel.Story
	if err := sc.DB.Order("RANDOM()").Limit(4).Find(&stories).Error; err != nil {
		logger.Error("Failed to sample stories", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(stories)
}

// Index handles GET /allStories
func (sc *StoryController) Index(c *fiber.Ctx) error {
	var stories []storyModel.Story
	if err := sc.DB.Find(&stories).Error; err != nil {
		logger.Error("Failed to list stories", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(stories)
}

// ByAuthor handles GET /stories/:email
func (sc *StoryController) ByAuthor(c *fiber.Ctx) error {
	var stories []storyModel.Story
	if err := sc.DB.Where("author_email = ?", c.Params("email")).Find(&stories).Error; err != nil {
		logger.Error("Failed to list author stories", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(stories)
}

// Show handles GET /story/:id
func (sc *StoryController) Show(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid story id",
		})
	}

	var s storyModel.Story
	if err := sc.DB.First(&s, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Story not found",
			})
		}
		logger.Error("Failed to find story", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(s)
}

// Store handles POST /addStory
func (sc *StoryController) Store(c *fiber.Ctx) error {
	var req storyTypes.StoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	s := storyModel.Story{
		AuthorEmail: middleware.ClaimsEmail(c),
		AuthorName:  req.Name,
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Photos:      storyModel.StringSlice(req.Photos),
	}
	if err := sc.DB.Create(&s).Error; err != nil {
		logger.Error("Failed to create story", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save story",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Story created successfully",
		Data:    s,
	})
}

// Update handles PUT /update-story/:id: set title/excerpt, drop removed
// photos, append new ones. Responds 400 when no field actually changed.
func (sc *StoryController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Story ID is required",
		})
	}

	var req storyTypes.StoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var s storyModel.Story
	if err := sc.DB.First(&s, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Story not found",
			})
		}
		logger.Error("Failed to find story", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update story",
		})
	}

	updates := map[string]interface{}{}
	if req.Title != "" && req.Title != s.Title {
		updates["title"] = req.Title
	}
	if req.Excerpt != "" && req.Excerpt != s.Excerpt {
		updates["excerpt"] = req.Excerpt
	}

	if len(req.RemovedPhotos) > 0 || len(req.NewPhotos) > 0 {
		merged := MergePhotos(s.Photos, req.RemovedPhotos, req.NewPhotos)
		if !equalPhotos(s.Photos, merged) {
			updates["photos"] = storyModel.StringSlice(merged)
		}
	}

	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "No changes were made to the story",
		})
	}

	if err := sc.DB.Model(&s).Updates(updates).Error; err != nil {
		logger.Error("Failed to update story", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update story",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Story updated successfully",
	})
}

// Destroy handles DELETE /story/:id
func (sc *StoryController) Destroy(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid story id",
		})
	}

	result := sc.DB.Delete(&storyModel.Story{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete story", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete story",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Story not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Story deleted successfully",
	})
}

// MergePhotos applies a removal set and an addition list to an existing
// gallery: (existing − removed) ∪ new, preserving order and skipping
// duplicates of already-present photos.
func MergePhotos(existing, removed, added []string) []string {
	removeSet := make(map[string]bool, len(removed))
	for _, r := range removed {
		removeSet[r] = true
	}

	merged := make([]string, 0, len(existing)+len(added))
	seen := make(map[string]bool, len(existing)+len(added))
	for _, p := range existing {
		if removeSet[p] || seen[p] {
			continue
		}
		merged = append(merged, p)
		seen[p] = true
	}
	for _, p := range added {
		if removeSet[p] || seen[p] {
			continue
		}
		merged = append(merged, p)
		seen[p] = true
	}
	return merged
}

func equalPhotos(a storyModel.StringSlice, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
