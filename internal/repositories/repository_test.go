package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"sitecms_backend/internal/models"
	"sitecms_backend/internal/repositories"
	"sitecms_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newService(number, slug string) *models.Service {
	return &models.Service{
		Number:      number,
		Slug:        slug,
		Title:       "Service " + number,
		Description: "Description " + number,
		Benefits:    datatypes.JSONSlice[string]{"fast", "clean"},
	}
}

func newPost(slug, title, excerpt string, day int) *models.BlogPost {
	return &models.BlogPost{
		Slug:     slug,
		Title:    title,
		Category: "guides",
		Date:     time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC),
		Excerpt:  excerpt,
		Content:  "content",
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewServiceRepository()

	created, err := repo.Create(db, newService("01", "kitchens"))
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	got, err := repo.Get(db, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "kitchens", got.Slug)
	assert.Equal(t, "Service 01", got.Title)
	assert.Equal(t, []string{"fast", "clean"}, []string(got.Benefits))
	assert.Nil(t, got.Image)

	bySlug, err := repo.GetBySlug(db, "kitchens")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, created.ID, bySlug.ID)

	byNumber, err := repo.GetByNumber(db, "01")
	require.NoError(t, err)
	require.NotNil(t, byNumber)
	assert.Equal(t, created.ID, byNumber.ID)
}

func TestRepository_MissingIsAbsentNotError(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewServiceRepository()

	got, err := repo.Get(db, 999)
	assert.NoError(t, err)
	assert.Nil(t, got)

	bySlug, err := repo.GetBySlug(db, "nope")
	assert.NoError(t, err)
	assert.Nil(t, bySlug)

	updated, err := repo.Update(db, 999, repositories.Patch{"title": "x"})
	assert.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := repo.Delete(db, 999)
	assert.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestRepository_UpdateIsSparse(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewServiceRepository()

	created, err := repo.Create(db, newService("01", "roofing"))
	require.NoError(t, err)

	var noImage *string
	updated, err := repo.Update(db, created.ID, repositories.Patch{
		"title": "Roofing",
		"image": noImage,
		"id":    uint(42),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Roofing", updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Slug, updated.Slug)
	assert.Nil(t, updated.Image)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	t.Run("list values convert to json columns", func(t *testing.T) {
		updated, err := repo.Update(db, created.ID, repositories.Patch{"benefits": []string{"durable"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"durable"}, []string(updated.Benefits))
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		_, err := repo.Update(db, created.ID, repositories.Patch{"colour": "red"})
		assert.ErrorIs(t, err, repositories.ErrUnknownField)
	})
}

func TestRepository_DeleteReturnsSnapshot(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewServiceRepository()

	created, err := repo.Create(db, newService("01", "windows"))
	require.NoError(t, err)

	deleted, err := repo.Delete(db, created.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "windows", deleted.Slug)

	got, err := repo.Get(db, created.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepository_DuplicateSlugIsRejectedByIndex(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewServiceRepository()

	_, err := repo.Create(db, newService("01", "same"))
	require.NoError(t, err)

	_, err = repo.Create(db, newService("02", "same"))
	assert.Error(t, err)
}

func TestRepository_ListPaginates(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewServiceRepository()

	for i := 150; i >= 1; i-- {
		_, err := repo.Create(db, newService(fmt.Sprintf("%03d", i), fmt.Sprintf("s-%d", i)))
		require.NoError(t, err)
	}

	first, err := repo.List(db, 0, 100)
	require.NoError(t, err)
	assert.Len(t, first, 100)
	assert.Equal(t, "001", first[0].Number)
	assert.Equal(t, "100", first[99].Number)

	second, err := repo.List(db, 100, 100)
	require.NoError(t, err)
	assert.Len(t, second, 50)
	assert.Equal(t, "101", second[0].Number)

	empty, err := repo.List(db, 200, 100)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestBlogRepository_SearchFoldsNonASCII(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewBlogRepository()

	_, err := repo.Create(db, newPost("a", "RÉNOVATION COMPLÈTE", "Cuisine", 1))
	require.NoError(t, err)
	_, err = repo.Create(db, newPost("b", "Peinture", "Couleurs", 2))
	require.NoError(t, err)

	for _, q := range []string{"rénov", "RÉNOV", "complète"} {
		found, err := repo.Search(db, q)
		require.NoError(t, err, q)
		require.Len(t, found, 1, q)
		assert.Equal(t, "a", found[0].Slug)
	}
}

func TestBlogRepository_SearchAndCategory(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewBlogRepository()

	for _, p := range []*models.BlogPost{
		newPost("a", "Renovation on a budget", "Tips", 1),
		newPost("b", "Garden design", "A full RENOVATION of the yard", 2),
		newPost("c", "Paint colours", "Choosing a palette", 3),
	} {
		_, err := repo.Create(db, p)
		require.NoError(t, err)
	}

	found, err := repo.Search(db, "renov")
	require.NoError(t, err)
	require.Len(t, found, 2)
	// newest first
	assert.Equal(t, "b", found[0].Slug)
	assert.Equal(t, "a", found[1].Slug)

	none, err := repo.Search(db, "%")
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := repo.List(db, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Slug)

	guides, err := repo.GetByCategory(db, "guides")
	require.NoError(t, err)
	assert.Len(t, guides, 3)

	other, err := repo.GetByCategory(db, "news")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestTestimonialRepository_ReorderKeepsDuplicates(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewTestimonialRepository()

	var ids []uint
	for i := 0; i < 3; i++ {
		created, err := repo.Create(db, &models.Testimonial{
			Name: fmt.Sprintf("Client %d", i), Location: "Lyon", Text: "Great",
			Rating: 5, OrderIndex: i, IsActive: true,
		})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	moved, err := repo.Reorder(db, ids[2], 0)
	require.NoError(t, err)
	require.NotNil(t, moved)
	assert.Equal(t, 0, moved.OrderIndex)

	all, err := repo.List(db, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint{ids[0], ids[2], ids[1]}, []uint{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, 1, all[2].OrderIndex)

	missing, err := repo.Reorder(db, 999, 1)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTestimonialRepository_ToggleAndFeatured(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewTestimonialRepository()

	var ids []uint
	for i := 0; i < 5; i++ {
		created, err := repo.Create(db, &models.Testimonial{
			Name: fmt.Sprintf("Client %d", i), Location: "Paris", Text: "Good",
			Rating: 4, OrderIndex: i, IsActive: true, IsFeatured: true,
		})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	t.Run("toggle twice restores the flag", func(t *testing.T) {
		once, err := repo.ToggleActive(db, ids[0])
		require.NoError(t, err)
		assert.False(t, once.IsActive)

		twice, err := repo.ToggleActive(db, ids[0])
		require.NoError(t, err)
		assert.True(t, twice.IsActive)
	})

	t.Run("featured excludes inactive and honours the default limit", func(t *testing.T) {
		_, err := repo.ToggleActive(db, ids[0])
		require.NoError(t, err)

		featured, err := repo.GetFeatured(db, 0)
		require.NoError(t, err)
		require.Len(t, featured, repositories.DefaultFeaturedLimit)
		assert.Equal(t, ids[1], featured[0].ID)

		active, err := repo.GetActive(db)
		require.NoError(t, err)
		assert.Len(t, active, 4)
	})

	t.Run("toggle missing is absent", func(t *testing.T) {
		got, err := repo.ToggleFeatured(db, 999)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestContactRepository_ReadState(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewContactRepository()

	first, err := repo.Create(db, &models.ContactSubmission{Name: "A", Email: "a@example.com", Message: "hi"})
	require.NoError(t, err)
	_, err = repo.Create(db, &models.ContactSubmission{Name: "B", Email: "b@example.com", Message: "hello"})
	require.NoError(t, err)

	read, err := repo.SetRead(db, first.ID, true)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	unread, err := repo.GetUnread(db)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "B", unread[0].Name)

	again, err := repo.SetRead(db, first.ID, false)
	require.NoError(t, err)
	assert.False(t, again.IsRead)
}

func TestSocialMediaRepository_ByPlatform(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewSocialMediaRepository()

	_, err := repo.Create(db, &models.SocialMediaLink{Platform: "instagram", URL: "https://instagram.com/x", IsActive: true})
	require.NoError(t, err)

	link, err := repo.GetByPlatform(db, "instagram")
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, "https://instagram.com/x", link.URL)

	none, err := repo.GetByPlatform(db, "tiktok")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = repo.GetFeatured(db, 3)
	assert.ErrorIs(t, err, repositories.ErrUnsupported)
}
