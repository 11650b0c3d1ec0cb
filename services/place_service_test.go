package services

import (
	"errors"
	"testing"

	"github.com/IsMarshev/we-site/dto"
	"github.com/IsMarshev/we-site/models"
)

func TestCreatePlaceAttribution(t *testing.T) {
	db := newTestDB(t)
	service := &PlaceService{DB: db}
	user := createTestUser(t, db, "author", models.RoleUser)

	place, err := service.CreatePlace(user, dto.CreatePlaceDTO{
		Name:        "Lion's Head",
		Description: "Hiking trail with panoramic views.",
		Latitude:    -33.9350,
		Longitude:   18.3890,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if place.CreatedBy == nil || *place.CreatedBy != user.ID {
		t.Fatalf("created_by = %v, want %d", place.CreatedBy, user.ID)
	}
}

func TestPartialUpdateLeavesOtherFields(t *testing.T) {
	db := newTestDB(t)
	service := &PlaceService{DB: db}
	owner := createTestUser(t, db, "owner", models.RoleUser)
	place := createTestPlace(t, db, "Old Name", &owner.ID)

	name := "New Name"
	updated, err := service.UpdatePlace(owner, place.ID, dto.UpdatePlaceDTO{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Name != "New Name" {
		t.Fatalf("name = %q", updated.Name)
	}
	// Непереданные поля не затираются
	if updated.Description != place.Description ||
		updated.Latitude != place.Latitude ||
		updated.Longitude != place.Longitude {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestOwnerOrAdminRule(t *testing.T) {
	db := newTestDB(t)
	service := &PlaceService{DB: db}
	owner := createTestUser(t, db, "owner", models.RoleUser)
	stranger := createTestUser(t, db, "stranger", models.RoleUser)
	admin := createTestUser(t, db, "root", models.RoleAdmin)
	place := createTestPlace(t, db, "Kirstenbosch", &owner.ID)

	name := "Renamed"
	if _, err := service.UpdatePlace(stranger, place.ID, dto.UpdatePlaceDTO{Name: &name}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger must be forbidden, got %v", err)
	}
	if _, err := service.UpdatePlace(owner, place.ID, dto.UpdatePlaceDTO{Name: &name}); err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if _, err := service.UpdatePlace(admin, place.ID, dto.UpdatePlaceDTO{Name: &name}); err != nil {
		t.Fatalf("admin update: %v", err)
	}
}

func TestSeededPlaceMutableByAdminOnly(t *testing.T) {
	db := newTestDB(t)
	service := &PlaceService{DB: db}
	user := createTestUser(t, db, "user", models.RoleUser)
	admin := createTestUser(t, db, "root", models.RoleAdmin)
	seeded := createTestPlace(t, db, "Seeded", nil)

	// created_by = NULL нельзя присвоить совпадением владельца
	if err := service.DeletePlace(user, seeded.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("regular user must not delete seeded place, got %v", err)
	}
	if err := service.DeletePlace(admin, seeded.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
}

func TestDeletePlaceCascadesComments(t *testing.T) {
	db := newTestDB(t)
	placeService := &PlaceService{DB: db}
	commentService := &CommentService{DB: db}
	owner := createTestUser(t, db, "owner", models.RoleUser)
	place := createTestPlace(t, db, "Muizenberg", &owner.ID)

	for i := 0; i < 3; i++ {
		if _, err := commentService.CreateComment(place.ID, dto.CreateCommentDTO{
			Author:  "guest",
			Content: "nice place",
		}); err != nil {
			t.Fatalf("create comment: %v", err)
		}
	}

	if err := placeService.DeletePlace(owner, place.ID); err != nil {
		t.Fatalf("delete place: %v", err)
	}

	var comments int64
	if err := db.Model(&models.Comment{}).Where("place_id = ?", place.ID).Count(&comments).Error; err != nil {
		t.Fatalf("count comments: %v", err)
	}
	if comments != 0 {
		t.Fatalf("comments must be cascade-deleted, %d left", comments)
	}
	if _, err := commentService.ListByPlace(place.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("comments of deleted place must be gone, got %v", err)
	}
}

func TestListPlacesOrder(t *testing.T) {
	db := newTestDB(t)
	service := &PlaceService{DB: db}
	createTestPlace(t, db, "First", nil)
	createTestPlace(t, db, "Second", nil)
	createTestPlace(t, db, "Third", nil)

	places, err := service.ListPlaces()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(places) != 3 {
		t.Fatalf("len = %d", len(places))
	}
	for i := 1; i < len(places); i++ {
		if places[i].ID < places[i-1].ID {
			t.Fatalf("catalog must be ordered by id ascending: %v", places)
		}
	}
}

func TestGetPlaceWithComments(t *testing.T) {
	db := newTestDB(t)
	placeService := &PlaceService{DB: db}
	commentService := &CommentService{DB: db}
	place := createTestPlace(t, db, "Signal Hill", nil)

	for _, text := range []string{"first", "second"} {
		if _, err := commentService.CreateComment(place.ID, dto.CreateCommentDTO{Author: "guest", Content: text}); err != nil {
			t.Fatalf("create comment: %v", err)
		}
	}

	got, err := placeService.GetPlace(place.ID)
	if err != nil {
		t.Fatalf("get place: %v", err)
	}
	if len(got.Comments) != 2 {
		t.Fatalf("comments = %d", len(got.Comments))
	}
	// В карточке места комментарии идут по возрастанию id
	if got.Comments[0].Content != "first" || got.Comments[1].Content != "second" {
		t.Fatalf("comment order wrong: %+v", got.Comments)
	}

	if _, err := placeService.GetPlace(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing place: %v", err)
	}
}
