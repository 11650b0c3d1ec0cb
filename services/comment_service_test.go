package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/IsMarshev/we-site/dto"
	"github.com/IsMarshev/we-site/models"
)

func TestCommentsRequireExistingPlace(t *testing.T) {
	db := newTestDB(t)
	service := &CommentService{DB: db}

	if _, err := service.ListByPlace(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("list for missing place: %v", err)
	}
	if _, err := service.CreateComment(42, dto.CreateCommentDTO{Author: "guest", Content: "hi"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("create for missing place: %v", err)
	}
}

func TestCommentsListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	service := &CommentService{DB: db}
	place := createTestPlace(t, db, "Chapman's Peak", nil)

	for i := 1; i <= 3; i++ {
		if _, err := service.CreateComment(place.ID, dto.CreateCommentDTO{
			Author:  "guest",
			Content: fmt.Sprintf("comment %d", i),
		}); err != nil {
			t.Fatalf("create comment %d: %v", i, err)
		}
	}

	comments, err := service.ListByPlace(place.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("len = %d", len(comments))
	}
	if comments[0].Content != "comment 3" || comments[2].Content != "comment 1" {
		t.Fatalf("expected newest first, got %+v", comments)
	}
}

func TestContactsAppendOnlyNewestFirst(t *testing.T) {
	db := newTestDB(t)
	service := &ContactService{DB: db}

	for i := 1; i <= 2; i++ {
		if _, err := service.CreateContact(dto.CreateContactDTO{
			Name:    fmt.Sprintf("sender %d", i),
			Email:   "sender@example.com",
			Message: "hello",
		}); err != nil {
			t.Fatalf("create contact %d: %v", i, err)
		}
	}

	messages, err := service.ListContacts()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("len = %d", len(messages))
	}
	if messages[0].Name != "sender 2" {
		t.Fatalf("expected newest first, got %+v", messages)
	}

	var total int64
	if err := db.Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d", total)
	}
}
