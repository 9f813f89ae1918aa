package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "cadee/internal/errors"
	"cadee/internal/models"
)

func setupFolderRouter(handler *FolderHandler) *gin.Engine {
	r := gin.New()
	r.GET("/folders/", injectUserID(testUserID), handler.ListFolders)
	r.POST("/folders/new/", injectUserID(testUserID), handler.CreateFolder)
	r.POST("/folders/:id/delete/", injectUserID(testUserID), handler.DeleteFolder)
	return r
}

func TestFolderHandler_ListFolders(t *testing.T) {
	folderSvc := &mockFolderService{
		getUserFoldersFn: func(userID string) ([]models.Category, error) {
			return []models.Category{
				{Base: models.Base{ID: testFolderID}, UserID: userID, Name: "Bills"},
			}, nil
		},
	}
	handler := NewFolderHandler(folderSvc, &mockAuditService{})
	r := setupFolderRouter(handler)

	rec := doRequest(r, "GET", "/folders/", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	folders, ok := result["folders"].([]interface{})
	if !ok || len(folders) != 1 {
		t.Fatalf("expected 1 folder, got %v", result["folders"])
	}
}

func TestFolderHandler_CreateFolder(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		handler := NewFolderHandler(&mockFolderService{}, &mockAuditService{})
		r := setupFolderRouter(handler)

		rec := doRequest(r, "POST", "/folders/new/",
			`{"name":"Groceries","color_hex":"#FF8800","icon_name":"cart"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on a malformed color", func(t *testing.T) {
		handler := NewFolderHandler(&mockFolderService{}, &mockAuditService{})
		r := setupFolderRouter(handler)

		rec := doRequest(r, "POST", "/folders/new/",
			`{"name":"Groceries","color_hex":"orange"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on a missing name", func(t *testing.T) {
		handler := NewFolderHandler(&mockFolderService{}, &mockAuditService{})
		r := setupFolderRouter(handler)

		rec := doRequest(r, "POST", "/folders/new/", `{"color_hex":"#FF8800"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestFolderHandler_DeleteFolder(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewFolderHandler(&mockFolderService{}, &mockAuditService{})
		r := setupFolderRouter(handler)

		rec := doRequest(r, "POST", "/folders/"+testFolderID+"/delete/", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 404 for a folder the user does not own", func(t *testing.T) {
		folderSvc := &mockFolderService{
			deleteFolderFn: func(_, _ string) error {
				return apperrors.ErrFolderNotFound
			},
		}
		handler := NewFolderHandler(folderSvc, &mockAuditService{})
		r := setupFolderRouter(handler)

		rec := doRequest(r, "POST", "/folders/"+testFolderID+"/delete/", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "FOLDER_NOT_FOUND")
	})

	t.Run("returns 400 for a malformed folder ID", func(t *testing.T) {
		handler := NewFolderHandler(&mockFolderService{}, &mockAuditService{})
		r := setupFolderRouter(handler)

		rec := doRequest(r, "POST", "/folders/99/delete/", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
