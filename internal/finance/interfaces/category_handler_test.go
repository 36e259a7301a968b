package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergioRicJr/financial-boost/internal/finance/domain"
	financeErrors "github.com/SergioRicJr/financial-boost/internal/finance/errors"
)

func TestCreateCategory_HappyPath(t *testing.T) {
	mockService := &MockCategoryService{}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)

	req := authenticated(httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Groceries","icon":"cart"}`)))
	w := httptest.NewRecorder()

	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response struct {
		Data CategoryView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Groceries", response.Data.Name)
	assert.Equal(t, testUserID, response.Data.UserID)
	assert.NotZero(t, response.Data.ID)
}

func TestCreateCategory_Unauthorized(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Groceries"}`))
	w := httptest.NewRecorder()

	handler.CreateCategory(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestGetCategories_OnlyRequestersOwn(t *testing.T) {
	mockService := &MockCategoryService{
		categories: []domain.Category{
			{ID: 1, Name: "Groceries", UserID: testUserID},
			{ID: 2, Name: "Rent", UserID: "someone-else"},
		},
	}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/categories", nil))
	w := httptest.NewRecorder()

	handler.GetCategories(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Data []CategoryView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	require.Len(t, response.Data, 1)
	assert.Equal(t, "Groceries", response.Data[0].Name)
}

func TestGetCategoryByID_ForeignOwnerIs404(t *testing.T) {
	mockService := &MockCategoryService{
		categories: []domain.Category{{ID: 2, Name: "Rent", UserID: "someone-else"}},
	}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/categories/2", nil))
	req.SetPathValue("id", "2")
	w := httptest.NewRecorder()

	handler.GetCategoryByID(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Category not found", response["message"])
}

func TestGetCategoryByID_InvalidID(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := authenticated(httptest.NewRequest(http.MethodGet, "/categories/abc", nil))
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	handler.GetCategoryByID(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestDeleteCategory_InUseMapsToConflict(t *testing.T) {
	mockService := &MockCategoryService{deleteErr: financeErrors.ErrCategoryInUse}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)

	req := authenticated(httptest.NewRequest(http.MethodDelete, "/categories/1", nil))
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	handler.DeleteCategory(w, req)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}

func TestDeleteCategory_NoContent(t *testing.T) {
	mockService := &MockCategoryService{
		categories: []domain.Category{{ID: 1, Name: "Groceries", UserID: testUserID}},
	}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)

	req := authenticated(httptest.NewRequest(http.MethodDelete, "/categories/1", nil))
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	handler.DeleteCategory(w, req)

	assert.Equal(t, http.StatusNoContent, w.Result().StatusCode)
}
