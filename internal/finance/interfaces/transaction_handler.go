package interfaces

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SergioRicJr/financial-boost/internal/finance/application"
	"github.com/SergioRicJr/financial-boost/internal/finance/domain"
	financeErrors "github.com/SergioRicJr/financial-boost/internal/finance/errors"
)

// maxReceiptSize bounds the in-memory part of a multipart request.
const maxReceiptSize = 10 << 20

type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, userID string, transaction *domain.Transaction, image *application.ReceiptImage) (*application.TransactionView, error)
	GetTransaction(userID string, transactionID int) (*application.TransactionView, error)
	ListTransactions(userID string, page, size int, filter domain.TransactionFilter) (*application.TransactionPage, error)
	UpdateTransaction(ctx context.Context, userID string, transactionID int, update domain.TransactionUpdate, image *application.ReceiptImage) (*application.TransactionView, error)
	DeleteTransaction(userID string, transactionID int) error
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionHandler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, financeErrors.ErrCategoryNotFound):
		h.respondError(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, financeErrors.ErrTransactionNotFound):
		h.respondError(w, http.StatusNotFound, "Transaction not found")
	case errors.Is(err, financeErrors.ErrUploadFailed):
		h.respondError(w, http.StatusInternalServerError, "Failed to store receipt image")
	case financeErrors.IsValidationError(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// parseReceiptImage reads the optional "image" part of a multipart form. An
// absent part is not an error.
func parseReceiptImage(r *http.Request) (*application.ReceiptImage, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &application.ReceiptImage{Data: data, Name: header.Filename}, nil
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxReceiptSize); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	value, err := decimal.NewFromString(r.FormValue("value"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid value")
		return
	}
	operation, err := domain.ParseOperation(r.FormValue("operation"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	paymentType, err := domain.ParsePaymentType(r.FormValue("type"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	datetime, err := time.Parse(domain.DatetimeLayout, r.FormValue("datetime"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid datetime format")
		return
	}
	categoryID, err := strconv.Atoi(r.FormValue("categoryId"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid categoryId")
		return
	}

	image, err := parseReceiptImage(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid image upload")
		return
	}

	transaction := &domain.Transaction{
		Value:      value,
		Operation:  operation,
		Type:       paymentType,
		Datetime:   datetime,
		CategoryID: categoryID,
	}

	view, err := h.service.CreateTransaction(r.Context(), userID, transaction, image)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully created.",
		"data":    view,
	})
}

// parseFilter turns the optional query parameters of the list endpoint into a
// filter structure. Absent parameters contribute no clause at all.
func parseFilter(r *http.Request) (domain.TransactionFilter, error) {
	var filter domain.TransactionFilter
	query := r.URL.Query()

	if raw := query.Get("categoryId"); raw != "" {
		categoryID, err := strconv.Atoi(raw)
		if err != nil {
			return filter, financeErrors.NewValidationError("Invalid categoryId")
		}
		filter.CategoryID = &categoryID
	}
	if raw := query.Get("operation"); raw != "" {
		operation, err := domain.ParseOperation(raw)
		if err != nil {
			return filter, err
		}
		filter.Operation = &operation
	}
	if raw := query.Get("type"); raw != "" {
		paymentType, err := domain.ParsePaymentType(raw)
		if err != nil {
			return filter, err
		}
		filter.Type = &paymentType
	}
	if raw := query.Get("valueMin"); raw != "" {
		valueMin, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, financeErrors.NewValidationError("Invalid valueMin")
		}
		filter.ValueMin = &valueMin
	}
	if raw := query.Get("valueMax"); raw != "" {
		valueMax, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, financeErrors.NewValidationError("Invalid valueMax")
		}
		filter.ValueMax = &valueMax
	}
	if raw := query.Get("datetimeMin"); raw != "" {
		datetimeMin, err := time.Parse(domain.DatetimeLayout, raw)
		if err != nil {
			return filter, financeErrors.NewValidationError("Invalid datetimeMin format")
		}
		filter.DatetimeMin = &datetimeMin
	}
	if raw := query.Get("datetimeMax"); raw != "" {
		datetimeMax, err := time.Parse(domain.DatetimeLayout, raw)
		if err != nil {
			return filter, financeErrors.NewValidationError("Invalid datetimeMax format")
		}
		filter.DatetimeMax = &datetimeMax
	}

	return filter, nil
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	query := r.URL.Query()
	page := 0
	size := 0
	var err error
	if raw := query.Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 0 {
			h.respondError(w, http.StatusBadRequest, "Invalid page value")
			return
		}
	}
	if raw := query.Get("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil || size <= 0 {
			h.respondError(w, http.StatusBadRequest, "Invalid size value")
			return
		}
	}

	filter, err := parseFilter(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	transactionPage, err := h.service.ListTransactions(userID, page, size, filter)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transactions retrieved successfully.",
		"data":    transactionPage,
	})
}

func (h *TransactionHandler) GetTransactionByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactionID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	view, err := h.service.GetTransaction(userID, transactionID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction retrieved successfully.",
		"data":    view,
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactionID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	if err := r.ParseMultipartForm(maxReceiptSize); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	var update domain.TransactionUpdate
	if raw := r.FormValue("value"); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid value")
			return
		}
		update.Value = &value
	}
	if raw := r.FormValue("operation"); raw != "" {
		operation, err := domain.ParseOperation(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		update.Operation = &operation
	}
	if raw := r.FormValue("type"); raw != "" {
		paymentType, err := domain.ParsePaymentType(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		update.Type = &paymentType
	}
	if raw := r.FormValue("datetime"); raw != "" {
		datetime, err := time.Parse(domain.DatetimeLayout, raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid datetime format")
			return
		}
		update.Datetime = &datetime
	}
	if raw := r.FormValue("categoryId"); raw != "" {
		categoryID, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid categoryId")
			return
		}
		update.CategoryID = &categoryID
	}

	image, err := parseReceiptImage(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid image upload")
		return
	}

	view, err := h.service.UpdateTransaction(r.Context(), userID, transactionID, update, image)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully updated.",
		"data":    view,
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactionID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	if err := h.service.DeleteTransaction(userID, transactionID); err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
