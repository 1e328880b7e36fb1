package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/budgetd-dev/budgetd/internal/model"
	"github.com/budgetd-dev/budgetd/internal/store"
)

// ListAccounts returns all accounts in scan order.
func (h *Handler) ListAccounts(c *gin.Context) {
	accts, err := h.store.ListAccounts(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("listing accounts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list accounts"})
		return
	}
	c.JSON(http.StatusOK, accts)
}

type createAccountReq struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type"`
	MatchString string `json:"matchString" binding:"required"`
}

// CreateAccount adds an account from the UI.
func (h *Handler) CreateAccount(c *gin.Context) {
	var req createAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.MatchString) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "match string must not be empty"})
		return
	}

	a := model.Account{
		Name:        req.Name,
		Type:        model.AccountTypeUnknown,
		MatchString: req.MatchString,
	}
	if req.Type != "" {
		a.Type = model.AccountType(req.Type)
	}
	if err := h.store.CreateAccount(c.Request.Context(), &a); err != nil {
		h.log.Error().Err(err).Msg("creating account")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	}
	c.JSON(http.StatusOK, a)
}

type updateAccountReq struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	MatchString *string `json:"matchString"`
	Active      *bool   `json:"active"`
}

// UpdateAccount applies partial edits (rename, reclassify, retarget the
// match string) to an account.
func (h *Handler) UpdateAccount(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	var req updateAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.MatchString != nil && strings.TrimSpace(*req.MatchString) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "match string must not be empty"})
		return
	}

	a, err := h.store.GetAccount(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Type != nil {
		a.Type = model.AccountType(*req.Type)
	}
	if req.MatchString != nil {
		a.MatchString = *req.MatchString
	}
	if req.Active != nil {
		a.Active = *req.Active
	}
	if err := h.store.SaveAccount(c.Request.Context(), &a); err != nil {
		h.log.Error().Err(err).Int("account", id).Msg("saving account")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save account"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// ListLedger returns ledger entries, optionally bounded by ?from=,
// ?to= (YYYY-MM-DD) and ?account=.
func (h *Handler) ListLedger(c *gin.Context) {
	var filter store.LedgerFilter
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		filter.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		filter.To = &t
	}
	if v := c.Query("account"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
			return
		}
		filter.AccountID = id
	}

	entries, err := h.store.ListLedgerEntries(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("listing ledger")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list ledger"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListBudgets returns all budget lines.
func (h *Handler) ListBudgets(c *gin.Context) {
	budgets, err := h.store.ListBudgets(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("listing budgets")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list budgets"})
		return
	}
	c.JSON(http.StatusOK, budgets)
}

type createBudgetReq struct {
	AccountID int    `json:"accountId" binding:"required"`
	DueDay    int    `json:"dueDay" binding:"required,min=1,max=31"`
	DueAmount string `json:"dueAmount" binding:"required"`
}

// CreateBudget adds a budget line for an existing account.
func (h *Handler) CreateBudget(c *gin.Context) {
	var req createBudgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	amount, err := decimal.NewFromString(req.DueAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due amount"})
		return
	}

	acct, err := h.store.GetAccount(c.Request.Context(), req.AccountID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown account"})
		return
	}

	b := model.Budget{
		AccountID:   acct.ID,
		AccountName: acct.Name,
		Type:        acct.Type,
		DueDay:      req.DueDay,
		DueAmount:   amount,
	}
	if err := h.store.CreateBudget(c.Request.Context(), &b); err != nil {
		h.log.Error().Err(err).Msg("creating budget")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create budget"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListUploads returns the ingestion run history, newest first.
func (h *Handler) ListUploads(c *gin.Context) {
	uploads, err := h.store.ListUploads(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("listing uploads")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list uploads"})
		return
	}
	c.JSON(http.StatusOK, uploads)
}
