package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/harborbytes/booklion/internal/core/ports/services"
	"github.com/harborbytes/booklion/internal/dto"
	"github.com/harborbytes/booklion/internal/middleware"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := &accountHandler{accountService: accountService}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/overview", h.accountsOverview)
		accounts.GET("/next-number", h.nextAccountNumber)
		accounts.GET("/:id", h.getAccount)
		accounts.PATCH("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates a chart of accounts entry; the account type is derived from the number's leading digit
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Number or name already in use"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the user's accounts ordered by number, optionally filtered by name
// @Tags accounts
// @Produce  json
// @Param   name query string false "Name fragment filter"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), userID, params.Name, params.Limit, params.Offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// accountsOverview godoc
// @Summary Accounts dashboard overview
// @Description Per-type and per-account activity summaries over the whole ledger
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.AccountsOverviewResponse
// @Security BearerAuth
// @Router /accounts/overview [get]
func (h *accountHandler) accountsOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	byType, byAccount, err := h.accountService.AccountsOverview(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to build accounts overview")
		return
	}

	resp := dto.AccountsOverviewResponse{
		ByType:    make([]dto.AccountTypeOverviewResponse, len(byType)),
		ByAccount: make([]dto.AccountOverviewResponse, len(byAccount)),
	}
	for i, row := range byType {
		resp.ByType[i] = dto.ToAccountTypeOverviewResponse(row)
	}
	for i, row := range byAccount {
		resp.ByAccount[i] = dto.ToAccountOverviewResponse(row)
	}
	c.JSON(http.StatusOK, resp)
}

// nextAccountNumber godoc
// @Summary Propose the next free account number
// @Tags accounts
// @Produce  json
// @Param   accountType query string true "Account type" Enums(ASSETS, LIABILITIES, EQUITY, REVENUE, EXPENSES)
// @Success 200 {object} dto.NextAccountNumberResponse
// @Failure 409 {object} map[string]string "Category exhausted"
// @Security BearerAuth
// @Router /accounts/next-number [get]
func (h *accountHandler) nextAccountNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	var params dto.NextAccountNumberParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	number, err := h.accountService.NextAccountNumber(c.Request.Context(), userID, params.AccountType)
	if err != nil {
		respondError(c, logger, err, "Failed to propose account number")
		return
	}
	c.JSON(http.StatusOK, dto.NextAccountNumberResponse{Number: number})
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates the account's name; number and type are immutable
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{id} [patch]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Deletes an account that has no transaction lines
// @Tags accounts
// @Param   id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Account has transaction lines"
// @Security BearerAuth
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	userID, ok := mustUserID(c, logger)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete account")
		return
	}
	c.Status(http.StatusNoContent)
}
