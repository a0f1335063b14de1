package handler

import (
	"net/http"

	"github.com/Dan9191/finance-tracker/internal/service"
)

// ListExpenses returns all expenses
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svc.ListExpenses(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list(w, expenses)
}

// ListExpensesRange returns expenses between the startDate and endDate query parameters
func (h *Handler) ListExpensesRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("startDate") == "" || q.Get("endDate") == "" {
		fail(w, http.StatusBadRequest, "Please provide startDate and endDate")
		return
	}
	start, valid := h.queryDate(w, r, "startDate")
	if !valid {
		return
	}
	end, valid := h.queryDate(w, r, "endDate")
	if !valid {
		return
	}
	expenses, err := h.svc.ListExpensesBetween(r.Context(), start, end)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list(w, expenses)
}

// CreateExpense records an expense
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var in service.ExpenseInput
	if !h.decode(w, r, &in) {
		return
	}
	e, err := h.svc.CreateExpense(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusCreated, "Expense created successfully", e)
}

// UpdateExpense changes an expense
func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r)
	if !valid {
		return
	}
	var in service.ExpenseInput
	if !h.decode(w, r, &in) {
		return
	}
	e, err := h.svc.UpdateExpense(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusOK, "Expense updated successfully", e)
}

// DeleteExpense removes an expense
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r)
	if !valid {
		return
	}
	if err := h.svc.DeleteExpense(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusOK, "Expense deleted successfully", nil)
}

// ListEMIs returns all EMIs
func (h *Handler) ListEMIs(w http.ResponseWriter, r *http.Request) {
	emis, err := h.svc.ListEMIs(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list(w, emis)
}

// CreateEMI records an EMI
func (h *Handler) CreateEMI(w http.ResponseWriter, r *http.Request) {
	var in service.EMIInput
	if !h.decode(w, r, &in) {
		return
	}
	e, err := h.svc.CreateEMI(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusCreated, "EMI created successfully", e)
}

// UpdateEMI changes an EMI
func (h *Handler) UpdateEMI(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r)
	if !valid {
		return
	}
	var in service.EMIInput
	if !h.decode(w, r, &in) {
		return
	}
	e, err := h.svc.UpdateEMI(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusOK, "EMI updated successfully", e)
}

// DeleteEMI removes an EMI
func (h *Handler) DeleteEMI(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r)
	if !valid {
		return
	}
	if err := h.svc.DeleteEMI(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusOK, "EMI deleted successfully", nil)
}

// ListRecurring returns all recurring expenses
func (h *Handler) ListRecurring(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListRecurring(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list(w, items)
}

// CreateRecurring records a recurring expense
func (h *Handler) CreateRecurring(w http.ResponseWriter, r *http.Request) {
	var in service.RecurringInput
	if !h.decode(w, r, &in) {
		return
	}
	rec, err := h.svc.CreateRecurring(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusCreated, "Recurring expense created successfully", rec)
}

// UpdateRecurring changes a recurring expense
func (h *Handler) UpdateRecurring(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r)
	if !valid {
		return
	}
	var in service.RecurringInput
	if !h.decode(w, r, &in) {
		return
	}
	rec, err := h.svc.UpdateRecurring(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusOK, "Recurring expense updated successfully", rec)
}

// DeleteRecurring removes a recurring expense
func (h *Handler) DeleteRecurring(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r)
	if !valid {
		return
	}
	if err := h.svc.DeleteRecurring(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusOK, "Recurring expense deleted successfully", nil)
}

// ListSavingsGoals returns all savings goals
func (h *Handler) ListSavingsGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.ListSavingsGoals(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list(w, goals)
}

// CreateSavingsGoal records a savings goal
func (h *Handler) CreateSavingsGoal(w http.ResponseWriter, r *http.Request) {
	var in service.SavingsGoalInput
	if !h.decode(w, r, &in) {
		return
	}
	g, err := h.svc.CreateSavingsGoal(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusCreated, "Savings goal created successfully", g)
}

// UpdateSavingsGoal changes a savings goal
func (h *Handler) UpdateSavingsGoal(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r)
	if !valid {
		return
	}
	var in service.SavingsGoalInput
	if !h.decode(w, r, &in) {
		return
	}
	g, err := h.svc.UpdateSavingsGoal(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusOK, "Savings goal updated successfully", g)
}

// DeleteSavingsGoal removes a savings goal
func (h *Handler) DeleteSavingsGoal(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r)
	if !valid {
		return
	}
	if err := h.svc.DeleteSavingsGoal(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusOK, "Savings goal deleted successfully", nil)
}

// ListCategories returns all custom categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list(w, categories)
}

// CreateCategory adds a custom category
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in service.CategoryInput
	if !h.decode(w, r, &in) {
		return
	}
	c, err := h.svc.CreateCategory(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusCreated, "Category created successfully", c)
}

// DeleteCategory removes a custom category
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r)
	if !valid {
		return
	}
	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	ok(w, http.StatusOK, "Category deleted successfully", nil)
}
