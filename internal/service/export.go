package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/Dan9191/finance-tracker/internal/repository"
	"github.com/Dan9191/finance-tracker/internal/utils"
	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BundleVersion is written into every export bundle
const BundleVersion = "1.0"

// ExportFormat selects the export encoding
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
	FormatXML  ExportFormat = "xml"
)

// ParseExportFormat maps a query value to an export format, defaulting to JSON
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSV, FormatXML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unsupported export format %q", ErrValidation, s)
	}
}

// Bundle is a full copy of a user's records
type Bundle struct {
	Version       string                    `json:"version"`
	ExportDate    time.Time                 `json:"export_date"`
	Currency      string                    `json:"currency"`
	MonthlyIncome decimal.Decimal           `json:"monthly_income"`
	Expenses      []models.Expense          `json:"expenses"`
	EMIs          []models.EMI              `json:"emis"`
	Recurring     []models.RecurringExpense `json:"recurring"`
	SavingsGoals  []models.SavingsGoal      `json:"savings_goals"`
	Categories    []models.CustomCategory   `json:"categories"`
}

// SignedBundle is the JSON export document; Signature covers the compact bundle
type SignedBundle struct {
	Bundle    json.RawMessage `json:"bundle"`
	Signature string          `json:"signature"`
}

// ExportFile is an encoded export ready to be downloaded
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ImportResult counts the records created by Import
type ImportResult struct {
	Expenses     int `json:"expenses"`
	EMIs         int `json:"emis"`
	Recurring    int `json:"recurring"`
	SavingsGoals int `json:"savings_goals"`
	Categories   int `json:"categories"`
}

func (s *Service) bundle(ctx context.Context) (*Bundle, error) {
	user, err := s.Me(ctx)
	if err != nil {
		return nil, err
	}
	b := &Bundle{
		Version:       BundleVersion,
		ExportDate:    s.now().UTC(),
		Currency:      user.Currency,
		MonthlyIncome: user.MonthlyIncome,
	}
	if b.Expenses, err = s.repo.ListExpenses(ctx, user.ID); err != nil {
		return nil, err
	}
	if b.EMIs, err = s.repo.ListEMIs(ctx, user.ID); err != nil {
		return nil, err
	}
	if b.Recurring, err = s.repo.ListRecurring(ctx, user.ID); err != nil {
		return nil, err
	}
	if b.SavingsGoals, err = s.repo.ListSavingsGoals(ctx, user.ID); err != nil {
		return nil, err
	}
	if b.Categories, err = s.repo.ListCategories(ctx, user.ID); err != nil {
		return nil, err
	}
	return b, nil
}

// Export encodes the caller's data. JSON exports are complete and signed so
// they can be imported again; CSV and XML carry expenses only.
func (s *Service) Export(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	b, err := s.bundle(ctx)
	if err != nil {
		return nil, err
	}
	name := "expenses-" + b.ExportDate.Format(time.DateOnly)

	switch format {
	case FormatCSV:
		body, err := expensesCSV(b.Expenses)
		if err != nil {
			return nil, err
		}
		return &ExportFile{Filename: name + ".csv", ContentType: "text/csv", Body: body}, nil
	case FormatXML:
		body, err := expensesXML(b)
		if err != nil {
			return nil, err
		}
		return &ExportFile{Filename: name + ".xml", ContentType: "application/xml", Body: body}, nil
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("failed to encode bundle: %w", err)
		}
		body, err := json.MarshalIndent(SignedBundle{Bundle: raw, Signature: utils.Sign(raw, s.config.HMACSecret)}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode export: %w", err)
		}
		return &ExportFile{Filename: name + ".json", ContentType: "application/json", Body: body}, nil
	}
}

func expensesCSV(expenses []models.Expense) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Date", "Category", "Description", "Amount", "Payment Method", "Notes"}); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	for _, e := range expenses {
		row := []string{e.Date.Format(time.DateOnly), e.Category, e.Description, e.Amount.StringFixed(2), e.PaymentMethod, e.Notes}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func expensesXML(b *Bundle) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("export")
	root.CreateAttr("version", b.Version)
	root.CreateAttr("exported_at", b.ExportDate.Format(time.RFC3339))
	root.CreateAttr("currency", b.Currency)

	list := root.CreateElement("expenses")
	list.CreateAttr("count", fmt.Sprint(len(b.Expenses)))
	for _, e := range b.Expenses {
		el := list.CreateElement("expense")
		el.CreateAttr("id", e.ID.String())
		el.CreateAttr("date", e.Date.Format(time.DateOnly))
		el.CreateAttr("category", e.Category)
		el.CreateAttr("payment_method", e.PaymentMethod)
		if e.SourceKind != models.SourceManual {
			el.CreateAttr("source", string(e.SourceKind))
		}
		el.CreateElement("description").SetText(e.Description)
		el.CreateElement("amount").SetText(e.Amount.StringFixed(2))
		if e.Notes != "" {
			el.CreateElement("notes").SetText(e.Notes)
		}
	}

	doc.Indent(2)
	body, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write xml: %w", err)
	}
	return body, nil
}

// Import verifies a signed JSON export and adds its records to the caller's data
// under fresh ids. Links from materialized expenses to their EMIs and recurring
// expenses are preserved. Categories that already exist are skipped.
func (s *Service) Import(ctx context.Context, body []byte) (*ImportResult, error) {
	user, err := s.Me(ctx)
	if err != nil {
		return nil, err
	}

	var signed SignedBundle
	if err := json.Unmarshal(body, &signed); err != nil || len(signed.Bundle) == 0 {
		return nil, fmt.Errorf("%w: import must be a JSON export bundle", ErrValidation)
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, signed.Bundle); err != nil {
		return nil, fmt.Errorf("%w: malformed bundle", ErrValidation)
	}
	if err := utils.Verify(compact.Bytes(), signed.Signature, s.config.HMACSecret); err != nil {
		return nil, ErrBadSignature
	}

	var b Bundle
	if err := json.Unmarshal(compact.Bytes(), &b); err != nil {
		return nil, fmt.Errorf("%w: malformed bundle", ErrValidation)
	}
	if b.Version != BundleVersion {
		return nil, fmt.Errorf("%w: unsupported bundle version %q", ErrValidation, b.Version)
	}

	result := &ImportResult{}
	err = s.repo.InTx(ctx, func(tx *repository.Repository) error {
		return importBundle(ctx, tx, user, &b, result)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithField("user_id", user.ID).Infof("Imported %d expense(s)", result.Expenses)
	return result, nil
}

func importBundle(ctx context.Context, tx *repository.Repository, user *models.User, b *Bundle, result *ImportResult) error {
	existing, err := tx.ListCategories(ctx, user.ID)
	if err != nil {
		return err
	}
	names := make(map[string]bool, len(existing))
	for _, c := range existing {
		names[c.Name] = true
	}
	for _, c := range b.Categories {
		if names[c.Name] {
			continue
		}
		c.ID, c.UserID = uuid.Nil, user.ID
		if err := tx.CreateCategory(ctx, &c); err != nil {
			return err
		}
		names[c.Name] = true
		result.Categories++
	}

	ids := make(map[uuid.UUID]uuid.UUID)
	for i, e := range b.EMIs {
		if err := validateEMI(&e); err != nil {
			return fmt.Errorf("emi %d: %w", i+1, err)
		}
		old := e.ID
		e.ID, e.UserID = uuid.Nil, user.ID
		if err := tx.CreateEMI(ctx, &e); err != nil {
			return err
		}
		ids[old] = e.ID
		result.EMIs++
	}
	for i, r := range b.Recurring {
		if err := validateRecurring(&r); err != nil {
			return fmt.Errorf("recurring expense %d: %w", i+1, err)
		}
		old := r.ID
		r.ID, r.UserID = uuid.Nil, user.ID
		if err := tx.CreateRecurring(ctx, &r); err != nil {
			return err
		}
		ids[old] = r.ID
		result.Recurring++
	}
	for i, g := range b.SavingsGoals {
		if err := validateSavingsGoal(&g); err != nil {
			return fmt.Errorf("savings goal %d: %w", i+1, err)
		}
		g.ID, g.UserID = uuid.Nil, user.ID
		if err := tx.CreateSavingsGoal(ctx, &g); err != nil {
			return err
		}
		result.SavingsGoals++
	}
	for i, e := range b.Expenses {
		if err := validateExpense(&e); err != nil {
			return fmt.Errorf("expense %d: %w", i+1, err)
		}
		e.ID, e.UserID = uuid.Nil, user.ID
		if newID, ok := ids[e.SourceID.UUID]; ok && e.SourceID.Valid {
			e.SourceID.UUID = newID
		} else {
			e.SourceKind, e.SourceID = models.SourceManual, uuid.NullUUID{}
		}
		if err := tx.CreateExpense(ctx, &e); err != nil {
			return err
		}
		result.Expenses++
	}

	if b.Currency != "" && b.MonthlyIncome.IsPositive() && !user.OnboardingComplete {
		user.MonthlyIncome, user.Currency, user.OnboardingComplete = b.MonthlyIncome, b.Currency, true
		if err := tx.UpdateUser(ctx, user); err != nil {
			return err
		}
	}
	return nil
}
