package service

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/Dan9191/finance-tracker/internal/auth"
	"github.com/Dan9191/finance-tracker/internal/config"
	"github.com/Dan9191/finance-tracker/internal/repository"
	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	db, err := repository.Open(ctx, "sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := repository.NewRepository(db)
	require.NoError(t, repo.Migrate(ctx))

	log, _ := logtest.NewNullLogger()
	cfg := &config.Config{JWTSecret: "secret", TokenTTL: time.Hour, HMACSecret: "hmac-secret"}
	svc := NewService(repo, log, cfg, auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL))
	svc.now = func() time.Time { return testNow }
	return svc
}

// signUp registers a user and returns a context carrying their session
func signUp(t *testing.T, svc *Service, email string) context.Context {
	t.Helper()
	res, err := svc.Register(context.Background(), RegisterInput{Name: "Test", Email: email, Password: "secret123"})
	require.NoError(t, err)
	return auth.WithSession(context.Background(), auth.Session{UserID: res.User.ID, Email: res.User.Email})
}

func ptr[T any](v T) *T { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(y int, m time.Month, d int) *Date {
	return &Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterInput{Name: " Jane ", Email: "Jane@Example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "jane@example.com", res.User.Email)
	assert.Equal(t, "Jane", res.User.Name)
	assert.Equal(t, "USD", res.User.Currency)
	assert.False(t, res.User.OnboardingComplete)

	session, err := svc.tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, session.UserID)

	_, err = svc.Register(ctx, RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	login, err := svc.Login(ctx, "JANE@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)

	_, err = svc.Login(ctx, "jane@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService(t)
	tests := []RegisterInput{
		{Name: "", Email: "a@example.com", Password: "secret123"},
		{Name: "A", Email: "not-an-email", Password: "secret123"},
		{Name: "A", Email: "a@example.com", Password: "12345"},
	}
	for _, in := range tests {
		_, err := svc.Register(context.Background(), in)
		assert.ErrorIs(t, err, ErrValidation, "input %+v", in)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestService(t)
	ctx := signUp(t, svc, "jane@example.com")

	user, err := svc.UpdateProfile(ctx, ProfileInput{MonthlyIncome: ptr(dec("5000")), Currency: ptr("inr")})
	require.NoError(t, err)
	assert.True(t, user.OnboardingComplete)
	assert.Equal(t, "INR", user.Currency)

	me, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.True(t, me.MonthlyIncome.Equal(dec("5000")))
	assert.True(t, me.OnboardingComplete)

	_, err = svc.UpdateProfile(ctx, ProfileInput{MonthlyIncome: ptr(dec("10000001"))})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.UpdateProfile(ctx, ProfileInput{MonthlyIncome: ptr(dec("-1"))})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.UpdateProfile(ctx, ProfileInput{Currency: ptr("EURO")})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRequiresSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Me(ctx)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = svc.ListExpenses(ctx)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = svc.Dashboard(ctx, "month", testNow)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = svc.MaterializeAutoExpenses(ctx, testNow, nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2025-03-15T18:45:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("15/03/2025")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDateJSON(t *testing.T) {
	var in RecurringInput
	require.NoError(t, json.Unmarshal([]byte(`{"start_date": "2025-03-15", "end_date": "", "clear": ["day_of_week"]}`), &in))
	require.NotNil(t, in.StartDate)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), in.StartDate.Time)
	require.NotNil(t, in.EndDate)
	assert.True(t, in.EndDate.IsZero())
	assert.Equal(t, []string{"day_of_week"}, in.Clear)

	var omitted RecurringInput
	require.NoError(t, json.Unmarshal([]byte(`{"end_date": null}`), &omitted))
	assert.Nil(t, omitted.EndDate)

	err := json.Unmarshal([]byte(`{"end_date": "tomorrow"}`), &omitted)
	assert.ErrorIs(t, err, ErrValidation)
}
