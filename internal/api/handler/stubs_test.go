package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mealwise/mealplanner/internal/api/middleware"
	"github.com/mealwise/mealplanner/internal/core/domain"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func signIn(c echo.Context, account *domain.Account) *domain.Session {
	s := &domain.Session{AccessToken: "tok", TokenID: "jti", Account: account}
	c.Set(middleware.CtxSession, s)
	c.Set(middleware.CtxAccountID, account.ID)
	c.Set(middleware.CtxRole, account.Role)
	return s
}

// --- wizard ---

type stubWizardService struct {
	startFn   func(ctx context.Context) (domain.Wizard, error)
	getFn     func(ctx context.Context, id string) (domain.Wizard, error)
	updateFn  func(ctx context.Context, id string, p domain.DraftPatch) (domain.Wizard, error)
	navFn     func(ctx context.Context, action, id string) (domain.Wizard, error)
	submitFn  func(ctx context.Context, id string) (domain.Wizard, error)
	abandonFn func(ctx context.Context, id string) error
}

func (s *stubWizardService) Start(ctx context.Context) (domain.Wizard, error) {
	return s.startFn(ctx)
}

func (s *stubWizardService) Get(ctx context.Context, id string) (domain.Wizard, error) {
	return s.getFn(ctx, id)
}

func (s *stubWizardService) Update(ctx context.Context, id string, p domain.DraftPatch) (domain.Wizard, error) {
	return s.updateFn(ctx, id, p)
}

func (s *stubWizardService) Next(ctx context.Context, id string) (domain.Wizard, error) {
	return s.navFn(ctx, "next", id)
}

func (s *stubWizardService) Back(ctx context.Context, id string) (domain.Wizard, error) {
	return s.navFn(ctx, "back", id)
}

func (s *stubWizardService) Resume(ctx context.Context, id string) (domain.Wizard, error) {
	return s.navFn(ctx, "resume", id)
}

func (s *stubWizardService) Submit(ctx context.Context, id string) (domain.Wizard, error) {
	return s.submitFn(ctx, id)
}

func (s *stubWizardService) Abandon(ctx context.Context, id string) error {
	return s.abandonFn(ctx, id)
}

// --- sessions ---

type stubSessionStore struct {
	signInFn  func(ctx context.Context, email, password string) (*domain.Session, error)
	signOutFn func(ctx context.Context, s *domain.Session) error
	upsertFn  func(ctx context.Context, p *domain.Profile) error
	getFn     func(ctx context.Context, accountID string) (*domain.Profile, error)
}

func (s *stubSessionStore) CreateAccount(context.Context, string, string) (*domain.Account, error) {
	panic("not used by handlers")
}

func (s *stubSessionStore) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.signInFn(ctx, email, password)
}

func (s *stubSessionStore) SignOut(ctx context.Context, session *domain.Session) error {
	return s.signOutFn(ctx, session)
}

func (s *stubSessionStore) CurrentSession(context.Context, string) (*domain.Session, error) {
	return nil, domain.ErrNoSession
}

func (s *stubSessionStore) UpsertProfile(ctx context.Context, p *domain.Profile) error {
	return s.upsertFn(ctx, p)
}

func (s *stubSessionStore) GetProfile(ctx context.Context, accountID string) (*domain.Profile, error) {
	return s.getFn(ctx, accountID)
}

func (s *stubSessionStore) QueryProfiles(context.Context, domain.ProfileFilter) ([]*domain.Profile, error) {
	return nil, nil
}

func (s *stubSessionStore) SubscribeProfileChanges(context.Context) (<-chan domain.ProfileChange, error) {
	return nil, nil
}

// --- meals ---

type stubMealService struct {
	mealFn  func(ctx context.Context, accountID string, prefs domain.MealPreferences) (*domain.Meal, error)
	planFn  func(ctx context.Context, accountID string, req domain.PlanRequest) (*domain.WeeklyPlan, error)
	imageFn func(ctx context.Context, accountID, title, description string) (string, error)
}

func (s *stubMealService) GenerateMeal(ctx context.Context, accountID string, prefs domain.MealPreferences) (*domain.Meal, error) {
	return s.mealFn(ctx, accountID, prefs)
}

func (s *stubMealService) GeneratePlan(ctx context.Context, accountID string, req domain.PlanRequest) (*domain.WeeklyPlan, error) {
	return s.planFn(ctx, accountID, req)
}

func (s *stubMealService) GenerateImage(ctx context.Context, accountID, title, description string) (string, error) {
	return s.imageFn(ctx, accountID, title, description)
}

// --- admin ---

type stubAdminService struct {
	stats     *domain.AdminStats
	users     []*domain.Profile
	lastQuery domain.ProfileFilter
	changes   chan domain.ProfileChange
	results   []domain.ColumnResult
}

func (s *stubAdminService) Stats(context.Context) (*domain.AdminStats, error) {
	return s.stats, nil
}

func (s *stubAdminService) ListUsers(_ context.Context, f domain.ProfileFilter) ([]*domain.Profile, error) {
	s.lastQuery = f
	return s.users, nil
}

func (s *stubAdminService) WatchProfiles(context.Context) (<-chan domain.ProfileChange, error) {
	return s.changes, nil
}

func (s *stubAdminService) EnsureProfileColumns(context.Context) []domain.ColumnResult {
	return s.results
}

func (s *stubAdminService) EnsureMembershipColumn(context.Context) []domain.ColumnResult {
	return s.results
}
