package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"petmanager/internal/domain/entity"
	domainerrors "petmanager/internal/domain/errors"
	"petmanager/internal/domain/repository"
	"petmanager/internal/domain/service"
)

// fakeStore is a shared in-memory backing for the fake repositories, so a
// transaction factory and the standalone repositories see the same data.
type fakeStore struct {
	mu           sync.Mutex
	users        map[uuid.UUID]*entity.User
	pets         map[uuid.UUID]*entity.Pet
	days         map[uuid.UUID]*entity.Day
	months       map[uuid.UUID]*entity.Month
	years        map[uuid.UUID]*entity.Year
	meals        map[uuid.UUID]*entity.Meal
	appointments map[uuid.UUID]*entity.Appointment
	foods        map[uuid.UUID]*entity.Food
	blacklist    map[string]bool

	// userLocks counts row locks taken per user, so tests can assert the
	// read-then-write flows serialize on the owner.
	userLocks map[uuid.UUID]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        map[uuid.UUID]*entity.User{},
		pets:         map[uuid.UUID]*entity.Pet{},
		days:         map[uuid.UUID]*entity.Day{},
		months:       map[uuid.UUID]*entity.Month{},
		years:        map[uuid.UUID]*entity.Year{},
		meals:        map[uuid.UUID]*entity.Meal{},
		appointments: map[uuid.UUID]*entity.Appointment{},
		foods:        map[uuid.UUID]*entity.Food{},
		blacklist:    map[string]bool{},
		userLocks:    map[uuid.UUID]int{},
	}
}

// snapshot clones every table so a failed transaction can be rolled back.
func (s *fakeStore) snapshot() *fakeStore {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := newFakeStore()
	for k, v := range s.users {
		u := *v
		clone.users[k] = &u
	}
	for k, v := range s.pets {
		p := *v
		clone.pets[k] = &p
	}
	for k, v := range s.days {
		d := *v
		clone.days[k] = &d
	}
	for k, v := range s.months {
		m := *v
		clone.months[k] = &m
	}
	for k, v := range s.years {
		y := *v
		clone.years[k] = &y
	}
	for k, v := range s.meals {
		m := *v
		clone.meals[k] = &m
	}
	for k, v := range s.appointments {
		a := *v
		clone.appointments[k] = &a
	}
	for k, v := range s.foods {
		f := *v
		clone.foods[k] = &f
	}
	for k, v := range s.blacklist {
		clone.blacklist[k] = v
	}

	return clone
}

func (s *fakeStore) restore(from *fakeStore) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = from.users
	s.pets = from.pets
	s.days = from.days
	s.months = from.months
	s.years = from.years
	s.meals = from.meals
	s.appointments = from.appointments
	s.foods = from.foods
	s.blacklist = from.blacklist
}

// fakeTxManager satisfies repository.TransactionManager over the fake store.
// An error from fn restores the pre-transaction state.
type fakeTxManager struct {
	store *fakeStore
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(factory repository.RepositoryFactory) error) error {
	before := tm.store.snapshot()

	if err := fn(&fakeFactory{store: tm.store}); err != nil {
		tm.store.restore(before)

		return err
	}

	return nil
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) Users() repository.UserRepository        { return &fakeUserRepo{store: f.store} }
func (f *fakeFactory) Pets() repository.PetRepository          { return &fakePetRepo{store: f.store} }
func (f *fakeFactory) Days() repository.DayRepository          { return &fakeDayRepo{store: f.store} }
func (f *fakeFactory) Months() repository.MonthRepository      { return &fakeMonthRepo{store: f.store} }
func (f *fakeFactory) Years() repository.YearRepository        { return &fakeYearRepo{store: f.store} }
func (f *fakeFactory) Meals() repository.MealRepository        { return &fakeMealRepo{store: f.store} }
func (f *fakeFactory) Appointments() repository.AppointmentRepository {
	return &fakeAppointmentRepo{store: f.store}
}
func (f *fakeFactory) Foods() repository.FoodRepository { return &fakeFoodRepo{store: f.store} }
func (f *fakeFactory) BlacklistedTokens() repository.TokenBlacklistRepository {
	return &fakeBlacklistRepo{store: f.store}
}

// --- user repository ---

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	clone := *user
	r.store.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user.UpdatedAt = time.Now()
	clone := *user
	r.store.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) LockByID(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[id]; !ok {
		return domainerrors.ErrUserNotFound
	}
	r.store.userLocks[id]++

	return nil
}

func (r *fakeUserRepo) find(match func(*entity.User) bool) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if match(u) {
			clone := *u

			return &clone, nil
		}
	}

	return nil, domainerrors.ErrUserNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Username == username })
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r *fakeUserRepo) FindByVerifyToken(_ context.Context, token string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return token != "" && u.VerifyEmailToken == token })
}

func (r *fakeUserRepo) FindByResetToken(_ context.Context, token string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return token != "" && u.ResetPassToken == token })
}

func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)

	return err == nil, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)

	return err == nil, nil
}

// --- pet repository ---

type fakePetRepo struct {
	store *fakeStore
}

func (r *fakePetRepo) Create(_ context.Context, pet *entity.Pet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if pet.ID == uuid.Nil {
		pet.ID = uuid.New()
	}
	clone := *pet
	r.store.pets[pet.ID] = &clone

	return nil
}

func (r *fakePetRepo) Update(_ context.Context, pet *entity.Pet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *pet
	r.store.pets[pet.ID] = &clone

	return nil
}

func (r *fakePetRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.pets, id)

	return nil
}

func (r *fakePetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Pet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	pet, ok := r.store.pets[id]
	if !ok {
		return nil, domainerrors.ErrPetNotFound
	}
	clone := *pet

	return &clone, nil
}

func (r *fakePetRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var count int64
	for _, p := range r.store.pets {
		if p.UserID == userID {
			count++
		}
	}

	return count, nil
}

// --- day repository ---

type fakeDayRepo struct {
	store *fakeStore
}

func (r *fakeDayRepo) Create(_ context.Context, day *entity.Day) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, d := range r.store.days {
		if d.PetID == day.PetID && d.Day == day.Day && d.Month == day.Month && d.Year == day.Year {
			return domainerrors.ErrDayExists
		}
	}

	if day.ID == uuid.Nil {
		day.ID = uuid.New()
	}
	clone := *day
	r.store.days[day.ID] = &clone

	return nil
}

func (r *fakeDayRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Day, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	day, ok := r.store.days[id]
	if !ok {
		return nil, domainerrors.ErrDayNotFound
	}
	clone := *day

	return &clone, nil
}

func (r *fakeDayRepo) ExistsForDate(_ context.Context, petID uuid.UUID, day, month, year int) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, d := range r.store.days {
		if d.PetID == petID && d.Day == day && d.Month == month && d.Year == year {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeDayRepo) AddProgress(_ context.Context, dayID uuid.UUID, delta float64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	day, ok := r.store.days[dayID]
	if !ok {
		return domainerrors.ErrDayNotFound
	}
	day.DietGoalProgress += delta

	return nil
}

func (r *fakeDayRepo) DeleteByPetID(_ context.Context, petID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, d := range r.store.days {
		if d.PetID == petID {
			delete(r.store.days, id)
		}
	}

	return nil
}

// --- month and year repositories ---

type fakeMonthRepo struct {
	store *fakeStore
}

func (r *fakeMonthRepo) Create(_ context.Context, month *entity.Month) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if month.ID == uuid.Nil {
		month.ID = uuid.New()
	}
	clone := *month
	r.store.months[month.ID] = &clone

	return nil
}

func (r *fakeMonthRepo) Exists(_ context.Context, petID uuid.UUID, month, year int) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, m := range r.store.months {
		if m.PetID == petID && m.Month == month && m.Year == year {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeMonthRepo) DeleteByPetID(_ context.Context, petID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, m := range r.store.months {
		if m.PetID == petID {
			delete(r.store.months, id)
		}
	}

	return nil
}

type fakeYearRepo struct {
	store *fakeStore
}

func (r *fakeYearRepo) Create(_ context.Context, year *entity.Year) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if year.ID == uuid.Nil {
		year.ID = uuid.New()
	}
	clone := *year
	r.store.years[year.ID] = &clone

	return nil
}

func (r *fakeYearRepo) Exists(_ context.Context, petID uuid.UUID, year int) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, y := range r.store.years {
		if y.PetID == petID && y.Year == year {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeYearRepo) DeleteByPetID(_ context.Context, petID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, y := range r.store.years {
		if y.PetID == petID {
			delete(r.store.years, id)
		}
	}

	return nil
}

// --- meal repository ---

type fakeMealRepo struct {
	store *fakeStore
}

func (r *fakeMealRepo) Create(_ context.Context, meal *entity.Meal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if meal.ID == uuid.Nil {
		meal.ID = uuid.New()
	}
	clone := *meal
	r.store.meals[meal.ID] = &clone

	return nil
}

func (r *fakeMealRepo) Update(_ context.Context, meal *entity.Meal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *meal
	r.store.meals[meal.ID] = &clone

	return nil
}

func (r *fakeMealRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.meals, id)

	return nil
}

func (r *fakeMealRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Meal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	meal, ok := r.store.meals[id]
	if !ok {
		return nil, domainerrors.ErrMealNotFound
	}
	clone := *meal

	return &clone, nil
}

func (r *fakeMealRepo) DeleteByPetID(_ context.Context, petID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, m := range r.store.meals {
		if m.PetID == petID {
			delete(r.store.meals, id)
		}
	}

	return nil
}

// --- appointment repository ---

type fakeAppointmentRepo struct {
	store *fakeStore
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appointment *entity.Appointment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	clone := *appointment
	r.store.appointments[appointment.ID] = &clone

	return nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, appointment *entity.Appointment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *appointment
	r.store.appointments[appointment.ID] = &clone

	return nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.appointments, id)

	return nil
}

func (r *fakeAppointmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	appointment, ok := r.store.appointments[id]
	if !ok {
		return nil, domainerrors.ErrAppointmentMissing
	}
	clone := *appointment

	return &clone, nil
}

func (r *fakeAppointmentRepo) ExistsOverlapping(_ context.Context, userID uuid.UUID, start, end int64, excludeID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, a := range r.store.appointments {
		if a.UserID != userID || a.ID == excludeID {
			continue
		}
		if a.StartTimeStamp < end && a.EndTimeStamp > start {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeAppointmentRepo) DeleteByPetID(_ context.Context, petID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, a := range r.store.appointments {
		if a.PetID == petID {
			delete(r.store.appointments, id)
		}
	}

	return nil
}

// --- food and blacklist repositories ---

type fakeFoodRepo struct {
	store *fakeStore
}

func (r *fakeFoodRepo) Create(_ context.Context, food *entity.Food) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if food.ID == uuid.Nil {
		food.ID = uuid.New()
	}
	clone := *food
	r.store.foods[food.ID] = &clone

	return nil
}

func (r *fakeFoodRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Food, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	food, ok := r.store.foods[id]
	if !ok {
		return nil, domainerrors.ErrFoodNotFound
	}
	clone := *food

	return &clone, nil
}

type fakeBlacklistRepo struct {
	store *fakeStore
}

func (r *fakeBlacklistRepo) Add(_ context.Context, token string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.blacklist[token] = true

	return nil
}

func (r *fakeBlacklistRepo) Contains(_ context.Context, token string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.blacklist[token], nil
}

// --- infrastructure service fakes ---

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Check(password, hash string) bool { return hash == "hashed:"+password }

// fakeTokenService issues inspectable tokens and remembers their claims, so
// tests can issue tokens with arbitrary issue and expiry times.
type fakeTokenService struct {
	mu     sync.Mutex
	ttl    time.Duration
	seq    int
	issued map[string]service.Claims
}

func newFakeTokenService(ttl time.Duration) *fakeTokenService {
	return &fakeTokenService{ttl: ttl, issued: map[string]service.Claims{}}
}

func (s *fakeTokenService) Issue(userID uuid.UUID) (string, error) {
	return s.IssueAt(userID, time.Now()), nil
}

// IssueAt creates a token whose claims pretend it was issued at the given time.
func (s *fakeTokenService) IssueAt(userID uuid.UUID, issuedAt time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	token := fmt.Sprintf("token-%d", s.seq)
	s.issued[token] = service.Claims{
		UserID:    userID,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(s.ttl),
	}

	return token
}

func (s *fakeTokenService) Decode(token string) (*service.Claims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	claims, ok := s.issued[token]
	if !ok {
		return nil, service.ErrTokenInvalid
	}

	return &claims, nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// fakeMailer records deliveries and can be told to fail, to exercise the
// signup transaction rollback.
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail error
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})

	return nil
}

func (m *fakeMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sent)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
