package form

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookingform/internal/catalog"
	"bookingform/internal/domain"
	"bookingform/internal/metrics"
	"bookingform/internal/session"
)

// FormUseCase drives one booking form instance per session token. Every
// operation returns the render output for the resulting state, so the caller
// never reads state through any other surface.
type FormUseCase interface {
	CreateForm(ctx context.Context) (*View, error)
	GetForm(ctx context.Context, token string) (*View, error)
	CancelForm(ctx context.Context, token string) error
	SelectBookingType(ctx context.Context, token, value string) (*View, error)
	SelectAccessMethod(ctx context.Context, token, value string) (*View, error)
	SetAddress(ctx context.Context, token string, input AddressInput) (*View, error)
	SetPropertyDetails(ctx context.Context, token string, input DetailsInput) (*View, error)
	PickTimeSlot(ctx context.Context, token, day, slot string) (*View, error)
	ConfirmTimes(ctx context.Context, token string) (*View, error)
	EditTimes(ctx context.Context, token string) (*View, error)
	NavigateMonth(ctx context.Context, token, direction string) (*View, error)
}

type AddressInput struct {
	Line   string `json:"line"`
	Manual bool   `json:"manual"`
}

type DetailsInput struct {
	Bedrooms  int `json:"bedrooms"`
	Bathrooms int `json:"bathrooms"`
	CarSpaces int `json:"car_spaces"`
}

type Service struct {
	store   session.Store
	catalog *catalog.Catalog
	metrics *metrics.FormMetrics
	logger  *zap.Logger
}

type ServiceOption func(*Service)

func WithMetrics(m *metrics.FormMetrics) ServiceOption {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *zap.Logger) ServiceOption {
	return func(s *Service) { s.logger = l }
}

func NewService(store session.Store, cat *catalog.Catalog, opts ...ServiceOption) *Service {
	s := &Service{
		store:   store,
		catalog: cat,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) CreateForm(ctx context.Context) (*View, error) {
	form := domain.NewFormState(uuid.NewString(), time.Now().UTC())
	if err := s.store.Save(ctx, form); err != nil {
		return nil, fmt.Errorf("save form session: %w", err)
	}
	s.metrics.ObserveCreated()
	s.logger.Debug("form session created", zap.String("token", form.Token))
	return BuildView(form, s.catalog), nil
}

func (s *Service) GetForm(ctx context.Context, token string) (*View, error) {
	form, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	return BuildView(form, s.catalog), nil
}

func (s *Service) CancelForm(ctx context.Context, token string) error {
	if _, err := s.store.Get(ctx, token); err != nil {
		return err
	}
	return s.store.Delete(ctx, token)
}

func (s *Service) SelectBookingType(ctx context.Context, token, value string) (*View, error) {
	if !s.catalog.HasBookingType(value) {
		return nil, fmt.Errorf("unknown booking type %q", value)
	}
	return s.apply(ctx, token, "select_booking_type", func(f *domain.FormState) bool {
		return f.SelectBookingType(domain.BookingType(value))
	})
}

func (s *Service) SelectAccessMethod(ctx context.Context, token, value string) (*View, error) {
	if !s.catalog.HasAccessMethod(value) {
		return nil, fmt.Errorf("unknown access method %q", value)
	}
	return s.apply(ctx, token, "select_access_method", func(f *domain.FormState) bool {
		return f.SelectAccessMethod(domain.AccessMethod(value))
	})
}

func (s *Service) SetAddress(ctx context.Context, token string, input AddressInput) (*View, error) {
	return s.apply(ctx, token, "set_address", func(f *domain.FormState) bool {
		f.Address = domain.Address{Line: input.Line, Manual: input.Manual}
		return true
	})
}

func (s *Service) SetPropertyDetails(ctx context.Context, token string, input DetailsInput) (*View, error) {
	return s.apply(ctx, token, "set_details", func(f *domain.FormState) bool {
		f.Details = domain.PropertyDetails{
			Bedrooms:  input.Bedrooms,
			Bathrooms: input.Bathrooms,
			CarSpaces: input.CarSpaces,
		}
		return true
	})
}

func (s *Service) PickTimeSlot(ctx context.Context, token, day, slot string) (*View, error) {
	d, ok := s.catalog.DayByDate(day)
	if !ok {
		return nil, fmt.Errorf("unknown day %q", day)
	}
	if !d.Available {
		return nil, fmt.Errorf("day %q is not available", day)
	}
	if !s.catalog.HasSlot(slot) {
		return nil, fmt.Errorf("unknown time slot %q", slot)
	}
	return s.apply(ctx, token, "pick_slot", func(f *domain.FormState) bool {
		return f.PickSlot(day, slot)
	})
}

func (s *Service) ConfirmTimes(ctx context.Context, token string) (*View, error) {
	return s.apply(ctx, token, "confirm_times", func(f *domain.FormState) bool {
		return f.ConfirmTimes()
	})
}

func (s *Service) EditTimes(ctx context.Context, token string) (*View, error) {
	return s.apply(ctx, token, "edit_times", func(f *domain.FormState) bool {
		return f.EditTimes()
	})
}

func (s *Service) NavigateMonth(ctx context.Context, token, direction string) (*View, error) {
	var delta int
	switch direction {
	case "prev":
		delta = -1
	case "next":
		delta = 1
	default:
		return nil, fmt.Errorf("unknown month direction %q", direction)
	}
	return s.apply(ctx, token, "navigate_month", func(f *domain.FormState) bool {
		return f.NavigateMonth(delta, len(s.catalog.Months))
	})
}

// apply loads the session, runs one transition and persists the result when
// it changed anything. Guarded no-ops still return the current view: the
// form has no error states for them.
func (s *Service) apply(ctx context.Context, token, operation string, fn func(*domain.FormState) bool) (*View, error) {
	form, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	applied := fn(form)
	s.metrics.ObserveTransition(operation, applied)
	if applied {
		form.UpdatedAt = time.Now().UTC()
		if err := s.store.Save(ctx, form); err != nil {
			return nil, fmt.Errorf("save form session: %w", err)
		}
	}
	s.logger.Debug("form transition",
		zap.String("token", token),
		zap.String("operation", operation),
		zap.Bool("applied", applied),
	)
	return BuildView(form, s.catalog), nil
}

var _ FormUseCase = (*Service)(nil)
