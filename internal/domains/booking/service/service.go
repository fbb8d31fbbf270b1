package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/mail"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/pricing"
	"hotel/internal/domains/booking/repository"
	"hotel/internal/domains/receipt/document"
	receiptService "hotel/internal/domains/receipt/service"
	roomModel "hotel/internal/domains/room/model"
	roomService "hotel/internal/domains/room/service"
	userModel "hotel/internal/domains/user/model"
	userRepo "hotel/internal/domains/user/repository"
	"hotel/shared"
	"hotel/shared/access"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

const (
	defaultReceiptTimeout = 10 * time.Second
	argCurrentStatus      = "current_status"
	argCurrentReceiptURL  = "current_receipt_url"
	mailSubjectConfirmed  = "Your booking is confirmed"
)

const (
	msgBookingNotFound     = "booking not found"
	msgUserNotFound        = "referenced user does not exist"
	msgInvalidUserID       = "invalid user ID"
	msgReceiptNotConfirmed = "receipt is only available for confirmed bookings"
	msgReceiptUnavailable  = "receipt generation failed, try again later"
	msgConcurrentUpdate    = "booking was modified concurrently, retry the request"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	SetStatus(ctx context.Context, id, status string) (dto.BookingResponse, error)
	EnsureReceipt(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetByUser(ctx context.Context, userID string, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Stats(ctx context.Context) (dto.StatsResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Booking
	userRepo userRepo.User
	rooms    roomService.Room
	receipt  receiptService.Receipt
	cfg      *config.Config
	cache    cache.RedisCache
	kafka    kafka.Client
	mailer   mail.Mailer
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	userRepo userRepo.User,
	rooms roomService.Room,
	receipt receiptService.Receipt,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	mailer mail.Mailer,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		rooms:    rooms,
		receipt:  receipt,
		cfg:      cfg,
		cache:    cache,
		kafka:    kafka,
		mailer:   mailer,
		otel:     otel,
	}
}

// Create validates the stay against the room catalog and the referenced
// user, prices it and stores it as Pending. With a configured inventory the
// insert is refused when overlapping active bookings leave too few rooms.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	roomType := roomModel.Type(req.RoomType)

	rate, ok := s.rooms.Rate(roomType)
	if !ok {
		return res, failure.Validation([]string{fmt.Sprintf("roomType %q is not offered", req.RoomType)})
	}

	if req.PricePerNight != nil && *req.PricePerNight != rate {
		return res, failure.Validation([]string{
			fmt.Sprintf("pricePerNight must match the %s rate of %s", roomType, document.FormatMoney(s.cfg.App.Booking.Currency, rate)),
		})
	}

	booking, err := req.ToModel(access.Username(ctx))
	if err != nil {
		return res, failure.Validation([]string{err.Error()})
	}

	stay, err := pricing.ComputeStay(booking.CheckInDate, booking.CheckOutDate, rate, booking.NumberOfRooms)
	if err != nil {
		return res, failure.Validation([]string{err.Error()})
	}

	exists, err := s.userRepo.Exist(ctx, shared.FilterByID(req.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exists {
		return res, failure.BadRequestFromString(msgUserNotFound)
	}

	booking.PricePerNight = rate
	booking.TotalNights = stay.Nights
	booking.TotalPrice = stay.Total

	if capacity := s.cfg.App.Booking.TotalRooms; capacity > 0 {
		err = s.repo.InsertWithinCapacity(ctx, booking, capacity)
	} else {
		err = s.repo.Insert(ctx, booking)
	}

	if errors.Is(err, repository.ErrCapacityExceeded) {
		log.Warn().Err(err).Str("room_type", req.RoomType).Msg("booking refused, inventory exhausted")

		return res, failure.Conflict(repository.ErrCapacityExceeded.Error())
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidate(ctx, "")
	s.publish(ctx, dto.EventBookingCreated, booking, booking.Status)

	res.FromModel(booking)

	return res, nil
}

// SetStatus moves a booking along its lifecycle. Entering Confirmed without
// a receipt waits for one within the configured timeout; a receipt failure
// is logged and leaves the reference empty for a later retry.
func (s *serviceImpl) SetStatus(ctx context.Context, id, status string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SetStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	next, err := model.ParseStatus(status)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid status %q, must be one of: %s", status, statusList()))
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	previous := booking.Status
	if !previous.CanTransitionTo(next) {
		return res, failure.Conflict(fmt.Sprintf("cannot change booking status from %s to %s", previous, next))
	}

	changed := previous != next
	if changed {
		if err = s.transition(ctx, &booking, next); err != nil {
			return res, err
		}
	}

	attached := false
	if next == model.StatusConfirmed && booking.ReceiptURL == constant.Empty {
		ref, err := s.attachReceipt(ctx, booking)
		if err != nil {
			log.Error().Err(err).Str("booking_id", id).Msg("receipt not attached, booking stays confirmed")
		} else {
			booking.ReceiptURL = ref
			attached = true
		}
	}

	if changed || attached {
		s.invalidate(ctx, id)
	}

	if changed {
		s.publish(ctx, dto.EventBookingStatusChanged, booking, previous)
	}

	if next == model.StatusConfirmed && (changed || attached) {
		s.notify(ctx, booking)
	}

	res.FromModel(booking)

	return res, nil
}

// transition writes the new status only if nobody changed it since it was read.
func (s *serviceImpl) transition(ctx context.Context, booking *model.Booking, next model.Status) error {
	filter := shared.FilterByID(booking.ID, model.FieldID, model.TableName).
		And(gDto.Eq(model.TableName, model.FieldStatus, booking.Status).As(argCurrentStatus))

	now := timezone.Now()
	user := access.Username(ctx)

	fields := map[string]any{
		model.FieldStatus:        next,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	affected, err := s.repo.UpdateAffected(ctx, fields, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if affected == 0 {
		return failure.Conflict(msgConcurrentUpdate)
	}

	booking.Status = next
	booking.ModifiedAt = now
	booking.ModifiedBy = user

	return nil
}

// attachReceipt renders and stores the receipt, then records its reference
// unless another request already did.
func (s *serviceImpl) attachReceipt(ctx context.Context, booking model.Booking) (string, error) {
	timeout := time.Duration(s.cfg.App.Booking.ReceiptTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultReceiptTimeout
	}

	receiptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ref, err := s.receipt.Generate(receiptCtx, booking)
	if err != nil {
		return "", fmt.Errorf("failed to generate receipt: %w", err)
	}

	filter := shared.FilterByID(booking.ID, model.FieldID, model.TableName).
		And(gDto.Eq(model.TableName, model.FieldReceiptURL, constant.Empty).As(argCurrentReceiptURL))

	fields := map[string]any{
		model.FieldReceiptURL:    ref,
		constant.FieldModifiedAt: timezone.Now(),
	}

	affected, err := s.repo.UpdateAffected(ctx, fields, filter)
	if err != nil {
		return "", fmt.Errorf("failed to record receipt: %w", err)
	}

	if affected > 0 {
		return ref, nil
	}

	log.Info().Str("booking_id", booking.ID).Msg("receipt already recorded by another request")

	stored, err := s.find(ctx, booking.ID)
	if err != nil {
		return "", fmt.Errorf("failed to reload receipt: %w", err)
	}

	return stored.ReceiptURL, nil
}

// EnsureReceipt attaches a receipt to a confirmed booking that lacks one.
// A booking that already has a receipt is returned unchanged.
func (s *serviceImpl) EnsureReceipt(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.EnsureReceipt")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status != model.StatusConfirmed {
		return res, failure.Conflict(msgReceiptNotConfirmed)
	}

	if booking.ReceiptURL == constant.Empty {
		ref, err := s.attachReceipt(ctx, booking)
		if err != nil {
			log.Error().Err(err).Str("booking_id", id).Msg("receipt retry failed")

			return res, failure.Unavailable(msgReceiptUnavailable)
		}

		booking.ReceiptURL = ref

		s.invalidate(ctx, id)
		s.notify(ctx, booking)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, req, gDto.FilterGroup{})
}

// GetByUser lists one user's bookings, newest first.
func (s *serviceImpl) GetByUser(ctx context.Context, userID string, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = uuid.Parse(userID); err != nil {
		return res, failure.BadRequestFromString(msgInvalidUserID)
	}

	return s.list(ctx, req, shared.FilterByID(userID, model.FieldUserID, model.TableName))
}

func (s *serviceImpl) list(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	req = req.Sanitized(model.SortableFields...)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// Get returns a booking to an admin or to the user who owns it.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, err := access.FromContext(ctx)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		booking, err := s.find(ctx, id)
		if err != nil {
			return res, err
		}

		res.FromModel(booking)

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save booking to cache")
			}
		}()
	}

	if !actor.IsAdmin() && res.UserID != actor.ID {
		return dto.BookingResponse{}, failure.ResourceRestrictedError
	}

	return res, nil
}

// Stats summarises confirmed occupancy against the property's inventory.
func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	confirmed := byStatus(model.StatusConfirmed)

	if res.ConfirmedBookings, err = s.repo.Count(ctx, confirmed); err != nil {
		return res, fmt.Errorf("failed to count confirmed bookings: %w", err)
	}

	if res.BookedRooms, err = s.repo.SumRooms(ctx, confirmed); err != nil {
		return res, fmt.Errorf("failed to sum booked rooms: %w", err)
	}

	if res.PendingBookings, err = s.repo.Count(ctx, byStatus(model.StatusPending)); err != nil {
		return res, fmt.Errorf("failed to count pending bookings: %w", err)
	}

	res.TotalRooms = s.cfg.App.Booking.TotalRooms
	res.AvailableRooms = max(res.TotalRooms-res.BookedRooms, 0)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if booking.ReceiptURL != constant.Empty {
		if discardErr := s.receipt.Discard(ctx, id); discardErr != nil {
			log.Warn().Err(discardErr).Str("booking_id", id).Msg("Receipt left behind after delete")
		}
	}

	s.invalidate(ctx, id)
	s.publish(ctx, dto.EventBookingDeleted, model.Booking{ID: id}, "")

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Booking{}, failure.NotFound(msgBookingNotFound)
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(msgBookingNotFound)
	}

	return booking, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete booking from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking, previous model.Status) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := dto.NewEvent(eventType, booking, previous, timezone.Now())

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, constant.Empty, kafka.Message{Key: booking.ID, Value: event}); err != nil {
			log.Warn().Err(err).Str("event", eventType).Str("booking_id", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

type confirmationMail struct {
	PropertyName string
	GuestName    string
	BookingID    string
	RoomType     string
	CheckIn      string
	CheckOut     string
	Total        string
	ReceiptURL   string
}

func (s *serviceImpl) notify(ctx context.Context, booking model.Booking) {
	if !s.cfg.Mail.Enable || booking.UserEmail == constant.Empty {
		return
	}

	content := document.NewContent(booking, document.PropertyFromConfig(s.cfg))
	message := mail.Message{
		To:       booking.UserEmail,
		Subject:  mailSubjectConfirmed,
		Template: mail.TemplateBookingConfirmed,
		Data: confirmationMail{
			PropertyName: content.Property.Name,
			GuestName:    content.GuestName,
			BookingID:    content.BookingID,
			RoomType:     content.RoomType,
			CheckIn:      content.CheckIn,
			CheckOut:     content.CheckOut,
			Total:        content.Total,
			ReceiptURL:   s.absoluteURL(booking.ReceiptURL),
		},
	}

	go func() {
		if err := s.mailer.Send(context.WithoutCancel(ctx), message); err != nil {
			log.Warn().Err(err).Str("booking_id", booking.ID).Msg("failed to send confirmation email")
		}
	}()
}

func (s *serviceImpl) absoluteURL(ref string) string {
	if ref == constant.Empty || !strings.HasPrefix(ref, "/") || s.cfg.App.PublicURL == constant.Empty {
		return ref
	}

	return strings.TrimRight(s.cfg.App.PublicURL, "/") + ref
}

func byStatus(status model.Status) gDto.FilterGroup {
	return gDto.Where(gDto.Eq(model.TableName, model.FieldStatus, status))
}

func statusList() string {
	names := make([]string, len(model.Statuses))
	for i, status := range model.Statuses {
		names[i] = string(status)
	}

	return strings.Join(names, ", ")
}
